package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewObject(t *testing.T) {
	obj := NewObject(7, KindPickUp, Vec2{10, 20}, 16, 16, LayerItem)

	assert.Equal(t, ObjectID(7), obj.ID)
	assert.Equal(t, KindPickUp, obj.Kind)
	assert.True(t, obj.ColliderEnabled)
	assert.True(t, obj.Active)
	assert.Equal(t, LayerItem, obj.Layer)
}

func TestLever_Toggle(t *testing.T) {
	lever := &Lever{}

	assert.True(t, lever.Toggle())
	assert.False(t, lever.Toggle())
	assert.False(t, lever.On)
}

func TestHint_Interact(t *testing.T) {
	hint := &Hint{Text: "Three keys open the door"}

	hint.Interact()
	assert.True(t, hint.Visible)
	hint.Interact()
	assert.False(t, hint.Visible)
}

func TestChest_OpenChest(t *testing.T) {
	chest := &Chest{Keys: 2}

	assert.Equal(t, 2, chest.OpenChest())
	assert.True(t, chest.Opened)
	assert.Equal(t, 0, chest.OpenChest(), "a chest only yields keys once")
}

func TestDoor_OpenDoor(t *testing.T) {
	door := &Door{Required: 3}

	assert.False(t, door.OpenDoor(2))
	assert.True(t, door.OpenDoor(3))
	assert.True(t, door.OpenDoor(0), "an open door stays open")
}
