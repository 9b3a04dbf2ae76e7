package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnemy(t *testing.T) {
	enemy := NewEnemy(1, 100, 200, "slime", 3, 4, 64, 40)

	require.NotNil(t, enemy)
	assert.Equal(t, ObjectID(1), enemy.ID)
	assert.Equal(t, "slime", enemy.EnemyType)
	assert.InDelta(t, 0.6, enemy.DirX, 1e-9)
	assert.InDelta(t, 0.8, enemy.DirY, 1e-9)
	assert.True(t, enemy.Forward)
}

func TestEnemy_PatrolVelocity(t *testing.T) {
	enemy := NewEnemy(1, 0, 0, "slime", 1, 0, 10, 20)

	// 0.25s at 20px/s = 5px, still heading forward
	v := enemy.PatrolVelocity(0.25)
	assert.Equal(t, Vec2{20, 0}, v)

	// another 5px reaches the end of the path and turns around
	v = enemy.PatrolVelocity(0.25)
	assert.Equal(t, Vec2{-20, 0}, v)
	assert.False(t, enemy.Forward)
}

func TestEnemy_PatrolVelocity_Stationary(t *testing.T) {
	enemy := NewEnemy(1, 0, 0, "turret", 1, 0, 0, 20)

	assert.Equal(t, Vec2{}, enemy.PatrolVelocity(1))
}
