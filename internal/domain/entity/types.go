package entity

import "fmt"

// ObjectID is a unique identifier for a level object (0 = none)
type ObjectID uint32

// Kind is the closed set of object tags the player can meet.
// It is resolved once when a level is loaded, never compared as a string at runtime.
type Kind int

const (
	KindNone Kind = iota
	KindPickUp
	KindLever
	KindHint
	KindChest
	KindHealth
	KindEnemy
	KindDoor
)

var kindNames = map[Kind]string{
	KindNone:   "None",
	KindPickUp: "PickUp",
	KindLever:  "Lever",
	KindHint:   "Hint",
	KindChest:  "Chest",
	KindHealth: "Health",
	KindEnemy:  "Enemy",
	KindDoor:   "Door",
}

// String returns the level-file tag of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Interactable reports whether the player can act on this kind with the interact key.
// Chests are opened through their own overlap path and are not tracked here.
func (k Kind) Interactable() bool {
	switch k {
	case KindPickUp, KindLever, KindHint:
		return true
	default:
		return false
	}
}

// ParseKind converts a level tag to a Kind
func ParseKind(tag string) (Kind, error) {
	for k, name := range kindNames {
		if k != KindNone && name == tag {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("unknown object tag %q", tag)
}

// Layer is a single physics layer bit
type Layer uint32

const (
	LayerDefault Layer = 1 << iota
	LayerPlayer
	LayerEnemy
	LayerHazard
	LayerItem
)

// LayerMask is a set of layers
type LayerMask uint32

// Contains reports whether the layer is part of the mask
func (m LayerMask) Contains(l Layer) bool {
	return uint32(m)&uint32(l) != 0
}

// ParseLayer converts a level layer name to a Layer
func ParseLayer(name string) (Layer, error) {
	switch name {
	case "", "default":
		return LayerDefault, nil
	case "player":
		return LayerPlayer, nil
	case "enemy":
		return LayerEnemy, nil
	case "hazard":
		return LayerHazard, nil
	case "item":
		return LayerItem, nil
	default:
		return 0, fmt.Errorf("unknown layer %q", name)
	}
}
