package interaction

import "github.com/younwookim/keeper/internal/domain/entity"

// Holder is whoever carries items (the player body)
type Holder interface {
	Position() entity.Vec2
}

// Objects resolves level objects and their components by ID.
// A false return means the object or component does not exist.
type Objects interface {
	Object(id entity.ObjectID) (*entity.Object, bool)
	Lever(id entity.ObjectID) (*entity.Lever, bool)
	Hint(id entity.ObjectID) (*entity.Hint, bool)
	Chest(id entity.ObjectID) (*entity.Chest, bool)
}

// Sounds plays the carry cues
type Sounds interface {
	PickupSound()
	DropSound()
}

// Grid snaps world positions to cell centers
type Grid interface {
	SnapToGridCenter(pos entity.Vec2) entity.Vec2
}

// DoorOpener decides whether the collected key total opens the door
type DoorOpener interface {
	OpenDoor(totalKeys int) bool
}
