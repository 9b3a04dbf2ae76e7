package entity

// Object is a placed level object the player can touch
type Object struct {
	ID              ObjectID
	Kind            Kind
	Pos             Vec2 // center, world pixels
	Width, Height   int
	ColliderEnabled bool
	Layer           Layer
	Active          bool // false once consumed (health pickups)
}

// NewObject creates an active object with its collider enabled
func NewObject(id ObjectID, kind Kind, pos Vec2, w, h int, layer Layer) *Object {
	return &Object{
		ID:              id,
		Kind:            kind,
		Pos:             pos,
		Width:           w,
		Height:          h,
		ColliderEnabled: true,
		Layer:           layer,
		Active:          true,
	}
}

// Lever flips between two states each time it is pulled
type Lever struct {
	On bool
}

// Toggle flips the lever and returns the new state
func (l *Lever) Toggle() bool {
	l.On = !l.On
	return l.On
}

// Hint shows a message when the player interacts with it
type Hint struct {
	Text    string
	Visible bool
}

// Interact toggles the hint message
func (h *Hint) Interact() {
	h.Visible = !h.Visible
}

// Chest holds keys that are handed out on the first open
type Chest struct {
	Keys   int
	Opened bool
}

// OpenChest returns the keys inside the chest the first time it is opened, 0 afterwards
func (c *Chest) OpenChest() int {
	if c.Opened {
		return 0
	}
	c.Opened = true
	return c.Keys
}

// Door opens once enough keys have been collected
type Door struct {
	Required int
	Open     bool
}

// OpenDoor checks the collected key total and opens the door if it is sufficient.
// Returns whether the door is open after the check.
func (d *Door) OpenDoor(totalKeys int) bool {
	if !d.Open && totalKeys >= d.Required {
		d.Open = true
	}
	return d.Open
}
