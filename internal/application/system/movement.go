package system

import "github.com/younwookim/keeper/internal/domain/entity"

// Impulser is the rigid body the movement system pushes
type Impulser interface {
	ApplyImpulse(impulse entity.Vec2)
}

// MovementSystem turns the movement axes into an impulse on the player body
// once per fixed step.
type MovementSystem struct {
	moveSpeed float64
	walking   bool
}

// NewMovementSystem creates a movement system with the given impulse magnitude
func NewMovementSystem(moveSpeed float64) *MovementSystem {
	return &MovementSystem{moveSpeed: moveSpeed}
}

// FixedUpdate applies normalize(axes) * moveSpeed to the body and returns the
// applied force. Diagonal input is as fast as straight input.
func (s *MovementSystem) FixedUpdate(body Impulser, input InputState) entity.Vec2 {
	h, v := input.Axes()
	force := entity.Vec2{X: h, Y: v}.Normalize().Scale(s.moveSpeed)
	s.walking = force.LenSq() > 0
	if s.walking {
		body.ApplyImpulse(force)
	}
	return force
}

// Walking reports whether the last fixed step applied any force
func (s *MovementSystem) Walking() bool {
	return s.walking
}

// Reset clears the walking flag
func (s *MovementSystem) Reset() {
	s.walking = false
}
