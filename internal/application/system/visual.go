package system

import "github.com/younwookim/keeper/internal/domain/entity"

// HandPose is what the player's hands are doing this frame
type HandPose int

const (
	HandsIdle HandPose = iota
	HandsWalking
	HandsAiming
	HandsAttacking
)

// String returns the pose name
func (h HandPose) String() string {
	switch h {
	case HandsIdle:
		return "Idle"
	case HandsWalking:
		return "Walking"
	case HandsAiming:
		return "Aiming"
	case HandsAttacking:
		return "Attacking"
	default:
		return "Unknown"
	}
}

// Visual is the presentation state of the player sprite
type Visual struct {
	Walking bool
	Speed   float64     // body speed in pixels/sec
	Facing  entity.Vec2 // unit vector toward the pointer, zero when the pointer is on the player
	Hands   HandPose
}

// VisualSystem derives the player's presentation flags once per rendered frame
type VisualSystem struct {
	last Visual
}

// NewVisualSystem creates a visual system
func NewVisualSystem() *VisualSystem {
	return &VisualSystem{}
}

// Update computes the visual state. playerScreen is the player's position in
// screen space, the same space as the pointer.
func (s *VisualSystem) Update(walking bool, velocity entity.Vec2, playerScreen entity.Vec2, input InputState) Visual {
	pointer := entity.Vec2{X: float64(input.MouseX), Y: float64(input.MouseY)}

	facing := pointer.Sub(playerScreen).Normalize()
	if facing.LenSq() == 0 {
		// keep looking the same way when the pointer sits on the player
		facing = s.last.Facing
	}

	v := Visual{
		Walking: walking,
		Speed:   velocity.Len(),
		Facing:  facing,
		Hands:   handPose(walking, input.SecondaryHeld, input.PrimaryHeld || input.Space),
	}
	s.last = v
	return v
}

// Last returns the most recent visual state
func (s *VisualSystem) Last() Visual {
	return s.last
}

func handPose(walking, aiming, attacking bool) HandPose {
	switch {
	case attacking:
		return HandsAttacking
	case aiming:
		return HandsAiming
	case walking:
		return HandsWalking
	default:
		return HandsIdle
	}
}
