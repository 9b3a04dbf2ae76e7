// Package scene defines the Scene interface for game screens and the
// fixed-step clock shared by everything that drives one.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen.
//
// Each frame the game loop calls BeginFrame, then FixedUpdate zero or more
// times, then Update, then Draw. Scene transitions are handled by returning
// a new Scene from Update.
type Scene interface {
	// BeginFrame samples input for the frame before any fixed step runs.
	BeginFrame()

	// FixedUpdate advances the simulation by one fixed step of dt seconds.
	FixedUpdate(dt float64)

	// Update runs the variable-step logic once per frame.
	// dt is the real frame time in seconds.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// TimeScale is the factor applied to simulation time (0 freezes it).
	TimeScale() float64

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()
}

// maxStepsPerFrame bounds catch-up work after a long frame
const maxStepsPerFrame = 8

// Clock accumulates scaled frame time and hands it out in fixed steps
type Clock struct {
	fixedDT     float64
	accumulator float64
}

// NewClock creates a clock that steps at rate steps per second
func NewClock(rate int) *Clock {
	if rate <= 0 {
		rate = 50
	}
	return &Clock{fixedDT: 1.0 / float64(rate)}
}

// FixedDT returns the fixed step length in seconds
func (c *Clock) FixedDT() float64 {
	return c.fixedDT
}

// Advance adds dt*scale to the budget and calls step once per whole fixed
// step available. Returns the number of steps run. Budget beyond
// maxStepsPerFrame steps is dropped.
func (c *Clock) Advance(dt, scale float64, step func(fixedDT float64)) int {
	if scale > 0 && dt > 0 {
		c.accumulator += dt * scale
	}

	steps := 0
	for c.accumulator >= c.fixedDT {
		if steps == maxStepsPerFrame {
			c.accumulator = 0
			break
		}
		step(c.fixedDT)
		c.accumulator -= c.fixedDT
		steps++
	}
	return steps
}

// Reset drops any accumulated time
func (c *Clock) Reset() {
	c.accumulator = 0
}
