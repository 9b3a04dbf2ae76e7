package system

import (
	"math/rand"

	"github.com/younwookim/keeper/internal/domain/entity"
	"github.com/younwookim/keeper/internal/domain/interaction"
	"github.com/younwookim/keeper/internal/infrastructure/config"
)

// Effects owns the simulation time scale and the frame feedback (slow motion,
// camera shake). It also answers grid snapping for the current level.
type Effects struct {
	cfg  config.FeedbackConfig
	grid interaction.Grid
	rng  *rand.Rand

	baseScale float64 // 1 while playing, 0 once the game is over
	slowTimer float64 // real seconds left
	slowScale float64
	shake     float64
}

// NewEffects creates the effects collaborator. rng drives shake offsets so a
// seeded run renders the same shake.
func NewEffects(cfg config.FeedbackConfig, grid interaction.Grid, rng *rand.Rand) *Effects {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Effects{
		cfg:       cfg,
		grid:      grid,
		rng:       rng,
		baseScale: 1,
	}
}

// SetGrid swaps the level used for snapping (after a reload)
func (e *Effects) SetGrid(grid interaction.Grid) {
	e.grid = grid
}

// SnapToGridCenter returns the center of the grid cell containing pos
func (e *Effects) SnapToGridCenter(pos entity.Vec2) entity.Vec2 {
	if e.grid == nil {
		return pos
	}
	return e.grid.SnapToGridCenter(pos)
}

// SlowMotion scales simulation time by scale for duration real seconds
func (e *Effects) SlowMotion(duration, scale float64) {
	if !e.cfg.SlowMotion.Enabled || duration <= 0 {
		return
	}
	e.slowTimer = duration
	e.slowScale = scale
}

// CameraShake restarts the shake at full intensity
func (e *Effects) CameraShake() {
	if !e.cfg.ScreenShake.Enabled {
		return
	}
	e.shake = e.cfg.ScreenShake.Intensity
}

// SetTimeScale sets the base time scale. 0 stops the simulation.
func (e *Effects) SetTimeScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	e.baseScale = scale
}

// TimeScale returns the factor applied to simulation time this frame
func (e *Effects) TimeScale() float64 {
	if e.slowTimer > 0 && e.slowScale < e.baseScale {
		return e.slowScale
	}
	return e.baseScale
}

// SlowMotionActive reports whether a slow motion window is running
func (e *Effects) SlowMotionActive() bool {
	return e.slowTimer > 0
}

// Advance ticks timers by real (unscaled) time and decays the shake
func (e *Effects) Advance(dt float64) {
	if e.slowTimer > 0 {
		e.slowTimer -= dt
		if e.slowTimer < 0 {
			e.slowTimer = 0
		}
	}
	if e.shake > 0 {
		e.shake *= e.cfg.ScreenShake.Decay
		if e.shake < 0.05 {
			e.shake = 0
		}
	}
}

// Shake returns the current shake intensity in pixels
func (e *Effects) Shake() float64 {
	return e.shake
}

// ShakeOffset returns a random camera offset within the current intensity
func (e *Effects) ShakeOffset() (dx, dy float64) {
	if e.shake == 0 {
		return 0, 0
	}
	return e.shake * (2*e.rng.Float64() - 1), e.shake * (2*e.rng.Float64() - 1)
}

// Reset restores normal time and clears feedback
func (e *Effects) Reset() {
	e.baseScale = 1
	e.slowTimer = 0
	e.slowScale = 0
	e.shake = 0
}
