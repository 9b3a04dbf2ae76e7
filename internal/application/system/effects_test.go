package system

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/keeper/internal/domain/entity"
	"github.com/younwookim/keeper/internal/infrastructure/config"
)

func createTestFeedbackConfig() config.FeedbackConfig {
	return config.FeedbackConfig{
		SlowMotion:  config.SlowMotionConfig{Enabled: true, Duration: 0.1, TimeScale: 0},
		ScreenShake: config.ScreenShakeConfig{Enabled: true, Intensity: 4, Decay: 0.5},
	}
}

func TestEffects_SlowMotion(t *testing.T) {
	t.Run("scales time until the window runs out", func(t *testing.T) {
		fx := NewEffects(createTestFeedbackConfig(), nil, rand.New(rand.NewSource(1)))
		assert.Equal(t, 1.0, fx.TimeScale())

		fx.SlowMotion(0.1, 0.25)
		assert.True(t, fx.SlowMotionActive())
		assert.Equal(t, 0.25, fx.TimeScale())

		fx.Advance(0.05)
		assert.Equal(t, 0.25, fx.TimeScale())

		fx.Advance(0.06)
		assert.False(t, fx.SlowMotionActive())
		assert.Equal(t, 1.0, fx.TimeScale())
	})

	t.Run("disabled slow motion is ignored", func(t *testing.T) {
		cfg := createTestFeedbackConfig()
		cfg.SlowMotion.Enabled = false
		fx := NewEffects(cfg, nil, nil)

		fx.SlowMotion(1, 0)

		assert.Equal(t, 1.0, fx.TimeScale())
	})

	t.Run("base scale of zero wins over slow motion", func(t *testing.T) {
		fx := NewEffects(createTestFeedbackConfig(), nil, nil)
		fx.SlowMotion(1, 0.5)

		fx.SetTimeScale(0)

		assert.Equal(t, 0.0, fx.TimeScale())
	})

	t.Run("reset", func(t *testing.T) {
		fx := NewEffects(createTestFeedbackConfig(), nil, nil)
		fx.SlowMotion(1, 0.5)
		fx.SetTimeScale(0)
		fx.CameraShake()

		fx.Reset()

		assert.Equal(t, 1.0, fx.TimeScale())
		assert.Zero(t, fx.Shake())
	})
}

func TestEffects_CameraShake(t *testing.T) {
	fx := NewEffects(createTestFeedbackConfig(), nil, rand.New(rand.NewSource(7)))

	dx, dy := fx.ShakeOffset()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	fx.CameraShake()
	assert.Equal(t, 4.0, fx.Shake())

	dx, dy = fx.ShakeOffset()
	assert.LessOrEqual(t, dx*dx, 16.0)
	assert.LessOrEqual(t, dy*dy, 16.0)

	fx.Advance(1.0 / 60)
	assert.Equal(t, 2.0, fx.Shake())

	for i := 0; i < 20; i++ {
		fx.Advance(1.0 / 60)
	}
	assert.Zero(t, fx.Shake(), "shake decays to rest")
}

func TestEffects_SnapToGridCenter(t *testing.T) {
	fx := NewEffects(createTestFeedbackConfig(), nil, nil)
	pos := entity.Vec2{X: 37, Y: 21}
	assert.Equal(t, pos, fx.SnapToGridCenter(pos), "no grid leaves the position alone")

	fx.SetGrid(entity.NewLevel("grid", 4, 4, 16))
	assert.Equal(t, entity.Vec2{X: 40, Y: 24}, fx.SnapToGridCenter(pos))
}
