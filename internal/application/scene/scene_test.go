package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClock_Advance(t *testing.T) {
	t.Run("steps at the fixed rate", func(t *testing.T) {
		c := NewClock(64)
		total := 0

		for i := 0; i < 32; i++ {
			total += c.Advance(1.0/32, 1, func(float64) {})
		}

		assert.Equal(t, 64, total, "one second of frames yields fixedRate steps")
	})

	t.Run("passes the fixed dt", func(t *testing.T) {
		c := NewClock(50)
		var got []float64

		c.Advance(0.05, 1, func(dt float64) { got = append(got, dt) })

		assert.Equal(t, []float64{0.02, 0.02}, got)
		assert.Equal(t, 0.02, c.FixedDT())
	})

	t.Run("time scale slows the budget", func(t *testing.T) {
		c := NewClock(64)
		total := 0

		for i := 0; i < 32; i++ {
			total += c.Advance(1.0/32, 0.25, func(float64) {})
		}

		assert.Equal(t, 16, total)
	})

	t.Run("zero scale freezes", func(t *testing.T) {
		c := NewClock(50)

		steps := c.Advance(1, 0, func(float64) {})

		assert.Zero(t, steps)
	})

	t.Run("long frames are capped", func(t *testing.T) {
		c := NewClock(50)

		steps := c.Advance(5, 1, func(float64) {})
		assert.Equal(t, maxStepsPerFrame, steps)

		steps = c.Advance(0, 1, func(float64) {})
		assert.Zero(t, steps, "the dropped budget does not carry over")
	})

	t.Run("reset", func(t *testing.T) {
		c := NewClock(50)
		c.Advance(0.015, 1, func(float64) {})

		c.Reset()

		assert.Zero(t, c.Advance(0.015, 1, func(float64) {}))
	})

	t.Run("invalid rate falls back", func(t *testing.T) {
		assert.Equal(t, 0.02, NewClock(0).FixedDT())
	})
}
