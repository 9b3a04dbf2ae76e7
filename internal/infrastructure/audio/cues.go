// Package audio plays the short synthesized cues the game uses for pickups,
// drops, hits and death.
package audio

import (
	"encoding/binary"
	"math"
)

// Cue names a sound effect
type Cue int

const (
	CuePickup Cue = iota
	CueDrop
	CueHit
	CueDeath
)

var cueNames = map[Cue]string{
	CuePickup: "pickup",
	CueDrop:   "drop",
	CueHit:    "hit",
	CueDeath:  "death",
}

// String returns the cue name
func (c Cue) String() string {
	if name, ok := cueNames[c]; ok {
		return name
	}
	return "unknown"
}

// tone is a frequency sweep with a linear fade out
type tone struct {
	startHz  float64
	endHz    float64
	duration float64 // seconds
	square   bool
}

var cueTones = map[Cue]tone{
	CuePickup: {startHz: 520, endHz: 880, duration: 0.08},
	CueDrop:   {startHz: 440, endHz: 220, duration: 0.08},
	CueHit:    {startHz: 180, endHz: 90, duration: 0.12, square: true},
	CueDeath:  {startHz: 330, endHz: 55, duration: 0.6, square: true},
}

// Synthesize renders a cue as 16-bit little-endian stereo PCM, the format
// ebiten's audio players take directly.
func Synthesize(c Cue, sampleRate int) []byte {
	t, ok := cueTones[c]
	if !ok || sampleRate <= 0 {
		return nil
	}

	n := int(t.duration * float64(sampleRate))
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.startHz + (t.endHz-t.startHz)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		v := math.Sin(phase)
		if t.square {
			if v >= 0 {
				v = 0.6
			} else {
				v = -0.6
			}
		}
		amp := v * (1 - progress) * 0.5
		s := int16(amp * math.MaxInt16)

		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}
