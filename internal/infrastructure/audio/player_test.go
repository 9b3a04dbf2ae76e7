package audio

import (
	"encoding/binary"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesize(t *testing.T) {
	tests := []struct {
		cue     Cue
		seconds float64
	}{
		{CuePickup, 0.08},
		{CueDrop, 0.08},
		{CueHit, 0.12},
		{CueDeath, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			pcm := Synthesize(tt.cue, 44100)

			frames := int(tt.seconds * 44100)
			require.Len(t, pcm, frames*4, "16-bit stereo frames")

			var peak int16
			for i := 0; i < frames; i++ {
				l := int16(binary.LittleEndian.Uint16(pcm[i*4:]))
				r := int16(binary.LittleEndian.Uint16(pcm[i*4+2:]))
				assert.Equal(t, l, r, "both channels carry the same sample")
				if l > peak {
					peak = l
				}
			}
			assert.Greater(t, peak, int16(1000), "cue is audible")

			last := int16(binary.LittleEndian.Uint16(pcm[(frames-1)*4:]))
			assert.Less(t, abs16(last), int16(1000), "cue fades out")
		})
	}
}

func TestSynthesize_Invalid(t *testing.T) {
	assert.Nil(t, Synthesize(Cue(99), 44100))
	assert.Nil(t, Synthesize(CuePickup, 0))
}

func TestCueString(t *testing.T) {
	assert.Equal(t, "pickup", CuePickup.String())
	assert.Equal(t, "death", CueDeath.String())
	assert.Equal(t, "unknown", Cue(42).String())
}

func TestMutedPlayer_CountsCues(t *testing.T) {
	log, _ := test.NewNullLogger()
	p := NewPlayer(Options{SampleRate: 22050, Volume: 0.5, Muted: true}, log)

	assert.True(t, p.Muted())

	p.PickupSound()
	p.PickupSound()
	p.DropSound()
	p.HitSound()

	assert.Equal(t, 2, p.Played(CuePickup))
	assert.Equal(t, 1, p.Played(CueDrop))
	assert.Equal(t, 1, p.Played(CueHit))
	assert.Equal(t, 0, p.Played(CueDeath))
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
