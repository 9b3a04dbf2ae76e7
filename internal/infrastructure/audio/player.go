package audio

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/sirupsen/logrus"
)

// Options configures the cue player
type Options struct {
	SampleRate int
	Volume     float64
	Muted      bool
}

// Player plays cues through an ebiten audio context. A muted player keeps
// counting requests but never touches the audio device.
type Player struct {
	ctx    *audio.Context
	clips  map[Cue][]byte
	volume float64
	played map[Cue]int
	log    logrus.FieldLogger
}

// NewPlayer renders every cue up front. The audio context is created only
// when the player is not muted; ebiten allows one context per process, so an
// existing one is reused.
func NewPlayer(opts Options, log logrus.FieldLogger) *Player {
	if opts.SampleRate <= 0 {
		opts.SampleRate = 44100
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	p := &Player{
		clips:  make(map[Cue][]byte, len(cueTones)),
		volume: opts.Volume,
		played: make(map[Cue]int),
		log:    log,
	}
	for c := range cueTones {
		p.clips[c] = Synthesize(c, opts.SampleRate)
	}

	if !opts.Muted {
		if ctx := audio.CurrentContext(); ctx != nil {
			if ctx.SampleRate() != opts.SampleRate {
				log.WithFields(logrus.Fields{
					"want": opts.SampleRate,
					"have": ctx.SampleRate(),
				}).Warn("audio context already running at a different sample rate, muting")
			} else {
				p.ctx = ctx
			}
		} else {
			p.ctx = audio.NewContext(opts.SampleRate)
		}
	}
	return p
}

// Play starts a cue. Overlapping cues each get their own player.
func (p *Player) Play(c Cue) {
	p.played[c]++
	if p.ctx == nil {
		return
	}
	clip, ok := p.clips[c]
	if !ok {
		return
	}
	ap := p.ctx.NewPlayerFromBytes(clip)
	ap.SetVolume(p.volume)
	ap.Play()
	p.log.WithField("cue", c.String()).Debug("audio cue")
}

// Played returns how many times a cue was requested
func (p *Player) Played(c Cue) int {
	return p.played[c]
}

// Muted reports whether the player has no audio output
func (p *Player) Muted() bool {
	return p.ctx == nil
}

func (p *Player) PickupSound() { p.Play(CuePickup) }
func (p *Player) DropSound()   { p.Play(CueDrop) }
func (p *Player) HitSound()    { p.Play(CueHit) }
func (p *Player) DeathSound()  { p.Play(CueDeath) }
