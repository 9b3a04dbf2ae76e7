package system

import (
	"github.com/sirupsen/logrus"

	"github.com/younwookim/keeper/internal/domain/entity"
	"github.com/younwookim/keeper/internal/domain/vitals"
	"github.com/younwookim/keeper/internal/infrastructure/config"
	"github.com/younwookim/keeper/internal/infrastructure/physics"
)

// Signal is a small event broadcaster
type Signal struct {
	listeners []func()
}

// Subscribe registers fn to run on every Emit
func (s *Signal) Subscribe(fn func()) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

// Emit runs the listeners in subscription order
func (s *Signal) Emit() {
	for _, fn := range s.listeners {
		fn()
	}
}

// HitEffects is the feedback the hit system triggers
type HitEffects interface {
	SlowMotion(duration, scale float64)
	CameraShake()
	SetTimeScale(scale float64)
}

// ObjectLookup resolves the object on the other side of a contact
type ObjectLookup interface {
	Object(id entity.ObjectID) (*entity.Object, bool)
}

// HitResult summarizes what a contact did to the player
type HitResult struct {
	Hit      bool
	Healed   int             // life actually restored
	Consumed entity.ObjectID // health pickup used up, 0 if none
	Died     bool
}

// HitSystem reacts to the player's collisions: damaging layers cost a life,
// health pickups restore some.
type HitSystem struct {
	life    *vitals.Life
	body    Impulser
	effects HitEffects
	objects ObjectLookup
	log     logrus.FieldLogger

	mask         entity.LayerMask
	impulseForce float64
	healAmount   int
	slowDuration float64
	slowScale    float64

	deathFired bool

	OnHit   Signal
	OnHeal  Signal
	OnDeath Signal
}

// NewHitSystem creates a hit system. An unknown layer name in the hit mask is an error.
func NewHitSystem(cfg *config.GameplayConfig, life *vitals.Life, body Impulser, effects HitEffects, objects ObjectLookup, log logrus.FieldLogger) (*HitSystem, error) {
	var mask entity.LayerMask
	for _, name := range cfg.Player.HitMask {
		layer, err := entity.ParseLayer(name)
		if err != nil {
			return nil, err
		}
		mask |= entity.LayerMask(layer)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &HitSystem{
		life:         life,
		body:         body,
		effects:      effects,
		objects:      objects,
		log:          log,
		mask:         mask,
		impulseForce: cfg.Player.HitImpulseForce,
		healAmount:   cfg.Player.HealAmount,
		slowDuration: cfg.Feedback.SlowMotion.Duration,
		slowScale:    cfg.Feedback.SlowMotion.TimeScale,
	}, nil
}

// HandleCollision applies one collision-enter event
func (s *HitSystem) HandleCollision(ev physics.Event) HitResult {
	var res HitResult
	if ev.Type != physics.CollisionEnter || s.deathFired {
		return res
	}

	if s.mask.Contains(ev.Layer) {
		s.effects.SlowMotion(s.slowDuration, s.slowScale)
		s.body.ApplyImpulse(ev.RelativeVelocity.Scale(s.impulseForce))
		s.life.Damage()
		s.effects.CameraShake()
		res.Hit = true

		s.log.WithFields(logrus.Fields{
			"other": ev.Other,
			"life":  s.life.Current(),
		}).Debug("player hit")
		s.OnHit.Emit()
	}

	if obj, ok := s.objects.Object(ev.Other); ok && obj.Kind == entity.KindHealth && obj.Active {
		before := s.life.Current()
		s.life.Heal(s.healAmount)
		res.Healed = s.life.Current() - before
		obj.Active = false
		res.Consumed = obj.ID

		s.log.WithFields(logrus.Fields{
			"pickup": obj.ID,
			"life":   s.life.Current(),
		}).Debug("player healed")
		s.OnHeal.Emit()
	}

	if s.life.Dead() && !s.deathFired {
		s.deathFired = true
		res.Died = true
		s.log.Info("player died")
		s.OnDeath.Emit()
		s.effects.SetTimeScale(0)
	}
	return res
}
