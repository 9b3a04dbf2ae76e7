package system

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/keeper/internal/domain/entity"
	"github.com/younwookim/keeper/internal/domain/vitals"
	"github.com/younwookim/keeper/internal/infrastructure/config"
	"github.com/younwookim/keeper/internal/infrastructure/physics"
)

type fakeHitEffects struct {
	slowDuration, slowScale float64
	slowCalls               int
	shakes                  int
	timeScale               float64
	timeScaleSet            bool
}

func (f *fakeHitEffects) SlowMotion(duration, scale float64) {
	f.slowCalls++
	f.slowDuration = duration
	f.slowScale = scale
}

func (f *fakeHitEffects) CameraShake() { f.shakes++ }

func (f *fakeHitEffects) SetTimeScale(scale float64) {
	f.timeScale = scale
	f.timeScaleSet = true
}

type fakeLookup map[entity.ObjectID]*entity.Object

func (f fakeLookup) Object(id entity.ObjectID) (*entity.Object, bool) {
	obj, ok := f[id]
	return obj, ok
}

func createTestGameplayConfig() *config.GameplayConfig {
	return &config.GameplayConfig{
		Player: config.PlayerSettings{
			TotalLife:       3,
			MaxLife:         9,
			HealAmount:      3,
			HitImpulseForce: 10,
			HitMask:         []string{"enemy", "hazard"},
		},
		Feedback: createTestFeedbackConfig(),
	}
}

type hitHarness struct {
	sys     *HitSystem
	life    *vitals.Life
	body    *fakeBody
	effects *fakeHitEffects
	objects fakeLookup
}

func newHitHarness(t *testing.T, total int) *hitHarness {
	t.Helper()
	log, _ := test.NewNullLogger()
	h := &hitHarness{
		life:    vitals.NewLife(total, 9),
		body:    &fakeBody{},
		effects: &fakeHitEffects{},
		objects: fakeLookup{},
	}
	sys, err := NewHitSystem(createTestGameplayConfig(), h.life, h.body, h.effects, h.objects, log)
	require.NoError(t, err)
	h.sys = sys
	return h
}

func enemyHit(rel entity.Vec2) physics.Event {
	return physics.Event{Type: physics.CollisionEnter, Other: 50, Layer: entity.LayerEnemy, RelativeVelocity: rel}
}

func TestNewHitSystem_UnknownLayer(t *testing.T) {
	cfg := createTestGameplayConfig()
	cfg.Player.HitMask = []string{"lava"}

	_, err := NewHitSystem(cfg, vitals.NewLife(3, 9), &fakeBody{}, &fakeHitEffects{}, fakeLookup{}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "lava")
}

func TestHitSystem_DamagingContact(t *testing.T) {
	h := newHitHarness(t, 3)
	hits := 0
	h.sys.OnHit.Subscribe(func() { hits++ })

	res := h.sys.HandleCollision(enemyHit(entity.Vec2{X: -2, Y: 1}))

	assert.True(t, res.Hit)
	assert.False(t, res.Died)
	assert.Equal(t, 2, h.life.Current())
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, h.effects.shakes)
	assert.Equal(t, 1, h.effects.slowCalls)
	assert.Equal(t, 0.1, h.effects.slowDuration)
	assert.Equal(t, 0.0, h.effects.slowScale)
	require.Len(t, h.body.impulses, 1)
	assert.Equal(t, entity.Vec2{X: -20, Y: 10}, h.body.impulses[0], "impulse is relative velocity times hit force")
}

func TestHitSystem_IgnoredContacts(t *testing.T) {
	tests := []struct {
		name string
		ev   physics.Event
	}{
		{"layer outside mask", physics.Event{Type: physics.CollisionEnter, Other: 9, Layer: entity.LayerItem}},
		{"trigger events", physics.Event{Type: physics.TriggerEnter, Other: 50, Layer: entity.LayerEnemy}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHitHarness(t, 3)

			res := h.sys.HandleCollision(tt.ev)

			assert.Equal(t, HitResult{}, res)
			assert.Equal(t, 3, h.life.Current())
			assert.Empty(t, h.body.impulses)
		})
	}
}

func TestHitSystem_HazardLayerHurts(t *testing.T) {
	h := newHitHarness(t, 3)

	res := h.sys.HandleCollision(physics.Event{Type: physics.CollisionEnter, Other: 51, Layer: entity.LayerHazard})

	assert.True(t, res.Hit)
	assert.Equal(t, 2, h.life.Current())
}

func TestHitSystem_HealthPickup(t *testing.T) {
	t.Run("heals and consumes", func(t *testing.T) {
		h := newHitHarness(t, 3)
		heart := entity.NewObject(7, entity.KindHealth, entity.Vec2{}, 8, 8, entity.LayerItem)
		h.objects[7] = heart
		heals := 0
		h.sys.OnHeal.Subscribe(func() { heals++ })

		res := h.sys.HandleCollision(physics.Event{Type: physics.CollisionEnter, Other: 7, Layer: entity.LayerItem})

		assert.False(t, res.Hit)
		assert.Equal(t, 3, res.Healed)
		assert.Equal(t, entity.ObjectID(7), res.Consumed)
		assert.Equal(t, 6, h.life.Current())
		assert.False(t, heart.Active)
		assert.Equal(t, 1, heals)

		res = h.sys.HandleCollision(physics.Event{Type: physics.CollisionEnter, Other: 7, Layer: entity.LayerItem})
		assert.Zero(t, res.Healed, "a consumed pickup heals once")
	})

	t.Run("caps at nine", func(t *testing.T) {
		h := newHitHarness(t, 8)
		h.objects[7] = entity.NewObject(7, entity.KindHealth, entity.Vec2{}, 8, 8, entity.LayerItem)

		res := h.sys.HandleCollision(physics.Event{Type: physics.CollisionEnter, Other: 7, Layer: entity.LayerItem})

		assert.Equal(t, 1, res.Healed)
		assert.Equal(t, 9, h.life.Current())
	})

	t.Run("other objects do not heal", func(t *testing.T) {
		h := newHitHarness(t, 3)
		h.objects[8] = entity.NewObject(8, entity.KindPickUp, entity.Vec2{}, 8, 8, entity.LayerItem)

		res := h.sys.HandleCollision(physics.Event{Type: physics.CollisionEnter, Other: 8, Layer: entity.LayerItem})

		assert.Equal(t, HitResult{}, res)
		assert.Equal(t, 3, h.life.Current())
	})
}

func TestHitSystem_Death(t *testing.T) {
	h := newHitHarness(t, 2)
	deaths := 0
	h.sys.OnDeath.Subscribe(func() { deaths++ })

	res := h.sys.HandleCollision(enemyHit(entity.Vec2{}))
	assert.False(t, res.Died)
	assert.False(t, h.effects.timeScaleSet)

	res = h.sys.HandleCollision(enemyHit(entity.Vec2{}))
	assert.True(t, res.Died)
	assert.Equal(t, 0, h.life.Current())
	assert.Equal(t, 1, deaths)
	assert.True(t, h.effects.timeScaleSet)
	assert.Equal(t, 0.0, h.effects.timeScale)

	res = h.sys.HandleCollision(enemyHit(entity.Vec2{}))
	assert.Equal(t, HitResult{}, res, "contacts after death are ignored")
	assert.Equal(t, 0, h.life.Current(), "life never goes negative")
	assert.Equal(t, 1, deaths, "death fires once")
}

func TestSignal(t *testing.T) {
	var s Signal
	var order []int
	s.Subscribe(func() { order = append(order, 1) })
	s.Subscribe(nil)
	s.Subscribe(func() { order = append(order, 2) })

	s.Emit()
	s.Emit()

	assert.Equal(t, []int{1, 2, 1, 2}, order)
}
