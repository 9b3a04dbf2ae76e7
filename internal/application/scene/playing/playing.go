// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"maps"
	"math"
	"math/rand"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/keeper/internal/application/scene"
	"github.com/younwookim/keeper/internal/application/state"
	"github.com/younwookim/keeper/internal/application/system"
	"github.com/younwookim/keeper/internal/domain/entity"
	"github.com/younwookim/keeper/internal/domain/interaction"
	"github.com/younwookim/keeper/internal/domain/vitals"
	"github.com/younwookim/keeper/internal/infrastructure/audio"
	"github.com/younwookim/keeper/internal/infrastructure/config"
	"github.com/younwookim/keeper/internal/infrastructure/physics"
)

// InputSource supplies one frame of input at a time. A false return means
// the source is exhausted (end of a replay).
type InputSource interface {
	Next() (system.InputState, bool)
}

// LiveInput reads the keyboard and mouse
type LiveInput struct {
	sys *system.InputSystem
}

// NewLiveInput creates an input source backed by ebiten
func NewLiveInput() *LiveInput {
	return &LiveInput{sys: system.NewInputSystem()}
}

// Next polls the devices
func (l *LiveInput) Next() (system.InputState, bool) {
	return l.sys.GetInput(), true
}

// Sounds plays every gameplay cue
type Sounds interface {
	interaction.Sounds
	HitSound()
	DeathSound()
}

// LevelSource loads level files by name
type LevelSource interface {
	LoadLevel(name string) (*config.LevelConfig, error)
}

// LevelWatcher reports level files changed on disk and errors from watching them
type LevelWatcher interface {
	Poll() (string, bool)
	PollError() error
}

// Options wires the scene's collaborators. Config and Level are required.
type Options struct {
	Config     *config.GameConfig
	Level      *config.LevelConfig
	Levels     LevelSource  // enables hot reload together with Watcher
	Watcher    LevelWatcher // nil disables hot reload
	Sounds     Sounds       // nil plays nothing
	Input      InputSource  // nil means live input
	Logger     logrus.FieldLogger
	Seed       int64
	RecordPath string
	Debug      bool // outline every physics shape
}

// Playing is the main gameplay scene
type Playing struct {
	cfg      *config.GameConfig
	levelCfg *config.LevelConfig
	levels   LevelSource
	watcher  LevelWatcher
	sounds   Sounds
	source   InputSource
	log      logrus.FieldLogger

	// level-scoped, rebuilt on restart and reload
	level      *entity.Level
	world      *physics.World
	controller *interaction.Controller
	hit        *system.HitSystem
	patrol     *system.PatrolSystem
	objectIDs  []entity.ObjectID

	life     *vitals.Life
	effects  *system.Effects
	movement *system.MovementSystem
	visual   *system.VisualSystem
	policy   interaction.Policy

	state      state.GameState
	input      system.InputState
	look       system.Visual
	sourceDone bool
	frame      int

	screenW int
	screenH int
	frameDT float64
	clock   *scene.Clock
	debug   bool

	seed           int64
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene.
// If RecordPath is not empty, gameplay input will be recorded.
func New(opts Options) (*Playing, error) {
	if opts.Config == nil || opts.Config.Gameplay == nil || opts.Config.Entities == nil {
		return nil, fmt.Errorf("playing: config is required")
	}
	if opts.Level == nil {
		return nil, fmt.Errorf("playing: level is required")
	}

	gameplay := opts.Config.Gameplay
	policy, err := interaction.ParsePolicy(gameplay.Interaction.Policy)
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	sounds := opts.Sounds
	if sounds == nil {
		sounds = audio.NewPlayer(audio.Options{Muted: true}, log)
	}
	source := opts.Input
	if source == nil {
		source = NewLiveInput()
	}

	p := &Playing{
		cfg:            opts.Config,
		levelCfg:       opts.Level,
		levels:         opts.Levels,
		watcher:        opts.Watcher,
		sounds:         sounds,
		source:         source,
		log:            log.WithField("scene", "playing"),
		life:           vitals.NewLife(gameplay.Player.TotalLife, gameplay.Player.MaxLife),
		effects:        system.NewEffects(gameplay.Feedback, nil, rand.New(rand.NewSource(opts.Seed))),
		movement:       system.NewMovementSystem(gameplay.Player.MoveSpeed),
		visual:         system.NewVisualSystem(),
		policy:         policy,
		state:          state.StatePlaying,
		screenW:        gameplay.Display.ScreenWidth,
		screenH:        gameplay.Display.ScreenHeight,
		frameDT:        1.0 / float64(gameplay.Display.Framerate),
		clock:          scene.NewClock(gameplay.Physics.FixedRate),
		debug:          opts.Debug,
		seed:           opts.Seed,
		recordFilename: opts.RecordPath,
	}

	if err := p.build(); err != nil {
		return nil, err
	}

	// Initialize recorder if recording is enabled
	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.seed, p.levelCfg.ID)
		p.log.WithFields(logrus.Fields{
			"file":    p.recordFilename,
			"seed":    p.seed,
			"session": p.recorder.Session(),
		}).Info("recording enabled")
	}

	return p, nil
}

// build creates everything that depends on the current level
func (p *Playing) build() error {
	gameplay := p.cfg.Gameplay
	entities := p.cfg.Entities

	level, err := system.LoadLevel(p.levelCfg, entities)
	if err != nil {
		return err
	}

	world := physics.NewWorld(level, physics.Config{
		Damping:      gameplay.Physics.Damping,
		PlayerRadius: entities.Player.Body.Radius,
		PlayerMass:   entities.Player.Body.Mass,
	})

	objectIDs := slices.Sorted(maps.Keys(level.Objects))
	for _, id := range objectIDs {
		obj := level.Objects[id]
		oc := entities.Objects[obj.Kind.String()]
		world.AddObject(obj, oc.TriggerWidth, oc.TriggerHeight, oc.Solid)
	}
	for _, id := range slices.Sorted(maps.Keys(level.Enemies)) {
		enemy := level.Enemies[id]
		ec := entities.Enemies[enemy.EnemyType]
		layer, err := entity.ParseLayer(ec.Layer)
		if err != nil {
			return fmt.Errorf("enemy type %q: %w", enemy.EnemyType, err)
		}
		world.AddBody(id, entity.Vec2{X: enemy.StartX, Y: enemy.StartY}, ec.Body.Radius, layer)
	}

	p.effects.SetGrid(level)
	objects := levelObjects{level: level}

	hit, err := system.NewHitSystem(gameplay, p.life, world, p.effects, objects, p.log)
	if err != nil {
		return err
	}
	hit.OnHit.Subscribe(p.sounds.HitSound)
	hit.OnDeath.Subscribe(p.onDeath)

	p.level = level
	p.world = world
	p.objectIDs = objectIDs
	p.hit = hit
	p.patrol = system.NewPatrolSystem(level.Enemies)
	p.controller = interaction.New(world, objects, p.sounds, p.effects, p,
		interaction.WithPolicy(p.policy),
		interaction.WithPickupOffset(gameplay.Player.PickupOffset),
		interaction.WithLogger(p.log),
	)

	p.log.WithFields(logrus.Fields{
		"level":   level.Name,
		"objects": len(level.Objects),
		"enemies": len(level.Enemies),
		"policy":  p.policy,
	}).Info("level loaded")
	return nil
}

// BeginFrame samples input for this frame (implements scene.Scene)
func (p *Playing) BeginFrame() {
	in, ok := p.source.Next()
	if !ok {
		p.sourceDone = true
		in = system.InputState{}
	}
	p.beginFrame(in)
}

func (p *Playing) beginFrame(in system.InputState) {
	p.input = in
	p.frame++
	if p.recorder != nil && !p.sourceDone {
		p.recorder.RecordFrame(in)
	}
}

// FixedUpdate advances the physics by one fixed step (implements scene.Scene)
func (p *Playing) FixedUpdate(dt float64) {
	if p.sourceDone || !p.state.Simulating() {
		return
	}

	p.movement.FixedUpdate(p.world, p.input)
	p.patrol.FixedUpdate(p.world, p.level.Enemies, dt)
	p.world.Step(dt)
	p.handleEvents()
}

func (p *Playing) handleEvents() {
	for _, ev := range p.world.Events() {
		switch ev.Type {
		case physics.TriggerEnter:
			if obj, ok := p.level.Objects[ev.Other]; ok {
				p.controller.OnProximityEnter(ev.Other, obj.Kind)
			}
		case physics.TriggerExit:
			if obj, ok := p.level.Objects[ev.Other]; ok {
				p.controller.OnProximityExit(ev.Other, obj.Kind)
			}
		case physics.CollisionEnter:
			res := p.hit.HandleCollision(ev)
			if res.Consumed != 0 {
				p.world.SyncObject(p.level.Objects[res.Consumed])
			}
		}
	}
}

// Update runs the per-frame logic (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if p.sourceDone {
		return nil, ebiten.Termination
	}
	p.checkReload()
	p.effects.Advance(dt)

	switch p.state {
	case state.StatePlaying:
		if p.input.Pause {
			p.state = state.StatePaused
			break
		}
		p.updatePlaying()
	case state.StatePaused:
		if p.input.Pause {
			p.state = state.StatePlaying
		}
	case state.StateGameOver, state.StateLevelClear:
		if p.input.Restart {
			if err := p.restart(); err != nil {
				return nil, err
			}
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying() {
	p.look = p.visual.Update(p.movement.Walking(), p.world.Velocity(), p.playerScreenPos(), p.input)

	if p.input.Interact {
		p.interact()
	}
	p.controller.Tick()
	p.syncObjects()
	p.checkLevelClear()
}

// interact handles one press of the interact key: overlapped chests open,
// then the controller picks up, drops or uses the current interactable.
func (p *Playing) interact() {
	for _, id := range p.world.Overlapping() {
		obj, ok := p.level.Objects[id]
		if !ok || obj.Kind != entity.KindChest {
			continue
		}
		gained, err := p.controller.OnChestInteract(id)
		if err != nil {
			continue
		}
		if gained > 0 {
			p.log.WithFields(logrus.Fields{"chest": id, "keys": p.controller.Keys()}).Info("chest opened")
		}
	}

	outcome, err := p.controller.OnInteractPressed()
	if err != nil {
		return
	}
	if outcome != interaction.OutcomeNone {
		p.log.WithField("outcome", outcome).Debug("interact")
	}
}

// syncObjects pushes object positions and collider state into the physics world
func (p *Playing) syncObjects() {
	for _, id := range p.objectIDs {
		p.world.SyncObject(p.level.Objects[id])
	}
}

// OpenDoor opens the level door once enough keys are collected and removes its collider
func (p *Playing) OpenDoor(totalKeys int) bool {
	door := p.level.Door
	if door == nil {
		return false
	}
	wasOpen := door.Open
	open := door.OpenDoor(totalKeys)
	if open && !wasOpen {
		if obj, ok := p.level.Objects[p.level.DoorID]; ok {
			obj.ColliderEnabled = false
			p.world.SyncObject(obj)
		}
		p.log.WithField("keys", totalKeys).Info("door opened")
	}
	return open
}

// checkLevelClear ends the level when the player stands in the open doorway
func (p *Playing) checkLevelClear() {
	door := p.level.Door
	if door == nil || !door.Open {
		return
	}
	obj, ok := p.level.Objects[p.level.DoorID]
	if !ok {
		return
	}
	ts := p.level.TileSize
	pos := p.world.Position()
	if cellOf(pos, ts) == cellOf(obj.Pos, ts) {
		p.state = state.StateLevelClear
		p.effects.SetTimeScale(0)
		p.log.WithField("keys", p.controller.Keys()).Info("level clear")
		p.saveRecording()
	}
}

type cell struct{ x, y int }

func cellOf(pos entity.Vec2, tileSize int) cell {
	ts := float64(tileSize)
	return cell{x: int(math.Floor(pos.X / ts)), y: int(math.Floor(pos.Y / ts))}
}

func (p *Playing) onDeath() {
	p.state = state.StateGameOver
	p.sounds.DeathSound()
	p.log.WithField("keys", p.controller.Keys()).Info("game over")
	// Auto-save recording on game over
	p.saveRecording()
}

func (p *Playing) restart() error {
	p.life.Reset()
	p.effects.Reset()
	p.movement.Reset()
	p.clock.Reset()
	if err := p.build(); err != nil {
		return err
	}
	p.state = state.StatePlaying
	p.look = system.Visual{}
	return nil
}

// checkReload rebuilds the level when its file changed on disk
func (p *Playing) checkReload() {
	if p.watcher == nil || p.levels == nil {
		return
	}
	for err := p.watcher.PollError(); err != nil; err = p.watcher.PollError() {
		p.log.WithError(err).Warn("level watcher error")
	}
	for {
		name, ok := p.watcher.Poll()
		if !ok {
			return
		}
		if name != p.levelCfg.ID {
			continue
		}
		cfg, err := p.levels.LoadLevel(name)
		if err != nil {
			p.log.WithError(err).WithField("level", name).Warn("level reload failed")
			continue
		}
		prev := p.levelCfg
		p.levelCfg = cfg
		if err := p.restart(); err != nil {
			p.log.WithError(err).WithField("level", name).Warn("level reload rejected, keeping previous")
			p.levelCfg = prev
			if err := p.restart(); err != nil {
				p.log.WithError(err).Error("previous level no longer builds")
			}
			continue
		}
		p.log.WithField("level", name).Info("level reloaded")
	}
}

// Step runs one whole frame with the given input, without a game loop.
// Headless runs and tests drive the scene through it.
func (p *Playing) Step(in system.InputState) error {
	p.beginFrame(in)
	p.clock.Advance(p.frameDT, p.TimeScale(), p.FixedUpdate)
	_, err := p.Update(p.frameDT)
	return err
}

// TimeScale returns the simulation speed (implements scene.Scene)
func (p *Playing) TimeScale() float64 {
	if !p.state.Simulating() {
		return 0
	}
	return p.effects.TimeScale()
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.WithError(err).Error("failed to save recording")
	} else {
		p.log.WithFields(logrus.Fields{
			"file":   filename,
			"frames": p.recorder.FrameCount(),
		}).Info("recording saved")
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

// State returns the current game state
func (p *Playing) State() state.GameState { return p.state }

// Keys returns the keys collected on this level
func (p *Playing) Keys() int { return p.controller.Keys() }

// Life returns the player's life counter
func (p *Playing) Life() *vitals.Life { return p.life }

// Level returns the running level
func (p *Playing) Level() *entity.Level { return p.level }

// World returns the physics world
func (p *Playing) World() *physics.World { return p.world }

// Controller returns the interaction controller
func (p *Playing) Controller() *interaction.Controller { return p.controller }

// Visual returns the last computed presentation state of the player
func (p *Playing) Visual() system.Visual { return p.look }

// Frame returns the number of frames begun so far
func (p *Playing) Frame() int { return p.frame }

// Recorder returns the input recorder, or nil when not recording
func (p *Playing) Recorder() *Recorder { return p.recorder }
