package main

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/keeper/internal/application/game"
	"github.com/younwookim/keeper/internal/application/replay"
	"github.com/younwookim/keeper/internal/application/scene/playing"
	"github.com/younwookim/keeper/internal/application/state"
	"github.com/younwookim/keeper/internal/domain/entity"
	"github.com/younwookim/keeper/internal/infrastructure/audio"
	"github.com/younwookim/keeper/internal/infrastructure/config"
)

// SimulationResult contains the results of a replay simulation
type SimulationResult struct {
	Session  string
	Level    string
	Frames   int
	Position entity.Vec2
	Life     int
	Keys     int
	State    state.GameState
}

func (r SimulationResult) log(log logrus.FieldLogger) {
	log.WithFields(logrus.Fields{
		"session": r.Session,
		"level":   r.Level,
		"frames":  r.Frames,
		"x":       fmt.Sprintf("%.2f", r.Position.X),
		"y":       fmt.Sprintf("%.2f", r.Position.Y),
		"life":    r.Life,
		"keys":    r.Keys,
		"state":   r.State,
	}).Info("replay finished")
}

// verifyReplay loads a recording and runs it headless to the end
func verifyReplay(loader *config.Loader, path string, log logrus.FieldLogger) (SimulationResult, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return SimulationResult{}, err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return SimulationResult{}, err
	}
	return simulateReplay(cfg, loader, data, log)
}

// simulateReplay drives the game loop without a window until the recorded input runs out
func simulateReplay(cfg *config.GameConfig, levels playing.LevelSource, data *replay.ReplayData, log logrus.FieldLogger) (SimulationResult, error) {
	levelCfg, err := levels.LoadLevel(data.Level)
	if err != nil {
		return SimulationResult{}, err
	}

	scene, err := playing.New(playing.Options{
		Config: cfg,
		Level:  levelCfg,
		Sounds: audio.NewPlayer(audio.Options{Muted: true}, log),
		Input:  playing.NewReplayInput(replay.NewReplayer(*data)),
		Logger: log,
		Seed:   data.Seed,
	})
	if err != nil {
		return SimulationResult{}, err
	}

	display := cfg.Gameplay.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, cfg.Gameplay.Physics.FixedRate)
	g.SetDT(1.0 / float64(display.Framerate))

	frames := 0
	for {
		if err := g.Update(); err != nil {
			if errors.Is(err, ebiten.Termination) {
				break
			}
			return SimulationResult{}, err
		}
		frames++
	}

	return SimulationResult{
		Session:  data.Session,
		Level:    data.Level,
		Frames:   frames,
		Position: scene.World().Position(),
		Life:     scene.Life().Current(),
		Keys:     scene.Keys(),
		State:    scene.State(),
	}, nil
}
