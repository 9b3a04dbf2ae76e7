package main

import (
	"errors"
	"flag"
	"io/fs"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/keeper/internal/application/game"
	"github.com/younwookim/keeper/internal/application/replay"
	"github.com/younwookim/keeper/internal/application/scene/playing"
	"github.com/younwookim/keeper/internal/infrastructure/audio"
	"github.com/younwookim/keeper/internal/infrastructure/config"
	"github.com/younwookim/keeper/internal/infrastructure/logger"
)

// newLoader reads configs from dir, or from the embedded copy when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func main() {
	// Parse command line flags
	configsFlag := flag.String("configs", "", "Load configs from this directory instead of the embedded ones")
	levelFlag := flag.String("level", "demo", "Level to play")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	verifyFlag := flag.Bool("verify", false, "With -replay, run the replay headless and log the outcome")
	watchFlag := flag.Bool("watch", false, "Reload the level when its file changes (requires -configs)")
	logLevelFlag := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	debugFlag := flag.Bool("debug", false, "Outline physics shapes")
	flag.Parse()

	log := logger.New(logger.Options{Level: *logLevelFlag})

	loader, err := newLoader(*configsFlag)
	if err != nil {
		log.WithError(err).Fatal("failed to open configs")
	}
	log.WithField("configs", loader.BasePath()).Debug("config source")

	if *replayFlag != "" && *verifyFlag {
		res, err := verifyReplay(loader, *replayFlag, log)
		if err != nil {
			log.WithError(err).Fatal("replay verification failed")
		}
		res.log(log)
		return
	}

	cfg, err := loader.LoadAll()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	opts := playing.Options{
		Config:     cfg,
		Logger:     log,
		Seed:       time.Now().UnixNano(),
		RecordPath: *recordFlag,
		Debug:      *debugFlag,
	}

	levelName := *levelFlag
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.WithError(err).Fatal("failed to load replay")
		}
		levelName = data.Level
		opts.Seed = data.Seed
		opts.Input = playing.NewReplayInput(replay.NewReplayer(*data))
		log.WithFields(logrus.Fields{
			"file":    *replayFlag,
			"session": data.Session,
			"frames":  len(data.Frames),
		}).Info("replaying")
	}

	opts.Level, err = loader.LoadLevel(levelName)
	if err != nil {
		log.WithError(err).Fatal("failed to load level")
	}

	if *watchFlag {
		if *configsFlag == "" {
			log.Warn("-watch needs -configs, embedded levels never change")
		} else {
			watcher, err := config.NewWatcher(loader.LevelsDir())
			if err != nil {
				log.WithError(err).Fatal("failed to watch levels")
			}
			defer func() { _ = watcher.Close() }()
			opts.Levels = loader
			opts.Watcher = watcher
			log.WithField("dir", loader.LevelsDir()).Info("watching levels")
		}
	}

	ac := cfg.Gameplay.Audio
	opts.Sounds = audio.NewPlayer(audio.Options{
		SampleRate: ac.SampleRate,
		Volume:     ac.Volume,
		Muted:      ac.Muted,
	}, log)

	scene, err := playing.New(opts)
	if err != nil {
		log.WithError(err).Fatal("failed to create scene")
	}

	display := cfg.Gameplay.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, cfg.Gameplay.Physics.FixedRate)
	g.SetDT(1.0 / float64(display.Framerate))

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Keeper")
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("game stopped")
	}
	scene.OnExit()
}
