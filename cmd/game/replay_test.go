package main

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/keeper/internal/application/replay"
	"github.com/younwookim/keeper/internal/application/scene/playing"
	"github.com/younwookim/keeper/internal/application/state"
	"github.com/younwookim/keeper/internal/application/system"
	"github.com/younwookim/keeper/internal/infrastructure/audio"
	"github.com/younwookim/keeper/internal/infrastructure/config"
)

func loadEmbedded(t *testing.T) (*config.Loader, *config.GameConfig) {
	t.Helper()
	loader, err := newLoader("")
	require.NoError(t, err)
	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	return loader, cfg
}

// createDemoReplayData creates an idle replay on the demo level
func createDemoReplayData(frames int) *replay.ReplayData {
	data := replay.CreateTestReplayData(frames, 160, 120)
	data.Level = "demo"
	return &data
}

func TestEmbeddedConfigs(t *testing.T) {
	loader, cfg := loadEmbedded(t)
	assert.Equal(t, "configs", loader.BasePath())

	assert.Equal(t, "stack", cfg.Gameplay.Interaction.Policy)
	assert.Contains(t, cfg.Gameplay.Player.HitMask, "hazard")

	levelCfg, err := loader.LoadLevel("demo")
	require.NoError(t, err)
	level, err := system.LoadLevel(levelCfg, cfg.Entities)
	require.NoError(t, err)

	assert.NotNil(t, level.Door)
	total := 0
	for _, chest := range level.Chests {
		total += chest.Keys
	}
	assert.GreaterOrEqual(t, total, level.Door.Required, "the demo door can be opened")

	for _, obj := range level.Objects {
		_, ok := cfg.Entities.Objects[obj.Kind.String()]
		assert.True(t, ok, "object kind %s has an entity config", obj.Kind)
	}
}

func TestReplayIdlePlayer(t *testing.T) {
	loader, cfg := loadEmbedded(t)
	log, _ := test.NewNullLogger()

	result, err := simulateReplay(cfg, loader, createDemoReplayData(120), log)
	require.NoError(t, err)

	assert.Equal(t, 120, result.Frames)
	assert.Equal(t, state.StatePlaying, result.State)
	assert.Equal(t, cfg.Gameplay.Player.TotalLife, result.Life)
	assert.Equal(t, 0, result.Keys)
	assert.InDelta(t, 40, result.Position.X, 1e-9, "idle player stays at spawn")
	assert.InDelta(t, 40, result.Position.Y, 1e-9)
}

func TestReplayDeterminism(t *testing.T) {
	// Test that replaying the same inputs produces identical results
	loader, cfg := loadEmbedded(t)
	log, _ := test.NewNullLogger()

	data := createDemoReplayData(180)
	for i := range data.Frames {
		data.Frames[i].R = i < 40
		data.Frames[i].D = i >= 40 && i < 90
		data.Frames[i].I = i == 100
	}

	result1, err := simulateReplay(cfg, loader, data, log)
	require.NoError(t, err)
	result2, err := simulateReplay(cfg, loader, data, log)
	require.NoError(t, err)

	assert.Equal(t, result1, result2)
}

func TestReplayWithMovement(t *testing.T) {
	loader, cfg := loadEmbedded(t)
	log, _ := test.NewNullLogger()

	// First 10 frames: idle
	// Next 30 frames: move right
	data := createDemoReplayData(40)
	for i := 10; i < 40; i++ {
		data.Frames[i].R = true
	}

	result, err := simulateReplay(cfg, loader, data, log)
	require.NoError(t, err)

	assert.Greater(t, result.Position.X, 40.0, "player should move right")
	assert.InDelta(t, 40, result.Position.Y, 1e-6)
}

func TestRecordedRunReplaysIdentically(t *testing.T) {
	loader, cfg := loadEmbedded(t)
	log, _ := test.NewNullLogger()
	path := filepath.Join(t.TempDir(), "run.json")

	levelCfg, err := loader.LoadLevel("demo")
	require.NoError(t, err)
	scene, err := playing.New(playing.Options{
		Config:     cfg,
		Level:      levelCfg,
		Sounds:     audio.NewPlayer(audio.Options{Muted: true}, log),
		Logger:     log,
		Seed:       7,
		RecordPath: path,
	})
	require.NoError(t, err)

	for i := 0; i < 90; i++ {
		in := system.InputState{MouseX: 200, MouseY: 40}
		switch {
		case i < 30:
			in.Right = true
		case i < 60:
			in.Down = true
			in.Right = true
		}
		in.Interact = i == 70
		require.NoError(t, scene.Step(in))
	}
	scene.OnExit()

	result, err := verifyReplay(loader, path, log)
	require.NoError(t, err)

	assert.Equal(t, 90, result.Frames)
	assert.Equal(t, scene.Recorder().Session(), result.Session)
	assert.Equal(t, scene.World().Position(), result.Position)
	assert.Equal(t, scene.Life().Current(), result.Life)
	assert.Equal(t, scene.Keys(), result.Keys)
	assert.Equal(t, scene.State(), result.State)
}

func TestVerifyReplay_MissingFile(t *testing.T) {
	loader, _ := loadEmbedded(t)
	log, _ := test.NewNullLogger()

	_, err := verifyReplay(loader, filepath.Join(t.TempDir(), "missing.json"), log)

	assert.Error(t, err)
}

func TestSimulateReplay_UnknownLevel(t *testing.T) {
	loader, cfg := loadEmbedded(t)
	log, _ := test.NewNullLogger()

	data := createDemoReplayData(10)
	data.Level = "attic"

	_, err := simulateReplay(cfg, loader, data, log)

	assert.Error(t, err)
}
