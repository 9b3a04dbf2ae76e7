package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Gameplay *GameplayConfig
	Entities *EntitiesConfig
}

// Loader loads game configuration using the fs.FS interface.
// Gameplay and entity tuning are JSON; levels are YAML under levels/.
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// LevelsDir returns the on-disk directory holding level files
func (l *Loader) LevelsDir() string {
	return path.Join(l.basePath, "levels")
}

// LoadGameplay loads and validates gameplay.json
func (l *Loader) LoadGameplay() (*GameplayConfig, error) {
	data, err := fs.ReadFile(l.fsys, "gameplay.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay.json: %w", err)
	}

	var cfg GameplayConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay.json: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gameplay.json: %w", err)
	}

	return &cfg, nil
}

// LoadEntities loads entities.json
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	data, err := fs.ReadFile(l.fsys, "entities.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read entities.json: %w", err)
	}

	var cfg EntitiesConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse entities.json: %w", err)
	}

	return &cfg, nil
}

// LoadLevel loads a level YAML file by name (without extension).
// The file name is the level's identity; a differing id in the file is overridden
// so the watcher, the recorder and replays all agree on it.
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	p := "levels/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", name, err)
	}

	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
	}
	cfg.ID = name

	return &cfg, nil
}

// LoadAll loads all base configurations (gameplay, entities)
func (l *Loader) LoadAll() (*GameConfig, error) {
	gameplay, err := l.LoadGameplay()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Gameplay: gameplay,
		Entities: entities,
	}, nil
}
