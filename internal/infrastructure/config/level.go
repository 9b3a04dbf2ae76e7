package config

// LevelConfig is the root of a level YAML file
type LevelConfig struct {
	ID          string                       `yaml:"id"`
	Name        string                       `yaml:"name"`
	TileSize    int                          `yaml:"tile_size"`
	PlayerSpawn PositionConfig               `yaml:"player_spawn"`
	Tiles       []string                     `yaml:"tiles"`
	TileMapping map[string]TileMappingConfig `yaml:"tile_mapping"`
	Objects     []ObjectSpawnConfig          `yaml:"objects"`
	Enemies     []EnemySpawnConfig           `yaml:"enemies"`
}

type PositionConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type TileMappingConfig struct {
	Type  string `yaml:"type"`
	Solid bool   `yaml:"solid"`
}

// ObjectSpawnConfig places one tagged object. Fields beyond the tag only apply
// to the kind that uses them.
type ObjectSpawnConfig struct {
	Tag   string `yaml:"tag"`
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	Layer string `yaml:"layer,omitempty"`

	Text     string `yaml:"text,omitempty"`     // Hint
	Keys     int    `yaml:"keys,omitempty"`     // Chest
	Required int    `yaml:"required,omitempty"` // Door
	On       bool   `yaml:"on,omitempty"`       // Lever
}

type EnemySpawnConfig struct {
	Type string  `yaml:"type"`
	X    int     `yaml:"x"`
	Y    int     `yaml:"y"`
	DirX float64 `yaml:"dir_x"`
	DirY float64 `yaml:"dir_y"`
}
