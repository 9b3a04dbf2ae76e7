package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player  PlayerConfig            `json:"player"`
	Enemies map[string]EnemyConfig  `json:"enemies"`
	Objects map[string]ObjectConfig `json:"objects"`
}

type PlayerConfig struct {
	ID     string       `json:"id"`
	Sprite SpriteConfig `json:"sprite"`
	Body   BodyConfig   `json:"body"`
}

type SpriteConfig struct {
	FrameWidth  int    `json:"frameWidth"`
	FrameHeight int    `json:"frameHeight"`
	Color       string `json:"color"` // x/image colornames name
}

// BodyConfig describes a rigid body's collision circle
type BodyConfig struct {
	Radius float64 `json:"radius"`
	Mass   float64 `json:"mass"`
}

type EnemyConfig struct {
	ID     string       `json:"id"`
	Sprite SpriteConfig `json:"sprite"`
	Body   BodyConfig   `json:"body"`
	Layer  string       `json:"layer"`
	AI     AIConfig     `json:"ai"`
}

type AIConfig struct {
	Type           string  `json:"type"`
	MoveSpeed      float64 `json:"moveSpeed,omitempty"`
	PatrolDistance float64 `json:"patrolDistance,omitempty"`
}

// ObjectConfig sizes the trigger volume of a placed object kind (keyed by tag)
type ObjectConfig struct {
	Sprite        SpriteConfig `json:"sprite"`
	TriggerWidth  int          `json:"triggerWidth"`
	TriggerHeight int          `json:"triggerHeight"`
	Solid         bool         `json:"solid"`
}
