package config

import (
	"errors"
	"fmt"
)

// GameplayConfig is the root config for gameplay.json
type GameplayConfig struct {
	Display     DisplayConfig     `json:"display"`
	Physics     PhysicsSettings   `json:"physics"`
	Player      PlayerSettings    `json:"player"`
	Interaction InteractionConfig `json:"interaction"`
	Feedback    FeedbackConfig    `json:"feedback"`
	Audio       AudioConfig       `json:"audio"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// PhysicsSettings configures the fixed-step rigid body simulation
type PhysicsSettings struct {
	FixedRate int     `json:"fixedRate"` // fixed steps per second
	Damping   float64 `json:"damping"`   // fraction of velocity kept per second (0-1)
}

// PlayerSettings holds the player's movement, life and hit reaction tuning
type PlayerSettings struct {
	MoveSpeed       float64  `json:"moveSpeed"`       // impulse per fixed step
	PickupOffset    float64  `json:"pickupOffset"`    // pixels above the player a carried item floats
	TotalLife       int      `json:"totalLife"`       // starting life
	MaxLife         int      `json:"maxLife"`         // heal cap
	HealAmount      int      `json:"healAmount"`      // life restored by a health pickup
	HitImpulseForce float64  `json:"hitImpulseForce"` // multiplier on relative velocity at impact
	HitMask         []string `json:"hitMask"`         // layers that hurt on collision
}

type InteractionConfig struct {
	Policy string `json:"policy"` // "stack" or "single"
}

type FeedbackConfig struct {
	SlowMotion  SlowMotionConfig  `json:"slowMotion"`
	ScreenShake ScreenShakeConfig `json:"screenShake"`
}

type SlowMotionConfig struct {
	Enabled   bool    `json:"enabled"`
	Duration  float64 `json:"duration"`  // seconds of real time
	TimeScale float64 `json:"timeScale"` // 0 = frozen
}

type ScreenShakeConfig struct {
	Enabled   bool    `json:"enabled"`
	Intensity float64 `json:"intensity"`
	Decay     float64 `json:"decay"`
}

type AudioConfig struct {
	SampleRate int     `json:"sampleRate"`
	Volume     float64 `json:"volume"`
	Muted      bool    `json:"muted"`
}

// Validate checks the values the simulation divides by or clamps against
func (c *GameplayConfig) Validate() error {
	var errs []error
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("display: screen size must be positive, got %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight))
	}
	if c.Display.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("display: framerate must be positive, got %d", c.Display.Framerate))
	}
	if c.Physics.FixedRate <= 0 {
		errs = append(errs, fmt.Errorf("physics: fixedRate must be positive, got %d", c.Physics.FixedRate))
	}
	if c.Physics.Damping < 0 || c.Physics.Damping > 1 {
		errs = append(errs, fmt.Errorf("physics: damping must be within [0,1], got %v", c.Physics.Damping))
	}
	if c.Player.TotalLife <= 0 {
		errs = append(errs, fmt.Errorf("player: totalLife must be positive, got %d", c.Player.TotalLife))
	}
	if c.Player.MaxLife < c.Player.TotalLife {
		errs = append(errs, fmt.Errorf("player: maxLife %d below totalLife %d", c.Player.MaxLife, c.Player.TotalLife))
	}
	if c.Feedback.SlowMotion.TimeScale < 0 || c.Feedback.SlowMotion.TimeScale > 1 {
		errs = append(errs, fmt.Errorf("feedback: slowMotion.timeScale must be within [0,1], got %v", c.Feedback.SlowMotion.TimeScale))
	}
	return errors.Join(errs...)
}
