package particle

import (
	"image/color"
	"time"
)

// EffectConfig is the raw YAML form of a confetti effect (data/confetti.yaml).
//
// Range fields keep the config string form ("[2 8]", "0.3") and are resolved
// by Resolve. Zero or empty fields fall back to the defaults in pkg/config.
type EffectConfig struct {
	Name         string  `yaml:"name"`
	Count        int     `yaml:"count"`
	DurationMs   int     `yaml:"durationMs"`
	TimeStep     float64 `yaml:"timeStep"`
	RotationStep float64 `yaml:"rotationStep"`
	ScaleDecay   float64 `yaml:"scaleDecay"`

	SpawnX    string `yaml:"spawnX"`
	SpawnY    string `yaml:"spawnY"`
	Rotation  string `yaml:"rotation"`
	Scale     string `yaml:"scale"`
	VelocityX string `yaml:"velocityX"`
	VelocityY string `yaml:"velocityY"`
	Gravity   string `yaml:"gravity"`

	Palette []string `yaml:"palette"`
}

// Effect is a validated, ready-to-run confetti effect description.
type Effect struct {
	Name     string
	Count    int
	Duration time.Duration

	// Per-tick constants
	TimeStep     float64
	RotationStep float64
	ScaleDecay   float64

	// Initial property ranges
	SpawnX    Range
	SpawnY    Range
	Rotation  Range
	Scale     Range
	VelocityX Range
	VelocityY Range
	Gravity   Range

	Palette []color.RGBA
}
