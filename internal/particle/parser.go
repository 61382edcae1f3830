package particle

import (
	"fmt"
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/confetti/pkg/config"
	"github.com/gonewx/confetti/pkg/embedded"
)

// ParseEffectYAML reads an effect configuration from the embedded data FS.
//
// Example usage:
//
//	effect, err := ParseEffectYAML("data/confetti.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Loaded %s with %d pieces\n", effect.Name, effect.Count)
func ParseEffectYAML(path string) (*Effect, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read effect config %s: %w", path, err)
	}

	effect, err := ParseEffect(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse effect config %s: %w", path, err)
	}
	return effect, nil
}

// ParseEffect decodes and resolves YAML effect data.
func ParseEffect(data []byte) (*Effect, error) {
	var cfg EffectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return cfg.Resolve()
}

// DefaultEffect returns the built-in confetti effect from pkg/config.
func DefaultEffect() *Effect {
	effect, err := (&EffectConfig{}).Resolve()
	if err != nil {
		// 默认常量不可能解析失败
		panic(fmt.Sprintf("particle: default confetti effect is invalid: %v", err))
	}
	return effect
}

// Resolve fills defaults, parses ranges and colors, and validates the result.
func (c *EffectConfig) Resolve() (*Effect, error) {
	e := &Effect{
		Name:         c.Name,
		Count:        c.Count,
		Duration:     time.Duration(c.DurationMs) * time.Millisecond,
		TimeStep:     c.TimeStep,
		RotationStep: c.RotationStep,
		ScaleDecay:   c.ScaleDecay,
	}
	if e.Name == "" {
		e.Name = "ConfettiRain"
	}
	if c.Count == 0 {
		e.Count = config.ConfettiCount
	}
	if c.DurationMs == 0 {
		e.Duration = config.ConfettiDurationMs * time.Millisecond
	}
	if c.TimeStep == 0 {
		e.TimeStep = config.ConfettiTimeStep
	}
	if c.RotationStep == 0 {
		e.RotationStep = config.ConfettiRotationStep
	}
	if c.ScaleDecay == 0 {
		e.ScaleDecay = config.ConfettiScaleDecay
	}

	ranges := []struct {
		field string
		value string
		def   string
		dst   *Range
	}{
		{"spawnX", c.SpawnX, config.ConfettiSpawnX, &e.SpawnX},
		{"spawnY", c.SpawnY, config.ConfettiSpawnY, &e.SpawnY},
		{"rotation", c.Rotation, config.ConfettiRotation, &e.Rotation},
		{"scale", c.Scale, config.ConfettiScale, &e.Scale},
		{"velocityX", c.VelocityX, config.ConfettiVelocityX, &e.VelocityX},
		{"velocityY", c.VelocityY, config.ConfettiVelocityY, &e.VelocityY},
		{"gravity", c.Gravity, config.ConfettiGravity, &e.Gravity},
	}
	for _, r := range ranges {
		value := r.value
		if value == "" {
			value = r.def
		}
		parsed, err := ParseRange(value)
		if err != nil {
			return nil, fmt.Errorf("confetti config: %s: %w", r.field, err)
		}
		*r.dst = parsed
	}

	palette := c.Palette
	if len(palette) == 0 {
		palette = config.ConfettiPalette
	}
	for i, hex := range palette {
		rgba, err := ParseColor(hex)
		if err != nil {
			return nil, fmt.Errorf("confetti config: palette[%d]: %w", i, err)
		}
		e.Palette = append(e.Palette, rgba)
	}

	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate checks the limits the animation loop relies on.
func (e *Effect) Validate() error {
	switch {
	case e.Count <= 0:
		return fmt.Errorf("confetti config: count must be positive, got %d", e.Count)
	case e.Duration <= 0:
		return fmt.Errorf("confetti config: durationMs must be positive, got %v", e.Duration)
	case e.TimeStep <= 0:
		return fmt.Errorf("confetti config: timeStep must be positive, got %v", e.TimeStep)
	case e.ScaleDecay <= 0 || e.ScaleDecay > 1:
		return fmt.Errorf("confetti config: scaleDecay must be in (0, 1], got %v", e.ScaleDecay)
	case e.RotationStep < 0:
		return fmt.Errorf("confetti config: rotationStep must not be negative, got %v", e.RotationStep)
	case e.Gravity.Low() < 0:
		// 重力只能让 VelocityY 单调不减
		return fmt.Errorf("confetti config: gravity must not be negative, got %s", e.Gravity)
	case e.Scale.Low() <= 0:
		return fmt.Errorf("confetti config: scale must be positive, got %s", e.Scale)
	case len(e.Palette) == 0:
		return fmt.Errorf("confetti config: palette is empty")
	}
	return nil
}

// ParseColor parses a "#rrggbb" hex color.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
