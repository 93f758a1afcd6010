// Package store holds the live sphere parameters and the named presets they
// can be reset from.
package store

import (
	"math"
	"sort"
)

// DefaultTexture is the texture every store starts with.
const DefaultTexture = "default"

// Config is the full parameter record the animation loop reads every frame.
type Config struct {
	Vertices       int     `yaml:"vertices" toml:"vertices"`
	Speed          float64 `yaml:"speed" toml:"speed"`
	Color          Color   `yaml:"color" toml:"color"`
	NoiseFrequency float64 `yaml:"noiseFrequency" toml:"noiseFrequency"`
	NoiseAmplitude float64 `yaml:"noiseAmplitude" toml:"noiseAmplitude"`
	RotationSpeed  float64 `yaml:"rotationSpeed" toml:"rotationSpeed"`
	Texture        string  `yaml:"texture,omitempty" toml:"texture,omitempty"`
}

// Partial names the fields a merge replaces. Nil fields are left alone.
type Partial struct {
	Vertices       *int     `yaml:"vertices,omitempty" toml:"vertices,omitempty"`
	Speed          *float64 `yaml:"speed,omitempty" toml:"speed,omitempty"`
	Color          *Color   `yaml:"color,omitempty" toml:"color,omitempty"`
	NoiseFrequency *float64 `yaml:"noiseFrequency,omitempty" toml:"noiseFrequency,omitempty"`
	NoiseAmplitude *float64 `yaml:"noiseAmplitude,omitempty" toml:"noiseAmplitude,omitempty"`
	RotationSpeed  *float64 `yaml:"rotationSpeed,omitempty" toml:"rotationSpeed,omitempty"`
	Texture        *string  `yaml:"texture,omitempty" toml:"texture,omitempty"`
}

// Empty reports whether the partial names no field.
func (p Partial) Empty() bool {
	return p == Partial{}
}

// apply overlays the named fields onto c.
func (p Partial) apply(c Config) Config {
	if p.Vertices != nil {
		c.Vertices = *p.Vertices
	}
	if p.Speed != nil {
		c.Speed = *p.Speed
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.NoiseFrequency != nil {
		c.NoiseFrequency = *p.NoiseFrequency
	}
	if p.NoiseAmplitude != nil {
		c.NoiseAmplitude = *p.NoiseAmplitude
	}
	if p.RotationSpeed != nil {
		c.RotationSpeed = *p.RotationSpeed
	}
	if p.Texture != nil {
		c.Texture = *p.Texture
	}
	return c
}

// Sanitized coerces values that cannot be rendered: non-finite numbers become
// 0, a negative detail level becomes 0 and color components are clamped.
func (c Config) Sanitized() Config {
	if c.Vertices < 0 {
		c.Vertices = 0
	}
	c.Speed = finite(c.Speed)
	c.NoiseFrequency = finite(c.NoiseFrequency)
	c.NoiseAmplitude = finite(c.NoiseAmplitude)
	c.RotationSpeed = finite(c.RotationSpeed)
	c.Color = c.Color.sanitized()
	return c
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Presets maps a preset name to a full parameter set. Texture is ignored.
type Presets map[string]Config

// Names returns the preset names in lexical order.
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// With returns a copy of p with every entry of other added or replaced.
func (p Presets) With(other Presets) Presets {
	out := make(Presets, len(p)+len(other))
	for name, cfg := range p {
		out[name] = cfg
	}
	for name, cfg := range other {
		out[name] = cfg
	}
	return out
}

// Helpers returning pointers for building a Partial inline.

func Int(v int) *int { return &v }

func Float(v float64) *float64 { return &v }

func String(v string) *string { return &v }

func ColorPtr(v Color) *Color { return &v }
