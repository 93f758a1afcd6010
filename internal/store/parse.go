package store

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseNumber converts control-surface text to a float. Text that is not a
// finite number yields 0.
func ParseNumber(text string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0
	}
	return finite(v)
}

// ParseInt converts control-surface text to an integer, truncating any
// fraction. Text that is not a finite number yields 0.
func ParseInt(text string) int {
	v := math.Trunc(ParseNumber(text))
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int(v)
}

// ErrUnknownField is returned by Partial.Set for keys that name no field.
var ErrUnknownField = errors.New("unknown parameter")

// Set coerces text into the field named by key. Keys match the file form
// (noiseFrequency) case-insensitively, plus the short aliases frequency,
// amplitude and rotation. Numbers and colors that do not parse become 0 and
// black.
func (p *Partial) Set(key, text string) error {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "vertices":
		p.Vertices = Int(ParseInt(text))
	case "speed":
		p.Speed = Float(ParseNumber(text))
	case "color":
		p.Color = ColorPtr(ParseColor(strings.TrimSpace(text)))
	case "noisefrequency", "frequency":
		p.NoiseFrequency = Float(ParseNumber(text))
	case "noiseamplitude", "amplitude":
		p.NoiseAmplitude = Float(ParseNumber(text))
	case "rotationspeed", "rotation":
		p.RotationSpeed = Float(ParseNumber(text))
	case "texture":
		p.Texture = String(strings.TrimSpace(text))
	default:
		return fmt.Errorf("%w %q", ErrUnknownField, key)
	}
	return nil
}
