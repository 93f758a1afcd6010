package store

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a linear RGB triple in [0,1]. Its text form is "#rrggbb".
type Color struct {
	R, G, B float32
}

// ParseColor decodes "#rrggbb" or "#rgb". Anything else yields black.
func ParseColor(text string) Color {
	c, err := colorful.Hex(text)
	if err != nil {
		return Color{}
	}
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B)}
}

// Hex formats the color as "#rrggbb".
func (c Color) Hex() string {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Clamped().Hex()
}

// Array returns the components in RGB order.
func (c Color) Array() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Malformed colors decode
// to black instead of failing the whole document.
func (c *Color) UnmarshalText(text []byte) error {
	*c = ParseColor(string(text))
	return nil
}

func (c Color) sanitized() Color {
	return Color{R: unit(c.R), G: unit(c.G), B: unit(c.B)}
}

func unit(v float32) float32 {
	switch {
	case math.IsNaN(float64(v)) || v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
