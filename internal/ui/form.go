package ui

import (
	"github.com/Faultbox/supersphere/internal/geometry"
	"github.com/Faultbox/supersphere/internal/store"
)

// Slider ranges for the parameter panel.
const (
	MaxVertices       = 64
	MaxSpeed          = 3.0
	MaxNoiseFrequency = 3.0
	MaxNoiseAmplitude = 1.5
	MaxRotationSpeed  = 2.0
)

// Form holds the widget-bound copy of a store configuration. ImGui widgets
// write through pointers of the widths they accept, so the fields are kept
// as int32 and float32.
type Form struct {
	Vertices       int32
	Speed          float32
	Color          [3]float32
	NoiseFrequency float32
	NoiseAmplitude float32
	RotationSpeed  float32
	Texture        string
}

// Load copies cfg into the form.
func (f *Form) Load(cfg store.Config) {
	f.Vertices = int32(min(cfg.Vertices, geometry.MaxDetail))
	f.Speed = float32(cfg.Speed)
	f.Color = cfg.Color.Array()
	f.NoiseFrequency = float32(cfg.NoiseFrequency)
	f.NoiseAmplitude = float32(cfg.NoiseAmplitude)
	f.RotationSpeed = float32(cfg.RotationSpeed)
	f.Texture = cfg.Texture
}

// Diff returns the fields that differ from cfg.
func (f *Form) Diff(cfg store.Config) store.Partial {
	var p store.Partial
	if int(f.Vertices) != min(cfg.Vertices, geometry.MaxDetail) {
		p.Vertices = store.Int(int(f.Vertices))
	}
	if f.Speed != float32(cfg.Speed) {
		p.Speed = store.Float(float64(f.Speed))
	}
	if f.Color != cfg.Color.Array() {
		p.Color = store.ColorPtr(store.Color{R: f.Color[0], G: f.Color[1], B: f.Color[2]})
	}
	if f.NoiseFrequency != float32(cfg.NoiseFrequency) {
		p.NoiseFrequency = store.Float(float64(f.NoiseFrequency))
	}
	if f.NoiseAmplitude != float32(cfg.NoiseAmplitude) {
		p.NoiseAmplitude = store.Float(float64(f.NoiseAmplitude))
	}
	if f.RotationSpeed != float32(cfg.RotationSpeed) {
		p.RotationSpeed = store.Float(float64(f.RotationSpeed))
	}
	if f.Texture != cfg.Texture {
		p.Texture = store.String(f.Texture)
	}
	return p
}

// Commit merges the edited fields into s and reloads the form from the
// normalized result. It reports whether anything changed.
func (f *Form) Commit(s *store.Store) bool {
	p := f.Diff(s.Get())
	if p.Empty() {
		return false
	}
	s.Merge(p)
	f.Load(s.Get())
	return true
}

// Bind loads the current configuration from s and keeps the form in step
// with every later change, whether it came from the panel, a preset, or the
// watched parameter file. Call the returned function to stop following s.
func (f *Form) Bind(s *store.Store) (unbind func()) {
	f.Load(s.Get())
	return s.Subscribe(f.Load)
}
