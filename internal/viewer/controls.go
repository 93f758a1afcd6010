package viewer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/supersphere/internal/geometry"
	"github.com/Faultbox/supersphere/internal/store"
)

// Step sizes for keyboard adjustments.
const (
	DetailStep = 1
	SpeedStep  = 0.1
)

// Textures returns the selectable texture names in display order.
func (v *Viewer) Textures() []string {
	return v.Registry.Names()
}

// SelectTexture makes name the active texture.
func (v *Viewer) SelectTexture(name string) {
	v.Store.Merge(store.Partial{Texture: &name})
}

// CycleTexture moves the texture selection by step, wrapping around.
func (v *Viewer) CycleTexture(step int) string {
	names := v.Textures()
	if len(names) == 0 {
		return ""
	}
	current := v.Store.Get().Texture
	idx := 0
	for i, n := range names {
		if n == current {
			idx = i
			break
		}
	}
	idx = ((idx+step)%len(names) + len(names)) % len(names)
	v.SelectTexture(names[idx])
	v.log.Info("texture selected", zap.String("texture", names[idx]))
	return names[idx]
}

// SelectPresetIndex selects the i-th preset in ListPresetNames order.
func (v *Viewer) SelectPresetIndex(i int) bool {
	names := v.Store.ListPresetNames()
	if i < 0 || i >= len(names) {
		return false
	}
	return v.Store.SelectPreset(names[i])
}

// AdjustDetail changes the detail level by delta within [0, MaxDetail].
func (v *Viewer) AdjustDetail(delta int) int {
	d := v.Store.Get().Vertices + delta
	d = max(0, min(d, geometry.MaxDetail))
	v.Store.Merge(store.Partial{Vertices: &d})
	return d
}

// AdjustSpeed changes the time scale by delta, never below zero.
func (v *Viewer) AdjustSpeed(delta float64) float64 {
	s := max(0, v.Store.Get().Speed+delta)
	v.Store.Merge(store.Partial{Speed: &s})
	return s
}
