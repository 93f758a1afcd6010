package viewer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/supersphere/internal/config"
	"github.com/Faultbox/supersphere/internal/engine/shaders"
	"github.com/Faultbox/supersphere/internal/geometry"
)

func newViewer(t *testing.T, mutate func(*config.SphereConfig)) *Viewer {
	t.Helper()
	sphere := config.Default().Sphere
	sphere.Seed = 12
	if mutate != nil {
		mutate(&sphere)
	}
	v, err := New(sphere, 800, 600)
	require.NoError(t, err)
	t.Cleanup(func() { v.Close() })
	return v
}

func TestNewDefaults(t *testing.T) {
	v := newViewer(t, nil)

	cfg := v.Store.Get()
	assert.Equal(t, 18, cfg.Vertices)
	assert.Equal(t, "default", cfg.Texture)
	assert.Equal(t, geometry.Icosahedron, v.Geometry.Base())
	assert.Equal(t, float32(12), v.Loop.Seed())
	assert.False(t, v.Loop.Running())
}

func TestNewRandomSeed(t *testing.T) {
	v := newViewer(t, func(s *config.SphereConfig) { s.Seed = 0 })
	seed := v.Loop.Seed()
	assert.GreaterOrEqual(t, seed, float32(0))
	assert.Less(t, seed, float32(100))
}

func TestNewSettings(t *testing.T) {
	v := newViewer(t, func(s *config.SphereConfig) {
		s.Preset = "slow"
		s.Texture = "gold"
		s.Base = "octahedron"
	})

	cfg := v.Store.Get()
	assert.Equal(t, 28, cfg.Vertices)
	assert.Equal(t, "gold", cfg.Texture)
	assert.Equal(t, geometry.Octahedron, v.Geometry.Base())
}

func TestUnknownTextureFallsBack(t *testing.T) {
	v := newViewer(t, func(s *config.SphereConfig) { s.Texture = "plaid" })
	assert.Equal(t, "default", v.Store.Get().Texture)
}

func TestStartAndRun(t *testing.T) {
	v := newViewer(t, nil)
	require.NoError(t, v.Start())
	assert.True(t, v.Loop.Running())

	for i := 0; i < 10; i++ {
		v.Clock.Step(1.0 / 60)
	}
	v.Geometry.Wait()

	mesh := v.Mesh()
	require.NotNil(t, mesh)
	assert.Equal(t, 18, mesh.Detail)
	assert.Greater(t, v.Loop.State().Elapsed, 0.0)
	assert.False(t, v.Model().HasNaN())

	require.NoError(t, v.Close())
	assert.False(t, v.Loop.Running())
}

func TestResize(t *testing.T) {
	v := newViewer(t, nil)
	v.Resize(1000, 500)
	assert.InDelta(t, 2.0, v.Viewport.Aspect(), 1e-6)
	v.Resize(1000, 0)
	assert.InDelta(t, 2.0, v.Viewport.Aspect(), 1e-6)
}

func TestCycleTexture(t *testing.T) {
	v := newViewer(t, nil)
	names := v.Textures()
	require.Equal(t, shaders.Builtin().Names(), names)

	start := v.Store.Get().Texture
	next := v.CycleTexture(1)
	assert.NotEqual(t, start, next)
	assert.Equal(t, next, v.Store.Get().Texture)

	assert.Equal(t, start, v.CycleTexture(-1))

	// A full turn comes back to the start.
	for range names {
		v.CycleTexture(1)
	}
	assert.Equal(t, start, v.Store.Get().Texture)
}

func TestSelectPresetIndex(t *testing.T) {
	v := newViewer(t, nil)
	v.SelectTexture("onyx")

	names := v.Store.ListPresetNames()
	require.True(t, v.SelectPresetIndex(len(names)-1))
	assert.Equal(t, 28, v.Store.Get().Vertices) // "slow" sorts last
	assert.Equal(t, "onyx", v.Store.Get().Texture)

	assert.False(t, v.SelectPresetIndex(len(names)))
	assert.False(t, v.SelectPresetIndex(-1))
}

func TestAdjust(t *testing.T) {
	v := newViewer(t, nil)

	assert.Equal(t, 19, v.AdjustDetail(DetailStep))
	assert.Equal(t, geometry.MaxDetail, v.AdjustDetail(1000))
	assert.Equal(t, 0, v.AdjustDetail(-1000))

	v.AdjustSpeed(-10)
	assert.Equal(t, 0.0, v.Store.Get().Speed)
	assert.InDelta(t, SpeedStep, v.AdjustSpeed(SpeedStep), 1e-12)
}

func TestPresetsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.toml")
	require.NoError(t, os.WriteFile(path, []byte("[tiny]\nvertices = 1\nspeed = 0.5\n"), 0644))

	v := newViewer(t, func(s *config.SphereConfig) {
		s.PresetsFile = path
		s.Preset = "tiny"
	})
	assert.Contains(t, v.Store.ListPresetNames(), "tiny")
	assert.Equal(t, 1, v.Store.Get().Vertices)
}

func TestPresetsFileMissing(t *testing.T) {
	sphere := config.Default().Sphere
	sphere.PresetsFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := New(sphere, 10, 10)
	assert.Error(t, err)
}

func TestWatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "live.yaml")
	require.NoError(t, os.WriteFile(path, []byte("texture: silver\nspeed: 2\n"), 0644))

	v := newViewer(t, func(s *config.SphereConfig) { s.WatchFile = path })
	require.NoError(t, v.Start())

	v.Update()
	assert.Equal(t, "silver", v.Store.Get().Texture)
	assert.Equal(t, 2.0, v.Store.Get().Speed)

	require.NoError(t, os.WriteFile(path, []byte("preset: energetic\n"), 0644))
	assert.Eventually(t, func() bool {
		v.Update()
		return v.Store.Get().Vertices == 33
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, "silver", v.Store.Get().Texture)
}
