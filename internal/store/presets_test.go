package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadPresetsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	writeFile(t, path, `
calm:
  vertices: 4
  speed: 0.1
  color: "#00ff00"
  noiseFrequency: 0.5
  noiseAmplitude: 0.2
  rotationSpeed: 0.05
  texture: gold
`)

	p, err := LoadPresets(path)
	require.NoError(t, err)
	require.Contains(t, p, "calm")

	calm := p["calm"]
	assert.Equal(t, 4, calm.Vertices)
	assert.Equal(t, Color{G: 1}, calm.Color)
	assert.Empty(t, calm.Texture, "preset textures are ignored")
}

func TestLoadPresetsTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	writeFile(t, path, `
[storm]
vertices = 40
speed = 2.0
color = "#0000ff"
noiseFrequency = 1.5
noiseAmplitude = 0.75
rotationSpeed = 1.0
`)

	p, err := LoadPresets(path)
	require.NoError(t, err)

	storm := p["storm"]
	assert.Equal(t, 40, storm.Vertices)
	assert.Equal(t, 2.0, storm.Speed)
	assert.Equal(t, Color{B: 1}, storm.Color)
	assert.Equal(t, 0.75, storm.NoiseAmplitude)
}

func TestLoadPresetsErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadPresets(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	ini := filepath.Join(dir, "presets.ini")
	writeFile(t, ini, "[x]\n")
	_, err = LoadPresets(ini)
	assert.ErrorIs(t, err, ErrUnknownFormat)

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "calm: [unterminated\n")
	_, err = LoadPresets(bad)
	assert.Error(t, err)
}

func TestPresetsWith(t *testing.T) {
	base := Presets{"a": {Vertices: 1}, "b": {Vertices: 2}}
	merged := base.With(Presets{"b": {Vertices: 20}, "c": {Vertices: 3}})

	assert.Equal(t, []string{"a", "b", "c"}, merged.Names())
	assert.Equal(t, 20, merged["b"].Vertices)
	assert.Equal(t, 2, base["b"].Vertices, "receiver is not modified")
}

func TestReadUpdate(t *testing.T) {
	dir := t.TempDir()

	yml := filepath.Join(dir, "live.yaml")
	writeFile(t, yml, "preset: slow\nspeed: 3\ntexture: onyx\n")
	u, err := ReadUpdate(yml)
	require.NoError(t, err)
	assert.Equal(t, "slow", u.Preset)
	require.NotNil(t, u.Partial.Speed)
	assert.Equal(t, 3.0, *u.Partial.Speed)
	require.NotNil(t, u.Partial.Texture)
	assert.Equal(t, "onyx", *u.Partial.Texture)
	assert.Nil(t, u.Partial.Vertices)

	tml := filepath.Join(dir, "live.toml")
	writeFile(t, tml, "vertices = 7\ncolor = \"#ffffff\"\n")
	u, err = ReadUpdate(tml)
	require.NoError(t, err)
	assert.Empty(t, u.Preset)
	require.NotNil(t, u.Partial.Vertices)
	assert.Equal(t, 7, *u.Partial.Vertices)
	require.NotNil(t, u.Partial.Color)
	assert.Equal(t, Color{R: 1, G: 1, B: 1}, *u.Partial.Color)
}

func TestReadUpdateCoercesBadValues(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "live.yaml", "speed: fast\nrotationSpeed: 2\ncolor: nope\nbrightness: 3\n"},
		{"toml", "live.toml", "speed = \"fast\"\nrotationSpeed = 2\ncolor = \"nope\"\nbrightness = 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			writeFile(t, path, tt.content)

			u, err := ReadUpdate(path)
			require.NoError(t, err)
			require.NotNil(t, u.Partial.Speed)
			require.NotNil(t, u.Partial.RotationSpeed)
			require.NotNil(t, u.Partial.Color)
			assert.Equal(t, 0.0, *u.Partial.Speed)
			assert.Equal(t, 2.0, *u.Partial.RotationSpeed)
			assert.Equal(t, Color{}, *u.Partial.Color)
			assert.Nil(t, u.Partial.Vertices)

			s := New(Builtin())
			u.ApplyTo(s)
			assert.Equal(t, 0.0, s.Get().Speed)
			assert.Equal(t, 2.0, s.Get().RotationSpeed)
			assert.Equal(t, 18, s.Get().Vertices)
		})
	}
}

func TestReadUpdateMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "live.yaml")
	writeFile(t, path, "speed: [1, 2\n")
	_, err := ReadUpdate(path)
	assert.Error(t, err)
}

func TestPartialSet(t *testing.T) {
	var p Partial
	require.NoError(t, p.Set("Vertices", "12.9"))
	require.NoError(t, p.Set("frequency", "NaN"))
	require.NoError(t, p.Set("rotation", " 1.5 "))
	require.NoError(t, p.Set("texture", " gold "))
	assert.Equal(t, 12, *p.Vertices)
	assert.Equal(t, 0.0, *p.NoiseFrequency)
	assert.Equal(t, 1.5, *p.RotationSpeed)
	assert.Equal(t, "gold", *p.Texture)

	assert.ErrorIs(t, p.Set("brightness", "1"), ErrUnknownField)
}

func TestUpdateApplyTo(t *testing.T) {
	s := New(Builtin(), WithTexture("gold"))
	Update{Preset: "slow", Partial: Partial{Speed: Float(9)}}.ApplyTo(s)

	cfg := s.Get()
	assert.Equal(t, 28, cfg.Vertices)
	assert.Equal(t, 9.0, cfg.Speed)
	assert.Equal(t, "gold", cfg.Texture)
}

func TestWatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "live.yaml")
	writeFile(t, path, "speed: 4\n")

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	s := New(Builtin())

	// The initial contents are queued right away.
	assert.Equal(t, 1, w.Apply(s))
	assert.Equal(t, 4.0, s.Get().Speed)

	// Nothing is applied until Apply runs.
	writeFile(t, path, "speed: 5\nvertices: 3\n")
	assert.Eventually(t, func() bool { return w.Pending() > 0 }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, 4.0, s.Get().Speed)

	assert.Eventually(t, func() bool {
		w.Apply(s)
		return s.Get().Speed == 5 && s.Get().Vertices == 3
	}, 5*time.Second, 10*time.Millisecond)

	// A bad value in a later revision only zeroes that field.
	writeFile(t, path, "speed: fast\nrotationSpeed: 2\n")
	assert.Eventually(t, func() bool {
		w.Apply(s)
		return s.Get().RotationSpeed == 2
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, 0.0, s.Get().Speed)
	assert.Equal(t, 3, s.Get().Vertices)
}

func TestWatchRejectsUnknownFormat(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "live.json"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := Watch(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Zero(t, w.Pending())
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
