// Package viewer wires the parameter store, animation loop, material and
// mesh builder into one sphere that a host window can draw.
package viewer

import (
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/Faultbox/supersphere/internal/animation"
	"github.com/Faultbox/supersphere/internal/config"
	"github.com/Faultbox/supersphere/internal/engine/frameclock"
	"github.com/Faultbox/supersphere/internal/engine/shaders"
	"github.com/Faultbox/supersphere/internal/geometry"
	"github.com/Faultbox/supersphere/internal/logger"
	"github.com/Faultbox/supersphere/internal/material"
	"github.com/Faultbox/supersphere/internal/store"
	"github.com/Faultbox/supersphere/internal/viewport"
	"github.com/Faultbox/supersphere/pkg/math"
)

// Viewer owns every GL-free part of a running sphere.
type Viewer struct {
	Store    *store.Store
	Registry *shaders.Registry
	Material *material.Material
	Geometry *geometry.Builder
	Viewport *viewport.Controller
	Loop     *animation.Loop
	Clock    *frameclock.Clock

	watcher *store.Watcher
	log     *zap.Logger
}

// New builds a viewer from application settings. Nothing runs until Start.
func New(sphere config.SphereConfig, width, height int) (*Viewer, error) {
	log := logger.Named("viewer")

	presets := store.Builtin()
	if sphere.PresetsFile != "" {
		extra, err := store.LoadPresets(sphere.PresetsFile)
		if err != nil {
			return nil, fmt.Errorf("loading presets: %w", err)
		}
		presets = presets.With(extra)
		log.Info("presets loaded", zap.String("path", sphere.PresetsFile), zap.Int("count", len(extra)))
	}

	reg := shaders.Builtin()

	opts := []store.Option{store.WithTextureCheck(reg.Has, reg.DefaultName())}
	if sphere.Preset != "" {
		opts = append(opts, store.WithInitialPreset(sphere.Preset))
	}
	if sphere.Texture != "" {
		opts = append(opts, store.WithTexture(sphere.Texture))
	}
	st := store.New(presets, opts...)

	base, ok := geometry.ParseBase(sphere.Base)
	if !ok && sphere.Base != "" {
		log.Warn("unknown base polyhedron, using icosahedron", zap.String("base", sphere.Base))
	}

	seed := float32(sphere.Seed)
	if seed == 0 {
		seed = rand.Float32() * 100
	}

	v := &Viewer{
		Store:    st,
		Registry: reg,
		Material: material.New(reg),
		Geometry: geometry.NewBuilder(base),
		Viewport: viewport.New(width, height),
		Clock:    frameclock.New(),
		log:      log,
	}
	v.Loop = animation.New(animation.Options{
		Store:    v.Store,
		Material: v.Material,
		Viewport: v.Viewport,
		Geometry: v.Geometry,
		Seed:     seed,
	})

	if sphere.WatchFile != "" {
		w, err := store.Watch(sphere.WatchFile)
		if err != nil {
			return nil, fmt.Errorf("watching %s: %w", sphere.WatchFile, err)
		}
		v.watcher = w
	}

	cfg := st.Get()
	log.Info("viewer ready",
		zap.String("texture", cfg.Texture),
		zap.Int("vertices", cfg.Vertices),
		zap.Stringer("base", base),
		zap.Float32("seed", seed),
	)
	return v, nil
}

// Start kicks off the first mesh build and registers the animation loop
// with the frame clock.
func (v *Viewer) Start() error {
	v.Geometry.Request(v.Store.Get().Vertices)
	return v.Loop.Start(v.Clock)
}

// Update runs once per displayed frame: queued file changes are applied,
// then the clock runs the animation loop.
func (v *Viewer) Update() {
	if v.watcher != nil {
		if n := v.watcher.Apply(v.Store); n > 0 {
			v.log.Debug("applied parameter file updates", zap.Int("count", n))
		}
	}
	v.Clock.Tick()
}

// Mesh returns the most recent finished mesh, or nil while the first one
// is still building.
func (v *Viewer) Mesh() *geometry.Mesh {
	return v.Geometry.Latest()
}

// Model returns the sphere's current model matrix.
func (v *Viewer) Model() math.Mat4 {
	return v.Loop.Model()
}

// Resize forwards a surface size change to the viewport.
func (v *Viewer) Resize(width, height int) {
	if v.Viewport.Resize(width, height) {
		v.log.Debug("viewport resized", zap.Int("width", width), zap.Int("height", height))
	}
}

// Close stops the loop and waits for any mesh build in flight.
func (v *Viewer) Close() error {
	v.Loop.Stop()
	v.Geometry.Wait()
	if v.watcher != nil {
		return v.watcher.Close()
	}
	return nil
}
