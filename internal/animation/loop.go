// Package animation runs the per-frame update that advances time, feeds the
// material and spins the sphere.
package animation

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/Faultbox/supersphere/internal/logger"
	"github.com/Faultbox/supersphere/internal/store"
	pmath "github.com/Faultbox/supersphere/pkg/math"
)

// RotationRate is the rotation, in radians per second, at rotation speed 1.
// It equals 0.01 radians per frame at 60 frames per second.
const RotationRate = 0.6

var (
	// ErrNoScheduler is returned by Start without a scheduler.
	ErrNoScheduler = errors.New("animation: no scheduler")
	// ErrRunning is returned by Start on a loop that is already running.
	ErrRunning = errors.New("animation: already running")
)

// Scheduler calls fn once per display frame until cancel is called.
type Scheduler interface {
	Schedule(fn func(dt float64)) (cancel func())
}

// ConfigSource provides the parameter snapshot read at the top of each frame.
type ConfigSource interface {
	Get() store.Config
}

// MaterialSink receives the frame's uniform values.
type MaterialSink interface {
	Configure(texture string, color store.Color, freq, amp float32)
	Tick(time, seed float32, resolution [2]float32)
}

// Surface reports the render surface size.
type Surface interface {
	Resolution() [2]float32
}

// MeshRequester rebuilds the mesh when the detail level changes.
type MeshRequester interface {
	Request(detail int)
}

// Options wires a Loop to its collaborators. Viewport and Geometry may be nil.
type Options struct {
	Store    ConfigSource
	Material MaterialSink
	Viewport Surface
	Geometry MeshRequester
	Seed     float32
}

// Status is the lifecycle state of a Loop.
type Status int

const (
	Idle Status = iota
	Running
)

func (s Status) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Transform holds the sphere's rotation about X and Y, in radians.
type Transform struct {
	X, Y float64
}

// Matrix returns the model matrix for the rotation.
func (t Transform) Matrix() pmath.Mat4 {
	return pmath.EulerXY(float32(t.X), float32(t.Y))
}

// State is everything the loop accumulates between frames.
type State struct {
	Elapsed  float64
	Rotation Transform
	Frames   uint64
}

// Loop advances the animation once per scheduled frame.
type Loop struct {
	opts   Options
	status Status
	state  State
	cancel func()
}

// New creates an idle loop.
func New(opts Options) *Loop {
	return &Loop{opts: opts}
}

// Start registers the loop with s. The loop then runs until Stop.
func (l *Loop) Start(s Scheduler) error {
	if s == nil {
		return ErrNoScheduler
	}
	if l.status == Running {
		return ErrRunning
	}
	l.cancel = s.Schedule(l.Frame)
	l.status = Running
	logger.Info("animation started", zap.Float32("seed", l.opts.Seed))
	return nil
}

// Stop cancels the frame callback. Stopping an idle loop does nothing.
func (l *Loop) Stop() {
	if l.status != Running {
		return
	}
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.status = Idle
	logger.Info("animation stopped",
		zap.Uint64("frames", l.state.Frames),
		zap.Float64("elapsed", l.state.Elapsed),
	)
}

// Frame runs one frame of work for a frame that took dt seconds.
// Elapsed time advances by dt scaled by speed. Rotation is also scaled by
// frame time, rotationSpeed·dt·RotationRate per axis, rather than a fixed
// amount per frame, so a dropped frame does not slow the spin. At 60 Hz this
// matches a step of 0.01 rad per frame.
func (l *Loop) Frame(dt float64) {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}

	cfg := l.opts.Store.Get()

	l.state.Elapsed += dt * cfg.Speed
	l.state.Frames++

	if l.opts.Geometry != nil {
		l.opts.Geometry.Request(cfg.Vertices)
	}

	var resolution [2]float32
	if l.opts.Viewport != nil {
		resolution = l.opts.Viewport.Resolution()
	}
	l.opts.Material.Configure(cfg.Texture, cfg.Color, float32(cfg.NoiseFrequency), float32(cfg.NoiseAmplitude))
	l.opts.Material.Tick(float32(l.state.Elapsed), l.opts.Seed, resolution)

	step := cfg.RotationSpeed * dt * RotationRate
	l.state.Rotation.X += step
	l.state.Rotation.Y += step
}

// Status returns whether the loop is registered with a scheduler.
func (l *Loop) Status() Status {
	return l.status
}

// Running reports whether the loop is registered with a scheduler.
func (l *Loop) Running() bool {
	return l.status == Running
}

// State returns the accumulated animation state.
func (l *Loop) State() State {
	return l.state
}

// Model returns the current model matrix.
func (l *Loop) Model() pmath.Mat4 {
	return l.state.Rotation.Matrix()
}

// Seed returns the noise seed passed to the material.
func (l *Loop) Seed() float32 {
	return l.opts.Seed
}
