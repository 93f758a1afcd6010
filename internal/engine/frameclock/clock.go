// Package frameclock drives per-frame callbacks from the host's display loop.
package frameclock

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/supersphere/internal/logger"
)

type callback struct {
	id int
	fn func(dt float64)
}

// Clock runs registered callbacks once per Tick with the wall time elapsed
// since the previous Tick. It is used from a single thread.
type Clock struct {
	now       func() time.Time
	callbacks []callback
	nextID    int

	last    time.Time
	started bool

	frames   int
	fpsSince time.Time
	fps      float64
}

// New creates a clock reading the system time.
func New() *Clock {
	return NewWithSource(time.Now)
}

// NewWithSource creates a clock reading time from now.
func NewWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Schedule registers fn to run on every frame until cancel is called.
func (c *Clock) Schedule(fn func(dt float64)) (cancel func()) {
	c.nextID++
	id := c.nextID
	c.callbacks = append(c.callbacks, callback{id: id, fn: fn})
	return func() {
		for i, cb := range c.callbacks {
			if cb.id == id {
				c.callbacks = append(c.callbacks[:i:i], c.callbacks[i+1:]...)
				return
			}
		}
	}
}

// Pending returns the number of registered callbacks.
func (c *Clock) Pending() int {
	return len(c.callbacks)
}

// Tick measures the time since the previous Tick and runs every callback
// with it. The first Tick after creation or Reset runs with dt 0.
func (c *Clock) Tick() float64 {
	now := c.now()
	dt := 0.0
	if c.started {
		dt = now.Sub(c.last).Seconds()
	} else {
		c.started = true
		c.fpsSince = now
	}
	c.last = now

	c.countFrame(now)
	c.Step(dt)
	return dt
}

// Step runs every callback with a fixed dt without reading the time source.
func (c *Clock) Step(dt float64) {
	// Callbacks may cancel themselves while running.
	callbacks := append([]callback(nil), c.callbacks...)
	for _, cb := range callbacks {
		cb.fn(dt)
	}
}

// Reset forgets the previous Tick so a paused host does not feed the pause
// into the next frame.
func (c *Clock) Reset() {
	c.started = false
}

// FPS returns the frame rate measured over the last full second.
func (c *Clock) FPS() float64 {
	return c.fps
}

func (c *Clock) countFrame(now time.Time) {
	c.frames++
	if elapsed := now.Sub(c.fpsSince); elapsed >= time.Second {
		c.fps = float64(c.frames) / elapsed.Seconds()
		logger.Debug("fps", zap.Float64("fps", c.fps), zap.Int("callbacks", len(c.callbacks)))
		c.frames = 0
		c.fpsSince = now
	}
}
