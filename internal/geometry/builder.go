package geometry

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/supersphere/internal/logger"
)

// Builder rebuilds meshes off the render thread. A single worker builds the
// most recently requested detail; requests that arrive while it is busy
// replace each other, so at most one build is in flight. Finished meshes are
// handed over with a single atomic pointer swap, so Latest never sees a mesh
// that is still being filled in.
type Builder struct {
	base  Base
	build func(Base, int) *Mesh

	current atomic.Pointer[Mesh]

	mu        sync.Mutex
	idle      *sync.Cond
	requested int
	running   bool
	builds    int
}

// NewBuilder creates a builder for the given base polyhedron.
func NewBuilder(base Base) *Builder {
	b := &Builder{
		base:      base,
		build:     Build,
		requested: -1,
	}
	b.idle = sync.NewCond(&b.mu)
	return b
}

// Base returns the polyhedron this builder subdivides.
func (b *Builder) Base() Base {
	return b.base
}

// Request asks for a mesh at detail. It returns at once; the worker picks up
// the latest request when its current build finishes. Safe to call every
// frame.
func (b *Builder) Request(detail int) {
	detail = clampDetail(detail)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.requested == detail {
		return
	}
	b.requested = detail
	if !b.running {
		b.running = true
		go b.run()
	}
}

// run builds until the published mesh matches the latest request.
func (b *Builder) run() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for {
		detail := b.requested
		if m := b.current.Load(); m != nil && m.Detail == detail {
			b.running = false
			b.idle.Broadcast()
			return
		}

		b.mu.Unlock()
		start := time.Now()
		mesh := b.build(b.base, detail)
		b.mu.Lock()

		b.builds++
		if b.requested != detail {
			// Superseded while building.
			continue
		}
		b.current.Store(mesh)
		logger.Debug("mesh rebuilt",
			zap.Stringer("base", b.base),
			zap.Int("detail", detail),
			zap.Int("triangles", mesh.TriangleCount()),
			zap.Duration("took", time.Since(start)),
		)
	}
}

// Latest returns the most recently completed mesh, or nil before the first
// build finishes.
func (b *Builder) Latest() *Mesh {
	return b.current.Load()
}

// Builds returns how many meshes the worker has built, published or not.
func (b *Builder) Builds() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.builds
}

// Wait blocks until the worker is idle.
func (b *Builder) Wait() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for b.running {
		b.idle.Wait()
	}
}
