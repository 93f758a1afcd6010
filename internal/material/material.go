// Package material binds a texture variant to the live uniform values the
// renderer uploads each frame.
package material

import (
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/supersphere/internal/engine/shaders"
	"github.com/Faultbox/supersphere/internal/logger"
	"github.com/Faultbox/supersphere/internal/store"
)

// Base uniform defaults, before the first Configure.
const (
	DefaultNoiseFrequency = 1.5
	DefaultNoiseAmplitude = 0.25
)

// Resolver maps a texture name to a program, falling back to a default.
type Resolver interface {
	Resolve(name string) *shaders.Program
}

// Material pairs the bound program with its uniform table. The table is
// replaced when the bound program changes and otherwise updated in place.
type Material struct {
	resolver  Resolver
	requested string

	program    *shaders.Program
	uniforms   map[string]shaders.Value
	names      []string
	generation uint64
}

// New creates a material bound to the resolver's default program.
func New(resolver Resolver) *Material {
	m := &Material{resolver: resolver, requested: shaders.DefaultVariant}
	m.bind(resolver.Resolve(shaders.DefaultVariant))
	return m
}

// Configure selects a texture and sets the per-configuration uniforms. The
// uniform table is rebuilt only when texture resolves to a different program.
func (m *Material) Configure(texture string, color store.Color, freq, amp float32) {
	m.requested = texture
	if p := m.resolver.Resolve(texture); p != m.program {
		m.bind(p)
	}
	m.uniforms[shaders.UniformColor] = shaders.Vec3(color.R, color.G, color.B)
	m.uniforms[shaders.UniformNoiseFrequency] = shaders.Float(freq)
	m.uniforms[shaders.UniformNoiseAmplitude] = shaders.Float(amp)
}

// Tick writes the per-frame uniforms. Resolution is only read by screen-space
// programs.
func (m *Material) Tick(time, seed float32, resolution [2]float32) {
	m.uniforms[shaders.UniformTime] = shaders.Float(time)
	m.uniforms[shaders.UniformSeed] = shaders.Float(seed)
	m.uniforms[shaders.UniformResolution] = shaders.Vec2(resolution[0], resolution[1])
}

func (m *Material) bind(p *shaders.Program) {
	uniforms := map[string]shaders.Value{
		shaders.UniformTime:           shaders.Float(0),
		shaders.UniformSeed:           shaders.Float(0),
		shaders.UniformColor:          shaders.Vec3(1, 1, 1),
		shaders.UniformNoiseFrequency: shaders.Float(DefaultNoiseFrequency),
		shaders.UniformNoiseAmplitude: shaders.Float(DefaultNoiseAmplitude),
		shaders.UniformResolution:     shaders.Vec2(0, 0),
	}
	name := ""
	if p != nil {
		name = p.Name
		for _, u := range p.Uniforms {
			uniforms[u.Name] = u.Default
		}
	}

	names := make([]string, 0, len(uniforms))
	for n := range uniforms {
		names = append(names, n)
	}
	sort.Strings(names)

	m.program = p
	m.uniforms = uniforms
	m.names = names
	m.generation++

	logger.Debug("material bound",
		zap.String("program", name),
		zap.String("requested", m.requested),
		zap.Uint64("generation", m.generation),
	)
}

// Program returns the bound program.
func (m *Material) Program() *shaders.Program {
	return m.program
}

// Requested returns the texture name last passed to Configure.
func (m *Material) Requested() string {
	return m.requested
}

// Generation increases every time the uniform table is rebuilt.
func (m *Material) Generation() uint64 {
	return m.generation
}

// Uniform returns the current value of a uniform.
func (m *Material) Uniform(name string) (shaders.Value, bool) {
	v, ok := m.uniforms[name]
	return v, ok
}

// Each calls fn for every uniform in name order.
func (m *Material) Each(fn func(name string, v shaders.Value)) {
	for _, n := range m.names {
		fn(n, m.uniforms[n])
	}
}
