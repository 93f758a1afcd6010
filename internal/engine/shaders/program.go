// Package shaders holds the texture variants the sphere can be drawn with:
// named GLSL program pairs and the uniforms each one expects.
package shaders

// Space tells the renderer what geometry a program draws.
type Space uint8

const (
	// MeshSpace programs shade the displaced sphere mesh.
	MeshSpace Space = iota
	// ScreenSpace programs shade a fullscreen quad and ignore the mesh.
	ScreenSpace
)

func (s Space) String() string {
	if s == ScreenSpace {
		return "screen"
	}
	return "mesh"
}

// UniformSpec declares a uniform and the value it starts with.
type UniformSpec struct {
	Name    string
	Default Value
}

// Program is an immutable vertex/fragment source pair.
type Program struct {
	Name     string
	Space    Space
	Vertex   string
	Fragment string
	Uniforms []UniformSpec
}

// Uniform looks up a declared uniform.
func (p *Program) Uniform(name string) (UniformSpec, bool) {
	for _, u := range p.Uniforms {
		if u.Name == name {
			return u, true
		}
	}
	return UniformSpec{}, false
}

// Base uniforms every variant receives from the material.
const (
	UniformTime           = "uTime"
	UniformSeed           = "uSeed"
	UniformColor          = "uColor"
	UniformNoiseFrequency = "uNoiseFrequency"
	UniformNoiseAmplitude = "uNoiseAmplitude"
	UniformResolution     = "uResolution"
)

// Transform uniforms, set by the renderer on mesh-space programs.
const (
	UniformModel      = "uModel"
	UniformView       = "uView"
	UniformProjection = "uProjection"
)

// Vertex attribute locations in sphere.vert and screen.vert.
const (
	AttribPosition = 0
	AttribNormal   = 1
	AttribCorner   = 2
)
