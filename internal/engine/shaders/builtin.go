package shaders

import _ "embed"

var (
	//go:embed glsl/sphere.vert
	sphereVert string
	//go:embed glsl/screen.vert
	screenVert string
	//go:embed glsl/wireframe.frag
	wireframeFrag string
	//go:embed glsl/metal.frag
	metalFrag string
	//go:embed glsl/mythic.frag
	mythicFrag string
	//go:embed glsl/ethereal.frag
	etherealFrag string
)

// DefaultVariant is the wireframe variant every unknown name falls back to.
const DefaultVariant = "default"

type metal struct {
	bright, dark, specular [3]float32
	shininess, iridescence float32
}

var metals = map[string]metal{
	"gold": {
		bright:    [3]float32{1.0, 0.843, 0.0},
		dark:      [3]float32{0.7, 0.5, 0.0},
		specular:  [3]float32{1.0, 1.0, 1.0},
		shininess: 32,
	},
	"bronze": {
		bright:    [3]float32{0.80, 0.50, 0.20},
		dark:      [3]float32{0.45, 0.25, 0.08},
		specular:  [3]float32{1.0, 0.85, 0.7},
		shininess: 24,
	},
	"silver": {
		bright:    [3]float32{0.95, 0.95, 0.97},
		dark:      [3]float32{0.55, 0.56, 0.60},
		specular:  [3]float32{1.0, 1.0, 1.0},
		shininess: 48,
	},
	"onyx": {
		bright:    [3]float32{0.25, 0.25, 0.28},
		dark:      [3]float32{0.02, 0.02, 0.03},
		specular:  [3]float32{0.8, 0.8, 0.9},
		shininess: 64,
	},
	"diamond": {
		bright:      [3]float32{0.90, 0.97, 1.0},
		dark:        [3]float32{0.60, 0.75, 0.85},
		specular:    [3]float32{1.0, 1.0, 1.0},
		shininess:   128,
		iridescence: 0.35,
	},
}

func metalProgram(name string, m metal) Program {
	return Program{
		Name:     name,
		Space:    MeshSpace,
		Vertex:   sphereVert,
		Fragment: metalFrag,
		Uniforms: []UniformSpec{
			{Name: "uBrightTint", Default: Vec3(m.bright[0], m.bright[1], m.bright[2])},
			{Name: "uDarkTint", Default: Vec3(m.dark[0], m.dark[1], m.dark[2])},
			{Name: "uSpecularTint", Default: Vec3(m.specular[0], m.specular[1], m.specular[2])},
			{Name: "uShininess", Default: Float(m.shininess)},
			{Name: "uIridescence", Default: Float(m.iridescence)},
		},
	}
}

// Builtin returns a registry with every texture variant the viewer ships.
func Builtin() *Registry {
	r := NewRegistry(DefaultVariant)

	mustRegister(r, Program{
		Name:     DefaultVariant,
		Space:    MeshSpace,
		Vertex:   sphereVert,
		Fragment: wireframeFrag,
	})
	for name, m := range metals {
		mustRegister(r, metalProgram(name, m))
	}
	mustRegister(r, Program{
		Name:     "mythic",
		Space:    MeshSpace,
		Vertex:   sphereVert,
		Fragment: mythicFrag,
		Uniforms: []UniformSpec{
			{Name: "uIridescence", Default: Float(1.0)},
			{Name: "uEdgeGlow", Default: Float(0.6)},
		},
	})
	mustRegister(r, Program{
		Name:     "ethereal",
		Space:    ScreenSpace,
		Vertex:   screenVert,
		Fragment: etherealFrag,
	})
	return r
}

func mustRegister(r *Registry, p Program) {
	if err := r.Register(p); err != nil {
		panic(err)
	}
}
