package shaders

import "fmt"

// Kind is the GLSL type of a uniform value.
type Kind uint8

const (
	KindFloat Kind = iota + 1
	KindVec2
	KindVec3
)

// String returns the GLSL type name.
func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindVec2:
		return "vec2"
	case KindVec3:
		return "vec3"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Size is the number of float components.
func (k Kind) Size() int {
	switch k {
	case KindFloat:
		return 1
	case KindVec2:
		return 2
	case KindVec3:
		return 3
	}
	return 0
}

// Value is a uniform value of up to three floats.
type Value struct {
	Kind Kind
	V    [3]float32
}

// Float makes a float uniform value.
func Float(f float32) Value {
	return Value{Kind: KindFloat, V: [3]float32{f}}
}

// Vec2 makes a vec2 uniform value.
func Vec2(x, y float32) Value {
	return Value{Kind: KindVec2, V: [3]float32{x, y}}
}

// Vec3 makes a vec3 uniform value.
func Vec3(x, y, z float32) Value {
	return Value{Kind: KindVec3, V: [3]float32{x, y, z}}
}

// Components returns the populated components.
func (v Value) Components() []float32 {
	return v.V[:v.Kind.Size()]
}

func (v Value) String() string {
	return fmt.Sprintf("%s%v", v.Kind, v.Components())
}
