// Package geometry builds the subdivided polyhedron the sphere is drawn from.
package geometry

import (
	"fmt"
	"strings"

	"github.com/Faultbox/supersphere/pkg/math"
)

// MaxDetail caps the subdivision level. An icosahedron at this level has
// 20*129^2 (about 333k) triangles.
const MaxDetail = 128

// FloatsPerVertex is the interleaved layout: position, normal, corner tag.
const FloatsPerVertex = 9

// Base selects the polyhedron that gets subdivided.
type Base int

const (
	Icosahedron Base = iota
	Octahedron
	Tetrahedron
)

var baseNames = map[Base]string{
	Icosahedron: "icosahedron",
	Octahedron:  "octahedron",
	Tetrahedron: "tetrahedron",
}

// String returns the base name.
func (b Base) String() string {
	if name, ok := baseNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Base(%d)", int(b))
}

// ParseBase converts a name to a Base. Unknown names yield Icosahedron and false.
func ParseBase(name string) (Base, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for b, n := range baseNames {
		if n == name {
			return b, true
		}
	}
	return Icosahedron, false
}

// Corner tags, assigned cyclically to the three vertices of every triangle.
var (
	CornerA = math.Vec3{X: 1, Y: 0, Z: 0}
	CornerB = math.Vec3{X: 0, Y: 1, Z: 0}
	CornerC = math.Vec3{X: 0, Y: 0, Z: 1}
)

// Mesh is a non-indexed triangle soup: three consecutive entries per triangle
// in each of the parallel slices.
type Mesh struct {
	Base      Base
	Detail    int
	Positions []math.Vec3
	Normals   []math.Vec3
	Corners   []math.Vec3
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Positions) / 3
}

// Interleaved packs the mesh for a single vertex buffer, FloatsPerVertex
// floats per vertex.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Positions)*FloatsPerVertex)
	for i := range m.Positions {
		p, n, c := m.Positions[i], m.Normals[i], m.Corners[i]
		out = append(out,
			p.X, p.Y, p.Z,
			n.X, n.Y, n.Z,
			c.X, c.Y, c.Z,
		)
	}
	return out
}
