package geometry

import "github.com/Faultbox/supersphere/pkg/math"

// polyhedron is a base solid: corner vertices and triangle faces.
type polyhedron struct {
	vertices []math.Vec3
	faces    [][3]int
}

var golden = float32(1.618033988749895)

var polyhedra = map[Base]polyhedron{
	Icosahedron: {
		vertices: []math.Vec3{
			{X: -1, Y: golden}, {X: 1, Y: golden}, {X: -1, Y: -golden}, {X: 1, Y: -golden},
			{Y: -1, Z: golden}, {Y: 1, Z: golden}, {Y: -1, Z: -golden}, {Y: 1, Z: -golden},
			{X: golden, Z: -1}, {X: golden, Z: 1}, {X: -golden, Z: -1}, {X: -golden, Z: 1},
		},
		faces: [][3]int{
			{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
			{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
			{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
			{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
		},
	},
	Octahedron: {
		vertices: []math.Vec3{
			{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
		},
		faces: [][3]int{
			{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
			{1, 2, 5}, {1, 5, 3}, {1, 3, 4}, {1, 4, 2},
		},
	},
	Tetrahedron: {
		vertices: []math.Vec3{
			{X: 1, Y: 1, Z: 1}, {X: -1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: -1}, {X: 1, Y: -1, Z: -1},
		},
		faces: [][3]int{
			{2, 1, 0}, {0, 3, 2}, {1, 3, 0}, {2, 3, 1},
		},
	},
}

// FaceCount returns the number of faces of the undivided base.
func (b Base) FaceCount() int {
	return len(polyhedra[b].faces)
}

// TriangleCount returns the triangle count Build produces for detail.
func TriangleCount(base Base, detail int) int {
	cols := clampDetail(detail) + 1
	return base.FaceCount() * cols * cols
}
