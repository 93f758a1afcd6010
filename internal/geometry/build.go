package geometry

import "github.com/Faultbox/supersphere/pkg/math"

func clampDetail(detail int) int {
	if detail < 0 {
		return 0
	}
	if detail > MaxDetail {
		return MaxDetail
	}
	return detail
}

// Build subdivides base at the given detail level and projects the result
// onto the unit sphere. Each face becomes (detail+1)^2 triangles. Detail is
// clamped to [0, MaxDetail]; unknown bases fall back to Icosahedron.
//
// Every call allocates fresh slices, corner tags included.
func Build(base Base, detail int) *Mesh {
	poly, ok := polyhedra[base]
	if !ok {
		base = Icosahedron
		poly = polyhedra[base]
	}
	detail = clampDetail(detail)

	triangles := TriangleCount(base, detail)
	m := &Mesh{
		Base:      base,
		Detail:    detail,
		Positions: make([]math.Vec3, 0, triangles*3),
	}

	for _, f := range poly.faces {
		m.Positions = subdivideFace(m.Positions,
			poly.vertices[f[0]], poly.vertices[f[1]], poly.vertices[f[2]], detail)
	}

	for i, p := range m.Positions {
		m.Positions[i] = p.Normalize()
	}

	if detail == 0 {
		m.Normals = flatNormals(m.Positions)
	} else {
		m.Normals = make([]math.Vec3, len(m.Positions))
		copy(m.Normals, m.Positions)
	}

	m.Corners = cornerTags(len(m.Positions))
	return m
}

// subdivideFace appends the triangles of face (a, b, c) split into a
// triangular grid with detail+1 segments per edge.
func subdivideFace(out []math.Vec3, a, b, c math.Vec3, detail int) []math.Vec3 {
	cols := detail + 1

	// grid[i] holds the points on row i, walking from the a-c edge to the b-c edge.
	grid := make([][]math.Vec3, cols+1)
	for i := 0; i <= cols; i++ {
		t := float32(i) / float32(cols)
		aj := a.Lerp(c, t)
		bj := b.Lerp(c, t)
		rows := cols - i

		grid[i] = make([]math.Vec3, rows+1)
		for j := 0; j <= rows; j++ {
			if j == 0 && i == cols {
				grid[i][j] = aj
			} else {
				grid[i][j] = aj.Lerp(bj, float32(j)/float32(rows))
			}
		}
	}

	for i := 0; i < cols; i++ {
		for j := 0; j < 2*(cols-i)-1; j++ {
			k := j / 2
			if j%2 == 0 {
				out = append(out, grid[i][k+1], grid[i+1][k], grid[i][k])
			} else {
				out = append(out, grid[i][k+1], grid[i+1][k+1], grid[i+1][k])
			}
		}
	}
	return out
}

// flatNormals gives each triangle's vertices the face normal, oriented outward.
func flatNormals(positions []math.Vec3) []math.Vec3 {
	normals := make([]math.Vec3, len(positions))
	for i := 0; i+2 < len(positions); i += 3 {
		a, b, c := positions[i], positions[i+1], positions[i+2]
		n := b.Sub(a).Cross(c.Sub(a)).Normalize()

		centroid := a.Add(b).Add(c)
		if n.Dot(centroid) < 0 {
			n = n.Scale(-1)
		}
		normals[i], normals[i+1], normals[i+2] = n, n, n
	}
	return normals
}

// cornerTags assigns CornerA, CornerB, CornerC to each triangle in vertex order.
func cornerTags(vertexCount int) []math.Vec3 {
	tags := make([]math.Vec3, vertexCount)
	for i := range tags {
		switch i % 3 {
		case 0:
			tags[i] = CornerA
		case 1:
			tags[i] = CornerB
		default:
			tags[i] = CornerC
		}
	}
	return tags
}
