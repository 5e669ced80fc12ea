package internal

import "github.com/ungerik/go3d/float64/vec3"

// IcosahedronVertices is the vertex count of the base icosahedron.
const IcosahedronVertices = 12

// Icosahedron returns the triangle index buffer of the base icosahedron,
// 20 faces wound counterclockwise seen from outside the solid.
func Icosahedron() []uint32 {
	return []uint32{
		0, 11, 5,
		0, 5, 1,
		0, 1, 7,
		0, 7, 10,
		0, 10, 11,
		1, 5, 9,
		5, 11, 4,
		11, 10, 2,
		10, 7, 6,
		7, 1, 8,
		3, 9, 4,
		3, 4, 2,
		3, 2, 6,
		3, 6, 8,
		3, 8, 9,
		4, 9, 5,
		2, 4, 11,
		6, 2, 10,
		8, 6, 7,
		9, 8, 1,
	}
}

// IcosahedronPoints returns the unit-sphere positions of the 12 vertices
// referenced by Icosahedron(), built from three orthogonal golden rectangles.
func IcosahedronPoints() []vec3.T {
	// golden ratio
	const t = 1.618033988749895

	pts := []vec3.T{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
	for i := range pts {
		pts[i].Normalize()
	}

	return pts
}

// Subdivide splits every triangle of the buffer into four by bisecting its
// edges, the way each level of icosphere subdivision does. Midpoint vertices
// are assigned ids vertexCount and up, one per undirected edge, and winding
// is preserved.
//
// **params**
// + triangle index buffer to subdivide
// + number of vertices the buffer draws from
//
// **returns**
// + the subdivided index buffer, four triangles per input triangle
// + for each new midpoint vertex in id order, the two edge endpoints it
//   bisects (so callers that track positions can place it)
func Subdivide(indices []uint32, vertexCount int) ([]uint32, [][2]uint32) {
	out := make([]uint32, 0, len(indices)*4)
	parents := make([][2]uint32, 0, len(indices))
	midpoints := make(map[[2]uint32]uint32, len(indices))

	midpoint := func(a, b uint32) uint32 {
		key := [2]uint32{a, b}
		if b < a {
			key = [2]uint32{b, a}
		}
		if m, ok := midpoints[key]; ok {
			return m
		}
		m := uint32(vertexCount + len(parents))
		midpoints[key] = m
		parents = append(parents, [2]uint32{a, b})
		return m
	}

	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		ab, bc, ca := midpoint(a, b), midpoint(b, c), midpoint(c, a)

		out = append(out,
			a, ab, ca,
			b, bc, ab,
			c, ca, bc,
			ab, bc, ca,
		)
	}

	return out, parents
}
