// Package hexsphere converts the triangle index buffer of a subdivided
// icosahedron into per-vertex neighbor rings, so that every vertex can be
// treated as the center of a hexagonal tile (pentagonal at the twelve
// original icosahedron corners).
package hexsphere

import (
	"fmt"

	. "github.com/alexozer/hexsphere/internal"
)

// InvalidMeshError reports an index buffer that cannot describe any triangle
// mesh over the given vertex count: a length that is not a multiple of three,
// a degenerate triangle, or an index outside the vertex range.
type InvalidMeshError struct {
	BufferLen   int
	VertexCount int
	Triangle    int // offending triangle, -1 when the buffer length is wrong
	Index       int // offending index, -1 when the buffer length is wrong
}

func (this *InvalidMeshError) Error() string {
	if this.Triangle < 0 {
		return fmt.Sprintf(
			"hexsphere: index buffer length %d is not a multiple of 3",
			this.BufferLen,
		)
	}
	if this.Index >= this.VertexCount {
		return fmt.Sprintf(
			"hexsphere: triangle %d references vertex %d, out of range for %d vertices",
			this.Triangle, this.Index, this.VertexCount,
		)
	}
	return fmt.Sprintf(
		"hexsphere: triangle %d is degenerate, vertex %d repeats",
		this.Triangle, this.Index,
	)
}

// NonManifoldMeshError reports a buffer whose triangles do not form a closed
// manifold surface around some vertex: an edge shared by more than two
// triangles, an open boundary, a split fan, or a degree above 6. A ring
// cannot be ordered for such a vertex, so no partial output is produced.
type NonManifoldMeshError struct {
	Vertex int
}

func (this *NonManifoldMeshError) Error() string {
	return fmt.Sprintf(
		"hexsphere: triangles around vertex %d do not close into a single fan",
		this.Vertex,
	)
}

// Ring is the cyclic sequence of neighbor vertex ids around one vertex, in
// the winding order of the source triangles. Consecutive entries, including
// the wrap-around pair, share a triangle with the center vertex. A vertex
// never appearing in the index buffer has a nil Ring.
type Ring []int

// AdjacencyList holds one Ring per vertex, indexed by vertex id.
type AdjacencyList []Ring

// Rehex turns the triangle index buffer of an icosphere subdivision into an
// adjacency list of neighbor rings, one per vertex. Triangle winding is
// preserved in ring order, so downstream geometry generation stays
// consistently oriented.
//
// The buffer must describe a closed, consistently wound manifold surface of
// vertex degree at most 6; the twelve original icosahedron corners yield
// rings of length 5 and every other referenced vertex a ring of length 6.
//
// **params**
// + triangle index buffer, three indices per face
// + number of vertices the buffer draws from
//
// **returns**
// + one ring per vertex, indexed by vertex id
// + an *InvalidMeshError or *NonManifoldMeshError describing the first
//   violation found, with no partial output
func Rehex(indices []uint32, vertexCount int) (AdjacencyList, error) {
	if vertexCount < 0 {
		vertexCount = 0
	}
	arena, err := collect(indices, vertexCount)
	if err != nil {
		return nil, err
	}

	adj := make(AdjacencyList, vertexCount)
	var scratch [MaxRing]uint32
	for v := range adj {
		ring, ok := arena.Ring(v, scratch[:0])
		if !ok {
			return nil, &NonManifoldMeshError{Vertex: v}
		}
		if len(ring) == 0 {
			continue
		}
		adj[v] = make(Ring, len(ring))
		for i, u := range ring {
			adj[v][i] = int(u)
		}
	}

	return adj, nil
}

// collect validates the buffer and accumulates the per-vertex successor
// pairs. Triangle (a, b, c) contributes b -> c at a, c -> a at b and a -> b
// at c; chaining the pairs later circulates each vertex's triangle fan.
func collect(indices []uint32, vertexCount int) (*LinkArena, error) {
	if len(indices)%3 != 0 {
		return nil, &InvalidMeshError{
			BufferLen:   len(indices),
			VertexCount: vertexCount,
			Triangle:    -1,
			Index:       -1,
		}
	}

	arena := NewLinkArena(vertexCount)

	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]

		for _, idx := range [3]uint32{a, b, c} {
			if int(idx) >= vertexCount {
				return nil, &InvalidMeshError{
					BufferLen:   len(indices),
					VertexCount: vertexCount,
					Triangle:    i / 3,
					Index:       int(idx),
				}
			}
		}
		if a == b || b == c || c == a {
			repeated := a
			if b == c {
				repeated = b
			}
			return nil, &InvalidMeshError{
				BufferLen:   len(indices),
				VertexCount: vertexCount,
				Triangle:    i / 3,
				Index:       int(repeated),
			}
		}

		if !arena.Add(int(a), b, c) {
			return nil, &NonManifoldMeshError{Vertex: int(a)}
		}
		if !arena.Add(int(b), c, a) {
			return nil, &NonManifoldMeshError{Vertex: int(b)}
		}
		if !arena.Add(int(c), a, b) {
			return nil, &NonManifoldMeshError{Vertex: int(c)}
		}
	}

	return arena, nil
}
