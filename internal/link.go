package internal

// MaxRing is the largest neighbor count a vertex of a subdivided icosahedron
// can have. The twelve original corners keep 5 neighbors through every
// subdivision level; every other vertex has exactly 6.
const MaxRing = 6

// LinkArena accumulates, for every vertex of a mesh, the directed successor
// pairs contributed by its incident triangles. A triangle (a, b, c) seen from
// vertex a contributes the pair b -> c: walking from any neighbor through the
// successor pairs circulates the triangle fan around a in winding order.
//
// Storage is flat, MaxRing slots per vertex, so the whole mesh lives in three
// allocations regardless of vertex count.
type LinkArena struct {
	from []uint32
	to   []uint32
	n    []uint8
}

func NewLinkArena(vertexCount int) *LinkArena {
	return &LinkArena{
		from: make([]uint32, vertexCount*MaxRing),
		to:   make([]uint32, vertexCount*MaxRing),
		n:    make([]uint8, vertexCount),
	}
}

// Add records the successor pair from -> to at vertex v.
//
// **params**
// + vertex the pair circulates around
// + neighbor the fan enters through
// + neighbor the fan leaves through
//
// **returns**
// + false if v already holds MaxRing pairs or a pair entering through the
//   same neighbor, either of which means the surface is not a manifold of
//   degree at most MaxRing around v
func (this *LinkArena) Add(v int, from, to uint32) bool {
	base := v * MaxRing
	n := int(this.n[v])

	if n == MaxRing {
		return false
	}
	for i := 0; i < n; i++ {
		if this.from[base+i] == from {
			// A second triangle claims the same directed edge.
			return false
		}
	}

	this.from[base+n] = from
	this.to[base+n] = to
	this.n[v] = uint8(n + 1)

	return true
}

// Len reports how many successor pairs vertex v holds.
func (this *LinkArena) Len(v int) int {
	return int(this.n[v])
}

// Ring chains the successor pairs of vertex v into a single closed cycle,
// appending the neighbor ids to out in winding order.
//
// **params**
// + vertex to circulate around
// + slice to append the ring into
//
// **returns**
// + the extended slice
// + false if the pairs do not form one closed cycle (an open fan, or two or
//   more disjoint fans, cannot come from a closed manifold surface)
func (this *LinkArena) Ring(v int, out []uint32) ([]uint32, bool) {
	base := v * MaxRing
	n := int(this.n[v])
	if n == 0 {
		return out, true
	}

	var used [MaxRing]bool
	start := this.from[base]
	cur := start

	for i := 0; i < n; i++ {
		next, found := uint32(0), false
		for j := 0; j < n; j++ {
			if !used[j] && this.from[base+j] == cur {
				used[j] = true
				next, found = this.to[base+j], true
				break
			}
		}
		if !found {
			return out, false
		}
		out = append(out, cur)
		cur = next
	}

	// All pairs consumed; the walk must have come back around.
	return out, cur == start
}
