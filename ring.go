package hexsphere

// Contains reports whether v appears in the ring.
func (this Ring) Contains(v int) bool {
	for _, u := range this {
		if u == v {
			return true
		}
	}
	return false
}

// EqualRotated reports whether two rings describe the same cycle. The walk
// around a vertex may begin at any neighbor, so two runs over the same mesh
// agree only up to rotation; winding is preserved, so no reflection is
// considered.
//
// **params**
// + the ring to compare against
//
// **returns**
// + whether other is a rotation of this ring
func (this Ring) EqualRotated(other Ring) bool {
	if len(this) != len(other) {
		return false
	}
	if len(this) == 0 {
		return true
	}

	for offset := range other {
		if other[offset] != this[0] {
			continue
		}
		match := true
		for i := range this {
			if this[i] != other[(offset+i)%len(other)] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}

	return false
}

// EdgeCount returns the number of undirected edges of the mesh the list was
// built from. Every edge appears in exactly two rings.
func (this AdjacencyList) EdgeCount() int {
	total := 0
	for _, ring := range this {
		total += len(ring)
	}
	return total / 2
}

// Edges enumerates each undirected edge once, smaller vertex id first, in
// ascending order of the smaller endpoint.
func (this AdjacencyList) Edges() [][2]int {
	edges := make([][2]int, 0, this.EdgeCount())
	for v, ring := range this {
		for _, u := range ring {
			if u > v {
				edges = append(edges, [2]int{v, u})
			}
		}
	}
	return edges
}
