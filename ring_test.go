package hexsphere

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingEqualRotated(t *testing.T) {
	t.Parallel()

	ring := Ring{3, 1, 4, 1, 5} // duplicates never occur in real output, but rotation still works
	assert.True(t, ring.EqualRotated(Ring{3, 1, 4, 1, 5}))
	assert.True(t, ring.EqualRotated(Ring{4, 1, 5, 3, 1}))
	assert.True(t, ring.EqualRotated(Ring{5, 3, 1, 4, 1}))

	assert.False(t, ring.EqualRotated(Ring{5, 1, 4, 1, 3}), "reflection is a different cycle")
	assert.False(t, ring.EqualRotated(Ring{3, 1, 4, 1}))
	assert.False(t, ring.EqualRotated(Ring{3, 1, 4, 1, 6}))

	assert.True(t, Ring{}.EqualRotated(Ring{}))
	assert.True(t, Ring(nil).EqualRotated(Ring{}))
	assert.False(t, Ring{}.EqualRotated(Ring{1}))
}

func TestRingContains(t *testing.T) {
	t.Parallel()

	ring := Ring{7, 2, 9}
	assert.True(t, ring.Contains(2))
	assert.False(t, ring.Contains(4))
	assert.False(t, Ring(nil).Contains(0))
}

func TestAdjacencyListEdges(t *testing.T) {
	t.Parallel()

	// Rings of a tetrahedron; small enough to pin the exact edge order.
	adj := AdjacencyList{
		{1, 2, 3},
		{0, 3, 2},
		{0, 1, 3},
		{0, 2, 1},
	}

	require.Equal(t, 6, adj.EdgeCount())
	assert.Equal(t, [][2]int{
		{0, 1}, {0, 2}, {0, 3},
		{1, 3}, {1, 2},
		{2, 3},
	}, adj.Edges())
}
