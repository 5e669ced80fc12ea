package tilegraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"

	"github.com/alexozer/hexsphere"
	. "github.com/alexozer/hexsphere/internal"
	"github.com/alexozer/hexsphere/tilegraph"
)

func icosphere(t *testing.T, level int) hexsphere.AdjacencyList {
	t.Helper()

	indices := Icosahedron()
	count := IcosahedronVertices
	for i := 0; i < level; i++ {
		var parents [][2]uint32
		indices, parents = Subdivide(indices, count)
		count += len(parents)
	}

	adj, err := hexsphere.Rehex(indices, count)
	require.NoError(t, err)
	return adj
}

func TestGraphStructure(t *testing.T) {
	t.Parallel()

	adj := icosphere(t, 1)
	g := tilegraph.New(adj)

	nodes := g.Nodes()
	require.Equal(t, 42, nodes.Len())

	count := 0
	for nodes.Next() {
		count++
	}
	assert.Equal(t, 42, count)

	for v, ring := range adj {
		from := g.From(int64(v))
		assert.Equal(t, len(ring), from.Len(), "vertex %d", v)
		for _, u := range ring {
			assert.True(t, g.HasEdgeBetween(int64(v), int64(u)))
			assert.True(t, g.HasEdgeBetween(int64(u), int64(v)), "symmetry %d-%d", v, u)

			e := g.EdgeBetween(int64(v), int64(u))
			require.NotNil(t, e)
			assert.Equal(t, int64(v), e.From().ID())
			assert.Equal(t, int64(u), e.To().ID())
		}
	}

	assert.Nil(t, g.Node(-1))
	assert.Nil(t, g.Node(42))
	assert.False(t, g.HasEdgeBetween(0, 0))
	assert.Nil(t, g.Edge(0, 3))
}

func TestGraphDijkstra(t *testing.T) {
	t.Parallel()

	// On the base icosahedron every tile is at most three borders from any
	// other: 5 direct neighbors, 5 at distance two, and the antipode.
	g := tilegraph.New(icosphere(t, 0))
	shortest := path.DijkstraFrom(g.Node(0), g)

	byDistance := map[int]int{}
	for v := int64(0); v < 12; v++ {
		byDistance[int(shortest.WeightTo(v))]++
	}
	assert.Equal(t, map[int]int{0: 1, 1: 5, 2: 5, 3: 1}, byDistance)

	steps, weight := shortest.To(3)
	assert.Equal(t, 3.0, weight)
	require.Len(t, steps, 4)
	assert.Equal(t, int64(0), steps[0].ID())
	assert.Equal(t, int64(3), steps[len(steps)-1].ID())
}

func TestGraphIsolatedVertex(t *testing.T) {
	t.Parallel()

	adj := hexsphere.AdjacencyList{nil}
	g := tilegraph.New(adj)

	require.NotNil(t, g.Node(0))
	assert.Equal(t, 0, g.From(0).Len())
	assert.False(t, g.HasEdgeBetween(0, 0))
}
