// Package tilegraph adapts a hexsphere adjacency list to gonum's graph
// interfaces, so tile-to-tile pathfinding and other graph algorithms can run
// directly on the neighbor rings.
package tilegraph

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/alexozer/hexsphere"
)

// Graph is a read-only undirected view over an adjacency list. Node ids are
// the mesh vertex ids; edges are the tile borders. The adjacency list is not
// copied, so it must not be mutated while the Graph is in use.
type Graph struct {
	adj hexsphere.AdjacencyList
}

var _ graph.Undirected = (*Graph)(nil)

func New(adj hexsphere.AdjacencyList) *Graph {
	return &Graph{adj: adj}
}

// Node returns the node with the given id, or nil if the id is outside the
// vertex range.
func (this *Graph) Node(id int64) graph.Node {
	if id < 0 || id >= int64(len(this.adj)) {
		return nil
	}
	return simple.Node(id)
}

// Nodes returns an iterator over every vertex, isolated ones included.
func (this *Graph) Nodes() graph.Nodes {
	if len(this.adj) == 0 {
		return graph.Empty
	}
	return iterator.NewImplicitNodes(0, len(this.adj), func(id int) graph.Node {
		return simple.Node(id)
	})
}

// From returns an iterator over the neighbors of id, in ring order.
func (this *Graph) From(id int64) graph.Nodes {
	if id < 0 || id >= int64(len(this.adj)) {
		return graph.Empty
	}
	ring := this.adj[id]
	if len(ring) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, len(ring))
	for i, u := range ring {
		nodes[i] = simple.Node(u)
	}
	return iterator.NewOrderedNodes(nodes)
}

// HasEdgeBetween reports whether two tiles share a border.
func (this *Graph) HasEdgeBetween(xid, yid int64) bool {
	if xid < 0 || xid >= int64(len(this.adj)) {
		return false
	}
	return this.adj[xid].Contains(int(yid))
}

// Edge returns the edge between two tiles, or nil if they do not border each
// other.
func (this *Graph) Edge(uid, vid int64) graph.Edge {
	return this.EdgeBetween(uid, vid)
}

// EdgeBetween returns the edge between two tiles, or nil if they do not
// border each other.
func (this *Graph) EdgeBetween(xid, yid int64) graph.Edge {
	if !this.HasEdgeBetween(xid, yid) {
		return nil
	}
	return simple.Edge{F: simple.Node(xid), T: simple.Node(yid)}
}
