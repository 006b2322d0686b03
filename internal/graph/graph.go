package graph

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/cliquego/core"
)

// Graph is a sparse undirected graph over dense vertex ids.
//
// Vertices are created with AddVertex and never removed. Self-loops are
// rejected and duplicate edges are no-ops, so the edge set is exactly the
// set of unordered pairs passed to AddEdge.
type Graph struct {
	adj   []*roaring.Bitmap
	edges int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{}
}

// NewWithCapacity creates an empty graph with adjacency storage
// pre-allocated for n vertices.
func NewWithCapacity(n int) *Graph {
	return &Graph{adj: make([]*roaring.Bitmap, 0, n)}
}

// AddVertex adds a new vertex and returns its id. Ids are dense and assigned
// in insertion order.
func (g *Graph) AddVertex() core.LocalID {
	id := core.LocalID(len(g.adj))
	g.adj = append(g.adj, roaring.New())
	return id
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	return len(g.adj)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// AddEdge connects a and b. Self-loops are rejected; adding an existing edge
// is a no-op.
func (g *Graph) AddEdge(a, b core.LocalID) {
	if a == b {
		return
	}
	if g.adj[a].CheckedAdd(uint32(b)) {
		g.adj[b].Add(uint32(a))
		g.edges++
	}
}

// HasEdge reports whether a and b are connected.
func (g *Graph) HasEdge(a, b core.LocalID) bool {
	return g.adj[a].Contains(uint32(b))
}

// Degree returns the number of neighbours of id.
func (g *Graph) Degree(id core.LocalID) int {
	return int(g.adj[id].GetCardinality())
}

// Neighbors returns the adjacency bitmap of id. The bitmap is live; callers
// must not modify it.
func (g *Graph) Neighbors(id core.LocalID) *roaring.Bitmap {
	return g.adj[id]
}

// Vertices iterates over all vertex ids in increasing order.
func (g *Graph) Vertices() iter.Seq[core.LocalID] {
	return func(yield func(core.LocalID) bool) {
		for id := range g.adj {
			if !yield(core.LocalID(id)) {
				return
			}
		}
	}
}
