// Package graph provides the sparse undirected compatibility graph.
//
// Vertices are dense LocalIDs assigned in insertion order; adjacency is one
// roaring bitmap per vertex. Observations cluster by locality, so the
// expected degree is bounded by local density rather than the vertex count,
// and the compressed bitmaps keep the adjacency compact at scale.
package graph
