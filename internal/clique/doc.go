// Package clique enumerates the maximal cliques of a compatibility graph.
//
// It implements Bron-Kerbosch with pivoting over the graph's bitmap
// adjacency. Enumeration is a pure function of the graph: the same graph
// always yields the same set of cliques, independent of construction order.
package clique
