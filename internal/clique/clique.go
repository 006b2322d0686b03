package clique

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/cliquego/core"
	"github.com/hupe1980/cliquego/internal/graph"
)

// FindMaximal returns all maximal cliques of size >= 2, each as a sorted
// slice of vertex ids. Emission order is unspecified.
//
// Worst case O(3^(n/3)), but pivoting keeps the search space small on the
// sparse, locally clustered graphs produced by the compatibility test.
func FindMaximal(g *graph.Graph) [][]core.LocalID {
	if g.Order() == 0 {
		return nil
	}

	// Isolated vertices cannot participate in a clique of size >= 2 and
	// would each cost a recursion step, so the candidate set starts from
	// vertices with at least one neighbour.
	p := roaring.New()
	for v := range g.Vertices() {
		if g.Degree(v) > 0 {
			p.Add(uint32(v))
		}
	}
	if p.IsEmpty() {
		return nil
	}

	var cliques [][]core.LocalID
	bronKerbosch(g, nil, p, roaring.New(), &cliques)
	return cliques
}

// bronKerbosch grows the clique r using candidates p while excluding x,
// branching only on vertices not adjacent to the pivot.
func bronKerbosch(g *graph.Graph, r []core.LocalID, p, x *roaring.Bitmap, cliques *[][]core.LocalID) {
	if p.IsEmpty() {
		if x.IsEmpty() && len(r) >= 2 {
			clique := slices.Clone(r)
			slices.Sort(clique)
			*cliques = append(*cliques, clique)
		}
		return
	}

	pivot := selectPivot(g, p, x)
	candidates := roaring.AndNot(p, g.Neighbors(pivot))

	it := candidates.Iterator()
	for it.HasNext() {
		v := it.Next()
		neighbors := g.Neighbors(core.LocalID(v))

		next := append(r[:len(r):len(r)], core.LocalID(v))
		bronKerbosch(g, next, roaring.And(p, neighbors), roaring.And(x, neighbors), cliques)

		p.Remove(v)
		x.Add(v)
	}
}

// selectPivot picks the vertex of P ∪ X with the most neighbours in P ∪ X,
// maximising the number of candidates skipped in the caller.
func selectPivot(g *graph.Graph, p, x *roaring.Bitmap) core.LocalID {
	var (
		best      core.LocalID
		bestCount = -1
	)
	consider := func(v uint32) {
		n := g.Neighbors(core.LocalID(v))
		count := int(roaring.And(n, p).GetCardinality() + roaring.And(n, x).GetCardinality())
		if count > bestCount {
			best = core.LocalID(v)
			bestCount = count
		}
	}
	it := p.Iterator()
	for it.HasNext() {
		consider(it.Next())
	}
	it = x.Iterator()
	for it.HasNext() {
		consider(it.Next())
	}
	return best
}
