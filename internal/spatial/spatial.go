package spatial

import (
	"github.com/tidwall/rtree"

	"github.com/hupe1980/cliquego/core"
)

// Index is a 2D point index over observations keyed by LocalID.
type Index struct {
	tree rtree.RTreeG[core.LocalID]

	// maxVariance is the largest eigenvalue of any indexed observation's
	// covariance. Querying within radius(own λmax + maxVariance) guarantees
	// that every possibly compatible neighbour is returned.
	maxVariance float64
}

// New creates an empty index.
func New() *Index {
	return &Index{}
}

// Len returns the number of indexed points.
func (i *Index) Len() int {
	return i.tree.Len()
}

// MaxVariance returns the largest per-observation variance seen so far.
func (i *Index) MaxVariance() float64 {
	return i.maxVariance
}

// Insert adds a point entry for id. maxVariance is the largest eigenvalue of
// the observation's covariance.
func (i *Index) Insert(id core.LocalID, x, y, maxVariance float64) {
	if maxVariance > i.maxVariance {
		i.maxVariance = maxVariance
	}
	p := [2]float64{x, y}
	i.tree.Insert(p, p, id)
}

// Within calls yield for every indexed id within Euclidean distance radius
// (inclusive) of (x, y), in no particular order. Iteration stops early when
// yield returns false.
func (i *Index) Within(x, y, radius float64, yield func(id core.LocalID) bool) {
	if !(radius >= 0) {
		return
	}
	r2 := radius * radius
	i.tree.Search(
		[2]float64{x - radius, y - radius},
		[2]float64{x + radius, y + radius},
		func(min, _ [2]float64, id core.LocalID) bool {
			dx := min[0] - x
			dy := min[1] - y
			if dx*dx+dy*dy > r2 {
				return true
			}
			return yield(id)
		},
	)
}
