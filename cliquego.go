package cliquego

import (
	"bytes"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/cliquego/core"
	"github.com/hupe1980/cliquego/internal/clique"
	"github.com/hupe1980/cliquego/internal/graph"
	"github.com/hupe1980/cliquego/internal/spatial"
)

// CliqueIndex tracks the cliques in a set of observations.
//
// A clique is a cluster of observations that lie mutually within each
// other's error ellipses at the configured chi-squared threshold, and are
// therefore consistent with being observations of the same underlying
// object.
//
// The index owns a spatial index of observation positions and an undirected
// compatibility graph whose edges are exactly the pairs passing the
// statistical test. Maximal cliques are enumerated lazily at [CliqueIndex.Cliques]
// time and memoized until the next insertion. Results are independent of
// insertion order.
//
// A CliqueIndex is not safe for concurrent use; external synchronization is
// the caller's responsibility.
type CliqueIndex struct {
	threshold    float64
	spatial      *spatial.Index
	graph        *graph.Graph
	observations []Observation // dense, indexed by LocalID
	byID         map[uuid.UUID]core.LocalID

	cliques [][]uuid.UUID
	dirty   bool

	opts options
}

// New creates an empty index with the given chi-squared threshold, typically
// one of the ChiSquared2DOF constants.
func New(threshold float64, optFns ...Option) (*CliqueIndex, error) {
	if !isFinite(threshold) || threshold <= 0 {
		return nil, &ErrInvalidThreshold{Threshold: threshold}
	}
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &CliqueIndex{
		threshold: threshold,
		spatial:   spatial.New(),
		graph:     graph.New(),
		byID:      make(map[uuid.UUID]core.LocalID),
		dirty:     true,
		opts:      opts,
	}, nil
}

// FromObservations creates an index populated with a batch of observations.
//
// This is faster than inserting observations one at a time: the spatial
// index is loaded up front and the pairwise compatibility pass fans out
// across a bounded worker pool. The resulting graph is identical to the one
// produced by per-item insertion.
//
// Duplicate ids are rejected with [ErrDuplicateID]; on failure no index is
// returned.
func FromObservations(threshold float64, observations []Observation, optFns ...Option) (*CliqueIndex, error) {
	start := time.Now()

	ci, err := New(threshold, optFns...)
	if err != nil {
		return nil, err
	}

	for _, obs := range observations {
		if _, ok := ci.byID[obs.id]; ok {
			err := &ErrDuplicateID{ID: obs.id}
			ci.record(func(mc MetricsCollector) { mc.RecordBatchInsert(len(observations), time.Since(start), err) })
			return nil, err
		}
		id := core.LocalID(len(ci.observations))
		ci.byID[obs.id] = id
		ci.observations = append(ci.observations, obs)
		ci.spatial.Insert(id, obs.x, obs.y, obs.cov.MaxVariance())
		ci.graph.AddVertex()
	}

	// Each vertex's neighbour list is computed independently against the
	// fully loaded spatial index, so the merge below is deterministic
	// regardless of scheduling. The query radius uses the global maximum
	// variance, a superset of the radius the incremental path would use;
	// the exact test decides membership either way.
	neighbours := make([][]core.LocalID, len(ci.observations))
	var g errgroup.Group
	g.SetLimit(ci.opts.workers)
	maxVariance := ci.spatial.MaxVariance()
	for i := range ci.observations {
		g.Go(func() error {
			obs := ci.observations[i]
			self := core.LocalID(i)
			radius := obs.maxCompatibilityRadius(ci.threshold, maxVariance)
			ci.spatial.Within(obs.x, obs.y, radius, func(cand core.LocalID) bool {
				if cand != self && obs.CompatibleWith(ci.observations[cand], ci.threshold) {
					neighbours[i] = append(neighbours[i], cand)
				}
				return true
			})
			return nil
		})
	}
	_ = g.Wait()

	for i, ns := range neighbours {
		for _, n := range ns {
			ci.graph.AddEdge(core.LocalID(i), n)
		}
	}

	ci.record(func(mc MetricsCollector) { mc.RecordBatchInsert(len(observations), time.Since(start), nil) })
	if ci.opts.logger != nil {
		ci.opts.logger.LogBatchInsert(len(observations), ci.graph.EdgeCount(), nil)
	}
	return ci, nil
}

// Insert adds a single observation, updating the spatial index and the
// compatibility graph. Cliques are re-enumerated on the next call to
// [CliqueIndex.Cliques].
//
// Returns [ErrDuplicateID] if an observation with the same id is already
// present; the index is unchanged on failure.
func (ci *CliqueIndex) Insert(obs Observation) error {
	start := time.Now()
	err := ci.insert(obs)
	ci.record(func(mc MetricsCollector) { mc.RecordInsert(time.Since(start), err) })
	if ci.opts.logger != nil {
		ci.opts.logger.LogInsert(obs.id, ci.graph.EdgeCount(), err)
	}
	return err
}

func (ci *CliqueIndex) insert(obs Observation) error {
	if _, ok := ci.byID[obs.id]; ok {
		return &ErrDuplicateID{ID: obs.id}
	}

	// Identify compatible neighbours before touching the spatial index, so
	// the query cannot return the new observation and the radius reflects
	// the pre-insert maximum variance.
	radius := obs.maxCompatibilityRadius(ci.threshold, ci.spatial.MaxVariance())
	var neighbours []core.LocalID
	ci.spatial.Within(obs.x, obs.y, radius, func(cand core.LocalID) bool {
		if obs.CompatibleWith(ci.observations[cand], ci.threshold) {
			neighbours = append(neighbours, cand)
		}
		return true
	})

	id := core.LocalID(len(ci.observations))
	ci.spatial.Insert(id, obs.x, obs.y, obs.cov.MaxVariance())
	ci.graph.AddVertex()
	for _, n := range neighbours {
		ci.graph.AddEdge(id, n)
	}
	ci.byID[obs.id] = id
	ci.observations = append(ci.observations, obs)
	ci.dirty = true
	return nil
}

// Cliques returns the maximal cliques of the compatibility graph with at
// least two members. Each clique is sorted by id bytes and the cliques are
// sorted lexicographically, so two indexes over the same observations
// compare equal element-wise.
//
// The result is memoized until the next insertion. Callers must not modify
// the returned slices.
func (ci *CliqueIndex) Cliques() [][]uuid.UUID {
	if !ci.dirty {
		return ci.cliques
	}
	start := time.Now()

	local := clique.FindMaximal(ci.graph)
	out := make([][]uuid.UUID, 0, len(local))
	for _, c := range local {
		ids := make([]uuid.UUID, len(c))
		for j, lid := range c {
			ids[j] = ci.observations[lid].id
		}
		slices.SortFunc(ids, compareIDs)
		out = append(out, ids)
	}
	slices.SortFunc(out, compareCliques)

	ci.cliques = out
	ci.dirty = false

	elapsed := time.Since(start)
	ci.record(func(mc MetricsCollector) { mc.RecordCliques(len(out), elapsed) })
	if ci.opts.logger != nil {
		ci.opts.logger.LogCliques(len(out), elapsed)
	}
	return out
}

// Len returns the number of observations in the index.
func (ci *CliqueIndex) Len() int {
	return len(ci.observations)
}

// IsEmpty reports whether the index contains no observations.
func (ci *CliqueIndex) IsEmpty() bool {
	return len(ci.observations) == 0
}

// Threshold returns the configured chi-squared threshold.
func (ci *CliqueIndex) Threshold() float64 {
	return ci.threshold
}

// Contains reports whether an observation with the given id is present.
func (ci *CliqueIndex) Contains(id uuid.UUID) bool {
	_, ok := ci.byID[id]
	return ok
}

// Neighbors returns the ids of the observations directly compatible with the
// given observation, sorted by id bytes, and whether the id is present.
func (ci *CliqueIndex) Neighbors(id uuid.UUID) ([]uuid.UUID, bool) {
	lid, ok := ci.byID[id]
	if !ok {
		return nil, false
	}
	adjacency := ci.graph.Neighbors(lid)
	out := make([]uuid.UUID, 0, adjacency.GetCardinality())
	it := adjacency.Iterator()
	for it.HasNext() {
		out = append(out, ci.observations[it.Next()].id)
	}
	slices.SortFunc(out, compareIDs)
	return out, true
}

func (ci *CliqueIndex) record(fn func(MetricsCollector)) {
	if ci.opts.metrics != nil {
		fn(ci.opts.metrics)
	}
}

func compareIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

func compareCliques(a, b []uuid.UUID) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareIDs(a[i], b[i]); c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}
