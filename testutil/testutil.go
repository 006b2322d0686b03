package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/hupe1980/cliquego"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UUID returns a deterministic pseudo-random version-4 UUID.
func (r *RNG) UUID() uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	var b uuid.UUID
	for i := range b {
		b[i] = byte(r.rand.Intn(256))
	}
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return b
}

// Shuffle pseudo-randomly permutes observations in place.
func (r *RNG) Shuffle(observations []cliquego.Observation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(observations), func(i, j int) {
		observations[i], observations[j] = observations[j], observations[i]
	})
}

// ScatteredPoint returns a point uniformly distributed within a circle of
// the given radius around (cx, cy). Coordinates are rounded to 1e-10 so
// generated datasets survive round-tripping through external tools.
func (r *RNG) ScatteredPoint(cx, cy, radius float64) (float64, float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scatteredPoint(cx, cy, radius)
}

func (r *RNG) scatteredPoint(cx, cy, radius float64) (float64, float64) {
	distance := radius * math.Sqrt(r.rand.Float64())
	angle := r.rand.Float64() * 2 * math.Pi
	x := limitPrecision(cx + distance*math.Cos(angle))
	y := limitPrecision(cy + distance*math.Sin(angle))
	return x, y
}

func limitPrecision(value float64) float64 {
	return math.Round(value*1e10) / 1e10
}

// ScatteredObservations generates n observations scattered uniformly within
// a circle of the given spread, each with a circular 95% confidence error of
// errorRadius.
func (r *RNG) ScatteredObservations(n int, spread, errorRadius float64) []cliquego.Observation {
	out := make([]cliquego.Observation, 0, n)
	for range n {
		x, y := r.ScatteredPoint(0, 0, spread)
		obs, err := cliquego.NewCircularObservation(r.UUID(), x, y, errorRadius, 0.95)
		if err != nil {
			panic(err)
		}
		out = append(out, obs)
	}
	return out
}

// ClusteredObservations generates clusters*perCluster observations: cluster
// centres scattered within spread, members scattered within clusterRadius of
// their centre, each with a circular 95% confidence error of errorRadius.
func (r *RNG) ClusteredObservations(clusters, perCluster int, spread, clusterRadius, errorRadius float64) []cliquego.Observation {
	out := make([]cliquego.Observation, 0, clusters*perCluster)
	for range clusters {
		cx, cy := r.ScatteredPoint(0, 0, spread)
		for range perCluster {
			x, y := r.ScatteredPoint(cx, cy, clusterRadius)
			obs, err := cliquego.NewCircularObservation(r.UUID(), x, y, errorRadius, 0.95)
			if err != nil {
				panic(err)
			}
			out = append(out, obs)
		}
	}
	return out
}
