package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	assert.Equal(t, a.UUID(), b.UUID())
	assert.Equal(t, a.Float64(), b.Float64())

	ax, ay := a.ScatteredPoint(0, 0, 10)
	bx, by := b.ScatteredPoint(0, 0, 10)
	assert.Equal(t, ax, bx)
	assert.Equal(t, ay, by)
}

func TestRNGReset(t *testing.T) {
	r := NewRNG(7)
	first := r.UUID()
	r.Reset()
	assert.Equal(t, first, r.UUID())
	assert.Equal(t, int64(7), r.Seed())
}

func TestUUIDIsVersion4(t *testing.T) {
	r := NewRNG(1)
	for range 100 {
		id := r.UUID()
		assert.Equal(t, byte(0x40), id[6]&0xf0)
		assert.Equal(t, byte(0x80), id[8]&0xc0)
	}
}

func TestScatteredPointStaysWithinRadius(t *testing.T) {
	r := NewRNG(5)
	const radius = 10.0
	for range 1000 {
		x, y := r.ScatteredPoint(3, -4, radius)
		dx, dy := x-3, y+4
		// Allow for the 1e-10 precision rounding.
		assert.LessOrEqual(t, math.Hypot(dx, dy), radius+1e-9)
	}
}

func TestScatteredObservations(t *testing.T) {
	r := NewRNG(9)
	observations := r.ScatteredObservations(50, 100, 5)
	require.Len(t, observations, 50)

	seen := make(map[[16]byte]bool, len(observations))
	for _, obs := range observations {
		assert.False(t, seen[obs.ID()], "ids must be unique")
		seen[obs.ID()] = true
		assert.LessOrEqual(t, math.Hypot(obs.X(), obs.Y()), 100.0+1e-9)
		assert.Greater(t, obs.Covariance().XX(), 0.0)
	}
}

func TestClusteredObservations(t *testing.T) {
	r := NewRNG(11)
	observations := r.ClusteredObservations(3, 4, 100, 2, 5)
	require.Len(t, observations, 12)

	// Members of a cluster lie within 2*clusterRadius of each other.
	for c := 0; c < 3; c++ {
		cluster := observations[c*4 : (c+1)*4]
		for i := range cluster {
			for j := i + 1; j < len(cluster); j++ {
				dx := cluster[i].X() - cluster[j].X()
				dy := cluster[i].Y() - cluster[j].Y()
				assert.LessOrEqual(t, math.Hypot(dx, dy), 4.0+1e-9)
			}
		}
	}
}
