package cliquego

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCovariance(t *testing.T) {
	t.Run("AcceptsPositiveDefinite", func(t *testing.T) {
		_, err := NewCovariance(2.0, 1.0, 0.0)
		require.NoError(t, err)
	})

	t.Run("AcceptsSingular", func(t *testing.T) {
		// Rank-deficient but valid.
		_, err := NewCovariance(1.0, 0.0, 0.0)
		require.NoError(t, err)

		// Determinant exactly zero.
		_, err = NewCovariance(1.0, 1.0, 1.0)
		require.NoError(t, err)
	})

	t.Run("AcceptsZeroMatrix", func(t *testing.T) {
		cov, err := NewCovariance(0.0, 0.0, 0.0)
		require.NoError(t, err)
		assert.Equal(t, 0.0, cov.Determinant())
	})

	t.Run("AcceptsBoundaryCorrelation", func(t *testing.T) {
		// |xy| == sqrt(xx*yy)
		xyMax := math.Sqrt(4.0 * 9.0)
		_, err := NewCovariance(4.0, 9.0, xyMax)
		require.NoError(t, err)
		_, err = NewCovariance(4.0, 9.0, -xyMax)
		require.NoError(t, err)
	})

	t.Run("AcceptsDeterminantWithinTolerance", func(t *testing.T) {
		// det ~ -5e-11, inside the 1e-10 tolerance.
		xy := math.Sqrt(1.0 + 5e-11)
		_, err := NewCovariance(1.0, 1.0, xy)
		require.NoError(t, err)
	})

	t.Run("RejectsNegativeVariance", func(t *testing.T) {
		for _, c := range [][3]float64{
			{-1.0, 1.0, 0.0},
			{1.0, -1.0, 0.0},
		} {
			_, err := NewCovariance(c[0], c[1], c[2])
			var invalid *ErrInvalidCovariance
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, c[0], invalid.XX)
		}
	})

	t.Run("RejectsNegativeDeterminant", func(t *testing.T) {
		// det = 1 - 4 = -3
		_, err := NewCovariance(1.0, 1.0, 2.0)
		var invalid *ErrInvalidCovariance
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("RejectsNonFinite", func(t *testing.T) {
		for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := NewCovariance(v, 1.0, 0.0)
			require.Error(t, err)
			_, err = NewCovariance(1.0, v, 0.0)
			require.Error(t, err)
			_, err = NewCovariance(1.0, 1.0, v)
			require.Error(t, err)
		}
	})

	t.Run("Accessors", func(t *testing.T) {
		cov, err := NewCovariance(2.0, 1.5, 0.5)
		require.NoError(t, err)
		assert.Equal(t, 2.0, cov.XX())
		assert.Equal(t, 1.5, cov.YY())
		assert.Equal(t, 0.5, cov.XY())
	})
}

func TestIdentityCovariance(t *testing.T) {
	id := IdentityCovariance()
	assert.Equal(t, 1.0, id.XX())
	assert.Equal(t, 1.0, id.YY())
	assert.Equal(t, 0.0, id.XY())
	assert.InDelta(t, 1.0, id.Determinant(), 1e-12)
}

func TestCircularCovariance(t *testing.T) {
	t.Run("VarianceMatchesQuantile", func(t *testing.T) {
		radius := 3.0
		cov, err := CircularCovariance95(radius)
		require.NoError(t, err)

		expected := radius * radius / ChiSquared2DOF95
		assert.InDelta(t, expected, cov.XX(), 1e-12)
		assert.InDelta(t, expected, cov.YY(), 1e-12)
		assert.Equal(t, 0.0, cov.XY())
	})

	t.Run("GeneralConfidence", func(t *testing.T) {
		cov, err := CircularCovariance(2.0, 0.99)
		require.NoError(t, err)

		quantile, err := ChiSquaredQuantile2DOF(0.99)
		require.NoError(t, err)
		assert.InDelta(t, 4.0/quantile, cov.XX(), 1e-12)
	})

	t.Run("ZeroRadius", func(t *testing.T) {
		cov, err := CircularCovariance95(0.0)
		require.NoError(t, err)
		assert.Equal(t, 0.0, cov.XX())
	})

	t.Run("RejectsNegativeRadius", func(t *testing.T) {
		_, err := CircularCovariance95(-1.0)
		var invalid *ErrInvalidRadius
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, -1.0, invalid.Radius)
	})

	t.Run("RejectsNonFiniteRadius", func(t *testing.T) {
		_, err := CircularCovariance(math.NaN(), 0.95)
		require.Error(t, err)
		_, err = CircularCovariance(math.Inf(1), 0.95)
		require.Error(t, err)
	})

	t.Run("RejectsInvalidConfidence", func(t *testing.T) {
		for _, confidence := range []float64{0.0, 1.0, -0.5, 1.5, math.NaN()} {
			_, err := CircularCovariance(1.0, confidence)
			var invalid *ErrInvalidConfidence
			require.ErrorAs(t, err, &invalid, "confidence %v", confidence)
		}
	})
}

func TestCovarianceAdd(t *testing.T) {
	a, err := NewCovariance(2.0, 1.0, 0.5)
	require.NoError(t, err)
	b, err := NewCovariance(1.0, 3.0, -0.25)
	require.NoError(t, err)

	sum := a.Add(b)
	assert.Equal(t, 3.0, sum.XX())
	assert.Equal(t, 4.0, sum.YY())
	assert.Equal(t, 0.25, sum.XY())
}

func TestCovarianceInverse(t *testing.T) {
	t.Run("RoundTrips", func(t *testing.T) {
		cov, err := NewCovariance(4.0, 1.0, 0.5)
		require.NoError(t, err)

		inv, err := cov.Inverse()
		require.NoError(t, err)

		// cov * inv == identity
		assert.InDelta(t, 1.0, cov.XX()*inv.XX()+cov.XY()*inv.XY(), 1e-12)
		assert.InDelta(t, 1.0, cov.XY()*inv.XY()+cov.YY()*inv.YY(), 1e-12)
		assert.InDelta(t, 0.0, cov.XX()*inv.XY()+cov.XY()*inv.YY(), 1e-12)
	})

	t.Run("FailsForSingular", func(t *testing.T) {
		cov, err := NewCovariance(1.0, 1.0, 1.0)
		require.NoError(t, err)

		_, err = cov.Inverse()
		require.ErrorIs(t, err, ErrSingularMatrix)
	})

	t.Run("FailsForZeroMatrix", func(t *testing.T) {
		var zero Covariance
		_, err := zero.Inverse()
		require.ErrorIs(t, err, ErrSingularMatrix)
	})
}

func TestCovarianceMaxVariance(t *testing.T) {
	t.Run("DiagonalMatrix", func(t *testing.T) {
		cov, err := NewCovariance(3.0, 2.0, 0.0)
		require.NoError(t, err)
		assert.InDelta(t, 3.0, cov.MaxVariance(), 1e-12)
	})

	t.Run("OffDiagonalMatrix", func(t *testing.T) {
		cov, err := NewCovariance(4.0, 1.0, 1.0)
		require.NoError(t, err)

		trace := 5.0
		det := 4.0 - 1.0
		expected := 0.5 * (trace + math.Sqrt(trace*trace-4*det))
		assert.InDelta(t, expected, cov.MaxVariance(), 1e-12)
	})

	t.Run("CorrelationGrowsMajorAxis", func(t *testing.T) {
		cov, err := NewCovariance(2.0, 2.0, 1.0)
		require.NoError(t, err)
		assert.Greater(t, cov.MaxVariance(), 2.0)
	})

	t.Run("ZeroVarianceDirection", func(t *testing.T) {
		cov, err := NewCovariance(5.0, 0.0, 0.0)
		require.NoError(t, err)
		assert.InDelta(t, 5.0, cov.MaxVariance(), 1e-12)
	})

	t.Run("NearIsotropicStaysFinite", func(t *testing.T) {
		cov, err := NewCovariance(1.0+1e-15, 1.0, 1.0-1e-15)
		require.NoError(t, err)
		mv := cov.MaxVariance()
		assert.False(t, math.IsNaN(mv))
		assert.GreaterOrEqual(t, mv, 0.0)
	})
}
