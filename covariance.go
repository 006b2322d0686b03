package cliquego

import "math"

const (
	// psdTolerance is the absolute tolerance applied to the determinant when
	// validating positive semi-definiteness. It permits matrices that are
	// near-singular after arithmetic rounding.
	psdTolerance = 1e-10

	// singularTolerance is the absolute determinant threshold below which a
	// matrix is treated as non-invertible.
	singularTolerance = 1e-12
)

// Covariance is a 2x2 symmetric positive semi-definite matrix describing the
// positional uncertainty of an observation as a general error ellipse.
//
// The zero value is the zero matrix, which is valid but singular.
type Covariance struct {
	xx, yy, xy float64
}

// NewCovariance constructs a validated covariance matrix from its components.
//
// The components must be finite, the variances xx and yy must be
// non-negative, and the determinant xx*yy - xy*xy must not be below a small
// absolute tolerance.
func NewCovariance(xx, yy, xy float64) (Covariance, error) {
	if !isFinite(xx) || !isFinite(yy) || !isFinite(xy) {
		return Covariance{}, &ErrInvalidCovariance{XX: xx, YY: yy, XY: xy}
	}
	det := xx*yy - xy*xy
	if xx < 0 || yy < 0 || det < -psdTolerance {
		return Covariance{}, &ErrInvalidCovariance{XX: xx, YY: yy, XY: xy}
	}
	return Covariance{xx: xx, yy: yy, xy: xy}, nil
}

// IdentityCovariance returns the 2x2 identity matrix.
func IdentityCovariance() Covariance {
	return Covariance{xx: 1, yy: 1}
}

// CircularCovariance returns an isotropic covariance matrix whose confidence
// circle at the given level has the given radius.
//
// The variance is radius²/χ²₂(confidence), so that the stated fraction of the
// probability mass falls within the circle.
func CircularCovariance(radius, confidence float64) (Covariance, error) {
	if !isFinite(radius) || radius < 0 {
		return Covariance{}, &ErrInvalidRadius{Radius: radius}
	}
	quantile, err := ChiSquaredQuantile2DOF(confidence)
	if err != nil {
		return Covariance{}, err
	}
	variance := radius * radius / quantile
	return Covariance{xx: variance, yy: variance}, nil
}

// CircularCovariance95 returns an isotropic covariance matrix whose 95%
// confidence circle has the given radius.
//
// It uses the exact [ChiSquared2DOF95] constant rather than the closed-form
// quantile so results line up with thresholds built from the same constant.
func CircularCovariance95(radius float64) (Covariance, error) {
	if !isFinite(radius) || radius < 0 {
		return Covariance{}, &ErrInvalidRadius{Radius: radius}
	}
	variance := radius * radius / ChiSquared2DOF95
	return Covariance{xx: variance, yy: variance}, nil
}

// XX returns the variance in the x direction. It is never negative.
func (c Covariance) XX() float64 { return c.xx }

// YY returns the variance in the y direction. It is never negative.
func (c Covariance) YY() float64 { return c.yy }

// XY returns the covariance between the x and y directions. Covariance
// matrices are symmetric, so xy == yx.
func (c Covariance) XY() float64 { return c.xy }

// Determinant returns xx*yy - xy*xy.
func (c Covariance) Determinant() float64 {
	return c.xx*c.yy - c.xy*c.xy
}

// Add returns the element-wise sum of two covariance matrices. The sum of two
// PSD matrices is PSD.
func (c Covariance) Add(other Covariance) Covariance {
	return Covariance{
		xx: c.xx + other.xx,
		yy: c.yy + other.yy,
		xy: c.xy + other.xy,
	}
}

// Inverse returns the analytic 2x2 inverse
//
//	(1/det) * [[yy, -xy], [-xy, xx]]
//
// It returns [ErrSingularMatrix] when |det| is below the singularity
// tolerance.
func (c Covariance) Inverse() (Covariance, error) {
	det := c.Determinant()
	if math.Abs(det) < singularTolerance {
		return Covariance{}, ErrSingularMatrix
	}
	return Covariance{
		xx: c.yy / det,
		yy: c.xx / det,
		xy: -c.xy / det,
	}, nil
}

// MaxVariance returns the larger eigenvalue of the covariance matrix, the
// variance along the major axis of the error ellipse.
func (c Covariance) MaxVariance() float64 {
	trace := c.xx + c.yy
	det := c.Determinant()
	// Clamp the discriminant to avoid sqrt of -epsilon on near-isotropic input.
	discriminant := math.Sqrt(math.Max(trace*trace-4*det, 0))
	return 0.5 * (trace + discriminant)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
