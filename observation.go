package cliquego

import (
	"math"

	"github.com/google/uuid"
)

// Observation is an immutable measurement of a 2D position with a Gaussian
// uncertainty model.
//
// The id is assigned by the caller and must be globally unique; it is the
// external handle for the observation and the vertex key of the
// compatibility graph. The optional context tags observations known a priori
// to be distinct, e.g. simultaneous detections within a single sensor frame;
// two observations sharing a context are never compatible.
type Observation struct {
	id      uuid.UUID
	x, y    float64
	cov     Covariance
	context uuid.UUID // uuid.Nil means no context
}

// ObservationOption configures optional observation attributes.
type ObservationOption func(*Observation)

// WithContext tags the observation with a context. Observations in the same
// context are considered perfectly distinguishable: their relative error is
// negligible even when their absolute error is large, so they are never
// fused. A uuid.Nil context is ignored.
func WithContext(context uuid.UUID) ObservationOption {
	return func(o *Observation) {
		o.context = context
	}
}

// NewObservation constructs an observation at (x, y) with the given error
// covariance. The coordinates must be finite.
func NewObservation(id uuid.UUID, x, y float64, cov Covariance, optFns ...ObservationOption) (Observation, error) {
	if !isFinite(x) || !isFinite(y) {
		return Observation{}, &ErrNonFinitePosition{X: x, Y: y}
	}
	o := Observation{id: id, x: x, y: y, cov: cov}
	for _, fn := range optFns {
		fn(&o)
	}
	return o, nil
}

// NewCircularObservation constructs an observation whose error is a circular
// confidence region: a Gaussian where the stated fraction of the probability
// mass falls within the given radius.
func NewCircularObservation(id uuid.UUID, x, y, radius, confidence float64, optFns ...ObservationOption) (Observation, error) {
	cov, err := CircularCovariance(radius, confidence)
	if err != nil {
		return Observation{}, err
	}
	return NewObservation(id, x, y, cov, optFns...)
}

// ID returns the caller-assigned identity of the observation.
func (o Observation) ID() uuid.UUID { return o.id }

// X returns the x ordinate of the observation.
func (o Observation) X() float64 { return o.x }

// Y returns the y ordinate of the observation.
func (o Observation) Y() float64 { return o.y }

// Position returns the (x, y) position of the observation.
func (o Observation) Position() (float64, float64) { return o.x, o.y }

// Covariance returns the error covariance of the observation.
func (o Observation) Covariance() Covariance { return o.cov }

// Context returns the context tag and whether one is set.
func (o Observation) Context() (uuid.UUID, bool) {
	return o.context, o.context != uuid.Nil
}

// CompatibleWith reports whether two observations are statistically
// consistent with being independent measurements of the same underlying
// object.
//
// The test computes the squared Mahalanobis distance between the positions
// under the summed covariance, which models the uncertainty of the
// difference between two independent measurements:
//
//	S  = Σa + Σb
//	d² = Δᵀ · S⁻¹ · Δ
//
// and compares it against the chi-squared threshold for 2 degrees of
// freedom; the boundary d² == threshold counts as compatible. Observations
// sharing a context are incompatible without running the numeric test, and a
// singular S makes the pair incompatible rather than raising an error.
//
// The predicate is symmetric: a.CompatibleWith(b, t) == b.CompatibleWith(a, t).
func (o Observation) CompatibleWith(other Observation, threshold float64) bool {
	if o.context != uuid.Nil && o.context == other.context {
		return false
	}
	d2 := mahalanobisSquared(o.x-other.x, o.y-other.y, o.cov.Add(other.cov))
	return d2 <= threshold
}

// maxCompatibilityRadius returns a conservative Euclidean radius for spatial
// prefiltering: no observation beyond it can pass the compatibility test
// against o, assuming the candidate's largest eigenvalue does not exceed
// maxOtherVariance.
//
// It relies on the spectral bound λmax(Σa+Σb) <= λmax(Σa) + λmax(Σb), and on
// d² >= |Δ|²/λmax(S), so d² <= t implies |Δ|² <= t·λmax(S).
func (o Observation) maxCompatibilityRadius(threshold, maxOtherVariance float64) float64 {
	combined := o.cov.MaxVariance() + maxOtherVariance
	return math.Sqrt(threshold * combined)
}

// mahalanobisSquared computes Δᵀ·S⁻¹·Δ using the analytic 2x2 inverse.
// A singular S yields +Inf, which fails any finite threshold.
func mahalanobisSquared(dx, dy float64, s Covariance) float64 {
	inv, err := s.Inverse()
	if err != nil {
		return math.Inf(1)
	}
	return dx*(inv.xx*dx+inv.xy*dy) + dy*(inv.xy*dx+inv.yy*dy)
}
