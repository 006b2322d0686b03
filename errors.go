package cliquego

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrSingularMatrix is returned when a covariance matrix cannot be inverted
// because its determinant is below the singularity tolerance.
//
// The compatibility test handles this case internally by treating the pair
// as incompatible; it only surfaces through [Covariance.Inverse].
var ErrSingularMatrix = errors.New("covariance matrix is singular")

// ErrInvalidCovariance indicates that the given components do not describe a
// positive semi-definite covariance matrix, or are not finite.
type ErrInvalidCovariance struct {
	XX, YY, XY float64
}

func (e *ErrInvalidCovariance) Error() string {
	return fmt.Sprintf("not a valid positive semi-definite covariance matrix (xx: %v, yy: %v, xy: %v)", e.XX, e.YY, e.XY)
}

// ErrInvalidThreshold indicates a chi-squared threshold that is not positive
// and finite.
type ErrInvalidThreshold struct {
	Threshold float64
}

func (e *ErrInvalidThreshold) Error() string {
	return fmt.Sprintf("invalid chi-squared threshold: %v", e.Threshold)
}

// ErrInvalidConfidence indicates a confidence level outside the open
// interval (0, 1).
type ErrInvalidConfidence struct {
	Confidence float64
}

func (e *ErrInvalidConfidence) Error() string {
	return fmt.Sprintf("confidence must be in (0, 1): %v", e.Confidence)
}

// ErrInvalidRadius indicates a negative or non-finite error radius.
type ErrInvalidRadius struct {
	Radius float64
}

func (e *ErrInvalidRadius) Error() string {
	return fmt.Sprintf("radius must be >= 0: %v", e.Radius)
}

// ErrNonFinitePosition indicates an observation position with a NaN or
// infinite coordinate.
type ErrNonFinitePosition struct {
	X, Y float64
}

func (e *ErrNonFinitePosition) Error() string {
	return fmt.Sprintf("position coordinates must be finite (x: %v, y: %v)", e.X, e.Y)
}

// ErrDuplicateID indicates that an observation with the same ID is already
// present in the index.
type ErrDuplicateID struct {
	ID uuid.UUID
}

func (e *ErrDuplicateID) Error() string {
	return fmt.Sprintf("observation with id %s already exists in the index", e.ID)
}
