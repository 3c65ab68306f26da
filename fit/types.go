package fit

import "errors"

// DefaultDegree is the polynomial degree of the cone model: elevation
// falling linearly with distance from the apex.
const DefaultDegree = 1

var (
	// ErrShapeMismatch indicates r and z sequences of unequal length.
	ErrShapeMismatch = errors.New("fit: input sequences must have equal length")

	// ErrTooFewPoints indicates too few points for any correlation (N < 2).
	ErrTooFewPoints = errors.New("fit: need at least 2 points")

	// ErrBadDegree indicates a negative polynomial degree.
	ErrBadDegree = errors.New("fit: polynomial degree must be non-negative")

	// ErrDegenerateFit indicates a rank-deficient least-squares system:
	// N ≤ degree+1, or not enough distinct radii to pin the polynomial.
	ErrDegenerateFit = errors.New("fit: not enough independent points for the requested degree")

	// ErrConstantInput indicates a rank correlation over a constant
	// sequence (all radii or all elevations tied) — rho is undefined.
	ErrConstantInput = errors.New("fit: rank correlation undefined for constant input")
)
