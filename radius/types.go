package radius

import "errors"

// MinControlPoints is the smallest control-point set that yields a
// meaningful profile downstream (a degree-1 fit needs N > 2).
const MinControlPoints = 3

var (
	// ErrShapeMismatch indicates x, y, z sequences of unequal length.
	ErrShapeMismatch = errors.New("radius: control sequences must have equal length")

	// ErrTooFewPoints indicates fewer than MinControlPoints control points.
	ErrTooFewPoints = errors.New("radius: need at least 3 control points")

	// ErrDegenerateGeometry indicates a control point that coincides
	// exactly with the candidate apex (zero radius). Only ProfileChecked
	// reports it; Profile keeps the zero entry so that search loops and
	// final profiles stay usable (an apex sitting on a surveyed summit
	// point is legitimate).
	ErrDegenerateGeometry = errors.New("radius: control point coincides with the candidate apex")
)
