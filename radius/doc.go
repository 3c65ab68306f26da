// Package radius builds distance profiles: planar distances from every
// surveyed control point to a candidate cone apex, co-sorted with the
// matching elevations.
//
// 🚀 What is a radius profile?
//
//	For control points (x_i, y_i, z_i) and a candidate apex (ax, ay):
//	  r_i = √((x_i−ax)² + (y_i−ay)²)
//	The profile is the r sequence sorted ascending, with z permuted by
//	the SAME order — elevation follows its point, it is never sorted on
//	its own. (The workflow this library descends from documented the
//	profile as "sorted by elevation"; the actual and intended behavior
//	is sort-by-distance, which is what Profile implements.)
//
// ✨ Key guarantees:
//   - Output length always equals input length — no points dropped
//   - Deterministic tie-breaking: equal distances keep input order
//   - Order-equivariant: permuting the inputs identically does not
//     change the sorted profile
//   - Typed failures: ErrShapeMismatch, ErrTooFewPoints, and (via
//     ProfileChecked) ErrDegenerateGeometry
//
// ⚙️ Usage:
//
//	import "github.com/egayer/conecone/radius"
//
//	r, elev, err := radius.Profile(xs, ys, zs, 100, 100)
//	if err != nil {
//	  // handle ErrShapeMismatch / ErrTooFewPoints
//	}
//
// Performance:
//
//   - Time:   O(N log N) (distance pass + index sort)
//   - Memory: O(N)
//
// See examples in example_test.go.
package radius
