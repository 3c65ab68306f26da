// Package fit scores how well a radius profile matches an idealized
// cone, with two alternative goodness-of-fit objectives.
//
// 🚀 The two objectives:
//
//	PolynomialResidual / LinearResidual
//	  Least-squares polynomial fit z ≈ p(r); returns the sum of squared
//	  residuals. For a perfect cone (z falling linearly with distance
//	  from the true apex) the degree-1 residual is exactly zero, so
//	  lower is better in the usual sense.
//
//	SpearmanRho
//	  Spearman's rank correlation between r and z, ties averaged.
//	  An ideal cone has elevation strictly DECREASING with distance, so
//	  the correct apex drives rho toward −1. The apex search minimizes
//	  rho directly — toward −1, NOT toward 0. Do not "fix" this: a rho
//	  near zero means no monotonic structure at all, i.e. a bad apex.
//
// ✨ Key guarantees:
//   - Deterministic, side-effect free, inputs never mutated
//   - Typed failures: ErrShapeMismatch, ErrTooFewPoints, ErrBadDegree,
//     ErrDegenerateFit, ErrConstantInput
//   - Numerics delegated to gonum (QR least squares, Pearson on ranks)
//
// ⚙️ Usage:
//
//	import "github.com/egayer/conecone/fit"
//
//	ssr, err := fit.LinearResidual(r, elev)
//	rho, err := fit.SpearmanRho(r, elev)
//
// Performance:
//
//   - PolynomialResidual: O(N·d²) time for degree d (QR on N×(d+1))
//   - SpearmanRho:        O(N log N) time (two rank sorts)
//
// See examples in example_test.go.
package fit
