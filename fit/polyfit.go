package fit

import (
	"gonum.org/v1/gonum/mat"
)

// LinearResidual fits a straight line z ≈ a + b·r by least squares and
// returns the sum of squared residuals. This is the cone model: for a
// perfect cone centered on the true apex the residual is exactly zero.
//
// Equivalent to PolynomialResidual(r, z, DefaultDegree).
func LinearResidual(r, z []float64) (float64, error) {
	return PolynomialResidual(r, z, DefaultDegree)
}

// PolynomialResidual fits z as a degree-deg polynomial of r by least
// squares and returns the sum of squared residuals of the fit.
//
// Contract:
//   - len(r) == len(z) == N, N > deg+1 (strictly more points than
//     coefficients — an interpolating fit has no residual to report).
//   - deg ≥ 0.
//   - Radii must span enough distinct values to make the Vandermonde
//     system full rank; otherwise ErrDegenerateFit.
//   - Inputs are never mutated; result is a plain scalar, lower ⇒ tighter
//     polynomial relationship between radius and elevation.
//
// Complexity: O(N·deg²) time, O(N·deg) space (QR of the N×(deg+1) system).
func PolynomialResidual(r, z []float64, deg int) (float64, error) {
	n := len(r)
	if len(z) != n {
		return 0, ErrShapeMismatch
	}
	if deg < 0 {
		return 0, ErrBadDegree
	}
	if n <= deg+1 {
		return 0, ErrDegenerateFit
	}

	// Vandermonde design matrix: column j holds r^j.
	var (
		i, j int
		v    float64
	)
	a := mat.NewDense(n, deg+1, nil)
	for i = 0; i < n; i++ {
		v = 1
		for j = 0; j <= deg; j++ {
			a.Set(i, j, v)
			v *= r[i]
		}
	}

	var qr mat.QR
	qr.Factorize(a)

	var coef mat.VecDense
	if err := qr.SolveVecTo(&coef, false, mat.NewVecDense(n, z)); err != nil {
		// Near-singular system: collapsed radii cannot pin the polynomial.
		return 0, ErrDegenerateFit
	}

	// Sum of squared residuals ‖A·c − z‖².
	var pred mat.VecDense
	pred.MulVec(a, &coef)

	var ssr, d float64
	for i = 0; i < n; i++ {
		d = pred.AtVec(i) - z[i]
		ssr += d * d
	}

	return ssr, nil
}
