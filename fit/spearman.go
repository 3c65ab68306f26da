package fit

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// SpearmanRho computes Spearman's rank correlation coefficient between
// the radii r and the elevations z: the Pearson correlation of the two
// rank vectors, with tied values assigned their average rank.
//
// Semantics as an objective: an ideal cone has elevation strictly
// decreasing with distance from the true apex, so a correctly located
// apex drives rho toward −1. The apex search minimizes rho DIRECTLY —
// more negative is better. This is deliberate; minimizing |rho| or
// pushing rho toward 0 would reward the absence of structure.
//
// Contract:
//   - len(r) == len(z) == N ≥ 2.
//   - Constant r or constant z ⇒ ErrConstantInput (rho undefined).
//   - Result lies in [−1, 1]; inputs are never mutated.
//
// Complexity: O(N log N) time, O(N) extra space.
func SpearmanRho(r, z []float64) (float64, error) {
	n := len(r)
	if len(z) != n {
		return 0, ErrShapeMismatch
	}
	if n < 2 {
		return 0, ErrTooFewPoints
	}

	rr := ranks(r)
	rz := ranks(z)
	if constant(rr) || constant(rz) {
		return 0, ErrConstantInput
	}

	return stat.Correlation(rr, rz, nil), nil
}

// ranks assigns 1-based fractional ranks to v, averaging over ties.
func ranks(v []float64) []float64 {
	n := len(v)
	idx := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return v[idx[a]] < v[idx[b]] })

	out := make([]float64, n)
	var j, k int
	for i = 0; i < n; i = j {
		// Tie block [i, j): equal values share the average rank.
		j = i + 1
		for j < n && v[idx[j]] == v[idx[i]] {
			j++
		}
		avg := float64(i+j+1) / 2 // mean of ranks i+1..j
		for k = i; k < j; k++ {
			out[idx[k]] = avg
		}
	}

	return out
}

// constant reports whether every element of v equals the first.
func constant(v []float64) bool {
	for _, x := range v[1:] {
		if x != v[0] {
			return false
		}
	}

	return true
}
