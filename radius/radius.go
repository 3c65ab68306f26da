package radius

import (
	"math"
	"sort"
)

// Profile computes the distance profile of the control points (x, y, z)
// against the candidate apex (ax, ay).
//
// Contract:
//   - x, y, z must share one length N ≥ MinControlPoints.
//   - Returned r holds the planar Euclidean distances sorted ascending;
//     elev holds z permuted by the same order (elevation follows its
//     point — it is NOT independently sorted).
//   - Ties in distance preserve input order (stable, deterministic).
//   - Inputs are never mutated; r and elev are fresh slices of length N.
//   - A zero radius (point exactly under the apex) is returned as-is;
//     use ProfileChecked to reject it instead.
//
// Complexity: O(N log N) time, O(N) extra space.
func Profile(x, y, z []float64, ax, ay float64) (r, elev []float64, err error) {
	n := len(x)
	if len(y) != n || len(z) != n {
		return nil, nil, ErrShapeMismatch
	}
	if n < MinControlPoints {
		return nil, nil, ErrTooFewPoints
	}

	// Distance pass.
	dist := make([]float64, n)
	var i int
	for i = 0; i < n; i++ {
		dist[i] = math.Hypot(x[i]-ax, y[i]-ay)
	}

	// Index sort: ascending distance, stable on the original index.
	idx := make([]int, n)
	for i = 0; i < n; i++ {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return dist[idx[a]] < dist[idx[b]] })

	// Apply the permutation to both sequences.
	r = make([]float64, n)
	elev = make([]float64, n)
	for i = 0; i < n; i++ {
		r[i] = dist[idx[i]]
		elev[i] = z[idx[i]]
	}

	return r, elev, nil
}

// ProfileChecked behaves like Profile but additionally rejects a profile
// whose smallest radius is zero with ErrDegenerateGeometry.
//
// Complexity: O(N log N) time, O(N) extra space.
func ProfileChecked(x, y, z []float64, ax, ay float64) (r, elev []float64, err error) {
	r, elev, err = Profile(x, y, z, ax, ay)
	if err != nil {
		return nil, nil, err
	}
	// r is sorted ascending, so a coincident point surfaces at r[0].
	if r[0] == 0 {
		return nil, nil, ErrDegenerateGeometry
	}

	return r, elev, nil
}
