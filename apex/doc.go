// Package apex searches for the cone apex: the planar point whose
// distance profile best explains the surveyed elevations.
//
// 🚀 How the search works:
//
//	An Objective scores a (radius, elevation) profile — see the fit
//	package for the two shipped objectives. Search wraps the objective
//	into a scalar function of the 2D apex coordinates and minimizes it
//	with a derivative-free Nelder–Mead simplex (gonum/optimize) from a
//	user-supplied starting guess. The search is LOCAL and deterministic:
//	same control points, objective and guess ⇒ same answer; different
//	guesses may land on different local optima, and no restart or
//	global-search strategy is applied.
//
//	CenterProfile is the orchestrator: it runs Search twice from one
//	shared guess — once minimizing the linear-fit residual, once
//	minimizing Spearman's rho (toward −1; see fit.SpearmanRho) — then
//	recomputes the full profile at each optimum and returns both
//	solutions side by side in a typed Result.
//
// ✨ Key guarantees:
//   - Non-convergence is reported, never raised: when the iteration or
//     evaluation budget runs out you still get the best-found point,
//     with the matching Converged flag set to false
//   - Degenerate candidates met DURING the walk score +Inf so the
//     simplex steps away; validation errors at the starting profile
//     propagate as typed failures before any search starts
//   - The two CenterProfile searches are fully independent; Concurrent
//     mode runs them in parallel with bit-identical results
//
// ⚙️ Usage:
//
//	import "github.com/egayer/conecone/apex"
//
//	res, err := apex.CenterProfile(xs, ys, zs, 90, 90, nil)
//	if err != nil {
//	  // handle shape/degeneracy failures
//	}
//	fmt.Println(res.BestCenterLinear, res.LinearConverged)
//
// Performance:
//
//   - Each objective evaluation is O(N log N); the simplex walk is
//     bounded by MaxIterations / MaxFuncEvals.
//
// See examples in example_test.go.
package apex
