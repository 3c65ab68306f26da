package apex

import "errors"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultMaxIterations caps simplex iterations (the original scipy
	// workflow used 200·dim = 400 for the 2D apex).
	DefaultMaxIterations = 400

	// DefaultMaxFuncEvals caps objective evaluations.
	DefaultMaxFuncEvals = 800

	// DefaultTolerance is the absolute plateau threshold on the
	// objective under which the search is declared converged.
	DefaultTolerance = 1e-10

	// convergeWindow is how many consecutive iterations must stay
	// within Tolerance before declaring convergence.
	convergeWindow = 20
)

var (
	// ErrNilObjective indicates a nil objective function.
	ErrNilObjective = errors.New("apex: objective must be non-nil")

	// ErrBadOptions indicates a negative iteration/evaluation cap or a
	// negative tolerance.
	ErrBadOptions = errors.New("apex: options fields must be non-negative")
)

// Point is a candidate apex: planar coordinates only. The apex elevation
// is not modeled or solved for.
type Point struct {
	X, Y float64
}

// Objective scores a sorted radius profile (r ascending, elev permuted
// alongside). Lower is better; the search minimizes it. Note that for
// rank correlation "lower" means closer to −1.
type Objective func(r, elev []float64) (float64, error)

// Options configures the simplex search.
//
// Fields:
//   - MaxIterations — simplex iteration cap; 0 ⇒ DefaultMaxIterations.
//   - MaxFuncEvals  — objective evaluation cap; 0 ⇒ DefaultMaxFuncEvals.
//   - Tolerance     — convergence plateau threshold; 0 ⇒ DefaultTolerance.
//   - Concurrent    — CenterProfile only: run the two independent
//     searches in parallel. Results are identical either way; each
//     search owns its state and reads immutable input copies.
type Options struct {
	MaxIterations int
	MaxFuncEvals  int
	Tolerance     float64
	Concurrent    bool
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		MaxFuncEvals:  DefaultMaxFuncEvals,
		Tolerance:     DefaultTolerance,
	}
}

// Result is the outcome of CenterProfile: both optimized apexes and the
// full profile re-derived at each, keyed by objective.
type Result struct {
	// BestCenterLinear is the apex minimizing the linear-fit residual.
	BestCenterLinear Point
	// RadiusLinear / ElevationLinear is the profile at BestCenterLinear:
	// distances ascending, elevations permuted alongside.
	RadiusLinear    []float64
	ElevationLinear []float64
	// LinearConverged reports whether the residual search converged
	// within budget; false means BestCenterLinear is best-effort.
	LinearConverged bool

	// BestCenterRank is the apex minimizing Spearman's rho (toward −1).
	BestCenterRank Point
	// RadiusRank / ElevationRank is the profile at BestCenterRank.
	RadiusRank    []float64
	ElevationRank []float64
	// RankConverged reports whether the rank search converged in budget.
	RankConverged bool
}
