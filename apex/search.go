package apex

import (
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/egayer/conecone/radius"
)

// Search minimizes obj over the 2D apex-coordinate space with a
// derivative-free Nelder–Mead simplex, starting from (guessX, guessY).
//
// Contract:
//   - x, y, z are the control points (validated via radius.Profile).
//   - The starting profile must evaluate cleanly: shape, size and
//     degenerate-fit errors surface here as typed failures before any
//     simplex step is taken.
//   - During the walk, a candidate whose profile or score fails to
//     evaluate (transient degeneracy) scores +Inf and is stepped away
//     from; the walk itself never aborts on it.
//   - Deterministic: the result is a pure function of (points, obj,
//     guess, opts); the minimizer runs single-threaded.
//   - converged=false means the iteration/evaluation budget ran out:
//     the best-found point is still returned, with err == nil.
//
// Complexity: O(E · N log N) where E ≤ MaxFuncEvals.
func Search(x, y, z []float64, guessX, guessY float64, obj Objective, opts *Options) (best Point, converged bool, err error) {
	if obj == nil {
		return Point{}, false, ErrNilObjective
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return Point{}, false, err
	}

	// Probe the starting profile once so structural failures propagate
	// as typed errors instead of poisoning the simplex with +Inf.
	r0, e0, err := radius.Profile(x, y, z, guessX, guessY)
	if err != nil {
		return Point{}, false, err
	}
	if _, err = obj(r0, e0); err != nil {
		return Point{}, false, err
	}

	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			r, elev, perr := radius.Profile(x, y, z, p[0], p[1])
			if perr != nil {
				return math.Inf(1)
			}
			v, oerr := obj(r, elev)
			if oerr != nil {
				return math.Inf(1)
			}

			return v
		},
	}

	settings := &optimize.Settings{
		MajorIterations: o.MaxIterations,
		FuncEvaluations: o.MaxFuncEvals,
		Converger: &optimize.FunctionConverge{
			Absolute:   o.Tolerance,
			Iterations: convergeWindow,
		},
	}

	res, err := optimize.Minimize(problem, []float64{guessX, guessY}, settings, &optimize.NelderMead{})
	if err != nil {
		return Point{}, false, err
	}

	best = Point{X: res.X[0], Y: res.X[1]}
	converged = res.Status == optimize.FunctionConvergence || res.Status == optimize.MethodConverge

	return best, converged, nil
}

// gatherOptions applies defaults to zero fields and validates the rest.
func gatherOptions(opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts == nil {
		return o, nil
	}
	if opts.MaxIterations < 0 || opts.MaxFuncEvals < 0 || opts.Tolerance < 0 {
		return Options{}, ErrBadOptions
	}
	if opts.MaxIterations > 0 {
		o.MaxIterations = opts.MaxIterations
	}
	if opts.MaxFuncEvals > 0 {
		o.MaxFuncEvals = opts.MaxFuncEvals
	}
	if opts.Tolerance > 0 {
		o.Tolerance = opts.Tolerance
	}
	o.Concurrent = opts.Concurrent

	return o, nil
}
