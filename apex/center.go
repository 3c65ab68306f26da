package apex

import (
	"sync"

	"github.com/egayer/conecone/fit"
	"github.com/egayer/conecone/radius"
)

// CenterProfile estimates the best cone center twice — once per
// goodness-of-fit objective — from one shared starting guess, and
// returns both solutions side by side.
//
// Stage 1: Search with the linear-fit residual (fit.LinearResidual).
// Stage 2: Search with Spearman's rho (fit.SpearmanRho, minimized
// toward −1 — an ideal cone is strictly decreasing with radius).
// Stage 3: re-derive the full sorted profile at each optimized apex
// against the original control points and assemble the Result.
//
// Contract:
//   - x, y, z must share one length N ≥ radius.MinControlPoints and the
//     guess must be in the same planar coordinate system.
//   - Pure function of its inputs: the control points are copied once up
//     front and never mutated; calling twice with identical inputs gives
//     identical results.
//   - The two searches are fully independent; opts.Concurrent runs them
//     in two goroutines with the same output as sequential execution.
//   - Any failure from either search propagates as-is — no partial
//     result. Budget exhaustion is NOT a failure: it is reported through
//     the Converged flags (best-effort points are still returned).
//
// Complexity: two simplex walks of at most MaxFuncEvals evaluations,
// each evaluation O(N log N).
func CenterProfile(x, y, z []float64, guessX, guessY float64, opts *Options) (Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return Result{}, err
	}

	// Immutable working copies: both searches read the same frozen data.
	xs := append([]float64(nil), x...)
	ys := append([]float64(nil), y...)
	zs := append([]float64(nil), z...)

	linObj := Objective(func(r, elev []float64) (float64, error) {
		return fit.LinearResidual(r, elev)
	})
	// Rho is minimized as-is: −1 (perfect inverse ordering) is the best
	// score a candidate apex can reach. Do not take absolute values here.
	rankObj := Objective(func(r, elev []float64) (float64, error) {
		return fit.SpearmanRho(r, elev)
	})

	var (
		linBest, rankBest           Point
		linConverged, rankConverged bool
		linErr, rankErr             error
	)

	runLin := func() {
		linBest, linConverged, linErr = Search(xs, ys, zs, guessX, guessY, linObj, &o)
	}
	runRank := func() {
		rankBest, rankConverged, rankErr = Search(xs, ys, zs, guessX, guessY, rankObj, &o)
	}

	if o.Concurrent {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() { defer wg.Done(); runLin() }()
		go func() { defer wg.Done(); runRank() }()
		wg.Wait()
	} else {
		runLin()
		runRank()
	}

	if linErr != nil {
		return Result{}, linErr
	}
	if rankErr != nil {
		return Result{}, rankErr
	}

	// Final profiles at both optima, against the original control points.
	rLin, eLin, err := radius.Profile(xs, ys, zs, linBest.X, linBest.Y)
	if err != nil {
		return Result{}, err
	}
	rRank, eRank, err := radius.Profile(xs, ys, zs, rankBest.X, rankBest.Y)
	if err != nil {
		return Result{}, err
	}

	return Result{
		BestCenterLinear: linBest,
		RadiusLinear:     rLin,
		ElevationLinear:  eLin,
		LinearConverged:  linConverged,

		BestCenterRank: rankBest,
		RadiusRank:     rRank,
		ElevationRank:  eRank,
		RankConverged:  rankConverged,
	}, nil
}
