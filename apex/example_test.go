package apex_test

import (
	"fmt"
	"math"

	"github.com/egayer/conecone/apex"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleCenterProfile
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A synthetic scoria cone: 25 survey stations scattered around the
//	true apex (250, 400), elevation falling 3 m per meter of radius.
//	The guess starts a few meters off the summit.
//
// Use case:
//
//	One call returns both solutions — the least-squares center and the
//	rank-correlation center — with their full distance profiles.
//
// Complexity: two bounded simplex walks, O(N log N) per evaluation
func ExampleCenterProfile() {
	const ax, ay = 250, 400
	n := 25
	x := make([]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)
	for i := 0; i < n; i++ {
		ang := 2.399963 * float64(i+1)
		rad := 2 + 0.9*float64(i+1)
		x[i] = ax + rad*math.Cos(ang)
		y[i] = ay + rad*math.Sin(ang)
		z[i] = 900 - 3*math.Hypot(x[i]-ax, y[i]-ay)
	}

	res, err := apex.CenterProfile(x, y, z, ax-4, ay+3, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	linMiss := math.Hypot(res.BestCenterLinear.X-ax, res.BestCenterLinear.Y-ay)
	fmt.Printf("linear converged: %t, apex error < 0.5: %t\n", res.LinearConverged, linMiss < 0.5)
	fmt.Printf("rank   converged: %t\n", res.RankConverged)
	fmt.Printf("profile covers all stations: %t\n", len(res.RadiusLinear) == n && len(res.RadiusRank) == n)
	// Output:
	// linear converged: true, apex error < 0.5: true
	// rank   converged: true
	// profile covers all stations: true
}
