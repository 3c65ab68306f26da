package radius_test

import (
	"fmt"

	"github.com/egayer/conecone/radius"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleProfile
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three survey stations on a small hill, candidate apex at the origin.
//	Distances from (0,0): 5, 1, 3 — elevations travel with their station.
//
// Use case:
//
//	Building the (radius, elevation) profile fed to the fit package.
//
// Complexity: O(N log N) time, O(N) memory
func ExampleProfile() {
	x := []float64{3, 1, 0}
	y := []float64{4, 0, 3}
	z := []float64{12.5, 48.0, 30.1}

	r, elev, err := radius.Profile(x, y, z, 0, 0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("r=%v\nelev=%v\n", r, elev)
	// Output:
	// r=[1 3 5]
	// elev=[48 30.1 12.5]
}

// ExampleProfileChecked demonstrates the strict variant rejecting an apex
// that sits exactly on a control point.
func ExampleProfileChecked() {
	x := []float64{2, 5, 9}
	y := []float64{2, 5, 9}
	z := []float64{40, 30, 20}

	_, _, err := radius.ProfileChecked(x, y, z, 5, 5)
	fmt.Println(err)
	// Output:
	// radius: control point coincides with the candidate apex
}
