// Package conecone locates the apex ("best center") of a cone-shaped
// landform from a sparse, irregular set of surveyed control points.
//
// 🚀 What is conecone?
//
//	Given planar coordinates and elevations of surveyed points, conecone
//	answers: where would a perfect cone apex have to sit so that distance
//	from the apex best predicts elevation? Two independent notions of
//	"best" are solved side by side:
//	  • Linear regression — least-squares line through (radius, elevation)
//	  • Spearman rank correlation — monotonic ordering of the profile
//
// ✨ Why choose conecone?
//
//   - Minimal API – one orchestrating call, three small focused packages
//   - Deterministic – same inputs and guess, same answer, every run
//   - Typed failures – sentinel errors, no silently swallowed degeneracy
//   - Proven numerics – gonum least squares and Nelder–Mead under the hood
//
// Everything is organized under three subpackages:
//
//	radius/ — distance profiles: apex→point distances co-sorted with elevation
//	fit/    — goodness-of-fit objectives: polynomial residual & Spearman rho
//	apex/   — derivative-free apex search + the CenterProfile orchestrator
//
// Quick ASCII example:
//
//	        ▲ apex (xa, ya)?
//	       ╱ ╲
//	      ╱   ╲        elevation falls off linearly
//	  ───•──•──•───    with distance from the true apex
//
// Dive into examples/ for synthetic cone recovery and a volcano-style
// survey walkthrough.
//
//	go get github.com/egayer/conecone
package conecone
