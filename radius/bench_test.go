package radius_test

import (
	"testing"

	"github.com/egayer/conecone/radius"
)

// benchmarkProfile runs Profile on n synthetic control points laid out on
// a spiral around the candidate apex.
func benchmarkProfile(b *testing.B, n int) {
	x := make([]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		x[i] = 100 + 50*t*float64(i%13)
		y[i] = 100 - 50*t*float64(i%7)
		z[i] = 500 - 3*t
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, err := radius.Profile(x, y, z, 100, 100)
		if err != nil {
			b.Fatalf("Profile failed: %v", err)
		}
	}
}

// BenchmarkProfile_Small benchmarks a typical sparse survey (30 points).
func BenchmarkProfile_Small(b *testing.B) { benchmarkProfile(b, 30) }

// BenchmarkProfile_Medium benchmarks a dense survey (1 000 points).
func BenchmarkProfile_Medium(b *testing.B) { benchmarkProfile(b, 1000) }

// BenchmarkProfile_Large benchmarks a LiDAR-thinned survey (50 000 points).
func BenchmarkProfile_Large(b *testing.B) { benchmarkProfile(b, 50000) }
