package closestpair_test

import (
	"testing"

	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/closestpair"
	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/geometry"
	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/pointgen"
)

// benchmarkClosest runs Closest on pts with opts.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkClosest(b *testing.B, pts []geometry.Point, opts *closestpair.Options) {
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := closestpair.Closest(pts, opts); err != nil {
			b.Fatalf("Closest failed: %v", err)
		}
	}
}

func uniform(b *testing.B, n int) []geometry.Point {
	pts, err := pointgen.Uniform(n, pointgen.WithSeed(1))
	if err != nil {
		b.Fatalf("Uniform failed: %v", err)
	}
	return pts
}

// BenchmarkClosest_Uniform1K benchmarks default options on 1 000 uniform points.
func BenchmarkClosest_Uniform1K(b *testing.B) {
	benchmarkClosest(b, uniform(b, 1_000), nil)
}

// BenchmarkClosest_Uniform100K benchmarks default options on 100 000 uniform points.
func BenchmarkClosest_Uniform100K(b *testing.B) {
	benchmarkClosest(b, uniform(b, 100_000), nil)
}

// BenchmarkClosest_ProvableWindow100K uses the 7-neighbour window without early exit.
func BenchmarkClosest_ProvableWindow100K(b *testing.B) {
	opts := &closestpair.Options{Window: closestpair.ProvableWindow, LeafSize: closestpair.DefaultLeafSize}
	benchmarkClosest(b, uniform(b, 100_000), opts)
}

// BenchmarkClosest_NoEarlyExit100K keeps the reference window but scans it fully.
func BenchmarkClosest_NoEarlyExit100K(b *testing.B) {
	opts := &closestpair.Options{Window: closestpair.ReferenceWindow, LeafSize: closestpair.DefaultLeafSize}
	benchmarkClosest(b, uniform(b, 100_000), opts)
}

// BenchmarkClosest_Vertical10K benchmarks the unbalanced all-equal-X case.
func BenchmarkClosest_Vertical10K(b *testing.B) {
	pts, err := pointgen.Vertical(10_000, pointgen.WithSeed(1))
	if err != nil {
		b.Fatalf("Vertical failed: %v", err)
	}
	benchmarkClosest(b, pts, nil)
}

// BenchmarkClosest_Cities benchmarks the full world-cities fixture.
func BenchmarkClosest_Cities(b *testing.B) {
	benchmarkClosest(b, pointgen.Cities(), nil)
}

// BenchmarkBruteForce_1K is the O(n²) baseline on the same 1 000 points.
func BenchmarkBruteForce_1K(b *testing.B) {
	pts := uniform(b, 1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := closestpair.BruteForce(pts); err != nil {
			b.Fatalf("BruteForce failed: %v", err)
		}
	}
}
