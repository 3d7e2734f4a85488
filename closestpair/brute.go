package closestpair

import (
	"fmt"

	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/geometry"
)

// BruteForce compares all C(n,2) pairs of points and returns the closest.
// It is the O(n²) baseline Closest is checked against, and validates its
// input the same way.
//
// Complexity: O(n²) time, O(1) extra space.
func BruteForce(points []geometry.Point) (Result, error) {
	if err := validatePoints(points); err != nil {
		return Result{}, fmt.Errorf("BruteForce: %w", err)
	}

	var stats Stats
	b := noPair()
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			stats.Comparisons++
			b.consider(points[i], points[j])
		}
	}

	return Result{Distance: b.d, Pair: b.pair, Stats: stats}, nil
}
