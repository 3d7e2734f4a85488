package closestpair

import (
	"fmt"

	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/geometry"
)

// Closest runs the divide-and-conquer closest pair search.
//
// Description:
//
//	Closest builds the X and Y ordering views of points once, runs the
//	recursive solver over the full range [0, n−1] and reports the minimum
//	pairwise distance together with a pair realizing it.
//
// Contract:
//   - points must hold at least two points with finite coordinates.
//   - opts may be nil (DefaultOptions); otherwise Window ≥ ProvableWindow
//     and LeafSize ≥ 1.
//   - points is never modified. Duplicates are allowed (distance 0).
//
// Complexity:
//
//	Time   = O(n log n)
//	Memory = O(n log n)
//
// Errors:
//   - ErrInsufficientInput: len(points) < 2.
//   - ErrNonFinite: a NaN or ±Inf coordinate.
//   - ErrBadOption: Window or LeafSize out of range.
func Closest(points []geometry.Point, opts *Options) (Result, error) {
	res, err := closest(points, opts)
	if err != nil {
		return Result{}, fmt.Errorf("Closest: %w", err)
	}

	return res, nil
}

// Distance returns only the minimum pairwise distance of points.
// It accepts the same options and fails under the same conditions as Closest.
//
// Example:
//
//	d, err := Distance(pts, nil)
//	fmt.Printf("%.6f\n", d)
func Distance(points []geometry.Point, opts *Options) (float64, error) {
	res, err := closest(points, opts)
	if err != nil {
		return 0, fmt.Errorf("Distance: %w", err)
	}

	return res.Distance, nil
}

func closest(points []geometry.Point, opts *Options) (Result, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if err = validatePoints(points); err != nil {
		return Result{}, err
	}

	byX, byY := newViews(points)
	s := newSolver(byX, o)
	b := s.solve(byY, 0, len(byX)-1, 0)

	return Result{Distance: b.d, Pair: b.pair, Stats: s.stats}, nil
}
