package closestpair

import (
	"cmp"
	"slices"

	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/geometry"
)

// newViews builds the two ordering views of points: ascending by X and
// ascending by Y. The input slice is left untouched.
//
// Ties keep whatever relative order the sort produces; only the
// coordinate order matters to the solver.
//
// Complexity: O(n log n) time, O(n) extra space per view.
func newViews(points []geometry.Point) (byX, byY []geometry.Point) {
	byX = slices.Clone(points)
	byY = slices.Clone(points)

	slices.SortFunc(byX, func(a, b geometry.Point) int { return cmp.Compare(a.X, b.X) })
	slices.SortFunc(byY, func(a, b geometry.Point) int { return cmp.Compare(a.Y, b.Y) })

	return byX, byY
}

// splitByX partitions the y-ordered slice into points with x ≤ midX and the
// rest. Both outputs keep the y-order of the input (linear filter, no sort).
//
// Complexity: O(len(byY)).
func splitByX(byY []geometry.Point, midX float64) (left, right []geometry.Point) {
	left = make([]geometry.Point, 0, len(byY)/2+1)
	right = make([]geometry.Point, 0, len(byY)/2+1)
	for _, p := range byY {
		if p.X <= midX {
			left = append(left, p)
		} else {
			right = append(right, p)
		}
	}

	return left, right
}
