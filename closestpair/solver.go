package closestpair

import (
	"math"

	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/geometry"
)

// best is the closest pair found so far within a recursion range.
// d is +Inf until a pair has been compared.
type best struct {
	d    float64
	pair geometry.Pair
}

func noPair() best {
	return best{d: math.Inf(1)}
}

// consider replaces b with (p, q) when their distance is strictly smaller.
func (b *best) consider(p, q geometry.Point) {
	if d := p.Distance(q); d < b.d {
		b.d = d
		b.pair = geometry.Pair{A: p, B: q}
	}
}

// solver carries the per-query state shared by every recursion level:
// the x-ordered backing slice addressed by [l, r] bounds, the resolved
// options, one strip buffer reused by every merge step, and the counters.
//
// A solver serves a single query and is not safe for concurrent use.
type solver struct {
	byX   []geometry.Point
	strip []geometry.Point
	opts  Options
	stats Stats
}

func newSolver(byX []geometry.Point, opts Options) *solver {
	return &solver{
		byX:   byX,
		strip: make([]geometry.Point, 0, len(byX)),
		opts:  opts,
	}
}

// solve returns the closest pair among byX[l..r]. byY holds the points of
// the current range in global y-order; it is derived from the parent's
// byY by filtering, never by sorting.
//
// Steps:
//  1. r−l ≤ LeafSize: exhaustive comparison of byX[l..r].
//  2. Split byY at midPoint.X = byX[l+(r−l)/2].X, preserving y-order.
//  3. Recurse on both halves, keep the better result.
//  4. Merge through the strip around midPoint.X.
func (s *solver) solve(byY []geometry.Point, l, r, depth int) best {
	if depth > s.stats.MaxDepth {
		s.stats.MaxDepth = depth
	}
	if r-l <= s.opts.LeafSize {
		return s.exhaustive(l, r)
	}

	mid := l + (r-l)/2
	midPoint := s.byX[mid]

	// Equal-X points all go left: halves may be unbalanced, never wrong.
	yLeft, yRight := splitByX(byY, midPoint.X)

	b := s.solve(yLeft, l, mid, depth+1)
	if rb := s.solve(yRight, mid+1, r, depth+1); rb.d < b.d {
		b = rb
	}

	// The strip comes from this call's byY, not from yLeft/yRight.
	strip := buildStrip(s.strip[:0], byY, midPoint.X, b.d)
	s.stats.StripPoints += len(strip)

	return s.scanStrip(strip, b)
}

// exhaustive compares every pair of byX[l..r].
// A single-point range yields noPair.
func (s *solver) exhaustive(l, r int) best {
	b := noPair()
	for i := l; i <= r; i++ {
		for j := i + 1; j <= r; j++ {
			s.stats.Comparisons++
			b.consider(s.byX[i], s.byX[j])
		}
	}

	return b
}
