package closestpair

import (
	"math"

	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/geometry"
)

// buildStrip appends to dst every point of byY whose horizontal distance to
// the partition line x = midX is strictly less than d. The result inherits
// the y-order of byY.
//
// Complexity: O(len(byY)).
func buildStrip(dst, byY []geometry.Point, midX, d float64) []geometry.Point {
	for _, p := range byY {
		if math.Abs(p.X-midX) < d {
			dst = append(dst, p)
		}
	}

	return dst
}

// scanStrip compares every strip point with at most Window successors in
// y-order and returns cur improved by any strictly closer pair.
//
// With EarlyExit the inner loop stops at the first successor whose y-gap
// reaches the current best distance. The strip is y-sorted, so every later
// successor has an even larger gap and cannot be strictly closer; d only
// shrinks, so the cut-off never skips a pair that would have won.
//
// Complexity: O(len(strip)·Window).
func (s *solver) scanStrip(strip []geometry.Point, cur best) best {
	window := s.opts.Window
	for i := range strip {
		last := min(len(strip)-1, i+window)
		for j := i + 1; j <= last; j++ {
			if s.opts.EarlyExit && strip[j].Y-strip[i].Y >= cur.d {
				break
			}
			s.stats.Comparisons++
			cur.consider(strip[i], strip[j])
		}
	}

	return cur
}
