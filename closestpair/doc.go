// Package closestpair finds the two closest points of a finite planar point
// set in O(n log n) time using divide and conquer.
//
// 🚀 What is the closest pair problem?
//
//	Given n points in the plane, find the pair whose Euclidean distance is
//	minimal. The brute-force baseline compares all C(n,2) pairs in O(n²);
//	the divide-and-conquer solver here is used in:
//	  • collision and proximity checks in simulations
//	  • duplicate / near-duplicate detection in spatial data
//	  • as a building block for clustering and geometric graphs
//
// ✨ Key features:
//   - two ordering views (by X and by Y) built once per query
//   - recursion over index ranges of the X view (no copies of the X view)
//   - y-order preserved by linear filtering, never re-sorted per level
//   - bounded strip scan: Window forward neighbours (15 by default, 7 is the
//     provable bound) with optional y-gap early exit
//   - Result reports the realizing pair and work counters, not only the distance
//   - BruteForce baseline with identical validation for cross-checking
//
// ⚙️ Usage:
//
//	import "github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/closestpair"
//
//	pts := []geometry.Point{{X: 2.1, Y: 3.2}, {X: 12.3, Y: 30.4}, {X: 3.3, Y: 4.4}}
//	d, err := closestpair.Distance(pts, nil) // nil ⇒ DefaultOptions()
//	if err != nil {
//	  // ErrInsufficientInput, ErrNonFinite or ErrBadOption
//	}
//
//	res, _ := closestpair.Closest(pts, &closestpair.Options{Window: 7, EarlyExit: true, LeafSize: 3})
//	fmt.Println(res.Pair, res.Distance)
//
// Algorithm outline:
//
//  1. Sort a copy by X and a copy by Y.
//  2. solve(byY, l, r): if r−l ≤ LeafSize compare all pairs of byX[l..r].
//  3. Otherwise mid = l+(r−l)/2, split byY by x ≤ byX[mid].X keeping order,
//     recurse on [l,mid] and [mid+1,r], d = min of both.
//  4. Strip = points of byY with |x − byX[mid].X| < d, already y-ordered.
//  5. Compare each strip point with at most Window successors; update d.
//
// Points sharing the median X all land in the left half, so halves may be
// unbalanced on inputs with repeated X coordinates. The answer is unaffected.
//
// Performance:
//
//   - Time:   O(n log n)
//   - Memory: O(n log n) for the per-level y partitions, plus one reusable
//     strip buffer of length n.
//
// The solver is single-threaded and keeps no state between calls, so
// independent queries may run concurrently.
package closestpair
