package closestpair

import (
	"errors"

	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/geometry"
)

const (
	// ReferenceWindow is the number of forward strip neighbours compared by
	// default. It keeps a conservative margin over ProvableWindow.
	ReferenceWindow = 15

	// ProvableWindow is the smallest window for which the strip scan is
	// guaranteed exact: a d×2d rectangle holds at most 8 points that are
	// pairwise at least d apart, so any closer partner lies within 7 steps.
	ProvableWindow = 7

	// DefaultLeafSize makes ranges of at most 4 points (r−l ≤ 3) a base case.
	DefaultLeafSize = 3
)

var (
	// ErrInsufficientInput indicates fewer than two points were supplied.
	ErrInsufficientInput = errors.New("closestpair: at least two points are required")

	// ErrNonFinite indicates a point with a NaN or infinite coordinate.
	ErrNonFinite = errors.New("closestpair: coordinates must be finite")

	// ErrBadOption indicates Options outside their valid ranges.
	ErrBadOption = errors.New("closestpair: invalid option value")
)

// Options configures the divide-and-conquer solver.
//
// Fields:
//   - Window: forward neighbours compared per strip point; must be ≥ ProvableWindow.
//   - EarlyExit: stop scanning forward once strip[j].Y − strip[i].Y ≥ d.
//     Only skips pairs that cannot beat d; the result never changes.
//   - LeafSize: ranges with r−l ≤ LeafSize are solved exhaustively; must be ≥ 1.
type Options struct {
	Window    int
	EarlyExit bool
	LeafSize  int
}

// DefaultOptions returns the reference configuration:
// Window=15, EarlyExit=true, LeafSize=3.
func DefaultOptions() Options {
	return Options{
		Window:    ReferenceWindow,
		EarlyExit: true,
		LeafSize:  DefaultLeafSize,
	}
}

// Stats counts the work done by a single query.
type Stats struct {
	// Comparisons is the number of point-to-point distance evaluations.
	Comparisons int

	// StripPoints is the total number of points placed in strips.
	StripPoints int

	// MaxDepth is the deepest recursion level reached (root = 0).
	MaxDepth int
}

// Result holds the outcome of a closest-pair query.
type Result struct {
	// Distance is the minimum pairwise Euclidean distance.
	Distance float64

	// Pair is a pair of input points realizing Distance.
	Pair geometry.Pair

	// Stats describes the work performed.
	Stats Stats
}
