package closestpair

import (
	"fmt"

	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/geometry"
)

// resolveOptions returns DefaultOptions for nil, otherwise a validated copy.
func resolveOptions(opts *Options) (Options, error) {
	if opts == nil {
		return DefaultOptions(), nil
	}
	if opts.Window < ProvableWindow {
		return Options{}, fmt.Errorf("Window=%d below %d: %w", opts.Window, ProvableWindow, ErrBadOption)
	}
	if opts.LeafSize < 1 {
		return Options{}, fmt.Errorf("LeafSize=%d below 1: %w", opts.LeafSize, ErrBadOption)
	}

	return *opts, nil
}

// validatePoints rejects sets with fewer than two points or with a
// non-finite coordinate. The first offending index is reported.
//
// Complexity: O(n).
func validatePoints(points []geometry.Point) error {
	if len(points) < 2 {
		return fmt.Errorf("got %d point(s): %w", len(points), ErrInsufficientInput)
	}
	for i, p := range points {
		if !p.IsFinite() {
			return fmt.Errorf("point %d %v: %w", i, p, ErrNonFinite)
		}
	}

	return nil
}
