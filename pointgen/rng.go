// Package pointgen - RNG utilities shared by the generators.
//
// Goals:
//   - Determinism: same seed ⇒ identical point sets across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one across goroutines.
package pointgen

import "math/rand"

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// uniformIn draws a value uniformly from [lo, lo+span).
func uniformIn(r *rand.Rand, lo, span float64) float64 {
	return lo + r.Float64()*span
}
