package pointgen

import (
	"math"
	"slices"

	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/geometry"
)

// Duplicate returns a copy of points with k extra copies of randomly chosen
// members appended. The closest-pair distance of the result is 0 for k ≥ 1.
func Duplicate(points []geometry.Point, k int, opts ...Option) ([]geometry.Point, error) {
	if len(points) < 1 {
		return nil, generatorErrorf(MethodDuplicate, "len(points)=%d", ErrTooFewPoints, len(points))
	}
	if k < 0 {
		return nil, generatorErrorf(MethodDuplicate, "k=%d", ErrBadParameter, k)
	}
	cfg := newConfig(opts...)

	out := make([]geometry.Point, len(points), len(points)+k)
	copy(out, points)
	for i := 0; i < k; i++ {
		out = append(out, points[cfg.rng.Intn(len(points))])
	}

	return out, nil
}

// Shuffle returns a permuted copy of points (Fisher–Yates).
func Shuffle(points []geometry.Point, opts ...Option) []geometry.Point {
	cfg := newConfig(opts...)

	out := slices.Clone(points)
	for i := len(out) - 1; i > 0; i-- {
		j := cfg.rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// Scale returns a copy of points with every coordinate multiplied by c > 0.
func Scale(points []geometry.Point, c float64) ([]geometry.Point, error) {
	if !(c > 0) || math.IsInf(c, 0) {
		return nil, generatorErrorf(MethodScale, "c=%v", ErrBadParameter, c)
	}

	out := make([]geometry.Point, len(points))
	for i, p := range points {
		out[i] = p.Scale(c)
	}

	return out, nil
}
