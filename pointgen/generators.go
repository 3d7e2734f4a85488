// SPDX-License-Identifier: MIT
// Package: pointgen
//
// generators.go — deterministic point-set constructors.
//
// Contract:
//   • Every generator validates its size parameters first and returns
//     ErrTooFewPoints / ErrBadParameter wrapped with its name.
//   • Same arguments and options ⇒ identical output.
//   • O(n) time and memory.

package pointgen

import (
	"math"

	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/geometry"
)

// Generator names used as error prefixes.
const (
	MethodUniform   = "Uniform"
	MethodGrid      = "Grid"
	MethodCollinear = "Collinear"
	MethodVertical  = "Vertical"
	MethodCircle    = "Circle"
	MethodClustered = "Clustered"
	MethodDuplicate = "Duplicate"
	MethodScale     = "Scale"
)

// defaultClusterSpread is the cluster sigma, as a fraction of the smaller
// extent side, used when WithJitter is not set.
const defaultClusterSpread = 0.01

// Uniform returns n points drawn uniformly from the bounding rectangle.
func Uniform(n int, opts ...Option) ([]geometry.Point, error) {
	if n < 1 {
		return nil, generatorErrorf(MethodUniform, "n=%d", ErrTooFewPoints, n)
	}
	cfg := newConfig(opts...)

	out := make([]geometry.Point, n)
	for i := range out {
		out[i] = geometry.Point{
			X: uniformIn(cfg.rng, cfg.x0, cfg.w),
			Y: uniformIn(cfg.rng, cfg.y0, cfg.h),
		}
	}

	return out, nil
}

// Grid returns a rows×cols lattice spanning the bounding rectangle, with
// spacing w/cols and h/rows. WithJitter perturbs every lattice point.
// Without jitter, many points share X and Y coordinates exactly.
func Grid(rows, cols int, opts ...Option) ([]geometry.Point, error) {
	if rows < 1 || cols < 1 {
		return nil, generatorErrorf(MethodGrid, "rows=%d cols=%d", ErrTooFewPoints, rows, cols)
	}
	cfg := newConfig(opts...)

	dx := cfg.w / float64(cols)
	dy := cfg.h / float64(rows)
	out := make([]geometry.Point, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := geometry.Point{X: cfg.x0 + float64(c)*dx, Y: cfg.y0 + float64(r)*dy}
			if cfg.sigma > 0 {
				p.X += cfg.sigma * cfg.rng.NormFloat64()
				p.Y += cfg.sigma * cfg.rng.NormFloat64()
			}
			out = append(out, p)
		}
	}

	return out, nil
}

// Collinear returns n points on the line y = y0 + slope·(x − x0), with x
// drawn uniformly from [x0, x0+w).
func Collinear(n int, slope float64, opts ...Option) ([]geometry.Point, error) {
	if n < 1 {
		return nil, generatorErrorf(MethodCollinear, "n=%d", ErrTooFewPoints, n)
	}
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return nil, generatorErrorf(MethodCollinear, "slope=%v", ErrBadParameter, slope)
	}
	cfg := newConfig(opts...)

	out := make([]geometry.Point, n)
	for i := range out {
		x := uniformIn(cfg.rng, cfg.x0, cfg.w)
		out[i] = geometry.Point{X: x, Y: cfg.y0 + slope*(x-cfg.x0)}
	}

	return out, nil
}

// Vertical returns n points with X exactly x0 and Y uniform in [y0, y0+h).
// Every point shares the partition coordinate, the worst case for
// balanced splitting.
func Vertical(n int, opts ...Option) ([]geometry.Point, error) {
	if n < 1 {
		return nil, generatorErrorf(MethodVertical, "n=%d", ErrTooFewPoints, n)
	}
	cfg := newConfig(opts...)

	out := make([]geometry.Point, n)
	for i := range out {
		out[i] = geometry.Point{X: cfg.x0, Y: uniformIn(cfg.rng, cfg.y0, cfg.h)}
	}

	return out, nil
}

// Circle returns n points evenly spaced on the circle inscribed in the
// bounding rectangle, starting at angle 0.
func Circle(n int, opts ...Option) ([]geometry.Point, error) {
	if n < 1 {
		return nil, generatorErrorf(MethodCircle, "n=%d", ErrTooFewPoints, n)
	}
	cfg := newConfig(opts...)

	radius := math.Min(cfg.w, cfg.h) / 2
	cx, cy := cfg.x0+cfg.w/2, cfg.y0+cfg.h/2
	step := 2 * math.Pi / float64(n)

	out := make([]geometry.Point, n)
	for i := range out {
		a := float64(i) * step
		out[i] = geometry.Point{X: cx + radius*math.Cos(a), Y: cy + radius*math.Sin(a)}
	}

	return out, nil
}

// Clustered returns n points spread around k centres drawn uniformly from
// the bounding rectangle. Point i belongs to centre i mod k; offsets are
// Gaussian with the WithJitter sigma, or 1% of the smaller side.
func Clustered(n, k int, opts ...Option) ([]geometry.Point, error) {
	if n < 1 || k < 1 {
		return nil, generatorErrorf(MethodClustered, "n=%d k=%d", ErrTooFewPoints, n, k)
	}
	if k > n {
		return nil, generatorErrorf(MethodClustered, "k=%d exceeds n=%d", ErrBadParameter, k, n)
	}
	cfg := newConfig(opts...)

	sigma := cfg.sigma
	if sigma == 0 {
		sigma = defaultClusterSpread * math.Min(cfg.w, cfg.h)
	}

	centres := make([]geometry.Point, k)
	for i := range centres {
		centres[i] = geometry.Point{
			X: uniformIn(cfg.rng, cfg.x0, cfg.w),
			Y: uniformIn(cfg.rng, cfg.y0, cfg.h),
		}
	}

	out := make([]geometry.Point, n)
	for i := range out {
		c := centres[i%k]
		out[i] = geometry.Point{
			X: c.X + sigma*cfg.rng.NormFloat64(),
			Y: c.Y + sigma*cfg.rng.NormFloat64(),
		}
	}

	return out, nil
}
