// SPDX-License-Identifier: MIT
// Package: pointgen
//
// options.go — functional options and the resolved generator config.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and PANIC on meaningless inputs.
//   • newConfig applies options in order; later options win.

package pointgen

import (
	"math"
	"math/rand"
)

// Deterministic defaults.
const (
	defaultWidth  = 1000.0
	defaultHeight = 1000.0
	defaultSeed   = int64(1)
)

// Option customizes a generator call.
type Option func(*config)

// config aggregates every generator knob. It is passed by value.
type config struct {
	rng    *rand.Rand
	x0, y0 float64
	w, h   float64
	sigma  float64
}

// newConfig resolves opts on top of the deterministic defaults.
// A missing RNG is replaced by one seeded with defaultSeed.
func newConfig(opts ...Option) config {
	cfg := config{w: defaultWidth, h: defaultHeight}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(defaultSeed)
	}

	return cfg
}

// WithSeed creates a new deterministic RNG from seed.
// Seed 0 maps to the package default seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("pointgen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithExtent sets the size of the bounding rectangle. Panics unless w, h > 0.
func WithExtent(w, h float64) Option {
	if !(w > 0) || !(h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		panic("pointgen: WithExtent(w<=0 || h<=0)")
	}
	return func(c *config) {
		c.w, c.h = w, h
	}
}

// WithOrigin sets the lower-left corner of the bounding rectangle.
// Panics on non-finite coordinates.
func WithOrigin(x, y float64) Option {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		panic("pointgen: WithOrigin(non-finite)")
	}
	return func(c *config) {
		c.x0, c.y0 = x, y
	}
}

// WithJitter sets the standard deviation of the Gaussian noise added by
// Grid and Clustered. Panics if sigma < 0.
func WithJitter(sigma float64) Option {
	if !(sigma >= 0) {
		panic("pointgen: WithJitter(sigma<0)")
	}
	return func(c *config) {
		c.sigma = sigma
	}
}
