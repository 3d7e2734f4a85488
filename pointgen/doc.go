// Package pointgen generates deterministic planar point sets for tests,
// benchmarks, demos and the command-line tool.
//
// 🚀 What does it build?
//
//	Uniform   — n points drawn uniformly from a rectangle
//	Grid      — a rows×cols lattice (optionally jittered)
//	Collinear — n points on a line y = y0 + slope·(x − x0)
//	Vertical  — n points sharing one exact X coordinate
//	Circle    — n points evenly spaced on a circle
//	Clustered — n points scattered around k random centres
//	Cities    — world cities as planar (longitude, latitude) points
//
// plus helpers that keep a set's multiset intact while changing its shape:
// Duplicate, Shuffle and Scale.
//
// ⚙️ Options:
//
//	WithSeed(s)        — reproducible stream (same seed ⇒ same points)
//	WithRand(r)        — explicit *rand.Rand
//	WithExtent(w, h)   — bounding rectangle size (default 1000×1000)
//	WithOrigin(x, y)   — bounding rectangle corner (default 0,0)
//	WithJitter(sigma)  — Gaussian noise added to lattice/cluster points
//
// Without WithSeed/WithRand every generator uses the same fixed default
// seed, so fixtures are reproducible out of the box.
//
// Option constructors panic on meaningless values (nil RNG, non-positive
// extent, negative sigma); generators never panic and return sentinel
// errors instead.
//
//	pts, err := pointgen.Uniform(1000, pointgen.WithSeed(42))
package pointgen
