// SPDX-License-Identifier: MIT
// Package: pointgen
//
// errors.go — sentinel errors for the pointgen package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Generators attach context with %w (see generatorErrorf).
//   • Option constructors panic instead of returning errors.

package pointgen

import (
	"errors"
	"fmt"
)

// ErrTooFewPoints indicates a size parameter (n, rows, cols, k) below its minimum.
var ErrTooFewPoints = errors.New("pointgen: size parameter too small")

// ErrBadParameter indicates a non-size parameter outside its domain
// (e.g., a NaN slope, k greater than n, a non-positive scale factor).
var ErrBadParameter = errors.New("pointgen: invalid parameter")

// generatorErrorf prefixes a sentinel with the generator name and a short
// description while keeping it reachable through errors.Is.
func generatorErrorf(method, format string, sentinel error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
