package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a 2D coordinate pair. Points are values: no method mutates the
// receiver, and two points with equal coordinates are indistinguishable.
type Point struct {
	X, Y float64
}

// NewPoint returns the point (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// vec views p as a gonum r2 vector.
func (p Point) vec() r2.Vec {
	return r2.Vec(p)
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return r2.Norm(r2.Sub(p.vec(), q.vec()))
}

// DistanceSq returns the squared Euclidean distance between p and q.
func (p Point) DistanceSq(q Point) float64 {
	return r2.Norm2(r2.Sub(p.vec(), q.vec()))
}

// Scale returns p with both coordinates multiplied by c.
func (p Point) Scale(c float64) Point {
	return Point(r2.Scale(c, p.vec()))
}

// IsFinite reports whether neither coordinate is NaN or infinite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Equal reports whether p and q have identical coordinates.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Less orders points lexicographically by (X, Y).
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// String renders p as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
