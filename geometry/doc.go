// Package geometry holds the planar primitives shared by the closest-pair
// solvers, the fixture generators and the CLI.
//
// 🚀 What is here?
//
//	Point — an immutable (X, Y) pair of float64 coordinates.
//	Pair  — two points and the distance between them.
//
// Distances are Euclidean and computed through gonum's r2 package, which
// relies on math.Hypot and therefore does not overflow for large coordinates.
//
//	p := geometry.NewPoint(2.1, 3.2)
//	q := geometry.NewPoint(3.3, 4.4)
//	fmt.Printf("%.6f\n", p.Distance(q)) // 1.697056
package geometry
