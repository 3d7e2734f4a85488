// Package paa is the root of a small computational-geometry toolkit built
// around one classic problem: the closest pair of points in the plane.
//
// 🚀 What is inside?
//
//	• geometry/     — Point and Pair value types, Euclidean distance (gonum r2)
//	• closestpair/  — O(n log n) divide-and-conquer solver + O(n²) baseline
//	• pointgen/     — seeded generators: uniform, grid, collinear, circle,
//	                  clustered, real-world cities
//	• internal/     — point file I/O (text, YAML, JSON) and CLI configuration
//	• cmd/closestpair — command-line front end
//
// ✨ Why another closest pair?
//
//   - Exact – ties on the split line, duplicates and vertical lines are all
//     handled; results are cross-checked against brute force in tests
//   - Observable – every run reports comparisons, strip sizes and depth
//   - Tunable – strip window, early exit and leaf size are plain Options
//   - Pure library – no logging, no global state, safe for concurrent use
//
// Quick ASCII example:
//
//	         •(3.3,4.4)        •(12.0,10.0)
//	        ╱ 1.697
//	    •(2.1,3.2)
//
// the two left-most points are the closest pair of the reference set.
//
//	go get github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/closestpair
package paa
