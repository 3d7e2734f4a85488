package closestpair_test

import (
	"errors"
	"fmt"

	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/closestpair"
	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/geometry"
)

// ExampleDistance computes the minimum distance of the six-point reference
// set with default options and prints it with six decimals.
func ExampleDistance() {
	pts := []geometry.Point{
		{X: 2.1, Y: 3.2}, {X: 12.3, Y: 30.4}, {X: 40.5, Y: 50.6},
		{X: 5.7, Y: 1.8}, {X: 12.0, Y: 10.0}, {X: 3.3, Y: 4.4},
	}

	d, err := closestpair.Distance(pts, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("min distance: %.6f\n", d)
	// Output:
	// min distance: 1.697056
}

// ExampleClosest reports the realizing pair using the provable 7-neighbour window.
func ExampleClosest() {
	pts := []geometry.Point{
		{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 4, Y: 4}, {X: 4.5, Y: 3}, {X: -6, Y: 2},
	}
	opts := closestpair.DefaultOptions()
	opts.Window = closestpair.ProvableWindow

	res, err := closestpair.Closest(pts, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	p := res.Pair.Normalize()
	fmt.Printf("%v %v %.6f\n", p.A, p.B, res.Distance)
	// Output:
	// (4, 4) (4.5, 3) 1.118034
}

// ExampleBruteForce shows the input error for a single point.
func ExampleBruteForce() {
	_, err := closestpair.BruteForce([]geometry.Point{{X: 1, Y: 2}})
	fmt.Println(errors.Is(err, closestpair.ErrInsufficientInput))
	fmt.Println(err)
	// Output:
	// true
	// BruteForce: got 1 point(s): closestpair: at least two points are required
}
