package pointgen

import (
	"github.com/tidwall/cities"

	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/geometry"
)

// Cities returns every city of the tidwall/cities dataset as a planar point
// (X = longitude, Y = latitude, in degrees). Distances between these points
// are therefore equirectangular degrees, not great-circle distances.
//
// The slice is freshly allocated on every call.
func Cities() []geometry.Point {
	out := make([]geometry.Point, len(cities.Cities))
	for i, c := range cities.Cities {
		out[i] = geometry.Point{X: c.Longitude, Y: c.Latitude}
	}

	return out
}
