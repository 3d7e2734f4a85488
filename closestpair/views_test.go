package closestpair_test

import (
	"slices"
	"testing"

	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/closestpair"
	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/geometry"
	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/pointgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewViews_Sorted verifies both views are sorted, hold the same
// multiset as the input, and leave the input untouched.
func TestNewViews_Sorted(t *testing.T) {
	pts, err := pointgen.Uniform(300, pointgen.WithSeed(21))
	require.NoError(t, err)
	orig := slices.Clone(pts)

	byX, byY := closestpair.ExportedNewViews(pts)

	assert.Equal(t, orig, pts, "input must not be reordered")
	assert.ElementsMatch(t, pts, byX)
	assert.ElementsMatch(t, pts, byY)
	assert.True(t, slices.IsSortedFunc(byX, func(a, b geometry.Point) int { return cmpFloat(a.X, b.X) }))
	assert.True(t, slices.IsSortedFunc(byY, func(a, b geometry.Point) int { return cmpFloat(a.Y, b.Y) }))
}

// TestSplitByX_KeepsOrderAndTiesGoLeft checks the linear filter keeps the
// y-order and sends points on the partition line to the left half.
func TestSplitByX_KeepsOrderAndTiesGoLeft(t *testing.T) {
	byY := []geometry.Point{
		{X: 5, Y: 0},
		{X: 1, Y: 1},
		{X: 3, Y: 2},
		{X: 3, Y: 3},
		{X: 4, Y: 4},
		{X: 2, Y: 5},
	}

	left, right := closestpair.ExportedSplitByX(byY, 3)

	assert.Equal(t, []geometry.Point{{X: 1, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 5}}, left)
	assert.Equal(t, []geometry.Point{{X: 5, Y: 0}, {X: 4, Y: 4}}, right)
}

// TestBuildStrip_StrictBound ensures points exactly d away from the line are
// excluded and the y-order of the input is inherited.
func TestBuildStrip_StrictBound(t *testing.T) {
	byY := []geometry.Point{
		{X: 0, Y: 0},   // |0-2| = 2, excluded (not < 2)
		{X: 1.5, Y: 1}, // inside
		{X: 3.9, Y: 2}, // inside
		{X: 4, Y: 3},   // |4-2| = 2, excluded
		{X: 2, Y: 4},   // on the line
	}

	strip := closestpair.ExportedBuildStrip(nil, byY, 2, 2)

	assert.Equal(t, []geometry.Point{{X: 1.5, Y: 1}, {X: 3.9, Y: 2}, {X: 2, Y: 4}}, strip)
}

// TestBuildStrip_ReusesBuffer checks appending into a caller buffer.
func TestBuildStrip_ReusesBuffer(t *testing.T) {
	buf := make([]geometry.Point, 0, 4)
	byY := []geometry.Point{{X: 0, Y: 0}, {X: 0.5, Y: 1}}

	strip := closestpair.ExportedBuildStrip(buf, byY, 0, 1)

	require.Len(t, strip, 2)
	assert.Equal(t, 4, cap(strip), "no reallocation when capacity suffices")
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
