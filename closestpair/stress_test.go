package closestpair_test

import (
	"os"
	"testing"

	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/closestpair"
	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/geometry"
	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/pointgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/lotsa"
)

// TestStress_ConcurrentQueries runs many independent queries on several
// goroutines and checks each against a precomputed baseline. Queries share
// no mutable state, so results must not depend on interleaving.
func TestStress_ConcurrentQueries(t *testing.T) {
	if testing.Short() {
		t.Skip("stress test skipped in -short mode")
	}

	const (
		sets    = 64
		threads = 4
		queries = 512
	)

	inputs := make([][]geometry.Point, sets)
	want := make([]float64, sets)
	for i := range inputs {
		pts, err := pointgen.Clustered(600, 1+i%7, pointgen.WithSeed(int64(i+1)))
		require.NoError(t, err)
		inputs[i] = pts

		ref, err := closestpair.BruteForce(pts)
		require.NoError(t, err)
		want[i] = ref.Distance
	}

	if testing.Verbose() {
		lotsa.Output = os.Stdout
		defer func() { lotsa.Output = nil }()
	}
	lotsa.Ops(queries, threads, func(i, _ int) {
		k := i % sets
		d, err := closestpair.Distance(inputs[k], nil)
		assert.NoError(t, err)
		assert.Equal(t, want[k], d, "set %d", k)
	})
}
