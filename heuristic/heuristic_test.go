package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
)

func pt(x, y int) gridgraph.Point { return gridgraph.Point{X: x, Y: y} }

// TestDistances checks each heuristic on a few hand-computed pairs.
func TestDistances(t *testing.T) {
	cases := []struct {
		name                        string
		a, b                        gridgraph.Point
		euclid, manhattan, chebyshev int
	}{
		{"Same", pt(2, 2), pt(2, 2), 0, 0, 0},
		{"Diagonal", pt(0, 0), pt(9, 9), 12, 18, 9},
		{"PythagoreanTriple", pt(0, 0), pt(3, 4), 5, 7, 4},
		{"Unit", pt(1, 1), pt(2, 2), 1, 2, 1},
		{"Negative", pt(-2, 5), pt(1, 1), 5, 7, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.euclid, heuristic.EuclideanFloor(tc.a, tc.b))
			assert.Equal(t, tc.manhattan, heuristic.Manhattan(tc.a, tc.b))
			assert.Equal(t, tc.chebyshev, heuristic.Chebyshev(tc.a, tc.b))
			assert.Zero(t, heuristic.Zero(tc.a, tc.b))

			// symmetric
			assert.Equal(t, heuristic.EuclideanFloor(tc.a, tc.b), heuristic.EuclideanFloor(tc.b, tc.a))
			assert.Equal(t, heuristic.Chebyshev(tc.a, tc.b), heuristic.Chebyshev(tc.b, tc.a))
		})
	}
}

// TestForAdjacency checks the adjacency-to-heuristic mapping.
func TestForAdjacency(t *testing.T) {
	a, b := pt(0, 0), pt(3, 5)
	assert.Equal(t, 5, heuristic.ForAdjacency(gridgraph.Diagonal)(a, b))
	assert.Equal(t, 5, heuristic.ForAdjacency(gridgraph.King)(a, b))
	assert.Equal(t, 8, heuristic.ForAdjacency(gridgraph.Orthogonal)(a, b))
	assert.Equal(t, 0, heuristic.ForAdjacency(gridgraph.Custom(pt(2, 1)))(a, b))
}

// TestByName resolves every registered name and rejects unknown ones.
func TestByName(t *testing.T) {
	for name, want := range map[string]int{"": 12, "euclidean": 12, "manhattan": 18, "chebyshev": 9, "zero": 0} {
		h, err := heuristic.ByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, h(pt(0, 0), pt(9, 9)), name)
	}
	_, err := heuristic.ByName("octile")
	assert.ErrorIs(t, err, heuristic.ErrUnknownHeuristic)
}

// TestEuclideanFloorAdmissibility: the floored Euclidean never exceeds the
// orthogonal step count but does exceed the diagonal one.
func TestEuclideanFloorAdmissibility(t *testing.T) {
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			b := pt(x, y)
			assert.LessOrEqual(t, heuristic.EuclideanFloor(pt(0, 0), b), heuristic.Manhattan(pt(0, 0), b), "%v", b)
		}
	}
	assert.Equal(t, 4, heuristic.EuclideanFloor(pt(0, 0), pt(3, 3)))
	assert.Greater(t, heuristic.EuclideanFloor(pt(0, 0), pt(3, 3)), heuristic.Chebyshev(pt(0, 0), pt(3, 3)))
}
