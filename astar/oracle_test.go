package astar_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
)

// TestAgainstDijkstraOracle compares A* path lengths with gonum's Dijkstra
// over the same wiring, for heuristics that never overestimate on each rule.
func TestAgainstDijkstraOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	cases := []struct {
		name string
		adj  gridgraph.Adjacency
		wire gridgraph.Wiring
		hs   map[string]astar.Heuristic
	}{
		{"diagonal", gridgraph.Diagonal, gridgraph.Symmetric, map[string]astar.Heuristic{
			"chebyshev": heuristic.Chebyshev, "zero": heuristic.Zero,
		}},
		{"orthogonal", gridgraph.Orthogonal, gridgraph.Symmetric, map[string]astar.Heuristic{
			"euclidean": heuristic.EuclideanFloor, "manhattan": heuristic.Manhattan,
		}},
		{"king", gridgraph.King, gridgraph.Symmetric, map[string]astar.Heuristic{
			"chebyshev": heuristic.Chebyshev, "zero": heuristic.Zero,
		}},
		{"directed-knight", gridgraph.Custom(pt(1, 2), pt(2, -1)), gridgraph.Directed, map[string]astar.Heuristic{
			"zero": heuristic.Zero,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridgraph.BuildGrid(11, 8,
				gridgraph.WithAdjacency(tc.adj), gridgraph.WithWiring(tc.wire))
			require.NoError(t, err)
			dg := g.ToGonum()

			for i := 0; i < 40; i++ {
				start := gridgraph.NodeID(rng.Intn(g.Len()))
				goal := gridgraph.NodeID(rng.Intn(g.Len()))
				shortest := path.DijkstraFrom(simple.Node(start), dg)
				want := shortest.WeightTo(int64(goal))

				for name, h := range tc.hs {
					res, err := astar.Search(g, start, goal, h)
					require.NoError(t, err, name)
					if math.IsInf(want, 1) {
						assert.False(t, res.Found, "%s %v→%v", name, g.Coordinate(start), g.Coordinate(goal))
						continue
					}
					require.True(t, res.Found, "%s %v→%v", name, g.Coordinate(start), g.Coordinate(goal))
					assert.Equal(t, int(want), res.Steps(), "%s %v→%v", name, g.Coordinate(start), g.Coordinate(goal))
					assertWired(t, g, res.IDs)
				}
			}
		})
	}
}

// assertWired checks that consecutive path entries are edges from the
// earlier node to the later one.
func assertWired(t *testing.T, g *gridgraph.Graph, ids []gridgraph.NodeID) {
	t.Helper()
	for i := 1; i < len(ids); i++ {
		assert.True(t, g.HasEdge(ids[i-1], ids[i]), "%v→%v is not an edge",
			g.Coordinate(ids[i-1]), g.Coordinate(ids[i]))
	}
}
