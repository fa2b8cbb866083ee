package astar_test

import (
	"github.com/katalvlaran/gridpath/gridgraph"
)

// fakeGraph is a hand-wired adjacency list standing in for a grid. Node i
// sits at Point{X: i}. It lets tests build topologies the grid rules cannot.
type fakeGraph struct {
	adj [][]gridgraph.NodeID
}

func (f *fakeGraph) Len() int { return len(f.adj) }

func (f *fakeGraph) Position(id gridgraph.NodeID) (gridgraph.Point, error) {
	if id < 0 || int(id) >= len(f.adj) {
		return gridgraph.Point{}, gridgraph.ErrDanglingRef
	}
	return gridgraph.Point{X: int(id)}, nil
}

func (f *fakeGraph) Neighbors(id gridgraph.NodeID) ([]gridgraph.NodeID, error) {
	if id < 0 || int(id) >= len(f.adj) {
		return nil, gridgraph.ErrDanglingRef
	}
	return f.adj[id], nil
}

// tableHeuristic returns h[a.X] regardless of b, for fakeGraph nodes.
func tableHeuristic(h map[int]int) func(a, b gridgraph.Point) int {
	return func(a, _ gridgraph.Point) int { return h[a.X] }
}

func zeroH(_, _ gridgraph.Point) int { return 0 }

func pt(x, y int) gridgraph.Point { return gridgraph.Point{X: x, Y: y} }

func ids(vs ...int) []gridgraph.NodeID {
	out := make([]gridgraph.NodeID, len(vs))
	for i, v := range vs {
		out[i] = gridgraph.NodeID(v)
	}
	return out
}
