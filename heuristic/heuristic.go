// Package heuristic provides distance estimates between grid cells for A*.
//
// Every function here is pure, non-negative and symmetric. Admissibility
// depends on the adjacency rule the grid was wired with; ForAdjacency picks
// the tightest admissible estimate for the built-in rules.
package heuristic

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ErrUnknownHeuristic is returned by ByName for an unregistered name.
var ErrUnknownHeuristic = errors.New("heuristic: unknown heuristic")

// Func estimates the remaining cost from a to b.
type Func func(a, b gridgraph.Point) int

// EuclideanFloor returns ⌊√(dx²+dy²)⌋. It is admissible on Orthogonal grids
// only; on Diagonal and King grids it can exceed the step count, e.g.
// (0,0)→(3,3) is 3 steps but ⌊√18⌋ = 4.
func EuclideanFloor(a, b gridgraph.Point) int {
	d := floats.Distance(
		[]float64{float64(a.X), float64(a.Y)},
		[]float64{float64(b.X), float64(b.Y)},
		2,
	)
	return int(math.Floor(d))
}

// Manhattan returns |dx|+|dy|, exact on orthogonal grids.
func Manhattan(a, b gridgraph.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Chebyshev returns max(|dx|,|dy|), exact for reachable cells on diagonal
// and king grids.
func Chebyshev(a, b gridgraph.Point) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Zero always returns 0 and turns A* into uniform-cost search.
func Zero(_, _ gridgraph.Point) int {
	return 0
}

// ForAdjacency returns the tightest admissible heuristic for adj:
// Chebyshev for Diagonal and King, Manhattan for Orthogonal, Zero otherwise.
func ForAdjacency(adj gridgraph.Adjacency) Func {
	switch adj.Name() {
	case gridgraph.Diagonal.Name(), gridgraph.King.Name():
		return Chebyshev
	case gridgraph.Orthogonal.Name():
		return Manhattan
	default:
		return Zero
	}
}

var registry = map[string]Func{
	"euclidean": EuclideanFloor,
	"manhattan": Manhattan,
	"chebyshev": Chebyshev,
	"zero":      Zero,
}

// ByName resolves a configured heuristic name. The empty name maps to
// EuclideanFloor.
func ByName(name string) (Func, error) {
	if name == "" {
		return EuclideanFloor, nil
	}
	h, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
	return h, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
