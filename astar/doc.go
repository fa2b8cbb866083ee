// Package astar provides A* shortest-path search over uniform-cost grid
// graphs built by package gridgraph.
//
// Overview:
//
//   - Search expands nodes in order of f = g + h, where g is the number of
//     unit steps from the start and h is a caller-supplied Heuristic.
//   - The open set is an ordered B-tree keyed by (f, insertion order), so ties
//     are resolved deterministically by first insertion.
//   - Scores live in a table owned by the search; the Graph is read-only and
//     may be shared between concurrent searches.
//   - Closed nodes are re-opened when a cheaper path to them appears, which
//     keeps results optimal under inconsistent heuristics.
//
// Entry points:
//
//   - Search:   run to completion over any Graph (NodeID based).
//   - FindPath: coordinate-based convenience over a *gridgraph.Graph.
//   - Stepper:  one expansion per call, with a Snapshot of the frontier.
//
// Options:
//
//   - WithOrder(GoalFirst):  keep the goal-to-start order of parent links.
//   - WithLegacySeeding():   seed g(start)=h, f(start)=0.
//   - WithMaxExpansions(n):  bound the work; ErrBudgetExceeded when hit.
//   - WithOnExpand/WithOnRelax: hooks for visualisation and tests.
//   - WithLogger, WithRecorder, WithTracer, WithContext: observability.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrNilHeuristic: missing input.
//   - gridgraph.ErrDanglingRef:     start, goal or a neighbor does not resolve.
//   - ErrOptionViolation:           invalid Option argument.
//   - ErrBudgetExceeded:            MaxExpansions reached.
//
// "No path" is not an error: Search returns a Result with Found == false.
//
// Example usage:
//
//	g, _ := gridgraph.BuildGrid(10, 10)
//	path, ok, err := astar.FindPath(g,
//	    gridgraph.Point{X: 0, Y: 0},
//	    gridgraph.Point{X: 9, Y: 9},
//	    heuristic.EuclideanFloor,
//	)
package astar
