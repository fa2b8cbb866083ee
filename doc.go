// Package gridpath finds shortest paths on uniform 2-D grids with A*.
//
// The module is split into small packages:
//
//	gridgraph/  - cell arena, adjacency rules (diagonal, orthogonal, king,
//	              custom), symmetric or directed wiring, connected components,
//	              export to gonum graphs
//	astar/      - A* search over any Graph with a B-tree open set, stepper,
//	              hooks, zap logging, OpenTelemetry spans
//	heuristic/  - floored Euclidean, Manhattan, Chebyshev and zero estimates
//	metrics/    - Prometheus Recorder for finished searches
//	cmd/gridpath - command-line driver with YAML config
//
// Quick start:
//
//	g, _ := gridgraph.BuildGrid(10, 10)
//	path, ok, err := astar.FindPath(g,
//	    gridgraph.Point{X: 0, Y: 0},
//	    gridgraph.Point{X: 9, Y: 9},
//	    heuristic.EuclideanFloor,
//	)
//
// Every edge costs one step. With the default diagonal rule a cell only
// reaches cells whose x+y has the same parity, so some pairs have no path;
// that is reported with ok == false, not as an error.
package gridpath
