// Package gridgraph treats a rectangular grid of cells as a graph for
// shortest-path search.
//
// What:
//
//   - Build allocates the arena: one Node per cell, row-major, NodeID = y*W + x.
//   - Wire connects each cell to its in-bounds neighbors under an Adjacency
//     rule (Diagonal by default, Orthogonal, King or Custom offsets).
//   - BuildGrid does both and returns an immutable *Graph.
//
// Why an arena:
//
//   - Neighbor lists and parent chains are cyclic. Storing NodeIDs instead of
//     pointers keeps lookups O(1) and ownership in one place.
//   - Search scores live outside the graph (see package astar), so one Graph
//     serves any number of concurrent searches.
//
// Wiring:
//
//   - Symmetric (default): every discovered pair is wired both ways.
//   - Directed: only the target cell learns about the source (target→source).
//
// Complexity:
//
//   - Build:               O(W×H) time and memory.
//   - Wire:                O(W×H×d²), d = offsets per cell (duplicate suppression).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//   - ToGonum:             O(W×H×d).
//
// Errors:
//
//   - ErrBadDimensions:     width or height ≤ 0, or too many cells.
//   - ErrNodeCountMismatch: arena length differs from width×height.
//   - ErrBadOffset:         empty offset table or a (0,0) offset.
//   - ErrUnknownRule:       ParseAdjacency/ParseWiring given an unknown name.
//   - ErrOutOfBounds:       coordinate lookup outside the grid.
//   - ErrDanglingRef:       NodeID that does not resolve in the arena.
package gridgraph
