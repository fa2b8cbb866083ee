// Package gridgraph builds uniform 2-D grid graphs as an index-addressed arena.
//
//   - Build allocates width×height nodes in row-major order.
//   - Wire connects every cell to its in-bounds neighbors under an Adjacency rule.
//   - BuildGrid does both and returns an immutable *Graph.
//
// Nodes refer to each other by NodeID (y*width + x), never by pointer.
package gridgraph

import (
	"fmt"
)

// Build allocates width*height nodes in row-major order: y outer, x inner.
// Every node starts with an empty neighbor list.
// Returns ErrBadDimensions if width or height is not positive or if the
// cell count exceeds MaxCells.
// Complexity: O(W×H) time and memory.
func Build(width, height int) ([]Node, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	nodes := make([]Node, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			nodes = append(nodes, Node{
				ID:       NodeID(len(nodes)),
				Position: Point{X: x, Y: y},
			})
		}
	}

	return nodes, nil
}

// Wire populates the neighbor lists of nodes. For every cell it applies the
// adjacency offsets in table order, drops offsets that leave the grid, and
// records an edge for each survivor according to the wiring mode.
// A neighbor is listed at most once per node.
//
// Returns ErrBadDimensions, ErrNodeCountMismatch if len(nodes) != width*height,
// or ErrBadOffset for an invalid adjacency table.
// Complexity: O(W×H×d²) time where d is the number of offsets.
func Wire(width, height int, nodes []Node, opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := checkDimensions(width, height); err != nil {
		return err
	}
	if len(nodes) != width*height {
		return fmt.Errorf("%w: have %d nodes, want %d×%d=%d",
			ErrNodeCountMismatch, len(nodes), width, height, width*height)
	}
	if err := cfg.Adjacency.validate(); err != nil {
		return err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			src := y*width + x
			for _, d := range cfg.Adjacency.offsets {
				nx, ny := x+d.X, y+d.Y
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				dst := ny*width + nx
				switch cfg.Wiring {
				case Directed:
					link(nodes, dst, src)
				default:
					link(nodes, src, dst)
					link(nodes, dst, src)
				}
			}
		}
	}

	return nil
}

// link appends to to the neighbor list of from unless already present.
func link(nodes []Node, from, to int) {
	id := NodeID(to)
	for _, n := range nodes[from].neighbors {
		if n == id {
			return
		}
	}
	nodes[from].neighbors = append(nodes[from].neighbors, id)
}

// BuildGrid constructs and wires a width×height grid.
// Defaults: Diagonal adjacency, Symmetric wiring.
func BuildGrid(width, height int, opts ...Option) (*Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	nodes, err := Build(width, height)
	if err != nil {
		return nil, err
	}
	if err = Wire(width, height, nodes, WithAdjacency(cfg.Adjacency), WithWiring(cfg.Wiring)); err != nil {
		return nil, err
	}

	return &Graph{width: width, height: height, nodes: nodes, opts: cfg}, nil
}

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: got %d×%d", ErrBadDimensions, width, height)
	}
	if width > MaxCells/height {
		return fmt.Errorf("%w: %d×%d exceeds %d cells", ErrBadDimensions, width, height, MaxCells)
	}
	return nil
}

// Width returns the number of columns.
func (g *Graph) Width() int { return g.width }

// Height returns the number of rows.
func (g *Graph) Height() int { return g.height }

// Len returns the number of nodes in the arena.
func (g *Graph) Len() int { return len(g.nodes) }

// Adjacency returns the rule the graph was wired with.
func (g *Graph) Adjacency() Adjacency { return g.opts.Adjacency }

// Wiring returns the wiring mode the graph was built with.
func (g *Graph) Wiring() Wiring { return g.opts.Wiring }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Graph) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Contains reports whether p is a cell of the grid.
func (g *Graph) Contains(p Point) bool {
	return g.InBounds(p.X, p.Y)
}

// ID resolves a coordinate to its NodeID, or ErrOutOfBounds.
func (g *Graph) ID(p Point) (NodeID, error) {
	if !g.Contains(p) {
		return None, fmt.Errorf("%w: %v on %d×%d grid", ErrOutOfBounds, p, g.width, g.height)
	}
	return NodeID(g.index(p.X, p.Y)), nil
}

// Node returns a copy of the node behind id, or ErrDanglingRef.
func (g *Graph) Node(id NodeID) (Node, error) {
	if !g.valid(id) {
		return Node{}, g.dangling(id)
	}
	return g.nodes[id], nil
}

// Position returns the coordinate of id, or ErrDanglingRef.
func (g *Graph) Position(id NodeID) (Point, error) {
	if !g.valid(id) {
		return Point{}, g.dangling(id)
	}
	return g.nodes[id].Position, nil
}

// Neighbors returns a copy of the neighbor list of id in wiring order,
// or ErrDanglingRef.
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	if !g.valid(id) {
		return nil, g.dangling(id)
	}
	src := g.nodes[id].neighbors
	out := make([]NodeID, len(src))
	copy(out, src)
	return out, nil
}

// HasEdge reports whether b is in the neighbor list of a.
func (g *Graph) HasEdge(a, b NodeID) bool {
	if !g.valid(a) || !g.valid(b) {
		return false
	}
	for _, n := range g.nodes[a].neighbors {
		if n == b {
			return true
		}
	}
	return false
}

// Coordinate converts a row-major index back to a Point without checking bounds.
// Complexity: O(1).
func (g *Graph) Coordinate(id NodeID) Point {
	return Point{X: int(id) % g.width, Y: int(id) / g.width}
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Graph) index(x, y int) int {
	return y*g.width + x
}

func (g *Graph) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

func (g *Graph) dangling(id NodeID) error {
	return fmt.Errorf("%w: id %d not in arena of %d nodes", ErrDanglingRef, id, len(g.nodes))
}
