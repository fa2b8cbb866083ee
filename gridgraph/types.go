// Package gridgraph defines core types and options for the grid graph arena.
package gridgraph

import (
	"fmt"
	"math"
)

// Infinity is the sentinel score of a node that has not been reached.
const Infinity = math.MaxInt

// MaxCells bounds width*height so that every NodeID fits in an int and
// score tables can be allocated up front.
const MaxCells = 1 << 30

// Point is an integer cell coordinate. It is a value type and never mutated.
type Point struct {
	X, Y int
}

// String renders p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p shifted by the offset o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// NodeID is a stable row-major index into the arena: y*width + x.
type NodeID int

// None marks the absence of a node, e.g. the parent of the start cell.
const None NodeID = -1

// Node is one grid cell. Its neighbor list is filled once by Wire and is
// read-only afterwards. Search state never lives on the node.
type Node struct {
	ID        NodeID
	Position  Point
	neighbors []NodeID
}

// Equal reports coordinate equality; identity is irrelevant.
func (n Node) Equal(other Node) bool {
	return n.Position == other.Position
}

// Degree returns the number of outgoing edges of n.
func (n Node) Degree() int {
	return len(n.neighbors)
}

// Adjacency selects the offset table used to wire neighbors.
type Adjacency struct {
	name    string
	offsets []Point
}

var (
	// Diagonal wires the four diagonal cells only.
	Diagonal = Adjacency{name: "diagonal", offsets: []Point{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}}
	// Orthogonal wires N, E, S, W.
	Orthogonal = Adjacency{name: "orthogonal", offsets: []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}}
	// King wires all eight surrounding cells.
	King = Adjacency{name: "king", offsets: []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}}
)

// Custom builds an adjacency from an arbitrary offset table.
// Validation happens in Wire, so a bad table surfaces as ErrBadOffset there.
func Custom(offsets ...Point) Adjacency {
	cp := make([]Point, len(offsets))
	copy(cp, offsets)
	return Adjacency{name: "custom", offsets: cp}
}

// Name returns the rule name: diagonal, orthogonal, king or custom.
func (a Adjacency) Name() string {
	if a.name == "" {
		return "custom"
	}
	return a.name
}

// Offsets returns a copy of the offset table.
func (a Adjacency) Offsets() []Point {
	cp := make([]Point, len(a.offsets))
	copy(cp, a.offsets)
	return cp
}

// ParseAdjacency maps a rule name to one of the built-in adjacencies.
func ParseAdjacency(name string) (Adjacency, error) {
	switch name {
	case "", Diagonal.name:
		return Diagonal, nil
	case Orthogonal.name:
		return Orthogonal, nil
	case King.name:
		return King, nil
	default:
		return Adjacency{}, fmt.Errorf("%w: adjacency %q", ErrUnknownRule, name)
	}
}

func (a Adjacency) validate() error {
	if len(a.offsets) == 0 {
		return fmt.Errorf("%w: adjacency %q has no offsets", ErrBadOffset, a.Name())
	}
	for _, o := range a.offsets {
		if o.X == 0 && o.Y == 0 {
			return fmt.Errorf("%w: adjacency %q contains (0,0)", ErrBadOffset, a.Name())
		}
	}
	return nil
}

// Wiring selects how a discovered (source, target) pair becomes edges.
type Wiring int

const (
	// Symmetric wires source→target and target→source.
	Symmetric Wiring = iota
	// Directed appends the source to the target's list only (target→source).
	Directed
)

// String returns "symmetric" or "directed".
func (w Wiring) String() string {
	if w == Directed {
		return "directed"
	}
	return "symmetric"
}

// ParseWiring maps "symmetric" or "directed" to a Wiring.
func ParseWiring(name string) (Wiring, error) {
	switch name {
	case "", "symmetric":
		return Symmetric, nil
	case "directed":
		return Directed, nil
	default:
		return Symmetric, fmt.Errorf("%w: wiring %q", ErrUnknownRule, name)
	}
}

// Options holds the wiring configuration.
type Options struct {
	Adjacency Adjacency
	Wiring    Wiring
}

// Option configures Wire and BuildGrid.
type Option func(*Options)

// DefaultOptions returns diagonal adjacency with symmetric wiring.
func DefaultOptions() Options {
	return Options{
		Adjacency: Diagonal,
		Wiring:    Symmetric,
	}
}

// WithAdjacency selects the neighbor offset table.
func WithAdjacency(a Adjacency) Option {
	return func(o *Options) {
		o.Adjacency = a
	}
}

// WithWiring selects symmetric or directed edges.
func WithWiring(w Wiring) Option {
	return func(o *Options) {
		o.Wiring = w
	}
}

// Graph is the arena that owns every Node of one grid. All references to
// nodes elsewhere are NodeIDs. A Graph is immutable once BuildGrid returns,
// so any number of searches may read it concurrently.
type Graph struct {
	width, height int
	nodes         []Node
	opts          Options
}
