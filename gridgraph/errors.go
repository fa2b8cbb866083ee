package gridgraph

import "errors"

var (
	// ErrBadDimensions indicates a non-positive width or height, or a grid
	// whose cell count does not fit in MaxCells.
	ErrBadDimensions = errors.New("gridgraph: width and height must be positive")
	// ErrNodeCountMismatch indicates that the supplied arena does not hold width*height nodes.
	ErrNodeCountMismatch = errors.New("gridgraph: node count does not match width*height")
	// ErrBadOffset indicates an adjacency offset of (0,0) or an empty custom offset table.
	ErrBadOffset = errors.New("gridgraph: adjacency offsets must be non-zero")
	// ErrUnknownRule indicates an adjacency or wiring name that is not built in.
	ErrUnknownRule = errors.New("gridgraph: unknown rule name")
	// ErrOutOfBounds indicates a coordinate outside [0,width)×[0,height).
	ErrOutOfBounds = errors.New("gridgraph: coordinate outside the grid")
	// ErrDanglingRef indicates a NodeID that does not resolve inside the arena.
	ErrDanglingRef = errors.New("gridgraph: node reference does not resolve")
)
