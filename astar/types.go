// Package astar defines core types and configuration options for A* search
// over grid graphs.
package astar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGraph indicates that a nil Graph was passed to Search.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilHeuristic indicates that a nil Heuristic was passed to Search.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrBudgetExceeded indicates that MaxExpansions was reached before the
	// search finished.
	ErrBudgetExceeded = errors.New("astar: expansion budget exceeded")
)

// Graph is the read-only view of an arena the engine searches.
// *gridgraph.Graph implements it; tests substitute doubles.
type Graph interface {
	// Len returns the arena size. Valid NodeIDs are [0, Len()).
	Len() int
	// Position returns the coordinate of id or gridgraph.ErrDanglingRef.
	Position(id gridgraph.NodeID) (gridgraph.Point, error)
	// Neighbors returns the outgoing edges of id in wiring order.
	Neighbors(id gridgraph.NodeID) ([]gridgraph.NodeID, error)
}

// Heuristic estimates the remaining cost from a to b. It must be pure and
// non-negative; admissibility is the caller's responsibility.
type Heuristic func(a, b gridgraph.Point) int

// Order selects the direction of the returned path.
type Order int

const (
	// StartFirst returns start, ..., goal.
	StartFirst Order = iota
	// GoalFirst returns goal, ..., start, the order parent links are walked in.
	GoalFirst
)

// String returns "start-first" or "goal-first".
func (o Order) String() string {
	if o == GoalFirst {
		return "goal-first"
	}
	return "start-first"
}

// ParseOrder maps "start-first" or "goal-first" to an Order.
func ParseOrder(name string) (Order, error) {
	switch name {
	case "", "start-first":
		return StartFirst, nil
	case "goal-first":
		return GoalFirst, nil
	default:
		return StartFirst, fmt.Errorf("%w: unknown order %q", ErrOptionViolation, name)
	}
}

// SearchStats summarises one finished search for a Recorder.
type SearchStats struct {
	Found    bool
	Err      error
	Expanded int
	Reopened int
	Steps    int
	Duration time.Duration
}

// Recorder receives one SearchStats per finished search.
// metrics.Collector implements it.
type Recorder interface {
	ObserveSearch(stats SearchStats)
}

// Options configures one search.
//
// Order         – direction of Result.Path. Default StartFirst.
// LegacySeeding – seed g(start)=h(start,goal), f(start)=0 instead of g=0, f=h.
// MaxExpansions – stop with ErrBudgetExceeded after this many expansions; 0 = no limit.
type Options struct {
	Ctx           context.Context
	Order         Order
	LegacySeeding bool
	MaxExpansions int

	// OnExpand is called when a node leaves the open set, with its g score.
	OnExpand func(p gridgraph.Point, g int)
	// OnRelax is called after a neighbor's score improved.
	OnRelax func(from, to gridgraph.Point, g int)

	Logger   *zap.Logger
	Recorder Recorder
	Tracer   trace.Tracer

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns the settings used when no Option is given:
// background context, StartFirst order, standard seeding, no budget,
// no-op hooks and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Order:    StartFirst,
		OnExpand: func(gridgraph.Point, int) {},
		OnRelax:  func(_, _ gridgraph.Point, _ int) {},
		Logger:   zap.NewNop(),
	}
}

// WithContext sets the context used for cancellation and span parenting.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOrder selects the direction of Result.Path.
func WithOrder(order Order) Option {
	return func(o *Options) {
		switch order {
		case StartFirst, GoalFirst:
			o.Order = order
		default:
			o.err = fmt.Errorf("%w: unknown order %d", ErrOptionViolation, order)
		}
	}
}

// WithLegacySeeding seeds the start node with g=h(start,goal) and f=0.
// Paths are unchanged; only the scores reported to hooks shift by h(start,goal).
func WithLegacySeeding() Option {
	return func(o *Options) {
		o.LegacySeeding = true
	}
}

// WithMaxExpansions bounds the number of nodes taken off the open set.
//
//	n > 0: limit to n expansions
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run for every expanded node.
func WithOnExpand(fn func(p gridgraph.Point, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnRelax registers a callback run for every improved neighbor.
func WithOnRelax(fn func(from, to gridgraph.Point, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithLogger routes debug logs of the search to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder reports per-search statistics to r.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		o.Recorder = r
	}
}

// WithTracer wraps each search in an "astar.search" span.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		o.Tracer = t
	}
}

// Result holds the outcome of a search.
//   - Path:     cells of the path in the configured Order; nil when not Found.
//   - IDs:      the same path as NodeIDs.
//   - Cost:     number of unit steps on the path.
//   - Expanded: nodes taken off the open set, goal included.
//   - Reopened: closed nodes re-inserted after a cheaper path was found.
type Result struct {
	Path     []gridgraph.Point
	IDs      []gridgraph.NodeID
	Cost     int
	Expanded int
	Reopened int
	Found    bool
}

// Steps returns the number of moves on the path, 0 when not Found.
func (r *Result) Steps() int {
	if r == nil || len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}
