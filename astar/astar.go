package astar

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Search runs A* from start to goal over g using heuristic h.
//
// Returns:
//
//   - *Result with Found=true and the path when goal is reachable.
//   - *Result with Found=false and a nil error when no path exists.
//   - an error for invalid input (ErrNilGraph, ErrNilHeuristic,
//     gridgraph.ErrDanglingRef, ErrOptionViolation), an exhausted budget
//     (ErrBudgetExceeded), a context error, or a failing Graph.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. h must be non-nil (ErrNilHeuristic).
//  3. start and goal must resolve in g (gridgraph.ErrDanglingRef).
//  4. options must be valid (ErrOptionViolation).
//
// Complexity:
//
//   - Time:  O(E log V) with E ≤ d·V, d = neighbors per cell.
//   - Space: O(V) for the score table and the open set.
func Search(g Graph, start, goal gridgraph.NodeID, h Heuristic, opts ...Option) (*Result, error) {
	r, err := newRunner(g, start, goal, h, opts...)
	if err != nil {
		return nil, err
	}
	for !r.done {
		if err = r.step(); err != nil {
			return nil, err
		}
	}
	return r.result(), nil
}

// FindPath resolves coordinates on g and returns the path between them.
// The boolean is false when no path exists. A nil h defaults to
// heuristic.EuclideanFloor. Off-grid coordinates yield gridgraph.ErrOutOfBounds.
func FindPath(g *gridgraph.Graph, start, goal gridgraph.Point, h Heuristic, opts ...Option) ([]gridgraph.Point, bool, error) {
	if g == nil {
		return nil, false, ErrNilGraph
	}
	if h == nil {
		h = heuristic.EuclideanFloor
	}
	s, err := g.ID(start)
	if err != nil {
		return nil, false, fmt.Errorf("astar: start: %w", err)
	}
	t, err := g.ID(goal)
	if err != nil {
		return nil, false, fmt.Errorf("astar: goal: %w", err)
	}
	res, err := Search(g, s, t, h, opts...)
	if err != nil {
		return nil, false, err
	}
	return res.Path, res.Found, nil
}

// nodeState tracks where a node is in the unvisited → open → closed cycle.
type nodeState uint8

const (
	unvisited nodeState = iota
	open
	closed
)

// score is one row of the per-search score table.
type score struct {
	g, f   int
	parent gridgraph.NodeID
	state  nodeState
	seq    uint64
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	graph   Graph
	h       Heuristic
	options Options

	start, goal gridgraph.NodeID
	goalPos     gridgraph.Point

	scores []score
	open   *openSet
	seq    uint64

	expanded int
	reopened int
	current  gridgraph.NodeID
	path     []gridgraph.NodeID
	done      bool
	found     bool
	abandoned bool

	began time.Time
	span  trace.Span
}

// newRunner validates the input and seeds the open set with start.
func newRunner(g Graph, start, goal gridgraph.NodeID, h Heuristic, opts ...Option) (*runner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	startPos, err := position(g, start)
	if err != nil {
		return nil, fmt.Errorf("astar: start: %w", err)
	}
	goalPos, err := position(g, goal)
	if err != nil {
		return nil, fmt.Errorf("astar: goal: %w", err)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	r := &runner{
		graph:   g,
		h:       h,
		options: cfg,
		start:   start,
		goal:    goal,
		goalPos: goalPos,
		scores:  make([]score, g.Len()),
		open:    newOpenSet(),
		current: gridgraph.None,
		began:   time.Now(),
	}
	r.init(startPos)
	r.trace(startPos)
	cfg.Logger.Debug("astar search started",
		zap.Stringer("start", startPos),
		zap.Stringer("goal", goalPos),
		zap.Int("nodes", g.Len()),
	)

	return r, nil
}

// init resets the score table and pushes start onto the open set.
func (r *runner) init(startPos gridgraph.Point) {
	for i := range r.scores {
		r.scores[i] = score{g: gridgraph.Infinity, f: gridgraph.Infinity, parent: gridgraph.None}
	}

	h0 := r.h(startPos, r.goalPos)
	s := &r.scores[r.start]
	if r.options.LegacySeeding {
		s.g, s.f = h0, 0
	} else {
		s.g, s.f = 0, h0
	}
	r.push(r.start)
}

func (r *runner) push(id gridgraph.NodeID) {
	r.seq++
	s := &r.scores[id]
	s.seq = r.seq
	s.state = open
	r.open.push(id, s.f, s.seq)
}

// step expands one node. It sets done when the goal is reached or the open
// set is exhausted.
func (r *runner) step() error {
	if r.done {
		return nil
	}
	if err := r.options.Ctx.Err(); err != nil {
		return r.fail(err)
	}
	// an exhausted frontier is a finished search, even on the last allowed expansion
	if r.open.len() == 0 {
		r.finish(nil)
		return nil
	}
	if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
		return r.fail(fmt.Errorf("%w: %d expansions", ErrBudgetExceeded, r.expanded))
	}

	item, _ := r.open.pop()
	cur := item.id
	r.current = cur
	r.expanded++
	cs := &r.scores[cur]
	cs.state = closed

	pos, err := position(r.graph, cur)
	if err != nil {
		return r.fail(err)
	}
	r.options.OnExpand(pos, cs.g)

	if pos == r.goalPos {
		r.found = true
		r.path = r.reconstruct(cur)
		r.finish(nil)
		return nil
	}

	if err = r.relax(cur, pos); err != nil {
		return r.fail(err)
	}
	return nil
}

// relax examines each neighbor of cur and records any strictly cheaper path.
func (r *runner) relax(cur gridgraph.NodeID, curPos gridgraph.Point) error {
	neighbors, err := r.graph.Neighbors(cur)
	if err != nil {
		return fmt.Errorf("astar: failed to get neighbors of %v: %w", curPos, err)
	}

	tentative := r.scores[cur].g + 1
	for _, v := range neighbors {
		if v < 0 || int(v) >= len(r.scores) {
			return fmt.Errorf("astar: neighbor of %v: %w: id %d", curPos, gridgraph.ErrDanglingRef, v)
		}
		vs := &r.scores[v]
		if tentative >= vs.g {
			continue
		}
		vPos, err := position(r.graph, v)
		if err != nil {
			return err
		}

		vs.parent = cur
		vs.g = tentative
		f := tentative + r.h(vPos, r.goalPos)
		switch vs.state {
		case open:
			r.open.update(v, vs.f, f, vs.seq)
			vs.f = f
		case closed:
			r.reopened++
			vs.f = f
			r.push(v)
		default:
			vs.f = f
			r.push(v)
		}
		r.options.OnRelax(curPos, vPos, tentative)
	}

	return nil
}

// reconstruct walks parent links from id until a node without a parent,
// yielding goal-first order.
func (r *runner) reconstruct(id gridgraph.NodeID) []gridgraph.NodeID {
	path := []gridgraph.NodeID{id}
	for r.scores[id].parent != gridgraph.None {
		id = r.scores[id].parent
		path = append(path, id)
	}
	return path
}

func (r *runner) result() *Result {
	res := &Result{
		Expanded: r.expanded,
		Reopened: r.reopened,
		Found:    r.found,
	}
	if !r.found {
		return res
	}

	ids := make([]gridgraph.NodeID, len(r.path))
	copy(ids, r.path)
	if r.options.Order == StartFirst {
		for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
			ids[i], ids[j] = ids[j], ids[i]
		}
	}
	res.IDs = ids
	res.Path = make([]gridgraph.Point, len(ids))
	for i, id := range ids {
		// every id on the path was resolved during the search
		p, _ := r.graph.Position(id)
		res.Path[i] = p
	}
	res.Cost = len(ids) - 1
	return res
}

// fail ends the search with err and returns it.
func (r *runner) fail(err error) error {
	r.finish(err)
	return err
}

// finish marks the runner done and reports to the logger, recorder and span.
func (r *runner) finish(err error) {
	r.done = true
	steps := 0
	if r.found {
		steps = len(r.path) - 1
	}
	elapsed := time.Since(r.began)

	log := r.options.Logger.With(
		zap.Int("expanded", r.expanded),
		zap.Int("reopened", r.reopened),
		zap.Duration("elapsed", elapsed),
	)
	switch {
	case r.abandoned:
		log.Debug("astar search abandoned")
	case err != nil:
		log.Debug("astar search failed", zap.Error(err))
	case r.found:
		log.Debug("astar path found", zap.Int("steps", steps))
	default:
		log.Debug("astar no path")
	}

	if r.options.Recorder != nil && !r.abandoned {
		r.options.Recorder.ObserveSearch(SearchStats{
			Found:    r.found,
			Err:      err,
			Expanded: r.expanded,
			Reopened: r.reopened,
			Steps:    steps,
			Duration: elapsed,
		})
	}

	if r.span != nil {
		r.span.SetAttributes(
			attribute.Int("astar.expanded", r.expanded),
			attribute.Int("astar.reopened", r.reopened),
			attribute.Bool("astar.found", r.found),
			attribute.Int("astar.steps", steps),
		)
		if err != nil {
			r.span.RecordError(err)
			r.span.SetStatus(codes.Error, err.Error())
		} else {
			r.span.SetStatus(codes.Ok, "")
		}
		r.span.End()
		r.span = nil
	}
}

// trace opens the search span when a tracer is configured.
func (r *runner) trace(startPos gridgraph.Point) {
	if r.options.Tracer == nil {
		return
	}
	var ctx context.Context
	ctx, r.span = r.options.Tracer.Start(r.options.Ctx, "astar.search",
		trace.WithAttributes(
			attribute.String("astar.start", startPos.String()),
			attribute.String("astar.goal", r.goalPos.String()),
			attribute.Int("astar.nodes", len(r.scores)),
		),
	)
	r.options.Ctx = ctx
}

// position resolves id through g, rejecting ids outside [0, Len()).
func position(g Graph, id gridgraph.NodeID) (gridgraph.Point, error) {
	if id < 0 || int(id) >= g.Len() {
		return gridgraph.Point{}, fmt.Errorf("%w: id %d not in arena of %d nodes", gridgraph.ErrDanglingRef, id, g.Len())
	}
	return g.Position(id)
}
