package astar

import (
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Snapshot exposes the state of the search after one expansion.
type Snapshot struct {
	Current   gridgraph.Point
	Open      []gridgraph.Point
	Closed    int
	Done      bool
	Found     bool
	Path      []gridgraph.Point
	StepIndex int
}

// Stepper drives a search one expansion at a time, for visualisers and
// debugging. It runs the same engine as Search.
type Stepper struct {
	r *runner
}

// NewStepper validates the input like Search and seeds the open set.
func NewStepper(g Graph, start, goal gridgraph.NodeID, h Heuristic, opts ...Option) (*Stepper, error) {
	r, err := newRunner(g, start, goal, h, opts...)
	if err != nil {
		return nil, err
	}
	return &Stepper{r: r}, nil
}

// Step expands the next node and returns a snapshot. Once the search is
// done every further call returns the final snapshot again.
func (s *Stepper) Step() (Snapshot, error) {
	if s.r.done {
		return s.snapshot(), nil
	}
	if err := s.r.step(); err != nil {
		return Snapshot{Done: true, StepIndex: s.r.expanded}, err
	}
	return s.snapshot(), nil
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool {
	return s.r.done
}

// Result returns the outcome once Done, or nil while the search is running.
func (s *Stepper) Result() *Result {
	if !s.r.done {
		return nil
	}
	return s.r.result()
}

// Close abandons a running search and ends its span. An abandoned search
// is not reported to the Recorder.
func (s *Stepper) Close() {
	if !s.r.done {
		s.r.abandoned = true
		s.r.finish(nil)
	}
}

func (s *Stepper) snapshot() Snapshot {
	r := s.r
	snap := Snapshot{
		Done:      r.done,
		Found:     r.found,
		StepIndex: r.expanded,
	}
	if r.current != gridgraph.None {
		snap.Current, _ = r.graph.Position(r.current)
	}
	for _, id := range r.open.ids() {
		p, _ := r.graph.Position(id)
		snap.Open = append(snap.Open, p)
	}
	for i := range r.scores {
		if r.scores[i].state == closed {
			snap.Closed++
		}
	}
	if r.found {
		snap.Path = r.result().Path
	}
	return snap
}
