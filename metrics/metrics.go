// Package metrics exports A* search statistics to Prometheus.
//
// Metrics exposed (namespace "gridpath"):
//
//   - searches_total{outcome}: finished searches; outcome is found, not_found
//     or error.
//   - expanded_nodes: nodes taken off the open set per search.
//   - path_steps: edges on the returned path, successful searches only.
//   - search_duration_seconds: wall time from validation to finish.
//
// Usage:
//
//	reg := prometheus.NewRegistry()
//	c := metrics.New(reg)
//	res, err := astar.Search(g, s, t, h, astar.WithRecorder(c))
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/gridpath/astar"
)

const namespace = "gridpath"

// Outcome label values for searches_total.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Collector implements astar.Recorder on top of Prometheus collectors.
// It is safe for concurrent use.
type Collector struct {
	searches *prometheus.CounterVec
	expanded prometheus.Histogram
	steps    prometheus.Histogram
	duration prometheus.Histogram
}

var _ astar.Recorder = (*Collector)(nil)

// New creates the collectors and registers them with reg. A nil reg means
// prometheus.DefaultRegisterer. Registering twice on one registry panics,
// as promauto does.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Finished A* searches by outcome",
		}, []string{"outcome"}),
		expanded: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "expanded_nodes",
			Help:      "Nodes expanded per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1 .. 262144
		}),
		steps: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_steps",
			Help:      "Edges on the path returned by successful searches",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of A* searches in seconds",
			Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1, 10},
		}),
	}
}

// ObserveSearch records one finished search.
func (c *Collector) ObserveSearch(s astar.SearchStats) {
	c.searches.WithLabelValues(outcome(s)).Inc()
	c.expanded.Observe(float64(s.Expanded))
	c.duration.Observe(s.Duration.Seconds())
	if s.Found {
		c.steps.Observe(float64(s.Steps))
	}
}

func outcome(s astar.SearchStats) string {
	switch {
	case s.Err != nil:
		return OutcomeError
	case s.Found:
		return OutcomeFound
	default:
		return OutcomeNotFound
	}
}
