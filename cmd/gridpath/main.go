// Command gridpath builds a grid graph and prints the A* path between two
// cells.
//
//	gridpath -width 10 -height 10 -start 0,0 -goal 9,9
//	gridpath -config run.yaml -adjacency king -heuristic chebyshev
//
// The path is written to stdout as "(0,0) -> (1,1) -> ...", or "no path".
// Logs go to stderr.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/metrics"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := DefaultConfig()
	var (
		configPath = fs.String("config", "", "path to a YAML config file")
		flagCfg    Config
	)
	fs.IntVar(&flagCfg.Width, "width", def.Width, "grid width")
	fs.IntVar(&flagCfg.Height, "height", def.Height, "grid height")
	fs.StringVar(&flagCfg.Start, "start", def.Start, "start cell as x,y")
	fs.StringVar(&flagCfg.Goal, "goal", def.Goal, "goal cell as x,y")
	fs.StringVar(&flagCfg.Adjacency, "adjacency", def.Adjacency, "diagonal, orthogonal or king")
	fs.StringVar(&flagCfg.Wiring, "wiring", def.Wiring, "symmetric or directed")
	fs.StringVar(&flagCfg.Heuristic, "heuristic", def.Heuristic, "euclidean, manhattan, chebyshev or zero")
	fs.StringVar(&flagCfg.Order, "order", def.Order, "start-first or goal-first")
	fs.IntVar(&flagCfg.MaxExpansions, "max-expansions", def.MaxExpansions, "expansion budget, 0 for none")
	fs.StringVar(&flagCfg.LogLevel, "log-level", def.LogLevel, "debug, info, warn or error")
	fs.BoolVar(&flagCfg.Metrics, "metrics", def.Metrics, "print Prometheus metrics to stderr after the search")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	overrideSetFlags(fs, &cfg, flagCfg)

	logger, err := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	reg := prometheus.NewRegistry()
	path, found, err := search(cfg, logger, metrics.New(reg))
	if err != nil {
		logger.Error("search failed", zap.Error(err))
		return 1
	}
	if found {
		fmt.Fprintln(stdout, formatPath(path))
	} else {
		fmt.Fprintln(stdout, "no path")
	}

	if cfg.Metrics {
		if err = writeMetrics(stderr, reg); err != nil {
			logger.Error("failed to write metrics", zap.Error(err))
			return 1
		}
	}
	return 0
}

// overrideSetFlags copies only the flags given on the command line over cfg.
func overrideSetFlags(fs *flag.FlagSet, cfg *Config, f Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "width":
			cfg.Width = f.Width
		case "height":
			cfg.Height = f.Height
		case "start":
			cfg.Start = f.Start
		case "goal":
			cfg.Goal = f.Goal
		case "adjacency":
			cfg.Adjacency = f.Adjacency
		case "wiring":
			cfg.Wiring = f.Wiring
		case "heuristic":
			cfg.Heuristic = f.Heuristic
		case "order":
			cfg.Order = f.Order
		case "max-expansions":
			cfg.MaxExpansions = f.MaxExpansions
		case "log-level":
			cfg.LogLevel = f.LogLevel
		case "metrics":
			cfg.Metrics = f.Metrics
		}
	})
}

// search resolves cfg into a grid, endpoints and options, and runs A*.
func search(cfg Config, logger *zap.Logger, rec astar.Recorder) ([]gridgraph.Point, bool, error) {
	adj, err := gridgraph.ParseAdjacency(cfg.Adjacency)
	if err != nil {
		return nil, false, err
	}
	wiring, err := gridgraph.ParseWiring(cfg.Wiring)
	if err != nil {
		return nil, false, err
	}
	h, err := heuristic.ByName(cfg.Heuristic)
	if err != nil {
		return nil, false, err
	}
	order, err := astar.ParseOrder(cfg.Order)
	if err != nil {
		return nil, false, err
	}
	start, err := ParsePoint(cfg.Start)
	if err != nil {
		return nil, false, fmt.Errorf("start: %w", err)
	}
	goal, err := ParsePoint(cfg.Goal)
	if err != nil {
		return nil, false, fmt.Errorf("goal: %w", err)
	}

	g, err := gridgraph.BuildGrid(cfg.Width, cfg.Height,
		gridgraph.WithAdjacency(adj),
		gridgraph.WithWiring(wiring),
	)
	if err != nil {
		return nil, false, err
	}
	logger.Info("grid built",
		zap.Int("width", g.Width()),
		zap.Int("height", g.Height()),
		zap.String("adjacency", adj.Name()),
		zap.Stringer("wiring", wiring),
	)

	path, found, err := astar.FindPath(g, start, goal, astar.Heuristic(h),
		astar.WithOrder(order),
		astar.WithMaxExpansions(cfg.MaxExpansions),
		astar.WithLogger(logger.Named("astar")),
		astar.WithRecorder(rec),
	)
	if err != nil {
		return nil, false, err
	}
	logger.Info("search finished",
		zap.Stringer("start", start),
		zap.Stringer("goal", goal),
		zap.Bool("found", found),
		zap.Int("steps", max(len(path)-1, 0)),
	)
	return path, found, nil
}

// newLogger builds a console logger on w at the named level.
func newLogger(w io.Writer, level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}

func formatPath(path []gridgraph.Point) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = p.String()
	}
	return strings.Join(parts, " -> ")
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
