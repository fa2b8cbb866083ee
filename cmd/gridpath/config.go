package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ErrBadPoint is returned for a coordinate that is not written as "x,y".
var ErrBadPoint = errors.New("gridpath: point must be written as x,y")

// Config is the driver configuration. Every field can come from the YAML
// file given by -config and be overridden by the flag of the same name.
type Config struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Start         string `yaml:"start"`
	Goal          string `yaml:"goal"`
	Adjacency     string `yaml:"adjacency"`
	Wiring        string `yaml:"wiring"`
	Heuristic     string `yaml:"heuristic"`
	Order         string `yaml:"order"`
	MaxExpansions int    `yaml:"max_expansions"`
	LogLevel      string `yaml:"log_level"`
	Metrics       bool   `yaml:"metrics"`
}

// DefaultConfig reproduces the reference run: a 10×10 diagonal grid
// searched corner to corner with the floored Euclidean heuristic.
func DefaultConfig() Config {
	return Config{
		Width:     10,
		Height:    10,
		Start:     "0,0",
		Goal:      "9,9",
		Adjacency: gridgraph.Diagonal.Name(),
		Wiring:    gridgraph.Symmetric.String(),
		Heuristic: "euclidean",
		Order:     "start-first",
		LogLevel:  "info",
	}
}

// LoadConfig reads path over the defaults using strict parsing, so
// unknown keys are rejected. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	// an empty or comment-only file leaves the defaults untouched
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("YAML error in config %s: %w", path, err)
	}

	return cfg, nil
}

// ParsePoint parses "x,y" (spaces allowed around either number).
func ParsePoint(s string) (gridgraph.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return gridgraph.Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return gridgraph.Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	return gridgraph.Point{X: x, Y: y}, nil
}
