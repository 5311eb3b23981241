// Package config loads circuit settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/circuit/astar"
	"github.com/katalvlaran/circuit/circuit"
	"github.com/katalvlaran/circuit/gridgraph"
	"github.com/katalvlaran/circuit/internal/logging"
	"github.com/katalvlaran/circuit/pqueue"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the on-disk configuration. Zero Cols/Rows mean "size to the
// terminal"; a nil MaxCost means the automatic (cols+rows)*2 ceiling.
type Config struct {
	InitialLines    int      `yaml:"initialLines"`
	LinesPerSecond  float64  `yaml:"linesPerSecond"`
	MaxAttempts     int      `yaml:"maxAttempts"`
	Margin          int      `yaml:"margin"`
	RevealPerSecond float64  `yaml:"revealPerSecond"`
	Cols            int      `yaml:"cols"`
	Rows            int      `yaml:"rows"`
	MaxCost         *float64 `yaml:"maxCost"`
	Cutoff          string   `yaml:"cutoff"`
	Heuristic       string   `yaml:"heuristic"`
	TieBreak        string   `yaml:"tieBreak"`
	Seed            int64    `yaml:"seed"`
	LogLevel        string   `yaml:"logLevel"`
	LogFile         string   `yaml:"logFile"`
	MetricsAddr     string   `yaml:"metricsAddr"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		InitialLines:    10,
		LinesPerSecond:  5,
		MaxAttempts:     10,
		Margin:          5,
		RevealPerSecond: 40,
		Cutoff:          "abort",
		Heuristic:       "euclidean",
		TieBreak:        "fifo",
		LogLevel:        "info",
	}
}

// Load reads path over Default. An empty path returns Default unchanged;
// a missing file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks ranges and enum values.
func (c Config) Validate() error {
	switch {
	case c.InitialLines < 0:
		return fmt.Errorf("%w: initialLines must be non-negative", ErrInvalid)
	case c.LinesPerSecond <= 0 || math.IsNaN(c.LinesPerSecond):
		return fmt.Errorf("%w: linesPerSecond must be positive", ErrInvalid)
	case c.MaxAttempts < 0:
		return fmt.Errorf("%w: maxAttempts must be non-negative", ErrInvalid)
	case c.Margin < 0:
		return fmt.Errorf("%w: margin must be non-negative", ErrInvalid)
	case c.RevealPerSecond <= 0 || math.IsNaN(c.RevealPerSecond):
		return fmt.Errorf("%w: revealPerSecond must be positive", ErrInvalid)
	case c.Cols < 0 || c.Rows < 0:
		return fmt.Errorf("%w: cols and rows must be non-negative", ErrInvalid)
	case c.MaxCost != nil && (*c.MaxCost < 0 || math.IsNaN(*c.MaxCost)):
		return fmt.Errorf("%w: maxCost must be a non-negative number", ErrInvalid)
	}
	if _, err := astar.ParseCutoffMode(c.Cutoff); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := ParseHeuristic(c.Heuristic); err != nil {
		return err
	}
	if _, err := ParseTieBreak(c.TieBreak); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// ParseHeuristic maps "euclidean" (or empty), "octile" and "zero" to a
// heuristic factory.
func ParseHeuristic(s string) (func(goal gridgraph.Cell) gridgraph.Heuristic, error) {
	switch strings.ToLower(s) {
	case "", "euclidean":
		return gridgraph.Euclidean, nil
	case "octile":
		return gridgraph.Octile, nil
	case "zero", "dijkstra":
		return gridgraph.Zero, nil
	default:
		return nil, fmt.Errorf("%w: unknown heuristic %q", ErrInvalid, s)
	}
}

// ParseTieBreak maps "fifo" (or empty) and "lifo" to a pqueue.TieBreak.
func ParseTieBreak(s string) (pqueue.TieBreak, error) {
	switch strings.ToLower(s) {
	case "", "fifo":
		return pqueue.TieFIFO, nil
	case "lifo":
		return pqueue.TieLIFO, nil
	default:
		return pqueue.TieFIFO, fmt.Errorf("%w: unknown tieBreak %q", ErrInvalid, s)
	}
}

// SessionOptions translates c into circuit options. c must be valid.
func (c Config) SessionOptions() []circuit.Option {
	cutoff, _ := astar.ParseCutoffMode(c.Cutoff)
	h, _ := ParseHeuristic(c.Heuristic)
	tb, _ := ParseTieBreak(c.TieBreak)

	opts := []circuit.Option{
		circuit.WithMaxAttempts(c.MaxAttempts),
		circuit.WithMargin(c.Margin),
		circuit.WithCutoff(cutoff),
		circuit.WithHeuristic(h),
		circuit.WithTieBreak(tb),
		circuit.WithSeed(c.Seed),
	}
	if c.MaxCost != nil {
		opts = append(opts, circuit.WithMaxCost(*c.MaxCost))
	}
	return opts
}
