package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/circuit/internal/config"
	"github.com/katalvlaran/circuit/internal/logging"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "circuit",
		Short: "Circuit draws random non-overlapping paths on a grid",
		Long: `Circuit grows a board of non-overlapping 8-direction paths, each found
by A* between two random free cells, and renders them in the terminal.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML configuration file")
	pf.Int64("seed", 0, "Random seed (0 uses the built-in default)")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("log-file", "", "Write logs to this file instead of stderr")
	pf.Int("cols", 0, "Grid columns (0 sizes to the terminal)")
	pf.Int("rows", 0, "Grid rows (0 sizes to the terminal)")
	pf.Int("max-attempts", 0, "Attempts per path (0 means unbounded)")
	pf.Float64("max-cost", 0, "Search cost ceiling (0 disables)")
	pf.String("cutoff", "", "Cost ceiling mode: abort or prune")
	pf.String("heuristic", "", "Heuristic: euclidean, octile or zero")

	root.AddCommand(newRunCmd(), newPlanCmd(), newVersionCmd())
	return root
}

// loadConfig reads --config and applies explicitly set flags over it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("cols") {
		cfg.Cols, _ = flags.GetInt("cols")
	}
	if flags.Changed("rows") {
		cfg.Rows, _ = flags.GetInt("rows")
	}
	if flags.Changed("max-attempts") {
		cfg.MaxAttempts, _ = flags.GetInt("max-attempts")
	}
	if flags.Changed("max-cost") {
		v, _ := flags.GetFloat64("max-cost")
		cfg.MaxCost = &v
	}
	if flags.Changed("cutoff") {
		cfg.Cutoff, _ = flags.GetString("cutoff")
	}
	if flags.Changed("heuristic") {
		cfg.Heuristic, _ = flags.GetString("heuristic")
	}
	return cfg, cfg.Validate()
}

// openLogger builds the logger described by cfg. fallback receives logs when
// no log file is configured. The returned closer releases the log file.
func openLogger(cfg config.Config, fallback io.Writer) (*slog.Logger, func() error, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if cfg.LogFile == "" {
		return logging.New(fallback, level), func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logging.New(f, level), f.Close, nil
}
