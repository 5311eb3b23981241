package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/circuit/circuit"
	"github.com/katalvlaran/circuit/internal/metrics"
	"github.com/katalvlaran/circuit/internal/tui"
)

// rowsPerScreen is how many screens tall an auto-sized grid is.
const rowsPerScreen = 3

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the terminal animation",
		Long: `Starts the animation. Arrows and PgUp/PgDn scroll the board, c clears it,
q or Esc quits.`,
		Args: cobra.NoArgs,
		RunE: runAnimation,
	}
	cmd.Flags().Bool("ascii", false, "Draw with ASCII characters")
	cmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address")
	cmd.Flags().Int("lines", -1, "Paths committed before the first frame")
	cmd.Flags().Float64("rate", 0, "Paths committed per second")
	return cmd
}

func runAnimation(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("metrics-addr"); v != "" {
		cfg.MetricsAddr = v
	}
	if v, _ := cmd.Flags().GetInt("lines"); v >= 0 {
		cfg.InitialLines = v
	}
	if v, _ := cmd.Flags().GetFloat64("rate"); v > 0 {
		cfg.LinesPerSecond = v
	}
	ascii, _ := cmd.Flags().GetBool("ascii")

	// The screen owns the terminal, so logs go nowhere unless a file is set.
	log, closeLog, err := openLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := append(cfg.SessionOptions(), circuit.WithLogger(log))
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		rec, err := metrics.NewRecorder(reg)
		if err != nil {
			return err
		}
		opts = append(opts, circuit.WithRecorder(rec))
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr, reg, log); err != nil {
				log.Error("metrics server stopped", "error", err)
			}
		}()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	w, h := screen.Size()
	cols, rows := cfg.Cols, cfg.Rows
	if cols == 0 {
		cols = w
	}
	if rows == 0 {
		rows = max(h-1, 1) * rowsPerScreen
	}

	sess, err := circuit.NewSession(cols, rows, opts...)
	if err != nil {
		return err
	}
	log.Info("session started",
		"cols", cols,
		"rows", rows,
		"maxCost", sess.MaxCost(),
		"seed", cfg.Seed,
	)

	app, err := tui.New(screen, sess, tui.Options{
		InitialLines:    cfg.InitialLines,
		LinesPerSecond:  cfg.LinesPerSecond,
		RevealPerSecond: cfg.RevealPerSecond,
		ASCII:           ascii,
		Logger:          log,
	})
	if err != nil {
		return err
	}

	err = app.Run(ctx)
	st := sess.Stats()
	log.Info("session ended", "commits", st.Commits, "attempts", st.Attempts, "exhausted", st.Exhausted)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
