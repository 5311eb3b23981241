package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/circuit/circuit"
	"github.com/katalvlaran/circuit/gridgraph"
	"github.com/katalvlaran/circuit/internal/tui"
)

// Headless grid size when neither config nor flags give one.
const (
	defaultPlanCols = 60
	defaultPlanRows = 20
)

// planReport is the JSON output of `circuit plan`.
type planReport struct {
	Cols       int            `json:"cols"`
	Rows       int            `json:"rows"`
	Seed       int64          `json:"seed"`
	MaxCost    float64        `json:"maxCost"`
	Paths      []circuit.Path `json:"paths"`
	Stats      circuit.Stats  `json:"stats"`
	Components []int          `json:"freeComponents"`
}

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Commit paths headlessly and print them",
		Args:  cobra.NoArgs,
		RunE:  runPlan,
	}
	cmd.Flags().IntP("count", "n", -1, "Paths to commit (default: initialLines)")
	cmd.Flags().StringP("format", "f", "text", "Output format: text or json")
	cmd.Flags().Bool("ascii", false, "Draw the text board with ASCII characters")
	return cmd
}

func runPlan(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	count, _ := cmd.Flags().GetInt("count")
	if count < 0 {
		count = cfg.InitialLines
	}
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q", format)
	}
	ascii, _ := cmd.Flags().GetBool("ascii")

	log, closeLog, err := openLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	cols, rows := cfg.Cols, cfg.Rows
	if cols == 0 {
		cols = defaultPlanCols
	}
	if rows == 0 {
		rows = defaultPlanRows
	}
	sess, err := circuit.NewSession(cols, rows, append(cfg.SessionOptions(), circuit.WithLogger(log))...)
	if err != nil {
		return err
	}

	paths, err := sess.Fill(cmd.Context(), count)
	if err != nil {
		return err
	}

	var comps []int
	if err := sess.View(func(g *gridgraph.Grid) {
		for _, c := range g.FreeComponents() {
			comps = append(comps, len(c))
		}
	}); err != nil {
		return err
	}

	report := planReport{
		Cols:       cols,
		Rows:       rows,
		Seed:       cfg.Seed,
		MaxCost:    sess.MaxCost(),
		Paths:      paths,
		Stats:      sess.Stats(),
		Components: comps,
	}
	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return writeText(out, report, ascii)
}

func writeText(w io.Writer, r planReport, ascii bool) error {
	b := gridgraph.Bounds{Cols: r.Cols, Rows: r.Rows}
	for _, line := range tui.RenderText(b, r.Paths, ascii) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	largest := 0
	for _, n := range r.Components {
		largest = max(largest, n)
	}
	_, err := fmt.Fprintf(w, "paths %d  attempts %d  exhausted %d  cells %d/%d  free regions %d (largest %d)\n",
		r.Stats.Commits, r.Stats.Attempts, r.Stats.Exhausted, r.Stats.Occupied, b.Area(), len(r.Components), largest)
	return err
}
