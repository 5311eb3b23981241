package circuit

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/katalvlaran/circuit/astar"
	"github.com/katalvlaran/circuit/gridgraph"
	"github.com/katalvlaran/circuit/pqueue"
)

// Sentinel errors returned by Session methods.
var (
	// ErrAttemptsExhausted indicates every attempt of a commit failed.
	ErrAttemptsExhausted = errors.New("circuit: attempts exhausted")

	// ErrNoFreeCells indicates the region holds fewer than two free cells.
	ErrNoFreeCells = errors.New("circuit: not enough free cells in region")

	// ErrCommitInProgress indicates another commit is running.
	ErrCommitInProgress = errors.New("circuit: commit in progress")

	// ErrBadMaxAttempts indicates a negative attempt ceiling.
	ErrBadMaxAttempts = errors.New("circuit: MaxAttempts must be non-negative")

	// ErrBadMaxCost indicates a negative or NaN cost ceiling.
	ErrBadMaxCost = errors.New("circuit: MaxCost must be a non-negative number")

	// ErrBadInterval indicates a non-positive Run interval.
	ErrBadInterval = errors.New("circuit: interval must be positive")
)

// IsSoft reports whether err is a per-cycle failure the caller may ignore.
func IsSoft(err error) bool {
	return errors.Is(err, ErrAttemptsExhausted) ||
		errors.Is(err, ErrNoFreeCells) ||
		errors.Is(err, ErrCommitInProgress)
}

// Path is one committed path: a start cell and the moves taken from it.
// Generation is the session generation the path was claimed in.
type Path struct {
	Start      gridgraph.Cell        `json:"start"`
	Actions    []gridgraph.Direction `json:"actions"`
	Cost       float64               `json:"cost"`
	Generation uint64                `json:"generation"`
}

// Len returns the number of moves.
func (p Path) Len() int { return len(p.Actions) }

// Cells returns every cell on the path, start and goal included.
func (p Path) Cells() []gridgraph.Cell {
	out := make([]gridgraph.Cell, 0, len(p.Actions)+1)
	cur := p.Start
	out = append(out, cur)
	for _, d := range p.Actions {
		cur = cur.Add(d)
		out = append(out, cur)
	}
	return out
}

// Goal returns the final cell of the path.
func (p Path) Goal() gridgraph.Cell {
	cur := p.Start
	for _, d := range p.Actions {
		cur = cur.Add(d)
	}
	return cur
}

// Outcome classifies a single attempt.
type Outcome int

const (
	// OutcomeCommitted means the attempt produced a committed path.
	OutcomeCommitted Outcome = iota
	// OutcomeNoPath means the search exhausted its frontier.
	OutcomeNoPath
	// OutcomeCostExceeded means the cost ceiling stopped the search.
	OutcomeCostExceeded
	// OutcomeDegenerate means start and goal coincided (empty path).
	OutcomeDegenerate
)

// String returns a label suitable for logs and metrics.
func (o Outcome) String() string {
	switch o {
	case OutcomeCommitted:
		return "committed"
	case OutcomeNoPath:
		return "no_path"
	case OutcomeCostExceeded:
		return "cost_exceeded"
	case OutcomeDegenerate:
		return "degenerate"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Recorder receives commit-loop events. Implementations must be cheap;
// they run on the committing goroutine.
type Recorder interface {
	// Attempt is called once per search with its outcome and the number of
	// states it expanded.
	Attempt(o Outcome, expanded int)
	// Committed is called after a path has been claimed in the occupancy set.
	Committed(p Path)
	// Exhausted is called when a commit gives up after MaxAttempts.
	Exhausted()
}

type nopRecorder struct{}

func (nopRecorder) Attempt(Outcome, int) {}
func (nopRecorder) Committed(Path)       {}
func (nopRecorder) Exhausted()           {}

// AutoMaxCost asks NewSession to derive the cost ceiling from the grid
// size: (cols + rows) * 2.
const AutoMaxCost = -1.0

// Options configures a Session.
//
// MaxAttempts – attempts per commit; 0 means unbounded (bounded only by ctx).
// MaxCost     – search cost ceiling; 0 disables, AutoMaxCost derives it.
// Margin      – active-window margin used for successor culling.
// Cutoff      – how the cost ceiling is enforced.
// TieBreak    – frontier ordering between equal priorities.
// Heuristic   – heuristic factory, Euclidean by default.
type Options struct {
	MaxAttempts int
	MaxCost     float64
	Margin      int
	Cutoff      astar.CutoffMode
	TieBreak    pqueue.TieBreak
	Heuristic   func(goal gridgraph.Cell) gridgraph.Heuristic
	OnVisit     func(gridgraph.Cell)
	Window      *gridgraph.Window
	Rand        *rand.Rand
	Seed        int64
	Logger      *slog.Logger
	Recorder    Recorder
}

// Option is a functional option for NewSession.
type Option func(*Options)

// DefaultOptions returns the defaults:
//   - MaxAttempts: 10
//   - MaxCost:     AutoMaxCost
//   - Margin:      5
//   - Cutoff:      astar.CutoffAbort
//   - TieBreak:    pqueue.TieFIFO
//   - Heuristic:   gridgraph.Euclidean
//   - Seed:        0 (defaultSeed)
func DefaultOptions() Options {
	return Options{
		MaxAttempts: 10,
		MaxCost:     AutoMaxCost,
		Margin:      5,
		Cutoff:      astar.CutoffAbort,
		TieBreak:    pqueue.TieFIFO,
		Heuristic:   gridgraph.Euclidean,
	}
}

// WithMaxAttempts sets the attempt ceiling; 0 means unbounded.
// Panics with ErrBadMaxAttempts if n < 0.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxAttempts.Error())
		}
		o.MaxAttempts = n
	}
}

// WithMaxCost sets an explicit cost ceiling.
// Panics with ErrBadMaxCost if c is negative or NaN.
func WithMaxCost(c float64) Option {
	return func(o *Options) {
		if c < 0 || math.IsNaN(c) {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = c
	}
}

// WithoutMaxCost disables the cost ceiling.
func WithoutMaxCost() Option {
	return func(o *Options) { o.MaxCost = 0 }
}

// WithMargin sets the active-window margin.
func WithMargin(m int) Option {
	return func(o *Options) { o.Margin = m }
}

// WithCutoff selects how the cost ceiling is enforced.
func WithCutoff(m astar.CutoffMode) Option {
	return func(o *Options) { o.Cutoff = m }
}

// WithTieBreak selects frontier ordering between equal priorities.
func WithTieBreak(t pqueue.TieBreak) Option {
	return func(o *Options) { o.TieBreak = t }
}

// WithHeuristic replaces the heuristic factory.
func WithHeuristic(h func(goal gridgraph.Cell) gridgraph.Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnVisit installs a hook called with every dequeued search state.
func WithOnVisit(fn func(gridgraph.Cell)) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithWindow sets the initial active window.
func WithWindow(w gridgraph.Window) Option {
	return func(o *Options) { o.Window = &w }
}

// WithSeed seeds the endpoint sampler deterministically.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand supplies the endpoint sampler. It takes precedence over WithSeed.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithRecorder sets the event recorder.
func WithRecorder(r Recorder) Option {
	return func(o *Options) { o.Recorder = r }
}
