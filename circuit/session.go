package circuit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/circuit/astar"
	"github.com/katalvlaran/circuit/gridgraph"
	"github.com/katalvlaran/circuit/internal/logging"
	"github.com/katalvlaran/circuit/pqueue"
)

// Stats is a point-in-time summary of a Session.
type Stats struct {
	Commits   int `json:"commits"`   // Paths committed
	Attempts  int `json:"attempts"`  // Searches run
	Exhausted int `json:"exhausted"` // Commits that gave up after MaxAttempts
	Occupied  int `json:"occupied"`  // Cells in the occupancy set
}

// Session owns the grid and occupancy set of one animation session.
type Session struct {
	grid *gridgraph.Grid
	occ  *gridgraph.Occupancy
	rng  *rand.Rand
	opts Options
	log  *slog.Logger
	rec  Recorder

	// busy is the re-entrancy guard; held for the whole of a commit.
	busy atomic.Bool

	// Pending grid mutations, applied by the guard holder.
	mu            sync.Mutex
	pendingWindow *gridgraph.Window
	pendingClear  bool
	pendingReset  bool
	generation    uint64 // bumped by Reset

	commits   atomic.Int64
	attempts  atomic.Int64
	exhausted atomic.Int64
	occupied  atomic.Int64

	// search buffers, reused across expansions under the guard
	succBuf []gridgraph.Successor
	stepBuf []astar.Step[gridgraph.Cell, gridgraph.Direction]
}

// NewSession creates a Session over an empty cols×rows grid.
// Returns gridgraph.ErrEmptyGrid for non-positive sizes and
// gridgraph.ErrBadMargin for a negative margin.
func NewSession(cols, rows int, opts ...Option) (*Session, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Margin < 0 {
		return nil, gridgraph.ErrBadMargin
	}

	occ := gridgraph.NewOccupancy()
	gopts := []gridgraph.GridOption{gridgraph.WithMargin(cfg.Margin)}
	if cfg.Window != nil {
		gopts = append(gopts, gridgraph.WithWindow(*cfg.Window))
	}
	grid, err := gridgraph.NewGrid(cols, rows, occ, gopts...)
	if err != nil {
		return nil, fmt.Errorf("circuit: %w", err)
	}

	if cfg.MaxCost == AutoMaxCost {
		cfg.MaxCost = float64((cols + rows) * 2)
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rngFromSeed(cfg.Seed)
	}
	log := cfg.Logger
	if log == nil {
		log = logging.NewNop()
	}
	rec := cfg.Recorder
	if rec == nil {
		rec = nopRecorder{}
	}

	return &Session{
		grid:    grid,
		occ:     occ,
		rng:     rng,
		opts:    cfg,
		log:     log,
		rec:     rec,
		succBuf: make([]gridgraph.Successor, 0, len(gridgraph.AllDirections)),
		stepBuf: make([]astar.Step[gridgraph.Cell, gridgraph.Direction], 0, len(gridgraph.AllDirections)),
	}, nil
}

// Bounds returns the grid size.
func (s *Session) Bounds() gridgraph.Bounds { return s.grid.Bounds }

// MaxCost returns the effective cost ceiling (0 when disabled).
func (s *Session) MaxCost() float64 { return s.opts.MaxCost }

// Stats returns counters maintained by commits. Safe for concurrent use.
func (s *Session) Stats() Stats {
	return Stats{
		Commits:   int(s.commits.Load()),
		Attempts:  int(s.attempts.Load()),
		Exhausted: int(s.exhausted.Load()),
		Occupied:  int(s.occupied.Load()),
	}
}

// SetWindow queues w as the active window for the next commit.
func (s *Session) SetWindow(w gridgraph.Window) {
	s.mu.Lock()
	s.pendingWindow, s.pendingClear = &w, false
	s.mu.Unlock()
}

// ClearWindow queues removal of the active window.
func (s *Session) ClearWindow() {
	s.mu.Lock()
	s.pendingWindow, s.pendingClear = nil, true
	s.mu.Unlock()
}

// Reset queues clearing of the occupancy set, starting a fresh history.
// The generation advances at once, so paths committed before the call carry
// an older Generation even if the clear has not been applied yet.
func (s *Session) Reset() {
	s.mu.Lock()
	s.pendingReset = true
	s.generation++
	s.mu.Unlock()
}

// Generation returns the number of Reset calls so far. A Path whose
// Generation differs has had its cells released.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// applyPending flushes queued mutations and returns the generation they
// leave the occupancy set in. Caller holds the guard.
func (s *Session) applyPending() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pendingReset {
		s.occ.Reset()
		s.occupied.Store(0)
		s.pendingReset = false
	}
	switch {
	case s.pendingWindow != nil:
		s.grid.SetWindow(*s.pendingWindow)
		s.pendingWindow = nil
	case s.pendingClear:
		s.grid.ClearWindow()
		s.pendingClear = false
	}
	return s.generation
}

// View runs fn with exclusive access to the grid, e.g. to read the occupancy
// set or compute components. Returns ErrCommitInProgress if a commit holds
// the guard. fn must not retain the grid.
func (s *Session) View(fn func(g *gridgraph.Grid)) error {
	if !s.busy.CompareAndSwap(false, true) {
		return ErrCommitInProgress
	}
	defer s.busy.Store(false)
	s.applyPending()
	fn(s.grid)
	return nil
}

// Commit produces one committed path.
//
// It samples endpoints from the free cells of the current region, searches,
// and retries up to MaxAttempts times. On success every cell of the path,
// start and goal included, is added to the occupancy set after the search
// has returned.
//
// ctx is checked at the start of every attempt.
func (s *Session) Commit(ctx context.Context) (Path, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return Path{}, ErrCommitInProgress
	}
	defer s.busy.Store(false)
	gen := s.applyPending()

	// Occupancy is static for the whole commit, so one snapshot serves
	// every attempt.
	free := s.grid.FreeCells()
	if len(free) < 2 {
		return Path{}, ErrNoFreeCells
	}

	for attempt := 1; s.opts.MaxAttempts == 0 || attempt <= s.opts.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return Path{}, err
		}
		start := free[s.rng.Intn(len(free))]
		goal := free[s.rng.Intn(len(free))]

		res, err := s.search(start, goal)
		if err != nil {
			return Path{}, err
		}
		s.attempts.Add(1)

		outcome := classify(res)
		s.rec.Attempt(outcome, res.Expanded)
		if outcome != OutcomeCommitted {
			s.log.Debug("attempt failed",
				"attempt", attempt,
				"outcome", outcome.String(),
				"start", start.String(),
				"goal", goal.String(),
				"expanded", res.Expanded,
			)
			continue
		}

		p := Path{Start: start, Actions: res.Actions, Cost: res.Cost, Generation: gen}
		s.occ.Commit(start, res.Actions)
		s.occupied.Store(int64(s.occ.Len()))
		s.commits.Add(1)
		s.rec.Committed(p)
		s.log.Debug("path committed",
			"attempt", attempt,
			"start", start.String(),
			"goal", p.Goal().String(),
			"moves", p.Len(),
			"cost", p.Cost,
		)
		return p, nil
	}

	s.exhausted.Add(1)
	s.rec.Exhausted()
	return Path{}, fmt.Errorf("%w: %d attempts", ErrAttemptsExhausted, s.opts.MaxAttempts)
}

// classify maps a search result to an attempt outcome. A found path of zero
// moves (start == goal) is degenerate and retried.
func classify(res astar.Result[gridgraph.Direction]) Outcome {
	switch res.Status {
	case astar.StatusFound:
		if len(res.Actions) == 0 {
			return OutcomeDegenerate
		}
		return OutcomeCommitted
	case astar.StatusCostExceeded:
		return OutcomeCostExceeded
	default:
		return OutcomeNoPath
	}
}

// search runs A* from start to goal against the current occupancy.
func (s *Session) search(start, goal gridgraph.Cell) (astar.Result[gridgraph.Direction], error) {
	p := astar.Problem[gridgraph.Cell, gridgraph.Direction]{
		Start:      start,
		IsGoal:     func(c gridgraph.Cell) bool { return c == goal },
		Successors: s.successors,
		Heuristic:  s.opts.Heuristic(goal),
		MaxCost:    s.opts.MaxCost,
		Cutoff:     s.opts.Cutoff,
		OnVisit:    s.opts.OnVisit,
	}
	return astar.Search(p, pqueue.WithTieBreak(s.opts.TieBreak))
}

// successors adapts Grid.AppendSuccessors to astar steps, reusing buffers.
func (s *Session) successors(c gridgraph.Cell) []astar.Step[gridgraph.Cell, gridgraph.Direction] {
	s.succBuf = s.grid.AppendSuccessors(s.succBuf[:0], c)
	s.stepBuf = s.stepBuf[:0]
	for _, n := range s.succBuf {
		s.stepBuf = append(s.stepBuf, astar.Step[gridgraph.Cell, gridgraph.Direction]{
			State:  n.Cell,
			Action: n.Dir,
			Cost:   n.Cost,
		})
	}
	return s.stepBuf
}

// Fill commits up to n paths back to back, as done once when a session
// starts. Soft failures are skipped; hard errors stop the fill and are
// returned with the paths committed so far.
func (s *Session) Fill(ctx context.Context, n int) ([]Path, error) {
	paths := make([]Path, 0, n)
	for i := 0; i < n; i++ {
		p, err := s.Commit(ctx)
		if err != nil {
			if IsSoft(err) {
				s.log.Debug("fill cycle skipped", "cycle", i, "error", err)
				continue
			}
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// Run commits one path every interval until ctx is done, handing each
// committed path to sink. A tick that finds a commit still in progress, or
// whose commit fails softly, is skipped. Run returns ctx.Err() on
// cancellation or the first hard error.
func (s *Session) Run(ctx context.Context, interval time.Duration, sink func(Path)) error {
	if interval <= 0 {
		return ErrBadInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p, err := s.Commit(ctx)
			switch {
			case err == nil:
				if sink != nil {
					sink(p)
				}
			case IsSoft(err):
				s.log.Debug("cycle skipped", "error", err)
			case errors.Is(err, ctx.Err()):
				return err
			default:
				s.log.Error("commit failed", "error", err)
				return err
			}
		}
	}
}
