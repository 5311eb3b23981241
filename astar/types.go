package astar

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGoal indicates Problem.IsGoal is nil.
	ErrNilGoal = errors.New("astar: goal predicate is nil")

	// ErrNilSuccessors indicates Problem.Successors is nil.
	ErrNilSuccessors = errors.New("astar: successor function is nil")

	// ErrBadMaxCost indicates Problem.MaxCost is negative or NaN.
	ErrBadMaxCost = errors.New("astar: MaxCost must be a non-negative number")

	// ErrBadPriority indicates a step cost or heuristic produced a NaN priority.
	ErrBadPriority = errors.New("astar: NaN priority")
)

// Status is the terminal state of a search.
type Status int

const (
	// StatusNoPath means the frontier was exhausted without reaching a goal.
	StatusNoPath Status = iota
	// StatusFound means a goal state was reached.
	StatusFound
	// StatusCostExceeded means the cost ceiling aborted the search.
	StatusCostExceeded
)

// String returns a short lower-case name.
func (s Status) String() string {
	switch s {
	case StatusNoPath:
		return "no-path"
	case StatusFound:
		return "found"
	case StatusCostExceeded:
		return "cost-exceeded"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// CutoffMode selects how MaxCost is enforced.
type CutoffMode int

const (
	// CutoffAbort ends the whole search at the first dequeued node whose g
	// exceeds MaxCost.
	CutoffAbort CutoffMode = iota
	// CutoffPrune discards only the offending node.
	CutoffPrune
)

// String returns "abort" or "prune".
func (m CutoffMode) String() string {
	switch m {
	case CutoffAbort:
		return "abort"
	case CutoffPrune:
		return "prune"
	default:
		return fmt.Sprintf("CutoffMode(%d)", int(m))
	}
}

// ParseCutoffMode maps "abort" or "prune" to a CutoffMode.
func ParseCutoffMode(s string) (CutoffMode, error) {
	switch s {
	case "abort", "":
		return CutoffAbort, nil
	case "prune":
		return CutoffPrune, nil
	default:
		return 0, fmt.Errorf("astar: unknown cutoff mode %q", s)
	}
}

// Step is one successor: the state reached, the action taken and its cost.
type Step[S comparable, A any] struct {
	State  S
	Action A
	Cost   float64
}

// Problem describes one search. It is built fresh for every call.
//
//   - Start: initial state.
//   - IsGoal: goal test (required).
//   - Successors: legal steps out of a state (required). Search consumes the
//     returned slice before calling Successors again, so it may be reused.
//   - Heuristic: estimate of remaining cost; nil means zero (uniform-cost search).
//   - MaxCost: cost ceiling; 0 disables it.
//   - Cutoff: how MaxCost is enforced.
//   - OnVisit: called with every dequeued state, including stale and
//     over-ceiling ones. It cannot influence the search; a panic in OnVisit
//     propagates and aborts it.
type Problem[S comparable, A any] struct {
	Start      S
	IsGoal     func(S) bool
	Successors func(S) []Step[S, A]
	Heuristic  func(S) float64
	MaxCost    float64
	Cutoff     CutoffMode
	OnVisit    func(S)
}

// Result is the outcome of Search.
//
// Actions is non-nil only when Status == StatusFound; it is empty when Start
// itself satisfies IsGoal. Cost is the accumulated step cost of Actions.
// Expanded counts states marked visited; Dequeued counts all frontier pops.
type Result[A any] struct {
	Actions  []A
	Cost     float64
	Status   Status
	Expanded int
	Dequeued int
}

// Found reports whether a path was found.
func (r Result[A]) Found() bool { return r.Status == StatusFound }
