package astar

import (
	"errors"
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/circuit/pqueue"
)

// Search runs A* on p and returns the action sequence to the first goal
// state expanded.
//
// Preconditions and validation (in order):
//  1. p.IsGoal must be non-nil (ErrNilGoal).
//  2. p.Successors must be non-nil (ErrNilSuccessors).
//  3. p.MaxCost must be ≥ 0 and not NaN (ErrBadMaxCost).
//
// Loop, per dequeued node:
//  1. OnVisit(state).
//  2. Cost ceiling check (see package doc).
//  3. Skip if already visited; otherwise mark visited.
//  4. Goal test → StatusFound.
//  5. Enqueue every successor with priority g' + h(successor).
//
// Complexity: O(E log E) time, O(E) space.
func Search[S comparable, A any](p Problem[S, A], opts ...pqueue.Option) (Result[A], error) {
	if p.IsGoal == nil {
		return Result[A]{}, ErrNilGoal
	}
	if p.Successors == nil {
		return Result[A]{}, ErrNilSuccessors
	}
	if p.MaxCost < 0 || math.IsNaN(p.MaxCost) {
		return Result[A]{}, ErrBadMaxCost
	}

	r := &runner[S, A]{
		p:        p,
		frontier: pqueue.New[*node[S, A]](opts...),
		visited:  mapset.New[S](),
	}
	if r.p.Heuristic == nil {
		r.p.Heuristic = func(S) float64 { return 0 }
	}

	return r.run()
}

// node is a frontier entry payload. Actions are recovered through parent
// links, so a node costs O(1) regardless of depth.
type node[S comparable, A any] struct {
	state  S
	action A
	parent *node[S, A]
	g      float64
	depth  int
}

// actions rebuilds the action list from the root to n.
func (n *node[S, A]) actions() []A {
	out := make([]A, n.depth)
	for cur := n; cur.parent != nil; cur = cur.parent {
		out[cur.depth-1] = cur.action
	}
	return out
}

// runner holds the mutable state for a single search. None of it outlives
// the Search call.
type runner[S comparable, A any] struct {
	p        Problem[S, A]
	frontier *pqueue.Queue[*node[S, A]]
	visited  mapset.Set[S]
	res      Result[A]
}

func (r *runner[S, A]) run() (Result[A], error) {
	if err := r.frontier.Enqueue(&node[S, A]{state: r.p.Start}, 0); err != nil {
		return Result[A]{}, err
	}

	for !r.frontier.IsEmpty() {
		cur := r.frontier.Dequeue()
		r.res.Dequeued++

		if r.p.OnVisit != nil {
			r.p.OnVisit(cur.state)
		}

		if r.p.MaxCost > 0 && cur.g > r.p.MaxCost {
			if r.p.Cutoff == CutoffAbort {
				r.res.Status = StatusCostExceeded
				return r.res, nil
			}
			continue
		}

		if r.visited.Has(cur.state) {
			continue
		}
		r.visited.Put(cur.state)
		r.res.Expanded++

		if r.p.IsGoal(cur.state) {
			r.res.Status = StatusFound
			r.res.Actions = cur.actions()
			r.res.Cost = cur.g
			return r.res, nil
		}

		if err := r.expand(cur); err != nil {
			return Result[A]{}, err
		}
	}

	r.res.Status = StatusNoPath
	return r.res, nil
}

// expand pushes every successor of cur onto the frontier.
// Successors already visited are still pushed and later skipped as stale,
// matching the lazy strategy; this keeps expand free of visited lookups.
func (r *runner[S, A]) expand(cur *node[S, A]) error {
	for _, step := range r.p.Successors(cur.state) {
		g := cur.g + step.Cost
		next := &node[S, A]{
			state:  step.State,
			action: step.Action,
			parent: cur,
			g:      g,
			depth:  cur.depth + 1,
		}
		if err := r.frontier.Enqueue(next, g+r.p.Heuristic(step.State)); err != nil {
			if errors.Is(err, pqueue.ErrNaNPriority) {
				return fmt.Errorf("%w: step cost %v, g %v", ErrBadPriority, step.Cost, g)
			}
			return err
		}
	}
	return nil
}
