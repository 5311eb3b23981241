// Package astar implements best-first (A*) search over an implicit state
// space described by a Problem.
//
// The search keeps a frontier ordered by g + h and a visited set of expanded
// states. Stale frontier entries (states already expanded) are skipped when
// dequeued, the same lazy decrease-key strategy a Dijkstra run uses.
//
// Complexity:
//
//   - Time:  O(E log E) where E is the number of generated successors.
//   - Space: O(E) frontier entries, O(V) visited states.
//
// Outcomes:
//
//   - StatusFound:        a goal state was expanded; Result.Actions holds the
//     actions from Start.
//   - StatusNoPath:       the frontier emptied without reaching a goal.
//   - StatusCostExceeded: the cost ceiling stopped the search (CutoffAbort).
//
// A missing path is reported through Status, never as an error. Errors
// indicate an unusable Problem or a NaN priority.
//
// Cost ceiling:
//
//	With MaxCost > 0 the ceiling is tested on every dequeue, before the
//	visited check. Under CutoffAbort (default) the first dequeued node whose
//	g exceeds MaxCost ends the whole search, even if cheaper completions are
//	still queued. This is an early, approximate cutoff. CutoffPrune discards
//	only that node and continues.
//
// Optimality requires an admissible heuristic. The driver does not check it;
// an inadmissible heuristic yields valid but possibly longer paths.
package astar
