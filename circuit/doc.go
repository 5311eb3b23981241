// Package circuit commits random non-overlapping paths onto a grid.
//
// A Session owns a gridgraph.Grid and its Occupancy for its whole lifetime.
// Each Commit call samples start and goal cells uniformly from the free cells
// of the current region, runs A* between them, and on success claims every
// cell on the path. Occupancy only changes after a search has returned.
//
// Failure handling:
//
//   - No path / cost ceiling hit: the attempt is retried with new endpoints.
//   - ErrAttemptsExhausted: the attempt ceiling was reached. Soft; the caller
//     skips this cycle.
//   - ErrNoFreeCells: the region holds fewer than two free cells. Soft.
//   - ErrCommitInProgress: another Commit holds the re-entrancy guard. Soft.
//
// Use IsSoft to tell these apart from hard errors (invalid configuration,
// context cancellation).
//
// Concurrency:
//
//	Commit, Fill and Run may be called from any goroutine; at most one commit
//	runs at a time. SetWindow, ClearWindow and Reset are queued and applied at
//	the start of the next commit, so the grid is only written by the
//	goroutine holding the guard.
package circuit
