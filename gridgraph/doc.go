// Package gridgraph treats an implicit 2D grid as an 8-connected graph whose
// impassable cells are tracked in a growing Occupancy set.
//
// What:
//
//   - Cell is a struct key (X, Y); no string encoding is involved in lookups.
//   - Direction enumerates the eight compass moves with their displacement
//     and step cost (1 orthogonal, √2 diagonal).
//   - Occupancy is an append-only set of claimed cells.
//   - Grid combines bounds, an Occupancy and an optional active Window and
//     generates legal successors for a cell.
//
// Move rules (Grid.Successors):
//
//  1. The candidate must lie inside [0,Cols)×[0,Rows).
//  2. With an active window set, it must lie inside the window expanded by
//     the margin. This is a performance bound only.
//  3. It must not be occupied.
//  4. A diagonal move is rejected when both orthogonal corner cells between
//     the source and the candidate are occupied.
//
// Complexity:
//
//   - Successors:     O(1) (at most 8 candidates, O(1) set lookups).
//   - FreeComponents: O(W·H), Memory: O(W·H).
//
// Errors:
//
//   - ErrEmptyGrid:    non-positive column or row count.
//   - ErrNilOccupancy: a nil *Occupancy was passed to NewGrid.
//   - ErrBadMargin:    negative window margin.
//   - ErrBadDirection: unknown direction name.
package gridgraph
