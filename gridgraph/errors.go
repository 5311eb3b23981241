package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the grid has no columns or no rows.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one column and one row")
	// ErrNilOccupancy indicates a nil occupancy set.
	ErrNilOccupancy = errors.New("gridgraph: occupancy set is nil")
	// ErrBadMargin indicates a negative window margin.
	ErrBadMargin = errors.New("gridgraph: window margin must be non-negative")
	// ErrBadDirection indicates an unrecognised direction name.
	ErrBadDirection = errors.New("gridgraph: unknown direction")
)
