package gridgraph

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Occupancy is the set of cells claimed by committed paths.
// It only grows; there is no removal other than Reset.
//
// Occupancy is not safe for concurrent mutation. A single writer (the commit
// loop) owns it; searches read it while no write is in progress.
type Occupancy struct {
	cells mapset.Set[Cell]
}

// NewOccupancy returns an empty set, optionally pre-populated with cells.
func NewOccupancy(cells ...Cell) *Occupancy {
	o := &Occupancy{cells: mapset.New[Cell]()}
	for _, c := range cells {
		o.cells.Put(c)
	}
	return o
}

// Add marks c occupied. It reports whether c was newly added.
func (o *Occupancy) Add(c Cell) bool {
	if o.cells.Has(c) {
		return false
	}
	o.cells.Put(c)
	return true
}

// Has reports whether c is occupied.
func (o *Occupancy) Has(c Cell) bool {
	return o.cells.Has(c)
}

// Len returns the number of occupied cells.
func (o *Occupancy) Len() int { return o.cells.Size() }

// Commit walks dirs from start and marks start, every intermediate cell and
// the final cell occupied. It returns the walked cells in path order
// (len(dirs)+1 entries). Committing the same path twice leaves the set unchanged.
func (o *Occupancy) Commit(start Cell, dirs []Direction) []Cell {
	walked := make([]Cell, 0, len(dirs)+1)
	cur := start
	o.cells.Put(cur)
	walked = append(walked, cur)
	for _, d := range dirs {
		cur = cur.Add(d)
		o.cells.Put(cur)
		walked = append(walked, cur)
	}
	return walked
}

// Cells returns the occupied cells sorted by row, then column.
// Complexity: O(n log n).
func (o *Occupancy) Cells() []Cell {
	out := make([]Cell, 0, o.cells.Size())
	o.cells.Each(func(c Cell) { out = append(out, c) })
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Clone returns an independent copy of the set.
func (o *Occupancy) Clone() *Occupancy {
	c := &Occupancy{cells: mapset.New[Cell]()}
	o.cells.Each(c.cells.Put)
	return c
}

// Reset empties the set, ending the current session's history.
func (o *Occupancy) Reset() {
	o.cells = mapset.New[Cell]()
}
