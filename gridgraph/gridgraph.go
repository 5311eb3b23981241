package gridgraph

// Grid is an implicit Cols×Rows grid whose blocked cells live in an Occupancy.
// The Occupancy is shared by reference; Grid never mutates it.
type Grid struct {
	Bounds
	occ    *Occupancy
	window *Window
	margin int
}

// NewGrid constructs a Grid over occ.
// Returns ErrEmptyGrid if cols or rows is not positive, ErrNilOccupancy if occ is nil.
// Complexity: O(1).
func NewGrid(cols, rows int, occ *Occupancy, opts ...GridOption) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, ErrEmptyGrid
	}
	if occ == nil {
		return nil, ErrNilOccupancy
	}
	cfg := DefaultGridOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Grid{
		Bounds: Bounds{Cols: cols, Rows: rows},
		occ:    occ,
		window: cfg.Window,
		margin: cfg.Margin,
	}, nil
}

// Occupancy returns the shared occupancy set.
func (g *Grid) Occupancy() *Occupancy { return g.occ }

// InBounds reports whether c lies within the grid boundaries.
func (g *Grid) InBounds(c Cell) bool { return g.Bounds.Contains(c) }

// Free reports whether c is inside the grid and not occupied.
func (g *Grid) Free(c Cell) bool { return g.InBounds(c) && !g.occ.Has(c) }

// SetWindow activates soft culling to w expanded by the grid margin.
func (g *Grid) SetWindow(w Window) { g.window = &w }

// ClearWindow disables soft culling.
func (g *Grid) ClearWindow() { g.window = nil }

// Window returns the active window, if any.
func (g *Grid) Window() (Window, bool) {
	if g.window == nil {
		return Window{}, false
	}
	return *g.window, true
}

// Margin returns the active-window margin.
func (g *Grid) Margin() int { return g.margin }

// Region returns the currently relevant region: the active window clipped
// to the grid, or the whole grid when no window is set.
func (g *Grid) Region() Window {
	if g.window == nil {
		return Window{Width: g.Cols, Height: g.Rows}
	}
	return g.window.Clip(g.Bounds)
}

// Successors returns the legal moves out of s:
// in bounds, inside the expanded window (if any), unoccupied, and for
// diagonals not squeezed between two occupied corner cells.
// Order follows AllDirections. s itself is not required to be free.
// Complexity: O(1).
func (g *Grid) Successors(s Cell) []Successor {
	return g.AppendSuccessors(make([]Successor, 0, len(AllDirections)), s)
}

// AppendSuccessors is Successors appending into dst to allow buffer reuse.
func (g *Grid) AppendSuccessors(dst []Successor, s Cell) []Successor {
	return g.appendSuccessors(dst, s, g.window != nil)
}

// appendSuccessors applies window culling only when cull is set.
func (g *Grid) appendSuccessors(dst []Successor, s Cell, cull bool) []Successor {
	var outer Window
	if cull {
		outer = g.window.Expand(g.margin)
	}
	for _, d := range AllDirections {
		next := s.Add(d)
		if !g.Bounds.Contains(next) {
			continue
		}
		if cull && !outer.Contains(next) {
			continue
		}
		if g.occ.Has(next) {
			continue
		}
		if v, h, ok := d.Corners(); ok && g.occ.Has(s.Add(v)) && g.occ.Has(s.Add(h)) {
			continue
		}
		dst = append(dst, Successor{Cell: next, Dir: d, Cost: d.Cost()})
	}
	return dst
}

// FreeCells lists the free cells of the current Region in row-major order.
// Complexity: O(region area).
func (g *Grid) FreeCells() []Cell {
	r := g.Region()
	out := make([]Cell, 0, r.Area())
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			c := Cell{X: x, Y: y}
			if !g.occ.Has(c) {
				out = append(out, c)
			}
		}
	}
	return out
}
