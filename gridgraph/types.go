package gridgraph

import (
	"fmt"
	"math"
)

// Cell is a grid position. X is the column, Y is the row.
// Cells compare structurally and are used directly as map keys.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns c displaced by d's vector; an invalid d leaves c unchanged.
func (c Cell) Add(d Direction) Cell {
	v := d.Vector()
	return Cell{X: c.X + v[0], Y: c.Y + v[1]}
}

// String formats the cell as "(x,y)".
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Bounds is the static size of a grid: Cols cells per row, Rows cells per column.
type Bounds struct {
	Cols, Rows int
}

// Contains reports whether c lies inside [0,Cols)×[0,Rows).
// Complexity: O(1).
func (b Bounds) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.Cols && c.Y >= 0 && c.Y < b.Rows
}

// Area returns Cols×Rows.
func (b Bounds) Area() int { return b.Cols * b.Rows }

// Direction is one of the eight compass moves.
type Direction uint8

// Directions in successor-generation order.
const (
	Right Direction = iota
	Left
	Up
	Down
	RightUp
	RightDown
	LeftUp
	LeftDown

	numDirections
)

// AllDirections lists every Direction in successor-generation order.
var AllDirections = [numDirections]Direction{
	Right, Left, Up, Down, RightUp, RightDown, LeftUp, LeftDown,
}

// Displacements follow the screen-agnostic convention "up" = +Y.
var dirVectors = [numDirections][2]int{
	Right:     {1, 0},
	Left:      {-1, 0},
	Up:        {0, 1},
	Down:      {0, -1},
	RightUp:   {1, 1},
	RightDown: {1, -1},
	LeftUp:    {-1, 1},
	LeftDown:  {-1, -1},
}

var dirNames = [numDirections]string{
	Right:     "right",
	Left:      "left",
	Up:        "up",
	Down:      "down",
	RightUp:   "right-up",
	RightDown: "right-down",
	LeftUp:    "left-up",
	LeftDown:  "left-down",
}

// corner cells (as orthogonal moves) that a diagonal move passes between.
var dirCorners = [numDirections][2]Direction{
	RightUp:   {Up, Right},
	RightDown: {Down, Right},
	LeftUp:    {Up, Left},
	LeftDown:  {Down, Left},
}

// Valid reports whether d is one of the eight defined directions.
func (d Direction) Valid() bool { return d < numDirections }

// Vector returns the (dx, dy) displacement of d, or (0, 0) if d is invalid.
func (d Direction) Vector() [2]int {
	if !d.Valid() {
		return [2]int{}
	}
	return dirVectors[d]
}

// IsDiagonal reports whether d moves along both axes.
func (d Direction) IsDiagonal() bool { return d >= RightUp && d < numDirections }

// Cost returns the step cost: 1 for orthogonal moves, √2 for diagonal ones.
func (d Direction) Cost() float64 {
	if d.IsDiagonal() {
		return math.Sqrt2
	}
	return 1
}

// Corners returns the two orthogonal moves whose target cells flank the
// diagonal d. ok is false for orthogonal directions.
func (d Direction) Corners() (vertical, horizontal Direction, ok bool) {
	if !d.IsDiagonal() {
		return 0, 0, false
	}
	c := dirCorners[d]
	return c[0], c[1], true
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	v := d.Vector()
	for _, o := range AllDirections {
		ov := o.Vector()
		if ov[0] == -v[0] && ov[1] == -v[1] {
			return o
		}
	}
	return d
}

// String returns the hyphenated lower-case name, e.g. "right-up".
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return dirNames[d]
}

// ParseDirection maps a name produced by String back to a Direction.
func ParseDirection(s string) (Direction, error) {
	for _, d := range AllDirections {
		if dirNames[d] == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDirection, s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadDirection, uint8(d))
	}
	return []byte(dirNames[d]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Window is a rectangular sub-region of the grid: columns [X, X+Width) and
// rows [Y, Y+Height).
type Window struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether c lies inside w.
func (w Window) Contains(c Cell) bool {
	return c.X >= w.X && c.X < w.X+w.Width && c.Y >= w.Y && c.Y < w.Y+w.Height
}

// Expand grows w by margin cells on every side.
func (w Window) Expand(margin int) Window {
	return Window{
		X:      w.X - margin,
		Y:      w.Y - margin,
		Width:  w.Width + 2*margin,
		Height: w.Height + 2*margin,
	}
}

// Clip intersects w with b. The result has zero area when they do not overlap.
func (w Window) Clip(b Bounds) Window {
	x0, y0 := max(w.X, 0), max(w.Y, 0)
	x1, y1 := min(w.X+w.Width, b.Cols), min(w.Y+w.Height, b.Rows)
	if x1 <= x0 || y1 <= y0 {
		return Window{X: x0, Y: y0}
	}
	return Window{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Empty reports whether w covers no cells.
func (w Window) Empty() bool { return w.Width <= 0 || w.Height <= 0 }

// Area returns the number of cells covered by w.
func (w Window) Area() int {
	if w.Empty() {
		return 0
	}
	return w.Width * w.Height
}

// Successor is one legal move out of a cell.
type Successor struct {
	Cell Cell      // Destination
	Dir  Direction // Move taken
	Cost float64   // Step cost (Dir.Cost())
}

// GridOptions contains tunable parameters for a Grid.
type GridOptions struct {
	// Window, if non-nil, restricts successor generation to the window
	// expanded by Margin.
	Window *Window
	// Margin is the number of cells the active window is grown by.
	Margin int
}

// GridOption is a functional option for NewGrid.
type GridOption func(*GridOptions)

// DefaultGridOptions returns GridOptions with no window and Margin=0.
func DefaultGridOptions() GridOptions {
	return GridOptions{}
}

// WithWindow sets an initial active window.
func WithWindow(w Window) GridOption {
	return func(o *GridOptions) {
		o.Window = &w
	}
}

// WithMargin sets the active-window margin.
// Panics with ErrBadMargin if margin < 0.
func WithMargin(margin int) GridOption {
	return func(o *GridOptions) {
		if margin < 0 {
			panic(ErrBadMargin.Error())
		}
		o.Margin = margin
	}
}
