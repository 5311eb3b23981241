package gridgraph

// FreeComponents finds the connected regions of free cells over the whole
// grid, using the same move rules as Successors but ignoring the active
// window. Two free cells are in one component exactly when a path can
// currently be found between them.
//
// Each component lists its cells in BFS discovery order; components are
// ordered by their first cell in row-major order.
//
// Time:   O(W·H).
// Memory: O(W·H) for seen flags and output.
func (g *Grid) FreeComponents() [][]Cell {
	seen := make([]bool, g.Area())
	index := func(c Cell) int { return c.Y*g.Cols + c.X }

	var comps [][]Cell
	buf := make([]Successor, 0, len(AllDirections))
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			c0 := Cell{X: x, Y: y}
			if g.occ.Has(c0) || seen[index(c0)] {
				continue
			}
			queue := []Cell{c0}
			seen[index(c0)] = true
			for qi := 0; qi < len(queue); qi++ {
				buf = g.appendSuccessors(buf[:0], queue[qi], false)
				for _, s := range buf {
					if i := index(s.Cell); !seen[i] {
						seen[i] = true
						queue = append(queue, s.Cell)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}
