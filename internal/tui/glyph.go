package tui

import (
	"strings"

	"github.com/katalvlaran/circuit/circuit"
	"github.com/katalvlaran/circuit/gridgraph"
)

// Endpoint glyphs.
const (
	nodeRune      = '●'
	nodeRuneASCII = 'o'
	emptyASCII    = '.'
)

var (
	lineRunes = [...]rune{
		gridgraph.Right:     '─',
		gridgraph.Left:      '─',
		gridgraph.Up:        '│',
		gridgraph.Down:      '│',
		gridgraph.RightUp:   '╱',
		gridgraph.LeftDown:  '╱',
		gridgraph.RightDown: '╲',
		gridgraph.LeftUp:    '╲',
	}
	lineRunesASCII = [...]rune{
		gridgraph.Right:     '-',
		gridgraph.Left:      '-',
		gridgraph.Up:        '|',
		gridgraph.Down:      '|',
		gridgraph.RightUp:   '/',
		gridgraph.LeftDown:  '/',
		gridgraph.RightDown: '\\',
		gridgraph.LeftUp:    '\\',
	}
)

// Glyph returns the line rune for a move in direction d. Rows are drawn
// with +Y at the top, so right-up renders as a forward slash.
func Glyph(d gridgraph.Direction, ascii bool) rune {
	if !d.Valid() {
		return '?'
	}
	if ascii {
		return lineRunesASCII[d]
	}
	return lineRunes[d]
}

// PathGlyphs returns the cells of p paired with their runes. Endpoints get
// a node rune; every other cell takes the rune of the move that entered it.
func PathGlyphs(p circuit.Path, ascii bool) ([]gridgraph.Cell, []rune) {
	cells := p.Cells()
	runes := make([]rune, len(cells))
	node := nodeRune
	if ascii {
		node = nodeRuneASCII
	}
	for i := range cells {
		switch {
		case i == 0 || i == len(cells)-1:
			runes[i] = node
		default:
			runes[i] = Glyph(p.Actions[i-1], ascii)
		}
	}
	return cells, runes
}

// RenderText draws paths onto a b-sized character grid, top row first
// (highest Y). Empty cells are '.' in ASCII mode and ' ' otherwise.
func RenderText(b gridgraph.Bounds, paths []circuit.Path, ascii bool) []string {
	empty := ' '
	if ascii {
		empty = emptyASCII
	}
	canvas := make([][]rune, b.Rows)
	for y := range canvas {
		row := make([]rune, b.Cols)
		for x := range row {
			row[x] = empty
		}
		canvas[y] = row
	}
	for _, p := range paths {
		cells, runes := PathGlyphs(p, ascii)
		for i, c := range cells {
			if b.Contains(c) {
				canvas[b.Rows-1-c.Y][c.X] = runes[i]
			}
		}
	}

	lines := make([]string, b.Rows)
	for i, row := range canvas {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return lines
}
