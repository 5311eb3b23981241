package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circuit/circuit"
	"github.com/katalvlaran/circuit/gridgraph"
)

func TestGlyph(t *testing.T) {
	require.Equal(t, '/', Glyph(gridgraph.RightUp, true))
	require.Equal(t, '/', Glyph(gridgraph.LeftDown, true))
	require.Equal(t, '\\', Glyph(gridgraph.LeftUp, true))
	require.Equal(t, '|', Glyph(gridgraph.Down, true))
	require.Equal(t, '─', Glyph(gridgraph.Left, false))
	require.Equal(t, '?', Glyph(gridgraph.Direction(99), false))
}

func TestRenderText(t *testing.T) {
	b := gridgraph.Bounds{Cols: 4, Rows: 3}
	paths := []circuit.Path{
		{
			Start:   gridgraph.Cell{X: 0, Y: 0},
			Actions: []gridgraph.Direction{gridgraph.RightUp, gridgraph.RightUp, gridgraph.Right},
		},
	}
	require.Equal(t, []string{
		"../o",
		"./..",
		"o...",
	}, RenderText(b, paths, true))

	lines := RenderText(b, nil, false)
	require.Len(t, lines, 3)
	for _, l := range lines {
		require.Empty(t, l)
	}
}

func TestPathGlyphs_SingleMove(t *testing.T) {
	cells, runes := PathGlyphs(circuit.Path{
		Start:   gridgraph.Cell{X: 1, Y: 1},
		Actions: []gridgraph.Direction{gridgraph.Up},
	}, false)
	require.Equal(t, []gridgraph.Cell{{X: 1, Y: 1}, {X: 1, Y: 2}}, cells)
	require.Equal(t, []rune{'●', '●'}, runes)
}
