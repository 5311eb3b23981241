package astar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circuit/astar"
)

// graphProblem builds a Problem over a small explicit graph of string states.
func graphProblem(edges map[string]map[string]float64, h map[string]float64, goal string) astar.Problem[string, string] {
	return astar.Problem[string, string]{
		Start:  "S",
		IsGoal: func(s string) bool { return s == goal },
		Successors: func(s string) []astar.Step[string, string] {
			var out []astar.Step[string, string]
			for _, to := range []string{"A", "B", "C", "G"} {
				if c, ok := edges[s][to]; ok {
					out = append(out, astar.Step[string, string]{State: to, Action: s + ">" + to, Cost: c})
				}
			}
			return out
		},
		Heuristic: func(s string) float64 { return h[s] },
	}
}

func TestSearch_Validation(t *testing.T) {
	p := graphProblem(nil, nil, "G")

	q := p
	q.IsGoal = nil
	_, err := astar.Search(q)
	require.ErrorIs(t, err, astar.ErrNilGoal)

	q = p
	q.Successors = nil
	_, err = astar.Search(q)
	require.ErrorIs(t, err, astar.ErrNilSuccessors)

	for _, bad := range []float64{-1, math.NaN()} {
		q = p
		q.MaxCost = bad
		_, err = astar.Search(q)
		require.ErrorIs(t, err, astar.ErrBadMaxCost)
	}
}

// TestSearch_CutoffModes builds a graph where a misleading heuristic pulls an
// over-ceiling node to the front of the frontier while a cheap goal path
// remains queued.
//
//	S --1--> A --1--> G     (cost 2)
//	S --5--> B              (h(B) = -10)
//
// With MaxCost 3, CutoffAbort stops at B; CutoffPrune skips B and finds G.
func TestSearch_CutoffModes(t *testing.T) {
	edges := map[string]map[string]float64{
		"S": {"A": 1, "B": 5},
		"A": {"G": 1},
	}
	h := map[string]float64{"B": -10}
	p := graphProblem(edges, h, "G")
	p.MaxCost = 3

	res, err := astar.Search(p)
	require.NoError(t, err)
	require.Equal(t, astar.StatusCostExceeded, res.Status)
	require.False(t, res.Found())

	p.Cutoff = astar.CutoffPrune
	res, err = astar.Search(p)
	require.NoError(t, err)
	require.Equal(t, astar.StatusFound, res.Status)
	require.Equal(t, []string{"S>A", "A>G"}, res.Actions)
	require.Equal(t, 2.0, res.Cost)
}

// TestSearch_NilHeuristic runs uniform-cost search and picks the cheaper branch.
func TestSearch_NilHeuristic(t *testing.T) {
	edges := map[string]map[string]float64{
		"S": {"A": 4, "B": 1},
		"A": {"G": 1},
		"B": {"C": 1},
		"C": {"G": 1},
	}
	p := graphProblem(edges, nil, "G")
	p.Heuristic = nil

	res, err := astar.Search(p)
	require.NoError(t, err)
	require.Equal(t, []string{"S>B", "B>C", "C>G"}, res.Actions)
	require.Equal(t, 3.0, res.Cost)
}

func TestSearch_NaNPriority(t *testing.T) {
	edges := map[string]map[string]float64{"S": {"A": 1}}
	p := graphProblem(edges, nil, "G")
	p.Heuristic = func(string) float64 { return math.NaN() }

	_, err := astar.Search(p)
	require.ErrorIs(t, err, astar.ErrBadPriority)
}

func TestSearch_NoSuccessors(t *testing.T) {
	res, err := astar.Search(graphProblem(map[string]map[string]float64{}, nil, "G"))
	require.NoError(t, err)
	require.Equal(t, astar.StatusNoPath, res.Status)
	require.Equal(t, 1, res.Expanded)
	require.Equal(t, 1, res.Dequeued)
}

func TestParseCutoffMode(t *testing.T) {
	m, err := astar.ParseCutoffMode("prune")
	require.NoError(t, err)
	require.Equal(t, astar.CutoffPrune, m)
	require.Equal(t, "prune", m.String())

	m, err = astar.ParseCutoffMode("")
	require.NoError(t, err)
	require.Equal(t, astar.CutoffAbort, m)

	_, err = astar.ParseCutoffMode("exact")
	require.Error(t, err)
	require.Equal(t, "cost-exceeded", astar.StatusCostExceeded.String())
}
