package astar_test

import (
	"fmt"

	"github.com/katalvlaran/circuit/astar"
	"github.com/katalvlaran/circuit/gridgraph"
)

// ExampleSearch finds the diagonal on an empty 5×5 grid.
func ExampleSearch() {
	g, _ := gridgraph.NewGrid(5, 5, gridgraph.NewOccupancy())
	goal := gridgraph.Cell{X: 4, Y: 4}

	res, err := astar.Search(astar.Problem[gridgraph.Cell, gridgraph.Direction]{
		Start:  gridgraph.Cell{},
		IsGoal: func(c gridgraph.Cell) bool { return c == goal },
		Successors: func(c gridgraph.Cell) []astar.Step[gridgraph.Cell, gridgraph.Direction] {
			var out []astar.Step[gridgraph.Cell, gridgraph.Direction]
			for _, s := range g.Successors(c) {
				out = append(out, astar.Step[gridgraph.Cell, gridgraph.Direction]{State: s.Cell, Action: s.Dir, Cost: s.Cost})
			}
			return out
		},
		Heuristic: gridgraph.Euclidean(goal),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Status, res.Actions)
	fmt.Printf("cost=%.4f\n", res.Cost)

	// Output:
	// found [right-up right-up right-up right-up]
	// cost=5.6569
}
