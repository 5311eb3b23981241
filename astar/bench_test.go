package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/circuit/astar"
	"github.com/katalvlaran/circuit/gridgraph"
)

// BenchmarkSearch measures corner-to-corner search on a 120×120 grid with
// 20% random obstacles.
// Complexity: O(E log E).
func BenchmarkSearch(b *testing.B) {
	const n = 120
	rng := rand.New(rand.NewSource(5))
	occ := gridgraph.NewOccupancy()
	for i := 0; i < n*n/5; i++ {
		c := cell{X: rng.Intn(n), Y: rng.Intn(n)}
		if c != (cell{X: 0, Y: 0}) && c != (cell{X: n - 1, Y: n - 1}) {
			occ.Add(c)
		}
	}
	g, err := gridgraph.NewGrid(n, n, occ)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	p := gridProblem(g, cell{X: 0, Y: 0}, cell{X: n - 1, Y: n - 1}, gridgraph.Euclidean)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.Search(p); err != nil {
			b.Fatal(err)
		}
	}
}
