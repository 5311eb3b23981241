package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/circuit/gridgraph"
)

// BenchmarkSuccessors measures successor generation on a 200×200 grid with
// roughly 30% occupied cells.
// Complexity: O(1) per call.
func BenchmarkSuccessors(b *testing.B) {
	const n = 200
	rng := rand.New(rand.NewSource(42))
	occ := gridgraph.NewOccupancy()
	for i := 0; i < n*n*3/10; i++ {
		occ.Add(gridgraph.Cell{X: rng.Intn(n), Y: rng.Intn(n)})
	}
	g, err := gridgraph.NewGrid(n, n, occ)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	buf := make([]gridgraph.Successor, 0, 8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = g.AppendSuccessors(buf[:0], gridgraph.Cell{X: i % n, Y: (i / n) % n})
	}
}

// BenchmarkFreeComponents measures component labelling on the same grid.
// Complexity: O(W×H).
func BenchmarkFreeComponents(b *testing.B) {
	const n = 200
	rng := rand.New(rand.NewSource(42))
	occ := gridgraph.NewOccupancy()
	for i := 0; i < n*n*3/10; i++ {
		occ.Add(gridgraph.Cell{X: rng.Intn(n), Y: rng.Intn(n)})
	}
	g, err := gridgraph.NewGrid(n, n, occ)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.FreeComponents()
	}
}
