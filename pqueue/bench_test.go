package pqueue_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/circuit/pqueue"
)

// BenchmarkEnqueueDequeue measures a fill-then-drain cycle of 4096 entries.
// Complexity: O(n log n) per iteration.
func BenchmarkEnqueueDequeue(b *testing.B) {
	const n = 4096
	rng := rand.New(rand.NewSource(1))
	prios := make([]float64, n)
	for i := range prios {
		prios[i] = rng.Float64()
	}
	q := pqueue.New[int](pqueue.WithCapacity(n))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j, p := range prios {
			_ = q.Enqueue(j, p)
		}
		for !q.IsEmpty() {
			_ = q.Dequeue()
		}
	}
}
