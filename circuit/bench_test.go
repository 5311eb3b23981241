package circuit_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/circuit/circuit"
)

// BenchmarkFill measures committing 30 paths on a fresh 80×40 board.
func BenchmarkFill(b *testing.B) {
	ctx := context.Background()
	for i := 0; i < b.N; i++ {
		sess, err := circuit.NewSession(80, 40, circuit.WithSeed(int64(i+1)))
		if err != nil {
			b.Fatal(err)
		}
		if _, err := sess.Fill(ctx, 30); err != nil {
			b.Fatal(err)
		}
	}
}
