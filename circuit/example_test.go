package circuit_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/circuit/circuit"
)

// ExampleSession_Commit commits the only possible path on a 2×1 strip, after
// which no region is left to sample from.
func ExampleSession_Commit() {
	sess, err := circuit.NewSession(2, 1, circuit.WithMaxAttempts(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	p, err := sess.Commit(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cells:", len(p.Cells()), "cost:", p.Cost)
	fmt.Println("occupied:", sess.Stats().Occupied)

	_, err = sess.Commit(context.Background())
	fmt.Println("full:", errors.Is(err, circuit.ErrNoFreeCells))
	// Output:
	// cells: 2 cost: 1
	// occupied: 2
	// full: true
}
