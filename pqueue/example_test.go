package pqueue_test

import (
	"fmt"

	"github.com/katalvlaran/circuit/pqueue"
)

// ExampleQueue shows priority ordering with an insertion-order tie-break.
func ExampleQueue() {
	q := pqueue.New[string]()
	_ = q.Enqueue("diagonal", 1.414)
	_ = q.Enqueue("right", 1)
	_ = q.Enqueue("up", 1)

	for !q.IsEmpty() {
		fmt.Println(q.Dequeue())
	}

	// Output:
	// right
	// up
	// diagonal
}
