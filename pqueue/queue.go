package pqueue

import "math"

// entry is one heap slot. seq is the insertion sequence number.
type entry[T any] struct {
	item     T
	priority float64
	seq      uint64
}

// Queue is a min-priority queue. The zero value is not usable; call New.
//
// Invariant: for every non-root index i, heap[parent(i)] is not "after"
// heap[i] under (priority, tie-break sequence) ordering.
type Queue[T any] struct {
	heap []entry[T]
	seq  uint64
	lifo bool
}

// New returns an empty Queue configured by opts.
func New[T any](opts ...Option) *Queue[T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Queue[T]{
		heap: make([]entry[T], 0, cfg.Capacity),
		lifo: cfg.TieBreak == TieLIFO,
	}
}

// Enqueue inserts item with the given priority.
// Returns ErrNaNPriority if priority is NaN; the queue is unchanged in that case.
// Complexity: O(log n).
func (q *Queue[T]) Enqueue(item T, priority float64) error {
	if math.IsNaN(priority) {
		return ErrNaNPriority
	}
	q.seq++
	q.heap = append(q.heap, entry[T]{item: item, priority: priority, seq: q.seq})
	q.bubbleUp(len(q.heap) - 1)

	return nil
}

// Dequeue removes and returns the item with the smallest priority.
// Panics with ErrEmptyQueue if the queue is empty.
// Complexity: O(log n).
func (q *Queue[T]) Dequeue() T {
	item, _ := q.DequeueWithPriority()

	return item
}

// DequeueWithPriority is Dequeue that also reports the removed priority.
func (q *Queue[T]) DequeueWithPriority() (T, float64) {
	n := len(q.heap)
	if n == 0 {
		panic(ErrEmptyQueue)
	}
	top := q.heap[0]
	last := q.heap[n-1]
	var zero entry[T]
	q.heap[n-1] = zero // release payload reference
	q.heap = q.heap[:n-1]
	if n > 1 {
		q.heap[0] = last
		q.sinkDown(0)
	}

	return top.item, top.priority
}

// Peek returns the minimum item and its priority without removing it.
// ok is false when the queue is empty.
func (q *Queue[T]) Peek() (item T, priority float64, ok bool) {
	if len(q.heap) == 0 {
		return item, 0, false
	}

	return q.heap[0].item, q.heap[0].priority, true
}

// IsEmpty reports whether the queue holds no entries.
func (q *Queue[T]) IsEmpty() bool { return len(q.heap) == 0 }

// Len returns the number of queued entries.
func (q *Queue[T]) Len() int { return len(q.heap) }

// Reset drops all entries but keeps the backing array.
func (q *Queue[T]) Reset() {
	clear(q.heap)
	q.heap = q.heap[:0]
	q.seq = 0
}

// before reports whether a must be dequeued ahead of b.
func (q *Queue[T]) before(a, b entry[T]) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if q.lifo {
		return a.seq > b.seq
	}

	return a.seq < b.seq
}

func (q *Queue[T]) bubbleUp(i int) {
	node := q.heap[i]
	for i > 0 {
		parent := (i - 1) / 2
		if !q.before(node, q.heap[parent]) {
			break
		}
		q.heap[i] = q.heap[parent]
		i = parent
	}
	q.heap[i] = node
}

func (q *Queue[T]) sinkDown(i int) {
	n := len(q.heap)
	node := q.heap[i]
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		child := left
		if right := left + 1; right < n && q.before(q.heap[right], q.heap[left]) {
			child = right
		}
		if !q.before(q.heap[child], node) {
			break
		}
		q.heap[i] = q.heap[child]
		i = child
	}
	q.heap[i] = node
}
