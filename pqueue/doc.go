// Package pqueue implements a generic min-priority queue backed by a dense
// binary heap.
//
// What:
//
//   - Queue[T] stores arbitrary payloads keyed by a float64 priority.
//   - Dequeue always returns the payload with the smallest priority.
//   - Equal priorities are ordered by insertion sequence (FIFO by default,
//     LIFO via WithTieBreak), so runs over the same input are reproducible.
//
// Complexity:
//
//   - Enqueue: O(log n)
//   - Dequeue: O(log n)
//   - Peek, IsEmpty, Len: O(1)
//
// Errors:
//
//   - ErrNaNPriority: Enqueue was given a NaN priority.
//   - ErrEmptyQueue:  Dequeue was called on an empty queue. This is a
//     contract violation and is raised as a panic; callers check IsEmpty first.
//
// Queue is not safe for concurrent use.
package pqueue
