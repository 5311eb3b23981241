package pqueue

import "errors"

// Sentinel errors for queue operations.
var (
	// ErrNaNPriority indicates a NaN priority was passed to Enqueue.
	ErrNaNPriority = errors.New("pqueue: priority must not be NaN")
	// ErrEmptyQueue indicates Dequeue was called on an empty queue.
	ErrEmptyQueue = errors.New("pqueue: dequeue on empty queue")
	// ErrBadCapacity indicates a negative capacity hint.
	ErrBadCapacity = errors.New("pqueue: capacity must be non-negative")
)

// TieBreak selects how entries with equal priority are ordered.
type TieBreak int

const (
	// TieFIFO dequeues the earliest inserted entry first.
	TieFIFO TieBreak = iota
	// TieLIFO dequeues the most recently inserted entry first.
	TieLIFO
)

// String returns the lower-case name of the tie-break policy.
func (t TieBreak) String() string {
	switch t {
	case TieFIFO:
		return "fifo"
	case TieLIFO:
		return "lifo"
	default:
		return "unknown"
	}
}

// Options configures a Queue.
type Options struct {
	Capacity int      // Initial capacity of the backing array
	TieBreak TieBreak // Secondary ordering for equal priorities
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns Options with Capacity=0 and TieBreak=TieFIFO.
func DefaultOptions() Options {
	return Options{
		Capacity: 0,
		TieBreak: TieFIFO,
	}
}

// WithCapacity preallocates room for n entries.
// Panics with ErrBadCapacity if n < 0.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
	}
}

// WithTieBreak sets the ordering used between equal priorities.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) {
		o.TieBreak = t
	}
}
