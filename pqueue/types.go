package pqueue

import "errors"

// ErrNotPresent is returned by Update when asked to decrease the key of an
// element that is not currently queued.
var ErrNotPresent = errors.New("pqueue: element not present")

// Queue is the decrease-key-capable min-priority-queue contract shared by
// BinaryHeap and FIFO.
type Queue interface {
	// Insert adds id with the given key. FIFO ignores key and treats
	// Insert as enqueue.
	Insert(id string, key float64)

	// Update decreases id's key to a new value no greater than its current
	// one. Returns ErrNotPresent if id is not queued. FIFO is a no-op.
	Update(id string, key float64) error

	// Remove extracts and returns the minimum-key element (or the head of
	// the FIFO). ok is false if the queue is empty.
	Remove() (id string, ok bool)

	// IsEmpty reports whether the queue has no elements.
	IsEmpty() bool

	// Len reports the number of queued elements.
	Len() int
}
