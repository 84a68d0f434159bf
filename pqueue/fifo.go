package pqueue

// FIFO is the trivial unweighted-BFS variant of Queue: Insert enqueues,
// ignoring key; Update is a no-op (unweighted BFS never revisits a
// distance once set); Remove dequeues the head. This makes
// unweighted Brandes/BFS O(V+E) per source rather than O((V+E) log V).
type FIFO struct {
	items  []string
	queued map[string]struct{}
}

// NewFIFO returns an empty FIFO queue.
func NewFIFO() *FIFO {
	return &FIFO{queued: make(map[string]struct{})}
}

// Insert enqueues id, ignoring key. Re-inserting an already-queued id is a
// no-op.
func (f *FIFO) Insert(id string, _ float64) {
	if _, ok := f.queued[id]; ok {
		return
	}
	f.queued[id] = struct{}{}
	f.items = append(f.items, id)
}

// Update is a no-op for FIFO: unweighted BFS never decreases a distance
// once fixed by first discovery.
func (f *FIFO) Update(_ string, _ float64) error { return nil }

// Remove dequeues the head of the FIFO.
func (f *FIFO) Remove() (string, bool) {
	if len(f.items) == 0 {
		return "", false
	}
	id := f.items[0]
	f.items = f.items[1:]
	delete(f.queued, id)

	return id, true
}

// IsEmpty reports whether the queue has no elements.
func (f *FIFO) IsEmpty() bool { return len(f.items) == 0 }

// Len reports the number of queued elements.
func (f *FIFO) Len() int { return len(f.items) }
