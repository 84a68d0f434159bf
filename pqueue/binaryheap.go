package pqueue

import "container/heap"

// heapItem is one slot of the underlying container/heap array.
type heapItem struct {
	id    string
	key   float64
	index int // current slot, maintained by Swap for O(log n) decrease-key
}

// innerHeap implements container/heap.Interface over []*heapItem.
type innerHeap []*heapItem

func (h innerHeap) Len() int            { return len(h) }
func (h innerHeap) Less(i, j int) bool  { return h[i].key < h[j].key }
func (h innerHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *innerHeap) Push(x interface{}) { item := x.(*heapItem); item.index = len(*h); *h = append(*h, item) }
func (h *innerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}

// BinaryHeap is a decrease-key min-heap keyed by float64, satisfying Queue.
// Insert/Update/Remove are all O(log n); IsEmpty/Len are O(1). An index map
// from id to its current heap slot makes Update a real decrease-key
// (heap.Fix) rather than a "push a duplicate, ignore stale pops" lazy
// strategy — Brandes' accumulation phase needs every vertex settled exactly
// once, so a non-lazy queue keeps the forward phase's settle order free of
// duplicates.
type BinaryHeap struct {
	items innerHeap
	index map[string]*heapItem
}

// NewBinaryHeap returns an empty BinaryHeap.
func NewBinaryHeap() *BinaryHeap {
	return &BinaryHeap{index: make(map[string]*heapItem)}
}

// Insert adds id with the given key. Re-inserting an already-queued id
// updates its key in place (equivalent to Update, without the presence
// check), matching a relax step that inserts-or-decreases.
func (h *BinaryHeap) Insert(id string, key float64) {
	if item, ok := h.index[id]; ok {
		if key < item.key {
			item.key = key
			heap.Fix(&h.items, item.index)
		}

		return
	}
	item := &heapItem{id: id, key: key}
	h.index[id] = item
	heap.Push(&h.items, item)
}

// Update decreases id's key. Returns ErrNotPresent if id is not queued.
func (h *BinaryHeap) Update(id string, key float64) error {
	item, ok := h.index[id]
	if !ok {
		return ErrNotPresent
	}
	if key < item.key {
		item.key = key
		heap.Fix(&h.items, item.index)
	}

	return nil
}

// Remove extracts the minimum-key element.
func (h *BinaryHeap) Remove() (string, bool) {
	if len(h.items) == 0 {
		return "", false
	}
	item := heap.Pop(&h.items).(*heapItem)
	delete(h.index, item.id)

	return item.id, true
}

// IsEmpty reports whether the heap has no elements.
func (h *BinaryHeap) IsEmpty() bool { return len(h.items) == 0 }

// Len reports the number of queued elements.
func (h *BinaryHeap) Len() int { return len(h.items) }
