package pqueue

import "container/heap"

// Heap is a lazy binary min-heap: a vertex pushed twice occupies two
// entries. It is the natural queue for naive (no decrease-key) searches,
// which discard stale entries on Pop.
type Heap struct {
	items entryHeap
}

// NewHeap returns an empty Heap with room for capacity entries.
func NewHeap(capacity int) *Heap {
	return &Heap{items: make(entryHeap, 0, capacity)}
}

// Len returns the number of entries, stale ones included.
func (h *Heap) Len() int { return len(h.items) }

// Push inserts (v, prio). Complexity: O(log n).
func (h *Heap) Push(v int, prio float64) {
	heap.Push(&h.items, entry{v: v, prio: prio})
}

// Pop removes the smallest entry. Complexity: O(log n).
func (h *Heap) Pop() (int, float64) {
	e := heap.Pop(&h.items).(entry)
	return e.v, e.prio
}

// Reset empties the heap, keeping its capacity.
func (h *Heap) Reset() { h.items = h.items[:0] }

// entryHeap adapts []entry to container/heap.
type entryHeap []entry

// Len returns the number of items in the heap.
func (eh entryHeap) Len() int { return len(eh) }

// Less defines the comparison: smaller (prio, v) → higher priority.
func (eh entryHeap) Less(i, j int) bool { return less(eh[i], eh[j]) }

// Swap swaps two elements in the heap.
func (eh entryHeap) Swap(i, j int) { eh[i], eh[j] = eh[j], eh[i] }

// Push appends x; called by heap.Push.
func (eh *entryHeap) Push(x interface{}) { *eh = append(*eh, x.(entry)) }

// Pop removes the last element; called by heap.Pop.
func (eh *entryHeap) Pop() interface{} {
	old := *eh
	n := len(old)
	item := old[n-1]
	*eh = old[:n-1]

	return item
}

var _ Queue = (*Heap)(nil)
