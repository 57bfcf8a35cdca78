package pqueue

// IndexedHeap is a binary min-heap in which each vertex occupies at most one
// slot. pos[v] records the slot of v (or -1), which makes Set an O(log n)
// in-place decrease-key. Push on a vertex already queued behaves like Set.
type IndexedHeap struct {
	items []entry
	pos   []int
}

// NewIndexedHeap returns an empty IndexedHeap sized for vertices [0, n).
// Larger vertex indices grow the position table on demand.
func NewIndexedHeap(n int) *IndexedHeap {
	h := &IndexedHeap{items: make([]entry, 0, n)}
	h.grow(n)
	return h
}

func (h *IndexedHeap) grow(n int) {
	for len(h.pos) < n {
		h.pos = append(h.pos, -1)
	}
}

// Len returns the number of queued vertices.
func (h *IndexedHeap) Len() int { return len(h.items) }

// Contains reports whether v is queued.
func (h *IndexedHeap) Contains(v int) bool {
	return v >= 0 && v < len(h.pos) && h.pos[v] >= 0
}

// Push inserts v, or updates its slot if already queued.
func (h *IndexedHeap) Push(v int, prio float64) { h.Set(v, prio) }

// Set inserts v with prio, or moves its slot to prio and restores the heap
// invariant. Complexity: O(log n).
func (h *IndexedHeap) Set(v int, prio float64) {
	h.grow(v + 1)
	if i := h.pos[v]; i >= 0 {
		h.items[i].prio = prio
		h.fix(i)
		return
	}
	h.items = append(h.items, entry{v: v, prio: prio})
	i := len(h.items) - 1
	h.pos[v] = i
	h.up(i)
}

// Pop removes the smallest entry. Complexity: O(log n).
func (h *IndexedHeap) Pop() (int, float64) {
	n := len(h.items) - 1
	h.swap(0, n)
	h.down(0, n)
	e := h.items[n]
	h.items = h.items[:n]
	h.pos[e.v] = -1

	return e.v, e.prio
}

// Reset empties the heap. Only queued positions are cleared, so the cost
// is proportional to Len, not to the vertex range.
func (h *IndexedHeap) Reset() {
	for _, e := range h.items {
		h.pos[e.v] = -1
	}
	h.items = h.items[:0]
}

func (h *IndexedHeap) fix(i int) {
	if !h.down(i, len(h.items)) {
		h.up(i)
	}
}

func (h *IndexedHeap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].v] = i
	h.pos[h.items[j].v] = j
}

func (h *IndexedHeap) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !less(h.items[j], h.items[i]) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *IndexedHeap) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && less(h.items[j2], h.items[j1]) {
			j = j2 // right child
		}
		if !less(h.items[j], h.items[i]) {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i > i0
}

var _ Updater = (*IndexedHeap)(nil)
