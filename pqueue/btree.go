package pqueue

import "github.com/tidwall/btree"

// BTree is an ordered-set queue backed by a B-tree keyed by (prio, v).
// It supports both policies: Push adds an independent entry (a vertex may
// appear under several priorities), while Set keeps at most one tracked
// entry per vertex by deleting the previous key before inserting the new one.
// Mixing Push and Set for the same vertex within one run is not supported.
type BTree struct {
	tree  *btree.BTreeG[entry]
	keyed map[int]float64 // priority of the entry tracked by Set, per vertex
}

// NewBTree returns an empty BTree queue.
func NewBTree() *BTree {
	return &BTree{
		tree:  btree.NewBTreeG[entry](less),
		keyed: make(map[int]float64),
	}
}

// Len returns the number of entries.
func (b *BTree) Len() int { return b.tree.Len() }

// Contains reports whether v has an entry tracked by Set.
func (b *BTree) Contains(v int) bool {
	_, ok := b.keyed[v]
	return ok
}

// Push inserts (v, prio). Identical (prio, v) pairs collapse into one entry.
// Complexity: O(log n).
func (b *BTree) Push(v int, prio float64) {
	b.tree.Set(entry{v: v, prio: prio})
}

// Set inserts v or replaces its tracked entry. Complexity: O(log n).
func (b *BTree) Set(v int, prio float64) {
	if old, ok := b.keyed[v]; ok {
		b.tree.Delete(entry{v: v, prio: old})
	}
	b.tree.Set(entry{v: v, prio: prio})
	b.keyed[v] = prio
}

// Pop removes the smallest entry. Pop on an empty queue panics.
// Complexity: O(log n).
func (b *BTree) Pop() (int, float64) {
	e, ok := b.tree.PopMin()
	if !ok {
		panic("pqueue: Pop on empty BTree")
	}
	if p, tracked := b.keyed[e.v]; tracked && p == e.prio {
		delete(b.keyed, e.v)
	}
	return e.v, e.prio
}

// Reset empties the queue.
func (b *BTree) Reset() {
	b.tree.Clear()
	clear(b.keyed)
}

var _ Updater = (*BTree)(nil)
