// Package pqueue provides the min-priority structures used by priority-driven
// shortest-path searches. A queue is caller-owned working state: it is handed
// to an algorithm run, mutated only during that run, and returned empty, so
// one queue can be reused across many runs without reallocating.
//
// Every implementation orders entries by (priority, vertex) ascending, so
// equal priorities pop in ascending vertex index and all implementations
// pop identical sequences for identical operation sequences.
//
// Queues are not safe for concurrent use.
package pqueue

// Queue is a min-priority queue of vertex indices.
type Queue interface {
	// Len returns the number of entries, stale ones included.
	Len() int
	// Push inserts v with priority prio. Whether a vertex may occupy
	// several entries is up to the implementation.
	Push(v int, prio float64)
	// Pop removes and returns the entry with the smallest (prio, v).
	// Pop on an empty queue panics.
	Pop() (v int, prio float64)
	// Reset removes every entry, keeping allocated capacity.
	Reset()
}

// Updater is a Queue in which each vertex occupies at most one entry.
type Updater interface {
	Queue
	// Set inserts v, or moves its existing entry to prio in place.
	Set(v int, prio float64)
	// Contains reports whether v currently has an entry.
	Contains(v int) bool
}

// entry is one queued (vertex, priority) pair.
type entry struct {
	v    int
	prio float64
}

// less orders entries by priority, then by vertex index.
func less(a, b entry) bool {
	if a.prio != b.prio {
		return a.prio < b.prio
	}
	return a.v < b.v
}
