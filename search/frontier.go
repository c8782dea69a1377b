package search

import (
	"container/heap"

	"github.com/katalvlaran/pathfinder/maze"
)

// entry is a frontier element: a NodePath plus the bookkeeping the ordered
// frontiers need. g is the cumulative cost of entry.np.Path, f its priority
// and seq the insertion counter used to break priority ties.
type entry struct {
	np  maze.NodePath
	g   int
	f   int
	seq uint64
}

// frontier is the working set an algorithm draws from; its pop order defines the algorithm.
type frontier interface {
	push(e entry)
	pop() entry
	len() int
}

// stack is a LIFO frontier (depth-first).
type stack []entry

func (s *stack) push(e entry) { *s = append(*s, e) }

func (s *stack) pop() entry {
	old := *s
	e := old[len(old)-1]
	old[len(old)-1] = entry{} // drop the path reference
	*s = old[:len(old)-1]
	return e
}

func (s *stack) len() int { return len(*s) }

// queue is a FIFO frontier (breadth-first). head indexes the next item;
// the consumed prefix is released once it dominates the slice.
type queue struct {
	items []entry
	head  int
}

func (q *queue) push(e entry) { q.items = append(q.items, e) }

func (q *queue) pop() entry {
	e := q.items[q.head]
	q.items[q.head] = entry{}
	q.head++
	if q.head > len(q.items)/2 && q.head > 64 {
		q.items = append(q.items[:0:0], q.items[q.head:]...)
		q.head = 0
	}
	return e
}

func (q *queue) len() int { return len(q.items) - q.head }

// priorityQueue is a min-heap frontier ordered by f, then (optionally) by
// larger g, then by insertion order. It follows the lazy decrease-key
// pattern: duplicates are pushed and stale ones skipped at pop time.
type priorityQueue struct {
	h entryHeap
}

func newPriorityQueue(preferDeep bool) *priorityQueue {
	return &priorityQueue{h: entryHeap{preferDeep: preferDeep}}
}

func (pq *priorityQueue) push(e entry) { heap.Push(&pq.h, e) }
func (pq *priorityQueue) pop() entry   { return heap.Pop(&pq.h).(entry) }
func (pq *priorityQueue) len() int     { return pq.h.Len() }

// entryHeap implements heap.Interface.
type entryHeap struct {
	items      []entry
	preferDeep bool // on equal f, pop the entry with the larger g first
}

// Len returns the number of items in the heap.
func (h entryHeap) Len() int { return len(h.items) }

// Less orders by f, then g (descending when preferDeep), then seq.
func (h entryHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if h.preferDeep && a.g != b.g {
		return a.g > b.g
	}
	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (h entryHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push adds x onto the heap. Called by heap.Push; x must be an entry.
func (h *entryHeap) Push(x interface{}) { h.items = append(h.items, x.(entry)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (h *entryHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	e := old[n-1]
	old[n-1] = entry{}
	h.items = old[:n-1]

	return e
}
