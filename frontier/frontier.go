// Package frontier implements the priority queue of coordinates awaiting
// expansion in grid search.
//
// Entries are ordered by Priority ascending; ties fall back to coordinate
// order (row, then column) so that every search is deterministic.
//
// There is no decrease-key. A coordinate may be pushed several times with
// different priorities; the caller decides whether a popped entry is stale
// by consulting its own bookkeeping ("lazy decrease-key").
//
// Complexity:
//
//   - Push, PopMin: O(log n)
//   - Peek, Len, IsEmpty: O(1)
package frontier

import (
	"container/heap"

	"github.com/katalvlaran/mazepath/grid"
)

// Entry is a coordinate queued with its priority.
type Entry struct {
	Priority int
	Coord    grid.Coordinate
}

// less defines the total order used by the heap.
func (e Entry) less(o Entry) bool {
	if e.Priority != o.Priority {
		return e.Priority < o.Priority
	}
	return e.Coord.Less(o.Coord)
}

// Queue is a binary min-heap of Entry values. The zero value is ready to use.
type Queue struct {
	items entryHeap
}

// New returns a Queue with room for capacity entries.
func New(capacity int) *Queue {
	return &Queue{items: make(entryHeap, 0, capacity)}
}

// Push adds e to the queue.
func (q *Queue) Push(e Entry) { heap.Push(&q.items, e) }

// PopMin removes and returns the smallest entry. ok is false when the queue is empty.
func (q *Queue) PopMin() (e Entry, ok bool) {
	if len(q.items) == 0 {
		return Entry{}, false
	}
	return heap.Pop(&q.items).(Entry), true
}

// Peek returns the smallest entry without removing it.
func (q *Queue) Peek() (Entry, bool) {
	if len(q.items) == 0 {
		return Entry{}, false
	}
	return q.items[0], true
}

// Len returns the number of queued entries, stale ones included.
func (q *Queue) Len() int { return len(q.items) }

// IsEmpty reports whether the queue holds no entries.
func (q *Queue) IsEmpty() bool { return len(q.items) == 0 }

// entryHeap implements heap.Interface over Entry values.
type entryHeap []Entry

func (h entryHeap) Len() int           { return len(h) }
func (h entryHeap) Less(i, j int) bool { return h[i].less(h[j]) }
func (h entryHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be an Entry.
func (h *entryHeap) Push(x any) { *h = append(*h, x.(Entry)) }

// Pop is called by heap.Pop and returns the last element.
func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
