// SPDX-License-Identifier: MIT

package frontier

import (
	"container/heap"
)

// BinaryHeap is a Frontier backed by container/heap.
//
// Complexity: Push/Pop O(log N), Peek/Len O(1), where N counts stale
// entries too (N ≤ V + E under lazy decrease-key).
type BinaryHeap struct {
	items entryHeap
}

// NewHeap returns an empty BinaryHeap with room for capacity entries.
func NewHeap(capacity int) *BinaryHeap {
	if capacity < 0 {
		capacity = 0
	}

	return &BinaryHeap{items: make(entryHeap, 0, capacity)}
}

// Push inserts e.
func (h *BinaryHeap) Push(e Entry) { heap.Push(&h.items, e) }

// Pop removes and returns the minimum entry.
func (h *BinaryHeap) Pop() (Entry, bool) {
	if len(h.items) == 0 {
		return Entry{}, false
	}

	return heap.Pop(&h.items).(Entry), true
}

// Peek returns the minimum entry without removing it.
func (h *BinaryHeap) Peek() (Entry, bool) {
	if len(h.items) == 0 {
		return Entry{}, false
	}

	return h.items[0], true
}

// Len returns the number of stored entries.
func (h *BinaryHeap) Len() int { return len(h.items) }

// entryHeap implements heap.Interface over Entry values.
type entryHeap []Entry

func (h entryHeap) Len() int           { return len(h) }
func (h entryHeap) Less(i, j int) bool { return less(h[i], h[j]) }
func (h entryHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be an Entry.
func (h *entryHeap) Push(x any) { *h = append(*h, x.(Entry)) }

// Pop is called by heap.Pop.
func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
