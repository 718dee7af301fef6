// SPDX-License-Identifier: MIT

// Package frontier provides the priority structures that order
// discovered-but-unfinalized nodes by tentative distance.
//
// Two interchangeable implementations exist:
//
//   - Heap: a binary min-heap on container/heap (the default).
//   - Tree: an ordered B-tree from github.com/tidwall/btree.
//
// Both follow the "lazy decrease-key" discipline used by the searches:
// an improved distance is pushed as a new Entry and the old one stays in
// place until it is popped and recognized as stale. Nothing is ever removed
// from the middle of a frontier.
//
// Ordering is by ascending Dist; equal distances pop in ascending Node
// order, which makes every sequential search reproducible.
//
// Frontiers are not safe for concurrent use. The parallel searches guard
// their frontier with the same lock that guards the distance table.
package frontier

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/shortpath/graph"
)

// ErrUnknownKind is returned by ParseKind for an unrecognized name.
var ErrUnknownKind = errors.New("frontier: unknown kind")

// Entry is a (node, distance-at-insertion) pair.
type Entry struct {
	Node graph.Node
	Dist int64
}

// less orders entries by distance, then node id.
func less(a, b Entry) bool {
	if a.Dist != b.Dist {
		return a.Dist < b.Dist
	}

	return a.Node < b.Node
}

// Frontier is a min-priority structure of Entries.
type Frontier interface {
	// Push inserts e. Duplicates of the same node are allowed.
	Push(e Entry)
	// Pop removes and returns the minimum entry; ok is false when empty.
	Pop() (e Entry, ok bool)
	// Peek returns the minimum entry without removing it.
	Peek() (e Entry, ok bool)
	// Len returns the number of entries, stale ones included.
	Len() int
}

// Kind selects a Frontier implementation.
type Kind uint8

const (
	// Heap is a binary heap (container/heap).
	Heap Kind = iota
	// Tree is a B-tree (github.com/tidwall/btree).
	Tree
)

// String returns "heap" or "tree".
func (k Kind) String() string {
	switch k {
	case Heap:
		return "heap"
	case Tree:
		return "tree"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind maps "heap" or "tree" (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "heap", "":
		return Heap, nil
	case "tree", "btree":
		return Tree, nil
	default:
		return Heap, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// New returns an empty Frontier of the given kind. capacity is a sizing
// hint and may be zero. Unknown kinds fall back to Heap.
func New(kind Kind, capacity int) Frontier {
	if kind == Tree {
		return NewTree()
	}

	return NewHeap(capacity)
}
