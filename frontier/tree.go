// SPDX-License-Identifier: MIT

package frontier

import (
	"github.com/tidwall/btree"
)

// treeDegree is the B-tree node degree; tidwall/btree's own default.
const treeDegree = 32

// treeItem makes every pushed entry unique inside the ordered set: two
// pushes of the same (node, dist) are distinct items.
type treeItem struct {
	Entry
	seq uint64
}

func treeLess(a, b treeItem) bool {
	if a.Dist != b.Dist {
		return a.Dist < b.Dist
	}
	if a.Node != b.Node {
		return a.Node < b.Node
	}

	return a.seq < b.seq
}

// BTree is a Frontier backed by an ordered B-tree. The tree's internal
// locking is disabled; callers synchronize externally.
//
// Complexity: Push/Pop O(log N), Peek O(log N), Len O(1).
type BTree struct {
	tree *btree.BTreeG[treeItem]
	seq  uint64
}

// NewTree returns an empty BTree.
func NewTree() *BTree {
	return &BTree{
		tree: btree.NewBTreeGOptions(treeLess, btree.Options{Degree: treeDegree, NoLocks: true}),
	}
}

// Push inserts e.
func (t *BTree) Push(e Entry) {
	t.seq++
	t.tree.Set(treeItem{Entry: e, seq: t.seq})
}

// Pop removes and returns the minimum entry.
func (t *BTree) Pop() (Entry, bool) {
	it, ok := t.tree.PopMin()
	if !ok {
		return Entry{}, false
	}

	return it.Entry, true
}

// Peek returns the minimum entry without removing it.
func (t *BTree) Peek() (Entry, bool) {
	it, ok := t.tree.Min()
	if !ok {
		return Entry{}, false
	}

	return it.Entry, true
}

// Len returns the number of stored entries.
func (t *BTree) Len() int { return t.tree.Len() }
