// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
//
// returns the value that was stored and true, or the zero value and
// false if the key was not present
func (tree *Tree[V]) Delete(key int) (V, bool) {
	q := search(tree.root, key)
	if nil == q {
		var zero V
		tree.stats.Misses += 1
		return zero, false
	}
	value := q.value // preserve the value part

	parent := q.up
	start := parent // lowest node whose sub-tree changed

	switch {
	case nil == q.left && nil == q.right:
		tree.replaceChild(parent, q, nil)

	case nil == q.left:
		tree.replaceChild(parent, q, q.right)
		start = q.right

	case nil == q.right:
		tree.replaceChild(parent, q, q.left)
		start = q.left

	default:
		// two children: the in-order predecessor r moves into the
		// place of q, the nodes themselves are relinked, no data
		// is copied
		r := searchMax(q.left)
		if r != q.left {
			start = r.up
			setRight(r.up, r.left)
			setLeft(r, q.left)
		} else {
			// r keeps its own left sub-tree and q is being
			// discarded so the walk must begin at r
			start = r
		}
		tree.replaceChild(parent, q, r)
		setRight(r, q.right)
	}

	q.left = nil
	q.right = nil
	q.up = nil

	tree.count -= 1
	tree.stats.Deletes += 1
	tree.rebalance(start)

	return value, true
}
