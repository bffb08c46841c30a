// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree, or overwrite the value of
// an existing key
//
// returns true if a node was added
func (tree *Tree[V]) Insert(key int, value V) bool {
	if nil == tree.root {
		tree.root = newNode(key, value)
		tree.count += 1
		tree.stats.Inserts += 1
		return true
	}

	p := tree.root
	for {
		switch {
		case key < p.key:
			if nil == p.left {
				n := newNode(key, value)
				setLeft(p, n)
				tree.added(n)
				return true
			}
			p = p.left

		case key > p.key:
			if nil == p.right {
				n := newNode(key, value)
				setRight(p, n)
				tree.added(n)
				return true
			}
			p = p.right

		default:
			// same key: shape is unchanged so no rebalance
			p.value = value
			tree.stats.Overwrites += 1
			return false
		}
	}
}

// InsertKey - insert a key that is also its own value
func InsertKey(tree *Tree[int], key int) bool {
	return tree.Insert(key, key)
}

// internal: account for a freshly attached leaf and rebalance above it
func (tree *Tree[V]) added(n *Node[V]) {
	tree.count += 1
	tree.stats.Inserts += 1
	tree.rebalance(n)
}
