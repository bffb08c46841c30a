// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree[V any] struct {
	root  *Node[V]
	count int
	stats Statistics
}

// Statistics - counts of the operations applied to a tree
type Statistics struct {
	Inserts    int // new nodes added
	Overwrites int // inserts that replaced the value of an existing key
	Deletes    int // nodes removed
	Misses     int // deletes of an absent key

	RotateLeft      int
	RotateRight     int
	RotateLeftRight int
	RotateRightLeft int
}

// Rotations - total rotations of all kinds
func (s Statistics) Rotations() int {
	return s.RotateLeft + s.RotateRight + s.RotateLeftRight + s.RotateRightLeft
}

// New - create an initially empty tree
func New[V any]() *Tree[V] {
	return &Tree[V]{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[V]) Root() *Node[V] {
	return tree.root
}

// Height - height of the whole tree, zero when empty
func (tree *Tree[V]) Height() int {
	return tree.root.Height()
}

// Stats - snapshot of the operation counters
func (tree *Tree[V]) Stats() Statistics {
	return tree.stats
}
