// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// make child the left sub-tree of parent, child may be nil
func setLeft[V any](parent *Node[V], child *Node[V]) {
	parent.left = child
	if nil != child {
		child.up = parent
	}
}

// make child the right sub-tree of parent, child may be nil
func setRight[V any](parent *Node[V], child *Node[V]) {
	parent.right = child
	if nil != child {
		child.up = parent
	}
}

// put n into the slot of parent that currently holds old
//
// a nil parent means old was the root, so n becomes the new root
func (tree *Tree[V]) replaceChild(parent *Node[V], old *Node[V], n *Node[V]) {
	switch {
	case nil == parent:
		tree.root = n
	case old == parent.left:
		parent.left = n
	default:
		parent.right = n
	}
	if nil != n {
		n.up = parent
	}
}
