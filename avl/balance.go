// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// walk from p up to the root restoring the cached heights and the
// balance of every node on the way
//
// the children of each visited node must already hold correct
// heights, which is true because the walk starts at the lowest
// changed node
func (tree *Tree[V]) rebalance(p *Node[V]) {
	for nil != p {
		calcHeight(p)

		switch p.leftHeight - p.rightHeight {
		case 2: // left branch is too tall
			l := p.left
			if l.leftHeight >= l.rightHeight {
				tree.rotateRight(p)
				tree.stats.RotateRight += 1
			} else {
				tree.rotateLeftRight(p)
				tree.stats.RotateLeftRight += 1
			}
			calcHeight(p)

		case -2: // right branch is too tall
			r := p.right
			if r.rightHeight >= r.leftHeight {
				tree.rotateLeft(p)
				tree.stats.RotateLeft += 1
			} else {
				tree.rotateRightLeft(p)
				tree.stats.RotateRightLeft += 1
			}
			calcHeight(p)
		}

		// after a rotation p.up is the promoted node, so it will
		// be visited next
		if nil == p.up {
			tree.root = p
		}
		p = p.up
	}
}

// recompute the cached heights of p from its children
func calcHeight[V any](p *Node[V]) {
	p.leftHeight = p.left.Height()
	p.rightHeight = p.right.Height()
}

// single right rotation: the left child of p takes the place of p
//
//	      p            l
//	     / \          / \
//	    l   c  →     a   p
//	   / \              / \
//	  a   b            b   c
func (tree *Tree[V]) rotateRight(p *Node[V]) {
	l := p.left
	tree.replaceChild(p.up, p, l)
	setLeft(p, l.right)
	setRight(l, p)
}

// single left rotation: the right child of p takes the place of p
//
//	   p                r
//	  / \              / \
//	 a   r     →      p   c
//	    / \          / \
//	   b   c        a   b
func (tree *Tree[V]) rotateLeft(p *Node[V]) {
	r := p.right
	tree.replaceChild(p.up, p, r)
	setRight(p, r.left)
	setLeft(r, p)
}

// double rotation for a left branch that is heavy on its right
func (tree *Tree[V]) rotateLeftRight(p *Node[V]) {
	l := p.left
	tree.rotateLeft(l)
	calcHeight(l)
	tree.rotateRight(p)
}

// double rotation for a right branch that is heavy on its left
func (tree *Tree[V]) rotateRightLeft(p *Node[V]) {
	r := p.right
	tree.rotateRight(r)
	calcHeight(r)
	tree.rotateLeft(p)
}
