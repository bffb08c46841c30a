// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node[V any] struct {
	left        *Node[V] // left sub-tree
	right       *Node[V] // right sub-tree
	up          *Node[V] // points to parent node
	key         int      // key part for ordering
	value       V        // value part for data storage
	leftHeight  int      // height of left sub-tree, 0 if none
	rightHeight int      // height of right sub-tree, 0 if none
}

func newNode[V any](key int, value V) *Node[V] {
	return &Node[V]{
		key:   key,
		value: value,
	}
}

// Key - read the key from a node item
func (p *Node[V]) Key() int {
	return p.key
}

// Value - read the value from a node item
func (p *Node[V]) Value() V {
	return p.value
}

// Parent - return parent node of a node
func (p *Node[V]) Parent() *Node[V] {
	return p.up
}

// Left - return the left child of a node
func (p *Node[V]) Left() *Node[V] {
	return p.left
}

// Right - return the right child of a node
func (p *Node[V]) Right() *Node[V] {
	return p.right
}

// LeftHeight - cached height of the left sub-tree
func (p *Node[V]) LeftHeight() int {
	return p.leftHeight
}

// RightHeight - cached height of the right sub-tree
func (p *Node[V]) RightHeight() int {
	return p.rightHeight
}

// Balance - left height minus right height, always -1, 0 or +1
// between operations
func (p *Node[V]) Balance() int {
	return p.leftHeight - p.rightHeight
}

// Height - height of the sub-tree rooted at this node, zero for nil
func (p *Node[V]) Height() int {
	if nil == p {
		return 0
	}
	if p.leftHeight > p.rightHeight {
		return 1 + p.leftHeight
	}
	return 1 + p.rightHeight
}

// Depth - get the depth of a node
func (p *Node[V]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node[V]) GetChildrenByDepth(depth uint) []*Node[V] {
	nodes := []*Node[V]{}

	if depth == 0 {
		nodes = []*Node[V]{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}
