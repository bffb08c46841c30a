// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree[V]) First() *Node[V] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[V]) first() *Node[V] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree[V]) Last() *Node[V] {
	if nil == tree.root {
		return nil
	}
	return searchMax(tree.root)
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node[V]) Next() *Node[V] {
	if p.right == nil {
		key := p.key
		for {
			p = p.up
			if p == nil {
				return nil
			}
			if p.key > key {
				return p
			}
		}
	}
	return p.right.first()
}

// Prev - given a node, return the node with the next lowest key value
// or nil if no more nodes
func (p *Node[V]) Prev() *Node[V] {
	if p.left == nil {
		key := p.key
		for {
			p = p.up
			if p == nil {
				return nil
			}
			if p.key < key {
				return p
			}
		}
	}
	return searchMax(p.left)
}

// Keys - all keys in ascending order
func (tree *Tree[V]) Keys() []int {
	keys := make([]int, 0, tree.count)
	for p := tree.First(); nil != p; p = p.Next() {
		keys = append(keys, p.key)
	}
	return keys
}
