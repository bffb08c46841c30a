// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item, nil if not present
func (tree *Tree[V]) Search(key int) *Node[V] {
	return search(tree.root, key)
}

// Get - fetch the value stored for a key
func (tree *Tree[V]) Get(key int) (V, bool) {
	p := search(tree.root, key)
	if nil == p {
		var zero V
		return zero, false
	}
	return p.value, true
}

// Has - true if the key is in the tree
func (tree *Tree[V]) Has(key int) bool {
	return nil != search(tree.root, key)
}

func search[V any](p *Node[V], key int) *Node[V] {
	for nil != p {
		switch {
		case key < p.key:
			p = p.left
		case key > p.key:
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// internal: the node with the highest key in a non-empty sub-tree
func searchMax[V any](p *Node[V]) *Node[V] {
	for nil != p.right {
		p = p.right
	}
	return p
}
