// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify the structure of the whole tree
//
// detects: wrong up pointers, keys out of order, cached heights that
// differ from the real sub-tree heights, unbalanced nodes and a node
// count that does not match the number of reachable nodes
func (tree *Tree[V]) Check() error {
	_, n, err := check(tree.root, nil, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: consistency checker
//
// lo and hi are the nearest ancestors that bound the keys of p, nil
// when unbounded; returns the height and number of nodes of p
func check[V any](p *Node[V], up *Node[V], lo *Node[V], hi *Node[V]) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if p.up != up {
		return 0, 0, fault.ErrParentMismatch
	}
	if (nil != lo && p.key <= lo.key) || (nil != hi && p.key >= hi.key) {
		return 0, 0, fault.ErrKeyOrder
	}

	lh, ln, err := check(p.left, p, lo, p)
	if nil != err {
		return 0, 0, err
	}
	rh, rn, err := check(p.right, p, p, hi)
	if nil != err {
		return 0, 0, err
	}

	if lh != p.leftHeight || rh != p.rightHeight {
		return 0, 0, fault.ErrHeightMismatch
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, 0, fault.ErrUnbalanced
	}

	return p.Height(), 1 + ln + rn, nil
}

// CheckUp - check only the up pointers for consistency
func (tree *Tree[V]) CheckUp() bool {
	return checkUp(tree.root, nil)
}

func checkUp[V any](p *Node[V], up *Node[V]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	return checkUp(p.left, p) && checkUp(p.right, p)
}
