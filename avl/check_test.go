// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
)

func makeTree(keys ...int) *Tree[int] {
	tree := New[int]()
	for _, key := range keys {
		tree.Insert(key, key)
	}
	return tree
}

func TestCheckDetectsCorruption(t *testing.T) {
	corruptions := []struct {
		name    string
		corrupt func(tree *Tree[int])
		err     error
	}{
		{
			name:    "parent",
			corrupt: func(tree *Tree[int]) { tree.root.left.up = tree.root.right },
			err:     fault.ErrParentMismatch,
		},
		{
			name:    "root parent",
			corrupt: func(tree *Tree[int]) { tree.root.up = tree.root.left },
			err:     fault.ErrParentMismatch,
		},
		{
			name:    "order",
			corrupt: func(tree *Tree[int]) { tree.root.left.right.key = 99 },
			err:     fault.ErrKeyOrder,
		},
		{
			name:    "height",
			corrupt: func(tree *Tree[int]) { tree.root.rightHeight = 1 },
			err:     fault.ErrHeightMismatch,
		},
		{
			name: "balance",
			corrupt: func(tree *Tree[int]) {
				p := tree.root.right
				tree.root.right = nil
				tree.root.rightHeight = 0
				p.up = nil
			},
			err: fault.ErrUnbalanced,
		},
		{
			name:    "count",
			corrupt: func(tree *Tree[int]) { tree.count += 1 },
			err:     fault.ErrCountMismatch,
		},
	}

	for _, c := range corruptions {
		tree := makeTree(40, 20, 60, 10, 30, 50, 70)
		assert.Nil(t, tree.Check(), "%s: inconsistent before corruption", c.name)
		c.corrupt(tree)
		assert.Equal(t, c.err, tree.Check(), "%s: wrong error", c.name)
	}
}

func TestCheckUp(t *testing.T) {
	tree := makeTree(40, 20, 60, 10, 30, 50, 70)
	assert.True(t, tree.CheckUp(), "up pointers inconsistent")

	tree.root.right.left.up = tree.root
	assert.False(t, tree.CheckUp(), "bad up pointer not detected")

	assert.True(t, New[int]().CheckUp(), "empty tree inconsistent")
}

func TestRotatePrimitives(t *testing.T) {
	// 40 (20 (10, 30), 50) - rotate right at the root by hand
	tree := makeTree(40, 20, 50, 10, 30)
	p := tree.root
	l := p.left

	tree.rotateRight(p)
	calcHeight(p)
	calcHeight(l)

	assert.Equal(t, l, tree.root, "left child not promoted")
	assert.Nil(t, l.up, "promoted node has parent")
	assert.Equal(t, p, l.right, "pivot not moved right")
	assert.Equal(t, l, p.up, "pivot parent not updated")
	assert.Equal(t, 30, p.left.key, "inner grandchild not moved")
	assert.Equal(t, p, p.left.up, "inner grandchild parent not updated")
	assert.Nil(t, tree.Check(), "inconsistent tree")

	// and back again
	tree.rotateLeft(l)
	calcHeight(l)
	calcHeight(p)

	assert.Equal(t, p, tree.root, "right child not promoted")
	assert.Equal(t, l, p.left, "pivot not moved left")
	assert.Equal(t, 30, l.right.key, "inner grandchild not moved back")
	assert.Nil(t, tree.Check(), "inconsistent tree")
}

// equal heights in the heavy child must select the single rotation
func TestEqualHeightsSelectSingleRotation(t *testing.T) {
	tree := makeTree(40, 20, 60, 10, 30, 70)
	before := tree.Stats()

	// removing 70 then 60 leaves 20 with two equal sub-trees
	tree.Delete(70)
	tree.Delete(60)

	after := tree.Stats()
	assert.Equal(t, before.RotateRight+1, after.RotateRight, "single rotation not used")
	assert.Equal(t, before.RotateLeftRight, after.RotateLeftRight, "double rotation used")
	assert.Equal(t, 20, tree.root.key, "wrong root")
	assert.Nil(t, tree.Check(), "inconsistent tree")
}

func TestSearchMax(t *testing.T) {
	tree := makeTree(40, 20, 60, 10, 30, 50, 70, 65)
	assert.Equal(t, 70, searchMax(tree.root).key, "wrong maximum")
	assert.Equal(t, 30, searchMax(tree.root.left).key, "wrong left maximum")
	assert.Equal(t, 10, searchMax(tree.root.left.left).key, "wrong leaf maximum")
}
