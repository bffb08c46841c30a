// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/avltree/fault"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// keeps the first write error so the recursion stays simple
type printer struct {
	w         io.Writer
	printData bool
	err       error
}

func (pr *printer) printf(format string, arguments ...interface{}) {
	if nil != pr.err {
		return
	}
	_, pr.err = fmt.Fprintf(pr.w, format, arguments...)
}

// Print - display an ASCII graphic representation of the tree
//
// the right sub-tree is drawn above a node and the left sub-tree
// below it; returns the maximum depth of the tree
func (tree *Tree[V]) Print(w io.Writer, printData bool) (int, error) {
	if nil == tree.root {
		return 0, fault.ErrEmptyTree
	}
	pr := &printer{
		w:         w,
		printData: printData,
	}
	depth := printTree(pr, tree.root, "", root)
	return depth, pr.err
}

// internal print - returns the maximum depth of the tree
func printTree[V any](pr *printer, tree *Node[V], prefix string, br branch) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(pr, tree.right, prefix+t, right)
	}
	switch br {
	case root:
		pr.printf("%s|------+ ", prefix)
	case left:
		pr.printf("%s\\------+ ", prefix)
	case right:
		pr.printf("%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != tree.up {
		up = tree.up.key
	}
	if pr.printData {
		pr.printf("%d → %v ^%v %+2d/[%d,%d]\n", tree.key, tree.value, up, tree.Balance(), tree.leftHeight, tree.rightHeight)
	} else {
		pr.printf("%d\n", tree.key)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(pr, tree.left, prefix+t, left)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
