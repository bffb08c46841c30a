// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// split a comma separated key list, empty string gives no keys
func parseKeys(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return nil, nil
	}
	return parseKeyList(strings.Split(s, ","))
}

func parseKeyList(items []string) ([]int, error) {
	keys := make([]int, 0, len(items))
	for _, item := range items {
		key, err := strconv.Atoi(strings.TrimSpace(item))
		if nil != err {
			return nil, errors.Wrapf(fault.ErrInvalidKey, "%q", item)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// create a tree holding each key as its own value
func buildTree(keys []int) *avl.Tree[int] {
	tree := avl.New[int]()
	for _, key := range keys {
		avl.InsertKey(tree, key)
	}
	return tree
}

// print the tree, or a note if it has no nodes
func printTree(w io.Writer, tree *avl.Tree[int], printData bool) error {
	if tree.IsEmpty() {
		_, err := fmt.Fprintf(w, "empty tree\n")
		return err
	}
	_, err := tree.Print(w, printData)
	return err
}
