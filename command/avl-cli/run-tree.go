// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/fault"
)

func runPrint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree := buildTree(m.keys)
	return printTree(m.w, tree, c.Bool("data"))
}

func runInsert(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == len(c.Args()) {
		return fault.ErrMissingParameters
	}
	keys, err := parseKeyList(c.Args())
	if nil != err {
		return err
	}

	tree := buildTree(m.keys)
	for _, key := range keys {
		added := tree.Insert(key, key)
		if m.verbose && !added {
			fmt.Fprintf(m.e, "overwrote: %d\n", key)
		}
	}

	if err := tree.Check(); nil != err {
		return err
	}
	return printTree(m.w, tree, false)
}

func runDelete(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == len(c.Args()) {
		return fault.ErrMissingParameters
	}
	keys, err := parseKeyList(c.Args())
	if nil != err {
		return err
	}

	tree := buildTree(m.keys)
	for _, key := range keys {
		_, removed := tree.Delete(key)
		if m.verbose && !removed {
			fmt.Fprintf(m.e, "not present: %d\n", key)
		}
	}

	if err := tree.Check(); nil != err {
		return err
	}
	return printTree(m.w, tree, false)
}

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree := buildTree(m.keys)
	if err := tree.Check(); nil != err {
		return err
	}

	stats := tree.Stats()
	fmt.Fprintf(m.w, "count: %d  height: %d  rotations: %d\n", tree.Count(), tree.Height(), stats.Rotations())
	if m.verbose {
		fmt.Fprintf(m.w, "left: %d  right: %d  left-right: %d  right-left: %d\n",
			stats.RotateLeft, stats.RotateRight, stats.RotateLeftRight, stats.RotateRightLeft)
	}
	return nil
}
