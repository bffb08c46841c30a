// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with integer keys and parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the heights of its left and right sub-trees.  A
// structural change (insert of a new key or delete of an existing
// key) is followed by a walk from the lowest disturbed node up to the
// root that recomputes those heights and applies a single or double
// rotation wherever the two heights differ by two.
//
// Data is associated with each key and is overwritten by an insert
// with the same key.  Delete does not copy data between nodes, so a
// node keeps its address for as long as its key is in the tree.
package avl
