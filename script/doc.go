// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - drive a tree from Lua
//
// A Runner executes Lua source with a small set of global functions
// bound to a Store:
//
//   insert(key [, value])  insert or overwrite, value defaults to key
//   delete(key)            returns the removed value or nil
//   search(key)            returns the stored value or nil
//   count()                number of keys
//   height()               height of the tree
//   keys()                 array of keys in ascending order
//   check()                raises an error if the tree is inconsistent
//   print([data])          draw the tree on the runner's output
//   log(message)           write an info line to the log channel
//
// keys must be integral numbers.
package script
