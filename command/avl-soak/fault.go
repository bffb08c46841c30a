// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/avltree/fault"
)

// configuration errors - keep in alphabetic order
const (
	ErrInvalidDeleteRatio  = fault.InvalidError("delete_ratio must be between 0 and 1")
	ErrInvalidKeyRange     = fault.InvalidError("key_range must be positive")
	ErrInvalidKeysPerRound = fault.InvalidError("keys_per_round must be positive")
	ErrInvalidRate         = fault.InvalidError("rate must not be negative")
	ErrInvalidRounds       = fault.InvalidError("rounds must be positive")
)
