// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	InvalidError  GenericError
	NotFoundError GenericError
	ProcessError  GenericError
)

// common errors - keep in alphabetic order
const (
	ErrAlreadyInitialised    = ProcessError("already initialised")
	ErrCountMismatch         = ProcessError("node count does not match tree contents")
	ErrEmptyTree             = NotFoundError("tree is empty")
	ErrHeightBoundExceeded   = ProcessError("tree height exceeds AVL bound")
	ErrHeightMismatch        = ProcessError("cached height does not match sub-tree")
	ErrInvalidKey            = InvalidError("key is not an integer")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrKeyOrder              = ProcessError("keys are out of order")
	ErrMembershipMismatch    = ProcessError("tree contents differ from reference")
	ErrMissingParameters     = InvalidError("missing parameters")
	ErrNotConfigurationTable = InvalidError("configuration did not return a table")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrParentMismatch        = ProcessError("parent pointer is inconsistent")
	ErrUnbalanced            = ProcessError("sub-tree heights differ by more than one")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
