// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrBalanceFactorRange      = InvalidError("balance factor is out of range")
	ErrCapacityLimit           = ProcessError("tree capacity limit reached")
	ErrConfigurationIsNotTable = InvalidError("configuration file does not return a table")
	ErrCursorDetached          = ProcessError("cursor is detached from its tree")
	ErrEmptyTree               = NotFoundError("tree is empty")
	ErrInvalidMatchMode        = InvalidError("match mode is invalid")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrNilCallback             = InvalidError("callback is required")
	ErrNilPayload              = InvalidError("payload is nil")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
