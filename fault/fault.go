// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RangeError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrBalanceViolation      = ProcessError("balance factor does not match subtree heights")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrCountMismatch         = ProcessError("count does not match the values stored")
	ErrDuplicateValue        = ExistsError("value is already present")
	ErrHeightExceedsBound    = ProcessError("tree height exceeds the balanced bound")
	ErrIndexOutOfRange       = RangeError("binary search tree index out of range")
	ErrInvalidCount          = InvalidError("invalid count")
	ErrInvalidDuration       = InvalidError("invalid duration")
	ErrInvalidIndex          = InvalidError("invalid index")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidValue          = InvalidError("invalid value")
	ErrInvalidValueType      = InvalidError("invalid value type")
	ErrMissingArgument       = InvalidError("missing argument")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrNotFoundScriptFile    = NotFoundError("script file is not found")
	ErrOrderViolation        = ProcessError("values are not in strictly ascending order")
	ErrRotationMissingChild  = ProcessError("rotation requires a child that is absent")
	ErrScriptFileRemoved     = NotFoundError("script file was removed")
	ErrUnknownOperation      = NotFoundError("unknown operation")
	ErrValueNotFound         = NotFoundError("value is not present")
	ErrWorkersFailed         = ProcessError("one or more workers failed")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RangeError) Error() string    { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRange(e error) bool    { _, ok := e.(RangeError); return ok }
