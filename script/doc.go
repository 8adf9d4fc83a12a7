// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - apply a list of tree operations given as text
//
// operations and their arguments:
//
//	insert VALUE      add a value
//	delete VALUE      remove a value
//	contains VALUE    membership test
//	get INDEX         value at a position, negative counts from the end
//	set INDEX VALUE   replace the value at a position
//	index VALUE       position of a value
//	count             number of values
//	height            height of the tree
//	list              values in ascending order
//	reverse           values in descending order
//	print             drawing of the tree with balance factors
//	check             verify the ordering and balance
//
// A rejected operation (duplicate, missing value, index out of range)
// is reported and the run continues; a malformed operation stops the
// run.
package script
