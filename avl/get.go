// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Get - item at a position in ascending order
//
// a negative index counts back from the highest item, so -1 is the
// last item
func (tree *Tree) Get(index int) (Item, error) {
	iter := tree.Iterate()
	n := index
	if index < 0 {
		iter = tree.Reverse()
		n = -index - 1
	}
	for {
		item, ok := iter.Next()
		if !ok {
			return nil, fault.ErrIndexOutOfRange
		}
		if 0 == n {
			return item, nil
		}
		n -= 1
	}
}

// Set - replace the item at a position by deleting it and inserting
// the new item, which need not sort to the same position
//
// all checks are done first so the tree is unchanged if an error is
// returned
func (tree *Tree) Set(index int, key Item) error {
	if nil == key {
		return fault.ErrInvalidValue
	}
	old, err := tree.Get(index)
	if nil != err {
		return err
	}
	if 0 == old.Compare(key) {
		return nil
	}
	if tree.Contains(key) {
		return fault.ErrDuplicateValue
	}
	if err := tree.Remove(old); nil != err {
		return err
	}
	return tree.Add(key)
}
