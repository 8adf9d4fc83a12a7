// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - insert a new item into the tree
// returns false if the item is nil or already present
func (tree *Tree) Insert(key Item) bool {
	return nil == tree.Add(key)
}

// Add - insert a new item into the tree
// the tree is unchanged if an error is returned
func (tree *Tree) Add(key Item) error {
	if nil == key {
		return fault.ErrInvalidValue
	}
	if nil == tree.root {
		tree.root = newNode(key)
		return nil
	}
	root, err := tree.root.insert(key)
	if nil != err {
		return err
	}
	tree.root = root
	return nil
}

// grew - true if a child's balance moved away from zero, which means
// its height increased
func grew(before int, after int) bool {
	return (before <= 0 && after < before) || (before >= 0 && after > before)
}

// internal routine for insert, returns the new root of this sub-tree
//
// on error nothing below p has been modified
func (p *Node) insert(key Item) (*Node, error) {
	switch p.key.Compare(key) {
	case +1: // p.key > key
		if nil == p.left {
			p.left = newNode(key)
			p.balance -= 1
		} else {
			before := p.left.balance
			left, err := p.left.insert(key)
			if nil != err {
				return p, err
			}
			p.left = left
			if grew(before, p.left.balance) {
				p.balance -= 1
			}
		}
	case -1: // p.key < key
		if nil == p.right {
			p.right = newNode(key)
			p.balance += 1
		} else {
			before := p.right.balance
			right, err := p.right.insert(key)
			if nil != err {
				return p, err
			}
			p.right = right
			if grew(before, p.right.balance) {
				p.balance += 1
			}
		}
	default:
		return p, fault.ErrDuplicateValue
	}
	return p.rebalance(), nil
}
