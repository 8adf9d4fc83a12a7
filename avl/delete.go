// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Delete - removes a specific item from the tree
// returns false if the item is nil or not present
func (tree *Tree) Delete(key Item) bool {
	return nil == tree.Remove(key)
}

// Remove - removes a specific item from the tree
// the tree is unchanged if an error is returned
func (tree *Tree) Remove(key Item) error {
	if nil == key {
		return fault.ErrInvalidValue
	}
	if nil == tree.root {
		return fault.ErrValueNotFound
	}
	root, err := tree.root.delete(key)
	if nil != err {
		return err
	}
	tree.root = root
	return nil
}

// shrank - true if a child vanished or its balance returned to zero
// from ±1, which means its height decreased
func shrank(child *Node, before int) bool {
	return nil == child || ((-1 == before || +1 == before) && 0 == child.balance)
}

// internal delete routine, returns the new root of this sub-tree
// which is nil if the last node was removed
//
// on error nothing below p has been modified
func (p *Node) delete(key Item) (*Node, error) {
	switch p.key.Compare(key) {
	case +1: // p.key > key
		if nil == p.left {
			return p, fault.ErrValueNotFound
		}
		before := p.left.balance
		left, err := p.left.delete(key)
		if nil != err {
			return p, err
		}
		p.left = left
		if shrank(p.left, before) {
			p.balance += 1
		}
	case -1: // p.key < key
		if nil == p.right {
			return p, fault.ErrValueNotFound
		}
		before := p.right.balance
		right, err := p.right.delete(key)
		if nil != err {
			return p, err
		}
		p.right = right
		if shrank(p.right, before) {
			p.balance -= 1
		}
	default: // found: delete p
		if nil == p.left || nil == p.right {
			child := p.left
			if nil == child {
				child = p.right
			}
			freeNode(p) // return deleted node to pool
			return child, nil
		}

		// two children: take over the in-order predecessor's item
		// then remove that item from the left sub-tree, where it
		// has at most one child
		predecessor := p.left.last().key
		p.key = predecessor

		before := p.left.balance
		left, err := p.left.delete(predecessor)
		if nil != err {
			fault.Panicf("avl: predecessor: %v vanished: %s", predecessor, err)
		}
		p.left = left
		if shrank(p.left, before) {
			p.balance += 1
		}
	}
	return p.rebalance(), nil
}
