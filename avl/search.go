// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Contains - true if the item is in the tree
func (tree *Tree) Contains(key Item) bool {
	if nil == key {
		return false
	}
	p := tree.root
	for nil != p {
		switch p.key.Compare(key) {
		case +1: // p.key > key
			p = p.left
		case -1: // p.key < key
			p = p.right
		default:
			return true
		}
	}
	return false
}

// IndexOf - zero based position of an item in ascending order
func (tree *Tree) IndexOf(key Item) (int, error) {
	if nil != key {
		iter := tree.Iterate()
		for index := 0; ; index += 1 {
			item, ok := iter.Next()
			if !ok {
				break
			}
			if 0 == item.Compare(key) {
				return index, nil
			}
		}
	}
	return -1, fault.ErrValueNotFound
}

// First - return the lowest item, nil if the tree is empty
func (tree *Tree) First() Item {
	if p := tree.root.first(); nil != p {
		return p.key
	}
	return nil
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the highest item, nil if the tree is empty
func (tree *Tree) Last() Item {
	if p := tree.root.last(); nil != p {
		return p.key
	}
	return nil
}

// internal: highest node in a sub-tree
func (p *Node) last() *Node {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
