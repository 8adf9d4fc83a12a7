// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Height - longest path from the root to a leaf, recomputed by a full
// walk; a single node has height 0 and an empty tree -1
func (tree *Tree) Height() int {
	return tree.root.height()
}

func (p *Node) height() int {
	if nil == p {
		return -1
	}
	return 1 + max(p.left.height(), p.right.height())
}

// Check - verify the ordering and that every stored balance factor
// equals the difference of the recomputed sub-tree heights
func (tree *Tree) Check() error {
	_, err := check(tree.root, nil, nil)
	return err
}

// internal: consistency checker, all items in p must lie strictly
// between low and high (nil meaning unbounded); returns the height
func check(p *Node, low Item, high Item) (int, error) {
	if nil == p {
		return -1, nil
	}
	if nil != low && low.Compare(p.key) >= 0 {
		return 0, fault.ErrOrderViolation
	}
	if nil != high && high.Compare(p.key) <= 0 {
		return 0, fault.ErrOrderViolation
	}
	lh, err := check(p.left, low, p.key)
	if nil != err {
		return 0, err
	}
	rh, err := check(p.right, p.key, high)
	if nil != err {
		return 0, err
	}
	if p.balance != rh-lh || p.balance < -1 || p.balance > 1 {
		return 0, fault.ErrBalanceViolation
	}
	return 1 + max(lh, rh), nil
}
