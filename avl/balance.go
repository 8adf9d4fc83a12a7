// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// the shape of an out of balance sub-tree
type imbalance int

const (
	balanced   imbalance = iota
	leftLeft   imbalance = iota
	leftRight  imbalance = iota
	rightRight imbalance = iota
	rightLeft  imbalance = iota
)

func (i imbalance) String() string {
	switch i {
	case balanced:
		return "balanced"
	case leftLeft:
		return "left-left"
	case leftRight:
		return "left-right"
	case rightRight:
		return "right-right"
	case rightLeft:
		return "right-left"
	default:
		return "unknown"
	}
}

// classify the sub-tree rooted at p
func (p *Node) imbalance() imbalance {
	switch {
	case p.balance < -1:
		if nil == p.left {
			fault.Panic(fault.ErrRotationMissingChild)
		}
		if p.left.balance <= 0 {
			return leftLeft
		}
		return leftRight
	case p.balance > 1:
		if nil == p.right {
			fault.Panic(fault.ErrRotationMissingChild)
		}
		if p.right.balance >= 0 {
			return rightRight
		}
		return rightLeft
	default:
		return balanced
	}
}

// rebalance - restore |balance| <= 1 at p, returns the new root of
// this sub-tree
func (p *Node) rebalance() *Node {
	switch p.imbalance() {
	case leftLeft:
		return p.rotateRight()
	case leftRight:
		p.left = p.left.rotateLeft()
		return p.rotateRight()
	case rightRight:
		return p.rotateLeft()
	case rightLeft:
		p.right = p.right.rotateRight()
		return p.rotateLeft()
	default:
		return p
	}
}

// rotateLeft - the right child b becomes the root of this sub-tree
//
//	  p                b
//	 / \              / \
//	x   b     ->     p   z
//	   / \          / \
//	  y   z        x   y
func (p *Node) rotateLeft() *Node {
	b := p.right
	if nil == b {
		fault.Panic(fault.ErrRotationMissingChild)
	}

	p.right = b.left
	b.left = p

	p.balance -= 1 + max(b.balance, 0)
	b.balance -= 1 - min(p.balance, 0)

	return b
}

// rotateRight - the left child b becomes the root of this sub-tree
//
//	    p            b
//	   / \          / \
//	  b   z   ->   x   p
//	 / \              / \
//	x   y            y   z
func (p *Node) rotateRight() *Node {
	b := p.left
	if nil == b {
		fault.Panic(fault.ErrRotationMissingChild)
	}

	p.left = b.right
	b.right = p

	p.balance += 1 - min(b.balance, 0)
	b.balance += 1 + max(p.balance, 0)

	return b
}

func max(a int, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a int, b int) int {
	if a < b {
		return a
	}
	return b
}
