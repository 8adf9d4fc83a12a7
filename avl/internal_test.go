// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
)

type number int

func (n number) Compare(x interface{}) int {
	m := x.(number)
	switch {
	case n < m:
		return -1
	case n > m:
		return +1
	default:
		return 0
	}
}

func leaf(n int) *Node {
	return &Node{key: number(n)}
}

func TestImbalanceCases(t *testing.T) {
	ll := &Node{key: number(3), balance: -2, left: &Node{key: number(2), balance: -1, left: leaf(1)}}
	lr := &Node{key: number(3), balance: -2, left: &Node{key: number(1), balance: +1, right: leaf(2)}}
	rr := &Node{key: number(1), balance: +2, right: &Node{key: number(2), balance: +1, right: leaf(3)}}
	rl := &Node{key: number(1), balance: +2, right: &Node{key: number(3), balance: -1, left: leaf(2)}}

	cases := []struct {
		p        *Node
		expected imbalance
	}{
		{ll, leftLeft},
		{lr, leftRight},
		{rr, rightRight},
		{rl, rightLeft},
		{leaf(7), balanced},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, c.p.imbalance(), "wrong case: %s", c.expected)

		p := c.p.rebalance()
		assert.Equal(t, 0, p.balance, "root balance after: %s", c.expected)
		if balanced != c.expected {
			assert.Equal(t, number(2), p.key, "root after: %s", c.expected)
			assert.Equal(t, number(1), p.left.key, "left after: %s", c.expected)
			assert.Equal(t, number(3), p.right.key, "right after: %s", c.expected)
			assert.Equal(t, 0, p.left.balance, "left balance after: %s", c.expected)
			assert.Equal(t, 0, p.right.balance, "right balance after: %s", c.expected)
		}
	}
}

// deletion can leave a left-left shape whose child is level, the
// single rotation must then leave both nodes leaning
func TestRotationWithLevelChild(t *testing.T) {
	b := &Node{key: number(2), balance: 0, left: leaf(1), right: leaf(3)}
	p := &Node{key: number(4), balance: -2, left: b}

	root := p.rebalance()
	assert.Equal(t, b, root, "wrong root")
	assert.Equal(t, +1, root.balance, "root balance")
	assert.Equal(t, -1, root.right.balance, "right balance")

	tree := &Tree{root: root}
	assert.NoError(t, tree.Check(), "inconsistent tree")
}

func TestRotateMissingChildPanics(t *testing.T) {
	assert.PanicsWithValue(t, fault.ErrRotationMissingChild, func() {
		leaf(1).rotateLeft()
	}, "rotate left")
	assert.PanicsWithValue(t, fault.ErrRotationMissingChild, func() {
		leaf(1).rotateRight()
	}, "rotate right")
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := NewFrom(number(2), number(1), number(3))
	assert.NoError(t, tree.Check(), "valid tree")

	tree.root.balance = 1
	assert.Equal(t, fault.ErrBalanceViolation, tree.Check(), "balance")
	tree.root.balance = 0

	tree.root.left.key = number(5)
	assert.Equal(t, fault.ErrOrderViolation, tree.Check(), "order")
}

func TestNodeReuse(t *testing.T) {
	p := newNode(number(1))
	freeNode(p)
	_, free := NodeStats()
	assert.True(t, free > 0, "node not pooled")

	q := newNode(number(2))
	assert.Equal(t, number(2), q.key, "reused node key")
	assert.Nil(t, q.left, "reused node left")
	assert.Nil(t, q.right, "reused node right")
	assert.Equal(t, 0, q.balance, "reused node balance")
}
