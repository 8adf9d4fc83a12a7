// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"
)

// Node - a node in the tree
type Node struct {
	left    *Node // left sub-tree
	right   *Node // right sub-tree
	key     Item  // the ordered value
	balance int   // -1, 0, +1 (±2 only while rebalancing)
}

// global data for allocator
var m sync.Mutex   // to keep values in sync
var pool *Node     // linked list of reclaimed nodes
var totalNodes int // total nodes created
var freeNodes int  // number of nodes in the pool

// allocate a new node, reuses reclaimed nodes if any are available
func newNode(key Item) *Node {
	m.Lock()
	defer m.Unlock()

	if nil == pool {
		if 0 != freeNodes {
			panic("pool corrupt")
		}
		totalNodes += 1
		return &Node{
			key:     key,
			balance: 0,
		}
	}
	p := pool
	pool = p.right
	p.key = key
	p.balance = 0
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	freeNodes -= 1
	return p
}

// reclaim a node and keep it in a pool
func freeNode(node *Node) {
	m.Lock()
	defer m.Unlock()

	node.left = nil
	node.key = nil
	node.balance = 0
	node.right = pool // use as free list pointer
	freeNodes += 1

	pool = node
}

// NodeStats - number of nodes ever allocated and the number waiting
// for reuse
func NodeStats() (total int, free int) {
	m.Lock()
	defer m.Unlock()
	return totalNodes, freeNodes
}
