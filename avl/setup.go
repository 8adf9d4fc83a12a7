// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a value stored in the tree must implement Compare
//
// Compare returns -1, 0 or +1 as the receiver is less than, equal
// to or greater than the argument
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root *Node
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root: nil,
	}
}

// NewFrom - create a tree holding the given items, any duplicates or
// nil items are skipped
func NewFrom(items ...Item) *Tree {
	tree := New()
	for _, key := range items {
		tree.Insert(key)
	}
	return tree
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
//
// there is no stored count, this visits every node
func (tree *Tree) Count() int {
	return tree.root.count()
}

func (p *Node) count() int {
	if nil == p {
		return 0
	}
	return 1 + p.left.count() + p.right.count()
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the item from a node
func (p *Node) Key() Item {
	return p.key
}

// Balance - height of right sub-tree minus height of left sub-tree
func (p *Node) Balance() int {
	return p.balance
}

// Left - the left sub-tree, nil if absent
func (p *Node) Left() *Node {
	return p.left
}

// Right - the right sub-tree, nil if absent
func (p *Node) Right() *Node {
	return p.right
}
