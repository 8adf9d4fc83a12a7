// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Iterator - lazy in-order walk of a tree
//
// without parent pointers the path back up is kept on a stack, so it
// never holds more than height+1 nodes.  The tree must not be
// modified while an iterator is in use.
type Iterator struct {
	stack   []*Node
	reverse bool
}

// Iterate - iterator giving items in ascending order
func (tree *Tree) Iterate() *Iterator {
	iter := &Iterator{}
	iter.descend(tree.root)
	return iter
}

// Reverse - iterator giving items in descending order
func (tree *Tree) Reverse() *Iterator {
	iter := &Iterator{reverse: true}
	iter.descend(tree.root)
	return iter
}

// push p and its chain of left (or right when reversed) children
func (iter *Iterator) descend(p *Node) {
	for nil != p {
		iter.stack = append(iter.stack, p)
		if iter.reverse {
			p = p.right
		} else {
			p = p.left
		}
	}
}

// Next - the next item, false when the walk is finished
func (iter *Iterator) Next() (Item, bool) {
	n := len(iter.stack)
	if 0 == n {
		return nil, false
	}
	p := iter.stack[n-1]
	iter.stack[n-1] = nil
	iter.stack = iter.stack[:n-1]
	if iter.reverse {
		iter.descend(p.left)
	} else {
		iter.descend(p.right)
	}
	return p.key, true
}

// Items - all items in ascending order
func (tree *Tree) Items() []Item {
	return collect(tree.Iterate())
}

// ReverseItems - all items in descending order
func (tree *Tree) ReverseItems() []Item {
	return collect(tree.Reverse())
}

func collect(iter *Iterator) []Item {
	items := []Item{}
	for {
		item, ok := iter.Next()
		if !ok {
			return items
		}
		items = append(items, item)
	}
}
