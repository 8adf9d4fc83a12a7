// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"strings"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - write a box drawing of the tree, root at the left edge and
// the highest item at the top; returns the number of levels
func (tree *Tree) Print(w io.Writer, printBalance bool) int {
	return printTree(w, tree.root, "", root, printBalance)
}

// String - the tree drawing without balance factors
func (tree *Tree) String() string {
	var b strings.Builder
	tree.Print(&b, false)
	return b.String()
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, p *Node, prefix string, br branch, printBalance bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "      "
		if left == br {
			t = "│     "
		}
		rd = printTree(w, p.right, prefix+t, right, printBalance)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s───── ", prefix)
	case left:
		fmt.Fprintf(w, "%s└──── ", prefix)
	case right:
		fmt.Fprintf(w, "%s┌──── ", prefix)
	}
	if printBalance {
		fmt.Fprintf(w, "%v %+d\n", p.key, p.balance)
	} else {
		fmt.Fprintf(w, "%v\n", p.key)
	}
	if nil != p.left {
		t := "      "
		if right == br {
			t = "│     "
		}
		ld = printTree(w, p.left, prefix+t, left, printBalance)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
