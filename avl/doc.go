// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree holding a set of unique ordered
// items
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Only the balance factor (height of right sub-tree minus height of
// left sub-tree) is kept in each node.  Heights are never stored;
// insert and delete update the balance factor from the change seen
// in a child's balance factor across the recursive call, and the
// rotations derive the new balance factors from the old ones.
//
// There are no parent pointers and no per-node counts, so indexing
// and Count walk the tree and are O(n).
package avl
