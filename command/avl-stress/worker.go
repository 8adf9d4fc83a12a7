// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"math/rand"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/item"
)

// totals shared by all workers
type totals struct {
	rounds   counter.Counter
	inserted counter.Counter
	deleted  counter.Counter
	rejected counter.Counter
	failures counter.Counter
}

// one background checker, owns its trees exclusively
type worker struct {
	log     *logger.L
	rng     *rand.Rand
	maxSize int
	rounds  int // zero: until shutdown
	totals  *totals

	// shared by all workers to throttle progress lines
	progress *rate.Limiter
}

func newWorker(log *logger.L, seed int64, maxSize int, rounds int, t *totals, progress *rate.Limiter) *worker {
	return &worker{
		log:      log,
		rng:      rand.New(rand.NewSource(seed)),
		maxSize:  maxSize,
		rounds:   rounds,
		totals:   t,
		progress: progress,
	}
}

// Run - background process loop
func (w *worker) Run(args interface{}, shutdown <-chan struct{}) {

	w.log.Info("starting…")

loop:
	for r := 0; 0 == w.rounds || r < w.rounds; r += 1 {
		select {
		case <-shutdown:
			break loop
		default:
		}

		if err := w.round(); nil != err {
			w.log.Criticalf("round: %d  failed with error: %s", r, err)
			w.totals.failures.Increment()
			break loop
		}
		n := w.totals.rounds.Increment()
		if w.progress.Allow() {
			w.log.Infof("total rounds: %d  inserted: %d  deleted: %d", n, w.totals.inserted.Uint64(), w.totals.deleted.Uint64())
		}
	}

	w.log.Info("shutting down…")
	w.log.Flush()
}

// build one random tree, delete a random subset of it then empty it,
// verifying the tree after each phase
func (w *worker) round() error {

	n := 1 + w.rng.Intn(w.maxSize)
	limit := int64(4 * w.maxSize)

	tree := avl.New()
	stored := make(map[int64]struct{}, n)

	for i := 0; i < n; i += 1 {
		v := w.rng.Int63n(limit)
		_, present := stored[v]
		if tree.Insert(item.Integer(v)) == present {
			return fault.ErrDuplicateValue
		}
		if present {
			w.totals.rejected.Increment()
			continue
		}
		stored[v] = struct{}{}
		w.totals.inserted.Increment()
	}
	if err := verify(tree, len(stored)); nil != err {
		return err
	}

	for i := 0; i < n; i += 1 {
		v := w.rng.Int63n(limit)
		_, present := stored[v]
		if tree.Delete(item.Integer(v)) != present {
			return fault.ErrValueNotFound
		}
		if !present {
			w.totals.rejected.Increment()
			continue
		}
		delete(stored, v)
		w.totals.deleted.Increment()
	}
	if err := verify(tree, len(stored)); nil != err {
		return err
	}

	w.log.Debugf("size: %d  remaining: %d  height: %d", n, len(stored), tree.Height())

	// return the nodes to the allocator
	for _, v := range tree.Items() {
		if err := tree.Remove(v); nil != err {
			return err
		}
		w.totals.deleted.Increment()
	}
	if !tree.IsEmpty() {
		return fault.ErrCountMismatch
	}
	return nil
}

// check order, balance, count and the height bound
func verify(tree *avl.Tree, expected int) error {
	if err := tree.Check(); nil != err {
		return err
	}
	if tree.Count() != expected {
		return fault.ErrCountMismatch
	}
	if float64(tree.Height()) > heightBound(expected) {
		return fault.ErrHeightExceedsBound
	}
	return nil
}

// maximum height of an AVL tree holding n nodes
func heightBound(n int) float64 {
	return 1.44*math.Log2(float64(n+2)) - 0.33
}
