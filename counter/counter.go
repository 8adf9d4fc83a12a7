// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - totals shared between go routines
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned total that can be updated from several
// go routines without a lock
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Add - add n to a counter, returns new value
func (c *Counter) Add(n uint64) uint64 {
	return atomic.AddUint64((*uint64)(c), n)
}

// Uint64 - returns current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}

// Reset - set to zero, returns the value before the reset
func (c *Counter) Reset() uint64 {
	return atomic.SwapUint64((*uint64)(c), 0)
}
