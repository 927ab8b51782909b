// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - statistics counters that can be read while
// another go routine updates them
package counter

import (
	"sync/atomic"
)

// Counter - signed 64 bit counter, a negative value shows that more
// decrements than increments were made
type Counter int64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() int64 {
	return atomic.AddInt64((*int64)(ic), 1)
}

// Decrement - subtract 1 from a counter, returns new value
func (ic *Counter) Decrement() int64 {
	return atomic.AddInt64((*int64)(ic), -1)
}

// Add - add a signed delta, returns new value
func (ic *Counter) Add(delta int64) int64 {
	return atomic.AddInt64((*int64)(ic), delta)
}

// Int64 - returns current value
func (ic *Counter) Int64() int64 {
	return atomic.LoadInt64((*int64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == atomic.LoadInt64((*int64)(ic))
}

// Reset - set to zero, returns the previous value
func (ic *Counter) Reset() int64 {
	return atomic.SwapInt64((*int64)(ic), 0)
}
