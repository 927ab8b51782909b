// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/avltree/counter"
)

// test incrementing/decrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if !c1.IsZero() {
		t.Errorf("counter is not zero at start: %d", c1.Int64())
	}

	for i := 0; i < 5; i += 1 {
		c1.Increment()
	}
	if 5 != c1.Int64() {
		t.Errorf("counter is not 5 after incrementing: %d", c1.Int64())
	}

	if n := c1.Decrement(); 4 != n {
		t.Errorf("counter is not 4 after decrementing: %d", n)
	}

	if n := c1.Add(-4); 0 != n || !c1.IsZero() {
		t.Errorf("counter did not return to zero: %d", n)
	}

	// below zero is visible, not wrapped
	c1.Decrement()
	if -1 != c1.Int64() {
		t.Errorf("counter is not -1: %d", c1.Int64())
	}

	if previous := c1.Reset(); -1 != previous || !c1.IsZero() {
		t.Errorf("reset: previous: %d  current: %d", previous, c1.Int64())
	}
}

func TestCounterConcurrent(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup

	for i := 0; i < 8; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j += 1 {
				c.Increment()
				c.Add(2)
				c.Decrement()
			}
		}()
	}
	wg.Wait()

	if 16000 != c.Int64() {
		t.Errorf("counter: %d  expected: 16000", c.Int64())
	}
}
