// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"

	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// global data for allocator
var m sync.Mutex               // to keep pool in sync
var pool *Node                 // linked list of reclaimed nodes
var totalNodes counter.Counter // total nodes created
var freeNodes counter.Counter  // number of nodes in the pool

// allocate a new node, reuses reclaimed nodes if any are available
func newNode(key Item, value interface{}, up *Node) *Node {
	m.Lock()
	defer m.Unlock()

	if nil == pool {
		if !freeNodes.IsZero() {
			fault.Panicf("avl: node pool corrupt: free count: %d", freeNodes.Int64())
		}
		totalNodes.Increment()
		return &Node{
			key:     key,
			value:   value,
			up:      up,
			balance: 0,
		}
	}
	p := pool
	pool = p.up
	p.key = key
	p.value = value
	p.balance = 0
	p.left = nil
	p.right = nil
	p.up = up // replaces the free list pointer
	freeNodes.Decrement()
	return p
}

// reclaim a node and keep it in a pool
func freeNode(node *Node) {
	m.Lock()
	node.up = pool // use as free list pointer

	node.left = nil
	node.right = nil
	node.key = nil
	node.value = nil
	node.balance = 0
	freeNodes.Increment()

	pool = node
	m.Unlock()
}

// Statistics - number of nodes ever allocated and number currently
// waiting in the pool for reuse
func Statistics() (total int64, free int64) {
	m.Lock()
	defer m.Unlock()
	return totalNodes.Int64(), freeNodes.Int64()
}
