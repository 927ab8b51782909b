// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at node: %v   actual: %v  expected: %v\n", p.key, keyOf(p.up), keyOf(up))
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckBalance - recompute every sub-tree height and compare the
// difference with the stored balance factor
func (tree *Tree) CheckBalance() bool {
	_, ok := checkBalance(tree.root)
	return ok
}

// internal: returns the height of the sub-tree
func checkBalance(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, ok := checkBalance(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkBalance(p.right)
	if !ok {
		return 0, false
	}
	b := rh - lh
	if b < -1 || b > 1 || b != int(p.balance) {
		fmt.Printf("fail at node: %v   balance: %d  heights: [%d,%d]\n", p.key, p.balance, lh, rh)
		return 0, false
	}
	if lh > rh {
		return 1 + lh, true
	}
	return 1 + rh, true
}

// CheckOrder - check that an in-order walk gives strictly increasing
// keys and that the walk agrees with the node count
func (tree *Tree) CheckOrder() bool {
	n := 0
	var previous *Node
	ok := true
	tree.Walk(func(p *Node) bool {
		if nil != previous && -1 != previous.key.Compare(p.key) {
			fmt.Printf("fail at node: %v   previous: %v\n", p.key, previous.key)
			ok = false
			return false
		}
		previous = p
		n += 1
		return true
	})
	if ok && n != tree.count {
		fmt.Printf("fail: walked: %d nodes  count: %d\n", n, tree.count)
		return false
	}
	return ok
}

// internal: brute force height of a sub-tree
func height(p *Node) int {
	if nil == p {
		return 0
	}
	lh := height(p.left)
	rh := height(p.right)
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}

func keyOf(p *Node) interface{} {
	if nil == p {
		return nil
	}
	return p.key
}
