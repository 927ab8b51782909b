// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: exchange the tree positions of two nodes; keys and values
// stay with their nodes
func (tree *Tree) swapPositions(n1 *Node, n2 *Node) {
	if n1 == n2 {
		return
	}
	// if adjacent, make n1 the upper node
	if n1.up == n2 {
		n1, n2 = n2, n1
	}

	p1, p1Left := n1.up, isLeftChild(n1)
	l1, r1 := n1.left, n1.right
	p2, p2Left := n2.up, isLeftChild(n2)
	l2, r2 := n2.left, n2.right

	if p2 == n1 {
		tree.setChild(p1, p1Left, n2)
		if l1 == n2 {
			tree.setChild(n2, true, n1)
			tree.setChild(n2, false, r1)
		} else {
			tree.setChild(n2, false, n1)
			tree.setChild(n2, true, l1)
		}
	} else {
		// sides were recorded first as p1 and p2 may be the same node
		tree.setChild(p1, p1Left, n2)
		tree.setChild(p2, p2Left, n1)
		tree.setChild(n2, true, l1)
		tree.setChild(n2, false, r1)
	}
	tree.setChild(n1, true, l2)
	tree.setChild(n1, false, r2)
}

// internal: as swapPositions, but balance factors stay with the
// positions, since they describe the shape below each position
func (tree *Tree) nodeSwap(n1 *Node, n2 *Node) {
	tree.swapPositions(n1, n2)
	n1.balance, n2.balance = n2.balance, n1.balance
}
