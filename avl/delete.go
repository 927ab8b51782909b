// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Delete - removes a specific item from the tree
//
// returns the value of the removed item, or nil if the key was not in
// the tree
func (tree *Tree) Delete(key Item) interface{} {
	q := tree.Search(key)
	if nil == q {
		return nil
	}
	value := q.value // preserve the value part

	// the predecessor of a node with two children has no right
	// child, so after the swap q has at most one child
	if nil != q.left && nil != q.right {
		tree.nodeSwap(q, q.Prev())
	}

	child := q.left
	if nil == child {
		child = q.right
	}

	// diff: the balance change seen by the parent
	parent := q.up
	diff := int8(0)
	onLeft := isLeftChild(q)
	if nil != parent {
		if onLeft {
			diff = +1
		} else {
			diff = -1
		}
	}
	tree.setChild(parent, onLeft, child)

	freeNode(q) // return deleted node to pool
	tree.count -= 1

	tree.removeFix(parent, diff)
	return value
}

// internal: one side of node's sub-tree has shrunk by one level
//
// diff is +1 when the left side shrank and -1 when the right side
// shrank
func (tree *Tree) removeFix(node *Node, diff int8) {
	for nil != node {
		// precompute the step for the parent, the slot stays the
		// same even if node is rotated down
		parent := node.up
		nDiff := int8(0)
		if nil != parent {
			if parent.left == node {
				nDiff = +1
			} else {
				nDiff = -1
			}
		}

		switch node.balance + diff {
		case -2:
			child := node.left
			switch child.balance {
			case -1:
				tree.rotateRight(node)
				node.setBalance(0)
				child.setBalance(0)
			case 0:
				tree.rotateRight(node)
				node.setBalance(-1)
				child.setBalance(+1)
				return // height unchanged
			case +1:
				grandchild := child.right
				tree.rotateLeft(child)
				tree.rotateRight(node)
				switch grandchild.balance {
				case +1:
					node.setBalance(0)
					child.setBalance(-1)
				case 0:
					node.setBalance(0)
					child.setBalance(0)
				case -1:
					node.setBalance(+1)
					child.setBalance(0)
				}
				grandchild.setBalance(0)
			}

		case +2:
			child := node.right
			switch child.balance {
			case +1:
				tree.rotateLeft(node)
				node.setBalance(0)
				child.setBalance(0)
			case 0:
				tree.rotateLeft(node)
				node.setBalance(+1)
				child.setBalance(-1)
				return // height unchanged
			case -1:
				grandchild := child.left
				tree.rotateRight(child)
				tree.rotateLeft(node)
				switch grandchild.balance {
				case -1:
					node.setBalance(0)
					child.setBalance(+1)
				case 0:
					node.setBalance(0)
					child.setBalance(0)
				case +1:
					node.setBalance(-1)
					child.setBalance(0)
				}
				grandchild.setBalance(0)
			}

		case -1, +1:
			// was level, the taller side is still the same height
			node.updateBalance(diff)
			return

		case 0:
			node.setBalance(0)

		default:
			fault.Panicf("avl: remove fix: node: %v balance: %d diff: %d out of range", node.key, node.balance, diff)
		}

		node, diff = parent, nDiff
	}
}
