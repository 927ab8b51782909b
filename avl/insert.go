// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - insert a new node into the tree, or overwrite the value of
// an existing key
//
// returns true if a new node was added
func (tree *Tree) Insert(key Item, value interface{}) bool {
	if nil == tree.root {
		tree.root = newNode(key, value, nil)
		tree.count += 1
		return true
	}

	p := tree.root
	for {
		switch p.key.Compare(key) {
		case +1: // p.key > key
			if nil == p.left {
				p.left = newNode(key, value, p)
				tree.grown(p, p.left, -1)
				return true
			}
			p = p.left
		case -1: // p.key < key
			if nil == p.right {
				p.right = newNode(key, value, p)
				tree.grown(p, p.right, +1)
				return true
			}
			p = p.right
		default:
			p.value = value // shape is unchanged
			return false
		}
	}
}

// internal: a new leaf was attached below parent on the side given by diff
func (tree *Tree) grown(parent *Node, node *Node, diff int8) {
	tree.count += 1

	// parent had at most one child, so it can only reach zero here
	// unless the tree was already corrupt
	parent.updateBalance(diff)
	switch parent.balance {
	case 0:
		// filled the shorter side, height unchanged
	case -1, +1:
		tree.insertFix(parent, node)
	default:
		fault.Panicf("avl: insert: parent: %v balance: %d out of range", parent.key, parent.balance)
	}
}

// internal: parent's sub-tree has grown by one level, node is the
// child of parent on the path that grew
func (tree *Tree) insertFix(parent *Node, node *Node) {
	for nil != parent {
		grandparent := parent.up
		if nil == grandparent {
			return
		}

		if grandparent.left == parent {
			grandparent.updateBalance(-1)
			switch grandparent.balance {
			case 0:
				return
			case -1:
				parent, node = grandparent, parent
				continue
			case -2:
			default:
				fault.Panicf("avl: insert fix: node: %v balance: %d out of range", grandparent.key, grandparent.balance)
			}

			if parent.left == node {
				// zig-zig: left-left
				tree.rotateRight(grandparent)
				grandparent.setBalance(0)
				parent.setBalance(0)
			} else {
				// zig-zag: left-right
				tree.rotateLeft(parent)
				tree.rotateRight(grandparent)
				switch node.balance {
				case -1:
					parent.setBalance(0)
					grandparent.setBalance(+1)
				case 0:
					parent.setBalance(0)
					grandparent.setBalance(0)
				case +1:
					parent.setBalance(-1)
					grandparent.setBalance(0)
				}
				node.setBalance(0)
			}
			return
		}

		grandparent.updateBalance(+1)
		switch grandparent.balance {
		case 0:
			return
		case +1:
			parent, node = grandparent, parent
			continue
		case +2:
		default:
			fault.Panicf("avl: insert fix: node: %v balance: %d out of range", grandparent.key, grandparent.balance)
		}

		if parent.right == node {
			// zig-zig: right-right
			tree.rotateLeft(grandparent)
			grandparent.setBalance(0)
			parent.setBalance(0)
		} else {
			// zig-zag: right-left
			tree.rotateRight(parent)
			tree.rotateLeft(grandparent)
			switch node.balance {
			case +1:
				parent.setBalance(0)
				grandparent.setBalance(-1)
			case 0:
				parent.setBalance(0)
				grandparent.setBalance(0)
			case -1:
				parent.setBalance(+1)
				grandparent.setBalance(0)
			}
			node.setBalance(0)
		}
		return
	}
}
