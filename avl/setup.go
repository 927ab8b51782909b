// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - number of nodes on the longest path from the root to a leaf
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Clear - release every node and leave an empty tree
func (tree *Tree) Clear() {
	release(tree.root)
	tree.root = nil
	tree.count = 0
}

// internal: return a sub-tree to the pool, children first
func release(p *Node) {
	if nil == p {
		return
	}
	release(p.left)
	release(p.right)
	freeNode(p)
}

// internal: link child into the slot on the given side of parent,
// a nil parent means the root slot
func (tree *Tree) setChild(parent *Node, onLeft bool, child *Node) {
	if nil == parent {
		tree.root = child
	} else if onLeft {
		parent.left = child
	} else {
		parent.right = child
	}
	if nil != child {
		child.up = parent
	}
}

// internal: true if p hangs from the left of its parent
func isLeftChild(p *Node) bool {
	return nil != p.up && p.up.left == p
}
