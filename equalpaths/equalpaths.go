// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package equalpaths - check whether every leaf of a binary tree is at
// the same depth
package equalpaths

import (
	"github.com/bitmark-inc/avltree/avl"
)

// Node - a node of an arbitrary binary tree
type Node struct {
	Key   int
	Left  *Node
	Right *Node
}

// Depth - number of nodes on the longest path from root to a leaf
func Depth(root *Node) int {
	if nil == root {
		return 0
	}
	l := Depth(root.Left)
	r := Depth(root.Right)
	if l > r {
		return 1 + l
	}
	return 1 + r
}

// Equal - true if all leaves are at the same depth, an empty tree
// counts as equal
func Equal(root *Node) bool {
	if nil == root {
		return true
	}
	return leavesAt(root, 1, Depth(root))
}

// internal: every leaf below root, which is at depth, must be at goal
func leavesAt(root *Node, depth int, goal int) bool {
	if nil == root {
		return true
	}
	if nil == root.Left && nil == root.Right {
		return depth == goal
	}
	return leavesAt(root.Left, depth+1, goal) && leavesAt(root.Right, depth+1, goal)
}

// FromAVL - copy the shape of an AVL tree, each node of the copy is
// labelled with the in-order position of the corresponding AVL node
func FromAVL(tree *avl.Tree) *Node {
	index := 0
	return fromAVL(tree.Root(), &index)
}

func fromAVL(p *avl.Node, index *int) *Node {
	if nil == p {
		return nil
	}
	n := &Node{}
	n.Left = fromAVL(p.Left(), index)
	n.Key = *index
	*index += 1
	n.Right = fromAVL(p.Right(), index)
	return n
}
