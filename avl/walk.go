// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Walk - call f for each node in ascending key order until f returns
// false
//
// the tree must not be modified by f
func (tree *Tree) Walk(f func(node *Node) bool) {
	walk(tree.root, f)
}

func walk(p *Node, f func(node *Node) bool) bool {
	if nil == p {
		return true
	}
	if !walk(p.left, f) {
		return false
	}
	if !f(p) {
		return false
	}
	return walk(p.right, f)
}
