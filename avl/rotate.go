// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// rotations only move links; the caller sets the balance factors
// according to the case that required the rotation
//
//        p                 m
//       / \               / \
//      a   m     ==>     p   c
//         / \           / \
//        b   c         a   b
//
func (tree *Tree) rotateLeft(p *Node) {
	m := p.right
	if nil == m {
		fault.Panicf("avl: rotate left: node: %v has no right child", p.key)
	}
	tree.setChild(p.up, isLeftChild(p), m)

	b := m.left
	m.left = p
	p.up = m

	p.right = b
	if nil != b {
		b.up = p
	}
}

// mirror of rotateLeft
//
//          p             m
//         / \           / \
//        m   c   ==>   a   p
//       / \               / \
//      a   b             b   c
//
func (tree *Tree) rotateRight(p *Node) {
	m := p.left
	if nil == m {
		fault.Panicf("avl: rotate right: node: %v has no left child", p.key)
	}
	tree.setChild(p.up, isLeftChild(p), m)

	b := m.right
	m.right = p
	p.up = m

	p.left = b
	if nil != b {
		b.up = p
	}
}
