// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with parent pointers to allow
// iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node carries a balance factor: height(right) - height(left),
// which is kept in the range -1 … +1.  Insert and Delete first make
// the structural change and then walk up the parent pointers
// adjusting the balance factors, rotating where a factor would reach
// ±2 and stopping as soon as a sub-tree height is known not to have
// changed.
//
// Inserting an existing key overwrites its data.  Delete never copies
// keys or data between nodes: a node with two children exchanges tree
// positions with its predecessor before being unlinked, so pointers to
// the remaining nodes stay valid.
package avl
