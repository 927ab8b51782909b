// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"io"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/equalpaths"
	"github.com/bitmark-inc/avltree/fault"
)

//go:generate mockgen -source=store.go -destination=mocks/store.go -package=mocks

// Store - the operations used by the interpreter
type Store interface {
	Insert(key string, value string) bool
	Delete(key string) (string, bool)
	Find(key string) (string, bool)
	List(f func(key string, value string) bool)
	Count() int
	Height() int
	Print(w io.Writer, printData bool) int
	Check() error
	EqualPaths() bool
	Clear()
}

// Key - string key for the tree
type Key string

// Compare - key comparison for AVL interface
func (k Key) Compare(x interface{}) int {
	return strings.Compare(string(k), string(x.(Key)))
}

// TreeStore - Store backed by an AVL tree
type TreeStore struct {
	tree *avl.Tree
}

// NewTreeStore - create an empty store
func NewTreeStore() *TreeStore {
	return &TreeStore{
		tree: avl.New(),
	}
}

// Insert - add or overwrite, true if added
func (s *TreeStore) Insert(key string, value string) bool {
	return s.tree.Insert(Key(key), value)
}

// Delete - remove a key returning its value
func (s *TreeStore) Delete(key string) (string, bool) {
	value := s.tree.Delete(Key(key))
	if nil == value {
		return "", false
	}
	return value.(string), true
}

// Find - value of a key
func (s *TreeStore) Find(key string) (string, bool) {
	node := s.tree.Search(Key(key))
	if nil == node {
		return "", false
	}
	return node.Value().(string), true
}

// List - ascending order until f returns false
func (s *TreeStore) List(f func(key string, value string) bool) {
	s.tree.Walk(func(node *avl.Node) bool {
		return f(string(node.Key().(Key)), node.Value().(string))
	})
}

// Count - number of keys
func (s *TreeStore) Count() int {
	return s.tree.Count()
}

// Height - levels in the tree
func (s *TreeStore) Height() int {
	return s.tree.Height()
}

// Print - ASCII picture of the tree
func (s *TreeStore) Print(w io.Writer, printData bool) int {
	return s.tree.Fprint(w, printData)
}

// Check - verify links, balance factors and key order
func (s *TreeStore) Check() error {
	if !s.tree.CheckUp() || !s.tree.CheckBalance() || !s.tree.CheckOrder() {
		return fault.ErrInvariantFailed
	}
	return nil
}

// EqualPaths - true if all leaves are at the same depth
func (s *TreeStore) EqualPaths() bool {
	return equalpaths.Equal(equalpaths.FromAVL(s.tree))
}

// Clear - release all nodes
func (s *TreeStore) Clear() {
	s.tree.Clear()
}
