// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - a line oriented command interpreter that drives a
// key/value store
//
// each line holds one command, blank lines and lines starting with
// '#' are ignored:
//
//   insert KEY VALUE…   add or overwrite (add is a synonym, the value is the rest of the line)
//   delete KEY          remove a key (remove is a synonym), absent keys are ignored
//   find KEY            show the value of a key (get is a synonym)
//   list                show all keys in order
//   count               number of keys
//   height              height of the tree
//   print               ASCII picture of the tree
//   check               verify the tree invariants
//   equal-paths         report whether all leaves are at the same depth
//   stats               node allocator statistics
//   clear               remove everything
package script
