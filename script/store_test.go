// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/script"
)

func TestTreeStore(t *testing.T) {
	s := script.NewTreeStore()

	for i := 1; i <= 4; i += 1 {
		assert.True(t, s.Insert(fmt.Sprintf("k%d", i), fmt.Sprintf("v%d", i)), "insert")
	}
	assert.False(t, s.Insert("k2", "new"), "overwrite")
	assert.Equal(t, 4, s.Count(), "count")
	assert.Equal(t, 3, s.Height(), "height")
	assert.Nil(t, s.Check(), "check")

	// k4 hangs one level below the other leaf
	assert.False(t, s.EqualPaths(), "equal paths")

	value, ok := s.Find("k2")
	assert.True(t, ok, "find")
	assert.Equal(t, "new", value, "value")

	_, ok = s.Find("k9")
	assert.False(t, ok, "find missing")

	keys := []string{}
	s.List(func(key string, value string) bool {
		keys = append(keys, key)
		return len(keys) < 3
	})
	assert.Equal(t, []string{"k1", "k2", "k3"}, keys, "early stop")

	value, ok = s.Delete("k4")
	assert.True(t, ok, "delete")
	assert.Equal(t, "v4", value, "deleted value")
	assert.True(t, s.EqualPaths(), "equal paths after delete")

	buffer := &bytes.Buffer{}
	assert.Equal(t, 2, s.Print(buffer, false), "print depth")
	assert.Contains(t, buffer.String(), "k2", "print output")

	s.Clear()
	assert.Equal(t, 0, s.Count(), "cleared")
	_, ok = s.Delete("k1")
	assert.False(t, ok, "delete from empty")
}
