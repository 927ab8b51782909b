// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/script"
	"github.com/bitmark-inc/avltree/script/mocks"
)

func newInterpreter(store script.Store, options script.Options) (*script.Interpreter, *bytes.Buffer) {
	buffer := &bytes.Buffer{}
	return script.New(store, buffer, logger.New(category), options), buffer
}

func TestInsertCommand(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockStore(ctl)
	m.EXPECT().Insert("k1", "some value").Return(true).Times(1)
	m.EXPECT().Insert("k1", "other").Return(false).Times(1)

	in, out := newInterpreter(m, script.Options{})
	assert.Nil(t, in.Execute("insert k1 some value"), "first insert")
	assert.Nil(t, in.Execute("  add   k1 other  "), "second insert")
	assert.Equal(t, "added: k1\nupdated: k1\n", out.String(), "output")
}

func TestInsertMissingArguments(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockStore(ctl)
	m.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

	in, _ := newInterpreter(m, script.Options{})
	assert.Equal(t, fault.ErrMissingKey, in.Execute("insert"), "no key")
	assert.Equal(t, fault.ErrMissingValue, in.Execute("insert k"), "no value")
}

func TestCheckAfterEach(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockStore(ctl)
	gomock.InOrder(
		m.EXPECT().Insert("a", "1").Return(true),
		m.EXPECT().Check().Return(nil),
		m.EXPECT().Delete("a").Return("1", true),
		m.EXPECT().Check().Return(fault.ErrInvariantFailed),
		m.EXPECT().Count().Return(0),
	)

	in, _ := newInterpreter(m, script.Options{CheckAfterEach: true})
	assert.Nil(t, in.Execute("insert a 1"), "insert")
	assert.Equal(t, fault.ErrInvariantFailed, in.Execute("delete a"), "delete")
}

func TestDeleteAndFind(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockStore(ctl)
	m.EXPECT().Delete("x").Return("", false)
	m.EXPECT().Delete("y").Return("why", true)
	m.EXPECT().Find("y").Return("", false)
	m.EXPECT().Find("z").Return("zed", true)

	in, out := newInterpreter(m, script.Options{})
	assert.Nil(t, in.Execute("remove x"), "remove")
	assert.Nil(t, in.Execute("delete y"), "delete")
	assert.Nil(t, in.Execute("find y"), "find missing")
	assert.Nil(t, in.Execute("get z"), "get")

	expected := "absent: x\n" +
		"deleted: y → why\n" +
		"y: key not found\n" +
		"z → zed\n"
	assert.Equal(t, expected, out.String(), "output")

	assert.Equal(t, fault.ErrMissingKey, in.Execute("find"), "find without key")
	assert.Equal(t, fault.ErrTooManyArguments, in.Execute("delete a b"), "delete two keys")
}

func TestQueryCommands(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockStore(ctl)
	m.EXPECT().Count().Return(3)
	m.EXPECT().Height().Return(2)
	m.EXPECT().EqualPaths().Return(true)
	m.EXPECT().Check().Return(nil)
	m.EXPECT().Print(gomock.Any(), true).Return(2)
	m.EXPECT().Clear()

	in, out := newInterpreter(m, script.Options{PrintData: true})
	for _, command := range []string{"count", "height", "equal-paths", "check", "print", "clear"} {
		assert.Nil(t, in.Execute(command), command)
	}
	expected := "count: 3\n" +
		"height: 2\n" +
		"equal paths: true\n" +
		"check: ok\n" +
		"depth: 2\n" +
		"cleared\n"
	assert.Equal(t, expected, out.String(), "output")
}

func TestUnknownAndExtraArguments(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockStore(ctl)

	in, out := newInterpreter(m, script.Options{})
	assert.Equal(t, fault.ErrUnknownCommand, in.Execute("frobnicate"), "unknown")
	assert.Equal(t, fault.ErrUnknownCommand, in.Execute("frobnicate a b"), "unknown with arguments")
	assert.Equal(t, fault.ErrTooManyArguments, in.Execute("count 1"), "count with argument")
	assert.Nil(t, in.Execute("# just a comment"), "comment")
	assert.Nil(t, in.Execute("   "), "blank")
	assert.Equal(t, "", out.String(), "no output")
}

func TestRunContinuesAfterError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockStore(ctl)
	m.EXPECT().Insert("a", "1").Return(true)
	m.EXPECT().Count().Return(1)

	in, out := newInterpreter(m, script.Options{})
	err := in.Run(strings.NewReader("insert a 1\nbogus\ncount\nbogus again\n"))
	assert.Equal(t, fault.ErrUnknownCommand, err, "first error returned")
	expected := "added: a\n" +
		"error: line 2: unknown command\n" +
		"count: 1\n" +
		"error: line 4: unknown command\n"
	assert.Equal(t, expected, out.String(), "output")
}

func TestRunAgainstTree(t *testing.T) {
	store := script.NewTreeStore()
	in, out := newInterpreter(store, script.Options{CheckAfterEach: true})

	text := `# build a small tree
insert 2 two
insert 1 one
insert 3 three
equal-paths
list
delete 2
count
height
check
clear
count
`
	err := in.Run(strings.NewReader(text))
	assert.Nil(t, err, "run")

	expected := "added: 2\n" +
		"added: 1\n" +
		"added: 3\n" +
		"equal paths: true\n" +
		"1 → one\n" +
		"2 → two\n" +
		"3 → three\n" +
		"deleted: 2 → two\n" +
		"count: 2\n" +
		"height: 2\n" +
		"check: ok\n" +
		"cleared\n" +
		"count: 0\n"
	assert.Equal(t, expected, out.String(), "output")
}
