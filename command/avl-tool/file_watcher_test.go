// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
)

func setupLogger(t *testing.T) string {
	dir, err := ioutil.TempDir("", "avl-tool-log")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	err = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "test.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "debug",
		},
	})
	if nil != err {
		os.RemoveAll(dir)
		t.Fatalf("logger setup error: %s", err)
	}
	return dir
}

func teardown(dirs ...string) {
	logger.Finalise()
	for _, d := range dirs {
		os.RemoveAll(d)
	}
}

func newChannel() WatcherChannel {
	return WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

func TestFileWatcherEvents(t *testing.T) {
	logDir := setupLogger(t)
	dir, err := ioutil.TempDir("", "avl-tool-watch")
	assert.Nil(t, err, "temp dir")
	defer teardown(logDir, dir)

	name := filepath.Join(dir, "test.avl")
	err = ioutil.WriteFile(name, []byte("count\n"), 0600)
	assert.Nil(t, err, "write")

	channel := newChannel()
	w, err := newFileWatcher(name, logger.New("test"), channel)
	assert.Nil(t, err, "new watcher")
	assert.Nil(t, w.Start(), "start")
	defer w.Stop()

	err = ioutil.WriteFile(name, []byte("count\nheight\n"), 0600)
	assert.Nil(t, err, "rewrite")

	select {
	case <-channel.change:
	case <-time.After(2 * time.Second):
		t.Error("no change event")
	}

	err = os.Remove(name)
	assert.Nil(t, err, "remove")

	select {
	case <-channel.remove:
	case <-time.After(2 * time.Second):
		t.Error("no remove event")
	}
}

func TestFileWatcherRejects(t *testing.T) {
	logDir := setupLogger(t)
	defer teardown(logDir)

	_, err := newFileWatcher(filepath.Join(logDir, "no-such-file"), logger.New("test"), newChannel())
	assert.True(t, os.IsNotExist(err), "missing file")

	_, err = newFileWatcher(logDir, logger.New("test"), newChannel())
	assert.Equal(t, fault.ErrNotAFile, err, "directory")
}

func TestEventClassification(t *testing.T) {
	assert.True(t, isRemoveEvent(fsnotify.Event{Name: "x", Op: fsnotify.Remove}), "remove")
	assert.True(t, isRemoveEvent(fsnotify.Event{Name: "x", Op: fsnotify.Rename}), "rename")
	assert.False(t, isRemoveEvent(fsnotify.Event{Name: "x", Op: fsnotify.Write}), "write")
	assert.True(t, isChangeEvent(fsnotify.Event{Name: "x", Op: fsnotify.Write}), "write")
	assert.True(t, isChangeEvent(fsnotify.Event{Name: "x", Op: fsnotify.Create}), "create")
	assert.False(t, isChangeEvent(fsnotify.Event{Name: "x", Op: fsnotify.Chmod}), "chmod")
}

func TestSendDiscardsWhenFull(t *testing.T) {
	logDir := setupLogger(t)
	defer teardown(logDir)

	w := &fileWatcher{log: logger.New("test")}
	ch := make(chan struct{}, 1)
	w.send(ch, "test")
	w.send(ch, "test")
	assert.Equal(t, 1, len(ch), "one pending event")
}
