// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avltree/fault"
)

const (
	fileWatcherLoggerPrefix = "file-watcher"
)

// FileWatcher - signals changes to a single script file
type FileWatcher interface {
	Start() error
	Stop()
}

// WatcherChannel - events delivered by the watcher
type WatcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

type fileWatcher struct {
	log      *logger.L
	channel  WatcherChannel
	watcher  *fsnotify.Watcher
	filePath string
}

func newFileWatcher(targetFile string, log *logger.L, channel WatcherChannel) (FileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	info, err := os.Stat(filePath)
	if nil != err {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fault.ErrNotAFile
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		channel:  channel,
		watcher:  watcher,
		filePath: filePath,
	}, nil
}

// Start - begin delivering events
//
// the directory is watched rather than the file so that editors which
// replace the file on save are still seen
func (w *fileWatcher) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				w.log.Debugf("file event: %v", event)
				if filepath.Clean(event.Name) != w.filePath {
					continue
				}
				if isRemoveEvent(event) {
					if _, err := os.Stat(w.filePath); nil == err {
						w.send(w.channel.change, "change")
						continue
					}
					w.log.Warnf("file %s removed", w.filePath)
					w.send(w.channel.remove, "remove")
					continue
				}
				if isChangeEvent(event) {
					w.send(w.channel.change, "change")
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.log.Errorf("watcher error: %s", err)
			}
		}
	}()

	return nil
}

// Stop - release the underlying watcher
func (w *fileWatcher) Stop() {
	w.watcher.Close()
}

// channels are buffered with one slot, an event already pending is enough
func (w *fileWatcher) send(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func isRemoveEvent(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func isChangeEvent(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
