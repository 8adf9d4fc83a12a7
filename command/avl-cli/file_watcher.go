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

// notify when one file is written or removed
type fileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ErrNotFoundScriptFile
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}, nil
}

// Start - watch the directory so that editors replacing the file
// are still seen
func (w *fileWatcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.filePath)); nil != err {
		w.log.Errorf("watcher add error: %s", err)
		return err
	}

	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if event.Name != w.filePath {
					continue
				}
				w.log.Debugf("file event: %v", event)

				if isRemove(event) {
					w.log.Warnf("file: %s removed", w.filePath)
					sendEvent(w.remove)
					continue
				}
				if isChange(event) {
					sendEvent(w.change)
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

// Stop - release the watcher, ends the event loop
func (w *fileWatcher) Stop() {
	if err := w.watcher.Close(); nil != err {
		w.log.Errorf("watcher close error: %s", err)
	}
}

// pending events coalesce into one
func sendEvent(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

func isRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func isChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
