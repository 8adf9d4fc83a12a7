// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/script"
)

// re-run an operations file against a fresh copy of the initial tree
// each time the file is saved
func runWatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	file := c.String("file")
	if "" == file {
		return fault.ErrMissingArgument
	}

	log := logger.New("watch")

	watcher, err := newFileWatcher(file, log)
	if nil != err {
		return err
	}
	if err := watcher.Start(); nil != err {
		return err
	}
	defer watcher.Stop()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	initial := m.tree.Items()
	runFile(m, log, watcher.filePath, initial)

	for {
		select {
		case <-watcher.change:
			fmt.Fprintf(m.w, "\n")
			runFile(m, log, watcher.filePath, initial)
		case <-watcher.remove:
			return fault.ErrScriptFileRemoved
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			return nil
		}
	}
}

// a failing script is reported and watching continues
func runFile(m *metadata, log *logger.L, file string, initial []avl.Item) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		fmt.Fprintf(m.e, "read: %s  error: %s\n", file, err)
		return
	}

	runner, err := script.New(avl.NewFrom(initial...), m.valueType, m.w, logger.New("script"))
	if nil != err {
		fmt.Fprintf(m.e, "error: %s\n", err)
		return
	}
	summary, err := runner.Run(strings.Fields(string(data)))
	if nil != err {
		fmt.Fprintf(m.e, "stopped after: %d operations  error: %s\n", summary.Operations, err)
		return
	}
	log.Infof("operations: %d  rejected: %d", summary.Operations, summary.Rejected)
	if m.verbose {
		fmt.Fprintf(m.e, "operations: %d  rejected: %d\n", summary.Operations, summary.Rejected)
	}
}
