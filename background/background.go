// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run a set of go routines that can be told to
// stop and waited for
package background

import (
	"sync"
)

// Process - a background process; Run should return promptly once
// shutdown is closed, it may also return earlier when its work is done
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for a running set of processes
type T struct {
	shutdown chan struct{}
	once     sync.Once
	finished chan struct{}
}

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {

	register := &T{
		shutdown: make(chan struct{}),
		finished: make(chan struct{}),
	}

	var wg sync.WaitGroup
	wg.Add(len(processes))

	// start each background
	for _, p := range processes {
		go func(p Process) {
			defer wg.Done()
			p.Run(args, register.shutdown)
		}(p)
	}

	go func() {
		wg.Wait()
		close(register.finished)
	}()

	return register
}

// Done - closed when every process has returned
func (t *T) Done() <-chan struct{} {
	return t.finished
}

// Stop - signal all processes to shutdown then wait for them to finish
func (t *T) Stop() {
	t.once.Do(func() {
		close(t.shutdown)
	})
	<-t.finished
}
