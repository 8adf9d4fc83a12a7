// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// channel for the last words before a panic
var panicLog struct {
	sync.Mutex
	log *logger.L
}

// Initialise - open the PANIC channel, requires logger to be running
func Initialise() error {
	panicLog.Lock()
	defer panicLog.Unlock()

	if nil != panicLog.log {
		return ErrAlreadyInitialised
	}
	panicLog.log = logger.New("PANIC")
	if nil == panicLog.log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and detach the PANIC channel
func Finalise() {
	panicLog.Lock()
	defer panicLog.Unlock()

	if nil != panicLog.log {
		panicLog.log.Flush()
		panicLog.log = nil
	}
}

// Criticalf - log a formatted message prefixed with the caller's position
func Criticalf(format string, arguments ...interface{}) {
	criticalf(2, format, arguments...)
}

// Panicf - log a formatted message then panic with it
func Panicf(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	criticalf(2, "%s", message)
	abort(message)
}

// Panic - log the error then panic with it
//
// the panic value is the error itself so that a recover can
// classify it with the IsErrX functions
func Panic(err error) {
	criticalf(2, "%s", err)
	abort(err)
}

func abort(v interface{}) {
	time.Sleep(10 * time.Millisecond) // allow log output to drain
	panic(v)
}

// prefix caller file:line then send to PANIC channel or stdout
func criticalf(skip int, format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(skip); ok {
		a := make([]interface{}, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		arguments = append(a, arguments...)
		format = "(%q:%d) " + format
	}

	panicLog.Lock()
	defer panicLog.Unlock()

	if nil == panicLog.log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	panicLog.log.Criticalf(format, arguments...)
	panicLog.log.Flush()
}
