// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

const (
	progressInterval = 5 * time.Second
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "workers", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'w'},
		{Long: "max-size", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'm'},
		{Long: "rounds", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
		{Long: "duration", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s: version: %s\n", program, version)
		return
	}

	if len(options["help"]) > 0 || len(arguments) > 0 {
		usage(program)
		return
	}

	verbose := len(options["verbose"]) > 0

	var theConfiguration *configuration.Configuration
	switch len(options["config-file"]) {
	case 0:
		theConfiguration = configuration.Default(program)
	case 1:
		configurationFile := options["config-file"][0]
		theConfiguration, err = configuration.GetConfiguration(configurationFile, program)
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
		}
	default:
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	if err := applyOptions(&theConfiguration.Stress, options); nil != err {
		exitwithstatus.Message("%s: option error: %s", program, err)
	}
	stress := theConfiguration.Stress
	if 0 == stress.Seed {
		stress.Seed = time.Now().UnixNano()
	}

	// start logging
	if err := os.MkdirAll(theConfiguration.Logging.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: log directory: %q  error: %s", program, theConfiguration.Logging.Directory, err)
	}
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Infof("workers: %d  max size: %d  rounds: %d  duration: %ds", stress.Workers, stress.MaxSize, stress.Rounds, stress.DurationSeconds)
	log.Infof("seed: %d", stress.Seed)
	if verbose {
		fmt.Printf("seed: %d\n", stress.Seed)
	}

	t := &totals{}
	progress := rate.NewLimiter(rate.Every(progressInterval), 1)
	processes := make(background.Processes, stress.Workers)
	for i := range processes {
		l := logger.New(fmt.Sprintf("worker-%d", i))
		processes[i] = newWorker(l, stress.Seed+int64(i), stress.MaxSize, stress.Rounds, t, progress)
	}

	started := time.Now()
	workers := background.Start(processes, nil)

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	var timeout <-chan time.Time
	if stress.DurationSeconds > 0 {
		timeout = time.After(time.Duration(stress.DurationSeconds) * time.Second)
	}

	select {
	case <-workers.Done():
		log.Info("all workers completed")
	case sig := <-ch:
		log.Infof("received signal: %v", sig)
		if verbose {
			fmt.Printf("\nreceived signal: %v\n", sig)
		}
	case <-timeout:
		log.Info("duration expired")
	}

	log.Info("shutting down…")
	workers.Stop()

	total, free := avl.NodeStats()
	report := fmt.Sprintf("rounds: %d  inserted: %d  deleted: %d  rejected: %d  failures: %d  nodes: %d  free: %d  elapsed: %s",
		t.rounds.Uint64(),
		t.inserted.Uint64(),
		t.deleted.Uint64(),
		t.rejected.Uint64(),
		t.failures.Uint64(),
		total,
		free,
		time.Since(started).Round(time.Millisecond),
	)
	log.Info(report)
	fmt.Println(report)

	if !t.failures.IsZero() {
		log.Criticalf("seed: %d  error: %s", stress.Seed, fault.ErrWorkersFailed)
		exitwithstatus.Message("%s: seed: %d  error: %s", program, stress.Seed, fault.ErrWorkersFailed)
	}
}

// override configured stress parameters from the command line
func applyOptions(stress *configuration.StressType, options map[string][]string) error {

	positive := []struct {
		name  string
		value *int
	}{
		{"workers", &stress.Workers},
		{"max-size", &stress.MaxSize},
	}
	for _, p := range positive {
		if 0 == len(options[p.name]) {
			continue
		}
		n, err := strconv.Atoi(options[p.name][0])
		if nil != err || n <= 0 {
			return fault.ErrInvalidCount
		}
		*p.value = n
	}

	if 0 != len(options["rounds"]) {
		n, err := strconv.Atoi(options["rounds"][0])
		if nil != err || n < 0 {
			return fault.ErrInvalidCount
		}
		stress.Rounds = n
	}

	if 0 != len(options["duration"]) {
		d, err := time.ParseDuration(options["duration"][0])
		if nil != err || d < 0 {
			return fault.ErrInvalidDuration
		}
		stress.DurationSeconds = int((d + time.Second - 1) / time.Second)
	}

	if 0 != len(options["seed"]) {
		seed, err := strconv.ParseInt(options["seed"][0], 0, 64)
		if nil != err {
			return fault.ErrInvalidValue
		}
		stress.Seed = seed
	}

	return nil
}

func usage(program string) {
	fmt.Printf("usage: %s [options]\n", program)
	fmt.Printf("  --help               -h            this message\n")
	fmt.Printf("  --verbose            -v            print seed and signals\n")
	fmt.Printf("  --version            -V            display version\n")
	fmt.Printf("  --config-file=FILE   -c FILE       Lua configuration file\n")
	fmt.Printf("  --workers=N          -w N          number of concurrent workers\n")
	fmt.Printf("  --max-size=N         -m N          largest tree built by a worker\n")
	fmt.Printf("  --rounds=N           -r N          rounds per worker, 0 to run until stopped\n")
	fmt.Printf("  --duration=D         -d D          stop after duration, e.g. 30s\n")
	fmt.Printf("  --seed=N             -s N          random seed, 0 for time based\n")
}
