// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/configuration"
)

type metadata struct {
	file      string
	config    *configuration.Configuration
	tree      *avl.Tree
	valueType string
	verbose   bool
	e         io.Writer
	w         io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "apply operations to an ordered balanced tree"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "value-type, t",
			Value: "",
			Usage: " type of values `TYPE` [integer|float|string]",
		},
		cli.StringFlag{
			Name:  "values, V",
			Value: "",
			Usage: " comma separated initial `VALUES`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "apply a sequence of operations",
			ArgsUsage: "OPERATION [ARGUMENT]...",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: " read operations from `FILE`",
				},
			},
			Action: runScript,
		},
		{
			Name:      "watch",
			Usage:     "re-run an operations file whenever it changes",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*operations `FILE` to watch",
				},
			},
			Action: runWatch,
		},
		{
			Name:  "print",
			Usage: "draw the tree",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "balance, b",
					Usage: " show the balance factor of each node",
				},
			},
			Action: runPrint,
		},
		{
			Name:   "list",
			Usage:  "list values in ascending order",
			Action: runList,
		},
		{
			Name:   "reverse",
			Usage:  "list values in descending order",
			Action: runReverse,
		},
		{
			Name:   "check",
			Usage:  "verify order and balance of the tree",
			Action: runCheck,
		},
		{
			Name:  "version",
			Usage: "display avl-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and build the initial tree
	app.Before = func(c *cli.Context) error {

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "" == command || "version" == command || "help" == command || "h" == command {
			return nil
		}

		m, err := setup(c.App.Name, c.GlobalString("config-file"), c.GlobalString("value-type"), c.GlobalString("values"))
		if nil != err {
			return err
		}
		m.verbose = c.GlobalBool("verbose")
		m.e = c.App.ErrWriter
		m.w = c.App.Writer

		if m.verbose {
			if "" != m.file {
				fmt.Fprintf(m.e, "config file: %s\n", m.file)
			}
			fmt.Fprintf(m.e, "value type: %s  initial count: %d\n", m.valueType, m.tree.Count())
		}

		c.App.Metadata["config"] = m
		return nil
	}

	// stop logging
	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
