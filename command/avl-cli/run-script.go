// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/script"
)

func runScript(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tokens := []string(c.Args())
	if file := c.String("file"); "" != file {
		data, err := ioutil.ReadFile(file)
		if nil != err {
			return err
		}
		tokens = append(strings.Fields(string(data)), tokens...)
	}
	if 0 == len(tokens) {
		return fault.ErrMissingArgument
	}

	runner, err := script.New(m.tree, m.valueType, m.w, logger.New("script"))
	if nil != err {
		return err
	}

	summary, err := runner.Run(tokens)
	if m.verbose {
		fmt.Fprintf(m.e, "operations: %d  rejected: %d\n", summary.Operations, summary.Rejected)
	}
	return err
}
