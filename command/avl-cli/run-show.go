// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
)

func runPrint(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if m.tree.IsEmpty() {
		fmt.Fprintf(m.w, "empty\n")
		return nil
	}
	depth := m.tree.Print(m.w, c.Bool("balance"))
	if m.verbose {
		fmt.Fprintf(m.e, "depth: %d\n", depth)
	}
	return nil
}

func runList(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	fmt.Fprintf(m.w, "%s\n", join(m.tree.Items()))
	return nil
}

func runReverse(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	fmt.Fprintf(m.w, "%s\n", join(m.tree.ReverseItems()))
	return nil
}

func runCheck(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if err := m.tree.Check(); nil != err {
		return err
	}
	fmt.Fprintf(m.w, "count: %d  height: %d  ok\n", m.tree.Count(), m.tree.Height())
	return nil
}

func join(items []avl.Item) string {
	s := make([]string, len(items))
	for i, v := range items {
		s[i] = fmt.Sprint(v)
	}
	return strings.Join(s, " ")
}
