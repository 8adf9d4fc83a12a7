// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/item"
)

//go:generate mockgen -destination=mocks/container.go -package=mocks github.com/bitmark-inc/avltree/script Container

// Container - the tree operations used by a script
type Container interface {
	Add(avl.Item) error
	Remove(avl.Item) error
	Contains(avl.Item) bool
	Get(int) (avl.Item, error)
	Set(int, avl.Item) error
	IndexOf(avl.Item) (int, error)
	Count() int
	Height() int
	Check() error
	Items() []avl.Item
	ReverseItems() []avl.Item
	Print(io.Writer, bool) int
}

// Summary - totals from a run
type Summary struct {
	Operations int `json:"operations"`
	Rejected   int `json:"rejected"`
}

// Runner - applies operations to one container
type Runner struct {
	container Container
	valueType string
	w         io.Writer
	log       *logger.L
}

// number of arguments each operation takes
var arity = map[string]int{
	"insert":   1,
	"delete":   1,
	"contains": 1,
	"get":      1,
	"set":      2,
	"index":    1,
	"count":    0,
	"height":   0,
	"list":     0,
	"reverse":  0,
	"print":    0,
	"check":    0,
}

// New - create a runner, values are parsed as valueType
func New(container Container, valueType string, w io.Writer, log *logger.L) (*Runner, error) {
	if !item.ValidKind(valueType) {
		return nil, fault.ErrInvalidValueType
	}
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &Runner{
		container: container,
		valueType: valueType,
		w:         w,
		log:       log,
	}, nil
}

// Run - apply each operation in turn
//
// returns the summary so far together with any error that stopped
// the run
func (r *Runner) Run(tokens []string) (Summary, error) {
	summary := Summary{}

	for len(tokens) > 0 {
		operation := strings.ToLower(tokens[0])
		n, ok := arity[operation]
		if !ok {
			r.log.Errorf("unknown operation: %q", tokens[0])
			return summary, fault.ErrUnknownOperation
		}
		if len(tokens) < 1+n {
			r.log.Errorf("operation: %s needs %d arguments", operation, n)
			return summary, fault.ErrMissingArgument
		}
		arguments := tokens[1 : 1+n]
		tokens = tokens[1+n:]

		rejected, err := r.apply(operation, arguments)
		if nil != err {
			return summary, err
		}
		summary.Operations += 1
		if rejected {
			summary.Rejected += 1
		}
	}
	r.log.Infof("operations: %d  rejected: %d", summary.Operations, summary.Rejected)
	return summary, nil
}

// apply one operation, an error return means the operation was
// malformed or the tree is inconsistent
func (r *Runner) apply(operation string, arguments []string) (bool, error) {
	label := strings.Join(append([]string{operation}, arguments...), " ")
	c := r.container

	switch operation {
	case "insert", "delete", "contains", "index":
		value, err := item.Parse(r.valueType, arguments[0])
		if nil != err {
			r.log.Errorf("%s: cannot parse: %q as: %s", operation, arguments[0], r.valueType)
			return false, err
		}
		switch operation {
		case "insert":
			return r.report(label, c.Add(value), "ok")
		case "delete":
			return r.report(label, c.Remove(value), "ok")
		case "contains":
			return r.report(label, nil, strconv.FormatBool(c.Contains(value)))
		default:
			index, err := c.IndexOf(value)
			return r.report(label, err, strconv.Itoa(index))
		}

	case "get":
		index, err := parseIndex(arguments[0])
		if nil != err {
			return false, err
		}
		value, err := c.Get(index)
		if nil != err {
			return r.report(label, err, "")
		}
		return r.report(label, nil, fmt.Sprint(value))

	case "set":
		index, err := parseIndex(arguments[0])
		if nil != err {
			return false, err
		}
		value, err := item.Parse(r.valueType, arguments[1])
		if nil != err {
			r.log.Errorf("set: cannot parse: %q as: %s", arguments[1], r.valueType)
			return false, err
		}
		return r.report(label, c.Set(index, value), "ok")

	case "count":
		return r.report(label, nil, strconv.Itoa(c.Count()))

	case "height":
		return r.report(label, nil, strconv.Itoa(c.Height()))

	case "list":
		return r.report(label, nil, join(c.Items()))

	case "reverse":
		return r.report(label, nil, join(c.ReverseItems()))

	case "print":
		fmt.Fprintf(r.w, "%s:\n", label)
		depth := c.Print(r.w, true)
		r.log.Debugf("print: depth: %d", depth)
		return false, nil

	case "check":
		if err := c.Check(); nil != err {
			r.log.Criticalf("check: %s", err)
			fmt.Fprintf(r.w, "%s: %s\n", label, err)
			return false, err
		}
		return r.report(label, nil, "ok")
	}

	return false, fault.ErrUnknownOperation
}

// write one result line; the error is a rejection, not a failure
func (r *Runner) report(label string, err error, result string) (bool, error) {
	if nil != err {
		r.log.Warnf("%s: rejected: %s", label, err)
		fmt.Fprintf(r.w, "%s: %s\n", label, err)
		return true, nil
	}
	r.log.Debugf("%s: %s", label, result)
	fmt.Fprintf(r.w, "%s: %s\n", label, result)
	return false, nil
}

func parseIndex(text string) (int, error) {
	index, err := strconv.Atoi(strings.TrimSpace(text))
	if nil != err {
		return 0, fault.ErrInvalidIndex
	}
	return index, nil
}

func join(items []avl.Item) string {
	s := make([]string, len(items))
	for i, v := range items {
		s[i] = fmt.Sprint(v)
	}
	return strings.Join(s, " ")
}
