// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/item"
	"github.com/bitmark-inc/avltree/script"
	"github.com/bitmark-inc/avltree/script/mocks"
)

const (
	dir      = "testing"
	category = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	logger.Finalise()
	teardownTestLogger()
	os.Exit(rc)
}

func newRunner(t *testing.T, c script.Container, valueType string) (*script.Runner, *bytes.Buffer) {
	var out bytes.Buffer
	r, err := script.New(c, valueType, &out, logger.New(category))
	require.NoError(t, err, "new runner")
	return r, &out
}

func TestRunOnTree(t *testing.T) {
	tree := avl.New()
	r, out := newRunner(t, tree, item.KindInteger)

	tokens := strings.Fields(`
		insert 5 insert 3 insert 8 insert 1 insert 4
		insert 4
		delete 5
		list reverse count height
		get 0 get -1 get 9
		contains 4 contains 5
		index 8 index 7
		set 0 10
		check
	`)
	summary, err := r.Run(tokens)
	require.NoError(t, err, "run")

	expected := []string{
		"insert 5: ok",
		"insert 3: ok",
		"insert 8: ok",
		"insert 1: ok",
		"insert 4: ok",
		"insert 4: value is already present",
		"delete 5: ok",
		"list: 1 3 4 8",
		"reverse: 8 4 3 1",
		"count: 4",
		"height: 2",
		"get 0: 1",
		"get -1: 8",
		"get 9: binary search tree index out of range",
		"contains 4: true",
		"contains 5: false",
		"index 8: 3",
		"index 7: value is not present",
		"set 0 10: ok",
		"check: ok",
	}
	assert.Equal(t, strings.Join(expected, "\n")+"\n", out.String(), "wrong output")
	assert.Equal(t, 20, summary.Operations, "operations")
	assert.Equal(t, 3, summary.Rejected, "rejected")

	assert.Equal(t, item.Integer(4), tree.Root().Key(), "root after delete")
	assert.Equal(t, []avl.Item{item.Integer(3), item.Integer(4), item.Integer(8), item.Integer(10)}, tree.Items(), "final items")
}

func TestRunStrings(t *testing.T) {
	tree := avl.New()
	r, out := newRunner(t, tree, item.KindString)

	_, err := r.Run([]string{"insert", "pear", "insert", `"big apple"`, "list"})
	require.NoError(t, err, "run")
	assert.Equal(t, "insert pear: ok\ninsert \"big apple\": ok\nlist: \"big apple\" \"pear\"\n", out.String(), "wrong output")
}

func TestRunPrint(t *testing.T) {
	tree := avl.New()
	r, out := newRunner(t, tree, item.KindInteger)

	_, err := r.Run([]string{"insert", "2", "insert", "1", "print"})
	require.NoError(t, err, "run")
	assert.Equal(t, "insert 2: ok\ninsert 1: ok\nprint:\n───── 2 -1\n      └──── 1 +0\n", out.String(), "wrong output")
}

func TestRunMalformed(t *testing.T) {
	cases := []struct {
		tokens   []string
		err      error
		complete int
	}{
		{[]string{"insert", "1", "frobnicate"}, fault.ErrUnknownOperation, 1},
		{[]string{"count", "insert"}, fault.ErrMissingArgument, 1},
		{[]string{"set", "0"}, fault.ErrMissingArgument, 0},
		{[]string{"get", "first"}, fault.ErrInvalidIndex, 0},
		{[]string{"insert", "one"}, fault.ErrInvalidValue, 0},
		{[]string{"set", "x", "1"}, fault.ErrInvalidIndex, 0},
	}
	for _, c := range cases {
		r, _ := newRunner(t, avl.New(), item.KindInteger)
		summary, err := r.Run(c.tokens)
		assert.Equal(t, c.err, err, "tokens: %v", c.tokens)
		assert.Equal(t, c.complete, summary.Operations, "tokens: %v", c.tokens)
	}
}

func TestNewRejectsBadArguments(t *testing.T) {
	_, err := script.New(avl.New(), "complex", &bytes.Buffer{}, logger.New(category))
	assert.Equal(t, fault.ErrInvalidValueType, err, "value type")

	_, err = script.New(avl.New(), item.KindInteger, &bytes.Buffer{}, nil)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "logger")
}

func TestRunCallsContainer(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockContainer(ctl)
	gomock.InOrder(
		c.EXPECT().Add(item.Integer(7)).Return(nil).Times(1),
		c.EXPECT().Add(item.Integer(7)).Return(fault.ErrDuplicateValue).Times(1),
		c.EXPECT().Set(-1, item.Integer(9)).Return(nil).Times(1),
		c.EXPECT().Get(-1).Return(item.Integer(9), nil).Times(1),
		c.EXPECT().Remove(item.Integer(3)).Return(fault.ErrValueNotFound).Times(1),
		c.EXPECT().Count().Return(1).Times(1),
	)

	r, out := newRunner(t, c, item.KindInteger)
	summary, err := r.Run(strings.Fields("insert 7 insert 7 set -1 9 get -1 delete 3 count"))
	require.NoError(t, err, "run")

	assert.Equal(t, 6, summary.Operations, "operations")
	assert.Equal(t, 2, summary.Rejected, "rejected")
	assert.Contains(t, out.String(), "delete 3: value is not present\n", "delete output")
	assert.Contains(t, out.String(), "get -1: 9\n", "get output")
}

func TestRunCheckFailureStops(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockContainer(ctl)
	c.EXPECT().Check().Return(fault.ErrBalanceViolation).Times(1)

	r, out := newRunner(t, c, item.KindInteger)
	summary, err := r.Run([]string{"check", "count"})

	assert.Equal(t, fault.ErrBalanceViolation, err, "wrong error")
	assert.Equal(t, 0, summary.Operations, "operations")
	assert.Equal(t, "check: balance factor does not match subtree heights\n", out.String(), "wrong output")
}
