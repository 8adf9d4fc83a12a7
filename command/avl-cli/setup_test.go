// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
)

func TestSplitValues(t *testing.T) {
	assert.Equal(t, []string{}, splitValues(""), "empty")
	assert.Equal(t, []string{"1"}, splitValues("1"), "single")
	assert.Equal(t, []string{"3", "1", "2"}, splitValues(" 3, 1,,2 ,"), "list")
}

func TestSetupRejectsBadArguments(t *testing.T) {
	_, err := setup("avl-cli", "", "complex", "")
	assert.Equal(t, fault.ErrInvalidValueType, err, "value type")

	_, err = setup("avl-cli", "", "integer", "1,two,3")
	assert.Equal(t, fault.ErrInvalidValue, err, "values")

	_, err = setup("avl-cli", "no-such-file.conf", "", "")
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "config file")
}
