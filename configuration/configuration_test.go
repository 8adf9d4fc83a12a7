// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

const fullConfig = `
local M = {}

M.value_type = "String"
M.values = { "pear", "apple", "fig" }

M.stress = {
    workers = 4,
    max_size = 500,
    rounds = 3,
    duration_seconds = 20,
    seed = 99,
}

M.logging = {
    directory = "logs",
    file = "tree.log",
    size = 4096,
    count = 2,
    console = false,
    levels = {
        DEFAULT = "warn",
        script = "debug",
    },
}

return M
`

func writeConfig(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	require.NoError(t, err, "temporary directory")

	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(text), 0600)
	require.NoError(t, err, "write configuration")

	return fileName, func() { _ = os.RemoveAll(dir) }
}

func TestGetConfiguration(t *testing.T) {
	fileName, cleanup := writeConfig(t, fullConfig)
	defer cleanup()

	c, err := configuration.GetConfiguration(fileName, "test")
	require.NoError(t, err, "read configuration")

	dir := filepath.Dir(fileName)
	assert.Equal(t, filepath.Clean(dir), c.DataDirectory, "data directory")
	assert.Equal(t, "string", c.ValueType, "value type")
	assert.Equal(t, []string{"pear", "apple", "fig"}, c.Values, "values")

	assert.Equal(t, 4, c.Stress.Workers, "workers")
	assert.Equal(t, 500, c.Stress.MaxSize, "max size")
	assert.Equal(t, 3, c.Stress.Rounds, "rounds")
	assert.Equal(t, 20, c.Stress.DurationSeconds, "duration")
	assert.Equal(t, int64(99), c.Stress.Seed, "seed")

	assert.Equal(t, filepath.Join(dir, "logs"), c.Logging.Directory, "log directory")
	assert.Equal(t, "tree.log", c.Logging.File, "log file")
	assert.Equal(t, 4096, c.Logging.Size, "log size")
	assert.Equal(t, 2, c.Logging.Count, "log count")
	assert.Equal(t, "debug", c.Logging.Levels["script"], "script level")
}

func TestDefaults(t *testing.T) {
	fileName, cleanup := writeConfig(t, "return { values = { 5, 3, 8 } }\n")
	defer cleanup()

	c, err := configuration.GetConfiguration(fileName, "avl-test")
	require.NoError(t, err, "read configuration")

	assert.Equal(t, "integer", c.ValueType, "value type")
	assert.Equal(t, []string{"5", "3", "8"}, c.Values, "numbers become text")
	assert.Equal(t, 2, c.Stress.Workers, "workers")
	assert.Equal(t, 2000, c.Stress.MaxSize, "max size")
	assert.Equal(t, 10, c.Stress.Rounds, "rounds")
	assert.Equal(t, "avl-test.log", c.Logging.File, "log file")
	assert.Equal(t, filepath.Join(filepath.Dir(fileName), "log"), c.Logging.Directory, "log directory")
}

func TestInvalidValueType(t *testing.T) {
	fileName, cleanup := writeConfig(t, `return { value_type = "complex" }`)
	defer cleanup()

	_, err := configuration.GetConfiguration(fileName, "test")
	assert.Equal(t, fault.ErrInvalidValueType, err, "wrong error")
}

func TestNotATable(t *testing.T) {
	fileName, cleanup := writeConfig(t, `return 42`)
	defer cleanup()

	_, err := configuration.GetConfiguration(fileName, "test")
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "wrong error")
}

func TestMissingFile(t *testing.T) {
	_, err := configuration.GetConfiguration("/does/not/exist.conf", "test")
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "wrong error")
}

func TestLuaError(t *testing.T) {
	fileName, cleanup := writeConfig(t, `return {`)
	defer cleanup()

	_, err := configuration.GetConfiguration(fileName, "test")
	assert.Error(t, err, "syntax error not reported")
}

func TestStructPointerRequired(t *testing.T) {
	fileName, cleanup := writeConfig(t, `return {}`)
	defer cleanup()

	var notStruct int
	err := configuration.ParseConfigurationFile(fileName, &notStruct)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "pointer to int")

	err = configuration.ParseConfigurationFile(fileName, configuration.Configuration{})
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")
}

func TestDefault(t *testing.T) {
	c := configuration.Default("prog")
	assert.Equal(t, os.TempDir(), c.Logging.Directory, "log directory")
	assert.Equal(t, "prog.log", c.Logging.File, "log file")
	assert.Equal(t, "integer", c.ValueType, "value type")
}
