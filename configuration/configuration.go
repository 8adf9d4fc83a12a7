// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/item"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file
	defaultValueType     = item.KindInteger

	defaultLogDirectory = "log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultWorkers = 2
	defaultMaxSize = 2000
	defaultRounds  = 10
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"script":          "info",
		logger.DefaultTag: "critical",
	}
)

// StressType - parameters for the randomised checker
type StressType struct {
	Workers         int   `gluamapper:"workers" json:"workers"`
	MaxSize         int   `gluamapper:"max_size" json:"max_size"`
	Rounds          int   `gluamapper:"rounds" json:"rounds"`
	DurationSeconds int   `gluamapper:"duration_seconds" json:"duration_seconds"`
	Seed            int64 `gluamapper:"seed" json:"seed"`
}

// Configuration - the contents of a configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	ValueType     string               `gluamapper:"value_type" json:"value_type"`
	Values        []string             `gluamapper:"values" json:"values"`
	Stress        StressType           `gluamapper:"stress" json:"stress"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default - configuration used when no file is given, logging goes to
// the system temporary directory
func Default(program string) *Configuration {
	options := defaults(program)
	options.DataDirectory, _ = os.Getwd()
	options.Logging.Directory = os.TempDir()
	return options
}

func defaults(program string) *Configuration {
	levels := make(map[string]string, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		ValueType:     defaultValueType,
		Values:        []string{},

		Stress: StressType{
			Workers: defaultWorkers,
			MaxSize: defaultMaxSize,
			Rounds:  defaultRounds,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      program + ".log",
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// GetConfiguration - will read decode and verify the configuration
func GetConfiguration(configurationFileName string, program string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(configurationFileName); nil != err {
		return nil, fault.ErrNotFoundConfigFile
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaults(program)

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.ValueType = strings.ToLower(strings.TrimSpace(options.ValueType))
	if !item.ValidKind(options.ValueType) {
		return nil, fault.ErrInvalidValueType
	}

	if options.Stress.Workers <= 0 {
		options.Stress.Workers = defaultWorkers
	}
	if options.Stress.MaxSize <= 0 {
		options.Stress.MaxSize = defaultMaxSize
	}
	if options.Stress.Rounds < 0 || options.Stress.DurationSeconds < 0 {
		return nil, fault.ErrInvalidCount
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = EnsureAbsolute(dataDirectory, options.DataDirectory)
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = EnsureAbsolute(options.DataDirectory, *f)
	}

	return options, nil
}

// EnsureAbsolute - if path is not absolute prepend directory
func EnsureAbsolute(directory string, path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(directory, path)
	}
	return filepath.Clean(path)
}
