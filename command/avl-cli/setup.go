// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/item"
)

// read configuration, start logging and build the initial tree
//
// command line values are added after those from the configuration
func setup(program string, file string, valueType string, values string) (*metadata, error) {

	var config *configuration.Configuration
	if "" == file {
		config = configuration.Default(program)
	} else {
		var err error
		config, err = configuration.GetConfiguration(file, program)
		if nil != err {
			return nil, err
		}
	}

	if "" != valueType {
		valueType = strings.ToLower(strings.TrimSpace(valueType))
		if !item.ValidKind(valueType) {
			return nil, fault.ErrInvalidValueType
		}
		config.ValueType = valueType
	}

	texts := append([]string{}, config.Values...)
	texts = append(texts, splitValues(values)...)

	items, err := item.ParseList(config.ValueType, texts)
	if nil != err {
		return nil, err
	}

	if err := os.MkdirAll(config.Logging.Directory, 0700); nil != err {
		return nil, err
	}
	if err := logger.Initialise(config.Logging); nil != err {
		return nil, err
	}
	if err := fault.Initialise(); nil != err {
		logger.Finalise()
		return nil, err
	}

	log := logger.New("main")
	log.Infof("version: %s", version)
	log.Debugf("configuration: %+v", config)

	tree := avl.NewFrom(items...)
	if n := tree.Count(); n != len(items) {
		log.Warnf("initial values: %d  skipped: %d", len(items), len(items)-n)
	}

	return &metadata{
		file:      file,
		config:    config,
		tree:      tree,
		valueType: config.ValueType,
	}, nil
}

func finalise() {
	fault.Finalise()
	logger.Finalise()
}

// split a comma separated list, dropping empty entries
func splitValues(s string) []string {
	values := []string{}
	for _, v := range strings.Split(s, ",") {
		v = strings.TrimSpace(v)
		if "" != v {
			values = append(values, v)
		}
	}
	return values
}
