// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "."

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-tool.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	logger.DefaultTag: "info",
}

// Preload - entry inserted before any script runs
type Preload struct {
	Key   string `gluamapper:"key" json:"key"`
	Value string `gluamapper:"value" json:"value"`
}

type Configuration struct {
	DataDirectory  string               `gluamapper:"data_directory" json:"data_directory"`
	PrintData      bool                 `gluamapper:"print_data" json:"print_data"`
	CheckAfterEach bool                 `gluamapper:"check_after_each" json:"check_after_each"`
	Preload        []Preload            `gluamapper:"preload" json:"preload"`
	Logging        logger.Configuration `gluamapper:"logging" json:"logging"`
}

// configuration used when no file is given: log to the console only
func defaultConfiguration() *Configuration {
	levels := make(LoglevelMap, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   true,
			Levels:    levels,
		},
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration()
	options.Logging.Console = false

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrInvalidDataDirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}
	if !filepath.IsAbs(options.DataDirectory) {
		options.DataDirectory = filepath.Join(dataDirectory, options.DataDirectory)
	}

	// fix up the logging directory
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(options.DataDirectory, options.Logging.Directory)
	}

	for _, p := range options.Preload {
		if "" == p.Key {
			return nil, fault.ErrMissingKey
		}
	}

	return options, nil
}
