// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/mondrake/Rbppavl/configuration"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-bench.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultBalanceFactor = 1
	defaultItems         = 10000
	defaultPasses        = 1
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"avl":             "warn",
		logger.DefaultTag: "critical",
	}
)

// WorkloadType - one randomized insert/find/delete workload
type WorkloadType struct {
	BalanceFactor int   `gluamapper:"balance_factor" json:"balance_factor"`
	Items         int   `gluamapper:"items" json:"items"`
	Passes        int   `gluamapper:"passes" json:"passes"`
	Seed          int64 `gluamapper:"seed" json:"seed"`
	Limit         int   `gluamapper:"limit" json:"limit"`
	PrintTree     bool  `gluamapper:"print_tree" json:"print_tree"`
}

// Configuration - configuration file data
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Workload      WorkloadType         `gluamapper:"workload" json:"workload"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if err != nil {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		Workload: WorkloadType{
			BalanceFactor: defaultBalanceFactor,
			Items:         defaultItems,
			Passes:        defaultPasses,
			Seed:          0, // seed from the clock
			Limit:         0, // unlimited
			PrintTree:     false,
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if options.DataDirectory == "" || options.DataDirectory == "~" {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if options.DataDirectory == "." {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); err != nil {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force the log directory to be absolute, relative is to the data directory
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(options.DataDirectory, options.Logging.Directory)
	}

	if options.Workload.BalanceFactor < 1 {
		return nil, fmt.Errorf("Balance factor: %d is out of range", options.Workload.BalanceFactor)
	}
	if options.Workload.Items < 1 {
		return nil, fmt.Errorf("Items: %d is out of range", options.Workload.Items)
	}
	if options.Workload.Passes < 1 {
		return nil, fmt.Errorf("Passes: %d is out of range", options.Workload.Passes)
	}

	return options, nil
}
