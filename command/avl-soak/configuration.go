// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/spf13/afero"

	"github.com/bitmark-inc/avltree/configuration"
)

// basic defaults (log directory is relative to the configuration file)
const (
	defaultRounds       = 100
	defaultKeysPerRound = 1000
	defaultKeyRange     = 10000
	defaultDeleteRatio  = 0.4
	defaultSeed         = 1
	defaultRate         = 0 // unlimited

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-soak.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - soak test parameters
type Configuration struct {
	Rounds       int                  `gluamapper:"rounds"`
	KeysPerRound int                  `gluamapper:"keys_per_round"`
	KeyRange     int                  `gluamapper:"key_range"`
	DeleteRatio  float64              `gluamapper:"delete_ratio"`
	Seed         int64                `gluamapper:"seed"`
	Rate         float64              `gluamapper:"rate"`
	Logging      logger.Configuration `gluamapper:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(fs afero.Fs, configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		Rounds:       defaultRounds,
		KeysPerRound: defaultKeysPerRound,
		KeyRange:     defaultKeyRange,
		DeleteRatio:  defaultDeleteRatio,
		Seed:         defaultSeed,
		Rate:         defaultRate,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		},
	}

	if err := configuration.ParseConfigurationFile(fs, configurationFileName, options); nil != err {
		return nil, err
	}

	switch {
	case options.Rounds <= 0:
		return nil, ErrInvalidRounds
	case options.KeysPerRound <= 0:
		return nil, ErrInvalidKeysPerRound
	case options.KeyRange <= 0:
		return nil, ErrInvalidKeyRange
	case options.DeleteRatio < 0 || options.DeleteRatio > 1:
		return nil, ErrInvalidDeleteRatio
	case options.Rate < 0:
		return nil, ErrInvalidRate
	}

	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
	}

	return options, nil
}
