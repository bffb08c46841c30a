// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/spf13/afero"
	"github.com/urfave/cli"
)

// script log file limits
const (
	logSize  = 1048576
	logCount = 10
)

type metadata struct {
	keys    []int
	verbose bool
	logging bool
	fs      afero.Fs
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr, afero.NewOsFs())

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer, fs afero.Fs) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "build an AVL tree from keys and operate on it"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e
	app.Metadata = make(map[string]interface{})

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "keys, k",
			Value: "",
			Usage: " initial tree contents `K1,K2,…`",
		},
		cli.StringFlag{
			Name:  "log-directory, l",
			Value: os.TempDir(),
			Usage: " directory for the script log file `DIR`",
		},
		cli.StringFlag{
			Name:  "log-level, L",
			Value: "info",
			Usage: " script log level `LEVEL` [debug|info|warn|error]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "print",
			Usage:  "display the tree",
			Action: runPrint,
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "data, d",
					Usage: " include value, parent and heights",
				},
			},
		},
		{
			Name:      "insert",
			Usage:     "insert keys then display the tree",
			ArgsUsage: "KEY…",
			Action:    runInsert,
		},
		{
			Name:      "delete",
			Usage:     "delete keys then display the tree",
			ArgsUsage: "KEY…",
			Action:    runDelete,
		},
		{
			Name:   "check",
			Usage:  "verify the tree structure",
			Action: runCheck,
		},
		{
			Name:      "run",
			Usage:     "run a Lua script against the tree",
			ArgsUsage: "FILE",
			Action:    runScript,
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "watch, w",
					Usage: " run again each time the file changes",
				},
			},
		},
		{
			Name:  "version",
			Usage: "display avl-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		keys, err := parseKeys(c.GlobalString("keys"))
		if nil != err {
			return err
		}

		m := &metadata{
			keys:    keys,
			verbose: c.GlobalBool("verbose"),
			fs:      fs,
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}

		// only scripts can log
		if "run" == command {
			logging := logger.Configuration{
				Directory: c.GlobalString("log-directory"),
				File:      app.Name + ".log",
				Size:      logSize,
				Count:     logCount,
				Console:   false,
				Levels: map[string]string{
					logger.DefaultTag: c.GlobalString("log-level"),
				},
			}
			if err := logger.Initialise(logging); nil != err {
				return err
			}
			m.logging = true
		}

		c.App.Metadata["config"] = m
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if ok && m.logging {
			logger.Finalise()
		}
		return nil
	}

	return app
}
