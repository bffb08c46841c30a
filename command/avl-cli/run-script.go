// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/script"
)

func runScript(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName := c.Args().First()
	if "" == fileName {
		return fault.ErrMissingParameters
	}

	log := logger.New("script")

	if !c.Bool("watch") {
		return runScriptOnce(m, log, fileName)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	return watchScript(m, log, fileName, signals)
}

// each run starts from a fresh tree holding the initial keys
func runScriptOnce(m *metadata, log *logger.L, fileName string) error {
	tree := avl.New[lua.LValue]()
	for _, key := range m.keys {
		tree.Insert(key, lua.LNumber(key))
	}

	r, err := script.New(tree, m.w, log)
	if nil != err {
		return err
	}
	if err := r.RunFile(m.fs, fileName); nil != err {
		return err
	}

	if m.verbose {
		stats := tree.Stats()
		fmt.Fprintf(m.e, "count: %d  height: %d  rotations: %d\n", tree.Count(), tree.Height(), stats.Rotations())
	}
	log.Infof("script: %q  count: %d  height: %d", fileName, tree.Count(), tree.Height())
	return nil
}

// run once then again on every write until a signal arrives on stop
func watchScript(m *metadata, log *logger.L, fileName string, stop <-chan os.Signal) error {

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return errors.Wrap(err, "create watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(fileName); nil != err {
		return errors.Wrapf(err, "watch: %q", fileName)
	}

	report := func() {
		if err := runScriptOnce(m, log, fileName); nil != err {
			fmt.Fprintf(m.e, "error: %s\n", err)
			log.Errorf("script: %q  error: %s", fileName, err)
		}
	}
	report()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			log.Debugf("event: %s", event)

			switch {
			case event.Op&fsnotify.Write == fsnotify.Write:
				report()

			case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				// editors that save by replacing the file
				// drop the watch, so add it back
				if err := watcher.Add(fileName); nil == err {
					report()
				} else {
					log.Warnf("file: %q  lost: %s", fileName, err)
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return errors.Wrap(err, "watcher")

		case sig := <-stop:
			log.Infof("received signal: %v", sig)
			return nil
		}
	}
}
