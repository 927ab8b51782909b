// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/script"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "check", HasArg: getoptions.NO_ARGUMENT, Short: 'k'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--version] [--config-file=FILE] [--check] [--watch] [SCRIPT...]", program)
	}

	var masterConfiguration *Configuration
	switch len(options["config-file"]) {
	case 0:
		masterConfiguration = defaultConfiguration()
		masterConfiguration.Logging.Directory = filepath.Join(os.TempDir(), program)
	case 1:
		masterConfiguration, err = getConfiguration(options["config-file"][0])
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, options["config-file"][0], err)
		}
	default:
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Levels = map[string]string{
			logger.DefaultTag: "debug",
		}
	}
	if len(options["quiet"]) > 0 {
		masterConfiguration.Logging.Console = false
	}
	if len(options["check"]) > 0 {
		masterConfiguration.CheckAfterEach = true
	}

	watch := len(options["watch"]) > 0
	if watch && 1 != len(arguments) {
		exitwithstatus.Message("%s: %s", program, fault.ErrWatchNeedsOneScript)
	}

	// start logging
	if err = os.MkdirAll(masterConfiguration.Logging.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: cannot create log directory: %q  error: %s", program, masterConfiguration.Logging.Directory, err)
	}
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	fault.PanicIfError("fault.Initialise", fault.Initialise())
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	store := script.NewTreeStore()
	interpreter := script.New(store, os.Stdout, logger.New("script"), script.Options{
		PrintData:      masterConfiguration.PrintData,
		CheckAfterEach: masterConfiguration.CheckAfterEach,
	})

	preload(store, masterConfiguration.Preload, log)

	if watch {
		watchScript(arguments[0], store, interpreter, masterConfiguration.Preload, log)
		return
	}

	failed := false
	if 0 == len(arguments) {
		log.Info("reading from standard input")
		if err := interpreter.Run(os.Stdin); nil != err {
			failed = true
		}
	}
	for _, name := range arguments {
		if err := runScript(name, interpreter, log); nil != err {
			failed = true
		}
	}

	if failed {
		exitwithstatus.Exit(1)
	}
}

// insert the configured entries into an empty store
func preload(store script.Store, entries []Preload, log *logger.L) {
	for _, p := range entries {
		store.Insert(p.Key, p.Value)
	}
	if len(entries) > 0 {
		log.Infof("preloaded: %d  count: %d", len(entries), store.Count())
	}
}

// execute one script file
func runScript(name string, interpreter *script.Interpreter, log *logger.L) error {
	f, err := os.Open(name)
	if nil != err {
		log.Errorf("open script: %q  error: %s", name, err)
		return err
	}
	defer f.Close()

	log.Infof("running script: %q", name)
	err = interpreter.Run(f)
	if nil != err {
		log.Warnf("script: %q  first error: %s", name, err)
	}
	return err
}

// run a script now and again every time it changes, until a signal
// arrives or the file is removed
func watchScript(name string, store script.Store, interpreter *script.Interpreter, entries []Preload, log *logger.L) {
	channel := WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	watcher, err := newFileWatcher(name, logger.New(fileWatcherLoggerPrefix), channel)
	if nil != err {
		exitwithstatus.Message("file watcher setup failed with error: %s", err)
	}
	if err = watcher.Start(); nil != err {
		exitwithstatus.Message("file watcher start failed with error: %s", err)
	}
	defer watcher.Stop()

	_ = runScript(name, interpreter, log)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-channel.change:
			log.Infof("script changed: %q", name)
			store.Clear()
			preload(store, entries, log)
			_ = runScript(name, interpreter, log)

		case <-channel.remove:
			log.Warnf("script removed: %q, stop watching", name)
			return

		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			return
		}
	}
}
