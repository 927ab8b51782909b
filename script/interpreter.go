// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// commands that take no arguments
var queries = map[string]bool{
	"list":        true,
	"count":       true,
	"height":      true,
	"print":       true,
	"check":       true,
	"equal-paths": true,
	"stats":       true,
	"clear":       true,
}

// Options - interpreter settings
type Options struct {
	PrintData      bool // print shows values as well as keys
	CheckAfterEach bool // verify the tree after every insert/delete
}

// Interpreter - executes commands against a store
type Interpreter struct {
	store   Store
	out     io.Writer
	log     *logger.L
	options Options
}

// New - create an interpreter writing results to out
func New(store Store, out io.Writer, log *logger.L, options Options) *Interpreter {
	return &Interpreter{
		store:   store,
		out:     out,
		log:     log,
		options: options,
	}
}

// Run - execute every line of r
//
// a failing command is reported and execution continues, the first
// error is returned
func (in *Interpreter) Run(r io.Reader) error {
	var first error
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n += 1
		err := in.Execute(scanner.Text())
		if nil == err {
			continue
		}
		in.log.Warnf("line: %d  error: %s", n, err)
		fmt.Fprintf(in.out, "error: line %d: %s\n", n, err)
		if nil == first {
			first = err
		}
	}
	if err := scanner.Err(); nil != err {
		in.log.Errorf("read error: %s", err)
		return err
	}
	return first
}

// Execute - run a single command line
func (in *Interpreter) Execute(line string) error {
	line = strings.TrimSpace(line)
	if "" == line || strings.HasPrefix(line, "#") {
		return nil
	}
	fields := strings.Fields(line)
	command := strings.ToLower(fields[0])
	arguments := fields[1:]

	in.log.Debugf("command: %s  arguments: %q", command, arguments)

	switch command {
	case "insert", "add":
		if len(arguments) < 1 {
			return fault.ErrMissingKey
		}
		if len(arguments) < 2 {
			return fault.ErrMissingValue
		}
		key := arguments[0]
		// value is the remainder of the line with its spacing intact
		value := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line[len(fields[0]):]), key))
		if in.store.Insert(key, value) {
			fmt.Fprintf(in.out, "added: %s\n", key)
		} else {
			fmt.Fprintf(in.out, "updated: %s\n", key)
		}
		return in.checkAfter()

	case "delete", "remove":
		key, err := oneKey(arguments)
		if nil != err {
			return err
		}
		if value, ok := in.store.Delete(key); ok {
			fmt.Fprintf(in.out, "deleted: %s → %s\n", key, value)
		} else {
			fmt.Fprintf(in.out, "absent: %s\n", key)
		}
		return in.checkAfter()

	case "find", "get":
		key, err := oneKey(arguments)
		if nil != err {
			return err
		}
		if value, ok := in.store.Find(key); ok {
			fmt.Fprintf(in.out, "%s → %s\n", key, value)
		} else {
			fmt.Fprintf(in.out, "%s: %s\n", key, fault.ErrKeyNotFound)
		}
		return nil
	}

	if !queries[command] {
		return fault.ErrUnknownCommand
	}
	if 0 != len(arguments) {
		return fault.ErrTooManyArguments
	}

	switch command {
	case "list":
		in.store.List(func(key string, value string) bool {
			fmt.Fprintf(in.out, "%s → %s\n", key, value)
			return true
		})
	case "count":
		fmt.Fprintf(in.out, "count: %d\n", in.store.Count())
	case "height":
		fmt.Fprintf(in.out, "height: %d\n", in.store.Height())
	case "print":
		depth := in.store.Print(in.out, in.options.PrintData)
		fmt.Fprintf(in.out, "depth: %d\n", depth)
	case "check":
		if err := in.store.Check(); nil != err {
			return err
		}
		fmt.Fprintf(in.out, "check: ok\n")
	case "equal-paths":
		fmt.Fprintf(in.out, "equal paths: %t\n", in.store.EqualPaths())
	case "stats":
		total, free := avl.Statistics()
		fmt.Fprintf(in.out, "nodes allocated: %d  pooled: %d\n", total, free)
	case "clear":
		in.store.Clear()
		fmt.Fprintf(in.out, "cleared\n")
	}
	return nil
}

func oneKey(arguments []string) (string, error) {
	switch len(arguments) {
	case 0:
		return "", fault.ErrMissingKey
	case 1:
		return arguments[0], nil
	default:
		return "", fault.ErrTooManyArguments
	}
}

func (in *Interpreter) checkAfter() error {
	if !in.options.CheckAfterEach {
		return nil
	}
	err := in.store.Check()
	if nil != err {
		fault.Criticalf("tree invariant failure with: %d keys", in.store.Count())
	}
	return err
}
