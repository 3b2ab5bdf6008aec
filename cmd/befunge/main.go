// This file is part of befunge - https://github.com/db47h/befunge
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/db47h/befunge/disasm"
	"github.com/db47h/befunge/vm"
	"github.com/pkg/errors"
)

type fileList []string

func (f *fileList) String() string     { return "" }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

var (
	noRawIO     bool
	debug       bool
	dump        bool
	trace       bool
	list        bool
	interactive bool
	maxSteps    int64
	seed        int64
	configFile  string
	withFiles   fileList
)

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		fmt.Fprintf(os.Stderr, "PC: %v (", i.PC)
		disasm.Disassemble(i.Grid, i.PC, i.Mode(), os.Stderr)
		fmt.Fprintf(os.Stderr, "), Dir: %v, Stack: %v\n", i.Dir, i.Data())
	}
	os.Exit(1)
}

// setupInput returns the program input. If stdin is a terminal, it tries to
// switch it to raw mode so that ~ reads characters as they are typed.
func setupInput() (r io.Reader, tearDown func()) {
	if !noRawIO && isTerminal(os.Stdin) {
		var err error
		tearDown, err = setRawIO()
		if err == nil {
			// in raw tty mode, we need to handle CTRL-D ourselves
			return ctrlDReader{os.Stdin}, tearDown
		}
	}
	return bufio.NewReader(os.Stdin), nil
}

func instanceOptions(out io.Writer) []vm.Option {
	opts := []vm.Option{vm.Output(out)}
	if seed != 0 {
		opts = append(opts, vm.Rand(rand.New(rand.NewSource(seed))))
	}
	if maxSteps > 0 {
		opts = append(opts, vm.MaxSteps(maxSteps))
	}
	if trace {
		opts = append(opts, vm.Trace(newTracer(os.Stderr)))
	}
	return opts
}

func main() {
	// check exit condition
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		stdout.Flush()
		if err == nil && dump && i != nil {
			err = i.Dump(os.Stdout)
		}
		atExit(i, err)
	}()

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] program.bf\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.BoolVar(&dump, "dump", false, "dump stack and program grid upon exit")
	flag.BoolVar(&trace, "trace", false, "trace execution to stderr")
	flag.BoolVar(&list, "list", false, "print a disassembly of the program and exit")
	flag.BoolVar(&interactive, "i", false, "start an interactive session")
	flag.Var(&withFiles, "with", "Add `filename` to the input list (can be specified multiple times)")
	flag.BoolVar(&noRawIO, "noraw", false, "disable raw terminal IO")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.Int64Var(&maxSteps, "maxsteps", 0, "abort after `n` instructions (0: no limit)")
	flag.Int64Var(&seed, "seed", 0, "random `seed` for the ? instruction (0: time based)")
	flag.StringVar(&configFile, "config", "", "load default settings from YAML `file`")

	flag.Parse()

	if configFile != "" {
		var cfg *config
		if cfg, err = loadConfig(configFile); err != nil {
			return
		}
		cfg.apply(flag.CommandLine)
	}

	if interactive {
		err = repl(stdout)
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		err = errors.New("no program file specified")
		return
	}

	var g *vm.Grid
	if g, err = vm.Load(flag.Arg(0)); err != nil {
		return
	}

	if list {
		err = disasm.DisassembleAll(g, stdout)
		return
	}

	in, ioTearDownFn := setupInput()
	if ioTearDownFn != nil {
		defer ioTearDownFn()
	}

	opts := instanceOptions(stdout)
	opts = append(opts, vm.Input(in))

	// append -with files to input stack in reverse order so that they load
	// in order of appearance on the command line.
	for n := len(withFiles) - 1; n >= 0; n-- {
		var f *os.File
		f, err = os.Open(withFiles[n])
		if err != nil {
			return
		}
		opts = append(opts, vm.Input(bufio.NewReader(f)))
	}

	if i, err = vm.New(g, opts...); err != nil {
		return
	}
	err = i.Run()
}
