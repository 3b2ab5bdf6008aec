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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/db47h/befunge/disasm"
	"github.com/db47h/befunge/vm"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
)

const (
	replPrompt = "bf> "
	// instruction budget for programs run interactively, unless set with
	// -maxsteps.
	replMaxSteps = 10000000
)

var historyFile = ".befunge_history"

func historyPath() string {
	if filepath.IsAbs(historyFile) {
		return historyFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

// repl reads programs from the terminal, one line per program, and runs each
// of them in a fresh instance.
func repl(out *bufio.Writer) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist := historyPath()
	if hist != "" {
		if f, err := os.Open(hist); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(hist); err == nil {
				ln.WriteHistory(f)
				f.Close()
			}
		}()
	}

	if maxSteps == 0 {
		maxSteps = replMaxSteps
	}

	// last program, as entered
	var last *vm.Grid
	for {
		line, err := ln.Prompt(replPrompt)
		if err == io.EOF {
			fmt.Fprintln(out)
			return out.Flush()
		}
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			return errors.Wrap(err, "prompt failed")
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		switch cmd := strings.TrimSpace(line); cmd {
		case ":q", ":quit":
			return out.Flush()
		case ":list":
			if last == nil {
				fmt.Fprintln(out, "no program")
			} else {
				disasm.DisassembleAll(last, out)
			}
			out.Flush()
			continue
		case ":help":
			fmt.Fprintln(out, "Enter a one-line program to run it. Commands: :list :quit")
			out.Flush()
			continue
		}

		g, err := vm.Parse(line)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			out.Flush()
			continue
		}
		last = g.Clone()
		runGrid(g, out)
	}
}

// runGrid runs g in a fresh instance and prints its output, followed by any
// error and the remaining stack contents.
func runGrid(g *vm.Grid, out *bufio.Writer) {
	defer out.Flush()
	i, err := vm.New(g, instanceOptions(out)...)
	if err == nil {
		err = i.Run()
	}
	fmt.Fprintln(out)
	if err != nil {
		if debug {
			fmt.Fprintf(out, "error: %+v\n", err)
		} else {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
	if i != nil && len(i.Data()) > 0 {
		fmt.Fprintf(out, "stack: %v\n", i.Data())
	}
}
