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

// The befunge command line tool runs Befunge programs with the package
// github.com/db47h/befunge/vm.
//
// Usage:
//
//	befunge [options] program.bf
//
//	-config file
//		  load default settings from YAML file
//	-debug
//		  enable debug diagnostics
//	-dump
//		  dump stack and program grid upon exit
//	-i
//		  start an interactive session
//	-list
//		  print a disassembly of the program and exit
//	-maxsteps n
//		  abort after n instructions (0: no limit)
//	-noraw
//		  disable raw terminal IO
//	-seed seed
//		  random seed for the ? instruction (0: time based)
//	-trace
//		  trace execution to stderr
//	-with filename
//		  Add filename to the input list (can be specified multiple times)
//
// -debug: will print a full stacktrace and the interpreter state should the
// program fail.
//
// -dump: writes the stack and the program grid, as modified by the program,
// to stdout after it halts. See vm.Instance.Dump for the format.
//
// -noraw: upon startup, befunge switches the terminal to raw mode if stdin is
// a terminal, so that the ~ instruction gets characters as they are typed.
// This flag disables this behavior.
//
// -with: the program reads input from the specified files before stdin. If
// specified multiple times, files will be read in order of appearance on the
// command line.
//
// -maxsteps: programs are not guaranteed to terminate. When the limit is
// reached, befunge exits with an "execution aborted" error.
//
// -i: reads programs from the terminal, one line per program, and runs them.
// The line editor keeps a history in ~/.befunge_history. Programs run
// interactively are limited to 10 million instructions unless -maxsteps is
// set.
//
// -config: settings may be stored in a YAML file. Flags given on the command
// line take precedence. Example:
//
//	maxsteps: 1000000
//	seed: 42
//	trace: false
//	noraw: false
//	debug: true
//	history: /tmp/befunge_history
package main
