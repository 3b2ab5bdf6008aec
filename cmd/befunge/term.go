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
	"bytes"
	"io"
	"os"

	"github.com/db47h/befunge/disasm"
	"github.com/db47h/befunge/internal/bfi"
	"github.com/db47h/befunge/vm"
	"golang.org/x/term"
)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ctrlDReader returns io.EOF when reading a CTRL-D. In raw tty mode, the
// terminal does not do it for us.
type ctrlDReader struct {
	r io.Reader
}

func (c ctrlDReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if k := bytes.IndexByte(p[:n], 4); k >= 0 {
		return k, io.EOF
	}
	return n, err
}

// newTracer returns a vm.TraceFunc that writes the PC, direction, next
// instruction and stack contents to w before each instruction.
func newTracer(w io.Writer) vm.TraceFunc {
	ew := bfi.NewErrWriter(w)
	return func(i *vm.Instance) error {
		ew.Printf("%7d %-5v %-5v ", i.InstructionCount(), i.PC, i.Dir)
		disasm.Disassemble(i.Grid, i.PC, i.Mode(), ew)
		ew.Printf("\t%v\n", i.Data())
		return ew.Err
	}
}
