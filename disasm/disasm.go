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

package disasm

import (
	"io"
	"strconv"

	"github.com/db47h/befunge/internal/bfi"
	"github.com/db47h/befunge/vm"
)

var mnemonics = map[vm.Cell]string{
	vm.OpNop:     "nop",
	vm.OpAdd:     "add",
	vm.OpSub:     "sub",
	vm.OpMul:     "mul",
	vm.OpDiv:     "div",
	vm.OpMod:     "mod",
	vm.OpNot:     "not",
	vm.OpGreater: "gt",
	vm.OpRight:   "right",
	vm.OpLeft:    "left",
	vm.OpUp:      "up",
	vm.OpDown:    "down",
	vm.OpRandom:  "rand",
	vm.OpHIf:     "hif",
	vm.OpVIf:     "vif",
	vm.OpString:  "str",
	vm.OpDup:     "dup",
	vm.OpSwap:    "swap",
	vm.OpDrop:    "drop",
	vm.OpOutNum:  "outn",
	vm.OpOutChar: "outc",
	vm.OpBridge:  "skip",
	vm.OpGet:     "get",
	vm.OpPut:     "put",
	vm.OpInNum:   "inn",
	vm.OpInChar:  "inc",
	vm.OpHalt:    "halt",
}

// Mnemonic returns the mnemonic for instruction c in normal mode. Characters
// that are not built-in instructions are returned quoted.
func Mnemonic(c vm.Cell) string {
	if vm.IsDigit(c) {
		return "push " + string(rune(c))
	}
	if m, ok := mnemonics[c]; ok {
		return m
	}
	return strconv.QuoteRune(rune(c))
}

func cellText(c vm.Cell, mode vm.Mode) string {
	if mode == vm.StringMode && c != vm.OpString {
		return "char " + strconv.QuoteRune(rune(c))
	}
	return Mnemonic(c)
}

// Disassemble writes a disassembly of the cell at position p in the grid to
// the specified io.Writer, decoded according to mode, and returns any write
// error. Nothing is written if p is out of bounds.
func Disassemble(g *vm.Grid, p vm.Position, mode vm.Mode, w io.Writer) error {
	c, err := g.Cell(p.X, p.Y)
	if err != nil {
		return err
	}
	ew := bfi.NewErrWriter(w)
	io.WriteString(ew, cellText(c, mode))
	return ew.Err
}

// DisassembleAll writes a listing of all the non-space cells of g to the
// specified io.Writer, one per line, prefixed with their coordinates. It will
// return any write error.
//
// Each row is decoded left to right, starting in normal mode, and string mode
// is toggled on every '"'. This matches execution only for code that flows
// from left to right: the listing is an aid, not a trace.
func DisassembleAll(g *vm.Grid, w io.Writer) error {
	ew := bfi.NewErrWriter(w)
	for y := 0; y < g.Rows(); y++ {
		mode := vm.NormalMode
		for x := 0; x < g.Width(y); x++ {
			c, _ := g.Cell(x, y)
			if c == vm.OpNop && mode == vm.NormalMode {
				continue
			}
			ew.Printf("% 4d % 4d\t%s\n", x, y, cellText(c, mode))
			if c == vm.OpString {
				mode ^= vm.StringMode
			}
			if ew.Err != nil {
				return ew.Err
			}
		}
	}
	return nil
}
