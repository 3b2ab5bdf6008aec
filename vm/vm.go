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

package vm

import (
	"bytes"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/db47h/befunge/internal/bfi"
	"github.com/pkg/errors"
)

// Cell is the raw type stored in a grid cell or on the stack. Grid cells hold
// the code point of their character, stack values use the full 64 bits.
type Cell int64

// Mode is the instruction decoding mode.
type Mode int

// Decoding modes. In StringMode, every cell but '"' is pushed on the stack as
// is.
const (
	NormalMode Mode = iota
	StringMode
)

// Instance represents a Befunge interpreter instance.
type Instance struct {
	PC       Position  // Program Counter (aka. Instruction Pointer)
	Dir      Direction // Current heading of the PC
	Grid     *Grid     // Program memory
	stack    Stack
	mode     Mode
	halted   bool
	insCount int64
	maxSteps int64
	input    io.RuneReader
	output   runeWriter
	out      bytes.Buffer
	numBuf   []byte
	rnd      *rand.Rand
	handlers map[Cell]Handler
	trace    TraceFunc
}

// Option interface
type Option func(*Instance) error

// Input pushes the given Reader on top of the input stack. It is used by the
// & and ~ instructions.
func Input(r io.Reader) Option {
	return func(i *Instance) error { i.PushInput(r); return nil }
}

// Output configures the output writer. The default is an in-memory buffer
// whose contents are returned by the Output method.
//
// If w implements a Flush method, it will be called when Run returns.
func Output(w io.Writer) Option {
	return func(i *Instance) error {
		if w == nil {
			return errors.New("nil output writer")
		}
		i.output = newWriter(w)
		return nil
	}
}

// Rand sets the random source used by the ? instruction. The default is a
// source seeded from the current time.
func Rand(r *rand.Rand) Option {
	return func(i *Instance) error { i.rnd = r; return nil }
}

// MaxSteps limits the number of instructions executed by a single call to Run.
// When the limit is reached, Run returns an error whose cause is ErrAborted.
// A value of 0 disables the limit.
func MaxSteps(n int64) Option {
	return func(i *Instance) error {
		if n < 0 {
			return errors.Errorf("invalid step limit %d", n)
		}
		i.maxSteps = n
		return nil
	}
}

// TraceFunc is the function prototype for execution tracers. It is called
// before each instruction is executed. Returning a non-nil error stops
// execution.
type TraceFunc func(i *Instance) error

// Trace sets the execution tracer.
func Trace(fn TraceFunc) Option {
	return func(i *Instance) error { i.trace = fn; return nil }
}

// Handler is the function prototype for custom instructions.
type Handler func(i *Instance) error

// BindHandler binds the provided handler to instruction op.
//
// Handlers are called when the PC lands on op in normal mode. They may use
// the Push and Pop methods, change Dir or the Grid. The PC is advanced as
// usual once the handler returns.
//
// Built-in instructions cannot be rebound. Characters without a handler are
// no-ops.
func BindHandler(op Cell, h Handler) Option {
	return func(i *Instance) error {
		if IsBuiltin(op) {
			return errors.Errorf("cannot rebind built-in instruction %q", rune(op))
		}
		i.handlers[op] = h
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new interpreter instance running program g. The PC starts at
// the top-left cell, heading right. The grid is used as is and will be
// modified by p instructions.
//
// Options will be set by calling SetOptions.
func New(g *Grid, opts ...Option) (*Instance, error) {
	if g == nil || len(g.rows) == 0 {
		return nil, ErrEmptyProgram
	}
	i := &Instance{
		Grid:     g,
		Dir:      Right,
		handlers: make(map[Cell]Handler),
	}
	i.output = &i.out
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.rnd == nil {
		i.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return i, nil
}

// Interpret runs the program src and returns its output. Execution stops when
// a halt instruction is reached or an error occurs, in which case the output
// produced so far is returned along with the error.
//
// Options are passed to New. If an Output option is given, the returned
// string will be empty.
func Interpret(src string, opts ...Option) (string, error) {
	g, err := Parse(src)
	if err != nil {
		return "", err
	}
	i, err := New(g, opts...)
	if err != nil {
		return "", err
	}
	err = i.Run()
	return i.Output(), err
}

// Push pushes the argument on top of the data stack.
func (i *Instance) Push(v Cell) {
	i.stack.Push(v)
}

// Pop pops the value on top of the data stack and returns it. It returns 0 if
// the stack is empty.
func (i *Instance) Pop() Cell {
	return i.stack.Pop()
}

// Data returns the data stack. Note that value changes will be reflected in the
// instance's stack, but re-slicing will not affect it. To add/remove values on
// the data stack, use the Push and Pop functions.
func (i *Instance) Data() []Cell {
	return i.stack.Values()
}

// Mode returns the current decoding mode.
func (i *Instance) Mode() Mode {
	return i.mode
}

// Halted reports whether the program has executed a halt instruction.
func (i *Instance) Halted() bool {
	return i.halted
}

// InstructionCount returns the number of instructions executed by the last
// call to Run.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Output returns the output produced so far when no Output option was given.
func (i *Instance) Output() string {
	return i.out.String()
}

// Dump dumps the data stack and program grid to the specified io.Writer. The
// stack is written after a '\x1C' byte, bottom first, with values separated by
// spaces. Each grid row follows, prefixed with a '\x1D' byte.
func (i *Instance) Dump(w io.Writer) error {
	ew := bfi.NewErrWriter(w)
	ew.Write([]byte{'\x1C'})
	for k, v := range i.stack.Values() {
		if k > 0 {
			ew.Write([]byte{' '})
		}
		io.WriteString(ew, strconv.FormatInt(int64(v), 10))
	}
	ew.Write([]byte{'\x1D'})
	io.WriteString(ew, strings.ReplaceAll(i.Grid.String(), "\n", "\x1D"))
	return ew.Err
}
