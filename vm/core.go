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
	"context"

	"github.com/pkg/errors"
)

// check for context cancellation every ctxCheck+1 instructions.
const ctxCheck = 1023

// Run starts execution of the program until it reaches a halt instruction.
// It is a shorthand for RunContext(context.Background()).
func (i *Instance) Run() error {
	return i.RunContext(context.Background())
}

// RunContext starts execution of the program until it reaches a halt
// instruction.
//
// If an error occurs, the PC will point to the instruction that triggered
// the error. If the program halts cleanly, the PC points to the halt
// instruction and err is nil. Calling RunContext on a halted instance is a
// no-op.
//
// The language itself has no termination guarantee. If ctx is cancelled or
// the step limit set with MaxSteps is reached, RunContext returns an error
// whose cause is ErrAborted. Execution can then be resumed by calling
// RunContext again.
func (i *Instance) RunContext(ctx context.Context) (err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "recovered error @pc=%v, stack depth %d", i.PC, i.stack.Len())
			default:
				panic(e)
			}
		}
		if ferr := i.flush(); err == nil {
			err = ferr
		}
	}()
	done := ctx.Done()
	i.insCount = 0
	for !i.halted {
		if i.maxSteps > 0 && i.insCount >= i.maxSteps {
			return errors.Wrapf(ErrAborted, "step limit %d reached @pc=%v", i.maxSteps, i.PC)
		}
		if done != nil && i.insCount&ctxCheck == 0 {
			select {
			case <-done:
				return errors.Wrapf(ErrAborted, "%v @pc=%v", ctx.Err(), i.PC)
			default:
			}
		}
		if i.trace != nil {
			if err = i.trace(i); err != nil {
				return err
			}
		}
		if err = i.step(); err != nil {
			return err
		}
		i.insCount++
	}
	return nil
}

func (i *Instance) fault(op Cell, err error) error {
	return errors.Wrapf(err, "instruction %q @pc=%v", rune(op), i.PC)
}

// step executes the instruction under the PC and advances the PC, unless
// the instruction was a halt.
func (i *Instance) step() error {
	op := i.Grid.rows[i.PC.Y][i.PC.X]
	if i.mode == StringMode && op != OpString {
		i.stack.Push(op)
		i.PC = i.Grid.Advance(i.PC, i.Dir)
		return nil
	}
	switch op {
	case OpNop:
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		i.stack.Push(op - '0')
	case OpAdd:
		a, b := i.stack.Pop(), i.stack.Pop()
		i.stack.Push(b + a)
	case OpSub:
		a, b := i.stack.Pop(), i.stack.Pop()
		i.stack.Push(b - a)
	case OpMul:
		a, b := i.stack.Pop(), i.stack.Pop()
		i.stack.Push(b * a)
	case OpDiv:
		a, b := i.stack.Pop(), i.stack.Pop()
		if a == 0 {
			return i.fault(op, ErrDivisionByZero)
		}
		i.stack.Push(b / a)
	case OpMod:
		a, b := i.stack.Pop(), i.stack.Pop()
		if a == 0 {
			return i.fault(op, ErrDivisionByZero)
		}
		i.stack.Push(b % a)
	case OpGreater:
		a, b := i.stack.Pop(), i.stack.Pop()
		i.stack.Push(truth(b > a))
	case OpNot:
		i.stack.Push(truth(i.stack.Pop() == 0))
	case OpDup:
		i.stack.Push(i.stack.Peek())
	case OpSwap:
		a, b := i.stack.Pop(), i.stack.Pop()
		i.stack.Push(a)
		i.stack.Push(b)
	case OpDrop:
		i.stack.Pop()
	case OpOutNum:
		if err := i.writeNum(i.stack.Pop()); err != nil {
			return i.fault(op, err)
		}
	case OpOutChar:
		if err := i.writeChar(i.stack.Pop()); err != nil {
			return i.fault(op, err)
		}
	case OpString:
		if i.mode == StringMode {
			i.mode = NormalMode
		} else {
			i.mode = StringMode
		}
	case OpRight:
		i.Dir = Right
	case OpLeft:
		i.Dir = Left
	case OpUp:
		i.Dir = Up
	case OpDown:
		i.Dir = Down
	case OpRandom:
		i.Dir = Direction(i.rnd.Intn(4))
	case OpHIf:
		if i.stack.Pop() == 0 {
			i.Dir = Right
		} else {
			i.Dir = Left
		}
	case OpVIf:
		if i.stack.Pop() == 0 {
			i.Dir = Down
		} else {
			i.Dir = Up
		}
	case OpBridge:
		i.PC = i.Grid.Advance(i.PC, i.Dir)
	case OpGet:
		y, x := i.stack.Pop(), i.stack.Pop()
		v, err := i.Grid.Cell(int(x), int(y))
		if err != nil {
			return i.fault(op, err)
		}
		i.stack.Push(v)
	case OpPut:
		y, x, v := i.stack.Pop(), i.stack.Pop(), i.stack.Pop()
		if err := i.Grid.SetCell(int(x), int(y), codePoint(v)); err != nil {
			return i.fault(op, err)
		}
	case OpInNum:
		v, err := i.readNum()
		if err != nil {
			return i.fault(op, err)
		}
		i.stack.Push(v)
	case OpInChar:
		v, err := i.readChar()
		if err != nil {
			return i.fault(op, err)
		}
		i.stack.Push(v)
	case OpHalt:
		i.halted = true
		return nil
	default:
		if h := i.handlers[op]; h != nil {
			if err := h(i); err != nil {
				return i.fault(op, err)
			}
		}
	}
	i.PC = i.Grid.Advance(i.PC, i.Dir)
	return nil
}

func truth(b bool) Cell {
	if b {
		return 1
	}
	return 0
}
