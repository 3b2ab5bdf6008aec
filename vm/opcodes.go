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

// Befunge instructions. Digits '0' to '9' push their value and have no
// dedicated constant.
const (
	OpNop     Cell = ' '
	OpAdd     Cell = '+'
	OpSub     Cell = '-'
	OpMul     Cell = '*'
	OpDiv     Cell = '/'
	OpMod     Cell = '%'
	OpNot     Cell = '!'
	OpGreater Cell = '`'
	OpRight   Cell = '>'
	OpLeft    Cell = '<'
	OpUp      Cell = '^'
	OpDown    Cell = 'v'
	OpRandom  Cell = '?'
	OpHIf     Cell = '_'
	OpVIf     Cell = '|'
	OpString  Cell = '"'
	OpDup     Cell = ':'
	OpSwap    Cell = '\\'
	OpDrop    Cell = '$'
	OpOutNum  Cell = '.'
	OpOutChar Cell = ','
	OpBridge  Cell = '#'
	OpGet     Cell = 'g'
	OpPut     Cell = 'p'
	OpInNum   Cell = '&'
	OpInChar  Cell = '~'
	OpHalt    Cell = '@'
)

var builtins = [...]Cell{
	OpNop, OpAdd, OpSub, OpMul, OpDiv, OpMod, OpNot, OpGreater,
	OpRight, OpLeft, OpUp, OpDown, OpRandom, OpHIf, OpVIf,
	OpString, OpDup, OpSwap, OpDrop, OpOutNum, OpOutChar,
	OpBridge, OpGet, OpPut, OpInNum, OpInChar, OpHalt,
}

var builtinIndex = make(map[Cell]bool, len(builtins))

func init() {
	for _, op := range builtins {
		builtinIndex[op] = true
	}
}

// IsDigit reports whether c is one of the '0' to '9' push instructions.
func IsDigit(c Cell) bool {
	return c >= '0' && c <= '9'
}

// IsBuiltin reports whether c is a built-in instruction. Custom handlers
// cannot be bound to built-in instructions.
func IsBuiltin(c Cell) bool {
	return IsDigit(c) || builtinIndex[c]
}
