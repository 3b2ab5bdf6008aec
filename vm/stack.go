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

// Stack is the operand stack of an Instance. It grows as needed; popping or
// peeking an empty Stack yields 0.
type Stack struct {
	data []Cell
}

// Push pushes v on top of the stack.
func (s *Stack) Push(v Cell) {
	s.data = append(s.data, v)
}

// Pop removes the value on top of the stack and returns it.
func (s *Stack) Pop() Cell {
	n := len(s.data) - 1
	if n < 0 {
		return 0
	}
	v := s.data[n]
	s.data = s.data[:n]
	return v
}

// Peek returns the value on top of the stack without removing it.
func (s *Stack) Peek() Cell {
	if len(s.data) == 0 {
		return 0
	}
	return s.data[len(s.data)-1]
}

// Len returns the stack depth.
func (s *Stack) Len() int {
	return len(s.data)
}

// Values returns the stack contents, bottom first. Value changes will be
// reflected in the stack, but re-slicing will not affect it.
func (s *Stack) Values() []Cell {
	return s.data
}
