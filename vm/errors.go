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
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyProgram is returned when building a Grid from a source
	// that contains no cells at all.
	ErrEmptyProgram = errors.New("empty program")

	// ErrDivisionByZero is returned when the divisor of a / or %
	// instruction is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrAborted is returned when execution is stopped by the host before
	// the program reaches a halt instruction: step limit exceeded or
	// context cancelled. Run can be called again to resume execution.
	ErrAborted = errors.New("execution aborted")
)

// BoundsError is returned when a g or p instruction addresses a cell outside
// of the program grid. Rows cannot grow at runtime.
type BoundsError struct {
	X, Y int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("cell %d,%d out of program bounds", e.X, e.Y)
}
