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

// Package vm implements a Befunge interpreter.
//
// A program is a grid of single character instructions. The instruction
// pointer (PC) starts at the top-left cell heading right, and moves one cell
// at a time in its current direction, wrapping around the edges of the grid.
// Rows may have different lengths: the column is always wrapped against the
// length of the row the PC moves into.
//
// Supported instructions:
//
//	char	stack	description
//	----	-----	-----------------------------------------------------------
//	0-9	-n	push the digit value
//	+	ab-c	push b+a
//	-	ab-c	push b-a
//	*	ab-c	push b*a
//	/	ab-c	push b/a, truncated toward zero. Fails if a is 0.
//	%	ab-c	push b%a, with the sign of b. Fails if a is 0.
//	!	n-f	push 1 if n is 0, else 0
//	`	ab-f	push 1 if b > a, else 0
//	>	-	go right
//	<	-	go left
//	^	-	go up
//	v	-	go down
//	?	-	go in a random direction
//	_	n-	go right if n is 0, else left
//	|	n-	go down if n is 0, else up
//	"	-	toggle string mode
//	:	n-nn	duplicate
//	\	ab-ba	swap
//	$	n-	discard
//	.	n-	output n as a decimal number
//	,	n-	output the character with code point n
//	#	-	bridge: skip the next cell
//	g	xy-v	push the value of cell (x, y)
//	p	vxy-	store v in cell (x, y)
//	&	-n	read a decimal number from input, -1 at end of input
//	~	-c	read a character from input, -1 at end of input
//	@	-	halt
//	space	-	no-op
//
// Stack values are 64 bits signed integers. When p stores a value or ','
// writes it, a value that is not a valid Unicode code point is reduced modulo
// 2^16, so that -1 is written as U+FFFF. Surrogate halves are written as
// U+FFFD.
//
// Popping an empty stack yields 0. In string mode, every cell but '"' is
// pushed on the stack. Any other character is a no-op, unless a custom
// handler has been bound to it with BindHandler.
//
// The grid cannot grow: g and p fail with a *BoundsError when addressing a
// cell outside of an existing row. Division and modulo by zero fail with
// ErrDivisionByZero.
//
// An Instance is not safe for concurrent use, but independent instances can
// run concurrently. Programs are not guaranteed to terminate: hosts should use
// the MaxSteps option or RunContext to bound execution.
package vm
