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

// Package disasm provides utility functions to disassemble Befunge programs.
//
// Mnemonics:
//
//	char	mnemonic	char	mnemonic
//	----	--------	----	--------
//	0-9	push n		:	dup
//	+	add		\	swap
//	-	sub		$	drop
//	*	mul		.	outn
//	/	div		,	outc
//	%	mod		#	skip
//	!	not		g	get
//	`	gt		p	put
//	>	right		&	inn
//	<	left		~	inc
//	^	up		@	halt
//	v	down		"	str
//	?	rand		space	nop
//	_	hif
//	|	vif
//
// Cells read in string mode are shown as "char 'c'". Any other character is
// shown quoted: it is a no-op unless the host binds a handler to it.
package disasm
