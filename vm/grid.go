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
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Grid is the program memory: rows of cells addressed by (x, y). Rows may have
// different lengths, in which case each row wraps at its own length.
type Grid struct {
	rows [][]Cell
}

// Parse builds a Grid from program source text. Lines are separated by '\n',
// an optional '\r' at the end of a line is ignored, and a single trailing
// newline does not start a new row. Each rune of a line is a cell.
//
// Empty lines within the program are stored as a single space so that the
// instruction pointer can cross them. Parse returns ErrEmptyProgram if src has
// no cells at all.
func Parse(src string) (*Grid, error) {
	lines := strings.Split(strings.TrimSuffix(src, "\n"), "\n")
	g := &Grid{rows: make([][]Cell, len(lines))}
	var n int
	for y, l := range lines {
		l = strings.TrimSuffix(l, "\r")
		row := make([]Cell, 0, len(l))
		for _, r := range l {
			row = append(row, Cell(r))
		}
		n += len(row)
		if len(row) == 0 {
			row = append(row, OpNop)
		}
		g.rows[y] = row
	}
	if n == 0 {
		return nil, ErrEmptyProgram
	}
	return g, nil
}

// Load loads a program from file fileName.
func Load(fileName string) (*Grid, error) {
	b, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	g, err := Parse(string(b))
	if err != nil {
		return nil, errors.Wrapf(err, "Load %v", fileName)
	}
	return g, nil
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return len(g.rows)
}

// Width returns the length of row y, or 0 if y is not a valid row index.
func (g *Grid) Width(y int) int {
	if y < 0 || y >= len(g.rows) {
		return 0
	}
	return len(g.rows[y])
}

func (g *Grid) inBounds(x, y int) bool {
	return y >= 0 && y < len(g.rows) && x >= 0 && x < len(g.rows[y])
}

// Cell returns the value of the cell at (x, y).
func (g *Grid) Cell(x, y int) (Cell, error) {
	if !g.inBounds(x, y) {
		return 0, &BoundsError{x, y}
	}
	return g.rows[y][x], nil
}

// SetCell overwrites the cell at (x, y) with v. The cell must exist.
func (g *Grid) SetCell(x, y int, v Cell) error {
	if !g.inBounds(x, y) {
		return &BoundsError{x, y}
	}
	g.rows[y][x] = v
	return nil
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Advance returns the position one step away from p in direction d. The row
// is wrapped first, then the column is wrapped against the length of the
// destination row.
func (g *Grid) Advance(p Position, d Direction) Position {
	dx, dy := d.Delta()
	y := wrap(p.Y+dy, len(g.rows))
	x := wrap(p.X+dx, len(g.rows[y]))
	return Position{x, y}
}

// codePoint converts a stack value to the character code stored by p or
// written by ','. Values outside of the valid code point range are reduced
// modulo 2^16.
func codePoint(v Cell) Cell {
	if v >= 0 && v <= utf8.MaxRune && utf8.ValidRune(rune(v)) {
		return v
	}
	return Cell(uint16(v))
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: make([][]Cell, len(g.rows))}
	for y, row := range g.rows {
		c.rows[y] = append([]Cell(nil), row...)
	}
	return c
}

// String returns the grid contents as program source text.
func (g *Grid) String() string {
	var b strings.Builder
	for y, row := range g.rows {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			b.WriteRune(rune(c))
		}
	}
	return b.String()
}
