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

import "strconv"

// Position is a cell coordinate in a Grid. X is the column, Y the row.
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// Direction is the heading of the instruction pointer.
type Direction int

// Cardinal directions. Up is towards row 0.
const (
	Right Direction = iota
	Down
	Left
	Up
)

var deltas = [...]struct{ dx, dy int }{
	{1, 0},
	{0, 1},
	{-1, 0},
	{0, -1},
}

var dirNames = [...]string{"right", "down", "left", "up"}

// Delta returns the unit displacement for d.
func (d Direction) Delta() (dx, dy int) {
	v := deltas[d&3]
	return v.dx, v.dy
}

func (d Direction) String() string {
	return dirNames[d&3]
}
