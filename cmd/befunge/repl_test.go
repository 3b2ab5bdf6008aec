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

package main

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/db47h/befunge/vm"
)

func TestRunGrid(t *testing.T) {
	g, err := vm.Parse("\"!\"30p 1.@")
	if err != nil {
		t.Fatal(err)
	}
	last := g.Clone()
	var b bytes.Buffer
	runGrid(g, bufio.NewWriter(&b))
	if s := b.String(); s != "1\n" {
		t.Fatalf("Expected \"1\\n\", got %q", s)
	}
	if s := g.String(); s != "\"!\"!0p 1.@" {
		t.Fatalf("Program not modified: %q", s)
	}
	if s := last.String(); s != "\"!\"30p 1.@" {
		t.Fatalf("Saved program modified: %q", s)
	}

	b.Reset()
	g, _ = vm.Parse("12.0/@")
	runGrid(g, bufio.NewWriter(&b))
	exp := "2\nerror: instruction '/' @pc=4,0: division by zero\n"
	if s := b.String(); s != exp {
		t.Fatalf("Expected %q, got %q", exp, s)
	}
}
