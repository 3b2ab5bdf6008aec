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
	"flag"
	"strings"
	"testing"
)

func TestParseConfig(t *testing.T) {
	cfg, err := parseConfig(strings.NewReader("maxsteps: 500\nseed: 42\ntrace: true\n"), "test")
	if err != nil {
		t.Fatal(err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	steps := fs.Int64("maxsteps", 0, "")
	sd := fs.Int64("seed", 0, "")
	tr := fs.Bool("trace", false, "")
	fs.Bool("noraw", false, "")
	fs.Bool("debug", false, "")
	if err = fs.Parse([]string{"-seed", "7"}); err != nil {
		t.Fatal(err)
	}
	cfg.apply(fs)
	if *steps != 500 || *sd != 7 || !*tr {
		t.Fatalf("Unexpected settings: maxsteps=%d seed=%d trace=%v", *steps, *sd, *tr)
	}
}

func TestParseConfig_errors(t *testing.T) {
	for _, src := range []string{
		"maxsteps: -1\n",
		"unknown: 1\n",
		"seed: [1, 2]\n",
	} {
		if _, err := parseConfig(strings.NewReader(src), "test"); err == nil {
			t.Errorf("%q: expected error", src)
		}
	}
	if cfg, err := parseConfig(strings.NewReader(""), "empty"); err != nil || cfg == nil {
		t.Errorf("empty config: got %v, %v", cfg, err)
	}
}

func TestCtrlDReader(t *testing.T) {
	r := ctrlDReader{strings.NewReader("ab\x04cd")}
	b := make([]byte, 16)
	n, err := r.Read(b)
	if n != 2 || err == nil || string(b[:n]) != "ab" {
		t.Fatalf("Expected \"ab\" and EOF, got %q, %v", b[:n], err)
	}
}
