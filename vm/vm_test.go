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

package vm_test

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/db47h/befunge/vm"
	"github.com/pkg/errors"
)

func TestMaxSteps(t *testing.T) {
	i := setup(">  5.@", nil, vm.MaxSteps(3))
	err := i.Run()
	if errors.Cause(err) != vm.ErrAborted {
		t.Fatalf("Expected %v, got %v", vm.ErrAborted, err)
	}
	if i.PC != (vm.Position{X: 3, Y: 0}) || i.InstructionCount() != 3 {
		t.Fatalf("Bad PC %v after %d instructions", i.PC, i.InstructionCount())
	}
	// resume
	if err = i.Run(); err != nil {
		t.Fatalf("%+v", err)
	}
	if out := i.Output(); out != "5" {
		t.Fatalf("Expected \"5\", got %q", out)
	}

	if _, err = vm.Interpret(">", vm.MaxSteps(1000)); errors.Cause(err) != vm.ErrAborted {
		t.Fatalf("Expected %v, got %v", vm.ErrAborted, err)
	}
	if _, err = vm.Interpret("@", vm.MaxSteps(-1)); err == nil {
		t.Fatal("Expected error on negative step limit")
	}
}

func TestRunContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	i := setup("1.@", nil)
	if err := i.RunContext(ctx); errors.Cause(err) != vm.ErrAborted {
		t.Fatalf("Expected %v, got %v", vm.ErrAborted, err)
	}
	if i.InstructionCount() != 0 {
		t.Fatalf("Expected no instruction to be executed, got %d", i.InstructionCount())
	}

	// cancel an endless loop from a tracer
	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	var n int
	i = setup("<", nil, vm.Trace(func(*vm.Instance) error {
		n++
		if n == 5000 {
			cancel()
		}
		return nil
	}))
	if err := i.RunContext(ctx); errors.Cause(err) != vm.ErrAborted {
		t.Fatalf("Expected %v, got %v", vm.ErrAborted, err)
	}
	if n < 5000 || n > 5000+1024 {
		t.Fatalf("Cancellation detected after %d instructions", n)
	}
}

func TestBindHandler(t *testing.T) {
	answer := func(i *vm.Instance) error {
		i.Push(42)
		return nil
	}
	out, err := vm.Interpret("h.@", vm.BindHandler('h', answer))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if out != "42" {
		t.Fatalf("Expected \"42\", got %q", out)
	}

	// handlers are not called in string mode
	out, err = vm.Interpret("\"h\".@", vm.BindHandler('h', answer))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if out != "104" {
		t.Fatalf("Expected \"104\", got %q", out)
	}

	if _, err = vm.Interpret("@", vm.BindHandler('+', answer)); err == nil {
		t.Fatal("Expected error when rebinding a built-in instruction")
	}

	errBoom := errors.New("boom")
	_, err = vm.Interpret("  b@", vm.BindHandler('b', func(*vm.Instance) error { return errBoom }))
	if errors.Cause(err) != errBoom {
		t.Fatalf("Expected %v, got %v", errBoom, err)
	}
}

func TestTrace(t *testing.T) {
	var b bytes.Buffer
	tr := func(i *vm.Instance) error {
		c, _ := i.Grid.Cell(i.PC.X, i.PC.Y)
		fmt.Fprintf(&b, "%v %v %c %v\n", i.PC, i.Dir, c, i.Data())
		return nil
	}
	i := setup("2v\n @", nil, vm.Trace(tr))
	if err := i.Run(); err != nil {
		t.Fatalf("%+v", err)
	}
	exp := "0,0 right 2 []\n1,0 right v [2]\n1,1 down @ [2]\n"
	if s := b.String(); s != exp {
		t.Fatalf("Expected:\n%s\ngot:\n%s", exp, s)
	}
}

func TestDump(t *testing.T) {
	i := setup("12@\n\"", nil)
	if err := i.Run(); err != nil {
		t.Fatalf("%+v", err)
	}
	var b bytes.Buffer
	if err := i.Dump(&b); err != nil {
		t.Fatal(err)
	}
	exp := "\x1C1 2\x1D12@\x1D\""
	if s := b.String(); s != exp {
		t.Fatalf("Expected %q, got %q", exp, s)
	}
}

type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) { return 0, errors.New("broken pipe") }

func TestOutput(t *testing.T) {
	var b bytes.Buffer
	w := bufio.NewWriter(&b)
	out, err := vm.Interpret("\"ih\",,55+,@", vm.Output(w))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if out != "" {
		t.Fatalf("Expected no captured output, got %q", out)
	}
	if s := b.String(); s != "hi\n" {
		t.Fatalf("Output not flushed. Expected \"hi\\n\", got %q", s)
	}

	i := setup("1.@", nil, vm.Output(errWriter{}))
	err = i.Run()
	if err == nil || errors.Cause(err).Error() != "broken pipe" {
		t.Fatalf("Expected write error, got %v", err)
	}
	if i.PC != (vm.Position{X: 1, Y: 0}) {
		t.Fatalf("Bad PC %v", i.PC)
	}

	if _, err = vm.Interpret("@", vm.Output(nil)); err == nil {
		t.Fatal("Expected error on nil output")
	}
}

func TestConcurrentInstances(t *testing.T) {
	code := "\"oof\">:#,_@"
	var wg sync.WaitGroup
	res := make([]string, 8)
	errs := make([]error, len(res))
	for k := range res {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			res[k], errs[k] = vm.Interpret(code)
		}(k)
	}
	wg.Wait()
	for k := range res {
		if errs[k] != nil || res[k] != "foo" {
			t.Errorf("instance %d: got %q, %v", k, res[k], errs[k])
		}
	}
}
