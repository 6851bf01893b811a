// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package check

import (
	"errors"
	"testing"
)

func TestExpectContinues(t *testing.T) {
	var g Group
	ran := 0
	body := func() {
		g.Expect(Equal(1, 2))
		ran++
		g.Expect(Equal(3, 3))
		ran++
		g.Expect(Equal(4, 5))
		ran++
	}
	body()
	if ran != 3 {
		t.Errorf("body stopped after %d steps, want 3", ran)
	}
	if n := len(g.Failures()); n != 2 {
		t.Errorf("got %d failures, want 2", n)
	}
}

func TestAssertStops(t *testing.T) {
	var g Group
	ran := 0
	body := func() error {
		if err := g.Assert(Equal(1, 1)); err != nil {
			return err
		}
		ran++
		if err := g.Assert(Equal(1, 2)); err != nil {
			return err
		}
		ran++
		return nil
	}
	err := body()
	if ran != 1 {
		t.Errorf("body ran %d steps, want 1", ran)
	}
	if !g.Recorded(err) {
		t.Errorf("Assert returned %v, which the group did not record", err)
	}
	if g.Recorded(errors.New("other")) {
		t.Errorf("Recorded reports an unrelated error")
	}
	// Assert on a passing check must return a nil interface.
	if err := g.Assert(nil); err != nil {
		t.Errorf("Assert(nil) = %#v, want nil", err)
	}
}

func reallyEven(n int) GroupFunc {
	return func(g *Group) error {
		g.Expect(isEven(n))
		g.Expect(isEven(n))
		return nil
	}
}

func TestGroupStack(t *testing.T) {
	var g Group
	if !g.ExpectGroup(reallyEven(2)) {
		t.Errorf("ExpectGroup(reallyEven(2)) failed")
	}

	line := thisLine(t) + 1
	ok := g.ExpectGroup(reallyEven(3))
	if ok {
		t.Fatalf("ExpectGroup(reallyEven(3)) passed")
	}
	fs := g.Failures()
	if len(fs) != 2 {
		t.Fatalf("got %d failures, want 2", len(fs))
	}
	for _, f := range fs {
		if len(f.Stack) != 1 || f.Stack[0].Line != line {
			t.Errorf("stack = %v, want one frame at line %d", f.Stack, line)
		}
	}

	// Nested groups prepend each enclosing call site.
	var outer Group
	var innerLine int
	outerLine := thisLine(t) + 1
	err := outer.AssertGroup(nested(t, &innerLine))
	if err == nil {
		t.Fatal("AssertGroup passed")
	}
	for _, f := range outer.Failures() {
		if len(f.Stack) != 2 || f.Stack[0].Line != outerLine || f.Stack[1].Line != innerLine {
			t.Errorf("stack = %v, want [%d %d]", f.Stack, outerLine, innerLine)
		}
	}
	if !outer.Recorded(err) {
		t.Errorf("AssertGroup returned an unrecorded error")
	}
}

func nested(t *testing.T, line *int) GroupFunc {
	return func(g *Group) error {
		*line = thisLine(t) + 1
		g.ExpectGroup(reallyEven(5))
		return nil
	}
}

func TestGroupUnexpectedError(t *testing.T) {
	var g Group
	g.ExpectGroup(func(g *Group) error {
		return errors.New("disk full")
	})
	fs := g.Failures()
	if len(fs) != 1 {
		t.Fatalf("got %d failures, want 1", len(fs))
	}
	if msg, _ := fs[0].Lookup("message"); msg != "disk full" {
		t.Errorf("message = %q, want %q", msg, "disk full")
	}
}
