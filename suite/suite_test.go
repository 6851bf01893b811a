// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suite

import (
	"errors"
	"fmt"
	"testing"

	"golang.org/x/accel/check"
)

var here = check.Location{File: "suite_test.go", Line: 1}

type lifecycle struct {
	events []string
	body   func(t *T) error
}

func (l *lifecycle) SetUp()    { l.events = append(l.events, "setup") }
func (l *lifecycle) TearDown() { l.events = append(l.events, "teardown") }
func (l *lifecycle) Execute(t *T) error {
	l.events = append(l.events, "execute")
	return l.body(t)
}

func TestRunPasses(t *testing.T) {
	test := &lifecycle{body: func(t *T) error {
		t.Expect(check.Equal(1, 1))
		return nil
	}}
	r := Run(test, here)
	if !r.Passed() {
		t.Errorf("report has failures: %v", r.Failures)
	}
	if fmt.Sprint(test.events) != "[setup execute teardown]" {
		t.Errorf("events = %v", test.events)
	}
}

func TestRunAssertStopsBody(t *testing.T) {
	reached := false
	r := Run(Func(func(t *T) error {
		t.Expect(check.Equal(1, 2))
		if err := t.Assert(check.Equal(3, 4)); err != nil {
			return err
		}
		reached = true
		return nil
	}), here)
	if reached {
		t.Errorf("body continued past a failed Assert")
	}
	// The returned failure is already recorded and must not be
	// reported twice.
	if n := len(r.Failures); n != 2 {
		t.Errorf("got %d failures, want 2: %v", n, r.Failures)
	}
}

func TestRunUnexpectedError(t *testing.T) {
	r := Run(Func(func(t *T) error {
		return errors.New("connection refused")
	}), here)
	checkFault(t, r, "unexpected error", "connection refused")
}

func TestRunPanic(t *testing.T) {
	test := &lifecycle{body: func(t *T) error {
		t.Expect(check.True(false))
		panic("boom")
	}}
	r := Run(test, here)
	if fmt.Sprint(test.events) != "[setup execute teardown]" {
		t.Errorf("events = %v, want teardown after panic", test.events)
	}
	if n := len(r.Failures); n != 2 {
		t.Fatalf("got %d failures, want 2", n)
	}
	r.Failures = r.Failures[1:]
	checkFault(t, r, "unexpected panic", "boom")
}

func TestRunPanicError(t *testing.T) {
	r := Run(Func(func(t *T) error {
		panic(fmt.Errorf("index %d out of range", 3))
	}), here)
	checkFault(t, r, "unexpected panic", "index 3 out of range")
}

func TestRunPanicInGroup(t *testing.T) {
	var site check.Location
	r := Run(Func(func(t *T) error {
		t.Expect(check.Equal(1, 2))
		site = check.Caller(0)
		t.ExpectGroup(func(g *check.Group) error {
			g.Expect(check.Equal(3, 4))
			panic("boom")
		})
		return nil
	}), here)
	if n := len(r.Failures); n != 3 {
		t.Fatalf("got %d failures, want 3: %v", n, r.Failures)
	}
	if len(r.Failures[0].Stack) != 0 {
		t.Errorf("top-level failure has stack %v", r.Failures[0].Stack)
	}
	// The group's failure survives the panic with its call site.
	if st := r.Failures[1].Stack; len(st) != 1 || st[0].Line != site.Line+1 {
		t.Errorf("group failure stack = %v, want one frame at line %d", st, site.Line+1)
	}
	r.Failures = r.Failures[2:]
	checkFault(t, r, "unexpected panic", "boom")
}

type panicky struct{ Base }

func (panicky) SetUp()           { panic("no fixture") }
func (panicky) Execute(*T) error { return nil }

func TestRunSetUpPanic(t *testing.T) {
	r := Run(panicky{}, here)
	checkFault(t, r, "unexpected panic", "no fixture")
}

func checkFault(t *testing.T, r *check.Report, wantMsg, wantInfo string) {
	t.Helper()
	if len(r.Failures) != 1 {
		t.Fatalf("got %d failures, want 1: %v", len(r.Failures), r.Failures)
	}
	f := r.Failures[0]
	if f.Location != here {
		t.Errorf("location = %v, want %v", f.Location, here)
	}
	if f.Message != wantMsg {
		t.Errorf("message = %q, want %q", f.Message, wantMsg)
	}
	if got, _ := f.Lookup("message"); got != wantInfo {
		t.Errorf("message info = %q, want %q", got, wantInfo)
	}
}

func TestRecover(t *testing.T) {
	if err := Recover(nil); err != nil {
		t.Errorf("Recover(nil) = %v, want nil", err)
	}
	if err := Recover(42); err == nil || err.Error() != "42" {
		t.Errorf("Recover(42) = %v, want 42", err)
	}
}
