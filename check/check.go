// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package check provides assertion-style checks for accel tests.
//
// A check is an ordinary function that returns nil when it passes and
// a *Failure when it does not. The failure records the check's call
// site and the source text of the check expression, recovered from the
// caller's source file. Operand values are attached as diagnostics
// only when their rendering differs from their source text, so
// check.Equal(2+2, 5) reports left = 4 but not right = 5.
//
// Checks are recorded with a Group, which offers the two disciplines:
// Expect records a failure and lets the caller continue, Assert records
// it and returns it as an error for the caller to return.
//
//	func (sumTest) Execute(t *suite.T) error {
//		t.Expect(check.Equal(sum(1, 2), 3))
//		if err := t.Assert(check.NoError(err)); err != nil {
//			return err
//		}
//		...
//	}
//
// Custom checks capture their call site with Here:
//
//	func IsEven(n int) *check.Failure {
//		if n%2 == 0 {
//			return nil
//		}
//		a := check.Here("IsEven")
//		return a.Fail().Messagef("%d is not even", n)
//	}
package check

import (
	"cmp"
	"fmt"
	"runtime"

	"golang.org/x/accel/diag"
	"golang.org/x/accel/internal/srcexpr"
)

// An Assertion describes one invocation of a check: where it was called
// and, lazily, the source text of the call.
type Assertion struct {
	// Location is the call site of the check.
	Location Location

	name   string
	call   srcexpr.Call
	looked bool
}

// Here returns the Assertion for a call to the check function name,
// made by the caller of the function that calls Here.
func Here(name string) *Assertion {
	return capture(name, 2)
}

// capture builds the Assertion for the call skip frames above its
// caller.
func capture(name string, skip int) *Assertion {
	return &Assertion{Location: callerLocation(skip + 1), name: name}
}

// Caller returns the Location of the call skip frames above the caller
// of Caller. Caller(0) is the line that called Caller.
func Caller(skip int) Location {
	return callerLocation(skip + 1)
}

func callerLocation(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{File: "???", Line: 0}
	}
	return Location{File: file, Line: line}
}

func (a *Assertion) lookup() {
	if a.looked {
		return
	}
	a.looked = true
	if call, ok := srcexpr.Lookup(a.Location.File, a.Location.Line, a.name); ok {
		a.call = call
	}
}

// Expr returns the source text of the check call. If the source is not
// available, it returns the check name followed by "(...)".
func (a *Assertion) Expr() string {
	a.lookup()
	if a.call.Expr == "" {
		return a.name + "(...)"
	}
	return a.call.Expr
}

// Arg returns the source text of argument i, or "" if unknown.
func (a *Assertion) Arg(i int) string {
	a.lookup()
	if i < 0 || i >= len(a.call.Args) {
		return ""
	}
	return a.call.Args[i]
}

// Fail returns a new Failure at a's location described by a's source
// expression.
func (a *Assertion) Fail() *Failure {
	return &Failure{Location: a.Location, Description: a.Expr()}
}

// Operand adds the rendering of argument i's value v to f under key,
// unless the value has no representation or renders exactly as its
// source text.
func (a *Assertion) Operand(f *Failure, key string, i int, v any) {
	s, ok := diag.Default.Format(v)
	if !ok || s == a.Arg(i) {
		return
	}
	f.AddInformation(key, s)
}

// True checks that value is true.
func True(value bool) *Failure {
	if value {
		return nil
	}
	a := capture("True", 1)
	f := a.Fail()
	a.Operand(f, "value", 0, value)
	return f
}

// False checks that value is false.
func False(value bool) *Failure {
	if !value {
		return nil
	}
	a := capture("False", 1)
	f := a.Fail()
	a.Operand(f, "value", 0, value)
	return f
}

func compare[T any](name string, left, right T, ok bool) *Failure {
	if ok {
		return nil
	}
	a := capture(name, 2)
	f := a.Fail()
	a.Operand(f, "left", 0, left)
	a.Operand(f, "right", 1, right)
	return f
}

// Equal checks that left == right.
func Equal[T comparable](left, right T) *Failure {
	return compare("Equal", left, right, left == right)
}

// NotEqual checks that left != right.
func NotEqual[T comparable](left, right T) *Failure {
	return compare("NotEqual", left, right, left != right)
}

// Less checks that left < right.
func Less[T cmp.Ordered](left, right T) *Failure {
	return compare("Less", left, right, left < right)
}

// LessEqual checks that left <= right.
func LessEqual[T cmp.Ordered](left, right T) *Failure {
	return compare("LessEqual", left, right, left <= right)
}

// Greater checks that left > right.
func Greater[T cmp.Ordered](left, right T) *Failure {
	return compare("Greater", left, right, left > right)
}

// GreaterEqual checks that left >= right.
func GreaterEqual[T cmp.Ordered](left, right T) *Failure {
	return compare("GreaterEqual", left, right, left >= right)
}

// NoError checks that err is nil.
func NoError(err error) *Failure {
	if err == nil {
		return nil
	}
	a := capture("NoError", 1)
	f := a.Fail()
	f.AddInformation("error", err.Error())
	return f
}

// Panics checks that fn panics.
func Panics(fn func()) *Failure {
	if _, panicked := catch(fn); panicked {
		return nil
	}
	a := capture("Panics", 1)
	return a.Fail().Messagef("expected panic")
}

// NotPanics checks that fn returns without panicking.
func NotPanics(fn func()) *Failure {
	v, panicked := catch(fn)
	if !panicked {
		return nil
	}
	a := capture("NotPanics", 1)
	f := a.Fail()
	if s, ok := diag.Default.Format(v); ok {
		f.Messagef("unexpected panic")
		f.AddInformation("panic", s)
	} else {
		f.Messagef("unexpected panic of type %T", v)
	}
	return f
}

// catch runs fn and reports the value it panicked with, if any.
func catch(fn func()) (v any, panicked bool) {
	panicked = true
	defer func() {
		if panicked {
			v = recover()
		}
	}()
	fn()
	return nil, false
}

func (a *Assertion) String() string {
	return fmt.Sprintf("%s: %s", a.Location, a.Expr())
}
