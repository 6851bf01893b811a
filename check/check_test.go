// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package check

import (
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func thisLine(t *testing.T) int {
	t.Helper()
	_, _, line, _ := runtime.Caller(1)
	return line
}

func TestPassingChecks(t *testing.T) {
	for i, f := range []*Failure{
		True(2+2 == 4),
		False(2+2 == 5),
		Equal(2+2, 4),
		NotEqual(2+2, 5),
		Less(2+2, 5),
		LessEqual(2+2, 4),
		Greater(2+2, 3),
		GreaterEqual(2+2, 4),
		FloatEqual(float32(3.14159), float32(3.141589), 10),
		FloatNotEqual(float32(3.14159), float32(3.141581), 10),
		NoError(nil),
		Panics(func() { panic("oh no") }),
		NotPanics(func() {}),
	} {
		if f != nil {
			t.Errorf("check %d failed: %v", i, f)
		}
	}
}

func TestFailureLocation(t *testing.T) {
	line := thisLine(t) + 1
	f := Equal(2+2, 5)
	if f == nil {
		t.Fatal("Equal(2+2, 5) passed")
	}
	if f.Location.Line != line {
		t.Errorf("failure line = %d, want %d", f.Location.Line, line)
	}
	if filepath.Base(f.Location.File) != "check_test.go" {
		t.Errorf("failure file = %s, want check_test.go", f.Location.File)
	}
	if !strings.HasPrefix(f.Description, "Equal(") {
		t.Errorf("description = %q, want the check expression", f.Description)
	}
}

func TestOperandInformation(t *testing.T) {
	check := func(f *Failure, want ...Info) {
		t.Helper()
		if f == nil {
			t.Fatal("check passed unexpectedly")
		}
		if diff := cmp.Diff(want, f.Information); diff != "" {
			t.Errorf("information mismatch (-want +got):\n%s", diff)
		}
	}

	// The literal 5 renders as "5" and is omitted.
	check(Equal(2+2, 5), Info{"left", "4"})
	check(NotEqual(2+2, 4), Info{"left", "4"})
	four := 4
	check(Less(four, 4), Info{"left", "4"})
	check(Greater("a", "b"))
	check(True(2+2 == 5), Info{"value", "false"})
	check(False(2+2 == 4), Info{"value", "true"})
	check(NoError(errors.New("boom")), Info{"error", "boom"})
	check(FloatEqual(float32(3.14159), float32(3.141581), 10),
		Info{"left", "3.14159"}, Info{"right", "3.141581"}, Info{"difference", "38"})
}

func TestFloatEqualDifference(t *testing.T) {
	f := FloatEqual(1.0, 2.0, 0)
	if f == nil {
		t.Fatal("FloatEqual(1.0, 2.0, 0) passed")
	}
	want := ULPDistance(1.0, 2.0)
	if got, _ := f.Lookup("difference"); got != "4503599627370496" || want != 1<<52 {
		t.Errorf("difference = %s (distance %d), want %d", got, want, uint64(1)<<52)
	}
}

func TestPanics(t *testing.T) {
	if f := Panics(func() {}); f == nil || f.Message != "expected panic" {
		t.Errorf("Panics(no panic) = %v, want failure", f)
	}
	f := NotPanics(func() { panic(errors.New("oh no")) })
	if f == nil {
		t.Fatal("NotPanics(panic) passed")
	}
	if got, _ := f.Lookup("panic"); got != "oh no" {
		t.Errorf("panic information = %q, want %q", got, "oh no")
	}
	if f := NotPanics(func() { panic(42) }); f == nil {
		t.Errorf("NotPanics(panic(42)) passed")
	}
}

func isEven(n int) *Failure {
	if n%2 == 0 {
		return nil
	}
	a := Here("isEven")
	f := a.Fail().Messagef("%d is not even", n)
	a.Operand(f, "n", 0, n)
	return f
}

func TestHere(t *testing.T) {
	if f := isEven(2); f != nil {
		t.Fatalf("isEven(2) = %v", f)
	}
	line := thisLine(t) + 1
	f := isEven(1 + 2)
	if f == nil {
		t.Fatal("isEven(1 + 2) passed")
	}
	if f.Location.Line != line {
		t.Errorf("failure line = %d, want %d", f.Location.Line, line)
	}
	if f.Description != "isEven(1 + 2)" {
		t.Errorf("description = %q, want %q", f.Description, "isEven(1 + 2)")
	}
	if f.Message != "3 is not even" {
		t.Errorf("message = %q", f.Message)
	}
	if diff := cmp.Diff([]Info{{"n", "3"}}, f.Information); diff != "" {
		t.Errorf("information mismatch (-want +got):\n%s", diff)
	}
	if !strings.HasSuffix(f.Error(), "isEven(1 + 2): 3 is not even") {
		t.Errorf("Error() = %q", f.Error())
	}
}
