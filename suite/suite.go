// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package suite runs a single test and aggregates its failures.
package suite

import (
	"fmt"

	"github.com/pkg/errors"

	"golang.org/x/accel/check"
)

// A Test is a unit of verification.
//
// Execute records checks against t. It returns nil when it ran to
// completion, or an error to stop early: either the error returned by
// a terminating check, which is already recorded, or an unexpected
// fault, which Run records as a failure.
type Test interface {
	SetUp()
	TearDown()
	Execute(t *T) error
}

// Base provides no-op SetUp and TearDown methods.
type Base struct{}

func (Base) SetUp()    {}
func (Base) TearDown() {}

// Func adapts an ordinary function to a Test with no per-unit
// lifecycle.
type Func func(t *T) error

func (Func) SetUp()               {}
func (Func) TearDown()            {}
func (f Func) Execute(t *T) error { return f(t) }

// T is the handle a test body records checks against.
type T struct {
	check.Group

	// Location is where the test was registered. Faults that have
	// no better location are reported here.
	Location check.Location
}

// Run runs test: SetUp, Execute, then TearDown. It returns the
// failures recorded by the body.
//
// If Execute returns an error it did not get from a terminating check,
// or if any of the three steps panics, exactly one additional failure
// is recorded at loc with the fault under the "message" key. A panic
// in the body skips the rest of the body but TearDown still runs.
func Run(test Test, loc check.Location) *check.Report {
	t := &T{Location: loc}
	var fault error
	func() {
		defer recoverInto(&fault)
		test.SetUp()
		defer test.TearDown()
		if err := test.Execute(t); err != nil && !t.Recorded(err) {
			fault = err
		}
	}()
	if fault != nil {
		t.Record(Fault(loc, fault))
	}
	return t.Report()
}

// Fault converts an unexpected error into a Failure at loc.
func Fault(loc check.Location, err error) *check.Failure {
	f := &check.Failure{Location: loc, Description: "test body", Message: "unexpected error"}
	cause := errors.Cause(err)
	if _, ok := cause.(*panicError); ok {
		f.Message = "unexpected panic"
	}
	f.AddInformation("message", cause.Error())
	return f
}

type panicError struct {
	value any
}

func (p *panicError) Error() string {
	if err, ok := p.value.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(p.value)
}

// Recover converts a recovered panic value into an error carrying the
// stack of the recovery point. It returns nil if v is nil.
func Recover(v any) error {
	if v == nil {
		return nil
	}
	return errors.WithStack(&panicError{v})
}

func recoverInto(err *error) {
	if e := Recover(recover()); e != nil && *err == nil {
		*err = e
	}
}
