// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package check

import "errors"

// A Group collects the failures of the checks run against it.
//
// The zero Group is empty and ready to use.
type Group struct {
	failures []*Failure
}

// A GroupFunc runs a set of checks against g. It may return early with
// the error from a terminating check; any other error it returns is
// recorded as a failure at the group's call site.
type GroupFunc func(g *Group) error

// Expect records f if it is non-nil and reports whether the check
// passed. The caller continues regardless.
func (g *Group) Expect(f *Failure) bool {
	if f == nil {
		return true
	}
	g.failures = append(g.failures, f)
	return false
}

// Assert records f if it is non-nil and returns it as an error. The
// caller is expected to return the error to stop its body.
func (g *Group) Assert(f *Failure) error {
	if f == nil {
		return nil
	}
	g.failures = append(g.failures, f)
	return f
}

// ExpectGroup runs fn and records its failures, each with the call
// site of ExpectGroup prepended to its Stack. It reports whether fn
// recorded no failures.
func (g *Group) ExpectGroup(fn GroupFunc) bool {
	return g.runGroup(fn, callerLocation(1)) == nil
}

// AssertGroup is like ExpectGroup but returns the group's first
// failure as an error.
func (g *Group) AssertGroup(fn GroupFunc) error {
	if f := g.runGroup(fn, callerLocation(1)); f != nil {
		return f
	}
	return nil
}

// runGroup runs fn against a fresh Group and merges its failures into
// g. The merge is deferred so failures recorded before a panic in fn
// are kept; the panic itself continues to the caller.
func (g *Group) runGroup(fn GroupFunc, site Location) (first *Failure) {
	sub := new(Group)
	defer func() {
		for _, f := range sub.failures {
			f.Stack = append([]Location{site}, f.Stack...)
		}
		g.failures = append(g.failures, sub.failures...)
		if len(sub.failures) > 0 {
			first = sub.failures[0]
		}
	}()
	if err := fn(sub); err != nil && !sub.Recorded(err) {
		f := &Failure{Location: site, Description: "check group", Message: "unexpected error"}
		f.AddInformation("message", err.Error())
		sub.failures = append(sub.failures, f)
	}
	return nil
}

// Recorded reports whether err is a Failure that g recorded.
func (g *Group) Recorded(err error) bool {
	var f *Failure
	if !errors.As(err, &f) {
		return false
	}
	for _, have := range g.failures {
		if have == f {
			return true
		}
	}
	return false
}

// Failed reports whether any failure has been recorded.
func (g *Group) Failed() bool {
	return len(g.failures) > 0
}

// Failures returns the recorded failures in order.
func (g *Group) Failures() []*Failure {
	return g.failures
}

// Record appends f to g's failures unconditionally.
func (g *Group) Record(f *Failure) {
	g.failures = append(g.failures, f)
}

// Report returns a Report holding a copy of g's failures.
func (g *Group) Report() *Report {
	return &Report{Failures: append([]*Failure(nil), g.failures...)}
}
