// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package check

import (
	"fmt"
	"strings"
)

// A Location identifies a source call site.
type Location struct {
	File string
	Line int
}

// String returns "file:line".
func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// An Info is a diagnostic key/value pair attached to a Failure.
type Info struct {
	Key, Value string
}

// A Failure records one check that did not pass.
//
// A Failure is owned by the Group or test run that recorded it. It is
// mutated only to append Information and to prepend Stack frames as it
// propagates out of check groups.
type Failure struct {
	// Location is the call site of the failing check.
	Location Location

	// Description is the source rendering of the check, such as
	// "check.Equal(2+2, 5)".
	Description string

	// Message is an optional free-form explanation.
	Message string

	// Stack lists the call sites of the enclosing check groups,
	// outermost first.
	Stack []Location

	// Information holds diagnostic key/value pairs in the order
	// they were added.
	Information []Info
}

// AddInformation appends a key/value pair to f and returns f.
func (f *Failure) AddInformation(key, value string) *Failure {
	f.Information = append(f.Information, Info{key, value})
	return f
}

// Messagef sets f's message and returns f.
func (f *Failure) Messagef(format string, args ...any) *Failure {
	f.Message = fmt.Sprintf(format, args...)
	return f
}

// Lookup returns the value of the first information pair with the
// given key.
func (f *Failure) Lookup(key string) (string, bool) {
	for _, info := range f.Information {
		if info.Key == key {
			return info.Value, true
		}
	}
	return "", false
}

// Error implements error so that a terminating check can hand its
// failure back to the test body as an error value.
func (f *Failure) Error() string {
	var b strings.Builder
	b.WriteString(f.Location.String())
	b.WriteString(": ")
	b.WriteString(f.Description)
	if f.Message != "" {
		b.WriteString(": ")
		b.WriteString(f.Message)
	}
	return b.String()
}

// A Report is the outcome of one test: every failure recorded while
// its body ran, in order.
type Report struct {
	Failures []*Failure
}

// Passed reports whether the test recorded no failures.
func (r *Report) Passed() bool {
	return len(r.Failures) == 0
}
