// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"errors"

	"golang.org/x/accel/benchmath"
	"golang.org/x/accel/check"
	"golang.org/x/accel/runner"
)

// Multi forwards every event to each of its reporters in order.
type Multi []runner.Reporter

func (m Multi) RunStarted(kind runner.Kind, count int) {
	for _, r := range m {
		r.RunStarted(kind, count)
	}
}

func (m Multi) UnitStarted(name string) {
	for _, r := range m {
		r.UnitStarted(name)
	}
}

func (m Multi) BenchmarkFinished(name string, rep *benchmath.Report) {
	for _, r := range m {
		r.BenchmarkFinished(name, rep)
	}
}

func (m Multi) TestFinished(name string, rep *check.Report) {
	for _, r := range m {
		r.TestFinished(name, rep)
	}
}

func (m Multi) RunFinished() {
	for _, r := range m {
		r.RunFinished()
	}
}

// Err joins the errors of the reporters in m that record one.
func (m Multi) Err() error {
	var errs []error
	for _, r := range m {
		if e, ok := r.(interface{ Err() error }); ok {
			errs = append(errs, e.Err())
		}
	}
	return errors.Join(errs...)
}
