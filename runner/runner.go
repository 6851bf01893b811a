// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runner executes registered benchmarks and tests.
//
// A run selects the units whose names match a filter, keeps them in
// registration order, and runs them one at a time on the calling
// goroutine. Units that share a registry.Lifecycle are bracketed by a
// single shared setup, run before the first of them, and a single
// shared teardown, run after the last. Progress is reported to a
// Reporter as an ordered stream of events.
package runner

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"

	"golang.org/x/accel/bench"
	"golang.org/x/accel/benchmath"
	"golang.org/x/accel/check"
	"golang.org/x/accel/registry"
	"golang.org/x/accel/suite"
)

// Kind is the kind of units in a run.
type Kind int

// Kinds of run.
const (
	BenchmarkKind Kind = iota
	TestKind
)

func (k Kind) String() string {
	switch k {
	case BenchmarkKind:
		return "benchmark"
	case TestKind:
		return "test"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Reporter receives the events of a run, in order.
//
// RunStarted is called once with the number of units that passed the
// filter. Each unit then produces UnitStarted followed by
// BenchmarkFinished or TestFinished. RunFinished is called last.
type Reporter interface {
	RunStarted(kind Kind, count int)
	UnitStarted(name string)
	BenchmarkFinished(name string, r *benchmath.Report)
	TestFinished(name string, r *check.Report)
	RunFinished()
}

// Options configures a run.
type Options struct {
	// Filter selects units by name. A nil Filter selects every
	// unit. Use CompileFilter to build a whole-name filter.
	Filter *regexp.Regexp

	// Bench configures the sampling loop of each benchmark.
	Bench bench.Config

	// Reporter receives the run's events. If nil, events are
	// discarded.
	Reporter Reporter

	// Logger receives lifecycle diagnostics. If nil, they are
	// discarded.
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Reporter == nil {
		o.Reporter = nopReporter{}
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// CompileFilter compiles pattern into a filter that matches a unit
// only if pattern matches its whole name. An empty pattern matches
// every name.
func CompileFilter(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		pattern = ".*"
	}
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", pattern, err)
	}
	return re, nil
}

// Select returns the units whose names match filter, in their original
// order.
func Select[T any](units []registry.Unit[T], filter *regexp.Regexp) []registry.Unit[T] {
	if filter == nil {
		return units
	}
	var out []registry.Unit[T]
	for _, u := range units {
		if filter.MatchString(u.Name) {
			out = append(out, u)
		}
	}
	return out
}

// Benchmarks runs the benchmarks in units that pass opts.Filter and
// returns the process exit code, which is always 0.
//
// A benchmark that panics is logged and reported with a degenerate
// Report. Its per-unit TearDown does not run.
func Benchmarks(units []registry.Unit[bench.Benchmark], opts Options) int {
	opts = opts.withDefaults()
	run(units, opts, BenchmarkKind, func(u registry.Unit[bench.Benchmark]) bool {
		r, err := runBenchmark(u.Instance, opts.Bench)
		if err != nil {
			logPanic(opts.Logger, "benchmark panicked", err, "benchmark", u.Name)
			r = benchmath.NewReport(nil)
		}
		opts.Reporter.BenchmarkFinished(u.Name, r)
		return true
	})
	return 0
}

func runBenchmark(b bench.Benchmark, cfg bench.Config) (r *benchmath.Report, err error) {
	defer func() {
		if e := suite.Recover(recover()); e != nil {
			err = e
		}
	}()
	return bench.Run(b, cfg), nil
}

// Tests runs the tests in units that pass opts.Filter. It returns 1 if
// any test recorded a failure or a shared lifecycle function panicked,
// and 0 otherwise.
func Tests(units []registry.Unit[suite.Test], opts Options) int {
	opts = opts.withDefaults()
	ok := run(units, opts, TestKind, func(u registry.Unit[suite.Test]) bool {
		r := suite.Run(u.Instance, u.Location)
		opts.Reporter.TestFinished(u.Name, r)
		return r.Passed()
	})
	if !ok {
		return 1
	}
	return 0
}

type group struct {
	total, processed int
}

// run drives the units selected from units through exec, bracketing
// each lifecycle group with its shared setup and teardown. It reports
// whether every exec and every lifecycle function succeeded.
func run[T any](units []registry.Unit[T], opts Options, kind Kind, exec func(registry.Unit[T]) bool) bool {
	selected := append([]registry.Unit[T](nil), Select(units, opts.Filter)...)

	groups := make(map[*registry.Lifecycle]*group)
	for i := range selected {
		if selected[i].Lifecycle == nil {
			selected[i].Lifecycle = registry.DefaultLifecycle
		}
		g := groups[selected[i].Lifecycle]
		if g == nil {
			g = new(group)
			groups[selected[i].Lifecycle] = g
		}
		g.total++
	}

	ok := true
	opts.Reporter.RunStarted(kind, len(selected))
	for _, u := range selected {
		g := groups[u.Lifecycle]
		if g.processed == 0 {
			ok = lifecycle(opts.Logger, u.Lifecycle, "setup", u.Lifecycle.SetUp) && ok
		}
		opts.Reporter.UnitStarted(u.Name)
		ok = exec(u) && ok
		g.processed++
		if g.processed == g.total {
			ok = lifecycle(opts.Logger, u.Lifecycle, "teardown", u.Lifecycle.TearDown) && ok
		}
	}
	opts.Reporter.RunFinished()
	return ok
}

func lifecycle(log *slog.Logger, lc *registry.Lifecycle, phase string, fn func()) (ok bool) {
	log.Debug("shared "+phase, "lifecycle", lc.Name)
	defer func() {
		if err := suite.Recover(recover()); err != nil {
			logPanic(log, "shared "+phase+" panicked", err, "lifecycle", lc.Name)
			ok = false
		}
	}()
	fn()
	return true
}

// logPanic logs a recovered panic at Error, and the stack at which it
// was recovered at Debug.
func logPanic(log *slog.Logger, msg string, err error, args ...any) {
	log = log.With(args...)
	log.Error(msg, "err", err)
	log.Debug(msg, "stack", fmt.Sprintf("%+v", err))
}

type nopReporter struct{}

func (nopReporter) RunStarted(Kind, int)                        {}
func (nopReporter) UnitStarted(string)                          {}
func (nopReporter) BenchmarkFinished(string, *benchmath.Report) {}
func (nopReporter) TestFinished(string, *check.Report)          {}
func (nopReporter) RunFinished()                                {}
