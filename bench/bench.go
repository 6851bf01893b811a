// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bench runs a benchmark body under an adaptive sampling loop.
//
// Run executes the body in batches of geometrically growing size until
// a time budget is spent. Each batch is timed as a whole and becomes one
// benchmath.Sample if it took longer than the noise floor. The
// per-iteration cost is then estimated from the retained samples by
// linear regression.
package bench

import (
	"time"

	"golang.org/x/accel/benchmath"
)

// A Benchmark is a unit of code to be measured.
//
// SetUp and TearDown run once per Run, outside of timing. Execute is
// the measured body and runs many times.
type Benchmark interface {
	SetUp()
	TearDown()
	Execute()
}

// Base provides no-op SetUp and TearDown methods. Embed it in a
// Benchmark that needs neither.
type Base struct{}

func (Base) SetUp()    {}
func (Base) TearDown() {}

// Func adapts an ordinary function to a Benchmark with no per-unit
// lifecycle.
type Func func()

func (Func) SetUp()     {}
func (Func) TearDown()  {}
func (f Func) Execute() { f() }

// A Clock is a source of monotonic time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the monotonic clock of the running process.
var SystemClock Clock = systemClock{}

// Config controls the sampling loop.
type Config struct {
	// Limit is the wall-clock budget for sampling. The loop stops
	// starting new batches once it is spent. A zero Limit takes
	// no samples.
	Limit time.Duration

	// Floor is the noise floor. Batches that take Floor or less
	// are discarded.
	Floor time.Duration

	// Ratio is the growth factor of the iteration series.
	Ratio float64

	// Clock is the time source. If nil, SystemClock is used.
	Clock Clock
}

// Defaults used by DefaultConfig.
const (
	DefaultLimit = 5 * time.Second
	DefaultFloor = time.Millisecond
	DefaultRatio = 1.05
)

// DefaultConfig returns the default sampling configuration.
func DefaultConfig() Config {
	return Config{
		Limit: DefaultLimit,
		Floor: DefaultFloor,
		Ratio: DefaultRatio,
		Clock: SystemClock,
	}
}

func (c Config) withDefaults() Config {
	if c.Floor < 0 {
		c.Floor = 0
	}
	if c.Ratio <= 1 {
		c.Ratio = DefaultRatio
	}
	if c.Clock == nil {
		c.Clock = SystemClock
	}
	return c
}

// Run measures b under cfg. It calls b.SetUp, samples b.Execute until
// cfg.Limit has elapsed, calls b.TearDown, and returns the Report of
// the retained samples.
//
// If no batch exceeded the noise floor, the returned Report is
// degenerate.
func Run(b Benchmark, cfg Config) *benchmath.Report {
	cfg = cfg.withDefaults()
	clock := cfg.Clock

	b.SetUp()
	var samples []benchmath.Sample
	series := NewSeries(cfg.Ratio)
	for start := clock.Now(); clock.Now().Sub(start) < cfg.Limit; {
		n := series.Next()
		t0 := clock.Now()
		for i := uint64(0); i < n; i++ {
			b.Execute()
		}
		d := clock.Now().Sub(t0)
		if d > cfg.Floor {
			samples = append(samples, benchmath.NewSample(n, d))
		}
	}
	b.TearDown()

	return benchmath.NewReport(samples)
}
