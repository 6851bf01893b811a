// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package registry collects benchmarks and tests for the runner.
//
// Units are registered explicitly, typically from init functions or
// from main, before a run starts. Each unit belongs to a Lifecycle.
// Units that share a Lifecycle share one setup and one teardown per
// run, bracketing all of them.
//
//	var db = registry.NewLifecycle("db", openDB, closeDB)
//
//	func init() {
//		registry.RegisterTest(db, "Insert", suite.Func(testInsert))
//		registry.RegisterTest(db, "Query", suite.Func(testQuery))
//	}
package registry

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/accel/bench"
	"golang.org/x/accel/check"
	"golang.org/x/accel/suite"
)

// A Lifecycle is a shared setup and teardown pair. Lifecycles are
// compared by identity: two Lifecycles built from the same functions
// are distinct groups.
type Lifecycle struct {
	Name string

	setUp, tearDown func()
}

// NewLifecycle returns a new Lifecycle. Either function may be nil.
func NewLifecycle(name string, setUp, tearDown func()) *Lifecycle {
	return &Lifecycle{Name: name, setUp: setUp, tearDown: tearDown}
}

// DefaultLifecycle is the Lifecycle of units registered without one.
// It does nothing.
var DefaultLifecycle = NewLifecycle("default", nil, nil)

// SetUp runs l's setup function, if any.
func (l *Lifecycle) SetUp() {
	if l.setUp != nil {
		l.setUp()
	}
}

// TearDown runs l's teardown function, if any.
func (l *Lifecycle) TearDown() {
	if l.tearDown != nil {
		l.tearDown()
	}
}

func (l *Lifecycle) String() string {
	return l.Name
}

// A Unit is one registered benchmark or test.
type Unit[T any] struct {
	Lifecycle *Lifecycle
	Name      string
	Instance  T

	// Location is where the unit was registered.
	Location check.Location
}

// ErrSealed is returned when registering with a Registry whose run has
// started.
var ErrSealed = errors.New("registry is sealed")

// A Registry holds units in registration order. It is safe for
// concurrent registration.
type Registry struct {
	mu         sync.Mutex
	sealed     bool
	benchmarks []Unit[bench.Benchmark]
	tests      []Unit[suite.Test]
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{}
}

func (r *Registry) validate(lc **Lifecycle, name string, instance any) error {
	if r.sealed {
		return ErrSealed
	}
	if name == "" {
		return fmt.Errorf("unit has no name")
	}
	if instance == nil {
		return fmt.Errorf("unit %q is nil", name)
	}
	if *lc == nil {
		*lc = DefaultLifecycle
	}
	return nil
}

// AddBenchmark registers b under name. A nil lc means
// DefaultLifecycle.
func (r *Registry) AddBenchmark(lc *Lifecycle, name string, b bench.Benchmark, loc check.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.validate(&lc, name, b); err != nil {
		return fmt.Errorf("registering benchmark %q: %w", name, err)
	}
	r.benchmarks = append(r.benchmarks, Unit[bench.Benchmark]{lc, name, b, loc})
	return nil
}

// AddTest registers t under name. A nil lc means DefaultLifecycle.
func (r *Registry) AddTest(lc *Lifecycle, name string, t suite.Test, loc check.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.validate(&lc, name, t); err != nil {
		return fmt.Errorf("registering test %q: %w", name, err)
	}
	r.tests = append(r.tests, Unit[suite.Test]{lc, name, t, loc})
	return nil
}

// Seal stops r from accepting further registrations.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

// Benchmarks returns the registered benchmarks in registration order.
func (r *Registry) Benchmarks() []Unit[bench.Benchmark] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Unit[bench.Benchmark](nil), r.benchmarks...)
}

// Tests returns the registered tests in registration order.
func (r *Registry) Tests() []Unit[suite.Test] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Unit[suite.Test](nil), r.tests...)
}

var (
	defaultMu sync.Mutex
	std       *Registry
)

// Init replaces the default registry with an empty one.
func Init() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	std = New()
}

// Default returns the default registry, creating it if needed.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if std == nil {
		std = New()
	}
	return std
}

// Shutdown discards the default registry and everything registered
// with it.
func Shutdown() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	std = nil
}

// RegisterBenchmark registers b with the default registry, recording
// the caller as its location. It panics if the registration is
// invalid.
func RegisterBenchmark(lc *Lifecycle, name string, b bench.Benchmark) {
	if err := Default().AddBenchmark(lc, name, b, check.Caller(1)); err != nil {
		panic(err)
	}
}

// RegisterTest registers t with the default registry, recording the
// caller as its location. It panics if the registration is invalid.
func RegisterTest(lc *Lifecycle, name string, t suite.Test) {
	if err := Default().AddTest(lc, name, t, check.Caller(1)); err != nil {
		panic(err)
	}
}
