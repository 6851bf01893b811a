// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"container/list"
	"fmt"
	"slices"

	"golang.org/x/accel/bench"
	"golang.org/x/accel/check"
	"golang.org/x/accel/registry"
	"golang.org/x/accel/suite"
)

// integers holds 1 through 1024.
var integers = func() []uint64 {
	xs := make([]uint64, 1024)
	for i := range xs {
		xs[i] = uint64(i + 1)
	}
	return xs
}()

func init() {
	registry.RegisterTest(nil, "Accumulate", suite.Func(func(t *suite.T) error {
		var sum uint64
		for _, x := range integers {
			sum += x
		}
		return t.Assert(check.Equal(sum, 524800))
	}))

	for _, n := range []uint64{2, 4, 8} {
		registry.RegisterTest(nil, fmt.Sprintf("Parity/%d", n), parity(n))
	}

	registry.RegisterTest(nil, "Emplace/Map", emplace(newHashMap()))
	registry.RegisterTest(nil, "Emplace/SortedSlice", emplace(new(sortedMap)))

	for _, nth := range []uint64{10, 100, 1000} {
		registry.RegisterTest(nil, fmt.Sprintf("Find/List%d", nth), find(listOf(integers), nth))
		registry.RegisterTest(nil, fmt.Sprintf("Find/Slice%d", nth), find(sliceOf(integers), nth))
	}

	registry.RegisterTest(integersLifecycle, "Fixture/First", new(integersTest))
	registry.RegisterTest(integersLifecycle, "Fixture/Second", new(integersTest))

	registry.RegisterTest(nil, "Custom", suite.Func(custom))
	registry.RegisterTest(nil, "Boolean", suite.Func(boolean))
	registry.RegisterTest(nil, "Comparison", suite.Func(comparison))
	registry.RegisterTest(nil, "FloatComparison", suite.Func(floatComparison))
	registry.RegisterTest(nil, "Panic", suite.Func(panics))
	registry.RegisterTest(nil, "Unexpected", suite.Func(func(t *suite.T) error {
		var m map[string]int
		m["boom"]++
		return nil
	}))
}

func parity(n uint64) suite.Test {
	return suite.Func(func(t *suite.T) error {
		if err := t.Assert(check.Equal(n%2, 0)); err != nil {
			return err
		}
		return t.Assert(check.NotEqual(n%2, 1))
	})
}

// A table maps keys to values.
type table interface {
	Put(k, v uint64)
	Get(k uint64) (uint64, bool)
}

type hashMap map[uint64]uint64

func newHashMap() hashMap { return make(hashMap) }

func (m hashMap) Put(k, v uint64) { m[k] = v }

func (m hashMap) Get(k uint64) (uint64, bool) {
	v, ok := m[k]
	return v, ok
}

// sortedMap keeps its entries sorted by key.
type sortedMap struct {
	keys, vals []uint64
}

func (m *sortedMap) Put(k, v uint64) {
	i, ok := slices.BinarySearch(m.keys, k)
	if ok {
		m.vals[i] = v
		return
	}
	m.keys = slices.Insert(m.keys, i, k)
	m.vals = slices.Insert(m.vals, i, v)
}

func (m *sortedMap) Get(k uint64) (uint64, bool) {
	if i, ok := slices.BinarySearch(m.keys, k); ok {
		return m.vals[i], true
	}
	return 0, false
}

func emplace(tab table) suite.Test {
	return suite.Func(func(t *suite.T) error {
		for _, x := range integers {
			tab.Put(x, x)
		}
		for _, x := range integers {
			v, ok := tab.Get(x)
			if err := t.Assert(check.True(ok)); err != nil {
				return err
			}
			if err := t.Assert(check.Equal(v, x)); err != nil {
				return err
			}
		}
		return nil
	})
}

// A sequence is searched front to back.
type sequence interface {
	Contains(x uint64) bool
}

type listSeq struct{ l *list.List }

func listOf(xs []uint64) listSeq {
	l := list.New()
	for _, x := range xs {
		l.PushBack(x)
	}
	return listSeq{l}
}

func (s listSeq) Contains(x uint64) bool {
	for e := s.l.Front(); e != nil; e = e.Next() {
		if e.Value.(uint64) == x {
			return true
		}
	}
	return false
}

type sliceSeq []uint64

func sliceOf(xs []uint64) sliceSeq { return slices.Clone(xs) }

func (s sliceSeq) Contains(x uint64) bool { return slices.Contains(s, x) }

func find(seq sequence, nth uint64) suite.Test {
	return suite.Func(func(t *suite.T) error {
		return t.Assert(check.True(seq.Contains(nth)))
	})
}

// shared is populated by integersLifecycle for the tests in its group.
var shared []uint64

var integersLifecycle = registry.NewLifecycle("integers",
	func() { shared = []uint64{1, 2, 3} },
	func() { shared = nil },
)

// integersTest has per-test state set up around its body.
type integersTest struct {
	own []uint64
}

func (x *integersTest) SetUp()    { x.own = []uint64{4, 5, 6} }
func (x *integersTest) TearDown() { x.own = nil }

func (x *integersTest) Execute(t *suite.T) error {
	t.Expect(check.Equal(len(shared), 3))
	t.Expect(check.Equal(len(x.own), 3))
	bench.Retain(shared)
	bench.Retain(x.own)
	return nil
}

func isEven(n uint64) *check.Failure {
	if n%2 == 0 {
		return nil
	}
	a := check.Here("isEven")
	f := a.Fail().Messagef("%d is not even", n)
	a.Operand(f, "n", 0, n)
	return f
}

func isEqualWithin[T int | uint64 | float64](left, right, delta T) *check.Failure {
	diff := max(left, right) - min(left, right)
	if diff <= delta {
		return nil
	}
	a := check.Here("isEqualWithin")
	f := a.Fail()
	a.Operand(f, "left", 0, left)
	a.Operand(f, "right", 1, right)
	f.AddInformation("difference", fmt.Sprint(diff))
	return f
}

func isReallyEven(n uint64) check.GroupFunc {
	return func(g *check.Group) error {
		g.Expect(isEven(n))
		g.Expect(isEven(n))
		return nil
	}
}

func isReallyEqualWithin[T int | uint64 | float64](left, right, delta T) check.GroupFunc {
	return func(g *check.Group) error {
		g.Expect(isEqualWithin(left, right, delta))
		g.Expect(isEqualWithin(left, right, delta))
		return nil
	}
}

func custom(t *suite.T) error {
	t.Expect(isEven(2))
	t.Expect(isEven(3))

	t.Expect(isEqualWithin(5+5, 15, 5))
	t.Expect(isEqualWithin(5+5, 20, 5))

	t.ExpectGroup(isReallyEven(2))
	t.ExpectGroup(isReallyEven(3))

	t.ExpectGroup(isReallyEqualWithin(5+5, 15, 5))
	t.ExpectGroup(isReallyEqualWithin(5+5, 20, 5))
	return nil
}

func boolean(t *suite.T) error {
	t.Expect(check.True(2+2 == 4))
	t.Expect(check.True(2+2 == 5))

	t.Expect(check.False(2+2 == 4))
	t.Expect(check.False(2+2 == 5))
	return nil
}

func comparison(t *suite.T) error {
	t.Expect(check.Equal(2+2, 4))
	t.Expect(check.Equal(2+2, 5))

	t.Expect(check.NotEqual(2+2, 4))
	t.Expect(check.NotEqual(2+2, 5))

	t.Expect(check.Greater(2+2, 3))
	t.Expect(check.Greater(2+2, 4))

	t.Expect(check.Less(2+2, 5))
	t.Expect(check.Less(2+2, 4))

	t.Expect(check.GreaterEqual(2+2, 3))
	t.Expect(check.GreaterEqual(2+2, 4))
	t.Expect(check.GreaterEqual(2+2, 5))

	t.Expect(check.LessEqual(2+2, 5))
	t.Expect(check.LessEqual(2+2, 4))
	t.Expect(check.LessEqual(2+2, 3))
	return nil
}

func floatComparison(t *suite.T) error {
	t.Expect(check.FloatEqual[float32](3.14159, 3.141589, 10))
	t.Expect(check.FloatEqual[float32](3.14159, 3.141581, 10))

	t.Expect(check.FloatNotEqual[float32](3.14159, 3.141589, 10))
	t.Expect(check.FloatNotEqual[float32](3.14159, 3.141581, 10))
	return nil
}

func panics(t *suite.T) error {
	t.Expect(check.Panics(func() { panic("oh no") }))
	t.Expect(check.Panics(func() {}))

	t.Expect(check.NotPanics(func() { panic("oh no") }))
	t.Expect(check.NotPanics(func() { panic(42) }))
	t.Expect(check.NotPanics(func() {}))
	return nil
}
