// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"container/list"
	"fmt"
	"slices"

	"golang.org/x/accel/bench"
	"golang.org/x/accel/registry"
)

var integers = func() []uint64 {
	xs := make([]uint64, 1024)
	for i := range xs {
		xs[i] = uint64(i + 1)
	}
	return xs
}()

func init() {
	registry.RegisterBenchmark(nil, "Accumulate", bench.Func(func() {
		var sum uint64
		for _, x := range integers {
			sum += x
		}
		bench.Retain(sum)
	}))
	registry.RegisterBenchmark(nil, "Loop", bench.Func(func() {
		var sum uint64
		for i := 0; i < len(integers); i++ {
			sum += integers[i]
		}
		bench.Retain(sum)
	}))

	for _, n := range []int{16, 32, 64} {
		registry.RegisterBenchmark(nil, fmt.Sprintf("Fibonacci/%d", n), fibonacci(n))
	}

	registry.RegisterBenchmark(nil, "Emplace/Map", bench.Func(func() {
		m := make(map[uint64]uint64)
		for _, x := range integers {
			m[x] = x
		}
		bench.Retain(m)
	}))
	registry.RegisterBenchmark(nil, "Emplace/SortedSlice", bench.Func(func() {
		var keys, vals []uint64
		for _, x := range integers {
			i, _ := slices.BinarySearch(keys, x)
			keys = slices.Insert(keys, i, x)
			vals = slices.Insert(vals, i, x)
		}
		bench.Retain(keys)
		bench.Retain(vals)
	}))

	l := list.New()
	for _, x := range integers {
		l.PushBack(x)
	}
	for _, nth := range []uint64{10, 100, 1000} {
		registry.RegisterBenchmark(nil, fmt.Sprintf("Find/List%d", nth), bench.Func(func() {
			for e := l.Front(); e != nil; e = e.Next() {
				if e.Value.(uint64) == nth {
					bench.Retain(e)
					return
				}
			}
		}))
		registry.RegisterBenchmark(nil, fmt.Sprintf("Find/Slice%d", nth), bench.Func(func() {
			bench.Retain(slices.Index(integers, nth))
		}))
	}

	registry.RegisterBenchmark(integersLifecycle, "Fixture", new(integersBenchmark))

	// A panicking body is reported with no samples.
	registry.RegisterBenchmark(nil, "Panics", bench.Func(func() {
		panic("benchmark body failed")
	}))
}

func fibonacci(n int) bench.Benchmark {
	return bench.Func(func() {
		var a, b uint64 = 0, 1
		for i := 0; i < n; i++ {
			a, b = b, a+b
			bench.Retain(a)
			bench.Retain(b)
		}
	})
}

var shared []uint64

var integersLifecycle = registry.NewLifecycle("integers",
	func() { shared = []uint64{1, 2, 3} },
	func() { shared = nil },
)

type integersBenchmark struct {
	own []uint64
}

func (x *integersBenchmark) SetUp()    { x.own = []uint64{4, 5, 6} }
func (x *integersBenchmark) TearDown() { x.own = nil }

func (x *integersBenchmark) Execute() {
	bench.Retain(shared)
	bench.Retain(x.own)
}
