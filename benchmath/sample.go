// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmath turns timed benchmark observations into per-iteration
// cost estimates.
//
// The primary estimate is the slope of an ordinary least squares fit of
// sample duration against iteration count. Fixed per-sample overhead
// lands in the intercept, so the slope isolates the marginal cost of one
// iteration. The mean and standard deviation of per-iteration averages
// are reported alongside it.
//
// All accumulation uses compensated (Kahan) summation. Benchmark runs
// produce hundreds to thousands of samples, and naive summation of that
// many small values drifts visibly.
//
// All times are float64 nanoseconds.
package benchmath

import "time"

// A Sample is one observation: the body ran Iters times back to back in
// Duration.
type Sample struct {
	Iters    uint64
	Duration time.Duration

	// Average is Duration / Iters in nanoseconds.
	Average float64
}

// NewSample constructs a Sample and computes its Average.
func NewSample(iters uint64, d time.Duration) Sample {
	return Sample{
		Iters:    iters,
		Duration: d,
		Average:  float64(d.Nanoseconds()) / float64(iters),
	}
}

// A KahanSum accumulates float64 values with compensated summation.
//
// The zero KahanSum is an empty sum.
type KahanSum struct {
	sum, c float64
}

// Add adds x to the sum.
func (k *KahanSum) Add(x float64) {
	y := x - k.c
	t := k.sum + y
	k.c = (t - k.sum) - y
	k.sum = t
}

// Sum returns the current sum.
func (k *KahanSum) Sum() float64 {
	return k.sum
}
