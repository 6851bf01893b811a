// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import "math"

// A Regression is a linear fit of sample duration against iteration
// count: Duration ≈ Intercept + Slope*Iters.
type Regression struct {
	// Intercept estimates fixed per-sample overhead, in ns.
	Intercept float64
	// Slope estimates the cost of one iteration, in ns.
	Slope float64
	// RSquared is the coefficient of determination of the fit.
	RSquared float64
}

// A Report summarizes the samples of one benchmark run.
type Report struct {
	// Samples are the retained observations in the order they
	// were taken.
	Samples []Sample

	// Mean and StdDev are the mean and population standard
	// deviation of the per-iteration averages of Samples, in ns.
	Mean, StdDev float64

	// Regression is the OLS fit across Samples. Regression.Slope
	// is the reported time per operation.
	Regression Regression

	// Summary describes the distribution of per-iteration
	// averages.
	Summary Summary
}

// NewReport computes a Report from samples. The Report retains
// samples.
//
// If samples is empty, all statistics are NaN and Degenerate reports
// true.
func NewReport(samples []Sample) *Report {
	r := &Report{Samples: samples}
	r.Mean = Mean(samples)
	r.StdDev = StdDev(samples, r.Mean)
	r.Regression = Fit(samples)
	r.Summary = Summarize(samples, DefaultConfidence)
	return r
}

// Degenerate reports whether r was built from no samples, in which
// case its statistics are NaN.
func (r *Report) Degenerate() bool {
	return len(r.Samples) == 0
}

// Mean returns the compensated mean of the per-iteration averages of
// samples, or NaN if samples is empty.
func Mean(samples []Sample) float64 {
	if len(samples) == 0 {
		return math.NaN()
	}
	var sum KahanSum
	for _, s := range samples {
		sum.Add(s.Average)
	}
	return sum.Sum() / float64(len(samples))
}

// StdDev returns the population standard deviation of the
// per-iteration averages of samples around mean.
func StdDev(samples []Sample, mean float64) float64 {
	if len(samples) == 0 {
		return math.NaN()
	}
	var sum KahanSum
	for _, s := range samples {
		d := s.Average - mean
		sum.Add(d * d)
	}
	return math.Sqrt(sum.Sum() / float64(len(samples)))
}

// Fit computes the ordinary least squares fit of duration against
// iterations across samples.
//
// The fit is undefined, and every field NaN, if there are fewer than
// two samples or all samples have the same iteration count. RSquared
// alone is NaN if every sample has the same duration.
func Fit(samples []Sample) Regression {
	nan := Regression{math.NaN(), math.NaN(), math.NaN()}
	if len(samples) < 2 {
		return nan
	}

	n := float64(len(samples))
	var xsum, ysum KahanSum
	for _, s := range samples {
		xsum.Add(float64(s.Iters))
		ysum.Add(float64(s.Duration))
	}
	xbar, ybar := xsum.Sum()/n, ysum.Sum()/n

	var num, den KahanSum
	for _, s := range samples {
		dx := float64(s.Iters) - xbar
		num.Add(dx * (float64(s.Duration) - ybar))
		den.Add(dx * dx)
	}
	if den.Sum() == 0 {
		return nan
	}
	slope := num.Sum() / den.Sum()
	intercept := ybar - slope*xbar

	var ssr, sst KahanSum
	for _, s := range samples {
		y := float64(s.Duration)
		e := y - (intercept + slope*float64(s.Iters))
		ssr.Add(e * e)
		d := y - ybar
		sst.Add(d * d)
	}
	r2 := math.NaN()
	if sst.Sum() != 0 {
		r2 = 1 - ssr.Sum()/sst.Sum()
	}
	return Regression{Intercept: intercept, Slope: slope, RSquared: r2}
}
