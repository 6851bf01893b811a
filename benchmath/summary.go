// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/mathx"
	"github.com/aclements/go-moremath/stats"
)

// DefaultConfidence is the confidence level NewReport uses for
// Summary.
const DefaultConfidence = 0.95

// MinRSquared is the coefficient of determination below which a
// Summary warns that the linear fit is poor.
const MinRSquared = 0.9

// ErrNoSamples is the warning attached to the Summary of a run that
// retained no samples.
var ErrNoSamples = errors.New("no samples above the noise floor")

// A Summary describes the distribution of per-iteration averages.
type Summary struct {
	// Center is the mean of the averages.
	Center float64

	// Lo and Hi bound the confidence interval around Center.
	Lo, Hi float64

	// Confidence is the confidence level of [Lo, Hi], in [0, 1].
	Confidence float64

	// Min, Median and Max are order statistics of the averages.
	Min, Median, Max float64

	// Warnings lists caveats about the run that should be shown to
	// the user with its results.
	Warnings []error
}

// Summarize computes the Summary of samples at the given confidence
// level.
func Summarize(samples []Sample, confidence float64) Summary {
	if len(samples) == 0 {
		nan := math.NaN()
		return Summary{
			Center: nan, Lo: nan, Hi: nan, Confidence: confidence,
			Min: nan, Median: nan, Max: nan,
			Warnings: []error{ErrNoSamples},
		}
	}

	xs := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = s.Average
	}
	sample := stats.Sample{Xs: xs}
	sample.Sort()

	// MeanCI's interval is symmetric about its uncompensated mean;
	// keep the width but center it on the compensated one.
	s := Summary{Confidence: confidence, Center: Mean(samples)}
	m, _, hi := stats.MeanCI(xs, confidence)
	w := hi - m
	s.Lo, s.Hi = s.Center-w, s.Center+w
	s.Min, s.Max = sample.Bounds()
	s.Median = sample.Quantile(0.5)

	if len(samples) < 2 {
		s.Warnings = append(s.Warnings, fmt.Errorf("need at least 2 samples for a confidence interval, have %d", len(samples)))
	}
	if fit := Fit(samples); !math.IsNaN(fit.RSquared) && fit.RSquared < MinRSquared {
		s.Warnings = append(s.Warnings, fmt.Errorf("poor linear fit: R² = %.4f", fit.RSquared))
	}
	return s
}

// PctRangeString returns the half-width of s's confidence interval as
// a percentage of its center.
func (s Summary) PctRangeString() string {
	if math.IsNaN(s.Center) || math.IsInf(s.Lo, 0) || math.IsInf(s.Hi, 0) {
		return "∞"
	}

	// If the signs of the bounds differ from the center, we can't
	// render it as a percent.
	var csign = mathx.Sign(s.Center)
	if csign != mathx.Sign(s.Lo) || csign != mathx.Sign(s.Hi) {
		return "?"
	}

	if s.Center == 0 {
		return "0%"
	}

	v := math.Max(s.Hi/s.Center-1, 1-s.Lo/s.Center)
	return fmt.Sprintf("%.0f%%", 100*v)
}
