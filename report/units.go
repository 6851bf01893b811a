// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"math"
	"strconv"
)

type factor struct {
	factor float64
	unit   string
	// Thresholds for 100.0, 10.00, 1.000.
	t100, t10, t1 float64
}

var timeFactors = mkTimeFactors()

func mkTimeFactors() []factor {
	// Thresholds come from parsing the printed representation so
	// that the choice of unit matches how printing rounds.
	var factors []factor
	exp := 9
	for _, u := range []string{"s", "ms", "µs", "ns"} {
		t100, _ := strconv.ParseFloat(fmt.Sprintf("99.995e%d", exp), 64)
		t10, _ := strconv.ParseFloat(fmt.Sprintf("9.9995e%d", exp), 64)
		t1, _ := strconv.ParseFloat(fmt.Sprintf(".99995e%d", exp), 64)
		factors = append(factors, factor{math.Pow(10, float64(exp)), u, t100, t10, t1})
		exp -= 3
	}
	return factors
}

// FormatDuration formats a duration given in nanoseconds with four
// significant digits in the largest of s, ms, µs and ns that keeps
// the value at or above 1.
func FormatDuration(ns float64) string {
	if math.IsNaN(ns) || math.IsInf(ns, 0) {
		return strconv.FormatFloat(ns, 'f', -1, 64)
	}
	v := math.Abs(ns)
	for _, f := range timeFactors {
		prec := -1
		switch {
		case v >= f.t100:
			prec = 1
		case v >= f.t10:
			prec = 2
		case v >= f.t1:
			prec = 3
		}
		if prec >= 0 {
			return strconv.FormatFloat(ns/f.factor, 'f', prec, 64) + " " + f.unit
		}
	}
	// Sub-nanosecond.
	return strconv.FormatFloat(ns, 'f', 3, 64) + " ns"
}

// FormatRSquared formats a coefficient of determination.
func FormatRSquared(r2 float64) string {
	if math.IsNaN(r2) {
		return "NaN"
	}
	return strconv.FormatFloat(r2, 'f', 4, 64)
}
