// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

// A Series generates batch sizes that grow geometrically from 1.
//
// Each value is the integer part of the next term of the geometric
// sequence, skipping terms whose integer part has already been
// produced, so the series is strictly increasing.
type Series struct {
	ratio float64
	x     float64
	last  uint64
}

// NewSeries returns a Series with the given growth ratio, which must
// be greater than 1.
func NewSeries(ratio float64) *Series {
	if ratio <= 1 {
		panic("bench: series ratio must be greater than 1")
	}
	return &Series{ratio: ratio, x: 1}
}

// Next returns the next batch size.
func (s *Series) Next() uint64 {
	for {
		n := uint64(s.x)
		s.x *= s.ratio
		if n != s.last {
			s.last = n
			return n
		}
	}
}

var sink any

// Retain keeps v reachable so the compiler cannot discard the
// computation that produced it. Call it from a benchmark body on the
// result of the code being measured.
func Retain[T any](v T) {
	sink = v
}
