// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package check

import (
	"math"
	"strconv"
	"unsafe"
)

// Float is the set of floating-point types FloatEqual accepts.
type Float interface {
	~float32 | ~float64
}

// ULPDistance returns the distance between a and b in units in the
// last place: the absolute difference of their bit patterns read as
// unsigned integers of the same width.
//
// Values of opposite sign are far apart even when both are near zero;
// +0 and -0 are 1<<63 (or 1<<31) apart.
func ULPDistance[F Float](a, b F) uint64 {
	var x, y uint64
	if unsafe.Sizeof(a) == 4 {
		x, y = uint64(math.Float32bits(float32(a))), uint64(math.Float32bits(float32(b)))
	} else {
		x, y = math.Float64bits(float64(a)), math.Float64bits(float64(b))
	}
	if x > y {
		return x - y
	}
	return y - x
}

func floatCompare[F Float](name string, left, right F, ulp uint64, equal bool) *Failure {
	d := ULPDistance(left, right)
	if (d <= ulp) == equal {
		return nil
	}
	a := capture(name, 2)
	f := a.Fail()
	a.Operand(f, "left", 0, left)
	a.Operand(f, "right", 1, right)
	f.AddInformation("difference", strconv.FormatUint(d, 10))
	return f
}

// FloatEqual checks that left and right are at most ulp units in the
// last place apart.
func FloatEqual[F Float](left, right F, ulp uint64) *Failure {
	return floatCompare("FloatEqual", left, right, ulp, true)
}

// FloatNotEqual checks that left and right are more than ulp units in
// the last place apart.
func FloatNotEqual[F Float](left, right F, ulp uint64) *Failure {
	return floatCompare("FloatNotEqual", left, right, ulp, false)
}
