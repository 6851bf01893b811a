// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

// UnitMetadata is a single piece of unit metadata.
//
// Unit metadata gives information that's useful to interpreting
// values in a given unit. The following metadata keys are predefined:
//
// better={higher,lower} indicates whether higher or lower values of
// this unit are better.
//
// assume={nothing,exact} indicates what statistical assumption to
// make when considering distributions of values.
type UnitMetadata struct {
	Unit  string
	Key   string
	Value string
}

func (*UnitMetadata) isRecord() {}
