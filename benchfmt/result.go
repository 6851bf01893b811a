// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfmt writes benchmark results in the Go benchmark
// format, so accel runs can be compared with the standard tooling.
//
// This implements the format documented at
// https://golang.org/design/14313-benchmark-format.
package benchfmt

// A Record is a single record in a benchmark file. It is a *Result or a
// *UnitMetadata.
type Record interface {
	isRecord()
}

// A Result is a single benchmark result and all of its measurements.
type Result struct {
	// Config is the file configuration in effect for this result,
	// in the order it should be written.
	Config []Config

	// Name is the benchmark name, without the "Benchmark" prefix.
	Name string

	// Iters is the number of iterations this result's values were
	// measured over.
	Iters int

	// Values is this benchmark's measurements and their units.
	Values []Value
}

func (*Result) isRecord() {}

// A Config is a single key/value file configuration pair.
type Config struct {
	Key   string
	Value string
}

// A Value is a single value/unit measurement from a benchmark result.
type Value struct {
	Value float64
	Unit  string
}

// SetConfig sets configuration key to value, adding it if necessary.
// If value is "", SetConfig deletes key.
func (r *Result) SetConfig(key, value string) {
	for i, cfg := range r.Config {
		if cfg.Key != key {
			continue
		}
		if value == "" {
			r.Config = append(r.Config[:i], r.Config[i+1:]...)
		} else {
			r.Config[i].Value = value
		}
		return
	}
	if value != "" {
		r.Config = append(r.Config, Config{key, value})
	}
}

// GetConfig returns the value of a configuration key, or "" if not
// present.
func (r *Result) GetConfig(key string) string {
	for _, cfg := range r.Config {
		if cfg.Key == key {
			return cfg.Value
		}
	}
	return ""
}
