// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"strings"
	"testing"
)

func TestWriter(t *testing.T) {
	const want = `BenchmarkOne 1 1 ns/op

key: val
key1: val1

BenchmarkOne 1 1 ns/op

key:

BenchmarkOne 1 1 ns/op

key: a

BenchmarkOne 1 1 ns/op

key1: val2
key: b

BenchmarkOne 1 1 ns/op
BenchmarkOne 1 1 ns/op
BenchmarkTwo 20 2.5 ns/op 0.99 r2
Unit r2 better=higher
`

	one := func(cfg ...Config) *Result {
		return &Result{Config: cfg, Name: "One", Iters: 1, Values: []Value{{1, "ns/op"}}}
	}
	recs := []Record{
		one(),
		one(Config{"key", "val"}, Config{"key1", "val1"}),
		one(Config{"key1", "val1"}),
		one(Config{"key1", "val1"}, Config{"key", "a"}),
		one(Config{"key1", "val2"}, Config{"key", "b"}),
		one(Config{"key1", "val2"}, Config{"key", "b"}),
		&Result{
			Config: []Config{{"key1", "val2"}, {"key", "b"}},
			Name:   "Two",
			Iters:  20,
			Values: []Value{{2.5, "ns/op"}, {0.99, "r2"}},
		},
		&UnitMetadata{Unit: "r2", Key: "better", Value: "higher"},
	}

	out := new(strings.Builder)
	w := NewWriter(out)
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			t.Fatal(err)
		}
	}

	if out.String() != want {
		t.Fatalf("want:\n%sgot:\n%s", want, out.String())
	}
}

func TestSetConfig(t *testing.T) {
	var r Result
	r.SetConfig("goos", "linux")
	r.SetConfig("goarch", "amd64")
	r.SetConfig("goos", "darwin")
	if got := r.GetConfig("goos"); got != "darwin" {
		t.Errorf("goos = %q, want darwin", got)
	}
	r.SetConfig("goos", "")
	if len(r.Config) != 1 || r.Config[0].Key != "goarch" {
		t.Errorf("config after delete = %v", r.Config)
	}
}
