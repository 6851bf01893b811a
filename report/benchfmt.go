// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"io"
	"runtime"
	"strings"
	"unicode"

	"golang.org/x/accel/benchfmt"
	"golang.org/x/accel/benchmath"
	"golang.org/x/accel/check"
	"golang.org/x/accel/runner"
)

// Benchfmt writes benchmark results in the Go benchmark format.
//
// Each benchmark becomes one line carrying the regression slope as
// ns/op along with the mean, standard deviation and R² of the run.
// Benchmarks that retained no samples are omitted. Test events are
// ignored.
type Benchfmt struct {
	w      *benchfmt.Writer
	config []benchfmt.Config
	err    error
}

// NewBenchfmt returns a Benchfmt reporter writing to w. Config lines
// for goos and goarch are written ahead of the first result, followed
// by any extra key/value pairs in config. An entry in config replaces
// an earlier one with the same key, and an empty value deletes it.
func NewBenchfmt(w io.Writer, config ...benchfmt.Config) *Benchfmt {
	var res benchfmt.Result
	res.SetConfig("goos", runtime.GOOS)
	res.SetConfig("goarch", runtime.GOARCH)
	for _, c := range config {
		res.SetConfig(c.Key, c.Value)
	}
	return &Benchfmt{w: benchfmt.NewWriter(w), config: res.Config}
}

// Err returns the first error encountered writing results.
func (b *Benchfmt) Err() error {
	return b.err
}

func (b *Benchfmt) write(rec benchfmt.Record) {
	if b.err == nil {
		b.err = b.w.Write(rec)
	}
}

func (b *Benchfmt) RunStarted(kind runner.Kind, count int) {
	if kind != runner.BenchmarkKind {
		return
	}
	b.write(&benchfmt.UnitMetadata{Unit: "r2", Key: "better", Value: "higher"})
}

func (b *Benchfmt) UnitStarted(name string) {}

func (b *Benchfmt) BenchmarkFinished(name string, r *benchmath.Report) {
	if r.Degenerate() {
		return
	}
	b.write(Result(name, r, b.config))
}

func (b *Benchfmt) TestFinished(name string, r *check.Report) {}

func (b *Benchfmt) RunFinished() {}

// Result converts a benchmark Report to a benchfmt Result. The
// iteration count is the total over the retained samples.
func Result(name string, r *benchmath.Report, config []benchfmt.Config) *benchfmt.Result {
	var iters uint64
	for _, s := range r.Samples {
		iters += s.Iters
	}
	return &benchfmt.Result{
		Config: config,
		Name:   benchmarkName(name),
		Iters:  int(iters),
		Values: []benchfmt.Value{
			{Value: r.Regression.Slope, Unit: "ns/op"},
			{Value: r.Mean, Unit: "mean-ns/op"},
			{Value: r.StdDev, Unit: "sd-ns/op"},
			{Value: r.Regression.RSquared, Unit: "r2"},
		},
	}
}

// benchmarkName makes name usable as a Go benchmark name, which must
// start with an upper-case letter and contain no spaces.
func benchmarkName(name string) string {
	name = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, name)
	if name == "" {
		return name
	}
	first := []rune(name)[0]
	if !unicode.IsUpper(first) {
		return strings.ToUpper(string(first)) + name[len(string(first)):]
	}
	return name
}
