// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"io"
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"golang.org/x/accel/benchfmt"
	"golang.org/x/accel/benchmath"
	"golang.org/x/accel/check"
	"golang.org/x/accel/runner"
)

func sumReport() *benchmath.Report {
	return benchmath.NewReport([]benchmath.Sample{
		benchmath.NewSample(10, 1100),
		benchmath.NewSample(20, 2100),
		benchmath.NewSample(40, 4100),
	})
}

func failingReports() (*check.Report, *check.Report) {
	equal := &check.Failure{
		Location:    check.Location{File: "sum_test.go", Line: 12},
		Description: "check.Equal(sum(2, 2), 5)",
	}
	equal.AddInformation("left", "4")
	even := &check.Failure{
		Location:    check.Location{File: "x.go", Line: 3},
		Description: "isEven(3)",
		Message:     "3 is odd",
		Stack:       []check.Location{{File: "x.go", Line: 10}},
	}
	even.AddInformation("n", "3")
	return &check.Report{Failures: []*check.Failure{equal}}, &check.Report{Failures: []*check.Failure{even}}
}

// play replays a benchmark run with one Sum benchmark, or a test run
// with Sum and Even failing and Ok passing.
func play(r runner.Reporter, kind runner.Kind) {
	if kind == runner.BenchmarkKind {
		r.RunStarted(kind, 1)
		r.UnitStarted("Sum")
		r.BenchmarkFinished("Sum", sumReport())
		r.RunFinished()
		return
	}
	sum, even := failingReports()
	r.RunStarted(kind, 3)
	r.UnitStarted("Sum")
	r.TestFinished("Sum", sum)
	r.UnitStarted("Even")
	r.TestFinished("Even", even)
	r.UnitStarted("Ok")
	r.TestFinished("Ok", &check.Report{})
	r.RunFinished()
}

func TestTextBenchmarks(t *testing.T) {
	var buf bytes.Buffer
	text := NewText(&buf, false)
	play(text, runner.BenchmarkKind)
	if err := text.Err(); err != nil {
		t.Fatal(err)
	}
	want := `╔════════════╗ 1 benchmark(s).

┌─RUN────────┐ Sum
 t: 100.0 ns
    1.0000 R²
 μ: 105.8 ns ±9%
 σ: 3.118 ns
└───────DONE─┘ Sum

╚════════════╝ All benchmarks completed.

name time/op  ±  R²     samples
Sum  100.0 ns 9% 1.0000       3
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestTextTests(t *testing.T) {
	var buf bytes.Buffer
	play(NewText(&buf, false), runner.TestKind)
	want := `╔════════════╗ 3 test(s).

┌─RUN────────┐ Sum
 sum_test.go:12:
   check.Equal(sum(2, 2), 5)
     where
       left = 4
└───────FAIL─┘ Sum
┌─RUN────────┐ Even
 x.go:3:
   in group at x.go:10
   isEven(3)
     3 is odd
       where
         n = 3
└───────FAIL─┘ Even
┌─RUN────────┐ Ok
└───────PASS─┘ Ok

╚════════════╝ 2 test(s) failed.
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	text := NewText(&buf, false)
	text.RunStarted(runner.TestKind, 0)
	text.RunFinished()
	want := "╔════════════╗ 0 test(s).\n\n╚════════════╝ All tests passed.\n"
	if got := buf.String(); got != want {
		t.Errorf("got:\n%swant:\n%s", got, want)
	}
}

func TestTextDegenerate(t *testing.T) {
	var buf bytes.Buffer
	text := NewText(&buf, false)
	text.RunStarted(runner.BenchmarkKind, 1)
	text.UnitStarted("Empty")
	text.BenchmarkFinished("Empty", benchmath.NewReport(nil))
	text.RunFinished()
	out := buf.String()
	for _, want := range []string{" t: NaN\n", " !: " + benchmath.ErrNoSamples.Error() + "\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestTextColor(t *testing.T) {
	var buf bytes.Buffer
	play(NewText(&buf, true), runner.TestKind)
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("colored output has no escape sequences:\n%s", buf.String())
	}
}

func TestBenchfmt(t *testing.T) {
	var buf bytes.Buffer
	b := NewBenchfmt(&buf, benchfmt.Config{Key: "pkg", Value: "example"})
	play(b, runner.BenchmarkKind)
	play(b, runner.TestKind)
	b.BenchmarkFinished("Empty", benchmath.NewReport(nil))
	if err := b.Err(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	want := []string{
		"Unit r2 better=higher",
		"goos: " + runtime.GOOS,
		"goarch: " + runtime.GOARCH,
		"pkg: example",
		"",
	}
	if diff := cmp.Diff(want, lines[:len(want)]); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
	rest := lines[len(want):]
	if len(rest) != 1 {
		t.Fatalf("got %d result lines, want 1:\n%s", len(rest), buf.String())
	}
	if !strings.HasPrefix(rest[0], "BenchmarkSum 70 ") || !strings.Contains(rest[0], " ns/op ") || !strings.HasSuffix(rest[0], " r2") {
		t.Errorf("bad result line %q", rest[0])
	}
}

func TestBenchfmtConfig(t *testing.T) {
	b := NewBenchfmt(io.Discard,
		benchfmt.Config{Key: "goos", Value: "plan9"},
		benchfmt.Config{Key: "goarch", Value: ""},
		benchfmt.Config{Key: "cpu", Value: "fake"})
	want := []benchfmt.Config{{Key: "goos", Value: "plan9"}, {Key: "cpu", Value: "fake"}}
	if diff := cmp.Diff(want, b.config); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestBenchmarkName(t *testing.T) {
	for in, want := range map[string]string{
		"Sum":        "Sum",
		"sum":        "Sum",
		"vector add": "Vector_add",
		"":           "",
	} {
		if got := benchmarkName(in); got != want {
			t.Errorf("benchmarkName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHTML(t *testing.T) {
	var buf bytes.Buffer
	h := NewHTML(&buf)
	play(h, runner.BenchmarkKind)
	if err := h.Err(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"<h1>1 benchmark(s)</h1>", "<td>Sum", "100.0 ns", "1.0000"} {
		if !strings.Contains(out, want) {
			t.Errorf("benchmark page lacks %q:\n%s", want, out)
		}
	}

	buf.Reset()
	sum, _ := failingReports()
	sum.Failures[0].Description = "check.True(a < b && c)"
	h.RunStarted(runner.TestKind, 1)
	h.TestFinished("Sum", sum)
	h.RunFinished()
	if err := h.Err(); err != nil {
		t.Fatal(err)
	}
	out = buf.String()
	for _, want := range []string{
		`<tr class="fail">`,
		"check.True(a &lt; b &amp;&amp; c)",
		"left = 4",
		"1 test(s) failed.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("test page lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "a < b") {
		t.Errorf("test page contains unescaped source text")
	}
}

func TestPlotter(t *testing.T) {
	dir := t.TempDir()
	p := NewPlotter(dir)
	play(p, runner.BenchmarkKind)
	p.BenchmarkFinished("Empty", benchmath.NewReport(nil))
	if err := p.Err(); err != nil {
		t.Fatal(err)
	}
	files := p.Files()
	if len(files) != 1 {
		t.Fatalf("wrote %d charts, want 1", len(files))
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Errorf("%s is not a PNG file", files[0])
	}
}

func TestChartDegenerate(t *testing.T) {
	if _, err := Chart("Empty", benchmath.NewReport(nil)); err == nil {
		t.Errorf("Chart of an empty report succeeded")
	}
}

func TestFileName(t *testing.T) {
	if got, want := fileName("bytes/op vector add"), "bytes-per-op_vector_add"; got != want {
		t.Errorf("fileName = %q, want %q", got, want)
	}
}

func TestMulti(t *testing.T) {
	var a, b bytes.Buffer
	m := Multi{NewText(&a, false), NewText(&b, false)}
	play(m, runner.TestKind)
	if a.String() != b.String() || a.Len() == 0 {
		t.Errorf("reporters saw different events:\n%s\n%s", a.String(), b.String())
	}
	if err := m.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}
