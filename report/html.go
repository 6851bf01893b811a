// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"

	"github.com/google/safehtml/template"

	"golang.org/x/accel/benchmath"
	"golang.org/x/accel/check"
	"golang.org/x/accel/runner"
)

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>accel {{.Kind}} report</title>
<style>
body { font-family: sans-serif; }
table.accel { border-collapse: collapse; }
table.accel th, table.accel td { padding: 0.2em 0.6em; text-align: left; }
table.accel td.num { text-align: right; font-family: monospace; }
tr.pass td.status { color: green; }
tr.fail td.status { color: red; }
.where { color: #666; }
</style>
</head>
<body>
<h1>{{.Count}} {{.Kind}}(s)</h1>
{{- if .Benchmarks}}
<table class="accel">
<tr><th>name<th>time/op<th>±<th>mean<th>stddev<th>R²<th>samples
{{- range .Benchmarks}}
<tr><td>{{.Name}}<td class="num">{{.Time}}<td class="num">{{.Range}}<td class="num">{{.Mean}}<td class="num">{{.StdDev}}<td class="num">{{.RSquared}}<td class="num">{{.Samples}}
{{- range .Warnings}}
<tr><td><td colspan="6" class="where">{{.}}
{{- end}}
{{- end}}
</table>
{{- end}}
{{- if .Tests}}
<table class="accel">
<tr><th>status<th>name
{{- range .Tests}}
{{if .Passed}}<tr class="pass">{{else}}<tr class="fail">{{end}}<td class="status">{{if .Passed}}PASS{{else}}FAIL{{end}}<td>{{.Name}}
{{- range .Failures}}
<tr><td><td>
<div>{{.Location}}</div>
{{- range .Stack}}
<div class="where">in group at {{.}}</div>
{{- end}}
<pre>{{.Description}}</pre>
{{- if .Message}}
<div>{{.Message}}</div>
{{- end}}
{{- if .Information}}
<div class="where">where</div>
<ul>
{{- range .Information}}
<li><code>{{.Key}} = {{.Value}}</code>
{{- end}}
</ul>
{{- end}}
{{- end}}
{{- end}}
</table>
<p>{{if .Failed}}{{.Failed}} test(s) failed.{{else}}All tests passed.{{end}}</p>
{{- end}}
</body>
</html>
`))

type htmlPage struct {
	Kind       runner.Kind
	Count      int
	Benchmarks []htmlBenchmark
	Tests      []htmlTest
	Failed     int
}

type htmlBenchmark struct {
	Name                                string
	Time, Range, Mean, StdDev, RSquared string
	Samples                             int
	Warnings                            []string
}

type htmlTest struct {
	Name     string
	Passed   bool
	Failures []htmlFailure
}

type htmlFailure struct {
	Location, Description, Message string
	Stack                          []string
	Information                    []check.Info
}

// HTML accumulates the results of a run and writes them as a
// standalone HTML page when the run finishes.
type HTML struct {
	w    io.Writer
	page htmlPage
	err  error
}

// NewHTML returns an HTML reporter writing to w.
func NewHTML(w io.Writer) *HTML {
	return &HTML{w: w}
}

// Err returns the error from rendering the page, if any.
func (h *HTML) Err() error {
	return h.err
}

func (h *HTML) RunStarted(kind runner.Kind, count int) {
	h.page = htmlPage{Kind: kind, Count: count}
}

func (h *HTML) UnitStarted(name string) {}

func (h *HTML) BenchmarkFinished(name string, r *benchmath.Report) {
	b := htmlBenchmark{
		Name:     name,
		Time:     FormatDuration(r.Regression.Slope),
		Range:    r.Summary.PctRangeString(),
		Mean:     FormatDuration(r.Mean),
		StdDev:   FormatDuration(r.StdDev),
		RSquared: FormatRSquared(r.Regression.RSquared),
		Samples:  len(r.Samples),
	}
	for _, w := range r.Summary.Warnings {
		b.Warnings = append(b.Warnings, w.Error())
	}
	h.page.Benchmarks = append(h.page.Benchmarks, b)
}

func (h *HTML) TestFinished(name string, r *check.Report) {
	t := htmlTest{Name: name, Passed: r.Passed()}
	for _, f := range r.Failures {
		hf := htmlFailure{
			Location:    f.Location.String(),
			Description: f.Description,
			Message:     f.Message,
			Information: f.Information,
		}
		for i := len(f.Stack) - 1; i >= 0; i-- {
			hf.Stack = append(hf.Stack, f.Stack[i].String())
		}
		t.Failures = append(t.Failures, hf)
	}
	if !t.Passed {
		h.page.Failed++
	}
	h.page.Tests = append(h.page.Tests, t)
}

func (h *HTML) RunFinished() {
	if err := htmlTemplate.Execute(h.w, h.page); err != nil {
		h.err = fmt.Errorf("rendering HTML report: %w", err)
	}
}
