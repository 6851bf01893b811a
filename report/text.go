// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders the event stream of a run.
//
// Each renderer implements runner.Reporter. Text is the interactive
// console format. Benchfmt writes the Go benchmark format for
// comparison with standard tooling, HTML writes a standalone page, and
// Plotter draws a chart of each benchmark's samples. Multi fans events
// out to several reporters.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"golang.org/x/accel/benchmath"
	"golang.org/x/accel/check"
	"golang.org/x/accel/internal/texttab"
	"golang.org/x/accel/runner"
)

const (
	boxStart = "╔════════════╗"
	boxEnd   = "╚════════════╝"
	boxRun   = "┌─RUN────────┐"
	boxDone  = "└───────DONE─┘"
	boxPass  = "└───────PASS─┘"
	boxFail  = "└───────FAIL─┘"
)

// Text writes a human-readable report of a run.
type Text struct {
	w   io.Writer
	err error

	frame, bad, label, title, name, where lipgloss.Style

	kind    runner.Kind
	failed  int
	benched int
	table   *texttab.Table
}

// NewText returns a Text reporter writing to w. If color is false,
// no terminal escape sequences are written.
func NewText(w io.Writer, color bool) *Text {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return &Text{
		w:     w,
		frame: fg("2"),
		bad:   fg("1"),
		label: fg("4"),
		title: fg("5"),
		name:  fg("6"),
		where: fg("3"),
	}
}

// Err returns the first error encountered writing the report.
func (t *Text) Err() error {
	return t.err
}

func (t *Text) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *Text) RunStarted(kind runner.Kind, count int) {
	t.kind = kind
	t.failed = 0
	t.benched = 0
	t.table = new(texttab.Table)
	t.table.Row().Cell("name").Cell("time/op").Cell("±").Cell("R²").Cell("samples")
	t.printf("%s %s\n", t.frame.Render(boxStart), t.title.Render(fmt.Sprintf("%d %s(s).", count, kind)))
	if count > 0 {
		t.printf("\n")
	}
}

func (t *Text) UnitStarted(name string) {
	t.printf("%s %s\n", t.frame.Render(boxRun), t.name.Render(name))
}

func (t *Text) BenchmarkFinished(name string, r *benchmath.Report) {
	t.printf("%s %s\n", t.label.Render(" t:"), FormatDuration(r.Regression.Slope))
	t.printf("    %s R²\n", FormatRSquared(r.Regression.RSquared))
	t.printf("%s %s ±%s\n", t.label.Render(" μ:"), FormatDuration(r.Mean), r.Summary.PctRangeString())
	t.printf("%s %s\n", t.label.Render(" σ:"), FormatDuration(r.StdDev))
	for _, w := range r.Summary.Warnings {
		t.printf("%s %s\n", t.where.Render(" !:"), w)
	}
	t.printf("%s %s\n", t.frame.Render(boxDone), t.name.Render(name))

	t.benched++
	t.table.Row().
		Cell(name).
		Cell(FormatDuration(r.Regression.Slope), texttab.Right).
		Cell(r.Summary.PctRangeString(), texttab.Right).
		Cell(FormatRSquared(r.Regression.RSquared), texttab.Right).
		Cell(strconv.Itoa(len(r.Samples)), texttab.Right)
}

func (t *Text) TestFinished(name string, r *check.Report) {
	for _, f := range r.Failures {
		t.failure(f)
	}
	if r.Passed() {
		t.printf("%s %s\n", t.frame.Render(boxPass), t.name.Render(name))
	} else {
		t.failed++
		t.printf("%s %s\n", t.bad.Render(boxFail), t.name.Render(name))
	}
}

func (t *Text) failure(f *check.Failure) {
	t.printf("%s\n", t.where.Render(" "+f.Location.String()+":"))
	for i := len(f.Stack) - 1; i >= 0; i-- {
		t.printf("   in group at %s\n", f.Stack[i])
	}
	t.printf("   %s\n", f.Description)
	padding := ""
	if f.Message != "" {
		padding = "  "
		t.printf("     %s\n", f.Message)
	}
	if len(f.Information) > 0 {
		t.printf("%s     where\n", padding)
		for _, info := range f.Information {
			t.printf("%s       %s = %s\n", padding, info.Key, info.Value)
		}
	}
}

func (t *Text) RunFinished() {
	switch {
	case t.kind == runner.BenchmarkKind:
		t.printf("\n%s %s\n", t.frame.Render(boxEnd), t.title.Render("All benchmarks completed."))
		if t.benched > 0 {
			t.printf("\n")
			if t.err == nil {
				t.err = t.table.Format(t.w)
			}
		}
	case t.failed == 0:
		t.printf("\n%s %s\n", t.frame.Render(boxEnd), t.title.Render("All tests passed."))
	default:
		t.printf("\n%s %s\n", t.bad.Render(boxEnd), t.title.Render(fmt.Sprintf("%d test(s) failed.", t.failed)))
	}
}
