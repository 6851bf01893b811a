// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"golang.org/x/accel/benchmath"
	"golang.org/x/accel/check"
	"golang.org/x/accel/runner"
)

// Plotter draws, for each benchmark, a scatter plot of sample duration
// against iteration count with the fitted regression line, and saves
// it as a PNG file in Dir.
type Plotter struct {
	Dir string

	// Width and height of the chart in centimeters, and its
	// resolution.
	Width, Height float64
	DPI           int

	files []string
	err   error
}

// NewPlotter returns a Plotter writing charts to dir.
func NewPlotter(dir string) *Plotter {
	return &Plotter{Dir: dir, Width: 16, Height: 10, DPI: 96}
}

// Err returns the first error encountered drawing or saving a chart.
func (p *Plotter) Err() error {
	return p.err
}

// Files returns the paths of the charts written so far.
func (p *Plotter) Files() []string {
	return p.files
}

func (p *Plotter) RunStarted(kind runner.Kind, count int) {
	if kind == runner.BenchmarkKind && count > 0 && p.err == nil {
		p.err = os.MkdirAll(p.Dir, 0777)
	}
}

func (p *Plotter) UnitStarted(name string) {}

func (p *Plotter) BenchmarkFinished(name string, r *benchmath.Report) {
	if p.err != nil || r.Degenerate() {
		return
	}
	pl, err := Chart(name, r)
	if err != nil {
		p.err = fmt.Errorf("charting %s: %w", name, err)
		return
	}

	file := filepath.Join(p.Dir, fileName(name)+".png")
	f, err := os.Create(file)
	if err != nil {
		p.err = err
		return
	}
	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(vg.Length(p.Width)*vg.Centimeter, vg.Length(p.Height)*vg.Centimeter),
		vgimg.UseDPI(p.DPI), vgimg.UseBackgroundColor(color.White))}
	pl.Draw(draw.New(can))
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		p.err = err
		return
	}
	if err := f.Close(); err != nil {
		p.err = err
		return
	}
	p.files = append(p.files, file)
}

func (p *Plotter) TestFinished(name string, r *check.Report) {}

func (p *Plotter) RunFinished() {}

// Chart builds the plot of r's samples and regression line. It
// returns an error if r has no samples.
func Chart(name string, r *benchmath.Report) (*plot.Plot, error) {
	if r.Degenerate() {
		return nil, fmt.Errorf("%s: no samples to chart", name)
	}
	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("%s: %s/op, R² %s", name,
		FormatDuration(r.Regression.Slope), FormatRSquared(r.Regression.RSquared))
	pl.X.Label.Text = "iterations"
	pl.Y.Label.Text = "duration (ns)"
	pl.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(r.Samples))
	lo, hi := r.Samples[0].Iters, r.Samples[0].Iters
	for i, s := range r.Samples {
		pts[i].X = float64(s.Iters)
		pts[i].Y = float64(s.Duration)
		lo, hi = min(lo, s.Iters), max(hi, s.Iters)
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Radius = vg.Points(2)
	pl.Add(scatter)

	if fit := r.Regression; !math.IsNaN(fit.Slope) && lo != hi {
		at := func(x uint64) plotter.XY {
			return plotter.XY{X: float64(x), Y: fit.Intercept + fit.Slope*float64(x)}
		}
		line, err := plotter.NewLine(plotter.XYs{at(lo), at(hi)})
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = color.RGBA{R: 200, A: 255}
		line.LineStyle.Width = vg.Points(1)
		pl.Add(line)
	}
	return pl, nil
}

// fileName maps a benchmark name to a portable file name.
func fileName(name string) string {
	name = strings.ReplaceAll(name, "/", "-per-")
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, name)
}
