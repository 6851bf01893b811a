// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli is the command-line entry point of accel binaries.
//
// A benchmark binary registers its benchmarks and calls
// MainBenchmarks; a test binary registers its tests and calls
// MainTests:
//
//	func main() {
//		os.Exit(cli.MainTests(os.Args, os.Stdout, os.Stderr))
//	}
//
// Both accept
//
//	--regex=<pattern>     run only units whose whole name matches pattern
//	--format=<format>     output format: text or html (benchmarks also benchfmt)
//	--color=<when>        color text output: auto, always, or never
//	--verbose             log lifecycle diagnostics to stderr
//	--help                print usage and exit
//
// and benchmark binaries additionally accept
//
//	--limit=<seconds>     sampling budget per benchmark (default 5)
//	--plot-dir=<dir>      write a PNG chart of each benchmark to dir
//
// Settings not given as flags are read from the environment variables
// ACCEL_REGEX, ACCEL_FORMAT, ACCEL_COLOR, ACCEL_VERBOSE, ACCEL_LIMIT
// and ACCEL_PLOT_DIR.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"golang.org/x/accel/bench"
	"golang.org/x/accel/registry"
	"golang.org/x/accel/report"
	"golang.org/x/accel/runner"
)

// Exit codes.
const (
	ExitOK     = 0
	ExitFailed = 1
	ExitUsage  = 2
)

// Options are the parsed command-line settings of a run.
type Options struct {
	Kind    runner.Kind
	Filter  *regexp.Regexp
	Limit   time.Duration
	Format  string
	PlotDir string
	Color   string
	Verbose bool
}

// Parse parses the command-line arguments args, which exclude the
// program name, for a run of the given kind. It returns pflag.ErrHelp
// if --help was requested.
func Parse(kind runner.Kind, args []string) (*Options, error) {
	fs := newFlagSet(kind)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("invalid argument: %q", fs.Arg(0))
	}

	v := viper.New()
	v.SetEnvPrefix("ACCEL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	opts := &Options{
		Kind:   kind,
		Format: v.GetString("format"),
		Color:  v.GetString("color"),
	}

	var err error
	if opts.Verbose, err = cast.ToBoolE(v.Get("verbose")); err != nil {
		return nil, fmt.Errorf("invalid verbose setting: %w", err)
	}

	if opts.Filter, err = runner.CompileFilter(v.GetString("regex")); err != nil {
		return nil, fmt.Errorf("invalid regex: %w", err)
	}

	switch opts.Format {
	case "text", "html":
	case "benchfmt":
		if kind != runner.BenchmarkKind {
			return nil, fmt.Errorf("format %q is only available for benchmarks", opts.Format)
		}
	default:
		return nil, fmt.Errorf("invalid format: %q", opts.Format)
	}

	switch opts.Color {
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("invalid color setting: %q", opts.Color)
	}

	if kind == runner.BenchmarkKind {
		secs, err := cast.ToFloat64E(v.Get("limit"))
		ns := secs * float64(time.Second)
		if err != nil || math.IsNaN(ns) || ns < 0 || ns >= math.MaxInt64 {
			return nil, fmt.Errorf("invalid number: %q", v.GetString("limit"))
		}
		opts.Limit = time.Duration(ns)
		opts.PlotDir = v.GetString("plot-dir")
	}
	return opts, nil
}

func newFlagSet(kind runner.Kind) *pflag.FlagSet {
	fs := pflag.NewFlagSet("accel", pflag.ContinueOnError)
	fs.SortFlags = false
	if kind == runner.BenchmarkKind {
		fs.Float64("limit", bench.DefaultLimit.Seconds(), "set the benchmark time `limit` in seconds")
		fs.String("regex", "", "set the benchmark filter")
		fs.String("format", "text", "output `format`: text, benchfmt, or html")
		fs.String("plot-dir", "", "write a chart of each benchmark to `dir`")
	} else {
		fs.String("regex", "", "set the test filter")
		fs.String("format", "text", "output `format`: text or html")
	}
	fs.String("color", "auto", "color text output: auto, always, or never")
	fs.Bool("verbose", false, "log lifecycle diagnostics")
	return fs
}

// Usage writes the usage message of a binary named name to w.
func Usage(w io.Writer, name string, kind runner.Kind) {
	fmt.Fprintf(w, "Usage: %s [options]\n\nOptions:\n", filepath.Base(name))
	fs := newFlagSet(kind)
	fs.SetOutput(w)
	fs.PrintDefaults()
}

// MainBenchmarks runs the benchmarks of the default registry as
// directed by args, which include the program name, and returns the
// process exit code.
func MainBenchmarks(args []string, stdout, stderr io.Writer) int {
	return Main(registry.Default(), runner.BenchmarkKind, args, stdout, stderr)
}

// MainTests runs the tests of the default registry as directed by
// args, which include the program name, and returns the process exit
// code.
func MainTests(args []string, stdout, stderr io.Writer) int {
	return Main(registry.Default(), runner.TestKind, args, stdout, stderr)
}

// Main seals reg and runs its units of the given kind.
func Main(reg *registry.Registry, kind runner.Kind, args []string, stdout, stderr io.Writer) int {
	name := "accel"
	if len(args) > 0 {
		name, args = args[0], args[1:]
	}
	opts, err := Parse(kind, args)
	if errors.Is(err, pflag.ErrHelp) {
		Usage(stdout, name, kind)
		return ExitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "accel: %v\n", err)
		Usage(stderr, name, kind)
		return ExitUsage
	}

	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	reporter := opts.reporter(stdout)
	reg.Seal()
	ropts := runner.Options{
		Filter:   opts.Filter,
		Reporter: reporter,
		Logger:   logger,
	}
	logger.Debug("starting run", "kind", kind, "filter", opts.Filter.String(), "format", opts.Format)

	var code int
	if kind == runner.BenchmarkKind {
		ropts.Bench = bench.DefaultConfig()
		ropts.Bench.Limit = opts.Limit
		code = runner.Benchmarks(reg.Benchmarks(), ropts)
	} else {
		code = runner.Tests(reg.Tests(), ropts)
	}

	if err := reporter.Err(); err != nil {
		logger.Error("writing report", "err", err)
		if code == ExitOK {
			code = ExitFailed
		}
	}
	return code
}

func (o *Options) reporter(stdout io.Writer) report.Multi {
	var m report.Multi
	switch o.Format {
	case "benchfmt":
		m = append(m, report.NewBenchfmt(stdout))
	case "html":
		m = append(m, report.NewHTML(stdout))
	default:
		m = append(m, report.NewText(stdout, o.useColor(stdout)))
	}
	if o.PlotDir != "" {
		m = append(m, report.NewPlotter(o.PlotDir))
	}
	return m
}

func (o *Options) useColor(w io.Writer) bool {
	switch o.Color {
	case "always":
		return true
	case "never":
		return false
	}
	if termenv.EnvNoColor() {
		return false
	}
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
