// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// accelbench runs a demonstration suite of accel benchmarks.
//
// Usage:
//
//	accelbench [--regex=pattern] [--limit=seconds] [--format=text|html|benchfmt] [--plot-dir=dir] [--verbose]
//
// For example, to compare map implementations for two seconds each
// and save benchfmt output for benchstat:
//
//	accelbench --regex='Emplace/.*' --limit=2 --format=benchfmt > new.txt
package main

import (
	"os"

	"golang.org/x/accel/cli"
)

func main() {
	os.Exit(cli.MainBenchmarks(os.Args, os.Stdout, os.Stderr))
}
