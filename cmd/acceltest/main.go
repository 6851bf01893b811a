// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// acceltest runs a demonstration suite of accel tests.
//
// Usage:
//
//	acceltest [--regex=pattern] [--format=text|html] [--color=auto|always|never] [--verbose]
//
// Several tests fail on purpose to show how failures are reported,
// so acceltest normally exits with status 1.
package main

import (
	"os"

	"golang.org/x/accel/cli"
)

func main() {
	os.Exit(cli.MainTests(os.Args, os.Stdout, os.Stderr))
}
