// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package srcexpr recovers the source text of a call expression from
// the file and line of its call site.
package srcexpr

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"sync"
)

// A Call is the source rendering of a call expression.
type Call struct {
	// Expr is the whole call, e.g. "check.Equal(2 + 2, 4)".
	Expr string
	// Args is the rendering of each argument, e.g. ["2 + 2", "4"].
	Args []string
}

type file struct {
	fset *token.FileSet
	ast  *ast.File // nil if the file could not be parsed
}

var (
	mu    sync.Mutex
	files = make(map[string]*file)
)

func load(name string) *file {
	mu.Lock()
	defer mu.Unlock()
	if f, ok := files[name]; ok {
		return f
	}
	f := &file{fset: token.NewFileSet()}
	// Parse errors leave f.ast nil; the failure is cached too.
	f.ast, _ = parser.ParseFile(f.fset, name, nil, parser.SkipObjectResolution)
	files[name] = f
	return f
}

// Lookup finds the innermost call to a function or method called name
// whose source span covers line in the named file. It reports false if
// the file is unavailable or holds no such call.
func Lookup(filename string, line int, name string) (Call, bool) {
	f := load(filename)
	if f.ast == nil {
		return Call{}, false
	}

	var best *ast.CallExpr
	var bestSpan int
	ast.Inspect(f.ast, func(n ast.Node) bool {
		if n == nil {
			return false
		}
		start, end := f.fset.Position(n.Pos()).Line, f.fset.Position(n.End()).Line
		if line < start || line > end {
			return false
		}
		call, ok := n.(*ast.CallExpr)
		if !ok || funcName(call.Fun) != name {
			return true
		}
		if span := end - start; best == nil || span <= bestSpan {
			best, bestSpan = call, span
		}
		return true
	})
	if best == nil {
		return Call{}, false
	}

	c := Call{Expr: render(f.fset, best)}
	for _, arg := range best.Args {
		c.Args = append(c.Args, render(f.fset, arg))
	}
	return c, true
}

func funcName(fun ast.Expr) string {
	switch fun := fun.(type) {
	case *ast.Ident:
		return fun.Name
	case *ast.SelectorExpr:
		return fun.Sel.Name
	case *ast.IndexExpr:
		return funcName(fun.X)
	case *ast.IndexListExpr:
		return funcName(fun.X)
	case *ast.ParenExpr:
		return funcName(fun.X)
	}
	return ""
}

func render(fset *token.FileSet, n ast.Node) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, n); err != nil {
		return ""
	}
	return buf.String()
}
