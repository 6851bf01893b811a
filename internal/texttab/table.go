// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out plain-text tables with aligned columns.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Row and Cell return the Table so calls can be chained to build up a
// row at once.
type Table struct {
	rows [][]cell
	cols int
}

type cell struct {
	value      string
	leftMargin string
	right      bool
}

// A CellOption modifies a single cell.
type CellOption func(c *cell)

// LeftMargin sets the margin printed before a cell. The default is a
// single space, except in the first column.
func LeftMargin(x string) CellOption {
	return func(c *cell) {
		c.leftMargin = x
	}
}

// Cell alignments. Cells are left-aligned by default.
var (
	Left  CellOption = func(c *cell) { c.right = false }
	Right CellOption = func(c *cell) { c.right = true }
)

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell adds a cell at the end of the current row.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	row := &t.rows[len(t.rows)-1]
	c := cell{value: value, leftMargin: " "}
	if len(*row) == 0 {
		c.leftMargin = ""
	}
	for _, o := range opts {
		o(&c)
	}
	*row = append(*row, c)
	t.cols = max(t.cols, len(*row))
	return t
}

// Format lays out table t and writes it to w.
func (t *Table) Format(w io.Writer) error {
	// Column width includes the widest left margin of the column.
	lmargin := make([]int, t.cols)
	ws := make([]int, t.cols)
	for _, row := range t.rows {
		for col, c := range row {
			lmargin[col] = max(lmargin[col], utf8.RuneCountInString(c.leftMargin))
		}
	}
	for _, row := range t.rows {
		for col, c := range row {
			ws[col] = max(ws[col], lmargin[col]+utf8.RuneCountInString(c.value))
		}
	}

	var line strings.Builder
	for _, row := range t.rows {
		line.Reset()
		for col, c := range row {
			width := ws[col] - lmargin[col]
			fmt.Fprintf(&line, "%*s", lmargin[col], c.leftMargin)
			if c.right {
				fmt.Fprintf(&line, "%*s", width, c.value)
			} else {
				fmt.Fprintf(&line, "%-*s", width, c.value)
			}
		}
		// Don't print trailing spaces.
		if _, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}
