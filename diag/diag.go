// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diag renders check operands as text for failure diagnostics.
//
// The rendering is deliberately close to Go source syntax so that a
// rendered operand can be compared with the operand's source text: a
// value whose rendering matches its source adds nothing to a failure
// report and is omitted.
package diag

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// A Formatter renders a value as display text. If the value has no
// useful representation, Format returns "", false and the caller omits
// the value from its diagnostics.
type Formatter interface {
	Format(v any) (string, bool)
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc func(v any) (string, bool)

// Format calls f(v).
func (f FormatterFunc) Format(v any) (string, bool) {
	return f(v)
}

// Default is the Formatter used by the check package.
var Default Formatter = FormatterFunc(Format)

// Format renders v using the default rules:
//
//   - booleans, integers and floats use Go literal syntax, floats in
//     the shortest form that round-trips at their precision;
//   - strings are double-quoted with control characters escaped;
//   - runes are int32 values and render as integers;
//   - pointers are rendered as zero-padded upper-case hex addresses;
//   - errors and fmt.Stringers use their methods;
//   - slices, arrays, maps and structs use %v.
//
// Functions, channels, unsafe pointers and nil interfaces have no
// representation.
func Format(v any) (string, bool) {
	switch v := v.(type) {
	case nil:
		return "", false
	case bool:
		return strconv.FormatBool(v), true
	case string:
		return Quote(v), true
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case error:
		return v.Error(), true
	case fmt.Stringer:
		return v.String(), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.String:
		return Quote(rv.String()), true
	case reflect.Pointer:
		return Pointer(rv.Pointer()), true
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return "", false
	}
	return fmt.Sprintf("%v", v), true
}

// Pointer renders addr as a 16 digit hexadecimal address.
func Pointer(addr uintptr) string {
	return fmt.Sprintf("0x%016X", addr)
}

// Quote renders s as a double-quoted string, escaping quotes,
// backslashes and control characters.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(&b, `\x%02X`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
