//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package picol

import (
	"strconv"
	"strings"
)

// Every interpreter slot is an owned Go string; there is no separate
// numeric, boolean, or list type. This file provides the lazily-parsed
// views (integer, float, boolean) that built-ins derive from those
// bytes on demand, per the "everything is a string" data model; the
// pointer-handle view lives in handles.go.

// coerceInt parses s as an integer, accepting decimal, 0x hexadecimal,
// and 0-prefixed octal the way strconv.ParseInt's base-0 detection
// does (mirroring Tcl's own numeric literal rules).
func coerceInt(s string) (int64, *TclError) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 0, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return 0, newErrorf(ERANGE, "integer value too large: %q", s)
		}
		return 0, newErrorf(ETYPE, "expected integer but got %q", s)
	}
	return v, nil
}

// coerceFloat parses s as a floating point number.
func coerceFloat(s string) (float64, *TclError) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return 0, newErrorf(ERANGE, "floating point value out of range: %q", s)
		}
		return 0, newErrorf(ETYPE, "expected floating point number but got %q", s)
	}
	return v, nil
}

// coerceNumber parses s as an integer if possible, else a float, else
// returns it unchanged. Nothing in the package calls it; both expr
// forms work on integers only.
func coerceNumber(s string) interface{} {
	if i, err := coerceInt(s); err == nil {
		return i
	}
	if f, err := coerceFloat(s); err == nil {
		return f
	}
	return s
}

// coerceBool interprets s as a boolean: a numeric value is false only
// when zero; "on"/"yes"/"true" and "off"/"no"/"false" (any case) are
// recognized words; anything else is a type error.
func coerceBool(s string) (bool, *TclError) {
	if n, err := strconv.ParseInt(strings.TrimSpace(s), 0, 64); err == nil {
		return n != 0, nil
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return f != 0, nil
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "false", "no", "off", "0":
		return false, nil
	case "true", "yes", "on", "1":
		return true, nil
	}
	return false, newErrorf(ETYPE, "expected boolean value but got %q", s)
}

// formatBool renders a boolean the way 'expr' and 'string is int'
// results are displayed: 0 or 1.
func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// formatInt renders an integer result the way every arithmetic
// operator does.
func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// isTrue reports whether s, read as a Tcl condition, is true: a
// non-zero integer/float reads true, any recognized boolean word reads
// true/false accordingly.
func isTrue(s string) (bool, *TclError) {
	return coerceBool(s)
}
