//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package picol

import (
	"strings"
)

// A list is a string: this file implements its only two operations,
// appending an element (bracing it when necessary) and splitting a
// string back into its elements, honoring brace and quote nesting.

// needsBracing reports whether elem must be brace-quoted to round-trip
// through the list codec: empty elements and elements containing
// whitespace, braces, or other list-significant characters.
func needsBracing(elem string) bool {
	if elem == "" {
		return true
	}
	for _, r := range elem {
		switch r {
		case ' ', '\t', '\n', '\r', ';', '{', '}', '[', ']', '$', '"', '\\':
			return true
		}
	}
	return false
}

// braceElement wraps elem in braces if required to preserve it as a
// single list element; otherwise returns it unchanged.
func braceElement(elem string) string {
	if needsBracing(elem) {
		return "{" + elem + "}"
	}
	return elem
}

// listAppend appends elem to list, the way 'lappend' builds up a list
// value: a separating space if the list is non-empty, then the
// (possibly braced) element.
func listAppend(list, elem string) string {
	b := braceElement(elem)
	if list == "" {
		return b
	}
	return list + " " + b
}

// joinList renders elems as a single list value.
func joinList(elems []string) string {
	out := ""
	for _, e := range elems {
		out = listAppend(out, e)
	}
	return out
}

// parseList splits s into its elements, honoring brace nesting and
// double-quote grouping the same way the command parser does, and
// stripping the surrounding braces/quotes from each element. Returns a
// parse error for an unbalanced brace or quote.
func parseList(s string) ([]string, *TclError) {
	var elems []string
	i, n := 0, len(s)
	for {
		for i < n && isListSpace(s[i]) {
			i++
		}
		if i >= n {
			break
		}
		var elem string
		var err *TclError
		switch s[i] {
		case '{':
			elem, i, err = parseListBrace(s, i)
		case '"':
			elem, i, err = parseListQuote(s, i)
		default:
			elem, i, err = parseListBare(s, i)
		}
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
	return elems, nil
}

func isListSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// parseListBrace consumes a {...} grouped element starting at s[i],
// which must be '{', honoring nested braces and backslash escapes used
// only to keep brace-balance counting correct (their literal text is
// preserved, matching the brace-literal STR token rule).
func parseListBrace(s string, i int) (string, int, *TclError) {
	start := i + 1
	level := 1
	j := start
	for level > 0 {
		if j >= len(s) {
			return "", 0, newError(EPARSE, "unmatched open brace in list")
		}
		switch s[j] {
		case '\\':
			j++
		case '{':
			level++
		case '}':
			level--
		}
		j++
	}
	elem := s[start : j-1]
	return elem, j, nil
}

// parseListQuote consumes a "..." grouped element, stopping at the
// closing quote and consuming it; parseList's loop skips any
// whitespace that follows.
func parseListQuote(s string, i int) (string, int, *TclError) {
	start := i + 1
	j := start
	for {
		if j >= len(s) {
			return "", 0, newError(EPARSE, "unmatched open quote in list")
		}
		if s[j] == '\\' {
			j += 2
			continue
		}
		if s[j] == '"' {
			break
		}
		j++
	}
	elem := s[start:j]
	j++ // consume closing quote
	return elem, j, nil
}

// parseListBare consumes an unquoted element, up to the next run of
// whitespace, still honoring nested braces so an element like
// a{b c}d stays together.
func parseListBare(s string, i int) (string, int, *TclError) {
	start := i
	level := 0
	j := i
	for j < len(s) {
		switch s[j] {
		case '\\':
			j++
		case '{':
			level++
		case '}':
			if level > 0 {
				level--
			}
		default:
			if level == 0 && isListSpace(s[j]) {
				return s[start:j], j, nil
			}
		}
		j++
	}
	if level != 0 {
		return "", 0, newError(EPARSE, "unmatched open brace in list")
	}
	return s[start:j], j, nil
}

// globMatch implements the restricted glob subset used by 'info
// commands', 'info vars', 'string match', 'switch', and 'lsearch': '?' matches any single
// byte, '*' is only meaningful at the very start and/or end of the
// pattern (a middle '*' matches only itself literally), everything
// else matches literally. When nocase is set both sides are
// upper-cased first.
func globMatch(pattern, s string, nocase bool) bool {
	if nocase {
		pattern = strings.ToUpper(pattern)
		s = strings.ToUpper(s)
	}
	prefixStar := strings.HasPrefix(pattern, "*")
	suffixStar := strings.HasSuffix(pattern, "*") && len(pattern) > 1
	core := pattern
	if prefixStar {
		core = core[1:]
	}
	if suffixStar {
		core = core[:len(core)-1]
	}
	if !prefixStar && !suffixStar {
		return matchLiteralQ(core, s)
	}
	if prefixStar && suffixStar {
		if len(core) > len(s) {
			return false
		}
		for start := 0; start+len(core) <= len(s); start++ {
			if matchLiteralQ(core, s[start:start+len(core)]) {
				return true
			}
		}
		return len(core) == 0
	}
	if prefixStar {
		if len(core) > len(s) {
			return false
		}
		return matchLiteralQ(core, s[len(s)-len(core):])
	}
	// suffixStar only
	if len(core) > len(s) {
		return false
	}
	return matchLiteralQ(core, s[:len(core)])
}

// matchLiteralQ matches pattern against s where '?' matches any single
// byte and all other bytes must match literally; lengths must be equal.
func matchLiteralQ(pattern, s string) bool {
	if len(pattern) != len(s) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '?' && pattern[i] != s[i] {
			return false
		}
	}
	return true
}
