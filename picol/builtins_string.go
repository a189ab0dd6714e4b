//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package picol

import "strings"

// registerStringCommands installs 'string' with its subcommand
// family (picol's picolCommandString) and 'subst'.
func registerStringCommands(ip *Interpreter) {
	ip.commands.define("string", cmdString, nil)
	ip.commands.define("subst", cmdSubst, nil)
}

func cmdSubst(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) != 2 {
		return errResult(arityError("subst string"))
	}
	return ip.evaluate(argv[1], modeSubst)
}

func cmdString(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) < 3 {
		return errResult(arityError("string option string ?arg..?"))
	}
	sub := argv[1]
	s := argv[2]
	switch sub {
	case "length":
		if len(argv) != 3 {
			return errResult(arityError("string length string"))
		}
		return okResult(formatInt(int64(len(s))))

	case "compare":
		if len(argv) != 4 {
			return errResult(arityError("string compare s1 s2"))
		}
		return okResult(formatInt(int64(strings.Compare(s, argv[3]))))

	case "equal":
		if len(argv) != 4 {
			return errResult(arityError("string equal s1 s2"))
		}
		return okResult(formatBool(s == argv[3]))

	case "first", "last":
		if len(argv) != 4 && len(argv) != 5 {
			return errResult(arityError("string " + sub + " substr str ?index?"))
		}
		needle := s
		hay := argv[3]
		offset := 0
		if len(argv) == 5 {
			o, err := coerceInt(argv[4])
			if err != nil {
				return errResult(err)
			}
			offset = int(o)
		}
		if offset < 0 {
			offset = 0
		}
		if offset > len(hay) {
			return okResult("-1")
		}
		if sub == "first" {
			idx := strings.Index(hay[offset:], needle)
			if idx < 0 {
				return okResult("-1")
			}
			return okResult(formatInt(int64(idx + offset)))
		}
		idx := strings.LastIndex(hay[offset:], needle)
		if idx < 0 {
			return okResult("-1")
		}
		return okResult(formatInt(int64(idx + offset)))

	case "index":
		if len(argv) != 4 {
			return errResult(arityError("string index string charIndex"))
		}
		if s == "" {
			return okResult("")
		}
		maxi := len(s) - 1
		from, err := coerceInt(argv[3])
		if err != nil {
			return errResult(err)
		}
		idx := int(from)
		if idx < 0 {
			idx = 0
		} else if idx > maxi {
			idx = maxi
		}
		return okResult(string(s[idx]))

	case "match":
		nocase := false
		pat := s
		str := ""
		switch len(argv) {
		case 4:
			str = argv[3]
		case 5:
			if s != "-nocase" {
				return errResult(newError(EPARSE, "usage: string match pat str"))
			}
			nocase = true
			pat = argv[3]
			str = argv[4]
		default:
			return errResult(newError(EPARSE, "usage: string match pat str"))
		}
		return okResult(formatBool(globMatch(pat, str, nocase)))

	case "is":
		if len(argv) != 4 || s != "int" {
			return errResult(arityError("string is int str"))
		}
		_, err := coerceInt(argv[3])
		return okResult(formatBool(err == nil))

	case "range":
		if len(argv) != 5 {
			return errResult(arityError("string range string first last"))
		}
		maxi := len(s) - 1
		from, ferr := coerceInt(argv[3])
		if ferr != nil {
			return errResult(ferr)
		}
		to := maxi
		if argv[4] != "end" {
			t, terr := coerceInt(argv[4])
			if terr != nil {
				return errResult(terr)
			}
			to = int(t)
		}
		fi := int(from)
		if fi < 0 {
			fi = 0
		} else if fi > maxi {
			fi = maxi
		}
		if to < 0 {
			to = 0
		} else if to > maxi {
			to = maxi
		}
		if fi > to || s == "" {
			return okResult("")
		}
		return okResult(s[fi : to+1])

	case "repeat":
		if len(argv) != 4 {
			return errResult(arityError("string repeat string count"))
		}
		n, err := coerceInt(argv[3])
		if err != nil {
			return errResult(err)
		}
		if n < 0 {
			return errResult(newErrorf(ETYPE, "expected non-negative count but got %q", argv[3]))
		}
		return okResult(strings.Repeat(s, int(n)))

	case "reverse":
		if len(argv) != 3 {
			return errResult(arityError("string reverse str"))
		}
		return okResult(reverseString(s))

	case "tolower":
		if len(argv) != 3 {
			return errResult(arityError("string tolower str"))
		}
		return okResult(strings.ToLower(s))

	case "toupper":
		if len(argv) != 3 {
			return errResult(arityError("string toupper str"))
		}
		return okResult(strings.ToUpper(s))

	case "trim", "trimleft", "trimright":
		if len(argv) != 3 && len(argv) != 4 {
			return errResult(arityError("string " + sub + " string ?chars?"))
		}
		chars := " \t\n\r"
		if len(argv) == 4 {
			chars = argv[3]
		}
		switch sub {
		case "trim":
			return okResult(strings.Trim(s, chars))
		case "trimleft":
			return okResult(strings.TrimLeft(s, chars))
		default:
			return okResult(strings.TrimRight(s, chars))
		}

	case "map":
		if len(argv) != 4 {
			return errResult(arityError("string map mapping string"))
		}
		pairs, lerr := parseList(s)
		if lerr != nil {
			return errResult(lerr)
		}
		str := argv[3]
		for i := 0; i+1 < len(pairs); i += 2 {
			str = strings.ReplaceAll(str, pairs[i], pairs[i+1])
		}
		return okResult(str)

	case "replace":
		if len(argv) != 5 && len(argv) != 6 {
			return errResult(arityError("string replace string first last ?newString?"))
		}
		maxi := len(s) - 1
		from, ferr := coerceInt(argv[3])
		if ferr != nil {
			return errResult(ferr)
		}
		to := maxi
		if argv[4] != "end" {
			t, terr := coerceInt(argv[4])
			if terr != nil {
				return errResult(terr)
			}
			to = int(t)
		}
		repl := ""
		if len(argv) == 6 {
			repl = argv[5]
		}
		fi := int(from)
		if fi < 0 {
			fi = 0
		}
		if to > maxi {
			to = maxi
		}
		if fi > to || fi > maxi {
			return okResult(s)
		}
		return okResult(s[:fi] + repl + s[to+1:])

	default:
		return errResult(newErrorf(ENAME,
			"bad option %q: must be compare, equal, first, index, is, last, "+
				"length, map, match, range, repeat, replace, reverse, tolower, toupper, "+
				"trim, trimleft, or trimright", sub))
	}
}

func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
