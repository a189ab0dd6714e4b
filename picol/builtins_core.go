//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package picol

import (
	"sort"
	"strings"
)

// registerCoreCommands installs the variable, list, and string-buffer
// family that nearly every script touches: set/unset/incr/append and
// the full list codec catalogue (picol's picolCommandList* family).
func registerCoreCommands(ip *Interpreter) {
	ip.commands.define("set", cmdSet, nil)
	ip.commands.define("unset", cmdUnset, nil)
	ip.commands.define("incr", cmdIncr, nil)
	ip.commands.define("append", cmdAppend, nil)

	ip.commands.define("list", cmdList, nil)
	ip.commands.define("lappend", cmdLappend, nil)
	ip.commands.define("lindex", cmdLindex, nil)
	ip.commands.define("llength", cmdLlength, nil)
	ip.commands.define("linsert", cmdLinsert, nil)
	ip.commands.define("lreplace", cmdLreplace, nil)
	ip.commands.define("lrange", cmdLrange, nil)
	ip.commands.define("lsearch", cmdLsearch, nil)
	ip.commands.define("lset", cmdLset, nil)
	ip.commands.define("lsort", cmdLsort, nil)

	ip.commands.define("split", cmdSplit, nil)
	ip.commands.define("join", cmdJoin, nil)
	ip.commands.define("concat", cmdConcat, nil)
}

func cmdSet(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) != 2 && len(argv) != 3 {
		return errResult(arityError("set varName ?newValue?"))
	}
	if len(argv) == 3 {
		if err := ip.SetVariable(argv[1], argv[2]); err != nil {
			return errResult(err)
		}
	}
	v, err := ip.GetVariable(argv[1])
	if err != nil {
		return errResult(err)
	}
	return okResult(v)
}

func cmdUnset(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) < 2 {
		return errResult(arityError("unset varName ?varName ...?"))
	}
	for _, name := range argv[1:] {
		name, forceGlobal := resolveName(name)
		f := ip.currentFrame()
		if forceGlobal {
			f = ip.globalFrame()
		}
		delete(f.vars, name)
	}
	return okResult("")
}

func cmdIncr(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) != 2 && len(argv) != 3 {
		return errResult(arityError("incr varName ?increment?"))
	}
	delta := int64(1)
	if len(argv) == 3 {
		d, err := coerceInt(argv[2])
		if err != nil {
			return errResult(err)
		}
		delta = d
	}
	cur := int64(0)
	if v, err := ip.GetVariable(argv[1]); err == nil {
		c, cerr := coerceInt(v)
		if cerr != nil {
			return errResult(cerr)
		}
		cur = c
	}
	cur += delta
	if err := ip.SetIntVariable(argv[1], cur); err != nil {
		return errResult(err)
	}
	return okResult(formatInt(cur))
}

func cmdAppend(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) < 2 {
		return errResult(arityError("append varName ?value value ...?"))
	}
	var b strings.Builder
	if v, err := ip.GetVariable(argv[1]); err == nil {
		b.WriteString(v)
	}
	for _, v := range argv[2:] {
		b.WriteString(v)
	}
	result := b.String()
	if err := ip.SetVariable(argv[1], result); err != nil {
		return errResult(err)
	}
	return okResult(result)
}

func cmdList(ip *Interpreter, argv []string, data []string) *TclResult {
	return okResult(joinList(argv[1:]))
}

func cmdLappend(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) < 2 {
		return errResult(arityError("lappend varName ?value value ...?"))
	}
	list, _ := ip.GetVariable(argv[1])
	for _, v := range argv[2:] {
		list = listAppend(list, v)
	}
	if err := ip.SetVariable(argv[1], list); err != nil {
		return errResult(err)
	}
	return okResult(list)
}

func cmdLindex(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) != 3 {
		return errResult(arityError("lindex list index"))
	}
	elems, lerr := parseList(argv[1])
	if lerr != nil {
		return errResult(lerr)
	}
	idx, ierr := coerceInt(argv[2])
	if ierr != nil {
		return errResult(ierr)
	}
	if idx < 0 || int(idx) >= len(elems) {
		return okResult("")
	}
	return okResult(elems[idx])
}

func cmdLlength(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) != 2 {
		return errResult(arityError("llength list"))
	}
	elems, lerr := parseList(argv[1])
	if lerr != nil {
		return errResult(lerr)
	}
	return okResult(formatInt(int64(len(elems))))
}

// parseListIndex interprets an lrange/lreplace/linsert index argument,
// accepting the literal "end".
func parseListIndex(s string, end int) (int, *TclError) {
	if s == "end" {
		return end, nil
	}
	v, err := coerceInt(s)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

func cmdLinsert(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) < 3 {
		return errResult(arityError("linsert list index element ?element ...?"))
	}
	elems, lerr := parseList(argv[1])
	if lerr != nil {
		return errResult(lerr)
	}
	pos, ierr := parseListIndex(argv[2], len(elems))
	if ierr != nil {
		return errResult(ierr)
	}
	if pos < 0 {
		pos = 0
	}
	if pos > len(elems) {
		pos = len(elems)
	}
	out := make([]string, 0, len(elems)+len(argv)-3)
	out = append(out, elems[:pos]...)
	out = append(out, argv[3:]...)
	out = append(out, elems[pos:]...)
	return okResult(joinList(out))
}

func cmdLreplace(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) < 4 {
		return errResult(arityError("lreplace list first last ?element element ...?"))
	}
	elems, lerr := parseList(argv[1])
	if lerr != nil {
		return errResult(lerr)
	}
	from, ferr := parseListIndex(argv[2], len(elems)-1)
	if ferr != nil {
		return errResult(ferr)
	}
	to, terr := parseListIndex(argv[3], len(elems)-1)
	if terr != nil {
		return errResult(terr)
	}
	if from < 0 {
		from = 0
	}
	if to >= len(elems) {
		to = len(elems) - 1
	}
	var out []string
	out = append(out, elems[:minInt(from, len(elems))]...)
	out = append(out, argv[4:]...)
	if to+1 < len(elems) {
		out = append(out, elems[to+1:]...)
	}
	return okResult(joinList(out))
}

func cmdLrange(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) != 4 {
		return errResult(arityError("lrange list first last"))
	}
	elems, lerr := parseList(argv[1])
	if lerr != nil {
		return errResult(lerr)
	}
	from, ferr := parseListIndex(argv[2], len(elems)-1)
	if ferr != nil {
		return errResult(ferr)
	}
	to, terr := parseListIndex(argv[3], len(elems)-1)
	if terr != nil {
		return errResult(terr)
	}
	if from < 0 {
		from = 0
	}
	if to >= len(elems) {
		to = len(elems) - 1
	}
	if from > to || from >= len(elems) {
		return okResult("")
	}
	return okResult(joinList(elems[from : to+1]))
}

func cmdLsearch(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) != 3 {
		return errResult(arityError("lsearch list pattern"))
	}
	elems, lerr := parseList(argv[1])
	if lerr != nil {
		return errResult(lerr)
	}
	for i, e := range elems {
		if globMatch(argv[2], e, false) {
			return okResult(formatInt(int64(i)))
		}
	}
	return okResult("-1")
}

func cmdLset(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) != 4 {
		return errResult(arityError("lset listVar index value"))
	}
	cur, _ := ip.GetVariable(argv[1])
	elems, lerr := parseList(cur)
	if lerr != nil {
		return errResult(lerr)
	}
	idx, ierr := coerceInt(argv[2])
	if ierr != nil {
		return errResult(ierr)
	}
	if idx < 0 || int(idx) >= len(elems) {
		return errResult(newError(ERANGE, "list index out of range"))
	}
	elems[idx] = argv[3]
	result := joinList(elems)
	if err := ip.SetVariable(argv[1], result); err != nil {
		return errResult(err)
	}
	return okResult(result)
}

func cmdLsort(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) != 2 && len(argv) != 3 {
		return errResult(arityError("lsort ?-decreasing|-integer|-unique? list"))
	}
	mode := ""
	listArg := argv[1]
	if len(argv) == 3 {
		mode = argv[1]
		listArg = argv[2]
	}
	elems, lerr := parseList(listArg)
	if lerr != nil {
		return errResult(lerr)
	}
	out := make([]string, len(elems))
	copy(out, elems)
	switch mode {
	case "", "-unique":
		sort.Strings(out)
	case "-decreasing":
		sort.Sort(sort.Reverse(sort.StringSlice(out)))
	case "-integer":
		sort.Slice(out, func(i, j int) bool {
			a, _ := coerceInt(out[i])
			b, _ := coerceInt(out[j])
			return a < b
		})
	default:
		return errResult(newErrorf(ENAME, "bad option %q: must be -decreasing, -integer, or -unique", mode))
	}
	if mode == "-unique" {
		uniq := out[:0]
		for i, e := range out {
			if i == 0 || e != uniq[len(uniq)-1] {
				uniq = append(uniq, e)
			}
		}
		out = uniq
	}
	return okResult(joinList(out))
}

func cmdSplit(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) != 2 && len(argv) != 3 {
		return errResult(arityError("split string ?splitChars?"))
	}
	chars := " \t\n\r"
	if len(argv) == 3 {
		chars = argv[2]
	}
	var parts []string
	if chars == "" {
		for _, r := range argv[1] {
			parts = append(parts, string(r))
		}
	} else {
		parts = strings.FieldsFunc(argv[1], func(r rune) bool {
			return strings.ContainsRune(chars, r)
		})
	}
	return okResult(joinList(parts))
}

func cmdJoin(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) != 2 && len(argv) != 3 {
		return errResult(arityError("join list ?joinString?"))
	}
	sep := " "
	if len(argv) == 3 {
		sep = argv[2]
	}
	elems, lerr := parseList(argv[1])
	if lerr != nil {
		return errResult(lerr)
	}
	return okResult(strings.Join(elems, sep))
}

func cmdConcat(ip *Interpreter, argv []string, data []string) *TclResult {
	var all []string
	for _, a := range argv[1:] {
		elems, lerr := parseList(a)
		if lerr != nil {
			return errResult(lerr)
		}
		all = append(all, elems...)
	}
	return okResult(joinList(all))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
