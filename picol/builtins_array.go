//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package picol

import "sort"

// registerArrayCommands installs 'array', whose subcommands operate on
// the fixed 16-bucket open-chain hash tables of vars.go (§4.3).
func registerArrayCommands(ip *Interpreter) {
	ip.commands.define("array", cmdArray, nil)
}

func cmdArray(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) < 3 {
		return errResult(arityError("array option arrayName ?arg ...?"))
	}
	sub := argv[1]
	name, forceGlobal := resolveName(argv[2])

	switch sub {
	case "set":
		if len(argv) != 4 {
			return errResult(arityError("array set arrayName list"))
		}
		elems, lerr := parseList(argv[3])
		if lerr != nil {
			return errResult(lerr)
		}
		if len(elems)%2 != 0 {
			return errResult(newError(EPARSE, "list must have an even number of elements"))
		}
		table, terr := ip.arrayHandleFor(name, forceGlobal, true)
		if terr != nil {
			return errResult(terr)
		}
		for i := 0; i+1 < len(elems); i += 2 {
			table.set(elems[i], elems[i+1])
		}
		return okResult("")

	case "get":
		if len(argv) != 3 {
			return errResult(arityError("array get arrayName"))
		}
		table, terr := ip.arrayHandleFor(name, forceGlobal, false)
		if terr != nil {
			return errResult(terr)
		}
		keys := table.names()
		sort.Strings(keys)
		var out []string
		for _, k := range keys {
			v, _ := table.get(k)
			out = append(out, k, v)
		}
		return okResult(joinList(out))

	case "exists":
		if len(argv) != 3 {
			return errResult(arityError("array exists arrayName"))
		}
		_, terr := ip.arrayHandleFor(name, forceGlobal, false)
		return okResult(formatBool(terr == nil))

	case "names":
		if len(argv) != 3 {
			return errResult(arityError("array names arrayName"))
		}
		table, terr := ip.arrayHandleFor(name, forceGlobal, false)
		if terr != nil {
			return errResult(terr)
		}
		keys := table.names()
		sort.Strings(keys)
		return okResult(joinList(keys))

	case "size":
		if len(argv) != 3 {
			return errResult(arityError("array size arrayName"))
		}
		table, terr := ip.arrayHandleFor(name, forceGlobal, false)
		if terr != nil {
			return errResult(terr)
		}
		return okResult(formatInt(int64(table.size)))

	case "unset":
		if len(argv) != 3 && len(argv) != 4 {
			return errResult(arityError("array unset arrayName ?key?"))
		}
		table, terr := ip.arrayHandleFor(name, forceGlobal, false)
		if terr != nil {
			return okResult("")
		}
		if len(argv) == 4 {
			table.unset(argv[3])
			return okResult("")
		}
		f := ip.currentFrame()
		if forceGlobal {
			f = ip.globalFrame()
		}
		delete(f.vars, name)
		return okResult("")

	case "statistics":
		if len(argv) != 3 {
			return errResult(arityError("array statistics arrayName"))
		}
		table, terr := ip.arrayHandleFor(name, forceGlobal, false)
		if terr != nil {
			return errResult(terr)
		}
		depths := table.statistics()
		out := make([]string, len(depths))
		for i, d := range depths {
			out[i] = formatInt(int64(d))
		}
		return okResult(joinList(out))

	default:
		return errResult(newErrorf(ENAME,
			"bad option %q: must be exists, get, names, set, size, statistics, or unset", sub))
	}
}
