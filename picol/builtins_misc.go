//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package picol

import (
	"fmt"
	"strings"
	"time"
)

// registerMiscCommands installs the embedding-facing introspection and
// utility commands: 'info', 'clock', 'format', and the sub-interpreter
// family 'interp', which exercises the interps handle slab and
// aliasOwner map declared on Interpreter.
func registerMiscCommands(ip *Interpreter) {
	ip.commands.define("info", cmdInfo, nil)
	ip.commands.define("clock", cmdClock, nil)
	ip.commands.define("format", cmdFormat, nil)
	ip.commands.define("interp", cmdInterp, nil)
}

func cmdInfo(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) < 2 {
		return errResult(arityError("info subcommand ?arg ...?"))
	}
	switch argv[1] {
	case "commands":
		pattern := ""
		if len(argv) == 3 {
			pattern = argv[2]
		} else if len(argv) > 3 {
			return errResult(arityError("info commands ?pattern?"))
		}
		return okResult(joinList(ip.commands.names(pattern, false)))

	case "vars":
		if len(argv) > 3 {
			return errResult(arityError("info vars ?pattern?"))
		}
		pattern := ""
		if len(argv) == 3 {
			pattern = argv[2]
		}
		var names []string
		for name := range ip.currentFrame().vars {
			if pattern == "" || globMatch(pattern, name, false) {
				names = append(names, name)
			}
		}
		return okResult(joinList(names))

	case "exists":
		if len(argv) != 3 {
			return errResult(arityError("info exists varName"))
		}
		_, gerr := ip.GetVariable(argv[2])
		return okResult(formatBool(gerr == nil))

	case "level":
		switch len(argv) {
		case 2:
			return okResult(formatInt(int64(ip.depth())))
		case 3:
			n, err := ip.levelToRelative(argv[2])
			if err != nil {
				return errResult(err)
			}
			f := ip.frameAt(n)
			return okResult(f.command)
		default:
			return errResult(arityError("info level ?number?"))
		}

	case "body":
		if len(argv) != 3 {
			return errResult(arityError("info body procName"))
		}
		body, ok := ip.procBody(argv[2])
		if !ok {
			return errResult(newErrorf(ENAME, "%q isn't a procedure", argv[2]))
		}
		return okResult(body)

	case "args":
		if len(argv) != 3 {
			return errResult(arityError("info args procName"))
		}
		formals, ok := ip.procFormals(argv[2])
		if !ok {
			return errResult(newErrorf(ENAME, "%q isn't a procedure", argv[2]))
		}
		return okResult(joinList(formals))

	case "procs":
		pattern := ""
		if len(argv) == 3 {
			pattern = argv[2]
		}
		var names []string
		for _, n := range ip.commands.names(pattern, false) {
			if ip.isProc(n) {
				names = append(names, n)
			}
		}
		return okResult(joinList(names))

	case "script":
		v, _ := ip.GetVariable("::_script_")
		return okResult(v)

	default:
		return errResult(newErrorf(ENAME,
			"unknown or ambiguous subcommand %q: must be args, body, commands, exists, level, procs, script, or vars", argv[1]))
	}
}

// cmdClock implements 'clock seconds', 'clock clicks', and 'clock
// format'. Timestamps are taken from the host clock; this is the one
// place the interpreter touches wall-clock time.
func cmdClock(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) < 2 {
		return errResult(arityError("clock subcommand ?arg ...?"))
	}
	switch argv[1] {
	case "seconds":
		return okResult(formatInt(time.Now().Unix()))
	case "clicks":
		return okResult(formatInt(time.Now().UnixNano()))
	case "format":
		if len(argv) < 3 {
			return errResult(arityError("clock format clockValue ?-format fmt?"))
		}
		secs, err := coerceInt(argv[2])
		if err != nil {
			return errResult(err)
		}
		layout := "Mon Jan 02 15:04:05 MST 2006"
		if len(argv) == 5 && argv[3] == "-format" {
			layout = tclToGoLayout(argv[4])
		}
		return okResult(time.Unix(secs, 0).Format(layout))
	default:
		return errResult(newErrorf(ENAME, "bad option %q: must be clicks, format, or seconds", argv[1]))
	}
}

// tclToGoLayout translates the handful of strftime-style verbs this
// interpreter supports in 'clock format -format' into Go's reference-
// time layout string.
func tclToGoLayout(spec string) string {
	r := strings.NewReplacer(
		"%Y", "2006", "%m", "01", "%d", "02",
		"%H", "15", "%M", "04", "%S", "05",
		"%a", "Mon", "%A", "Monday", "%b", "Jan", "%B", "January",
	)
	return r.Replace(spec)
}

// cmdFormat implements a restricted printf: %s, %d, %x, %X, %o, %b,
// %f, %e, %g, %c, and %%, delegating to fmt.Fprintf once each numeric
// argument is coerced to an integer or float (so an out-of-range or
// non-numeric argument reports a script-level error rather than Go's
// "%!d(string=...)").
func cmdFormat(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) < 2 {
		return errResult(arityError("format formatString ?arg ...?"))
	}
	spec := argv[1]
	args := argv[2:]
	var out strings.Builder
	ai := 0
	for i := 0; i < len(spec); i++ {
		c := spec[i]
		if c != '%' {
			out.WriteByte(c)
			continue
		}
		j := i + 1
		for j < len(spec) && strings.ContainsRune("-+0123456789.", rune(spec[j])) {
			j++
		}
		if j >= len(spec) {
			return errResult(newError(EPARSE, "format string ended in middle of field specifier"))
		}
		verb := spec[j]
		width := spec[i+1 : j]
		if verb == '%' {
			out.WriteByte('%')
			i = j
			continue
		}
		if ai >= len(args) {
			return errResult(newError(EPARSE, "not enough arguments for all format specifiers"))
		}
		arg := args[ai]
		ai++
		gospec := "%" + width + string(verb)
		switch verb {
		case 'd', 'x', 'X', 'o', 'b':
			n, err := coerceInt(arg)
			if err != nil {
				return errResult(err)
			}
			fmt.Fprintf(&out, gospec, n)
		case 'f', 'e', 'g':
			f, err := coerceFloat(arg)
			if err != nil {
				return errResult(err)
			}
			fmt.Fprintf(&out, gospec, f)
		case 's':
			fmt.Fprintf(&out, gospec, arg)
		case 'c':
			n, err := coerceInt(arg)
			if err != nil {
				return errResult(err)
			}
			out.WriteRune(rune(n))
		default:
			return errResult(newErrorf(EPARSE, "bad field specifier %q", string(verb)))
		}
		i = j
	}
	return okResult(out.String())
}

// cmdInterp implements a slim 'interp create/eval/alias/delete', using
// the interps handle slab and aliasOwner map for nested interpreters,
// isolated from the parent except for explicit aliases (§9).
func cmdInterp(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) < 2 {
		return errResult(arityError("interp subcommand ?arg ...?"))
	}
	switch argv[1] {
	case "create":
		if len(argv) != 2 && len(argv) != 3 {
			return errResult(arityError("interp create ?name?"))
		}
		child := NewInterpreter()
		child.parent = ip
		h := ip.interps.alloc(child)
		return okResult(string(h))

	case "eval":
		if len(argv) < 4 {
			return errResult(arityError("interp eval name arg ?arg ...?"))
		}
		child, cerr := ip.resolveInterp(argv[2])
		if cerr != nil {
			return errResult(cerr)
		}
		src := argv[3]
		if len(argv) > 4 {
			src = joinList(argv[3:])
		}
		code, terr := child.Eval(src)
		if terr != nil {
			return newResult(code, terr.Message, terr)
		}
		return newResult(code, child.Result(), nil)

	case "delete":
		if len(argv) != 3 {
			return errResult(arityError("interp delete name"))
		}
		ip.interps.free(handle(argv[2]))
		return okResult("")

	case "alias":
		if len(argv) != 5 {
			return errResult(arityError("interp alias name aliasName targetName"))
		}
		child, cerr := ip.resolveInterp(argv[2])
		if cerr != nil {
			return errResult(cerr)
		}
		target := argv[4]
		child.commands.define(argv[3], func(sub *Interpreter, a []string, d []string) *TclResult {
			return ip.InvokeCommand(append([]string{target}, a[1:]...))
		}, nil)
		ip.aliasOwner[argv[3]] = ip
		return okResult("")

	default:
		return errResult(newErrorf(ENAME, "bad option %q: must be alias, create, delete, or eval", argv[1]))
	}
}

func (ip *Interpreter) resolveInterp(name string) (*Interpreter, *TclError) {
	obj, ok := ip.interps.get(handle(name))
	if !ok {
		return nil, newErrorf(ENAME, "could not find interpreter %q", name)
	}
	return obj.(*Interpreter), nil
}
