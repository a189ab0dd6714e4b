//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package picol

import "strings"

// registerControlCommands installs the control-flow and procedure
// vocabulary: if/while/for/foreach/switch, catch/error, return/break/
// continue/eval, and the scoping trio proc/global/variable, plus
// rename and uplevel.
func registerControlCommands(ip *Interpreter) {
	ip.commands.define("if", cmdIf, nil)
	ip.commands.define("while", cmdWhile, nil)
	ip.commands.define("for", cmdFor, nil)
	ip.commands.define("foreach", cmdForeach, nil)
	ip.commands.define("switch", cmdSwitch, nil)
	ip.commands.define("catch", cmdCatch, nil)
	ip.commands.define("error", cmdError, nil)
	ip.commands.define("eval", cmdEval, nil)
	ip.commands.define("return", cmdReturn, nil)
	ip.commands.define("break", cmdBreak, nil)
	ip.commands.define("continue", cmdContinue, nil)
	ip.commands.define("proc", cmdProc, nil)
	ip.commands.define("rename", cmdRename, nil)
	ip.commands.define("uplevel", cmdUplevel, nil)
	ip.commands.define("global", cmdGlobal, nil)
	ip.commands.define("variable", cmdVariable, nil)
}

// cmdIf implements 'if test body ?elseif test body ...? ?else? ?body?',
// per §4.2's condition sugar (evalCondition) for every test argument.
func cmdIf(ip *Interpreter, argv []string, data []string) *TclResult {
	args := argv[1:]
	for len(args) > 0 {
		cond := args[0]
		if len(args) < 2 {
			return errResult(arityError("if test body"))
		}
		body := args[1]
		rest := args[2:]

		r := ip.evalCondition(cond)
		if !r.Ok() {
			return r
		}
		truthy, terr := coerceBool(r.Result())
		if terr != nil {
			return errResult(terr)
		}
		if truthy {
			return ip.evaluate(body, modeEval)
		}

		if len(rest) == 0 {
			return okResult("")
		}
		switch rest[0] {
		case "elseif":
			args = rest[1:]
			continue
		case "else":
			if len(rest) != 2 {
				return errResult(arityError("if test body else body"))
			}
			return ip.evaluate(rest[1], modeEval)
		default:
			if len(rest) == 1 {
				return ip.evaluate(rest[0], modeEval)
			}
			return errResult(newError(EPARSE, "bad if syntax"))
		}
	}
	return okResult("")
}

func cmdWhile(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) != 3 {
		return errResult(arityError("while test body"))
	}
	cond, body := argv[1], argv[2]
	for {
		r := ip.evalCondition(cond)
		if !r.Ok() {
			return r
		}
		truthy, terr := coerceBool(r.Result())
		if terr != nil {
			return errResult(terr)
		}
		if !truthy {
			return okResult("")
		}
		br := ip.evaluate(body, modeEval)
		switch br.ReturnCode() {
		case Err, Return:
			return br
		case Break:
			return okResult("")
		case Continue, Ok:
			// fall through to next iteration
		}
	}
}

func cmdFor(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) != 5 {
		return errResult(arityError("for start test next body"))
	}
	start, test, next, body := argv[1], argv[2], argv[3], argv[4]

	if r := ip.evaluate(start, modeEval); !r.Ok() {
		return r
	}
	for {
		r := ip.evalCondition(test)
		if !r.Ok() {
			return r
		}
		truthy, terr := coerceBool(r.Result())
		if terr != nil {
			return errResult(terr)
		}
		if !truthy {
			return okResult("")
		}
		br := ip.evaluate(body, modeEval)
		switch br.ReturnCode() {
		case Err, Return:
			return br
		case Break:
			return okResult("")
		}
		if nr := ip.evaluate(next, modeEval); !nr.Ok() {
			return nr
		}
	}
}

func cmdForeach(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) != 4 {
		return errResult(arityError("foreach varName list body"))
	}
	names, nerr := parseList(argv[1])
	if nerr != nil {
		return errResult(nerr)
	}
	if len(names) == 0 {
		return errResult(newError(EPARSE, "foreach varlist is empty"))
	}
	elems, lerr := parseList(argv[2])
	if lerr != nil {
		return errResult(lerr)
	}
	body := argv[3]

	for i := 0; i < len(elems); i += len(names) {
		for j, name := range names {
			v := ""
			if i+j < len(elems) {
				v = elems[i+j]
			}
			if err := ip.SetVariable(name, v); err != nil {
				return errResult(err)
			}
		}
		r := ip.evaluate(body, modeEval)
		switch r.ReturnCode() {
		case Err, Return:
			return r
		case Break:
			return okResult("")
		}
	}
	return okResult("")
}

// cmdSwitch implements 'switch value pattern body ?pattern body ...?',
// with "default" matching unconditionally and glob-style patterns
// compared via globMatch, falling through on an empty body ("-").
func cmdSwitch(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) < 4 {
		return errResult(arityError("switch value pattern body ?pattern body ...?"))
	}
	value := argv[1]
	arms := argv[2:]
	if len(arms) == 1 {
		listed, lerr := parseList(arms[0])
		if lerr != nil {
			return errResult(lerr)
		}
		arms = listed
	}
	if len(arms)%2 != 0 {
		return errResult(newError(EPARSE, "extra switch pattern with no body"))
	}

	for i := 0; i < len(arms); i += 2 {
		pat, body := arms[i], arms[i+1]
		if pat != "default" && !globMatch(pat, value, false) {
			continue
		}
		for body == "-" {
			i += 2
			if i >= len(arms) {
				return okResult("")
			}
			body = arms[i+1]
		}
		return ip.evaluate(body, modeEval)
	}
	return okResult("")
}

// cmdCatch implements 'catch script ?varName?': always returns Ok with
// the numeric return code of script's evaluation in its result, and
// (if varName is given) binds the script's result/error message there.
func cmdCatch(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) != 2 && len(argv) != 3 {
		return errResult(arityError("catch script ?varName?"))
	}
	r := ip.evaluate(argv[1], modeEval)
	if len(argv) == 3 {
		if err := ip.SetVariable(argv[2], r.Result()); err != nil {
			return errResult(err)
		}
	}
	return okResult(formatInt(int64(r.ReturnCode())))
}

// cmdError implements 'error message ?errorInfo? ?errorCode?': raises
// an EUSER error, optionally setting ::errorInfo to a caller-supplied
// traceback. When the error reaches a top-level Eval, Eval overwrites
// ::errorInfo with the traceback it builds itself.
func cmdError(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) < 2 || len(argv) > 4 {
		return errResult(arityError("error message ?info? ?code?"))
	}
	msg := argv[1]
	if len(argv) >= 3 && argv[2] != "" {
		ip.SetVariable("::errorInfo", argv[2])
	}
	if len(argv) == 4 {
		ip.SetVariable("::errorCode", argv[3])
	}
	return errResult(newError(EUSER, msg))
}

func cmdEval(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) < 2 {
		return errResult(arityError("eval arg ?arg ...?"))
	}
	src := argv[1]
	if len(argv) > 2 {
		src = joinList(argv[1:])
	}
	return ip.evaluate(src, modeEval)
}

func cmdReturn(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) > 2 {
		return errResult(arityError("return ?value?"))
	}
	v := ""
	if len(argv) == 2 {
		v = argv[1]
	}
	return newResult(Return, v, nil)
}

func cmdBreak(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) != 1 {
		return errResult(arityError("break"))
	}
	return newResult(Break, "", nil)
}

func cmdContinue(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) != 1 {
		return errResult(arityError("continue"))
	}
	return newResult(Continue, "", nil)
}

func cmdProc(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) != 4 {
		return errResult(arityError("proc name args body"))
	}
	ip.defineProc(argv[1], argv[2], argv[3])
	return okResult("")
}

func cmdRename(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) != 3 {
		return errResult(arityError("rename oldName newName"))
	}
	if err := ip.commands.rename(argv[1], argv[2]); err != nil {
		return errResult(err)
	}
	return okResult("")
}

func cmdUplevel(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) < 2 {
		return errResult(arityError("uplevel ?level? arg ?arg ...?"))
	}
	rest := argv[1:]
	level := 1
	if n, lerr := ip.levelToRelative(rest[0]); lerr == nil {
		if len(rest) > 1 {
			level = n
			rest = rest[1:]
		}
	}
	body := rest[0]
	if len(rest) > 1 {
		body = joinList(rest)
	}
	return ip.Uplevel(level, body)
}

func cmdGlobal(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) < 2 {
		return errResult(arityError("global varName ?varName ...?"))
	}
	ip.globalRedirect(argv[1:])
	return okResult("")
}

func cmdVariable(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) < 2 {
		return errResult(arityError("variable name ?value? ?name value ...?"))
	}
	args := argv[1:]
	for len(args) > 0 {
		name := args[0]
		if strings.Contains(name, "::") {
			name = name[strings.LastIndex(name, "::")+2:]
		}
		if len(args) >= 2 {
			v := args[1]
			if err := ip.variableRedirect(name, &v); err != nil {
				return errResult(err)
			}
			args = args[2:]
		} else {
			if err := ip.variableRedirect(name, nil); err != nil {
				return errResult(err)
			}
			args = args[1:]
		}
	}
	return okResult("")
}
