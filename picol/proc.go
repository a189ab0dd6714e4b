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

// A user-defined procedure is registered with two private-data
// strings: the whitespace-separated formal argument list and the
// body. One shared handler, procCall, serves every proc; 'rename'
// therefore works on user procs for free since the private data
// travels with the registry entry.

// defineProc installs or replaces name as a user procedure, the
// 'proc' built-in's job (§4.4).
func (ip *Interpreter) defineProc(name, formals, body string) {
	ip.commands.define(name, procCall, []string{formals, body})
}

func procCall(ip *Interpreter, argv []string, data []string) *TclResult {
	formals := strings.Fields(data[0])
	return ip.invokeProcedure(argv[0], formals, data[1], argv)
}

// invokeProcedure implements §4.4's call steps: push a frame, bind
// formals (the trailing formal "args" collects the rest as a list),
// enforce the recursion cap, evaluate the body, translate
// RETURN->OK, and always pop the frame on the way out.
func (ip *Interpreter) invokeProcedure(name string, formals []string, body string, argv []string) *TclResult {
	actuals := argv[1:]
	hasArgs := len(formals) > 0 && formals[len(formals)-1] == "args"
	want := len(formals)
	if hasArgs {
		want--
	}
	if len(actuals) < want || (!hasArgs && len(actuals) != want) {
		return errResult(arityError(procUsage(name, formals)))
	}

	ip.pushFrame(joinList(argv))
	if ip.depth() > ip.depthCap {
		ip.popFrame()
		return errResult(errRecursionLimit)
	}

	for i, f := range formals {
		if f == "args" && hasArgs {
			ip.SetVariable(f, joinList(actuals[i:]))
			break
		}
		ip.SetVariable(f, actuals[i])
	}

	r := ip.evaluate(body, modeEval)
	switch {
	case r.ReturnCode() == Return:
		r = okResult(r.Result())
	case r.ReturnCode() == Err && r.Error() != nil:
		ip.traceback = append(ip.traceback, ip.currentFrame().command)
	}
	ip.popFrame()
	return r
}

// procUsage renders the "wrong # args" usage string for a proc,
// naming "args" plainly rather than bracketing it: picol shows the
// formal list as-is.
func procUsage(name string, formals []string) string {
	parts := append([]string{name}, formals...)
	return strings.Join(parts, " ")
}

// procFormals and procBody expose a proc's private data for 'info
// args'/'info body'/'info procs'. ok is false if name isn't a
// user-defined procedure.
func (ip *Interpreter) procFormals(name string) (formals []string, ok bool) {
	e, found := ip.commands.lookup(name)
	if !found || e.data == nil {
		return nil, false
	}
	return strings.Fields(e.data[0]), true
}

func (ip *Interpreter) procBody(name string) (body string, ok bool) {
	e, found := ip.commands.lookup(name)
	if !found || e.data == nil || len(e.data) < 2 {
		return "", false
	}
	return e.data[1], true
}

func (ip *Interpreter) isProc(name string) bool {
	_, ok := ip.procBody(name)
	return ok
}

// Uplevel evaluates body against the frame n levels above the
// current one (0 is the current frame), restoring the original frame
// stack afterward (§4.4 "uplevel").
func (ip *Interpreter) Uplevel(n int, body string) *TclResult {
	idx := len(ip.frames) - 1 - n
	if idx < 0 {
		idx = 0
	}
	saved := ip.frames
	ip.frames = ip.frames[:idx+1]
	r := ip.evaluate(body, modeEval)
	ip.frames = saved
	return r
}

// levelToRelative converts a level spec ("N" relative, "#N" absolute,
// "#0" meaning the global frame) into the relative level Uplevel
// expects.
func (ip *Interpreter) levelToRelative(spec string) (int, *TclError) {
	if strings.HasPrefix(spec, "#") {
		abs, err := strconv.Atoi(spec[1:])
		if err != nil || abs < 0 {
			return 0, newErrorf(EPARSE, "bad level %q", spec)
		}
		return ip.depth() - abs, nil
	}
	rel, err := strconv.Atoi(spec)
	if err != nil || rel < 0 {
		return 0, newErrorf(EPARSE, "bad level %q", spec)
	}
	return rel, nil
}

// globalRedirect installs a 'global'-style redirect placeholder for
// each name in the current frame. A no-op at the global frame itself.
func (ip *Interpreter) globalRedirect(names []string) {
	if ip.depth() == 0 {
		return
	}
	for _, n := range names {
		ip.installRedirect(n, nil)
	}
}

// variableRedirect implements 'variable name ?value?': at global
// scope it just sets the value (if any); inside a proc it installs a
// redirect, seeding the global with initial the first time it's
// created.
func (ip *Interpreter) variableRedirect(name string, initial *string) *TclError {
	if ip.depth() == 0 {
		if initial != nil {
			return ip.SetVariable(name, *initial)
		}
		return nil
	}
	ip.installRedirect(name, initial)
	return nil
}
