//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package picol

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// maxTokenSize is the reference token, variable, and buffer size
// (§6 "Limits"). ioBufferSize, the read-buffer size for file I/O, is
// 64x that. Only ioBufferSize is derived from it: token, variable,
// and buffer lengths are not checked against maxTokenSize.
const (
	maxTokenSize = 4096
	ioBufferSize = 64 * maxTokenSize
)

// recursionCap returns the platform-specific recursion depth limit
// (§3 invariants): 160 on POSIX-like hosts, 75 on Windows-like hosts.
func recursionCap() int {
	if runtime.GOOS == "windows" {
		return 75
	}
	return 160
}

// Interpreter owns all mutable interpreter state: the call-frame
// stack (bottom = globals), the command registry, the handle slabs
// for arrays/channels/sub-interpreters, the current result, the
// currently executing command's text and a traceback under
// construction (for ::errorInfo), and the command tracer.
type Interpreter struct {
	frames   []*frame
	commands *registry
	arrays   *handleSlab
	channels *handleSlab
	interps  *handleSlab
	parent   *Interpreter // nil for a top-level interpreter

	result     string
	current    string   // textual form of the most recently invoked command
	traceback  []string // enclosing call frames' command text, innermost first
	depthCap   int
	trace      *tracer
	aliasOwner map[string]*Interpreter // alias name -> target interpreter, for 'interp alias'

	Stdout io.Writer
	Stdin  io.Reader
}

// NewInterpreter builds a fresh interpreter with all core commands
// registered and the globals named by §6 installed: argv0, argv,
// argc, auto_path, ::errorInfo, and the ::env array.
func NewInterpreter() *Interpreter {
	ip := &Interpreter{
		commands:   newRegistry(),
		arrays:     newHandleSlab(handleArray),
		channels:   newHandleSlab(handleChan),
		interps:    newHandleSlab(handleInterp),
		trace:      newTracer(),
		depthCap:   recursionCap(),
		aliasOwner: make(map[string]*Interpreter),
		Stdout:     os.Stdout,
		Stdin:      os.Stdin,
	}
	ip.frames = []*frame{newFrame("")}
	ip.registerBuiltins()
	ip.SetVariable("::errorInfo", "")
	ip.SetVariable("argv0", "")
	ip.SetVariable("argv", "")
	ip.SetIntVariable("argc", 0)
	ip.SetVariable("auto_path", "")
	// create the virtual ::env array now; its elements are filled from
	// the process environment on first read
	ip.arrayHandleFor("env", true, true)
	return ip
}

// Write implements io.Writer so callers can write through the
// interpreter with fmt.Fprintf(ip, ...); it forwards to ip.Stdout.
func (ip *Interpreter) Write(p []byte) (int, error) {
	return ip.Stdout.Write(p)
}

// Result returns the interpreter's most recent result value.
func (ip *Interpreter) Result() string { return ip.result }

// SetTrace enables or disables command tracing.
func (ip *Interpreter) SetTrace(enabled bool) { ip.trace.enabled = enabled }

// RegisterCommand adds a native command to the registry. Registering
// an already-defined name is an error; only 'proc' may override.
func (ip *Interpreter) RegisterCommand(name string, fn CommandFunc, data []string) *TclError {
	return ip.commands.register(name, fn, data)
}

// GetVar reads a variable, reporting its existence via ok rather than
// an error (convenient for embedders that just want a value or a
// default).
func (ip *Interpreter) GetVar(name string) (value string, ok bool) {
	v, err := ip.GetVariable(name)
	return v, err == nil
}

// SetVar sets a variable.
func (ip *Interpreter) SetVar(name, value string) *TclError {
	return ip.SetVariable(name, value)
}

// SetIntVar formats an integer and sets it.
func (ip *Interpreter) SetIntVar(name string, value int64) *TclError {
	return ip.SetIntVariable(name, value)
}

// GetGlobalVar/SetGlobalVar are the "::"-qualified variants.
func (ip *Interpreter) GetGlobalVar(name string) (string, bool) {
	return ip.GetVar("::" + strings.TrimPrefix(name, "::"))
}

func (ip *Interpreter) SetGlobalVar(name, value string) *TclError {
	return ip.SetVar("::"+strings.TrimPrefix(name, "::"), value)
}

// SetResult, SetIntResult, SetBoolResult, and SetFmtResult are
// convenience constructors for handlers building a successful result.
func (ip *Interpreter) SetResult(v string) *TclResult { return okResult(v) }

func (ip *Interpreter) SetIntResult(v int64) *TclResult {
	return okResult(strconv.FormatInt(v, 10))
}

func (ip *Interpreter) SetBoolResult(b bool) *TclResult { return okResult(formatBool(b)) }

func (ip *Interpreter) SetFmtResult(format string, args ...interface{}) *TclResult {
	return okResult(fmt.Sprintf(format, args...))
}

// Err raises an error with the EUSER code and returns the Err return
// code as a TclResult, matching the 'error' command's own category.
func (ip *Interpreter) Err(msg string) *TclResult {
	return errResult(newError(EUSER, msg))
}

// Err1 raises a formatted error with a single substitution.
func (ip *Interpreter) Err1(format string, arg interface{}) *TclResult {
	return errResult(newErrorf(EUSER, format, arg))
}

// InvokeCommand dispatches argv[0] through the registry, falling back
// to a registered 'unknown' command on a miss, recording traceback
// state for ::errorInfo.
func (ip *Interpreter) InvokeCommand(argv []string) *TclResult {
	if len(argv) < 1 {
		return errResultf(EARITY, "InvokeCommand called without arguments")
	}
	name := argv[0]
	e, ok := ip.commands.lookup(name)
	if !ok {
		if u, uok := ip.commands.lookup("unknown"); uok {
			e = u
			argv = append([]string{"unknown"}, argv...)
		} else {
			return errResultf(ENAME, "invalid command name %q", name)
		}
	}
	ip.current = joinList(argv)
	ip.trace.command(ip.depth(), argv)
	r := e.fn(ip, argv, e.data)
	ip.result = r.Result()
	return r
}

// Eval runs source as a full script (§6 embedding API). The result is
// left in ip.Result(), and ::errorInfo is populated on error.
func (ip *Interpreter) Eval(source string) (ReturnCode, *TclError) {
	ip.traceback = nil
	r := ip.evaluate(source, modeEval)
	ip.result = r.Result()
	if r.ReturnCode() == Err {
		ip.recordErrorInfo(r.Error())
	}
	return r.ReturnCode(), r.Error()
}

// Source reads path, binds ::_script_ to it, evaluates the contents,
// and clears ::_script_ again.
func (ip *Interpreter) Source(path string) (ReturnCode, *TclError) {
	data, err := os.ReadFile(path)
	if err != nil {
		e := wrapError(EHOST, err, fmt.Sprintf("couldn't read file %q", path))
		return Err, e
	}
	ip.SetVariable("::_script_", path)
	code, terr := ip.Eval(string(data))
	ip.SetVariable("::_script_", "")
	return code, terr
}

// recordErrorInfo builds ::errorInfo: the error message, then the
// currently executing command, then each enclosing call frame's
// command line, each introduced the way §4.6 specifies.
func (ip *Interpreter) recordErrorInfo(e *TclError) {
	if e == nil {
		return
	}
	var b strings.Builder
	b.WriteString(e.Message)
	if ip.current != "" {
		fmt.Fprintf(&b, "\n    invoked from within\n%q", ip.current)
	}
	for _, cmd := range ip.traceback {
		if cmd != "" {
			fmt.Fprintf(&b, "\n    invoked from within\n%q", cmd)
		}
	}
	ip.SetVariable("::errorInfo", b.String())
}

// causeOf unwraps a TclError's wrapped host error via
// github.com/pkg/errors, for embedders that need the original
// os/syscall error behind e.g. a failed 'open'. An error that wraps no
// host error is returned as is.
func causeOf(e *TclError) error {
	if e == nil {
		return nil
	}
	if e.cause == nil {
		return e
	}
	return errors.Cause(e.cause)
}
