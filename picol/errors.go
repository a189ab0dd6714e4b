//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package picol

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCode classifies the kind of failure behind a TclError, per the
// error taxonomy of the interpreter: parse, name, arity, type, range,
// arithmetic, host, resource, and user errors all flow through the
// same ERR return code, but carry a code so embedders and 'catch' can
// tell them apart without parsing the message.
type ErrorCode int

const (
	_ ErrorCode = iota
	EOK
	EPARSE    // unbalanced brackets, malformed list, malformed number literal
	ENAME     // unknown variable, command, subcommand, or array
	EARITY    // wrong # args
	ETYPE     // expected integer/boolean/pointer but got something else
	ERANGE    // list index or match out of range
	EARITH    // divide by zero and friends
	EHOST     // file not found, channel not open, other OS-level failure
	ERESOURCE // buffer/stack overflow, recursion cap exceeded, empty call stack
	EUSER     // raised by the 'error' command
)

// ReturnCode is the interpreter's control-flow channel, propagated
// alongside the result string. It unifies errors, 'return', 'break',
// and 'continue' into one small tagged value instead of masking a
// status into the result.
type ReturnCode int

const (
	Ok ReturnCode = iota
	Err
	Return
	Break
	Continue
)

// String renders a ReturnCode as its lowercase name ("ok", "error",
// ...), for diagnostics.
func (c ReturnCode) String() string {
	switch c {
	case Ok:
		return "ok"
	case Err:
		return "error"
	case Return:
		return "return"
	case Break:
		return "break"
	case Continue:
		return "continue"
	default:
		return "unknown"
	}
}

// TclError is the error type produced by the kernel and every
// built-in command. It implements the standard error interface so it
// composes with errors.Wrap/errors.Cause, while ErrorCode lets 'catch'
// and embedders branch on the failure category.
type TclError struct {
	Code    ErrorCode
	Message string
	cause   error
}

// Error returns the script-visible message.
func (e *TclError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// Unwrap exposes the wrapped host error, if any, to errors.Is/As.
// github.com/pkg/errors' Cause() does not follow Unwrap; causeOf
// applies it to the wrapped error directly.
func (e *TclError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// newError creates a TclError with no wrapped cause.
func newError(code ErrorCode, msg string) *TclError {
	return &TclError{Code: code, Message: msg}
}

// newErrorf creates a TclError with a formatted message.
func newErrorf(code ErrorCode, format string, args ...interface{}) *TclError {
	return newError(code, fmt.Sprintf(format, args...))
}

// wrapError wraps a host-level error (e.g. from os.Open) using
// github.com/pkg/errors, preserving the original for Cause() while
// keeping a plain script-visible message.
func wrapError(code ErrorCode, cause error, msg string) *TclError {
	return &TclError{Code: code, Message: msg, cause: errors.Wrap(cause, msg)}
}

// Sentinel errors for the small number of argument-free failure
// conditions that embedders commonly compare by identity.
var (
	errCallStackEmpty = newError(ERESOURCE, "empty call stack")
	errRecursionLimit = newError(ERESOURCE, "too many nested evaluations")
)

// arityError is a convenience used by nearly every built-in command.
func arityError(usage string) *TclError {
	return newErrorf(EARITY, "wrong # args: should be %q", usage)
}

// TclResult is what every command function and the expression
// evaluator return: a return code, a result value, and (when the
// return code is Err) the originating TclError. Its accessors are
// nil-safe so a zero-value *TclResult behaves like a well-formed
// error result instead of panicking.
type TclResult struct {
	code ReturnCode
	val  string
	err  *TclError
}

// newResult builds a TclResult from its parts.
func newResult(code ReturnCode, val string, err *TclError) *TclResult {
	return &TclResult{code: code, val: val, err: err}
}

// okResult builds a successful TclResult carrying val.
func okResult(val string) *TclResult {
	return newResult(Ok, val, nil)
}

// errResult builds a failed TclResult from a TclError.
func errResult(e *TclError) *TclResult {
	msg := ""
	if e != nil {
		msg = e.Message
	}
	return newResult(Err, msg, e)
}

// errResultf builds a failed TclResult from a code and formatted message.
func errResultf(code ErrorCode, format string, args ...interface{}) *TclResult {
	return errResult(newErrorf(code, format, args...))
}

// Ok reports whether the result represents successful completion
// (return code Ok). A nil *TclResult is never ok.
func (r *TclResult) Ok() bool {
	if r == nil {
		return false
	}
	return r.code == Ok
}

// Result returns the result value. A nil *TclResult returns "<nil>"
// so a missing result is visibly distinguishable from an empty one.
func (r *TclResult) Result() string {
	if r == nil {
		return "<nil>"
	}
	return r.val
}

// ReturnCode returns the control-flow code. A nil *TclResult reports
// Err, the safe default for a result nobody built.
func (r *TclResult) ReturnCode() ReturnCode {
	if r == nil {
		return Err
	}
	return r.code
}

// ErrorCode returns the error category, or EOK if not an error result.
// A nil *TclResult reports ERESOURCE, matching the "bad state" this
// usually indicates.
func (r *TclResult) ErrorCode() ErrorCode {
	if r == nil {
		return ERESOURCE
	}
	if r.err == nil {
		return EOK
	}
	return r.err.Code
}

// ErrorMessage returns the error message, or "" if not an error result.
func (r *TclResult) ErrorMessage() string {
	if r == nil || r.err == nil {
		return ""
	}
	return r.err.Message
}

// Error returns the originating TclError, or nil.
func (r *TclResult) Error() *TclError {
	if r == nil {
		return nil
	}
	return r.err
}

// String implements fmt.Stringer, returning the result value (empty
// for a nil *TclResult, unlike Result()'s "<nil>" sentinel — String()
// is used for display, Result() for programmatic access).
func (r *TclResult) String() string {
	if r == nil {
		return ""
	}
	return r.val
}
