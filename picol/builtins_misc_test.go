//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package picol

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoCommandsAndProcs(t *testing.T) {
	ip := NewInterpreter()
	evalOK(t, ip, "proc myproc {} { return 1 }")

	names := evalOK(t, ip, "info commands myproc")
	assert.Equal(t, "myproc", names)

	args := evalOK(t, ip, "info args myproc")
	assert.Equal(t, "", args)

	body := evalOK(t, ip, "info body myproc")
	assert.True(t, strings.Contains(body, "return 1"))
}

func TestInfoExists(t *testing.T) {
	ip := NewInterpreter()
	assert.Equal(t, "0", evalOK(t, ip, "info exists nope"))
	evalOK(t, ip, "set here 1")
	assert.Equal(t, "1", evalOK(t, ip, "info exists here"))
}

func TestInfoLevel(t *testing.T) {
	ip := NewInterpreter()
	evalOK(t, ip, "proc depth1 {} { info level }")
	assert.Equal(t, "1", evalOK(t, ip, "depth1"))
}

func TestFormat(t *testing.T) {
	ip := NewInterpreter()
	assert.Equal(t, "x=42", evalOK(t, ip, "format x=%d 42"))
	assert.Equal(t, "50%", evalOK(t, ip, "format %d%% 50"))
}

func TestClockSeconds(t *testing.T) {
	ip := NewInterpreter()
	code, err := ip.Eval("clock seconds")
	if err != nil || code != Ok {
		t.Fatalf("clock seconds failed: %v", err)
	}
	if _, cerr := coerceInt(ip.Result()); cerr != nil {
		t.Fatalf("clock seconds did not return an integer: %q", ip.Result())
	}
}

func TestInterpCreateEval(t *testing.T) {
	ip := NewInterpreter()
	handle := evalOK(t, ip, "interp create")
	code, err := ip.Eval("interp eval " + handle + " {set x 99}")
	if err != nil || code != Ok {
		t.Fatalf("interp eval failed: %v", err)
	}
	assert.Equal(t, "99", ip.Result())

	_, topErr := ip.GetVariable("x")
	if topErr == nil {
		t.Error("child interpreter's variable leaked into the parent")
	}
}
