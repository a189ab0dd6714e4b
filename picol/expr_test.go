//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package picol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExprSingleOperatorForm(t *testing.T) {
	ip := NewInterpreter()
	assert.Equal(t, "7", evalOK(t, ip, "expr 3 + 4"))
	assert.Equal(t, "24", evalOK(t, ip, "expr 2 * 3 * 4"))
}

func TestExprRejectsMixedOperators(t *testing.T) {
	ip := NewInterpreter()
	_, err := ip.Eval("expr 1 + 2 * 3")
	if err == nil {
		t.Fatal("expected an error for mixed operators in the single-operator expr form")
	}
}

func TestExprDivideByZero(t *testing.T) {
	ip := NewInterpreter()
	_, err := ip.Eval("expr 1 / 0")
	if err == nil || err.Code != EARITH {
		t.Fatalf("expected EARITH, got %v", err)
	}
}

func TestExprDivideByZeroNoSpaces(t *testing.T) {
	ip := NewInterpreter()
	code, err := ip.Eval("catch {expr 1/0} e")
	if err != nil || code != Ok {
		t.Fatalf("catch itself failed: %v", err)
	}
	assert.Equal(t, "1", ip.Result())
	assert.Equal(t, "divide by zero", evalOK(t, ip, "set e"))
}

func TestExprSingleWordMultiplication(t *testing.T) {
	ip := NewInterpreter()
	evalOK(t, ip, "set a {}")
	evalOK(t, ip, "foreach x {1 2 3 4} { lappend a [expr $x*$x] }")
	assert.Equal(t, "1 4 9 16", evalOK(t, ip, "set a"))
}

func TestExprPrecedenceClimbing(t *testing.T) {
	ip := NewInterpreter()
	assert.Equal(t, "14", evalOK(t, ip, "exprp {2 + 3 * 4}"))
	assert.Equal(t, "20", evalOK(t, ip, "exprp {(2 + 3) * 4}"))
	assert.Equal(t, "1", evalOK(t, ip, "exprp {1 && (0 || 1)}"))
}

func TestExprPrecedenceVariablesAndCommands(t *testing.T) {
	ip := NewInterpreter()
	ip.Eval("set x 10")
	assert.Equal(t, "15", evalOK(t, ip, "exprp {$x + 5}"))
	assert.Equal(t, "11", evalOK(t, ip, "exprp {[abs -5] + [abs 6]}"))
}

func TestMathFunctions(t *testing.T) {
	ip := NewInterpreter()
	assert.Equal(t, "5", evalOK(t, ip, "abs -5"))
	assert.Equal(t, "9", evalOK(t, ip, "max 3 9 1"))
	assert.Equal(t, "1", evalOK(t, ip, "min 3 9 1"))
}
