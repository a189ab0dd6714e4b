//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package picol

import "testing"

func TestCommandSet(t *testing.T) {
	ip := NewInterpreter()
	code, err := ip.Eval("set foo bar")
	if err != nil {
		t.Fatalf("failed to invoke command set: %v", err)
	}
	if code != Ok {
		t.Errorf("expected Ok, got %s", code)
	}
	if ip.Result() != "bar" {
		t.Errorf("set failed to affect result of interpreter, got %q", ip.Result())
	}
	val, ok := ip.GetVar("foo")
	if !ok || val != "bar" {
		t.Errorf("unexpected value %q for variable foo", val)
	}
}

func TestCommandSetUndefined(t *testing.T) {
	ip := NewInterpreter()
	_, err := ip.Eval("set foo")
	if err == nil {
		t.Fatal("expected error state")
	}
	if err.Code != ENAME {
		t.Errorf("expected ENAME, got %v", err.Code)
	}
}

func TestProcAndCall(t *testing.T) {
	ip := NewInterpreter()
	if _, err := ip.Eval("proc double {x} { expr $x * 2 }"); err != nil {
		t.Fatalf("failed to define proc: %v", err)
	}
	code, err := ip.Eval("double 21")
	if err != nil {
		t.Fatalf("failed to call proc: %v", err)
	}
	if code != Ok || ip.Result() != "42" {
		t.Errorf("double 21 = %q, want 42", ip.Result())
	}
}

func TestProcArgsTail(t *testing.T) {
	ip := NewInterpreter()
	if _, err := ip.Eval("proc sum {args} { set total 0; foreach x $args { set total [expr $total + $x] }; set total }"); err != nil {
		t.Fatalf("failed to define proc: %v", err)
	}
	if _, err := ip.Eval("sum 1 2 3 4"); err != nil {
		t.Fatalf("failed to call proc: %v", err)
	}
	if ip.Result() != "10" {
		t.Errorf("sum 1 2 3 4 = %q, want 10", ip.Result())
	}
}

func TestProcArityError(t *testing.T) {
	ip := NewInterpreter()
	ip.Eval("proc needsOne {x} { set x }")
	_, err := ip.Eval("needsOne")
	if err == nil || err.Code != EARITY {
		t.Fatalf("expected arity error, got %v", err)
	}
}

func TestRecursionLimit(t *testing.T) {
	ip := NewInterpreter()
	ip.Eval("proc loop {} { loop }")
	_, err := ip.Eval("loop")
	if err == nil || err.Code != ERESOURCE {
		t.Fatalf("expected resource error from recursion limit, got %v", err)
	}
}

func TestIfElse(t *testing.T) {
	ip := NewInterpreter()
	ip.Eval("if {1} { set foo bar } else { set foo quux }")
	if ip.Result() != "bar" {
		t.Errorf("if result = %q, want bar", ip.Result())
	}
	ip.Eval("if {0} { set foo bar } else { set foo quux }")
	if ip.Result() != "quux" {
		t.Errorf("if-else result = %q, want quux", ip.Result())
	}
}

func TestWhileLoop(t *testing.T) {
	ip := NewInterpreter()
	ip.Eval("set i 0; set acc 0; while {$i < 5} { set acc [expr $acc + $i]; incr i }; set acc")
	if ip.Result() != "10" {
		t.Errorf("while loop acc = %q, want 10", ip.Result())
	}
}

func TestForeachMultiVar(t *testing.T) {
	ip := NewInterpreter()
	ip.Eval("set out {}; foreach {a b} {1 2 3 4} { set out [concat $out $a-$b] }; set out")
	if ip.Result() != "1-2 3-4" {
		t.Errorf("foreach multi-var out = %q, want '1-2 3-4'", ip.Result())
	}
}

func TestCatch(t *testing.T) {
	ip := NewInterpreter()
	ip.Eval("catch {error boom} msg")
	val, _ := ip.GetVar("msg")
	if val != "boom" {
		t.Errorf("catch msg = %q, want boom", val)
	}
}

func TestGlobalAndProcScope(t *testing.T) {
	ip := NewInterpreter()
	ip.Eval("set counter 0")
	ip.Eval("proc bump {} { global counter; incr counter }")
	ip.Eval("bump; bump; bump")
	val, _ := ip.GetVar("counter")
	if val != "3" {
		t.Errorf("counter = %q, want 3", val)
	}
}

func TestUplevel(t *testing.T) {
	ip := NewInterpreter()
	ip.Eval("proc setCaller {} { uplevel 1 {set fromCallee yes} }")
	ip.Eval("setCaller")
	val, ok := ip.GetVar("fromCallee")
	if !ok || val != "yes" {
		t.Errorf("uplevel did not set caller's variable, got %q ok=%v", val, ok)
	}
}

func TestRename(t *testing.T) {
	ip := NewInterpreter()
	ip.Eval("proc greet {} { set result hi }")
	ip.Eval("rename greet salute")
	code, err := ip.Eval("salute")
	if err != nil || code != Ok || ip.Result() != "hi" {
		t.Errorf("renamed proc call failed: code=%v err=%v result=%q", code, err, ip.Result())
	}
}

func TestErrorInfoTraceback(t *testing.T) {
	ip := NewInterpreter()
	ip.Eval("proc inner {} { error boom }")
	ip.Eval("proc outer {} { inner }")
	_, err := ip.Eval("outer")
	if err == nil {
		t.Fatal("expected error")
	}
	info, _ := ip.GetVar("::errorInfo")
	if info == "" {
		t.Error("expected ::errorInfo to be populated")
	}
}

func TestBreakContinue(t *testing.T) {
	ip := NewInterpreter()
	ip.Eval("set out {}; for {set i 0} {$i < 5} {incr i} { if {$i == 2} { continue }; if {$i == 4} { break }; set out [concat $out $i] }; set out")
	if ip.Result() != "0 1 3" {
		t.Errorf("break/continue out = %q, want '0 1 3'", ip.Result())
	}
}

func TestBreakLeaksThroughCommandSubstitution(t *testing.T) {
	ip := NewInterpreter()
	ip.Eval("set out {}; foreach x {1 2 3} { if {$x == 2} { lappend out [break] }; lappend out $x }")
	if ip.Result() != "1" {
		t.Errorf("foreach with [break] nested in a word = %q, want '1'", ip.Result())
	}
}

func TestReturnLeaksThroughCommandSubstitution(t *testing.T) {
	ip := NewInterpreter()
	code, err := ip.Eval("proc p {} { set ignored [return hi]; return notreached }; p")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != Ok || ip.Result() != "hi" {
		t.Errorf("code=%v result=%q, want Ok 'hi'", code, ip.Result())
	}
}

func TestEnvArray(t *testing.T) {
	ip := NewInterpreter()
	t.Setenv("PICOL_TEST_VAR", "hello")
	val, err := ip.GetVariable("env(PICOL_TEST_VAR)")
	if err != nil {
		t.Fatalf("failed to read env var: %v", err)
	}
	if val != "hello" {
		t.Errorf("env(PICOL_TEST_VAR) = %q, want hello", val)
	}
}
