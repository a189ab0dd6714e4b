//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package picol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalOK(t *testing.T, ip *Interpreter, script string) string {
	t.Helper()
	code, err := ip.Eval(script)
	require.Nil(t, err, "script %q failed: %v", script, err)
	require.Equal(t, Ok, code)
	return ip.Result()
}

func TestStringLength(t *testing.T) {
	ip := NewInterpreter()
	assert.Equal(t, "5", evalOK(t, ip, "string length hello"))
}

func TestStringCaseConversion(t *testing.T) {
	ip := NewInterpreter()
	assert.Equal(t, "HELLO", evalOK(t, ip, "string toupper hello"))
	assert.Equal(t, "hello", evalOK(t, ip, "string tolower HELLO"))
}

func TestStringRange(t *testing.T) {
	ip := NewInterpreter()
	assert.Equal(t, "ell", evalOK(t, ip, "string range hello 1 3"))
	assert.Equal(t, "llo", evalOK(t, ip, "string range hello 2 end"))
}

func TestStringIndexClamps(t *testing.T) {
	ip := NewInterpreter()
	assert.Equal(t, "h", evalOK(t, ip, "string index hello -3"))
	assert.Equal(t, "o", evalOK(t, ip, "string index hello 99"))
}

func TestStringMatch(t *testing.T) {
	ip := NewInterpreter()
	assert.Equal(t, "1", evalOK(t, ip, "string match hel* hello"))
	assert.Equal(t, "0", evalOK(t, ip, "string match xyz* hello"))
	assert.Equal(t, "1", evalOK(t, ip, "string match -nocase HEL* hello"))
}

func TestStringTrim(t *testing.T) {
	ip := NewInterpreter()
	assert.Equal(t, "hi", evalOK(t, ip, "string trim {  hi  }"))
	assert.Equal(t, "hi  ", evalOK(t, ip, "string trimleft {  hi  }"))
}

func TestStringReverse(t *testing.T) {
	ip := NewInterpreter()
	assert.Equal(t, "cba", evalOK(t, ip, "string reverse abc"))
}

func TestStringMap(t *testing.T) {
	ip := NewInterpreter()
	assert.Equal(t, "xbxb", evalOK(t, ip, "string map {a x} abab"))
}

func TestListBuiltins(t *testing.T) {
	ip := NewInterpreter()
	assert.Equal(t, "3", evalOK(t, ip, "llength {a b c}"))
	assert.Equal(t, "b", evalOK(t, ip, "lindex {a b c} 1"))
	assert.Equal(t, "a b c d", evalOK(t, ip, "linsert {a b d} 2 c"))
	assert.Equal(t, "b c", evalOK(t, ip, "lrange {a b c d} 1 2"))
	assert.Equal(t, "1", evalOK(t, ip, "lsearch {a b c} b"))
}

func TestLsort(t *testing.T) {
	ip := NewInterpreter()
	assert.Equal(t, "1 2 3", evalOK(t, ip, "lsort -integer {3 1 2}"))
	assert.Equal(t, "a b c", evalOK(t, ip, "lsort {c a b}"))
	assert.Equal(t, "c b a", evalOK(t, ip, "lsort -decreasing {c a b}"))
}

func TestSplitJoin(t *testing.T) {
	ip := NewInterpreter()
	assert.Equal(t, "a b c", evalOK(t, ip, "split a,b,c ,"))
	assert.Equal(t, "a-b-c", evalOK(t, ip, "join {a b c} -"))
}
