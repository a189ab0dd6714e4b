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

func TestArraySetGet(t *testing.T) {
	ip := NewInterpreter()
	evalOK(t, ip, "array set colors {red ff0000 green 00ff00}")
	assert.Equal(t, "ff0000", evalOK(t, ip, "set colors(red)"))
	assert.Equal(t, "1", evalOK(t, ip, "array exists colors"))
	assert.Equal(t, "2", evalOK(t, ip, "array size colors"))
}

func TestArrayNames(t *testing.T) {
	ip := NewInterpreter()
	evalOK(t, ip, "array set a {x 1 y 2 z 3}")
	assert.Equal(t, "x y z", evalOK(t, ip, "array names a"))
}

func TestArrayUnset(t *testing.T) {
	ip := NewInterpreter()
	evalOK(t, ip, "array set a {x 1 y 2}")
	evalOK(t, ip, "array unset a x")
	assert.Equal(t, "y", evalOK(t, ip, "array names a"))
}

func TestArrayStatistics(t *testing.T) {
	ip := NewInterpreter()
	evalOK(t, ip, "array set a {x 1}")
	code, err := ip.Eval("array statistics a")
	if err != nil || code != Ok {
		t.Fatalf("array statistics failed: %v", err)
	}
	fields, lerr := parseList(ip.Result())
	if lerr != nil || len(fields) != arrayBuckets {
		t.Fatalf("expected %d bucket depths, got %v", arrayBuckets, fields)
	}
}
