//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package picol

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutsWritesToStdout(t *testing.T) {
	ip := NewInterpreter()
	var buf bytes.Buffer
	ip.Stdout = &buf
	evalOK(t, ip, "puts hello")
	assert.Equal(t, "hello\n", buf.String())
}

func TestPutsNonewline(t *testing.T) {
	ip := NewInterpreter()
	var buf bytes.Buffer
	ip.Stdout = &buf
	evalOK(t, ip, "puts -nonewline hi")
	assert.Equal(t, "hi", buf.String())
}

func TestFileRoundTrip(t *testing.T) {
	ip := NewInterpreter()
	path := filepath.Join(t.TempDir(), "scratch.txt")

	handle := evalOK(t, ip, "open "+path+" w")
	require.NotEmpty(t, handle)
	evalOK(t, ip, "puts "+handle+" {line one}")
	evalOK(t, ip, "close "+handle)

	handle2 := evalOK(t, ip, "open "+path+" r")
	content := evalOK(t, ip, "read "+handle2)
	assert.Equal(t, "line one\n", content)
	evalOK(t, ip, "close "+handle2)
}

func TestOpenMissingFile(t *testing.T) {
	ip := NewInterpreter()
	_, err := ip.Eval("open /nonexistent/path/picol-test r")
	if err == nil || err.Code != EHOST {
		t.Fatalf("expected EHOST error, got %v", err)
	}
}
