//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package picol

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// channel wraps an open file (or the standard streams) behind a
// handle, with a buffered reader lazily attached for 'gets'/'read'.
type channel struct {
	file   *os.File
	reader *bufio.Reader
	owned  bool // true if 'open' opened it and 'close' must Close it, not os.Stdin/out/err
}

func (c *channel) bufReader() *bufio.Reader {
	if c.reader == nil {
		c.reader = bufio.NewReaderSize(c.file, ioBufferSize)
	}
	return c.reader
}

// registerIOCommands installs 'puts', 'gets', 'read', 'open', 'close',
// 'flush', and 'exit', all operating on the channels handle slab. The
// names "stdin", "stdout", and "stderr" are recognized directly,
// without requiring a prior 'open' (§4.9).
func registerIOCommands(ip *Interpreter) {
	ip.commands.define("puts", cmdPuts, nil)
	ip.commands.define("gets", cmdGets, nil)
	ip.commands.define("read", cmdRead, nil)
	ip.commands.define("open", cmdOpen, nil)
	ip.commands.define("close", cmdClose, nil)
	ip.commands.define("flush", cmdFlush, nil)
	ip.commands.define("exit", cmdExit, nil)
}

// resolveChannel resolves a channel name: the three standard streams
// are synthesized on demand; anything else must be a live handle from
// a prior 'open'.
func (ip *Interpreter) resolveChannel(name string) (*channel, *TclError) {
	switch name {
	case "stdin":
		return &channel{file: os.Stdin}, nil
	case "stdout":
		return &channel{file: os.Stdout}, nil
	case "stderr":
		return &channel{file: os.Stderr}, nil
	}
	v, ferr := ip.GetVariable(name)
	if ferr == nil {
		name = v
	}
	obj, ok := ip.channels.get(handle(name))
	if !ok {
		return nil, newErrorf(EHOST, "can not find channel named %q", name)
	}
	return obj.(*channel), nil
}

func cmdPuts(ip *Interpreter, argv []string, data []string) *TclResult {
	nonewline := false
	args := argv[1:]
	if len(args) > 0 && args[0] == "-nonewline" {
		nonewline = true
		args = args[1:]
	}
	if len(args) != 1 && len(args) != 2 {
		return errResult(arityError("puts ?-nonewline? ?channel? string"))
	}
	chanName := "stdout"
	text := args[0]
	if len(args) == 2 {
		chanName = args[0]
		text = args[1]
	}

	var w io.Writer = ip.Stdout
	if chanName != "stdout" {
		ch, err := ip.resolveChannel(chanName)
		if err != nil {
			return errResult(err)
		}
		w = ch.file
	}
	if _, werr := io.WriteString(w, text); werr != nil {
		return errResult(wrapError(EHOST, werr, "error writing to channel"))
	}
	if !nonewline {
		io.WriteString(w, "\n")
	}
	return okResult("")
}

func cmdGets(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) != 2 && len(argv) != 3 {
		return errResult(arityError("gets channel ?varName?"))
	}
	ch, cerr := ip.resolveChannel(argv[1])
	if cerr != nil {
		return errResult(cerr)
	}
	var r *bufio.Reader
	if ch.file == os.Stdin {
		if br, ok := ip.Stdin.(*bufio.Reader); ok {
			r = br
		} else {
			r = bufio.NewReader(ip.Stdin)
		}
	} else {
		r = ch.bufReader()
	}
	line, rerr := r.ReadString('\n')
	line = strings.TrimRight(line, "\n")
	line = strings.TrimRight(line, "\r")
	if rerr != nil && rerr != io.EOF {
		return errResult(wrapError(EHOST, rerr, "error reading channel"))
	}
	if rerr == io.EOF && line == "" {
		if len(argv) == 3 {
			ip.SetVariable(argv[2], "")
		}
		return okResult("-1")
	}
	if len(argv) == 3 {
		if err := ip.SetVariable(argv[2], line); err != nil {
			return errResult(err)
		}
		return okResult(formatInt(int64(len(line))))
	}
	return okResult(line)
}

func cmdRead(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) != 2 {
		return errResult(arityError("read channel"))
	}
	ch, cerr := ip.resolveChannel(argv[1])
	if cerr != nil {
		return errResult(cerr)
	}
	var src io.Reader = ch.file
	if ch.file == os.Stdin {
		src = ip.Stdin
	}
	buf, rerr := io.ReadAll(src)
	if rerr != nil {
		return errResult(wrapError(EHOST, rerr, "error reading channel"))
	}
	return okResult(string(buf))
}

func cmdOpen(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) != 2 && len(argv) != 3 {
		return errResult(arityError("open fileName ?access?"))
	}
	mode := "r"
	if len(argv) == 3 {
		mode = argv[2]
	}
	var flag int
	switch mode {
	case "r":
		flag = os.O_RDONLY
	case "w":
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case "a":
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	case "r+":
		flag = os.O_RDWR
	default:
		return errResult(newErrorf(ETYPE, "illegal access mode %q", mode))
	}
	f, ferr := os.OpenFile(argv[1], flag, 0644)
	if ferr != nil {
		return errResult(wrapError(EHOST, ferr, fmt.Sprintf("couldn't open %q", argv[1])))
	}
	h := ip.channels.alloc(&channel{file: f, owned: true})
	return okResult(string(h))
}

func cmdClose(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) != 2 {
		return errResult(arityError("close channel"))
	}
	ch, cerr := ip.resolveChannel(argv[1])
	if cerr != nil {
		return errResult(cerr)
	}
	if !ch.owned {
		return okResult("")
	}
	if err := ch.file.Close(); err != nil {
		return errResult(wrapError(EHOST, err, "error closing channel"))
	}
	ip.channels.free(handle(argv[1]))
	return okResult("")
}

func cmdFlush(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) != 2 {
		return errResult(arityError("flush channel"))
	}
	ch, cerr := ip.resolveChannel(argv[1])
	if cerr != nil {
		return errResult(cerr)
	}
	if syncer, ok := interface{}(ch.file).(interface{ Sync() error }); ok {
		syncer.Sync()
	}
	return okResult("")
}

func cmdExit(ip *Interpreter, argv []string, data []string) *TclResult {
	if len(argv) > 2 {
		return errResult(arityError("exit ?returnCode?"))
	}
	code := int64(0)
	if len(argv) == 2 {
		c, err := coerceInt(argv[1])
		if err != nil {
			return errResult(err)
		}
		code = c
	}
	os.Exit(int(code))
	return okResult("")
}
