//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// lineReader reads one line at a time from stdin, supporting up/down
// history recall via raw terminal mode when available and falling
// back to plain buffered line input otherwise (e.g. Windows, or stdin
// piped from a file).
type lineReader struct {
	raw     bool
	restore func()
	scanner *bufio.Scanner
	history []string
}

func newLineReader(history []string) *lineReader {
	restore, err := setRawIO()
	if err != nil {
		return &lineReader{scanner: bufio.NewScanner(os.Stdin), history: history}
	}
	return &lineReader{raw: true, restore: restore, history: history}
}

func (lr *lineReader) Close() {
	if lr.restore != nil {
		lr.restore()
	}
}

// readLine prompts and reads one line. ok is false at end of input.
func (lr *lineReader) readLine(prompt string) (line string, ok bool) {
	fmt.Print(prompt)
	if !lr.raw {
		if !lr.scanner.Scan() {
			return "", false
		}
		return lr.scanner.Text(), true
	}
	return lr.readLineRaw(prompt)
}

// readLineRaw implements a minimal line editor: printable bytes,
// backspace, Enter, and up/down arrow (ESC [ A / ESC [ B) for history
// recall. It does not support mid-line cursor movement.
func (lr *lineReader) readLineRaw(prompt string) (string, bool) {
	buf := []byte{}
	histPos := len(lr.history)
	one := make([]byte, 1)

	redraw := func() {
		fmt.Print("\r\x1b[K", prompt, string(buf))
	}

	for {
		n, err := os.Stdin.Read(one)
		if err != nil || n == 0 {
			if err == io.EOF {
				return "", false
			}
			return string(buf), true
		}
		c := one[0]
		switch c {
		case '\r', '\n':
			fmt.Print("\r\n")
			return string(buf), true
		case 3: // Ctrl-C
			fmt.Print("\r\n")
			return "", false
		case 4: // Ctrl-D
			if len(buf) == 0 {
				return "", false
			}
		case 127, 8: // backspace
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				redraw()
			}
		case 27: // ESC: look for an arrow-key sequence
			var seq [2]byte
			os.Stdin.Read(seq[:1])
			os.Stdin.Read(seq[1:])
			if seq[0] != '[' {
				continue
			}
			switch seq[1] {
			case 'A': // up
				if histPos > 0 {
					histPos--
					buf = []byte(lr.history[histPos])
					redraw()
				}
			case 'B': // down
				if histPos < len(lr.history)-1 {
					histPos++
					buf = []byte(lr.history[histPos])
				} else {
					histPos = len(lr.history)
					buf = buf[:0]
				}
				redraw()
			}
		default:
			if c >= 32 {
				buf = append(buf, c)
				fmt.Print(string(c))
			}
		}
	}
}
