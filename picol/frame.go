//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package picol

// frame is a lexical scope: a mapping of variable name to value, plus
// the textual form of the command that created it (used to build the
// traceback in ::errorInfo on error). A variable whose map entry holds
// a nil *string is a redirect installed by 'global'/'variable': reads
// and writes of it fall through to the global frame instead.
//
// Per the redesign notes this is an explicit stack of owned frames
// (frames[0] is global) rather than the source's intrusive linked
// list of call frames.
type frame struct {
	vars    map[string]*string
	command string // invocation text that pushed this frame, for traceback
}

func newFrame(command string) *frame {
	return &frame{vars: make(map[string]*string), command: command}
}

// pushFrame adds a new lexical scope on top of the call stack.
func (ip *Interpreter) pushFrame(command string) {
	if len(ip.frames) > 1 {
		// recursion depth is the number of non-global frames on the stack
	}
	ip.frames = append(ip.frames, newFrame(command))
}

// popFrame removes the top-most frame. The global frame (index 0) is
// never popped.
func (ip *Interpreter) popFrame() {
	if len(ip.frames) <= 1 {
		return
	}
	ip.frames = ip.frames[:len(ip.frames)-1]
}

// currentFrame returns the active scope.
func (ip *Interpreter) currentFrame() *frame {
	return ip.frames[len(ip.frames)-1]
}

// globalFrame returns frame 0.
func (ip *Interpreter) globalFrame() *frame {
	return ip.frames[0]
}

// depth returns the recursion depth: the number of frames pushed by
// user-proc calls above the global frame.
func (ip *Interpreter) depth() int {
	return len(ip.frames) - 1
}

// frameAt returns the Nth ancestor of the current frame, where 0 is
// the current frame, 1 is its caller, and so on, clamped to the
// global frame. Used by 'info level'.
func (ip *Interpreter) frameAt(n int) *frame {
	idx := len(ip.frames) - 1 - n
	if idx < 0 {
		idx = 0
	}
	return ip.frames[idx]
}
