//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package picol

import (
	"github.com/sirupsen/logrus"
)

// tracer emits one diagnostic line per command dispatch when tracing
// is enabled (the evaluator's "optionally print a trace line", §4.2).
// It is entirely separate from the interpreter's result/output
// stream: trace lines are operator-facing diagnostics, never
// script-visible values.
type tracer struct {
	enabled bool
	log     *logrus.Logger
}

func newTracer() *tracer {
	return &tracer{log: logrus.StandardLogger()}
}

// SetLogger overrides the destination logger (an embedder's own
// logrus instance, for example).
func (t *tracer) SetLogger(l *logrus.Logger) {
	t.log = l
}

// command logs one command dispatch at the current nesting depth.
func (t *tracer) command(depth int, argv []string) {
	if !t.enabled {
		return
	}
	t.log.WithFields(logrus.Fields{
		"depth": depth,
		"argv":  argv,
	}).Info("picol: eval")
}

// SetLogger sends the interpreter's command trace to l instead of
// logrus.StandardLogger().
func (ip *Interpreter) SetLogger(l *logrus.Logger) {
	ip.trace.SetLogger(l)
}
