//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package picol

// registerBuiltins wires up the entire built-in catalogue on a fresh
// interpreter, in roughly the order the kernel needs them available
// to itself (operators before expr, everything before control flow
// that might reference 'unknown').
func (ip *Interpreter) registerBuiltins() {
	registerOperators(ip)
	registerMathFunctions(ip)
	registerExpr(ip)
	registerCoreCommands(ip)
	registerStringCommands(ip)
	registerControlCommands(ip)
	registerArrayCommands(ip)
	registerIOCommands(ip)
	registerMiscCommands(ip)
}
