//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package picol

import (
	"math/rand"
)

// A small integer-only math catalogue, grounded in picol.c's
// picol_abs/picol_rand/picol_srand: these are ordinary commands, not
// a function-call grammar inside expr, since neither expr form (the
// single-operator infix form nor the precedence evaluator) has a
// function-call syntax (§4.8).

func registerMathFunctions(ip *Interpreter) {
	ip.commands.define("abs", func(ip *Interpreter, argv []string, data []string) *TclResult {
		if len(argv) != 2 {
			return errResult(arityError("abs int"))
		}
		x, err := coerceInt(argv[1])
		if err != nil {
			return errResult(err)
		}
		if x < 0 {
			x = -x
		}
		return okResult(formatInt(x))
	}, nil)

	ip.commands.define("max", func(ip *Interpreter, argv []string, data []string) *TclResult {
		if len(argv) < 2 {
			return errResult(arityError("max int ?int ...?"))
		}
		best, err := coerceInt(argv[1])
		if err != nil {
			return errResult(err)
		}
		for _, a := range argv[2:] {
			x, err := coerceInt(a)
			if err != nil {
				return errResult(err)
			}
			if x > best {
				best = x
			}
		}
		return okResult(formatInt(best))
	}, nil)

	ip.commands.define("min", func(ip *Interpreter, argv []string, data []string) *TclResult {
		if len(argv) < 2 {
			return errResult(arityError("min int ?int ...?"))
		}
		best, err := coerceInt(argv[1])
		if err != nil {
			return errResult(err)
		}
		for _, a := range argv[2:] {
			x, err := coerceInt(a)
			if err != nil {
				return errResult(err)
			}
			if x < best {
				best = x
			}
		}
		return okResult(formatInt(best))
	}, nil)

	ip.commands.define("rand", func(ip *Interpreter, argv []string, data []string) *TclResult {
		if len(argv) != 2 {
			return errResult(arityError("rand n"))
		}
		n, err := coerceInt(argv[1])
		if err != nil {
			return errResult(err)
		}
		if n <= 0 {
			return okResult(formatInt(rand.Int63()))
		}
		return okResult(formatInt(rand.Int63n(n)))
	}, nil)

	ip.commands.define("srand", func(ip *Interpreter, argv []string, data []string) *TclResult {
		if len(argv) != 2 {
			return errResult(arityError("srand seed"))
		}
		seed, err := coerceInt(argv[1])
		if err != nil {
			return errResult(err)
		}
		rand.Seed(seed)
		return okResult("")
	}, nil)
}
