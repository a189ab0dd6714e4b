//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package picol

// Arithmetic, comparison, and logical operators are registered as
// ordinary commands (picol's picol_Math): 'expr' rewrites its infix
// form to prefix and dispatches through the registry like anything
// else, so "2 + 3" becomes "+ 2 3". Folding operators (+, -, *, &&,
// ||) accept two or more operands, '-' with one operand negates it,
// '!' takes exactly one; the rest require exactly two.

func registerOperators(ip *Interpreter) {
	fold := func(name string, seed int64, combine func(acc, x int64) int64) {
		ip.commands.define(name, func(ip *Interpreter, argv []string, data []string) *TclResult {
			if len(argv) < 3 {
				return errResult(arityError(name + " a b ?c ...?"))
			}
			acc := seed
			for _, a := range argv[1:] {
				x, err := coerceInt(a)
				if err != nil {
					return errResult(err)
				}
				acc = combine(acc, x)
			}
			return okResult(formatInt(acc))
		}, nil)
	}

	binary := func(name string, fn func(a, b int64) (int64, *TclError)) {
		ip.commands.define(name, func(ip *Interpreter, argv []string, data []string) *TclResult {
			if len(argv) != 3 {
				return errResult(arityError(name + " a b"))
			}
			a, err := coerceInt(argv[1])
			if err != nil {
				return errResult(err)
			}
			b, err := coerceInt(argv[2])
			if err != nil {
				return errResult(err)
			}
			v, err := fn(a, b)
			if err != nil {
				return errResult(err)
			}
			return okResult(formatInt(v))
		}, nil)
	}

	compare := func(name string, fn func(a, b int64) bool) {
		ip.commands.define(name, func(ip *Interpreter, argv []string, data []string) *TclResult {
			if len(argv) != 3 {
				return errResult(arityError(name + " a b"))
			}
			a, err := coerceInt(argv[1])
			if err != nil {
				return errResult(err)
			}
			b, err := coerceInt(argv[2])
			if err != nil {
				return errResult(err)
			}
			return okResult(formatBool(fn(a, b)))
		}, nil)
	}

	fold("+", 0, func(acc, x int64) int64 { return acc + x })
	fold("*", 1, func(acc, x int64) int64 { return acc * x })

	ip.commands.define("-", func(ip *Interpreter, argv []string, data []string) *TclResult {
		if len(argv) == 2 {
			x, err := coerceInt(argv[1])
			if err != nil {
				return errResult(err)
			}
			return okResult(formatInt(-x))
		}
		if len(argv) < 3 {
			return errResult(arityError("- arg ?arg...?"))
		}
		acc, err := coerceInt(argv[1])
		if err != nil {
			return errResult(err)
		}
		for _, a := range argv[2:] {
			x, err := coerceInt(a)
			if err != nil {
				return errResult(err)
			}
			acc -= x
		}
		return okResult(formatInt(acc))
	}, nil)

	binary("**", func(a, b int64) (int64, *TclError) {
		if b < 0 {
			return 0, newErrorf(ETYPE, "exponent must be non-negative: %d", b)
		}
		c := int64(1)
		for ; b > 0; b-- {
			c *= a
		}
		return c, nil
	})
	binary("/", func(a, b int64) (int64, *TclError) {
		if b == 0 {
			return 0, newError(EARITH, "divide by zero")
		}
		return a / b, nil
	})
	binary("%", func(a, b int64) (int64, *TclError) {
		if b == 0 {
			return 0, newError(EARITH, "divide by zero")
		}
		return a % b, nil
	})

	compare("==", func(a, b int64) bool { return a == b })
	compare("!=", func(a, b int64) bool { return a != b })
	compare("<", func(a, b int64) bool { return a < b })
	compare("<=", func(a, b int64) bool { return a <= b })
	compare(">", func(a, b int64) bool { return a > b })
	compare(">=", func(a, b int64) bool { return a >= b })

	ip.commands.define("&&", func(ip *Interpreter, argv []string, data []string) *TclResult {
		if len(argv) < 3 {
			return errResult(arityError("&& arg ?arg...?"))
		}
		for _, a := range argv[1:] {
			b, err := coerceBool(a)
			if err != nil {
				return errResult(err)
			}
			if !b {
				return okResult(formatBool(false))
			}
		}
		return okResult(formatBool(true))
	}, nil)

	ip.commands.define("||", func(ip *Interpreter, argv []string, data []string) *TclResult {
		if len(argv) < 3 {
			return errResult(arityError("|| arg ?arg...?"))
		}
		for _, a := range argv[1:] {
			b, err := coerceBool(a)
			if err != nil {
				return errResult(err)
			}
			if b {
				return okResult(formatBool(true))
			}
		}
		return okResult(formatBool(false))
	}, nil)

	ip.commands.define("!", func(ip *Interpreter, argv []string, data []string) *TclResult {
		if len(argv) != 2 {
			return errResult(arityError("! expression"))
		}
		b, err := coerceBool(argv[1])
		if err != nil {
			return errResult(err)
		}
		return okResult(formatBool(!b))
	}, nil)
}
