//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package picol

import "strings"

// registerExpr installs both 'expr' (the default single-operator
// infix form of §4.8) and 'exprp', a precedence-climbing evaluator
// available as an alternative per the REDESIGN FLAGS' open question
// on operator precedence — added without disturbing the default form
// if/while's condition sugar relies on.
func registerExpr(ip *Interpreter) {
	ip.commands.define("expr", func(ip *Interpreter, argv []string, data []string) *TclResult {
		return ip.Expr(argv[1:])
	}, nil)
	ip.commands.define("exprp", func(ip *Interpreter, argv []string, data []string) *TclResult {
		if len(argv) != 2 {
			return errResult(arityError("exprp expression"))
		}
		return ip.exprPrecedence(argv[1])
	}, nil)
}

// Expr implements the expr built-in (§4.8): a single argument with no
// whitespace is lexed and evaluated directly with full operator
// precedence (the word boundary already disambiguates it from the
// multi-argument form, so there is no odd-arity/repeated-operator
// ambiguity to resolve); one with embedded whitespace is substituted
// and re-split; two or more arguments must already form an odd-length
// a OP b [OP c...] sequence with one repeated operator, rewritten to
// prefix form (OP a b c...) and dispatched.
func (ip *Interpreter) Expr(args []string) *TclResult {
	if len(args) == 0 {
		return errResult(arityError("expr arg ?arg ...?"))
	}
	if len(args) == 1 {
		return ip.exprOne(args[0])
	}
	return ip.exprInfix(args)
}

func (ip *Interpreter) exprOne(s string) *TclResult {
	if !strings.ContainsAny(s, " \t\n\r") {
		return ip.exprPrecedence(s)
	}
	sub := ip.evaluate(s, modeSubst)
	if !sub.Ok() {
		return sub
	}
	words, lerr := parseList(sub.Result())
	if lerr != nil {
		return errResult(lerr)
	}
	if len(words) == 0 {
		return okResult("")
	}
	return ip.exprInfix(words)
}

func (ip *Interpreter) exprInfix(args []string) *TclResult {
	if len(args) == 1 {
		return okResult(args[0])
	}
	if len(args)%2 == 0 {
		return errResult(newError(EPARSE, "need an odd number of arguments to expr"))
	}
	op := args[1]
	for i := 3; i < len(args); i += 2 {
		if args[i] != op {
			return errResult(newError(EPARSE, "need equal operators in expr"))
		}
	}
	prefix := make([]string, 0, len(args))
	prefix = append(prefix, op, args[0])
	for i := 2; i < len(args); i += 2 {
		prefix = append(prefix, args[i])
	}
	return ip.InvokeCommand(prefix)
}

// evalCondition implements §4.8's condition evaluation used by
// if/while/for's test argument: substitute the (possibly braced,
// unsubstituted) source; if the substituted text parses as a
// 3-element list whose middle element names a registered command,
// dispatch it as prefixable infix; otherwise compare the substituted
// value to zero via a synthesized "!= 0 value" ("== 0 value" when the
// raw source begins with '!', stripping the '!' and resubstituting).
func (ip *Interpreter) evalCondition(source string) *TclResult {
	trimmed := strings.TrimSpace(source)
	negate := strings.HasPrefix(trimmed, "!")
	if negate {
		trimmed = strings.TrimPrefix(trimmed, "!")
	}

	sub := ip.evaluate(trimmed, modeSubst)
	if !sub.Ok() {
		return sub
	}
	value := sub.Result()

	if !negate {
		if words, lerr := parseList(value); lerr == nil && len(words) == 3 {
			if _, ok := ip.commands.lookup(words[1]); ok {
				return ip.InvokeCommand([]string{words[1], words[0], words[2]})
			}
		}
	}

	op := "!="
	if negate {
		op = "=="
	}
	return ip.InvokeCommand([]string{op, "0", value})
}

//
// exprPrecedence is a small precedence-climbing parser/evaluator,
// operating directly on integers (no float type, per the Non-goals):
// it lexes $var, [cmd], numeric, and parenthesized sub-expressions
// itself rather than reusing the command parser, since expr text is
// denser than word-level Tcl syntax.
//

type exprToken struct {
	kind string // "num", "var", "cmd", "str", "op", "lparen", "rparen", "eof"
	text string
}

var exprPrecedenceTable = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3, "<": 3, "<=": 3, ">": 3, ">=": 3,
	"+": 4, "-": 4,
	"*": 5, "/": 5, "%": 5,
	"**": 6,
}

func lexExprTokens(s string) ([]exprToken, *TclError) {
	var toks []exprToken
	i, n := 0, len(s)
	for i < n {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(':
			toks = append(toks, exprToken{"lparen", "("})
			i++
		case c == ')':
			toks = append(toks, exprToken{"rparen", ")"})
			i++
		case c == '$':
			i++
			var name string
			if i < n && s[i] == '{' {
				i++
				start := i
				for i < n && s[i] != '}' {
					i++
				}
				if i >= n {
					return nil, newError(EPARSE, "unclosed variable reference")
				}
				name = s[start:i]
				i++
			} else {
				start := i
				for i < n && isNameByte(s[i]) {
					i++
				}
				if i < n && s[i] == '(' {
					i++
					for i < n && s[i] != ')' {
						i++
					}
					if i >= n {
						return nil, newError(EPARSE, "unclosed array reference")
					}
					i++
					name = s[start:i-1] + ")"
				} else {
					name = s[start:i]
				}
			}
			toks = append(toks, exprToken{"var", name})
		case c == '[':
			depth := 1
			i++
			start := i
			for i < n && depth > 0 {
				switch s[i] {
				case '[':
					depth++
				case ']':
					depth--
				}
				i++
			}
			if depth != 0 {
				return nil, newError(EPARSE, "missing close-bracket")
			}
			toks = append(toks, exprToken{"cmd", s[start : i-1]})
		case c == '"':
			i++
			start := i
			for i < n && s[i] != '"' {
				i++
			}
			if i >= n {
				return nil, newError(EPARSE, "unclosed quote in expression")
			}
			toks = append(toks, exprToken{"str", s[start:i]})
			i++
		case isDigitByte(c):
			start := i
			for i < n && (isDigitByte(s[i]) || s[i] == 'x' || s[i] == 'X' || isHexDigit(rune(s[i]))) {
				i++
			}
			toks = append(toks, exprToken{"num", s[start:i]})
		default:
			var two string
			if i+1 < n {
				two = s[i : i+2]
			}
			switch two {
			case "**", "==", "!=", "<=", ">=", "&&", "||":
				toks = append(toks, exprToken{"op", two})
				i += 2
				continue
			}
			switch c {
			case '+', '-', '*', '/', '%', '<', '>', '!':
				toks = append(toks, exprToken{"op", string(c)})
				i++
			default:
				return nil, newErrorf(EPARSE, "unexpected character %q in expression", string(c))
			}
		}
	}
	toks = append(toks, exprToken{"eof", ""})
	return toks, nil
}

func isDigitByte(c byte) bool { return c >= '0' && c <= '9' }

type exprParser struct {
	ip   *Interpreter
	toks []exprToken
	pos  int
}

func (p *exprParser) peek() exprToken  { return p.toks[p.pos] }
func (p *exprParser) advance() exprToken {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// parseExpr, parseUnary, and parsePrimary report failure as a
// *TclResult rather than a *TclError: a nested [...] command can leak
// any return code, not just an error, and that code must reach the
// caller of exprPrecedence unchanged (the same propagation eval.go's
// materialize performs for word-level command substitution).

func (p *exprParser) parseExpr(minPrec int) (int64, *TclResult) {
	left, rprop := p.parseUnary()
	if rprop != nil {
		return 0, rprop
	}
	for {
		tok := p.peek()
		if tok.kind != "op" {
			break
		}
		prec, ok := exprPrecedenceTable[tok.text]
		if !ok || prec < minPrec {
			break
		}
		p.advance()
		nextMin := prec + 1
		if tok.text == "**" {
			nextMin = prec // right-associative
		}
		right, rrprop := p.parseExpr(nextMin)
		if rrprop != nil {
			return 0, rrprop
		}
		v, err := applyBinaryOp(tok.text, left, right)
		if err != nil {
			return 0, errResult(err)
		}
		left = v
	}
	return left, nil
}

func (p *exprParser) parseUnary() (int64, *TclResult) {
	tok := p.peek()
	if tok.kind == "op" && (tok.text == "-" || tok.text == "+" || tok.text == "!") {
		p.advance()
		v, rprop := p.parseUnary()
		if rprop != nil {
			return 0, rprop
		}
		switch tok.text {
		case "-":
			return -v, nil
		case "!":
			return boolInt(v == 0), nil
		default:
			return v, nil
		}
	}
	return p.parsePrimary()
}

func (p *exprParser) parsePrimary() (int64, *TclResult) {
	tok := p.advance()
	switch tok.kind {
	case "num", "str":
		v, err := coerceInt(tok.text)
		if err != nil {
			return 0, errResult(err)
		}
		return v, nil
	case "var":
		v, err := p.ip.GetVariable(tok.text)
		if err != nil {
			return 0, errResult(err)
		}
		iv, cerr := coerceInt(v)
		if cerr != nil {
			return 0, errResult(cerr)
		}
		return iv, nil
	case "cmd":
		r := p.ip.evaluate(tok.text, modeEval)
		if !r.Ok() {
			return 0, r
		}
		iv, cerr := coerceInt(r.Result())
		if cerr != nil {
			return 0, errResult(cerr)
		}
		return iv, nil
	case "lparen":
		v, rprop := p.parseExpr(1)
		if rprop != nil {
			return 0, rprop
		}
		if p.peek().kind != "rparen" {
			return 0, errResult(newError(EPARSE, "unmatched left parenthesis in expression"))
		}
		p.advance()
		return v, nil
	default:
		return 0, errResult(newErrorf(EPARSE, "unexpected token %q in expression", tok.text))
	}
}

func applyBinaryOp(op string, a, b int64) (int64, *TclError) {
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, newError(EARITH, "divide by zero")
		}
		return a / b, nil
	case "%":
		if b == 0 {
			return 0, newError(EARITH, "divide by zero")
		}
		return a % b, nil
	case "**":
		if b < 0 {
			return 0, newErrorf(ETYPE, "exponent must be non-negative: %d", b)
		}
		c := int64(1)
		for ; b > 0; b-- {
			c *= a
		}
		return c, nil
	case "==":
		return boolInt(a == b), nil
	case "!=":
		return boolInt(a != b), nil
	case "<":
		return boolInt(a < b), nil
	case "<=":
		return boolInt(a <= b), nil
	case ">":
		return boolInt(a > b), nil
	case ">=":
		return boolInt(a >= b), nil
	case "&&":
		return boolInt(a != 0 && b != 0), nil
	case "||":
		return boolInt(a != 0 || b != 0), nil
	default:
		return 0, newErrorf(EPARSE, "unknown operator %q", op)
	}
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// exprPrecedence lexes and evaluates s with full operator precedence
// and parenthesized grouping.
func (ip *Interpreter) exprPrecedence(s string) *TclResult {
	toks, lerr := lexExprTokens(s)
	if lerr != nil {
		return errResult(lerr)
	}
	p := &exprParser{ip: ip, toks: toks}
	v, rprop := p.parseExpr(1)
	if rprop != nil {
		return rprop
	}
	if p.peek().kind != "eof" {
		return errResult(newErrorf(EPARSE, "trailing characters in expression: %q", p.peek().text))
	}
	return okResult(formatInt(v))
}
