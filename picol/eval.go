//
// Copyright 2024 The picol-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package picol

// evalMode selects whether evaluate() dispatches commands or merely
// performs substitution and hands back the assembled word list as a
// single list value (used by 'subst' and by conditions/expr).
type evalMode int

const (
	modeEval evalMode = iota
	modeSubst
)

// evaluate drives a parser over source, assembling argument words,
// performing substitutions, and (in modeEval) dispatching each command
// line through InvokeCommand (§4.2). It is the single entry point
// every reentrant evaluation goes through: command substitution,
// 'eval', 'uplevel', 'catch', and top-level Eval/Source all call this.
func (ip *Interpreter) evaluate(source string, mode evalMode) *TclResult {
	p := newParser(source)
	var argv []string
	newWord := true
	last := okResult("")

	for {
		tok, perr := p.next()
		if perr != nil {
			return errResult(perr)
		}

		switch tok.kind {
		case tokSep:
			newWord = true
			continue
		case tokEOF, tokEOL:
			if len(argv) > 0 {
				r := ip.evalLine(argv, mode)
				if !r.Ok() {
					return r
				}
				last = r
				argv = nil
			}
			newWord = true
			if tok.kind == tokEOF {
				return last
			}
			continue
		}

		text, rprop := ip.materialize(tok)
		if rprop != nil {
			return rprop
		}

		if tok.expand {
			elems, lerr := parseList(text)
			if lerr != nil {
				return errResult(lerr)
			}
			for _, e := range elems {
				argv = append(argv, e)
			}
			newWord = false
			continue
		}

		if newWord {
			argv = append(argv, text)
			newWord = false
		} else if len(argv) == 0 {
			argv = append(argv, text)
		} else {
			argv[len(argv)-1] += text
		}
	}
}

// materialize resolves a token's substitution, if any, into plain
// text (§4.2 step 1). A non-nil *TclResult return means the
// substitution did not produce a plain value at all — an error, or a
// leaked RETURN/BREAK/CONTINUE from a nested [...] command — and must
// propagate out of the enclosing evaluate() unchanged, the same way
// picolEval2 propagates a non-OK rc from a nested command verbatim
// instead of rewriting it into a parse error.
func (ip *Interpreter) materialize(tok token) (string, *TclResult) {
	switch tok.kind {
	case tokStr:
		return tok.text, nil
	case tokEsc:
		return decodeEscapes(tok.text), nil
	case tokVar:
		v, err := ip.GetVariable(tok.text)
		if err != nil {
			return "", errResult(err)
		}
		return v, nil
	case tokCmd:
		r := ip.evaluate(tok.text, modeEval)
		if !r.Ok() {
			return "", r
		}
		return r.Result(), nil
	default:
		return "", nil
	}
}

// evalLine handles one complete command line: in modeSubst it just
// joins argv as a list value; in modeEval it dispatches through the
// command registry, falling back to 'unknown' (§4.2 step 3). Call
// frames crossed while unwinding an error append their own traceback
// entry in proc.go's invokeProcedure, not here.
func (ip *Interpreter) evalLine(argv []string, mode evalMode) *TclResult {
	if mode == modeSubst {
		return okResult(joinList(argv))
	}
	return ip.InvokeCommand(argv)
}
