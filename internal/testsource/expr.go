// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package testsource

import (
	"go/token"

	"fillmore-labs.com/lambdastyle/syntax"
)

// binary operator precedences, higher binds tighter.
var precedence = map[string]int{
	"??": 1,
	"||": 2,
	"&&": 3,
	"==": 4, "!=": 4,
	"<": 5, ">": 5, "<=": 5, ">=": 5,
	"+": 6, "-": 6,
	"*": 7, "/": 7, "%": 7,
}

func (p *parser) expr() syntax.Expr {
	if t := p.tok(); t.is("throw") {
		p.next()

		return &syntax.ThrowExpr{Throw: t.pos, X: p.expr()}
	}

	x := p.binary(1)

	// assignments are right associative
	if t := p.tok(); t.is("=") {
		p.next()

		return &syntax.BinaryExpr{X: x, OpPos: t.pos, Op: t.text, Y: p.expr()}
	}

	return x
}

func (p *parser) binary(prec int) syntax.Expr {
	x := p.unary()

	for {
		t := p.tok()

		q, ok := precedence[t.text]
		if t.kind != tokPunct || !ok || q < prec {
			return x
		}

		p.next()

		var y syntax.Expr
		if p.tok().is("throw") {
			y = p.expr()
		} else {
			y = p.binary(q + 1)
		}

		x = &syntax.BinaryExpr{X: x, OpPos: t.pos, Op: t.text, Y: y}
	}
}

func (p *parser) unary() syntax.Expr {
	t := p.tok()

	switch {
	case t.is("await"):
		p.next()

		return &syntax.AwaitExpr{Await: t.pos, X: p.unary()}

	case t.is("new"):
		p.next()

		typ, ok := p.typeName()
		if !ok {
			p.errorf("expected type, found %q", p.tok().text)
		}

		return &syntax.UnaryExpr{OpPos: t.pos, Op: t.text, X: p.postfix(typ)}

	case t.is("!"), t.is("-"):
		p.next()

		return &syntax.UnaryExpr{OpPos: t.pos, Op: t.text, X: p.unary()}
	}

	if l, ok := p.tryLambda(); ok {
		return l
	}

	return p.postfix(p.primary())
}

func (p *parser) primary() syntax.Expr {
	t := p.tok()

	switch t.kind {
	case tokIdent:
		if isLiteral(t.text) {
			p.next()

			return &syntax.BasicLit{ValuePos: t.pos, Value: t.text}
		}

		if isReserved(t.text) {
			break
		}

		start := p.i
		if typ, ok := p.typeName(); ok && p.tok().is("(") {
			return typ // generic method call
		}

		p.i = start
		p.next()

		return &syntax.Ident{NamePos: t.pos, Name: t.text}

	case tokNumber, tokString:
		p.next()

		return &syntax.BasicLit{ValuePos: t.pos, Value: t.text}

	case tokPunct:
		if t.is("(") {
			p.next()

			x := &syntax.ParenExpr{Lparen: t.pos, X: p.expr()}
			x.Rparen = p.expect(")")

			return x
		}
	}

	p.errorf("unexpected %q", t.text)

	return nil
}

func (p *parser) postfix(x syntax.Expr) syntax.Expr {
	for {
		switch t := p.tok(); {
		case t.is("."):
			p.next()

			name := p.next()
			if name.kind != tokIdent {
				p.errorf("expected identifier, found %q", name.text)
			}

			sel := &syntax.Ident{NamePos: name.pos, Name: name.text}
			x = &syntax.SelectorExpr{X: x, Sel: sel}

		case t.is("("):
			p.next()

			call := &syntax.CallExpr{Fun: x, Lparen: t.pos}
			for !p.tok().is(")") {
				if len(call.Args) > 0 {
					p.expect(",")
				}

				call.Args = append(call.Args, p.expr())
			}

			call.Rparen = p.expect(")")
			x = call

		default:
			return x
		}
	}
}

// typeName parses an identifier with optional type arguments. On failure the position is undefined.
func (p *parser) typeName() (syntax.Expr, bool) {
	t := p.tok()
	if t.kind != tokIdent || isReserved(t.text) {
		return nil, false
	}

	p.next()

	name := &syntax.Ident{NamePos: t.pos, Name: t.text}
	if !p.tok().is("<") {
		return name, true
	}

	g := &syntax.GenericName{Name: name, Lt: p.next().pos}

	for {
		arg, ok := p.typeName()
		if !ok {
			return nil, false
		}

		g.Args = append(g.Args, arg)

		switch t := p.next(); {
		case t.is(","):
			continue

		case t.is(">"):
			g.Gt = t.pos

			return g, true

		default:
			return nil, false
		}
	}
}

// tryLambda parses a lambda if one starts at the current token.
func (p *parser) tryLambda() (*syntax.Lambda, bool) {
	var (
		l syntax.Lambda
		n int
	)

	if t := p.tok(); t.is("async") && (p.peek(1).kind == tokIdent || p.peek(1).is("(")) {
		l.Async, l.Deferred = t.pos, true
		n = 1
	}

	switch t := p.peek(n); {
	case t.kind == tokIdent && !isReserved(t.text) && p.peek(n+1).is("=>"):
		l.Params = []*syntax.Ident{{NamePos: t.pos, Name: t.text}}
		n++

	case t.is("("):
		params, m, ok := p.scanParams(n + 1)
		if !ok {
			return nil, false
		}

		l.Lparen, l.Rparen = t.pos, p.peek(m).pos
		l.Params = params
		n = m + 1

	default:
		return nil, false
	}

	if !p.peek(n).is("=>") {
		return nil, false
	}

	p.i += n
	l.Arrow = p.next().pos
	l.Body = p.lambdaBody(l.Arrow + token.Pos(len("=>")))

	return &l, true
}

// scanParams looks ahead for "a, b) =>" starting n tokens ahead, returning the offset of ")".
func (p *parser) scanParams(n int) ([]*syntax.Ident, int, bool) {
	var params []*syntax.Ident

	for {
		t := p.peek(n)

		if t.is(")") && (len(params) == 0) {
			return params, n, p.peek(n + 1).is("=>")
		}

		if t.kind != tokIdent || isReserved(t.text) {
			return nil, 0, false
		}

		params = append(params, &syntax.Ident{NamePos: t.pos, Name: t.text})

		switch sep := p.peek(n + 1); {
		case sep.is(","):
			n += 2

		case sep.is(")"):
			return params, n + 1, p.peek(n + 2).is("=>")

		default:
			return nil, 0, false
		}
	}
}

func (p *parser) lambdaBody(afterArrow token.Pos) syntax.Body {
	doc := p.claim(afterArrow, p.tok().pos, nil)

	if p.tok().is("{") {
		b := p.block()
		b.Doc = doc

		return b
	}

	return &syntax.ExprBody{Doc: doc, X: p.expr()}
}

func isReserved(s string) bool {
	switch s {
	case "return", "throw", "if", "else", "var", "new", "await", "async", "null", "true", "false":
		return true
	}

	return false
}

func isLiteral(s string) bool { return s == "null" || s == "true" || s == "false" }
