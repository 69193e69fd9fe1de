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
	"errors"
	"fmt"
	"go/token"

	"fillmore-labs.com/lambdastyle/syntax"
)

var (
	errUnterminated = errors.New("unterminated literal")
	errSyntax       = errors.New("syntax error")
)

type parser struct {
	file     *token.File
	toks     []tok
	i        int
	comments []*syntax.Comment
	claimed  map[*syntax.Comment]bool

	categories map[*syntax.Lambda]syntax.ReturnCategory
}

// bailout aborts parsing with an error.
type bailout struct{ err error }

func (p *parser) errorf(format string, args ...any) {
	pos := p.file.Position(p.tok().pos)
	panic(bailout{fmt.Errorf("%s: %w: %s", pos, errSyntax, fmt.Sprintf(format, args...))})
}

func (p *parser) parseFile() (stmts []syntax.Stmt, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}

			err = b.err
		}
	}()

	prev := token.Pos(p.file.Base())
	for p.tok().kind != tokEOF {
		s := p.stmt(prev)
		stmts = append(stmts, s)
		prev = s.End()
	}

	return stmts, nil
}

// ----------------------------------------------------------------------------
// Tokens

func (p *parser) tok() tok { return p.toks[p.i] }

func (p *parser) peek(n int) tok {
	if p.i+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}

	return p.toks[p.i+n]
}

func (p *parser) next() tok {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}

	return t
}

func (p *parser) expect(text string) token.Pos {
	t := p.tok()
	if !t.is(text) {
		p.errorf("expected %q, found %q", text, t.text)
	}

	p.next()

	return t.pos
}

func (p *parser) got(text string) bool {
	if p.tok().is(text) {
		p.next()

		return true
	}

	return false
}

// ----------------------------------------------------------------------------
// Comments

func (p *parser) line(pos token.Pos) int { return p.file.Line(pos) }

// claim returns the unclaimed comments in [from, to) accepted by keep.
func (p *parser) claim(from, to token.Pos, keep func(*syntax.Comment) bool) syntax.Trivia {
	var t syntax.Trivia

	for _, c := range p.comments {
		if c.Pos() < from || p.claimed[c] {
			continue
		}

		if c.Pos() >= to {
			break
		}

		if keep != nil && !keep(c) {
			continue
		}

		p.claimed[c] = true
		t = append(t, c)
	}

	return t
}

// trailing claims the comments following end on its line.
func (p *parser) trailing(end token.Pos) syntax.Trivia {
	line := p.line(end)

	return p.claim(end, p.tok().pos, func(c *syntax.Comment) bool { return p.line(c.Pos()) == line })
}

// ----------------------------------------------------------------------------
// Statements

// stmt parses a statement with its comments. prev is the end of the preceding token.
func (p *parser) stmt(prev token.Pos) syntax.Stmt {
	doc := p.claim(prev, p.tok().pos, nil)
	s := p.stmtBody()

	trailing := p.trailing(s.End())
	if l := p.trailingLambda(s, p.line(s.End())); l != nil {
		body, _ := l.Body.(*syntax.ExprBody)
		body.Comment = body.Comment.Append(trailing)
		trailing = nil
	}

	return syntax.WithComments(s, syntax.Comments{Doc: doc, Comment: trailing})
}

func (p *parser) stmtBody() syntax.Stmt {
	t := p.tok()

	switch {
	case t.is("{"):
		return p.block()

	case t.is(";"):
		p.next()

		return &syntax.EmptyStmt{Semicolon: t.pos}

	case t.is("return"):
		p.next()

		s := &syntax.ReturnStmt{Return: t.pos}
		if !p.tok().is(";") {
			s.Result = p.expr()
		}

		s.Semicolon = p.expect(";")

		return s

	case t.is("throw"):
		p.next()

		s := &syntax.ThrowStmt{Throw: t.pos}
		if !p.tok().is(";") {
			s.X = p.expr()
		}

		s.Semicolon = p.expect(";")

		return s

	case t.is("if"):
		p.next()

		s := &syntax.IfStmt{If: t.pos}
		p.expect("(")
		s.Cond = p.expr()
		p.expect(")")
		s.Body = p.stmt(p.toks[p.i-1].end())

		if p.tok().is("else") {
			p.next()
			s.Else = p.stmt(p.toks[p.i-1].end())
		}

		return s

	case t.is("var"):
		p.next()

		return p.decl(&syntax.DeclStmt{Var: t.pos})

	case t.kind == tokIdent:
		if typ, ok := p.tryDeclType(); ok {
			return p.decl(&syntax.DeclStmt{Type: typ})
		}
	}

	s := &syntax.ExprStmt{X: p.expr()}
	s.Semicolon = p.expect(";")

	return s
}

func (p *parser) decl(s *syntax.DeclStmt) syntax.Stmt {
	name := p.next()
	if name.kind != tokIdent {
		p.errorf("expected identifier, found %q", name.text)
	}

	s.Name = &syntax.Ident{NamePos: name.pos, Name: name.text}
	p.expect("=")
	s.Value = p.expr()
	s.Semicolon = p.expect(";")

	if l, ok := s.Value.(*syntax.Lambda); ok && s.Type != nil {
		p.assignCategory(l, s.Type)
	}

	return s
}

// tryDeclType parses "Type name =" without consuming anything when it doesn't match.
func (p *parser) tryDeclType() (syntax.Expr, bool) {
	start := p.i

	typ, ok := p.typeName()
	if ok && p.tok().kind == tokIdent && p.peek(1).is("=") {
		return typ, true
	}

	p.i = start

	return nil, false
}

func (p *parser) block() *syntax.BlockStmt {
	b := &syntax.BlockStmt{Lbrace: p.expect("{")}

	prev := b.Lbrace + 1
	for !p.tok().is("}") {
		if p.tok().kind == tokEOF {
			p.errorf("expected %q, found EOF", "}")
		}

		s := p.stmt(prev)
		b.List = append(b.List, s)
		prev = s.End()
	}

	b.Rbrace = p.tok().pos
	b.EndDoc = p.claim(prev, b.Rbrace, nil)
	p.next()

	return b
}

// trailingLambda returns the outermost expression-bodied lambda of s ending on line,
// not looking into nested statements.
func (p *parser) trailingLambda(s syntax.Stmt, line int) *syntax.Lambda {
	var found *syntax.Lambda

	syntax.Inspect(s, func(n syntax.Node) bool {
		if found != nil {
			return false
		}

		switch n := n.(type) {
		case syntax.Stmt:
			return n == s

		case *syntax.Lambda:
			if _, ok := n.Body.(*syntax.ExprBody); ok && p.line(n.End()) == line {
				found = n

				return false
			}
		}

		return true
	})

	return found
}
