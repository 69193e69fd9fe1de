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

package syntax

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// DefaultIndent is the indentation unit used when [Config.Indent] is empty.
const DefaultIndent = "    "

// Config controls the output of [Config.Fprint].
//
// The printer produces a canonical layout: braces on their own lines, one statement per line,
// comments on the lines before or at the end of the construct they belong to.
type Config struct {
	Indent string                // indentation unit
	Prefix string                // indentation of the line the output is inserted into
	Omit   func(c *Comment) bool // comments to leave out of the output
}

// Fprint prints a node with the default configuration.
func Fprint(w io.Writer, n Node) error {
	var c Config

	return c.Fprint(w, n)
}

// String returns the default printing of n.
func String(n Node) string {
	var buf bytes.Buffer
	_ = Fprint(&buf, n) // writing into a buffer does not fail

	return buf.String()
}

// Fprint pretty-prints a node to w.
func (c *Config) Fprint(w io.Writer, n Node) error {
	p := printer{Config: c}
	if p.Indent == "" {
		p.Indent = DefaultIndent
	}

	switch n := n.(type) {
	case Expr:
		p.expr(n)

	case Stmt:
		p.stmt(n)

	case *ExprBody:
		p.body(n)

	case *File:
		for i, s := range n.Stmts {
			if i > 0 {
				p.newline()
			}

			p.stmt(s)
		}

	default:
		return fmt.Errorf("syntax: can't print %T", n)
	}

	_, err := w.Write(p.buf.Bytes())

	return err
}

type printer struct {
	*Config
	buf        bytes.Buffer
	depth      int
	needsBreak bool // a line comment was written and must end the line
}

func (p *printer) newline() {
	p.buf.WriteByte('\n')
	p.buf.WriteString(p.Prefix)
	p.buf.WriteString(strings.Repeat(p.Indent, p.depth))
	p.needsBreak = false
}

func (p *printer) word(s string) {
	if p.needsBreak {
		p.newline()
	}

	p.buf.WriteString(s)
}

func (p *printer) keep(t Trivia) Trivia {
	if p.Omit == nil || len(t) == 0 {
		return t
	}

	var kept Trivia

	for _, c := range t {
		if !p.Omit(c) {
			kept = append(kept, c)
		}
	}

	return kept
}

// trailing prints comments at the end of the current line.
func (p *printer) trailing(t Trivia) {
	for _, c := range p.keep(t) {
		p.word(" ")
		p.word(c.Text)

		if c.IsLine() {
			p.needsBreak = true
		}
	}
}

// leading prints comments on their own lines, each followed by a line break.
func (p *printer) leading(t Trivia) {
	for _, c := range p.keep(t) {
		p.word(c.Text)
		p.newline()
	}
}

func (p *printer) expr(x Expr) {
	switch x := x.(type) {
	case *Ident:
		p.word(x.Name)

	case *BasicLit:
		p.word(x.Value)

	case *ParenExpr:
		p.word("(")
		p.expr(x.X)
		p.word(")")

	case *SelectorExpr:
		p.expr(x.X)
		p.word(".")
		p.word(x.Sel.Name)

	case *CallExpr:
		p.expr(x.Fun)
		p.word("(")
		p.exprList(x.Args)
		p.word(")")

	case *GenericName:
		p.word(x.Name.Name)
		p.word("<")
		p.exprList(x.Args)
		p.word(">")

	case *AwaitExpr:
		p.word("await ")
		p.expr(x.X)

	case *ThrowExpr:
		p.word("throw ")
		p.expr(x.X)

	case *UnaryExpr:
		p.word(x.Op)

		if isKeyword(x.Op) {
			p.word(" ")
		}

		p.expr(x.X)

	case *BinaryExpr:
		p.expr(x.X)
		p.word(" " + x.Op + " ")
		p.expr(x.Y)

	case *Lambda:
		p.lambda(x)

	case nil:
		p.word("<nil>")

	default:
		p.word(fmt.Sprintf("<%T>", x))
	}
}

func (p *printer) exprList(list []Expr) {
	for i, x := range list {
		if i > 0 {
			p.word(", ")
		}

		p.expr(x)
	}
}

func (p *printer) lambda(l *Lambda) {
	if l.Deferred {
		p.word("async ")
	}

	if l.Lparen.IsValid() || len(l.Params) != 1 {
		p.word("(")

		for i, id := range l.Params {
			if i > 0 {
				p.word(", ")
			}

			p.word(id.Name)
		}

		p.word(")")
	} else {
		p.word(l.Params[0].Name)
	}

	p.word(" =>")

	switch b := l.Body.(type) {
	case *ExprBody:
		p.body(b)

	case *BlockStmt:
		p.trailing(b.Doc)
		p.newline()
		p.block(b)
		p.trailing(b.Comment)

	case nil:
		p.word(" <nil>")
	}

	p.trailing(l.Comment)
}

func (p *printer) body(b *ExprBody) {
	if doc := p.keep(b.Doc); len(doc) > 0 {
		p.depth++
		p.newline()
		p.leading(doc)
		p.expr(b.X)
		p.depth--
	} else {
		p.word(" ")
		p.expr(b.X)
	}

	p.trailing(b.Comment)
}

func (p *printer) block(b *BlockStmt) {
	p.word("{")
	p.depth++

	for _, s := range b.List {
		p.newline()
		p.stmt(s)
	}

	if doc := p.keep(b.EndDoc); len(doc) > 0 {
		p.newline()

		for i, c := range doc {
			if i > 0 {
				p.newline()
			}

			p.word(c.Text)
		}
	}

	p.depth--
	p.newline()
	p.word("}")
}

func (p *printer) stmt(s Stmt) {
	p.leading(s.LeadingTrivia())

	switch s := s.(type) {
	case *ReturnStmt:
		p.word("return")

		if s.Result != nil {
			p.word(" ")
			p.expr(s.Result)
		}

		p.word(";")

	case *ThrowStmt:
		p.word("throw")

		if s.X != nil {
			p.word(" ")
			p.expr(s.X)
		}

		p.word(";")

	case *ExprStmt:
		p.expr(s.X)
		p.word(";")

	case *DeclStmt:
		if s.Type != nil {
			p.expr(s.Type)
		} else {
			p.word("var")
		}

		p.word(" " + s.Name.Name + " = ")
		p.expr(s.Value)
		p.word(";")

	case *IfStmt:
		p.word("if (")
		p.expr(s.Cond)
		p.word(")")
		p.nested(s.Body)

		if s.Else != nil {
			p.newline()
			p.word("else")
			p.nested(s.Else)
		}

	case *EmptyStmt:
		p.word(";")

	case *BlockStmt:
		p.block(s)
	}

	p.trailing(s.TrailingTrivia())
}

// nested prints the body of a control statement.
func (p *printer) nested(s Stmt) {
	if b, ok := s.(*BlockStmt); ok && b.LeadingTrivia().Empty() {
		p.newline()
		p.stmt(b)

		return
	}

	p.depth++
	p.newline()
	p.stmt(s)
	p.depth--
}

func isKeyword(op string) bool {
	return op != "" && 'a' <= op[0] && op[0] <= 'z'
}
