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
	"go/token"
	"slices"
)

// Node is implemented by all syntax tree nodes.
type Node interface {
	Pos() token.Pos // position of first character belonging to the node
	End() token.Pos // position of first character immediately after the node
}

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by all statement nodes.
//
// Statements own the comments on the lines directly above them and the comment
// trailing them on the same line.
type Stmt interface {
	Node
	LeadingTrivia() Trivia
	TrailingTrivia() Trivia
	stmtNode()
}

// Body is the body of a [Lambda]: either an *[ExprBody] or a *[BlockStmt].
type Body interface {
	Node
	bodyNode()
}

// ----------------------------------------------------------------------------
// Expressions

type (
	// Ident is an identifier.
	Ident struct {
		NamePos token.Pos
		Name    string
	}

	// BasicLit is a literal: number, string, null, true or false.
	BasicLit struct {
		ValuePos token.Pos
		Value    string
	}

	// ParenExpr is a parenthesized expression.
	ParenExpr struct {
		Lparen token.Pos
		X      Expr
		Rparen token.Pos
	}

	// SelectorExpr is a member access X.Sel.
	SelectorExpr struct {
		X   Expr
		Sel *Ident
	}

	// CallExpr is an invocation Fun(Args).
	CallExpr struct {
		Fun    Expr
		Lparen token.Pos
		Args   []Expr
		Rparen token.Pos
	}

	// GenericName is a constructed type name like Func<int, Task<string>>.
	GenericName struct {
		Name *Ident
		Lt   token.Pos
		Args []Expr
		Gt   token.Pos
	}

	// AwaitExpr is an await expression.
	AwaitExpr struct {
		Await token.Pos
		X     Expr
	}

	// ThrowExpr is a throw in expression position.
	ThrowExpr struct {
		Throw token.Pos
		X     Expr
	}

	// UnaryExpr is a prefix operator applied to X: "!", "-" or "new".
	UnaryExpr struct {
		OpPos token.Pos
		Op    string
		X     Expr
	}

	// BinaryExpr is a binary expression X Op Y.
	BinaryExpr struct {
		X     Expr
		OpPos token.Pos
		Op    string
		Y     Expr
	}

	// Lambda is an anonymous function.
	Lambda struct {
		Async    token.Pos // position of the deferred-execution marker, if written
		Deferred bool      // the body may suspend and resume
		Lparen   token.Pos // NoPos for a single unparenthesized parameter
		Params   []*Ident
		Rparen   token.Pos
		Arrow    token.Pos
		Body     Body
		Comment  Trivia // comments following the end of the lambda
	}
)

func (x *Ident) Pos() token.Pos        { return x.NamePos }
func (x *BasicLit) Pos() token.Pos     { return x.ValuePos }
func (x *ParenExpr) Pos() token.Pos    { return x.Lparen }
func (x *SelectorExpr) Pos() token.Pos { return x.X.Pos() }
func (x *CallExpr) Pos() token.Pos     { return x.Fun.Pos() }
func (x *GenericName) Pos() token.Pos  { return x.Name.Pos() }
func (x *AwaitExpr) Pos() token.Pos    { return x.Await }
func (x *ThrowExpr) Pos() token.Pos    { return x.Throw }
func (x *UnaryExpr) Pos() token.Pos    { return x.OpPos }
func (x *BinaryExpr) Pos() token.Pos   { return x.X.Pos() }

func (x *Lambda) Pos() token.Pos {
	switch {
	case x.Deferred && x.Async.IsValid():
		return x.Async
	case x.Lparen.IsValid():
		return x.Lparen
	case len(x.Params) > 0:
		return x.Params[0].Pos()
	default:
		return x.Arrow
	}
}

func (x *Ident) End() token.Pos        { return offset(x.NamePos, len(x.Name)) }
func (x *BasicLit) End() token.Pos     { return offset(x.ValuePos, len(x.Value)) }
func (x *ParenExpr) End() token.Pos    { return offset(x.Rparen, 1) }
func (x *SelectorExpr) End() token.Pos { return x.Sel.End() }
func (x *CallExpr) End() token.Pos     { return offset(x.Rparen, 1) }
func (x *GenericName) End() token.Pos  { return offset(x.Gt, 1) }
func (x *AwaitExpr) End() token.Pos    { return x.X.End() }
func (x *ThrowExpr) End() token.Pos    { return x.X.End() }
func (x *UnaryExpr) End() token.Pos    { return x.X.End() }
func (x *BinaryExpr) End() token.Pos   { return x.Y.End() }

func (x *Lambda) End() token.Pos {
	if x.Body == nil {
		return offset(x.Arrow, len("=>"))
	}

	return x.Body.End()
}

func (*Ident) exprNode()        {}
func (*BasicLit) exprNode()     {}
func (*ParenExpr) exprNode()    {}
func (*SelectorExpr) exprNode() {}
func (*CallExpr) exprNode()     {}
func (*GenericName) exprNode()  {}
func (*AwaitExpr) exprNode()    {}
func (*ThrowExpr) exprNode()    {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*Lambda) exprNode()       {}

// ----------------------------------------------------------------------------
// Lambda bodies

// ExprBody is an expression body: the expression is implicitly returned or executed.
type ExprBody struct {
	Doc     Trivia // comments between the arrow and the expression
	X       Expr
	Comment Trivia // comments trailing the expression
}

func (b *ExprBody) Pos() token.Pos { return b.X.Pos() }
func (b *ExprBody) End() token.Pos { return b.X.End() }

func (*ExprBody) bodyNode()  {}
func (*BlockStmt) bodyNode() {}

// ----------------------------------------------------------------------------
// Statements

// Comments holds the trivia owned by a statement.
type Comments struct {
	Doc     Trivia // comments on the lines before the statement
	Comment Trivia // comments after the statement on the same line
}

// LeadingTrivia returns the comments before the statement.
func (c Comments) LeadingTrivia() Trivia { return c.Doc }

// TrailingTrivia returns the comments after the statement.
func (c Comments) TrailingTrivia() Trivia { return c.Comment }

type (
	// ReturnStmt is a return statement. Result is nil for a bare return.
	ReturnStmt struct {
		Comments
		Return    token.Pos
		Result    Expr
		Semicolon token.Pos
	}

	// ThrowStmt is a throw statement. X is nil for a rethrow.
	ThrowStmt struct {
		Comments
		Throw     token.Pos
		X         Expr
		Semicolon token.Pos
	}

	// ExprStmt is an expression evaluated for its side effects.
	ExprStmt struct {
		Comments
		X         Expr
		Semicolon token.Pos
	}

	// DeclStmt declares and initializes a local variable. Type is nil for "var".
	DeclStmt struct {
		Comments
		Var       token.Pos
		Type      Expr
		Name      *Ident
		Value     Expr
		Semicolon token.Pos
	}

	// IfStmt is a conditional statement.
	IfStmt struct {
		Comments
		If   token.Pos
		Cond Expr
		Body Stmt
		Else Stmt // or nil
	}

	// EmptyStmt is a lone semicolon.
	EmptyStmt struct {
		Comments
		Semicolon token.Pos
	}

	// BlockStmt is a braced statement list.
	BlockStmt struct {
		Comments
		Lbrace token.Pos
		List   []Stmt
		EndDoc Trivia // comments before the closing brace not owned by a statement
		Rbrace token.Pos
	}
)

func (s *ReturnStmt) Pos() token.Pos { return s.Return }
func (s *ThrowStmt) Pos() token.Pos  { return s.Throw }
func (s *ExprStmt) Pos() token.Pos   { return s.X.Pos() }

func (s *DeclStmt) Pos() token.Pos {
	if s.Type != nil {
		return s.Type.Pos()
	}

	return s.Var
}

func (s *IfStmt) Pos() token.Pos    { return s.If }
func (s *EmptyStmt) Pos() token.Pos { return s.Semicolon }
func (s *BlockStmt) Pos() token.Pos { return s.Lbrace }

func (s *ReturnStmt) End() token.Pos {
	switch {
	case s.Semicolon.IsValid():
		return offset(s.Semicolon, 1)
	case s.Result != nil:
		return s.Result.End()
	default:
		return offset(s.Return, len("return"))
	}
}

func (s *ThrowStmt) End() token.Pos {
	switch {
	case s.Semicolon.IsValid():
		return offset(s.Semicolon, 1)
	case s.X != nil:
		return s.X.End()
	default:
		return offset(s.Throw, len("throw"))
	}
}

func (s *ExprStmt) End() token.Pos {
	if s.Semicolon.IsValid() {
		return offset(s.Semicolon, 1)
	}

	return s.X.End()
}

func (s *DeclStmt) End() token.Pos {
	if s.Semicolon.IsValid() {
		return offset(s.Semicolon, 1)
	}

	return s.Value.End()
}

func (s *IfStmt) End() token.Pos {
	if s.Else != nil {
		return s.Else.End()
	}

	return s.Body.End()
}

func (s *EmptyStmt) End() token.Pos { return offset(s.Semicolon, 1) }
func (s *BlockStmt) End() token.Pos { return offset(s.Rbrace, 1) }

func (*ReturnStmt) stmtNode() {}
func (*ThrowStmt) stmtNode()  {}
func (*ExprStmt) stmtNode()   {}
func (*DeclStmt) stmtNode()   {}
func (*IfStmt) stmtNode()     {}
func (*EmptyStmt) stmtNode()  {}
func (*BlockStmt) stmtNode()  {}

// WithComments returns a shallow copy of s owning the given comments.
func WithComments(s Stmt, c Comments) Stmt {
	switch s := s.(type) {
	case *ReturnStmt:
		n := *s
		n.Comments = c

		return &n

	case *ThrowStmt:
		n := *s
		n.Comments = c

		return &n

	case *ExprStmt:
		n := *s
		n.Comments = c

		return &n

	case *DeclStmt:
		n := *s
		n.Comments = c

		return &n

	case *IfStmt:
		n := *s
		n.Comments = c

		return &n

	case *EmptyStmt:
		n := *s
		n.Comments = c

		return &n

	case *BlockStmt:
		n := *s
		n.Comments = c
		n.List = slices.Clone(s.List)

		return &n

	default:
		return s
	}
}

// offset returns pos advanced by n, keeping invalid positions invalid.
func offset(pos token.Pos, n int) token.Pos {
	if !pos.IsValid() {
		return token.NoPos
	}

	return pos + token.Pos(n)
}
