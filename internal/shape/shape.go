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

package shape

import "fillmore-labs.com/lambdastyle/syntax"

// Kind enumerates the body shapes of a lambda.
type Kind uint8

//go:generate go tool stringer -type Kind,Reason -linecomment
const (
	// KindIneligible is a body that can't be converted in either direction.
	KindIneligible Kind = iota // ineligible

	// KindExpression is an expression body.
	KindExpression // expression

	// KindThrowExpression is an expression body that is a throw-expression.
	KindThrowExpression // throw-expression

	// KindReturnStatement is a block holding a single return statement with a value.
	KindReturnStatement // return

	// KindThrowStatement is a block holding a single throw statement with an operand.
	KindThrowStatement // throw

	// KindExpressionStatement is a block holding a single expression statement.
	KindExpressionStatement // expression-statement
)

// IsExpression reports whether the shape is an expression body.
func (k Kind) IsExpression() bool {
	return k == KindExpression || k == KindThrowExpression
}

// IsBlock reports whether the shape is a convertible block body.
func (k Kind) IsBlock() bool {
	return k == KindReturnStatement || k == KindThrowStatement || k == KindExpressionStatement
}

// Reason explains why a body is ineligible.
type Reason uint8

const (
	// MissingBody is a lambda without a body.
	MissingBody Reason = iota // missing body

	// EmptyBlock is a block without statements.
	EmptyBlock // empty block

	// MultipleStatements is a block with more than one statement.
	MultipleStatements // multiple statements

	// UnsupportedStatement is a block whose statement has no expression equivalent.
	UnsupportedStatement // unsupported statement

	// MissingOperand is a bare return or a rethrow.
	MissingOperand // missing operand
)

// Trivia is the comment bundle carried along with a shape.
//
// For expression bodies Leading are the comments between arrow and expression and Trailing
// are the comments after the expression. For block bodies Leading are the comments before the
// statement and Trailing the comments after it, including those before the closing brace.
type Trivia struct {
	Leading  syntax.Trivia
	Trailing syntax.Trivia
}

// Shape is the classified body of a lambda. The set of implementations is closed:
// [Expression], [ThrowExpression], [ReturnStatement], [ThrowStatement],
// [ExpressionStatement] and [Ineligible].
type Shape interface {
	Kind() Kind
	Comments() Trivia
	shape()
}

type (
	// Expression is an expression body.
	Expression struct {
		X      syntax.Expr
		Trivia Trivia
	}

	// ThrowExpression is an expression body that raises an error.
	ThrowExpression struct {
		X      *syntax.ThrowExpr
		Trivia Trivia
	}

	// ReturnStatement is a block with the single statement "return E;".
	ReturnStatement struct {
		Stmt   *syntax.ReturnStmt
		Trivia Trivia
	}

	// ThrowStatement is a block with the single statement "throw E;".
	ThrowStatement struct {
		Stmt   *syntax.ThrowStmt
		Trivia Trivia
	}

	// ExpressionStatement is a block with the single statement "E;".
	ExpressionStatement struct {
		Stmt   *syntax.ExprStmt
		Trivia Trivia
	}

	// Ineligible is a body that is left alone.
	Ineligible struct {
		Reason Reason
	}
)

func (Expression) Kind() Kind          { return KindExpression }
func (ThrowExpression) Kind() Kind     { return KindThrowExpression }
func (ReturnStatement) Kind() Kind     { return KindReturnStatement }
func (ThrowStatement) Kind() Kind      { return KindThrowStatement }
func (ExpressionStatement) Kind() Kind { return KindExpressionStatement }
func (Ineligible) Kind() Kind          { return KindIneligible }

func (s Expression) Comments() Trivia          { return s.Trivia }
func (s ThrowExpression) Comments() Trivia     { return s.Trivia }
func (s ReturnStatement) Comments() Trivia     { return s.Trivia }
func (s ThrowStatement) Comments() Trivia      { return s.Trivia }
func (s ExpressionStatement) Comments() Trivia { return s.Trivia }
func (Ineligible) Comments() Trivia            { return Trivia{} }

func (Expression) shape()          {}
func (ThrowExpression) shape()     {}
func (ReturnStatement) shape()     {}
func (ThrowStatement) shape()      {}
func (ExpressionStatement) shape() {}
func (Ineligible) shape()          {}
