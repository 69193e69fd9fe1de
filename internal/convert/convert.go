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

package convert

import (
	"fillmore-labs.com/lambdastyle/internal/shape"
	"fillmore-labs.com/lambdastyle/syntax"
)

// Direction is the body form a conversion produces.
type Direction uint8

//go:generate go tool stringer -type Direction -linecomment
const (
	// ToExpression converts a block body to an expression body.
	ToExpression Direction = iota + 1 // expression

	// ToBlock converts an expression body to a block body.
	ToBlock // block
)

// ThrowPolicy reports whether a throw-expression may form the body of a lambda with the given
// return category. Hosts restricting throw-expressions to certain contexts supply their own.
type ThrowPolicy func(category syntax.ReturnCategory) bool

// AllowThrow permits throw-expression bodies for every return category.
func AllowThrow(syntax.ReturnCategory) bool { return true }

// DenyThrow never produces throw-expression bodies.
func DenyThrow(syntax.ReturnCategory) bool { return false }

// Checker decides whether a body can be converted without changing program behavior.
type Checker struct {
	ThrowAllowed ThrowPolicy // nil means [AllowThrow]
}

// Decision is a conversion of a classified body to the other form.
type Decision struct {
	Direction Direction
	Expr      syntax.Expr  // the expression body, for [Checker.ToExpression]
	Stmt      syntax.Stmt  // the single block statement, for [Checker.ToBlock]
	Trivia    shape.Trivia // comments to relocate
}

// ToExpression returns the expression equivalent to a block body, if there is one.
// The result is the statement's operand, or a throw-expression wrapping it.
func (c Checker) ToExpression(s shape.Shape, category syntax.ReturnCategory) (syntax.Expr, bool) {
	switch s := s.(type) {
	case shape.ReturnStatement:
		return s.Stmt.Result, true

	case shape.ExpressionStatement:
		return s.Stmt.X, true

	case shape.ThrowStatement:
		if !c.throwAllowed(category) {
			return nil, false
		}

		return &syntax.ThrowExpr{Throw: s.Stmt.Throw, X: s.Stmt.X}, true

	default:
		return nil, false
	}
}

// ToBlock returns the single statement equivalent to an expression body, if there is one.
//
// A throw-expression always becomes a throw statement. Other expressions become an
// expression statement when the lambda has no result and a return statement otherwise.
func (Checker) ToBlock(s shape.Shape, category syntax.ReturnCategory) (syntax.Stmt, bool) {
	switch s := s.(type) {
	case shape.ThrowExpression:
		return &syntax.ThrowStmt{Throw: s.X.Throw, X: s.X.X}, true

	case shape.Expression:
		switch category {
		case syntax.VoidLike, syntax.DeferredVoidLike:
			return &syntax.ExprStmt{X: s.X}, true

		case syntax.Value, syntax.DeferredValue:
			return &syntax.ReturnStmt{Result: s.X}, true

		default:
			return nil, false
		}

	default:
		return nil, false
	}
}

// Decide returns the conversion of s in the given direction.
func (c Checker) Decide(s shape.Shape, category syntax.ReturnCategory, direction Direction) (Decision, bool) {
	d := Decision{Direction: direction, Trivia: s.Comments()}

	var ok bool

	switch direction {
	case ToExpression:
		d.Expr, ok = c.ToExpression(s, category)

	case ToBlock:
		d.Stmt, ok = c.ToBlock(s, category)
	}

	if !ok {
		return Decision{}, false
	}

	return d, true
}

func (c Checker) throwAllowed(category syntax.ReturnCategory) bool {
	if c.ThrowAllowed == nil {
		return true
	}

	return c.ThrowAllowed(category)
}
