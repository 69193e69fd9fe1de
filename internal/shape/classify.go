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

// Classify reports the body shape of a lambda. It never fails: bodies that can't be
// converted are [Ineligible].
func Classify(l *syntax.Lambda) Shape {
	switch body := l.Body.(type) {
	case *syntax.ExprBody:
		return classifyExpression(body)

	case *syntax.BlockStmt:
		return classifyBlock(body)

	default:
		return Ineligible{Reason: MissingBody}
	}
}

func classifyExpression(body *syntax.ExprBody) Shape {
	trivia := Trivia{Leading: body.Doc, Trailing: body.Comment}

	switch x := body.X.(type) {
	case nil:
		return Ineligible{Reason: MissingBody}

	case *syntax.ThrowExpr:
		return ThrowExpression{X: x, Trivia: trivia}

	default:
		return Expression{X: x, Trivia: trivia}
	}
}

func classifyBlock(block *syntax.BlockStmt) Shape {
	switch len(block.List) {
	case 0:
		return Ineligible{Reason: EmptyBlock}

	case 1:

	default:
		return Ineligible{Reason: MultipleStatements}
	}

	stmt := block.List[0]

	// comments owned by the block itself stay with the statement they surround
	trivia := Trivia{
		Leading:  block.Doc.Append(stmt.LeadingTrivia()),
		Trailing: stmt.TrailingTrivia().Append(block.EndDoc, block.Comment),
	}

	switch stmt := stmt.(type) {
	case *syntax.ReturnStmt:
		if stmt.Result == nil {
			return Ineligible{Reason: MissingOperand}
		}

		return ReturnStatement{Stmt: stmt, Trivia: trivia}

	case *syntax.ThrowStmt:
		if stmt.X == nil {
			return Ineligible{Reason: MissingOperand}
		}

		return ThrowStatement{Stmt: stmt, Trivia: trivia}

	case *syntax.ExprStmt:
		return ExpressionStatement{Stmt: stmt, Trivia: trivia}

	default:
		return Ineligible{Reason: UnsupportedStatement}
	}
}
