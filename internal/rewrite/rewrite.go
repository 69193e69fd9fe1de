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

package rewrite

import (
	"fillmore-labs.com/lambdastyle/internal/convert"
	"fillmore-labs.com/lambdastyle/internal/syntaxutil"
	"fillmore-labs.com/lambdastyle/syntax"
)

// Rewrite returns a copy of l with its body converted according to d.
//
// Only the body and its comments change: the deferred-execution marker, the parameters and
// all reused sub-nodes are shared with l, which is left untouched.
func Rewrite(l *syntax.Lambda, d convert.Decision) (*syntax.Lambda, error) {
	n := *l

	switch d.Direction {
	case convert.ToExpression:
		if _, ok := l.Body.(*syntax.BlockStmt); !ok {
			return nil, syntaxutil.InternalError("conversion to expression of %T", l.Body)
		}

		if d.Expr == nil {
			return nil, syntaxutil.InternalError("conversion to expression without result")
		}

		n.Body = toExpression(d)

	case convert.ToBlock:
		if _, ok := l.Body.(*syntax.ExprBody); !ok {
			return nil, syntaxutil.InternalError("conversion to block of %T", l.Body)
		}

		if d.Stmt == nil {
			return nil, syntaxutil.InternalError("conversion to block without statement")
		}

		n.Body = toBlock(d)
		// Comments trailing the expression now follow the closing brace
		n.Comment = d.Trivia.Trailing.Append(l.Comment)

	default:
		return nil, syntaxutil.InternalError("unknown conversion %s", d.Direction)
	}

	return &n, nil
}

// toExpression builds the expression body. Comments before the statement go between the arrow
// and the expression, comments after the statement trail the expression.
func toExpression(d convert.Decision) *syntax.ExprBody {
	return &syntax.ExprBody{
		Doc:     d.Trivia.Leading,
		X:       d.Expr,
		Comment: d.Trivia.Trailing,
	}
}

// toBlock builds a block holding the converted statement, which owns the comments that
// were between the arrow and the expression.
func toBlock(d convert.Decision) *syntax.BlockStmt {
	stmt := syntax.WithComments(d.Stmt, syntax.Comments{Doc: d.Trivia.Leading})

	return &syntax.BlockStmt{List: []syntax.Stmt{stmt}}
}
