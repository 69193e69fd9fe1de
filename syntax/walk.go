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

import "iter"

// Inspect traverses the tree rooted at n in depth-first order, calling f for each node.
// If f returns false, the children of the node are skipped.
func Inspect(n Node, f func(Node) bool) {
	inspect(n, f)
}

// Lambdas yields every lambda in the file in source order, outer lambdas before nested ones.
func Lambdas(file *File) iter.Seq[*Lambda] {
	return func(yield func(*Lambda) bool) {
		done := false
		visit := func(n Node) bool {
			if done {
				return false
			}

			if l, ok := n.(*Lambda); ok && !yield(l) {
				done = true

				return false
			}

			return true
		}

		for _, stmt := range file.Stmts {
			if inspect(stmt, visit); done {
				return
			}
		}
	}
}

func inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}

	switch n := n.(type) {
	case *Ident, *BasicLit:
		// leaves

	case *ParenExpr:
		inspect(n.X, f)

	case *SelectorExpr:
		inspect(n.X, f)
		inspect(n.Sel, f)

	case *CallExpr:
		inspect(n.Fun, f)
		inspectList(n.Args, f)

	case *GenericName:
		inspect(n.Name, f)
		inspectList(n.Args, f)

	case *AwaitExpr:
		inspect(n.X, f)

	case *ThrowExpr:
		inspect(n.X, f)

	case *UnaryExpr:
		inspect(n.X, f)

	case *BinaryExpr:
		inspect(n.X, f)
		inspect(n.Y, f)

	case *Lambda:
		for _, p := range n.Params {
			inspect(p, f)
		}

		inspect(n.Body, f)

	case *ExprBody:
		inspect(n.X, f)

	case *ReturnStmt:
		if n.Result != nil {
			inspect(n.Result, f)
		}

	case *ThrowStmt:
		if n.X != nil {
			inspect(n.X, f)
		}

	case *ExprStmt:
		inspect(n.X, f)

	case *DeclStmt:
		if n.Type != nil {
			inspect(n.Type, f)
		}

		inspect(n.Name, f)
		inspect(n.Value, f)

	case *IfStmt:
		inspect(n.Cond, f)
		inspect(n.Body, f)

		if n.Else != nil {
			inspect(n.Else, f)
		}

	case *EmptyStmt:
		// leaf

	case *BlockStmt:
		for _, s := range n.List {
			inspect(s, f)
		}
	}
}

func inspectList[N Node](list []N, f func(Node) bool) {
	for _, n := range list {
		inspect(n, f)
	}
}

// AttachedComments yields all comments owned by nodes of the tree rooted at n.
func AttachedComments(n Node) iter.Seq[*Comment] {
	return func(yield func(*Comment) bool) {
		done := false
		emit := func(t Trivia) {
			for _, c := range t {
				if done {
					return
				}

				if !yield(c) {
					done = true
				}
			}
		}

		var visit func(n Node) bool
		visit = func(n Node) bool {
			switch n := n.(type) {
			case *Lambda:
				inspect(n.Body, visit)
				emit(n.Comment)

				return false

			case *ExprBody:
				emit(n.Doc)
				inspect(n.X, visit)
				emit(n.Comment)

				return false

			case *BlockStmt:
				emit(n.Doc)

				for _, s := range n.List {
					inspect(s, visit)
				}

				emit(n.EndDoc)
				emit(n.Comment)

				return false

			case Stmt:
				emit(n.LeadingTrivia())
				inspectChildren(n, visit)
				emit(n.TrailingTrivia())

				return false
			}

			return !done
		}

		inspect(n, visit)
	}
}

// inspectChildren traverses the children of n without calling f for n itself.
func inspectChildren(n Node, f func(Node) bool) {
	first := true

	inspect(n, func(c Node) bool {
		if first {
			first = false

			return true
		}

		return f(c)
	})
}
