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

import "fillmore-labs.com/lambdastyle/syntax"

// assignCategory records the return category of a lambda initializing a variable of type typ.
// An expression-bodied lambda returning another lambda passes the delegate's result type on.
func (p *parser) assignCategory(l *syntax.Lambda, typ syntax.Expr) {
	category, result := delegateCategory(typ, l.Deferred)
	if !category.Known() {
		return
	}

	p.categories[l] = category

	if body, ok := l.Body.(*syntax.ExprBody); ok && result != nil {
		if inner, ok := body.X.(*syntax.Lambda); ok {
			p.assignCategory(inner, result)
		}
	}
}

// delegateCategory derives the return category from an Action or Func delegate type.
func delegateCategory(typ syntax.Expr, deferred bool) (syntax.ReturnCategory, syntax.Expr) {
	name, args := typeParts(typ)

	switch name {
	case "Action":
		return syntax.VoidLike, nil

	case "Func":
		if len(args) == 0 {
			return syntax.UnknownCategory, nil
		}

		result := args[len(args)-1]
		if !deferred {
			return syntax.Value, result
		}

		switch resultName, resultArgs := typeParts(result); {
		case resultName == "Task" && len(resultArgs) == 0:
			return syntax.DeferredVoidLike, nil

		case resultName == "Task" && len(resultArgs) == 1:
			return syntax.DeferredValue, nil
		}
	}

	return syntax.UnknownCategory, nil
}

func typeParts(typ syntax.Expr) (string, []syntax.Expr) {
	switch typ := typ.(type) {
	case *syntax.Ident:
		return typ.Name, nil

	case *syntax.GenericName:
		return typ.Name.Name, typ.Args

	default:
		return "", nil
	}
}
