// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package analyzer implements the lambdastyle check.
//
// # Overview
//
// Lambdastyle enforces a preference between expression bodies and block bodies of lambdas
// in a host syntax tree (see package [fillmore-labs.com/lambdastyle/syntax]). Violations are
// reported at the lambda's arrow token, with a suggested fix that keeps the deferred-execution
// marker and every comment.
//
// # Example
//
// With the style "when_possible":
//
//	Func<int, string> f = x =>
//	{
//	    return x.ToString();
//	};
//
// After applying lambdastyle's suggested fix:
//
//	Func<int, string> f = x => x.ToString();
//
// With the style "never" the fix goes the other way. An expression body becomes a return
// statement when the lambda returns a value and an expression statement when it doesn't,
// so the lambda's return category has to be known (see [syntax.Info]).
//
// # Configuration
//
// The style is read from a [codestyle.Store] under the option "expression_bodied_lambdas",
// first for the file's language, then for "*". Values have the form "style[:enforcement]",
// for example "never:warning". Without a store value the analyzer's preference (the -style flag)
// applies.
//
// Files and lambdas can be excluded with a "//nolint:lambdastyle" comment.
//
// # Nested lambdas
//
// Every lambda is checked on its own, so with the style "never" a curried lambda like
// x => y => x + y gets a diagnostic for each arrow. The outer fix replaces the inner lambda's
// text, so the two fixes overlap and a host applies one of them per pass. The fixes converge:
// after the outer fix the inner lambda is reported again and fixed in the next pass.
package analyzer
