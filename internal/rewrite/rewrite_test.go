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

package rewrite_test

import (
	"errors"
	"testing"

	"fillmore-labs.com/lambdastyle/internal/convert"
	. "fillmore-labs.com/lambdastyle/internal/rewrite"
	"fillmore-labs.com/lambdastyle/internal/shape"
	"fillmore-labs.com/lambdastyle/internal/syntaxutil"
	"fillmore-labs.com/lambdastyle/internal/testsource"
	"fillmore-labs.com/lambdastyle/syntax"
)

func TestRewrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		src       string
		category  syntax.ReturnCategory
		direction convert.Direction
		want      string
		wantKind  shape.Kind
	}{
		{
			name:      "to expression",
			src:       "f = x =>\n{\n    return x.ToString();\n};",
			category:  syntax.Value,
			direction: convert.ToExpression,
			want:      "x => x.ToString()",
			wantKind:  shape.KindExpression,
		},
		{
			name:      "to expression async",
			src:       "f = async () =>\n{\n    await Task.Delay(1);\n};",
			category:  syntax.DeferredVoidLike,
			direction: convert.ToExpression,
			want:      "async () => await Task.Delay(1)",
			wantKind:  shape.KindExpression,
		},
		{
			name:      "to expression leading comment",
			src:       "f = x =>\n{\n    // why\n    return x;\n};",
			category:  syntax.Value,
			direction: convert.ToExpression,
			want:      "x =>\n    // why\n    x",
			wantKind:  shape.KindExpression,
		},
		{
			name:      "to expression trailing comment",
			src:       "f = x =>\n{\n    return x; /* a */\n    // b\n};",
			category:  syntax.Value,
			direction: convert.ToExpression,
			want:      "x => x /* a */ // b",
			wantKind:  shape.KindExpression,
		},
		{
			name:      "to block",
			src:       "f = (a, b) => a + b;",
			category:  syntax.Value,
			direction: convert.ToBlock,
			want:      "(a, b) =>\n{\n    return a + b;\n}",
			wantKind:  shape.KindReturnStatement,
		},
		{
			name:      "to block async void",
			src:       "f = async x => await Save(x);",
			category:  syntax.DeferredVoidLike,
			direction: convert.ToBlock,
			want:      "async x =>\n{\n    await Save(x);\n}",
			wantKind:  shape.KindExpressionStatement,
		},
		{
			name:      "to block comments",
			src:       "f = x =>\n    // why\n    x; // after",
			category:  syntax.Value,
			direction: convert.ToBlock,
			want:      "x =>\n{\n    // why\n    return x;\n} // after",
			wantKind:  shape.KindReturnStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			l := testsource.Parse(t, tt.src).Lambda(t, 0)
			before := syntax.String(l)

			d, ok := convert.Checker{}.Decide(shape.Classify(l), tt.category, tt.direction)
			if !ok {
				t.Fatal("Got no decision")
			}

			// when
			n, err := Rewrite(l, d)

			// then
			if err != nil {
				t.Fatalf("Rewrite failed: %v", err)
			}

			if got := syntax.String(n); got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}

			if after := syntax.String(l); after != before {
				t.Errorf("Original lambda changed from %q to %q", before, after)
			}

			if n.Deferred != l.Deferred || n.Async != l.Async || n.Arrow != l.Arrow {
				t.Error("Deferred marker or arrow not preserved")
			}

			if got := shape.Classify(n).Kind(); got != tt.wantKind {
				t.Errorf("Got rewritten shape %s, want %s", got, tt.wantKind)
			}
		})
	}
}

func TestRewriteRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		category syntax.ReturnCategory
	}{
		{"value", "f = x => x.ToString();", syntax.Value},
		{"void", "f = x => Log(x);", syntax.VoidLike},
		{"deferred void", "f = async x => await Save(x);", syntax.DeferredVoidLike},
		{"deferred value", "f = async x => await Load(x);", syntax.DeferredValue},
		{"throw", "f = x => throw new Exception(x);", syntax.Value},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			l := testsource.Parse(t, tt.src).Lambda(t, 0)
			var c convert.Checker

			// when
			d, ok := c.Decide(shape.Classify(l), tt.category, convert.ToBlock)
			if !ok {
				t.Fatal("Got no block decision")
			}

			block, err := Rewrite(l, d)
			if err != nil {
				t.Fatalf("Rewrite to block failed: %v", err)
			}

			d, ok = c.Decide(shape.Classify(block), tt.category, convert.ToExpression)
			if !ok {
				t.Fatalf("Got no expression decision for %q", syntax.String(block))
			}

			expression, err := Rewrite(block, d)
			if err != nil {
				t.Fatalf("Rewrite to expression failed: %v", err)
			}

			// then
			if got, want := syntax.String(expression), syntax.String(l); got != want {
				t.Errorf("Got %q after round trip, want %q", got, want)
			}

			if got, want := shape.Classify(expression).Kind(), shape.Classify(l).Kind(); got != want {
				t.Errorf("Got shape %s after round trip, want %s", got, want)
			}
		})
	}
}

func TestRewriteBlockComments(t *testing.T) {
	t.Parallel()

	// given
	l := testsource.Parse(t, "f = x => { return x; };").Lambda(t, 0)
	body, ok := l.Body.(*syntax.BlockStmt)
	if !ok {
		t.Fatalf("Got body %T, want block", l.Body)
	}

	doc := &syntax.Comment{Text: "/* before */"}
	trailing := &syntax.Comment{Text: "// after"}
	block := *body
	block.Doc = syntax.Trivia{doc}
	block.Comment = syntax.Trivia{trailing}
	host := *l
	host.Body = &block

	d, ok := convert.Checker{}.Decide(shape.Classify(&host), syntax.Value, convert.ToExpression)
	if !ok {
		t.Fatal("Got no decision")
	}

	// when
	n, err := Rewrite(&host, d)
	// then
	if err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}

	e, ok := n.Body.(*syntax.ExprBody)
	if !ok {
		t.Fatalf("Got body %T, want expression", n.Body)
	}

	if !e.Doc.Contains(doc) || !e.Comment.Contains(trailing) {
		t.Errorf("Got doc %q and comment %q, want both block comments kept", e.Doc.Text(), e.Comment.Text())
	}
}

func TestRewriteKeepsComments(t *testing.T) {
	t.Parallel()

	src := testsource.Parse(t, "f = x =>\n{\n    // one\n    return x; // two\n    // three\n};")
	l := src.Lambda(t, 0)

	d, ok := convert.Checker{}.Decide(shape.Classify(l), syntax.Value, convert.ToExpression)
	if !ok {
		t.Fatal("Got no decision")
	}

	n, err := Rewrite(l, d)
	if err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}

	held := make(map[*syntax.Comment]bool)
	for c := range syntax.AttachedComments(n) {
		held[c] = true
	}

	for _, c := range src.File.Comments {
		if !held[c] {
			t.Errorf("Comment %q lost", c.Text)
		}
	}
}

func TestRewriteMismatch(t *testing.T) {
	t.Parallel()

	block := testsource.Parse(t, "f = x => { return x; };").Lambda(t, 0)
	expression := testsource.Parse(t, "f = x => x;").Lambda(t, 0)
	x := &syntax.Ident{Name: "x"}

	tests := []struct {
		name string
		l    *syntax.Lambda
		d    convert.Decision
	}{
		{"expression to expression", expression, convert.Decision{Direction: convert.ToExpression, Expr: x}},
		{"block to block", block, convert.Decision{Direction: convert.ToBlock, Stmt: &syntax.ReturnStmt{Result: x}}},
		{"missing expression", block, convert.Decision{Direction: convert.ToExpression}},
		{"missing statement", expression, convert.Decision{Direction: convert.ToBlock}},
		{"unknown direction", block, convert.Decision{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Rewrite(tt.l, tt.d); !errors.Is(err, syntaxutil.ErrInternal) {
				t.Errorf("Got error %v, want %v", err, syntaxutil.ErrInternal)
			}
		})
	}
}
