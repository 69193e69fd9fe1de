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

package syntax_test

import (
	"strings"
	"testing"

	"fillmore-labs.com/lambdastyle/internal/testsource"
	. "fillmore-labs.com/lambdastyle/syntax"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"expression body", "f = x => x.ToString();", "x => x.ToString()"},
		{"parenthesized", "f = (x) => x;", "(x) => x"},
		{"no parameters", "f = () => 0;", "() => 0"},
		{"async", "f = async (a, b) => await Add(a, b);", "async (a, b) => await Add(a, b)"},
		{"generic call", "f = x => Convert<int, string>(x);", "x => Convert<int, string>(x)"},
		{"operators", "f = x => !x && -x + 1 == 2 ?? throw new Exception(\"a\");", "x => !x && -x + 1 == 2 ?? throw new Exception(\"a\")"},
		{"block", "f = x => { Log(x); return x; };", "x =>\n{\n    Log(x);\n    return x;\n}"},
		{"nested", "f = x => y => { return x; };", "x => y =>\n{\n    return x;\n}"},
		{"comment before brace", "f = x => // c\n{\n    return x;\n};", "x => // c\n{\n    return x;\n}"},
		{
			name: "comments",
			src:  "f = x =>\n{\n    // a\n    return x; // b\n    /* c */\n};",
			want: "x =>\n{\n    // a\n    return x; // b\n    /* c */\n}",
		},
		{
			name: "if",
			src:  "f = x => { if (x) { Log(x); } else Log(0); };",
			want: "x =>\n{\n    if (x)\n    {\n        Log(x);\n    }\n    else\n        Log(0);\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := testsource.Parse(t, tt.src).Lambda(t, 0)

			if got := String(l); got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigFprint(t *testing.T) {
	t.Parallel()

	src := testsource.Parse(t, "f = x =>\n    // a\n    x; // b")
	l := src.Lambda(t, 0)

	var omitted *Comment
	for c := range AttachedComments(l) {
		if c.Text == "// b" {
			omitted = c
		}
	}

	c := Config{Indent: "\t", Prefix: "  ", Omit: func(c *Comment) bool { return c == omitted }}

	var buf strings.Builder
	if err := c.Fprint(&buf, l); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}

	if got, want := buf.String(), "x =>\n  \t// a\n  \tx"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestFprintFile(t *testing.T) {
	t.Parallel()

	src := testsource.Parse(t, "var a = 1;\nLog(a);")

	if got, want := String(src.File), "var a = 1;\nLog(a);"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestFprintLineCommentBreak(t *testing.T) {
	t.Parallel()

	// a line comment in trailing position must end the line before the next token
	l := &Lambda{
		Params: []*Ident{{Name: "x"}},
		Body: &ExprBody{
			X:       &Ident{Name: "x"},
			Comment: Trivia{{Text: "// c"}},
		},
	}
	call := &CallExpr{Fun: &Ident{Name: "Run"}, Args: []Expr{l, &Ident{Name: "y"}}}

	if got, want := String(call), "Run(x => x // c\n, y)"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}
