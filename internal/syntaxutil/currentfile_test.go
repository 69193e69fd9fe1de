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

package syntaxutil_test

import (
	"go/token"
	"testing"

	. "fillmore-labs.com/lambdastyle/internal/syntaxutil"
	"fillmore-labs.com/lambdastyle/internal/testsource"
	"fillmore-labs.com/lambdastyle/syntax"
)

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want bool
	}{
		{"//nolint:lambdastyle", true},
		{"// nolint:lambdastyle", true},
		{"//nolint:all", true},
		{"//nolint:gosec,LambdaStyle", true},
		{"//nolint:gocritic", false},
		{"// lambdastyle", false},
		{"/* nolint:lambdastyle */", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			if got := CommentHasNoLint(&syntax.Comment{Text: tt.text}); got != tt.want {
				t.Errorf("Got %t, want %t", got, tt.want)
			}
		})
	}
}

func TestNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"header", "//nolint:lambdastyle\nf = x => x;", true},
		{"after first statement", "f = x => x;\n//nolint:lambdastyle\ng = x => x;", false},
		{"none", "// comment\nf = x => x;", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewCurrentFile(testsource.Parse(t, tt.src).File)

			if got := c.NoLint(); got != tt.want {
				t.Errorf("Got %t, want %t", got, tt.want)
			}
		})
	}
}

func TestNoLintComment(t *testing.T) {
	t.Parallel()

	src := testsource.Parse(t, "f = x => x; //nolint:lambdastyle\ng = x => x; // other\nh = x =>\n    x; //nolint:all")
	c := NewCurrentFile(src.File)

	want := []bool{true, false, false}

	for i, w := range want {
		l := src.Lambda(t, i)
		if got := c.NoLintComment(l.Arrow); got != w {
			t.Errorf("Got %t for lambda %d, want %t", got, i, w)
		}
	}

	if c.NoLintComment(token.NoPos) {
		t.Error("Got suppression for an invalid position")
	}
}

func TestIndentation(t *testing.T) {
	t.Parallel()

	src := testsource.Parse(t, "if (a)\n{\n\t  f = x => x;\n}\n")
	c := NewCurrentFile(src.File)
	l := src.Lambda(t, 0)

	if got, want := c.Indentation(l.Arrow), "\t  "; got != want {
		t.Errorf("Got indentation %q, want %q", got, want)
	}

	eol := c.LineEnd(l.Arrow)
	if got := src.File.Src[src.File.Offset(eol)]; got != '\n' {
		t.Errorf("Got %q at line end, want a line break", got)
	}

	if !c.Contains(l.Arrow) || c.Contains(src.File.End()+1) {
		t.Error("Contains is wrong")
	}
}

func TestInvalidFile(t *testing.T) {
	t.Parallel()

	if NewCurrentFile(nil).Valid() || NewCurrentFile(&syntax.File{}).Valid() {
		t.Error("Got valid file without position information")
	}
}
