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

package shape_test

import (
	"testing"

	. "fillmore-labs.com/lambdastyle/internal/shape"
	"fillmore-labs.com/lambdastyle/internal/testsource"
	"fillmore-labs.com/lambdastyle/syntax"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		src    string
		kind   Kind
		reason Reason
	}{
		{"expression", `f = x => x.ToString();`, KindExpression, 0},
		{"throw expression", `f = x => throw new Exception();`, KindThrowExpression, 0},
		{"coalesce throw", `f = x => x ?? throw null;`, KindExpression, 0},
		{"return", `f = x => { return x; };`, KindReturnStatement, 0},
		{"throw", `f = x => { throw null; };`, KindThrowStatement, 0},
		{"expression statement", `f = x => { Log(x); };`, KindExpressionStatement, 0},
		{"await statement", `f = async () => { await Task.Delay(1); };`, KindExpressionStatement, 0},
		{"empty", `f = x => { };`, KindIneligible, EmptyBlock},
		{"two statements", `f = x => { Log(x); return x; };`, KindIneligible, MultipleStatements},
		{"bare return", `f = x => { return; };`, KindIneligible, MissingOperand},
		{"rethrow", `f = x => { throw; };`, KindIneligible, MissingOperand},
		{"declaration", `f = x => { var y = x; };`, KindIneligible, UnsupportedStatement},
		{"if", `f = x => { if (x) return 1; };`, KindIneligible, UnsupportedStatement},
		{"nested block", `f = x => { { return x; } };`, KindIneligible, UnsupportedStatement},
		{"empty statement", `f = x => { ; };`, KindIneligible, UnsupportedStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			l := testsource.Parse(t, tt.src).Lambda(t, 0)

			// when
			s := Classify(l)

			// then
			if got := s.Kind(); got != tt.kind {
				t.Errorf("Got kind %s, want %s", got, tt.kind)
			}

			if i, ok := s.(Ineligible); ok && i.Reason != tt.reason {
				t.Errorf("Got reason %s, want %s", i.Reason, tt.reason)
			}
		})
	}
}

func TestClassifyMissingBody(t *testing.T) {
	t.Parallel()

	s := Classify(&syntax.Lambda{})

	if i, ok := s.(Ineligible); !ok || i.Reason != MissingBody {
		t.Errorf("Got %#v, want missing body", s)
	}
}

func TestClassifyTrivia(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		leading  string
		trailing string
	}{
		{
			name: "block",
			src: `f = x =>
{
    // leading
    return x; // trailing
    // end
};`,
			leading:  "// leading",
			trailing: "// trailing // end",
		},
		{
			name: "expression",
			src: `f = x =>
    /* leading */
    x; // trailing`,
			leading:  "/* leading */",
			trailing: "// trailing",
		},
		{
			name:     "no comments",
			src:      `f = x => { return x; };`,
			leading:  "",
			trailing: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := testsource.Parse(t, tt.src).Lambda(t, 0)

			c := Classify(l).Comments()

			if got := c.Leading.Text(); got != tt.leading {
				t.Errorf("Got leading %q, want %q", got, tt.leading)
			}

			if got := c.Trailing.Text(); got != tt.trailing {
				t.Errorf("Got trailing %q, want %q", got, tt.trailing)
			}
		})
	}
}
