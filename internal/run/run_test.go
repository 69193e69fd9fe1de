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

package run_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"fillmore-labs.com/lambdastyle/codestyle"
	"fillmore-labs.com/lambdastyle/internal/config"
	"fillmore-labs.com/lambdastyle/internal/convert"
	. "fillmore-labs.com/lambdastyle/internal/run"
	"fillmore-labs.com/lambdastyle/internal/syntaxutil"
	"fillmore-labs.com/lambdastyle/internal/testsource"
	"fillmore-labs.com/lambdastyle/syntax"
)

const blocks = `
Func<int, string> f = x => { return x.ToString(); };
Func<int, string> g = x => { throw null; };
Action<int> h = x => { Log(x); }; //nolint:lambdastyle
Func<int, int> i = x => { Log(x); return x; };
`

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options func(r *Options)
		want    int
	}{
		{"default", func(*Options) {}, 2},
		{"no throw expressions", func(r *Options) { r.Behavior.Set(config.ThrowExpressions, false) }, 1},
		{"throw policy", func(r *Options) { r.ThrowPolicy = convert.DenyThrow }, 1},
		{"never", func(r *Options) { r.Preference = codestyle.Preference{Style: codestyle.Never} }, 0},
		{
			name: "store",
			options: func(r *Options) {
				r.Store = codestyle.Map{{Language: "*", Name: codestyle.ExpressionBodiedLambdas}: "never"}
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			src := testsource.Parse(t, blocks)
			r := DefaultOptions()
			tt.options(r)

			// when
			diagnostics, err := r.Run(t.Context(), src.File, src.Info)

			// then
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			if len(diagnostics) != tt.want {
				t.Errorf("Got %d diagnostics, want %d", len(diagnostics), tt.want)
			}
		})
	}
}

func TestRunGenerated(t *testing.T) {
	t.Parallel()

	src := testsource.Parse(t, "// Code generated by lambdagen. DO NOT EDIT.\n"+blocks)

	r := DefaultOptions()

	diagnostics, err := r.Run(t.Context(), src.File, src.Info)
	if err != nil || len(diagnostics) != 0 {
		t.Errorf("Got %d diagnostics (%v) in generated file, want none", len(diagnostics), err)
	}

	r.Behavior.Enable(config.IncludeGenerated)

	analysis, err := r.Analyze(t.Context(), src.File, src.Info)
	if err != nil || len(analysis) != 2 {
		t.Fatalf("Got %d diagnostics (%v) in generated file, want 2", len(analysis), err)
	}

	for _, d := range analysis {
		if len(d.SuggestedFixes) != 0 {
			t.Errorf("Got fix for %q in generated file", d.Message)
		}
	}
}

func TestRunCanceled(t *testing.T) {
	t.Parallel()

	src := testsource.Parse(t, blocks)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	diagnostics, err := DefaultOptions().Run(ctx, src.File, src.Info)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Got error %v, want %v", err, context.Canceled)
	}

	if len(diagnostics) != 0 {
		t.Errorf("Got %d diagnostics after cancellation, want none", len(diagnostics))
	}
}

func TestRunInvalidFile(t *testing.T) {
	t.Parallel()

	if _, err := DefaultOptions().Run(t.Context(), &syntax.File{}, nil); !errors.Is(err, syntaxutil.ErrInternal) {
		t.Errorf("Got error %v, want %v", err, syntaxutil.ErrInternal)
	}

	if _, err := DefaultOptions().Analyze(t.Context(), nil, nil); !errors.Is(err, syntaxutil.ErrInternal) {
		t.Errorf("Got error %v, want %v", err, syntaxutil.ErrInternal)
	}
}

func TestRunLogs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	src := testsource.Parse(t, blocks)

	r := DefaultOptions()
	r.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if _, err := r.Run(t.Context(), src.File, src.Info); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if out := buf.String(); !strings.Contains(out, "Analyzed file") || !strings.Contains(out, "diagnostics=2") {
		t.Errorf("Got log %q", out)
	}
}

func TestRunAll(t *testing.T) {
	t.Parallel()

	sources := []string{blocks, "f = x => x;", blocks}

	inputs := make([]Input, 0, len(sources))
	for _, s := range sources {
		src := testsource.Parse(t, s)
		inputs = append(inputs, Input{File: src.File, Info: src.Info})
	}

	results, err := DefaultOptions().RunAll(t.Context(), inputs)
	if err != nil {
		t.Fatalf("RunAll failed: %v", err)
	}

	if len(results) != len(inputs) {
		t.Fatalf("Got %d results, want %d", len(results), len(inputs))
	}

	for i, want := range []int{2, 0, 2} {
		if got := len(results[i]); got != want {
			t.Errorf("Got %d diagnostics for input %d, want %d", got, i, want)
		}
	}
}

func TestRunAllError(t *testing.T) {
	t.Parallel()

	src := testsource.Parse(t, blocks)
	inputs := []Input{{File: src.File, Info: src.Info}, {File: &syntax.File{}}}

	results, err := DefaultOptions().RunAll(t.Context(), inputs)
	if !errors.Is(err, syntaxutil.ErrInternal) {
		t.Errorf("Got error %v, want %v", err, syntaxutil.ErrInternal)
	}

	if len(results) != len(inputs) {
		t.Errorf("Got %d results, want %d", len(results), len(inputs))
	}
}

func TestFixStale(t *testing.T) {
	t.Parallel()

	src := testsource.Parse(t, blocks)
	r := DefaultOptions()

	diagnostics, err := r.Run(t.Context(), src.File, src.Info)
	if err != nil || len(diagnostics) == 0 {
		t.Fatalf("Got %d diagnostics (%v)", len(diagnostics), err)
	}

	d := diagnostics[0]
	d.Shape = 0

	if _, _, err := r.Fix(src.File, src.Info, d); !errors.Is(err, ErrStaleDiagnostic) {
		t.Errorf("Got error %v, want %v", err, ErrStaleDiagnostic)
	}

	orig, rewritten, err := r.Fix(src.File, src.Info, diagnostics[0])
	if err != nil {
		t.Fatalf("Fix failed: %v", err)
	}

	if orig == rewritten || orig.Arrow != diagnostics[0].Pos {
		t.Error("Fix returned the wrong lambda")
	}
}

func TestIndexLambdas(t *testing.T) {
	t.Parallel()

	// given
	src := testsource.Parse(t, "f = x => y => x;\nRun(() => { g = z => z; });")

	// when
	lambdas := IndexLambdas(src.File)

	// then
	n := 0
	for l := range syntax.Lambdas(src.File) {
		n++

		if got := lambdas[l.Arrow]; got != l {
			t.Errorf("Got %p at arrow %d, want %p", got, l.Arrow, l)
		}
	}

	if len(lambdas) != n {
		t.Errorf("Got %d indexed lambdas, want %d", len(lambdas), n)
	}

	if got := IndexLambdas(nil); len(got) != 0 {
		t.Errorf("Got %d lambdas for a missing file, want none", len(got))
	}
}
