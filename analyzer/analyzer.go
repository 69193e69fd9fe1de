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

package analyzer

import (
	"context"
	"flag"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/lambdastyle/internal/convert"
	"fillmore-labs.com/lambdastyle/internal/report"
	"fillmore-labs.com/lambdastyle/internal/run"
	"fillmore-labs.com/lambdastyle/syntax"
)

// Public API constants for the lambdastyle analyzer.
const (
	name = "lambdastyle"
	doc  = `lambdastyle enforces a preference between expression and block bodies of lambdas`
	url  = "https://pkg.go.dev/fillmore-labs.com/lambdastyle"
)

type (
	// Diagnostic is a reported lambda body style violation.
	Diagnostic = report.Diagnostic

	// ThrowPolicy decides for which return categories a throw-expression body may be produced.
	ThrowPolicy = convert.ThrowPolicy

	// Input is a file to analyze together with its semantic information.
	Input = run.Input
)

// ErrStaleDiagnostic is returned by [Analyzer.Fix] when the diagnostic no longer matches the syntax tree.
var ErrStaleDiagnostic = run.ErrStaleDiagnostic

// Analyzer checks lambda bodies against the configured style.
type Analyzer struct {
	Name  string
	Doc   string
	URL   string
	Flags flag.FlagSet // command line options, bound to this analyzer

	r *run.Options
}

// New creates a new instance of the lambdastyle analyzer.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into other tools. For command-line use, the
// pre-configured [Default] variable is typically sufficient.
func New(opts ...Option) *Analyzer {
	r := makeRunOptions(opts)

	a := &Analyzer{
		Name: name,
		Doc:  doc,
		URL:  url,
		r:    r,
	}

	registerFlags(&a.Flags, r)

	return a
}

// Default is a pre-configured *[Analyzer] preferring expression bodies whenever possible.
var Default = New()

// Diagnostics returns the style violations in a file.
func (a *Analyzer) Diagnostics(ctx context.Context, file *syntax.File, info *syntax.Info) ([]Diagnostic, error) {
	return a.r.Run(ctx, file, info)
}

// Run returns the style violations in a file as [analysis.Diagnostic]s with suggested fixes attached.
func (a *Analyzer) Run(ctx context.Context, file *syntax.File, info *syntax.Info) ([]analysis.Diagnostic, error) {
	return a.r.Analyze(ctx, file, info)
}

// RunAll analyzes files concurrently. The diagnostics of each input are returned at the same index.
func (a *Analyzer) RunAll(ctx context.Context, inputs []Input) ([][]Diagnostic, error) {
	return a.r.RunAll(ctx, inputs)
}

// Fix returns the replacement lambda for a diagnostic. The tree is not modified.
func (a *Analyzer) Fix(file *syntax.File, info *syntax.Info, d Diagnostic) (*syntax.Lambda, error) {
	_, rewritten, err := a.r.Fix(file, info, d)

	return rewritten, err
}

// SuggestedFix returns the text edits for a diagnostic.
func (a *Analyzer) SuggestedFix(file *syntax.File, info *syntax.Info, d Diagnostic) (analysis.SuggestedFix, error) {
	return a.r.SuggestedFix(file, info, d)
}
