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

package run

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/trace"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/lambdastyle/codestyle"
	"fillmore-labs.com/lambdastyle/internal/config"
	"fillmore-labs.com/lambdastyle/internal/report"
	"fillmore-labs.com/lambdastyle/internal/shape"
	"fillmore-labs.com/lambdastyle/internal/syntaxutil"
	"fillmore-labs.com/lambdastyle/syntax"
)

// Input is a file to analyze together with its semantic information.
type Input struct {
	File *syntax.File
	Info *syntax.Info
}

// Run executes the lambdastyle analyzer's pipeline on a single file.
//
// Lambdas are evaluated independently; cancellation is checked between lambdas.
// When ctx is canceled the diagnostics computed so far are returned together with the context's error.
func (r *Options) Run(ctx context.Context, file *syntax.File, info *syntax.Info) ([]report.Diagnostic, error) {
	ctx, task := trace.NewTask(ctx, "LambdaStyle")
	defer task.End()

	currentFile := syntaxutil.NewCurrentFile(file)
	if !currentFile.Valid() {
		return nil, syntaxutil.InternalError("file without valid position info")
	}

	trace.Log(ctx, "file", file.Name)

	// Skip generated files
	if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
		return nil, nil
	}

	// Skip files with nolint comment
	if currentFile.NoLint() {
		return nil, nil
	}

	scope := codestyle.Scope{Language: file.Language, Filename: file.Name}
	if scope.Language == "" {
		scope.Language = r.Language
	}

	preference := config.Resolve(ctx, r.Store, scope, r.Preference, r.logger())
	checker := r.Checker()

	var diagnostics []report.Diagnostic

	region := trace.StartRegion(ctx, "Evaluate")
	defer region.End()

	for l := range syntax.Lambdas(file) {
		if err := ctx.Err(); err != nil {
			return diagnostics, err
		}

		// Skip lambdas with nolint comment
		if currentFile.NoLintComment(l.Arrow) {
			continue
		}

		s := shape.Classify(l)

		if d, ok := report.Evaluate(l, s, info.Category(l), preference, checker); ok {
			diagnostics = append(diagnostics, d)
		}
	}

	r.logger().LogAttrs(ctx, slog.LevelDebug, "Analyzed file",
		slog.String("file", file.Name),
		slog.Any("preference", preference),
		slog.Int("diagnostics", len(diagnostics)))

	return diagnostics, nil
}

// Analyze runs the pipeline and converts the results into [analysis.Diagnostic]s,
// attaching suggested fixes when enabled.
func (r *Options) Analyze(ctx context.Context, file *syntax.File, info *syntax.Info) ([]analysis.Diagnostic, error) {
	diagnostics, err := r.Run(ctx, file, info)

	defer trace.StartRegion(ctx, "Report").End()

	fixes := r.Behavior.Enabled(config.SuggestFixes) && file != nil && !file.Generated

	var lambdas lambdaIndex
	if fixes && len(diagnostics) > 0 {
		lambdas = indexLambdas(file)
	}

	result := make([]analysis.Diagnostic, 0, len(diagnostics))

	for _, d := range diagnostics {
		if !fixes {
			result = append(result, d.Analysis())
			continue
		}

		fix, ferr := r.suggestedFix(file, lambdas, info, d)
		if ferr != nil {
			r.logger().LogAttrs(ctx, slog.LevelDebug, "Diagnostic without fix",
				slog.String("file", file.Name),
				slog.Any("diagnostic", d),
				slog.Any("error", ferr))

			result = append(result, d.Analysis())

			continue
		}

		result = append(result, d.Analysis(fix))
	}

	return result, err
}

// RunAll analyzes multiple files concurrently.
//
// The result holds the diagnostics of each input at the same index. On error or cancellation
// the diagnostics computed so far are returned together with the first error.
func (r *Options) RunAll(ctx context.Context, inputs []Input) ([][]report.Diagnostic, error) {
	results := make([][]report.Diagnostic, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, in := range inputs {
		g.Go(func() error {
			diagnostics, err := r.Run(ctx, in.File, in.Info)
			results[i] = diagnostics

			return err
		})
	}

	err := g.Wait()

	return results, err
}
