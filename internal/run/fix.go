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

package run

import (
	"errors"
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/lambdastyle/internal/report"
	"fillmore-labs.com/lambdastyle/internal/rewrite"
	"fillmore-labs.com/lambdastyle/internal/shape"
	"fillmore-labs.com/lambdastyle/internal/syntaxutil"
	"fillmore-labs.com/lambdastyle/syntax"
)

// ErrStaleDiagnostic is returned when a fix is requested for a tree that no longer has the
// shape the diagnostic was computed against.
var ErrStaleDiagnostic = errors.New("diagnostic does not match the syntax tree")

// Fix recomputes the eligibility of the lambda a diagnostic refers to and rewrites it.
// It returns the original lambda and its replacement.
func (r *Options) Fix(file *syntax.File, info *syntax.Info, d report.Diagnostic) (orig, rewritten *syntax.Lambda, err error) {
	return r.fix(indexLambdas(file), info, d)
}

func (r *Options) fix(lambdas lambdaIndex, info *syntax.Info, d report.Diagnostic) (orig, rewritten *syntax.Lambda, err error) {
	l, ok := lambdas[d.Pos]
	if !ok || !d.Pos.IsValid() {
		return nil, nil, fmt.Errorf("%w: no lambda at position %d", ErrStaleDiagnostic, d.Pos)
	}

	s := shape.Classify(l)
	if s.Kind() != d.Shape {
		return nil, nil, fmt.Errorf("%w: body is %s, was %s", ErrStaleDiagnostic, s.Kind(), d.Shape)
	}

	decision, ok := r.Checker().Decide(s, info.Category(l), d.Target)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s body can't be converted to %s", ErrStaleDiagnostic, s.Kind(), d.Target)
	}

	rewritten, err = rewrite.Rewrite(l, decision)
	if err != nil {
		return nil, nil, err
	}

	return l, rewritten, nil
}

// SuggestedFix returns the text edits applying the fix for a diagnostic.
func (r *Options) SuggestedFix(file *syntax.File, info *syntax.Info, d report.Diagnostic) (analysis.SuggestedFix, error) {
	return r.suggestedFix(file, indexLambdas(file), info, d)
}

func (r *Options) suggestedFix(file *syntax.File, lambdas lambdaIndex, info *syntax.Info, d report.Diagnostic) (analysis.SuggestedFix, error) {
	orig, rewritten, err := r.fix(lambdas, info, d)
	if err != nil {
		return analysis.SuggestedFix{}, err
	}

	currentFile := syntaxutil.NewCurrentFile(file)
	if !currentFile.Valid() {
		return analysis.SuggestedFix{}, syntaxutil.InternalError("file without valid position info")
	}

	return report.SuggestedFix(currentFile, orig, rewritten, d.Message)
}

// lambdaIndex maps arrow positions to lambdas.
type lambdaIndex map[token.Pos]*syntax.Lambda

func indexLambdas(file *syntax.File) lambdaIndex {
	if file == nil {
		return nil
	}

	lambdas := make(lambdaIndex)
	for l := range syntax.Lambdas(file) {
		if l.Arrow.IsValid() {
			lambdas[l.Arrow] = l
		}
	}

	return lambdas
}
