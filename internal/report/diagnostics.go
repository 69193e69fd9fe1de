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

package report

import (
	"go/token"
	"log/slog"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/lambdastyle/codestyle"
	"fillmore-labs.com/lambdastyle/internal/convert"
	"fillmore-labs.com/lambdastyle/internal/shape"
	"fillmore-labs.com/lambdastyle/syntax"
)

// Diagnostic messages.
const (
	MessageUseExpression = "Use expression body for lambda (ls:exp)"
	MessageUseBlock      = "Use block body for lambda (ls:blk)"
)

// Diagnostic is a reported lambda body style violation.
type Diagnostic struct {
	Pos, End token.Pos             // span of the lambda's arrow
	Severity codestyle.Enforcement // configured enforcement
	Target   convert.Direction     // body form the fix produces
	Shape    shape.Kind            // body shape the diagnostic was computed against
	Message  string
}

// Evaluate compares the body shape of a lambda with the preferred style.
//
// A block body is reported when expression bodies are preferred and the block converts
// losslessly. An expression body is reported when block bodies are preferred and the return
// category determines the statement it becomes. The diagnostic always spans the arrow token.
func Evaluate(l *syntax.Lambda, s shape.Shape, category syntax.ReturnCategory, p codestyle.Preference, checker convert.Checker) (Diagnostic, bool) {
	if !l.Arrow.IsValid() {
		return Diagnostic{}, false
	}

	var (
		target  convert.Direction
		message string
	)

	switch p.Style {
	case codestyle.WhenPossible:
		if !s.Kind().IsBlock() {
			return Diagnostic{}, false
		}

		if _, ok := checker.ToExpression(s, category); !ok {
			return Diagnostic{}, false
		}

		target, message = convert.ToExpression, MessageUseExpression

	case codestyle.Never:
		if !s.Kind().IsExpression() {
			return Diagnostic{}, false
		}

		if _, ok := checker.ToBlock(s, category); !ok {
			return Diagnostic{}, false
		}

		target, message = convert.ToBlock, MessageUseBlock

	default:
		return Diagnostic{}, false
	}

	return Diagnostic{
		Pos:      l.Arrow,
		End:      l.Arrow + token.Pos(len("=>")),
		Severity: p.Enforcement,
		Target:   target,
		Shape:    s.Kind(),
		Message:  message,
	}, true
}

// Analysis converts the diagnostic into an [analysis.Diagnostic], using the severity as category.
func (d Diagnostic) Analysis(fixes ...analysis.SuggestedFix) analysis.Diagnostic {
	return analysis.Diagnostic{
		Pos:            d.Pos,
		End:            d.End,
		Category:       d.Severity.String(),
		Message:        d.Message,
		SuggestedFixes: fixes,
	}
}

// LogValue implements [slog.LogValuer].
func (d Diagnostic) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("pos", int(d.Pos)),
		slog.String("severity", d.Severity.String()),
		slog.String("target", d.Target.String()),
		slog.String("shape", d.Shape.String()),
	)
}
