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
	"fillmore-labs.com/lambdastyle/codestyle"
	"fillmore-labs.com/lambdastyle/internal/convert"
)

// Settings is the JSON configuration of the lambdastyle analyzer.
type Settings struct {
	// Style is the preference used when the per-language options hold none.
	Style *codestyle.Preference `json:"style,omitzero"`
	// Languages maps a language (or "*") to its preference value.
	Languages map[string]string `json:"languages,omitzero"`
	// Language is used for files that don't name their language.
	Language *string `json:"language,omitzero"`
	// Generated enables checks in generated files.
	Generated *bool `json:"generated,omitzero"`
	// ThrowExpressions enables converting throw statements to throw-expression bodies.
	ThrowExpressions *bool `json:"throw-expressions,omitzero"`
	// Fix enables suggested fixes.
	Fix *bool `json:"fix,omitzero"`
}

// Options converts the settings into analyzer [Option]s.
func (s Settings) Options() []Option {
	var opts []Option

	opts = appendOption(opts, s.Style, WithPreference)
	opts = appendOption(opts, s.Language, WithLanguage)
	opts = appendOption(opts, s.Generated, WithGenerated)
	opts = appendOption(opts, s.ThrowExpressions, withThrowExpressions)
	opts = appendOption(opts, s.Fix, WithSuggestFixes)

	if s.Languages != nil {
		store := make(codestyle.Map, len(s.Languages))
		for language, value := range s.Languages {
			store[codestyle.Key{Language: language, Name: codestyle.ExpressionBodiedLambdas}] = value
		}

		opts = append(opts, WithStore(store))
	}

	return opts
}

func withThrowExpressions(enabled bool) Option {
	if !enabled {
		return WithThrowExpressions(nil)
	}

	return WithThrowExpressions(convert.AllowThrow)
}

func appendOption[T any](opts []Option, value *T, constructor func(T) Option) []Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
