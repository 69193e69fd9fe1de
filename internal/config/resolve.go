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

package config

import (
	"context"
	"log/slog"

	"fillmore-labs.com/lambdastyle/codestyle"
)

// Resolve returns the effective lambda body preference for a scope.
//
// The option is looked up for the scope's language first, then for all languages.
// Missing or invalid values fall back to the given preference; invalid values are logged.
func Resolve(ctx context.Context, store codestyle.Store, scope codestyle.Scope, fallback codestyle.Preference, logger *slog.Logger) codestyle.Preference {
	if store == nil {
		return fallback
	}

	for _, language := range languages(scope) {
		value, ok := store.Lookup(codestyle.ExpressionBodiedLambdas, language)
		if !ok {
			continue
		}

		p, err := codestyle.ParsePreference(value)
		if err != nil {
			logger.LogAttrs(ctx, slog.LevelWarn, "Ignoring invalid option value",
				slog.String("option", codestyle.ExpressionBodiedLambdas),
				slog.String("language", language),
				slog.String("file", scope.Filename),
				slog.Any("error", err))

			continue
		}

		return p
	}

	return fallback
}

func languages(scope codestyle.Scope) []string {
	if scope.Language == "" || scope.Language == codestyle.AnyLanguage {
		return []string{codestyle.AnyLanguage}
	}

	return []string{scope.Language, codestyle.AnyLanguage}
}
