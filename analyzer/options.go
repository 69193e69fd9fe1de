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
	"log/slog"

	"fillmore-labs.com/lambdastyle/codestyle"
	"fillmore-labs.com/lambdastyle/internal/config"
	"fillmore-labs.com/lambdastyle/internal/run"
)

// Option configures specific behavior of a [New] lambdastyle analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithPreference is an [Option] to configure the style used when no store value applies.
func WithPreference(p codestyle.Preference) Option { return preferenceOption{preference: p} }

type preferenceOption struct{ preference codestyle.Preference }

func (o preferenceOption) apply(r *run.Options) {
	r.Preference = o.preference
}

func (o preferenceOption) LogAttr() slog.Attr {
	return slog.Any("style", o.preference)
}

// WithStore is an [Option] to configure where per-language preferences are looked up.
func WithStore(store codestyle.Store) Option { return storeOption{store: store} }

type storeOption struct{ store codestyle.Store }

func (o storeOption) apply(r *run.Options) {
	r.Store = o.store
}

func (o storeOption) LogAttr() slog.Attr {
	return slog.Bool("store", o.store != nil)
}

// WithLanguage is an [Option] to configure the language of files that don't name one.
func WithLanguage(language string) Option { return languageOption{language: language} }

type languageOption struct{ language string }

func (o languageOption) apply(r *run.Options) {
	r.Language = o.language
}

func (o languageOption) LogAttr() slog.Attr {
	return slog.String("language", o.language)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithThrowExpressions is an [Option] to restrict the return categories of lambdas
// whose throw statement may become a throw-expression body. A nil policy disables throw-expressions.
func WithThrowExpressions(policy ThrowPolicy) Option {
	return throwOption{policy: policy}
}

type throwOption struct{ policy ThrowPolicy }

func (o throwOption) apply(r *run.Options) {
	r.Behavior.Set(config.ThrowExpressions, o.policy != nil)
	r.ThrowPolicy = o.policy
}

func (o throwOption) LogAttr() slog.Attr {
	return slog.Bool("throw-expressions", o.policy != nil)
}

// WithSuggestFixes is an [Option] to configure whether diagnostics carry suggested fixes.
func WithSuggestFixes(fixes bool) Option { return fixesOption{fixes: fixes} }

type fixesOption struct{ fixes bool }

func (o fixesOption) apply(r *run.Options) {
	r.Behavior.Set(config.SuggestFixes, o.fixes)
}

func (o fixesOption) LogAttr() slog.Attr {
	return slog.Bool("fix", o.fixes)
}

// WithLogger is an [Option] to configure the logger for debug and configuration messages.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *run.Options) {
	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
