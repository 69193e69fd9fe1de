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
	"log/slog"

	"fillmore-labs.com/lambdastyle/codestyle"
	"fillmore-labs.com/lambdastyle/internal/config"
	"fillmore-labs.com/lambdastyle/internal/convert"
)

// Options represent configuration options for the lambdastyle analyzer.
type Options struct {
	// Preference is used when the store holds no valid preference.
	Preference codestyle.Preference

	// Store is the configuration collaborator; nil uses Preference for every file.
	Store codestyle.Store

	// Language is used for files that don't name their language.
	Language string

	// Behavior holds behavioral options.
	Behavior config.BitMask[config.Behavior]

	// ThrowPolicy restricts throw-expression bodies to certain return categories.
	ThrowPolicy convert.ThrowPolicy

	// Logger receives debug and configuration messages.
	Logger *slog.Logger
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Preference: codestyle.Default,
		Behavior:   config.DefaultBehavior(),
		Logger:     slog.New(slog.DiscardHandler),
	}
}

// Checker returns the conversion checker for these options.
func (r *Options) Checker() convert.Checker {
	if !r.Behavior.Enabled(config.ThrowExpressions) {
		return convert.Checker{ThrowAllowed: convert.DenyThrow}
	}

	return convert.Checker{ThrowAllowed: r.ThrowPolicy}
}

func (r *Options) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return r.Logger
}
