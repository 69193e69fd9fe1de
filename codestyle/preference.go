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

package codestyle

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Style is the preferred body form of lambdas.
type Style uint8

//go:generate go tool stringer -type Style,Enforcement -linecomment
const (
	// Never prefers block bodies.
	Never Style = iota // never

	// WhenPossible prefers expression bodies whenever the conversion is lossless.
	WhenPossible // when_possible
)

// Enforcement is the severity of a style violation.
type Enforcement uint8

const (
	// Silent reports a diagnostic that is only offered as a refactoring.
	Silent Enforcement = iota // silent

	// Suggestion reports an informational diagnostic.
	Suggestion // suggestion

	// Warning reports a warning.
	Warning // warning

	// Error reports an error.
	Error // error
)

// ErrInvalidPreference is returned when a preference value can't be parsed.
var ErrInvalidPreference = errors.New("invalid preference")

// Preference is the configured lambda body style together with its enforcement.
type Preference struct {
	Style       Style
	Enforcement Enforcement
}

// Default is the preference used when nothing is configured.
var Default = Preference{Style: WhenPossible, Enforcement: Silent}

// ParsePreference parses a preference in the form "<style>[:<enforcement>]".
//
// Style accepts "true" or "when_possible" and "false" or "never".
// Enforcement accepts "silent" (also "none", "hidden", "refactoring"), "suggestion" (also "info"),
// "warning" and "error". A missing enforcement means silent.
func ParsePreference(s string) (Preference, error) {
	value, severity, _ := strings.Cut(strings.TrimSpace(s), ":")

	var p Preference

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "when_possible":
		p.Style = WhenPossible

	case "false", "never":
		p.Style = Never

	default:
		return Preference{}, fmt.Errorf("%w: unknown style %q", ErrInvalidPreference, value)
	}

	switch strings.ToLower(strings.TrimSpace(severity)) {
	case "", "silent", "none", "hidden", "refactoring":
		p.Enforcement = Silent

	case "suggestion", "info":
		p.Enforcement = Suggestion

	case "warning":
		p.Enforcement = Warning

	case "error":
		p.Enforcement = Error

	default:
		return Preference{}, fmt.Errorf("%w: unknown enforcement %q", ErrInvalidPreference, severity)
	}

	return p, nil
}

// String returns the preference in the form accepted by [ParsePreference].
func (p Preference) String() string {
	return p.Style.String() + ":" + p.Enforcement.String()
}

// Set implements [flag.Value].
func (p *Preference) Set(s string) error {
	v, err := ParsePreference(s)
	if err != nil {
		return err
	}

	*p = v

	return nil
}

// Get implements [flag.Getter].
func (p *Preference) Get() any { return *p }

// LogValue implements [slog.LogValuer].
func (p Preference) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("style", p.Style.String()),
		slog.String("enforcement", p.Enforcement.String()),
	)
}

// MarshalText implements [encoding.TextMarshaler].
func (p Preference) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Preference) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}
