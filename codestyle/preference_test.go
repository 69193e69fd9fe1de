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

package codestyle_test

import (
	"errors"
	"flag"
	"testing"

	. "fillmore-labs.com/lambdastyle/codestyle"
)

func TestParsePreference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  Preference
	}{
		{"true", Preference{WhenPossible, Silent}},
		{"when_possible", Preference{WhenPossible, Silent}},
		{"false", Preference{Never, Silent}},
		{"never", Preference{Never, Silent}},
		{"when_possible:silent", Preference{WhenPossible, Silent}},
		{"when_possible:refactoring", Preference{WhenPossible, Silent}},
		{"never:none", Preference{Never, Silent}},
		{"never:suggestion", Preference{Never, Suggestion}},
		{"true:info", Preference{WhenPossible, Suggestion}},
		{"false:warning", Preference{Never, Warning}},
		{" Never : Error ", Preference{Never, Error}},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()

			got, err := ParsePreference(tt.value)
			if err != nil {
				t.Fatalf("ParsePreference(%q) failed: %v", tt.value, err)
			}

			if got != tt.want {
				t.Errorf("Got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParsePreferenceInvalid(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"", "sometimes", "never:loud", ":warning"} {
		if _, err := ParsePreference(value); !errors.Is(err, ErrInvalidPreference) {
			t.Errorf("ParsePreference(%q) got error %v, want %v", value, err, ErrInvalidPreference)
		}
	}
}

func TestPreferenceString(t *testing.T) {
	t.Parallel()

	for _, p := range []Preference{
		Default,
		{Never, Warning},
		{WhenPossible, Error},
		{Never, Suggestion},
	} {
		got, err := ParsePreference(p.String())
		if err != nil {
			t.Fatalf("Can't parse %q: %v", p.String(), err)
		}

		if got != p {
			t.Errorf("Got %v, want %v", got, p)
		}
	}

	if got, want := Default.String(), "when_possible:silent"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestPreferenceFlag(t *testing.T) {
	t.Parallel()

	p := Default

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&p, "style", "lambda body style")

	if err := fs.Parse([]string{"-style", "never:error"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if want := (Preference{Never, Error}); p != want {
		t.Errorf("Got %v, want %v", p, want)
	}

	if err := fs.Parse([]string{"-style", "maybe"}); err == nil {
		t.Error("Expected error for invalid style")
	}

	if want := (Preference{Never, Error}); p != want {
		t.Errorf("Invalid value changed preference to %v", p)
	}
}
