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

// ExpressionBodiedLambdas is the option name of the lambda body preference.
const ExpressionBodiedLambdas = "expression_bodied_lambdas"

// AnyLanguage is the language of options that apply to every language.
const AnyLanguage = "*"

// Scope identifies the context configuration is looked up for.
type Scope struct {
	Language string
	Filename string
}

// Store is the configuration collaborator. Lookups are read-only.
type Store interface {
	// Lookup returns the raw value of the named option for a language.
	Lookup(name, language string) (value string, ok bool)
}

// Key identifies an option value in a [Map].
type Key struct {
	Language string
	Name     string
}

// Map is an in-memory [Store].
type Map map[Key]string

// Lookup implements [Store].
func (m Map) Lookup(name, language string) (string, bool) {
	v, ok := m[Key{Language: language, Name: name}]

	return v, ok
}
