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

// Package testsource parses a small C#-like lambda language into [syntax] trees for tests.
//
// Statements are written at the top level. Spans marked with [| and |] are recorded
// and removed from the source. Lambdas initializing a variable of an Action or Func type
// get their return category from the declared type, all other lambdas get [Options.Category].
package testsource

import (
	"fmt"
	"go/token"
	"regexp"
	"strings"
	"testing"

	"fillmore-labs.com/lambdastyle/syntax"
)

// Language is the default language identifier of parsed files.
const Language = "csharp"

// Options configure [Options.Parse].
type Options struct {
	Name     string                // file name, default "test.cs"
	Language string                // default [Language]
	Category syntax.ReturnCategory // category of lambdas whose delegate type is not declared
}

// Span is a marked source range.
type Span struct {
	Pos, End token.Pos
}

// Source is a parsed test document.
type Source struct {
	Fset  *token.FileSet
	File  *syntax.File
	Info  *syntax.Info
	Spans []Span
}

// Parse parses a source fragment with default options.
func Parse(tb testing.TB, src string) *Source {
	tb.Helper()

	return Options{}.Parse(tb, src)
}

// Parse parses a source fragment, failing the test on error.
func (o Options) Parse(tb testing.TB, src string) *Source {
	tb.Helper()

	s, err := o.ParseSource(src)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return s
}

// ParseSource parses a source fragment with span markup.
func (o Options) ParseSource(src string) (*Source, error) {
	name := o.Name
	if name == "" {
		name = "test.cs"
	}

	language := o.Language
	if language == "" {
		language = Language
	}

	text, marks, err := Markup(src)
	if err != nil {
		return nil, err
	}

	fset := token.NewFileSet()
	handle := fset.AddFile(name, -1, len(text))
	handle.SetLinesForContent([]byte(text))

	toks, comments, err := scan(handle, text)
	if err != nil {
		return nil, err
	}

	p := parser{
		file:       handle,
		toks:       toks,
		comments:   comments,
		claimed:    make(map[*syntax.Comment]bool),
		categories: make(map[*syntax.Lambda]syntax.ReturnCategory),
	}

	stmts, err := p.parseFile()
	if err != nil {
		return nil, err
	}

	file := &syntax.File{
		Name:      name,
		Language:  language,
		Handle:    handle,
		Src:       []byte(text),
		Stmts:     stmts,
		Comments:  comments,
		Generated: generated(comments, toks[0].pos),
	}

	if o.Category.Known() {
		for l := range syntax.Lambdas(file) {
			if _, ok := p.categories[l]; !ok {
				p.categories[l] = o.Category
			}
		}
	}

	spans := make([]Span, 0, len(marks))
	for _, m := range marks {
		spans = append(spans, Span{Pos: handle.Pos(m[0]), End: handle.Pos(m[1])})
	}

	return &Source{
		Fset:  fset,
		File:  file,
		Info:  &syntax.Info{Categories: p.categories},
		Spans: spans,
	}, nil
}

// Lambda returns the n-th lambda of the source in preorder.
func (s *Source) Lambda(tb testing.TB, n int) *syntax.Lambda {
	tb.Helper()

	i := 0
	for l := range syntax.Lambdas(s.File) {
		if i == n {
			return l
		}

		i++
	}

	tb.Fatalf("Source has %d lambdas, want at least %d", i, n+1)

	return nil
}

// Markup removes [| |] span markers from src and returns the unmarked text together
// with the byte offsets of each span.
func Markup(src string) (string, [][2]int, error) {
	var (
		b     strings.Builder
		spans [][2]int
		open  = -1
	)

	for i := 0; i < len(src); {
		switch {
		case strings.HasPrefix(src[i:], "[|"):
			if open >= 0 {
				return "", nil, fmt.Errorf("nested span marker at offset %d", i)
			}

			open = b.Len()
			i += 2

		case strings.HasPrefix(src[i:], "|]"):
			if open < 0 {
				return "", nil, fmt.Errorf("unopened span marker at offset %d", i)
			}

			spans = append(spans, [2]int{open, b.Len()})
			open = -1
			i += 2

		default:
			b.WriteByte(src[i])
			i++
		}
	}

	if open >= 0 {
		return "", nil, fmt.Errorf("unclosed span marker at offset %d", open)
	}

	return b.String(), spans, nil
}

var generatedPattern = regexp.MustCompile(`^// Code generated .* DO NOT EDIT\.$`)

// generated reports whether a generated code marker precedes the first token.
func generated(comments []*syntax.Comment, first token.Pos) bool {
	for _, c := range comments {
		if c.Pos() >= first {
			break
		}

		if generatedPattern.MatchString(c.Text) {
			return true
		}
	}

	return false
}
