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

package testsource

import (
	"fmt"
	"go/token"
	"strings"

	"fillmore-labs.com/lambdastyle/syntax"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokString
	tokPunct
)

type tok struct {
	kind tokenKind
	text string
	pos  token.Pos
}

func (t tok) end() token.Pos { return t.pos + token.Pos(len(t.text)) }

func (t tok) is(text string) bool {
	return (t.kind == tokPunct || t.kind == tokIdent) && t.text == text
}

// two-character operators; ">>" is never joined, so nested type arguments close correctly.
var operators2 = [...]string{"=>", "==", "!=", "&&", "||", "??", "<=", ">="}

const operators1 = "(){}<>,;.=+-*/%!?:[]"

// scan splits src into tokens and comments.
func scan(file *token.File, src string) ([]tok, []*syntax.Comment, error) {
	var (
		toks     []tok
		comments []*syntax.Comment
	)

	for i := 0; i < len(src); {
		c := src[i]
		pos := file.Pos(i)

		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++

		case strings.HasPrefix(src[i:], "//"):
			n := strings.IndexByte(src[i:], '\n')
			if n < 0 {
				n = len(src) - i
			}

			text := strings.TrimRight(src[i:i+n], "\r")
			comments = append(comments, &syntax.Comment{Slash: pos, Text: text})
			i += len(text)

		case strings.HasPrefix(src[i:], "/*"):
			n := strings.Index(src[i+2:], "*/")
			if n < 0 {
				return nil, nil, fmt.Errorf("%s: unterminated comment", file.Position(pos))
			}

			text := src[i : i+n+4]
			comments = append(comments, &syntax.Comment{Slash: pos, Text: text})
			i += len(text)

		case isLetter(c):
			n := i + 1
			for n < len(src) && (isLetter(src[n]) || isDigit(src[n])) {
				n++
			}

			toks = append(toks, tok{kind: tokIdent, text: src[i:n], pos: pos})
			i = n

		case isDigit(c):
			n := i + 1
			for n < len(src) && (isLetter(src[n]) || isDigit(src[n]) || src[n] == '.' && n+1 < len(src) && isDigit(src[n+1])) {
				n++
			}

			toks = append(toks, tok{kind: tokNumber, text: src[i:n], pos: pos})
			i = n

		case c == '"' || c == '\'':
			n, err := quoted(src, i)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: %w", file.Position(pos), err)
			}

			toks = append(toks, tok{kind: tokString, text: src[i:n], pos: pos})
			i = n

		default:
			text := operator(src[i:])
			if text == "" {
				return nil, nil, fmt.Errorf("%s: unexpected character %q", file.Position(pos), c)
			}

			toks = append(toks, tok{kind: tokPunct, text: text, pos: pos})
			i += len(text)
		}
	}

	toks = append(toks, tok{kind: tokEOF, pos: file.Pos(len(src))})

	return toks, comments, nil
}

func quoted(src string, i int) (int, error) {
	q := src[i]
	for n := i + 1; n < len(src); n++ {
		switch src[n] {
		case '\\':
			n++

		case '\n':
			return 0, errUnterminated

		case q:
			return n + 1, nil
		}
	}

	return 0, errUnterminated
}

func operator(s string) string {
	for _, op := range operators2 {
		if strings.HasPrefix(s, op) {
			return op
		}
	}

	if strings.IndexByte(operators1, s[0]) >= 0 {
		return s[:1]
	}

	return ""
}

func isLetter(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_' }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
