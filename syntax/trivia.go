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

package syntax

import (
	"go/token"
	"slices"
	"strings"
)

// Comment is a single // line comment or /* block */ comment.
type Comment struct {
	Slash token.Pos // position of the leading '/'
	Text  string    // comment text including the comment markers
}

func (c *Comment) Pos() token.Pos { return c.Slash }
func (c *Comment) End() token.Pos { return offset(c.Slash, len(c.Text)) }

// IsLine reports whether c is a line comment, which must be followed by a line break.
func (c *Comment) IsLine() bool { return strings.HasPrefix(c.Text, "//") }

// Trivia is an ordered sequence of comments attached to a token or node.
// Trivia is relocated, never discarded, when a node is rewritten.
type Trivia []*Comment

// Empty reports whether t holds no comments.
func (t Trivia) Empty() bool { return len(t) == 0 }

// Append returns the comments of t followed by the comments of others.
// The result never shares its backing array with t.
func (t Trivia) Append(others ...Trivia) Trivia {
	n := len(t)
	for _, o := range others {
		n += len(o)
	}

	if n == 0 {
		return nil
	}

	r := make(Trivia, 0, n)
	r = append(r, t...)

	for _, o := range others {
		r = append(r, o...)
	}

	return r
}

// Contains reports whether c is part of t.
func (t Trivia) Contains(c *Comment) bool { return slices.Contains(t, c) }

// Text returns the comment texts joined by a single space.
func (t Trivia) Text() string {
	texts := make([]string, 0, len(t))
	for _, c := range t {
		texts = append(texts, c.Text)
	}

	return strings.Join(texts, " ")
}
