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

package syntaxutil

import (
	"bytes"
	"go/token"
	"regexp"
	"slices"
	"strings"

	"fillmore-labs.com/lambdastyle/syntax"
)

// lambdastyle is the name of the linter.
const lambdastyle = "lambdastyle"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file *syntax.File
}

// NewCurrentFile creates a new [CurrentFile] from a *[syntax.File].
func NewCurrentFile(file *syntax.File) CurrentFile {
	if file == nil || file.Handle == nil {
		return CurrentFile{}
	}

	return CurrentFile{file}
}

// Valid returns true if the [CurrentFile] was created from a file with position information.
func (c CurrentFile) Valid() bool {
	return c.file != nil
}

// File returns the underlying *[syntax.File].
func (c CurrentFile) File() *syntax.File {
	return c.file
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.file.Generated
}

func (c CurrentFile) line(pos token.Pos) int {
	return c.file.Handle.PositionFor(pos, false).Line
}

// NoLint checks if the whole file is excluded by a //nolint:lambdastyle comment before the first statement.
func (c CurrentFile) NoLint() bool {
	if len(c.file.Comments) == 0 {
		return false
	}

	first := c.file.End()
	if len(c.file.Stmts) > 0 {
		first = c.file.Stmts[0].Pos()
	}

	for _, comment := range c.file.Comments {
		if comment.Pos() >= first {
			break
		}

		if CommentHasNoLint(comment) {
			return true
		}
	}

	return false
}

// NoLintComment checks if a line carries a //nolint:lambdastyle comment.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if !pos.IsValid() {
		return false
	}

	comments := c.file.Comments

	// find the first comment on the line of pos
	start := c.file.Handle.LineStart(c.line(pos))

	i, _ := slices.BinarySearchFunc(comments, start,
		func(c *syntax.Comment, p token.Pos) int { return int(c.Pos() - p) })

	for ; i < len(comments); i++ {
		comment := comments[i]
		if c.line(comment.Pos()) != c.line(pos) {
			return false // not on this line
		}

		if CommentHasNoLint(comment) {
			return true
		}
	}

	return false
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `//nolint:lambdastyle` directive.
func CommentHasNoLint(comment *syntax.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == lambdastyle || l == "all" {
			return true
		}
	}

	return false
}

// Indentation returns the leading white space of the line containing pos.
func (c CurrentFile) Indentation(pos token.Pos) string {
	start := c.file.Offset(c.file.Handle.LineStart(c.line(pos)))
	src := c.file.Src[start:]

	n := len(src) - len(bytes.TrimLeft(src, " \t"))

	return string(src[:n])
}

// LineEnd returns the position of the line break ending the line containing pos,
// or the end of the file.
func (c CurrentFile) LineEnd(pos token.Pos) token.Pos {
	offset := c.file.Offset(pos)

	i := bytes.IndexByte(c.file.Src[offset:], '\n')
	if i < 0 {
		return c.file.End()
	}

	if i > 0 && c.file.Src[offset+i-1] == '\r' {
		i--
	}

	return pos + token.Pos(i)
}

// Contains reports whether pos lies within the file.
func (c CurrentFile) Contains(pos token.Pos) bool {
	return c.file.Pos() <= pos && pos <= c.file.End()
}
