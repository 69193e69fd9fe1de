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

package report

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/lambdastyle/internal/syntaxutil"
	"fillmore-labs.com/lambdastyle/syntax"
)

// ErrUnplacedComment is returned when a fix would drop a comment the syntax tree does not hold.
var ErrUnplacedComment = errors.New("comment not attached to the syntax tree")

// SuggestedFix creates the text edits replacing the lambda orig with its rewrite.
//
// The source span of orig is replaced with the printed rewrite, indented relative to the line
// it starts on. Trailing comments at the end of the rewrite that already follow orig in the
// source stay in place. Trailing comments moved out of the replaced span are appended to the
// end of the span's last line.
func SuggestedFix(currentFile syntaxutil.CurrentFile, orig, rewritten *syntax.Lambda, message string) (analysis.SuggestedFix, error) {
	pos, end := orig.Pos(), orig.End()
	if !pos.IsValid() || !end.IsValid() || !currentFile.Contains(pos) || !currentFile.Contains(end) {
		return analysis.SuggestedFix{}, syntaxutil.InternalError("lambda span %d-%d outside of file", pos, end)
	}

	inSpan := func(c *syntax.Comment) bool { return pos <= c.Pos() && c.End() <= end }

	if err := checkComments(currentFile.File(), rewritten, pos, inSpan); err != nil {
		return analysis.SuggestedFix{}, err
	}

	tail := tailComments(rewritten)

	var moved syntax.Trivia

	for _, c := range tail {
		if !c.Pos().IsValid() || inSpan(c) {
			moved = append(moved, c)
		}
	}

	prefix := currentFile.Indentation(pos)
	printer := syntax.Config{
		Indent: indentUnit(prefix),
		Prefix: prefix,
		Omit:   tail.Contains,
	}

	var buf bytes.Buffer
	if err := printer.Fprint(&buf, rewritten); err != nil {
		return analysis.SuggestedFix{}, fmt.Errorf("can't render lambda: %w", err)
	}

	edits := []analysis.TextEdit{{Pos: pos, End: end, NewText: buf.Bytes()}}

	if len(moved) > 0 {
		eol := currentFile.LineEnd(end)
		edits = append(edits, analysis.TextEdit{Pos: eol, End: eol, NewText: []byte(" " + moved.Text())})
	}

	return analysis.SuggestedFix{Message: message, TextEdits: edits}, nil
}

// checkComments verifies that every comment in the replaced span is held by the rewrite.
func checkComments(file *syntax.File, rewritten *syntax.Lambda, pos token.Pos, inSpan func(*syntax.Comment) bool) error {
	held := make(map[*syntax.Comment]struct{})
	for c := range syntax.AttachedComments(rewritten) {
		held[c] = struct{}{}
	}

	for _, c := range file.Comments {
		if c.Pos() < pos {
			continue
		}

		if !inSpan(c) {
			break
		}

		if _, ok := held[c]; !ok {
			return fmt.Errorf("%w: %s", ErrUnplacedComment, c.Text)
		}
	}

	return nil
}

// tailComments returns the comments printed after the last token of a lambda.
func tailComments(l *syntax.Lambda) syntax.Trivia {
	if body, ok := l.Body.(*syntax.ExprBody); ok {
		return body.Comment.Append(l.Comment)
	}

	return l.Comment.Append()
}

// indentUnit guesses the indentation unit from a line prefix.
func indentUnit(prefix string) string {
	if strings.Contains(prefix, "\t") {
		return "\t"
	}

	return syntax.DefaultIndent
}
