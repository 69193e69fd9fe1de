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
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/lambdastyle/syntax"
)

// ErrOverlappingEdits is returned when text edits overlap.
var ErrOverlappingEdits = errors.New("overlapping edits")

// ApplyEdits returns the source of file with the edits applied.
func ApplyEdits(file *syntax.File, edits []analysis.TextEdit) ([]byte, error) {
	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b analysis.TextEdit) int {
		return cmp.Or(cmp.Compare(a.Pos, b.Pos), cmp.Compare(a.End, b.End))
	})

	var (
		out  []byte
		last int
	)

	for _, e := range sorted {
		if !file.Pos().IsValid() || e.Pos < file.Pos() || e.End < e.Pos || e.End > file.End() {
			return nil, fmt.Errorf("edit %d-%d outside of file %s", e.Pos, e.End, file.Name)
		}

		start, end := file.Offset(e.Pos), file.Offset(e.End)
		if start < last {
			return nil, fmt.Errorf("%w at offset %d", ErrOverlappingEdits, start)
		}

		out = append(out, file.Src[last:start]...)
		out = append(out, e.NewText...)
		last = end
	}

	out = append(out, file.Src[last:]...)

	return out, nil
}

// Diff returns a unified diff between want and got, or the empty string if they are equal.
func Diff(name, want, got string) string {
	if want == got {
		return ""
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: name + " (want)",
		ToFile:   name + " (got)",
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Sprintf("can't diff %s: %v", name, err)
	}

	return text
}
