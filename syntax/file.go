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

import "go/token"

// File is a parsed source document as delivered by the host.
type File struct {
	Name      string
	Language  string      // host language identifier, used to look up configuration
	Handle    *token.File // position information for the document
	Src       []byte      // document content
	Stmts     []Stmt      // top-level statements
	Comments  []*Comment  // all comments in source order
	Generated bool        // the document is generated code
}

// Info holds the host's semantic information about lambdas in a [File].
type Info struct {
	// Categories maps lambdas to the category of their result, derived from type information.
	Categories map[*Lambda]ReturnCategory
}

// Category returns the recorded return category of l, or [UnknownCategory].
func (i *Info) Category(l *Lambda) ReturnCategory {
	if i == nil {
		return UnknownCategory
	}

	return i.Categories[l]
}

// ReturnCategory classifies the result of a lambda.
type ReturnCategory uint8

//go:generate go tool stringer -type ReturnCategory -linecomment
const (
	// UnknownCategory is used when the host supplied no information.
	UnknownCategory ReturnCategory = iota // unknown

	// VoidLike lambdas have no observable result.
	VoidLike // void

	// Value lambdas return a value synchronously.
	Value // value

	// DeferredVoidLike lambdas return a deferred-computation handle without a value.
	DeferredVoidLike // deferred-void

	// DeferredValue lambdas return a value-bearing deferred-computation handle.
	DeferredValue // deferred-value
)

// ReturnsValue reports whether the body expression of a lambda of this category is its result.
func (c ReturnCategory) ReturnsValue() bool { return c == Value || c == DeferredValue }

// Known reports whether the category was supplied.
func (c ReturnCategory) Known() bool { return c != UnknownCategory && c <= DeferredValue }

// Pos returns the position of the first character of the document.
func (f *File) Pos() token.Pos {
	if f.Handle == nil {
		return token.NoPos
	}

	return token.Pos(f.Handle.Base())
}

// End returns the position immediately after the document.
func (f *File) End() token.Pos {
	if f.Handle == nil {
		return token.NoPos
	}

	return token.Pos(f.Handle.Base() + f.Handle.Size())
}

// Offset returns the byte offset of pos in the document.
func (f *File) Offset(pos token.Pos) int {
	return f.Handle.Offset(pos)
}
