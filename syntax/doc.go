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

// Package syntax defines the host syntax tree the lambdastyle analyzer works on.
//
// The host parses documents, attaches comments to the nodes they belong to and supplies
// return categories for lambdas in an [Info]. The analyzer never parses text: it matches
// on node shapes and trivia and produces replacement nodes, which the host applies with
// its own tree editing, or as text edits printed with [Config.Fprint].
//
// Comment attachment follows these rules:
//
//   - Comments on the lines before a statement are its [Comments.Doc].
//   - A comment after a statement on the same line is its [Comments.Comment].
//   - Comments before a closing brace not claimed by a statement are the block's EndDoc.
//   - Comments between the arrow and an expression body are the [ExprBody] Doc.
//   - A comment ending the line an expression body ends on is the [ExprBody] Comment.
package syntax
