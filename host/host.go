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

// Package host defines what linqguard consumes from the host compiler front end: documents
// with their syntax tree and a semantic model answering symbol and type queries.
package host

import "fillmore-labs.com/linqguard/syntax"

// Model answers semantic queries for one document.
//
// Implementations must be safe for concurrent use. A query that cannot be answered, for
// example because of compilation errors, returns false.
type Model interface {
	// Symbol returns the symbol a name, member access or invocation resolves to.
	// For an invocation this is the invoked method.
	Symbol(n syntax.Node) (Symbol, bool)

	// TypeInfo returns the static and converted type of an expression.
	TypeInfo(e syntax.Expr) (TypeInfo, bool)
}

// Parser turns source text into a syntax tree. It is used to validate fixes.
type Parser interface {
	Parse(name, text string) (*syntax.CompilationUnitSyntax, error)
}

// Document is a parsed source file with its semantic model.
type Document struct {
	Name  string
	Root  *syntax.CompilationUnitSyntax
	Model Model // nil for edited documents
}

// Text renders the document.
func (d *Document) Text() string { return syntax.Text(d.Root) }

// WithRoot returns an edited copy of the document. The semantic model does not carry over.
func (d *Document) WithRoot(root *syntax.CompilationUnitSyntax) *Document {
	return &Document{Name: d.Name, Root: root}
}
