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

package match

import "fillmore-labs.com/linqguard/syntax"

// Existence is the meaning of a count comparison.
type Existence uint8

const (
	// NotExists means "the sequence is empty".
	NotExists Existence = iota
	// Exists means "the sequence has at least one element".
	Exists
)

// Replacement returns the Any() call text expressing e.
func (e Existence) Replacement() string {
	if e == Exists {
		return "Any()"
	}

	return "!Any()"
}

type tableKey struct {
	op          string
	literal     string
	literalLeft bool
}

// comparisons maps (operator, literal, side of the literal) to the meaning of comparing a count.
var comparisons = map[tableKey]Existence{
	{">", "0", false}:  Exists,
	{">=", "1", false}: Exists,
	{"!=", "0", false}: Exists,
	{"==", "0", false}: NotExists,
	{"<=", "0", false}: NotExists,
	{"<", "1", false}:  NotExists,

	{"<", "0", true}:  Exists,
	{"<=", "1", true}: Exists,
	{"!=", "0", true}: Exists,
	{"==", "0", true}: NotExists,
	{">=", "0", true}: NotExists,
	{">", "1", true}:  NotExists,
}

// Classify looks up a comparison of a count with an integer literal.
func Classify(op, literal string, literalLeft bool) (Existence, bool) {
	e, ok := comparisons[tableKey{op: op, literal: literal, literalLeft: literalLeft}]

	return e, ok
}

// Comparison is a count comparison matched by [CountComparison].
type Comparison struct {
	Binary    *syntax.BinaryExpressionSyntax
	Count     syntax.Expr // the non-literal operand
	Literal   string
	Existence Existence
}

// CountComparison decomposes a comparison of an expression with the literal 0 or 1.
func CountComparison(b *syntax.BinaryExpressionSyntax) (Comparison, bool) {
	if lit, ok := intLiteral(b.Right); ok {
		if e, ok := Classify(b.Op.Text, lit, false); ok {
			return Comparison{Binary: b, Count: b.Left, Literal: lit, Existence: e}, true
		}

		return Comparison{}, false
	}

	if lit, ok := intLiteral(b.Left); ok {
		if e, ok := Classify(b.Op.Text, lit, true); ok {
			return Comparison{Binary: b, Count: b.Right, Literal: lit, Existence: e}, true
		}
	}

	return Comparison{}, false
}

func intLiteral(e syntax.Expr) (string, bool) {
	l, ok := e.(*syntax.LiteralExpressionSyntax)
	if !ok || l.Token.Kind != syntax.NumericLiteral {
		return "", false
	}

	return l.Token.Text, true
}
