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
	"slices"
	"strings"
)

// NoPos is the position of synthesized tokens.
const NoPos = -1

// TokenKind classifies a [Token].
type TokenKind uint8

const (
	// Identifier is a name, including contextual keywords like var, get or not.
	Identifier TokenKind = iota
	// Keyword is a reserved word.
	Keyword
	// NumericLiteral is an integer or real literal.
	NumericLiteral
	// StringLiteral is a regular or verbatim string literal.
	StringLiteral
	// InterpolatedString is an interpolated string literal.
	InterpolatedString
	// CharLiteral is a character literal.
	CharLiteral
	// Punctuation is an operator or a delimiter.
	Punctuation
	// EndOfFile terminates a compilation unit and carries the trailing trivia of the file.
	EndOfFile
)

// Token is an immutable lexical token together with its surrounding trivia.
type Token struct {
	Kind     TokenKind
	Text     string
	Leading  TriviaList
	Trailing TriviaList
	Pos      int // offset of Text, or NoPos
}

func (*Token) isElement() {}

// Is reports whether the token has the given text.
func (t *Token) Is(text string) bool { return t != nil && t.Text == text }

// End returns the offset after the token text.
func (t *Token) End() int {
	if t.Pos == NoPos {
		return NoPos
	}

	return t.Pos + len(t.Text)
}

// Span returns the text span of the token.
func (t *Token) Span() Span { return Span{Start: t.Pos, End: t.End()} }

// WithLeading returns a copy of the token with the given leading trivia.
func (t *Token) WithLeading(leading TriviaList) *Token {
	c := *t
	c.Leading = leading

	return &c
}

// WithTrailing returns a copy of the token with the given trailing trivia.
func (t *Token) WithTrailing(trailing TriviaList) *Token {
	c := *t
	c.Trailing = trailing

	return &c
}

// Clone returns a detached copy of the token.
func (t *Token) Clone() *Token {
	c := *t
	c.Leading = slices.Clone(t.Leading)
	c.Trailing = slices.Clone(t.Trailing)

	return &c
}

// FullText returns the token text including leading and trailing trivia.
func (t *Token) FullText() string {
	var b strings.Builder
	t.writeTo(&b)

	return b.String()
}

func (t *Token) writeTo(b *strings.Builder) {
	t.Leading.writeTo(b)
	b.WriteString(t.Text) // ignore error
	t.Trailing.writeTo(b)
}

// NewToken creates a synthesized token.
func NewToken(kind TokenKind, text string) *Token {
	return &Token{Kind: kind, Text: text, Pos: NoPos}
}

// Punct creates a synthesized punctuation token.
func Punct(text string) *Token { return NewToken(Punctuation, text) }

// Kw creates a synthesized keyword token.
func Kw(text string) *Token { return NewToken(Keyword, text) }

// Ident creates a synthesized identifier token.
func Ident(text string) *Token { return NewToken(Identifier, text) }

// Spaced returns a copy of the token surrounded by single spaces.
func Spaced(t *Token) *Token {
	c := *t
	c.Leading = TriviaList{Space}
	c.Trailing = TriviaList{Space}

	return &c
}

// SpaceAfter returns a copy of the token followed by a single space.
func SpaceAfter(t *Token) *Token {
	c := *t
	c.Trailing = TriviaList{Space}

	return &c
}
