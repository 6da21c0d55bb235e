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

// TriviaKind classifies a piece of [Trivia].
type TriviaKind uint8

const (
	// Whitespace is a run of spaces and tabs.
	Whitespace TriviaKind = iota
	// EndOfLine is a single line break, "\n" or "\r\n".
	EndOfLine
	// SingleLineComment is a // comment, without the line break.
	SingleLineComment
	// MultiLineComment is a /* */ comment.
	MultiLineComment
	// DocComment is a /// documentation comment line, without the line break.
	DocComment
	// Directive is a preprocessor line like #region or #pragma, without the line break.
	Directive
)

// Trivia is non-semantic source text attached to a token edge.
type Trivia struct {
	Kind TriviaKind
	Text string
}

// IsComment reports whether the trivia is a comment of any form.
func (t Trivia) IsComment() bool {
	switch t.Kind {
	case SingleLineComment, MultiLineComment, DocComment:
		return true

	default:
		return false
	}
}

// Common trivia values.
var (
	Space   = Trivia{Kind: Whitespace, Text: " "}
	Newline = Trivia{Kind: EndOfLine, Text: "\n"}
)

// Spaces returns whitespace trivia of the given text, or nil for an empty string.
func Spaces(text string) TriviaList {
	if text == "" {
		return nil
	}

	return TriviaList{{Kind: Whitespace, Text: text}}
}

// TriviaList is an ordered run of trivia.
type TriviaList []Trivia

// HasComment reports whether the list contains a comment.
func (l TriviaList) HasComment() bool {
	return slices.ContainsFunc(l, Trivia.IsComment)
}

// HasEndOfLine reports whether the list contains a line break.
func (l TriviaList) HasEndOfLine() bool {
	return slices.ContainsFunc(l, func(t Trivia) bool { return t.Kind == EndOfLine })
}

// EndsWithEndOfLine reports whether the last piece is a line break.
func (l TriviaList) EndsWithEndOfLine() bool {
	return len(l) > 0 && l[len(l)-1].Kind == EndOfLine
}

// Comments returns the comments in the list.
func (l TriviaList) Comments() TriviaList {
	var comments TriviaList

	for _, t := range l {
		if t.IsComment() {
			comments = append(comments, t)
		}
	}

	return comments
}

// LastLine returns the pieces after the last line break.
func (l TriviaList) LastLine() TriviaList {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i].Kind == EndOfLine {
			return l[i+1:]
		}
	}

	return l
}

// String returns the concatenated trivia text.
func (l TriviaList) String() string {
	var b strings.Builder
	l.writeTo(&b)

	return b.String()
}

func (l TriviaList) writeTo(b *strings.Builder) {
	for _, t := range l {
		b.WriteString(t.Text) // ignore error
	}
}
