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

// Package trivia moves whitespace and comments across tree edits.
//
// Rewrites replace nodes wholesale, so the trivia attached to the replaced tokens has to be
// carried over explicitly. Comments are never dropped: whatever cannot be mapped to a
// corresponding position is attached to the trailing edge of the replacement.
package trivia

import (
	"slices"
	"strings"

	"fillmore-labs.com/linqguard/syntax"
)

// Preserve returns replacement with the edge trivia of old and every comment of old that
// the result would otherwise lose.
func Preserve[N syntax.Node](old syntax.Node, replacement N) N {
	result := syntax.WithTrailing(syntax.WithLeading(replacement, syntax.Leading(old)), syntax.Trailing(old))

	return Attach(result, Missing(old, result)...)
}

// TransplantLeading returns dst with the leading trivia of src.
func TransplantLeading[N syntax.Node](dst N, src syntax.Node) N {
	return syntax.WithLeading(dst, syntax.Leading(src))
}

// TransplantTrailing returns dst with the trailing trivia of src.
func TransplantTrailing[N syntax.Node](dst N, src syntax.Node) N {
	return syntax.WithTrailing(dst, syntax.Trailing(src))
}

// Comments returns the comments of n in source order.
func Comments(n syntax.Node) []syntax.Trivia {
	var comments []syntax.Trivia

	for tok := range syntax.Tokens(n) {
		comments = append(comments, tok.Leading.Comments()...)
		comments = append(comments, tok.Trailing.Comments()...)
	}

	return comments
}

// Missing returns the comments of before that are not present in after, counting duplicates.
func Missing(before, after syntax.Node) []syntax.Trivia {
	present := make(map[syntax.Trivia]int)
	for _, c := range Comments(after) {
		present[c]++
	}

	var missing []syntax.Trivia

	for _, c := range Comments(before) {
		if present[c] > 0 {
			present[c]--

			continue
		}

		missing = append(missing, c)
	}

	return missing
}

// Attach appends comments to the trailing edge of n, in front of its end of line.
//
// Block comments go in front of a line comment already ending the line. A line comment always
// ends its line, so further line comments start new lines and a line break is added when the
// trailing trivia has none.
func Attach[N syntax.Node](n N, comments ...syntax.Trivia) N {
	if len(comments) == 0 {
		return n
	}

	trailing := syntax.Trailing(n)

	var eol syntax.TriviaList
	if trailing.EndsWithEndOfLine() {
		eol = trailing[len(trailing)-1:]
		trailing = trailing[:len(trailing)-1]
	}

	k := slices.IndexFunc(trailing, isLineComment)
	if k < 0 {
		k = len(trailing)
	}

	out := make(syntax.TriviaList, 0, len(trailing)+2*len(comments)+1)
	out = append(out, trailing[:k]...)

	var lines []syntax.Trivia

	for _, c := range comments {
		if isLineComment(c) {
			lines = append(lines, c)

			continue
		}

		out = appendSpaced(out, c)
	}

	lineOpen := k < len(trailing)
	if lineOpen {
		out = appendSpaced(out, trailing[k])
		out = append(out, trailing[k+1:]...)
	}

	for _, c := range lines {
		if lineOpen {
			out = append(out, syntax.Newline, c)
		} else {
			out = appendSpaced(out, c)
		}

		lineOpen = true
	}

	switch {
	case eol != nil:
		out = append(out, eol...)

	case lineOpen:
		out = append(out, syntax.Newline)
	}

	return syntax.WithTrailing(n, out)
}

func isLineComment(t syntax.Trivia) bool {
	return t.Kind == syntax.SingleLineComment || t.Kind == syntax.DocComment
}

func appendSpaced(l syntax.TriviaList, c syntax.Trivia) syntax.TriviaList {
	if len(l) == 0 || l[len(l)-1].Kind != syntax.Whitespace {
		l = append(l, syntax.Space)
	}

	return append(l, c)
}

// Strip returns n without the whitespace on its edges, keeping edge comments.
func Strip[N syntax.Node](n N) N {
	leading := syntax.Leading(n)

	first := len(leading)
	for i, t := range leading {
		if t.IsComment() {
			first = i

			break
		}
	}

	trailing := syntax.Trailing(n)

	last := 0

	for i, t := range trailing {
		if t.IsComment() {
			last = i + 1
			if t.Kind != syntax.MultiLineComment {
				last = len(trailing)
			}
		}
	}

	return syntax.WithTrailing(syntax.WithLeading(n, leading[first:]), trailing[:last])
}

// StartsLine reports whether tok is the first token on its line, given the token before it.
func StartsLine(prev, tok *syntax.Token) bool {
	return prev == nil || prev.Trailing.EndsWithEndOfLine() || tok.Leading.HasEndOfLine()
}

// Indentation returns the whitespace in front of tok on its line.
func Indentation(tok *syntax.Token) string {
	line := tok.Leading.LastLine()
	if len(line) > 0 && line[0].Kind == syntax.Whitespace {
		return line[0].Text
	}

	return ""
}

// WithIndentation returns tok with the whitespace in front of it on its line replaced by indent.
func WithIndentation(tok *syntax.Token, indent string) *syntax.Token {
	line := tok.Leading.LastLine()
	head := tok.Leading[:len(tok.Leading)-len(line)]

	if len(line) > 0 && line[0].Kind == syntax.Whitespace {
		line = line[1:]
	}

	leading := make(syntax.TriviaList, 0, len(head)+len(line)+1)
	leading = append(leading, head...)
	leading = append(leading, syntax.Spaces(indent)...)
	leading = append(leading, line...)

	return tok.WithLeading(leading)
}

// IndentUnit guesses the indentation unit from the indentation of a line.
func IndentUnit(indent string) string {
	if strings.HasPrefix(indent, "\t") {
		return "\t"
	}

	return "    "
}

// Reindent returns n with every line it starts indented by unit.
// The first token of n is assumed to start a line.
func Reindent[N syntax.Node](n N, unit string) N {
	atLineStart := true

	return syntax.MapTokens(n, func(tok *syntax.Token) *syntax.Token {
		leading := indentTrivia(tok.Leading, atLineStart, unit)
		atLineStart = tok.Trailing.EndsWithEndOfLine()

		if leading == nil {
			return tok
		}

		return tok.WithLeading(leading)
	})
}

// indentTrivia prefixes every line start in l with unit. It returns nil when nothing changes.
func indentTrivia(l syntax.TriviaList, atLineStart bool, unit string) syntax.TriviaList {
	var (
		out     syntax.TriviaList
		changed bool
	)

	for _, t := range l {
		switch {
		case t.Kind == syntax.EndOfLine:
			atLineStart = true

		case atLineStart && t.Kind == syntax.Whitespace:
			t.Text = unit + t.Text
			atLineStart, changed = false, true

		case atLineStart:
			out = append(out, syntax.Trivia{Kind: syntax.Whitespace, Text: unit})
			atLineStart, changed = false, true
		}

		out = append(out, t)
	}

	if atLineStart {
		out = append(out, syntax.Trivia{Kind: syntax.Whitespace, Text: unit})
		changed = true
	}

	if !changed {
		return nil
	}

	return out
}
