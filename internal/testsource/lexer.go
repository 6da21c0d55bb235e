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
	"fmt"
	"strings"

	"fillmore-labs.com/linqguard/syntax"
)

var keywords = map[string]struct{}{}

func init() {
	for _, k := range strings.Fields(`abstract as base bool break byte case catch char checked class const
		continue decimal default delegate do double else enum event explicit extern false finally fixed
		float for foreach goto if implicit in int interface internal is lock long namespace new null
		object operator out override params private protected public readonly ref return sbyte sealed
		short sizeof stackalloc static string struct switch this throw true try typeof uint ulong
		unchecked unsafe ushort using virtual void volatile while`) {
		keywords[k] = struct{}{}
	}
}

// punctuation in longest-match order; ">" is never combined except with "=",
// so closing type argument lists need no splitting.
var punctuation = []string{
	"??=", "<<=",
	"=>", "==", "!=", "<=", ">=", "&&", "||", "??", "?.", "++", "--",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", "::", "..",
	"{", "}", "(", ")", "[", "]", ";", ",", ".", ":", "?",
	"+", "-", "*", "/", "%", "&", "|", "^", "!", "~", "=", "<", ">",
}

type lexer struct {
	src string
	pos int
}

// tokenize splits src into tokens with attached trivia, ending with an end of file token.
func tokenize(src string) ([]*syntax.Token, error) {
	l := lexer{src: src}

	var toks []*syntax.Token

	for {
		leading := l.trivia(false)

		if l.pos >= len(l.src) {
			toks = append(toks, &syntax.Token{Kind: syntax.EndOfFile, Leading: leading, Pos: l.pos})

			return toks, nil
		}

		start := l.pos

		kind, err := l.token()
		if err != nil {
			return nil, err
		}

		tok := &syntax.Token{Kind: kind, Text: l.src[start:l.pos], Leading: leading, Pos: start}
		tok.Trailing = l.trivia(true)
		toks = append(toks, tok)
	}
}

func (l *lexer) peek(offset int) byte {
	if p := l.pos + offset; p < len(l.src) {
		return l.src[p]
	}

	return 0
}

func (l *lexer) atLineStart() bool {
	for i := l.pos - 1; i >= 0; i-- {
		switch l.src[i] {
		case ' ', '\t':
			continue

		case '\n':
			return true

		default:
			return false
		}
	}

	return true
}

func (l *lexer) restOfLine() int {
	end := l.pos
	for end < len(l.src) && l.src[end] != '\n' && l.src[end] != '\r' {
		end++
	}

	return end
}

// trivia scans trivia. Trailing trivia stops after the first line break.
func (l *lexer) trivia(trailing bool) syntax.TriviaList {
	var list syntax.TriviaList

	for l.pos < len(l.src) {
		start := l.pos

		switch c := l.src[l.pos]; {
		case c == ' ' || c == '\t':
			for l.pos < len(l.src) && (l.src[l.pos] == ' ' || l.src[l.pos] == '\t') {
				l.pos++
			}

			list = append(list, syntax.Trivia{Kind: syntax.Whitespace, Text: l.src[start:l.pos]})

		case c == '\n' || c == '\r' && l.peek(1) == '\n':
			if c == '\r' {
				l.pos++
			}

			l.pos++

			list = append(list, syntax.Trivia{Kind: syntax.EndOfLine, Text: l.src[start:l.pos]})
			if trailing {
				return list
			}

		case c == '/' && l.peek(1) == '/':
			kind := syntax.SingleLineComment
			if l.peek(2) == '/' && l.peek(3) != '/' {
				kind = syntax.DocComment
			}

			l.pos = l.restOfLine()
			list = append(list, syntax.Trivia{Kind: kind, Text: l.src[start:l.pos]})

		case c == '/' && l.peek(1) == '*':
			end := strings.Index(l.src[l.pos+2:], "*/")
			if end < 0 {
				l.pos = len(l.src)
			} else {
				l.pos += end + 4
			}

			list = append(list, syntax.Trivia{Kind: syntax.MultiLineComment, Text: l.src[start:l.pos]})

		case c == '#' && !trailing && l.atLineStart():
			l.pos = l.restOfLine()
			list = append(list, syntax.Trivia{Kind: syntax.Directive, Text: l.src[start:l.pos]})

		default:
			return list
		}
	}

	return list
}

func isLetter(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c >= 0x80
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func (l *lexer) token() (syntax.TokenKind, error) {
	c := l.src[l.pos]

	switch {
	case c == '@' && l.peek(1) == '"':
		l.pos++

		return syntax.StringLiteral, l.verbatim()

	case (c == '$' && l.peek(1) == '@' || c == '@' && l.peek(1) == '$') && l.peek(2) == '"':
		l.pos += 2

		return syntax.InterpolatedString, l.interpolated(true)

	case c == '$' && l.peek(1) == '"':
		l.pos++

		return syntax.InterpolatedString, l.interpolated(false)

	case c == '"':
		return syntax.StringLiteral, l.quoted('"')

	case c == '\'':
		return syntax.CharLiteral, l.quoted('\'')

	case isDigit(c) || c == '.' && isDigit(l.peek(1)):
		l.number()

		return syntax.NumericLiteral, nil

	case isLetter(c) || c == '@' && isLetter(l.peek(1)):
		start := l.pos
		l.pos++

		for l.pos < len(l.src) && (isLetter(l.src[l.pos]) || isDigit(l.src[l.pos])) {
			l.pos++
		}

		if _, ok := keywords[l.src[start:l.pos]]; ok {
			return syntax.Keyword, nil
		}

		return syntax.Identifier, nil
	}

	for _, p := range punctuation {
		if strings.HasPrefix(l.src[l.pos:], p) {
			l.pos += len(p)

			return syntax.Punctuation, nil
		}
	}

	return 0, fmt.Errorf("offset %d: %w %q", l.pos, ErrUnexpectedCharacter, c)
}

func (l *lexer) quoted(q byte) error {
	start := l.pos
	l.pos++

	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case '\\':
			l.pos += 2

		case q:
			l.pos++

			return nil

		case '\n':
			return fmt.Errorf("offset %d: %w", start, ErrUnterminatedLiteral)

		default:
			l.pos++
		}
	}

	return fmt.Errorf("offset %d: %w", start, ErrUnterminatedLiteral)
}

func (l *lexer) verbatim() error {
	start := l.pos
	l.pos++

	for l.pos < len(l.src) {
		if l.src[l.pos] == '"' {
			if l.peek(1) == '"' {
				l.pos += 2

				continue
			}

			l.pos++

			return nil
		}

		l.pos++
	}

	return fmt.Errorf("offset %d: %w", start, ErrUnterminatedLiteral)
}

func (l *lexer) interpolated(verbatim bool) error {
	start := l.pos
	l.pos++ // opening quote

	depth := 0

	for l.pos < len(l.src) {
		c := l.src[l.pos]

		switch {
		case depth == 0 && c == '"' && verbatim && l.peek(1) == '"':
			l.pos += 2

		case depth == 0 && c == '"':
			l.pos++

			return nil

		case depth == 0 && c == '\\' && !verbatim:
			l.pos += 2

		case c == '{' && depth == 0 && l.peek(1) == '{', c == '}' && depth == 0 && l.peek(1) == '}':
			l.pos += 2

		case c == '{':
			depth++
			l.pos++

		case c == '}':
			depth--
			l.pos++

		case depth > 0 && c == '"':
			if err := l.quoted('"'); err != nil {
				return err
			}

		default:
			l.pos++
		}
	}

	return fmt.Errorf("offset %d: %w", start, ErrUnterminatedLiteral)
}

func (l *lexer) number() {
	if l.src[l.pos] == '0' && (l.peek(1) == 'x' || l.peek(1) == 'X') {
		l.pos += 2
	}

	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '.' && !isDigit(l.peek(1)) {
			return
		}

		if !isDigit(c) && !isLetter(c) && c != '.' {
			return
		}

		l.pos++
	}
}
