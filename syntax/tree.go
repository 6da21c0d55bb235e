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
	"iter"
	"strings"
)

// Children returns the direct child elements of n in source order.
func Children(n Node) []Element {
	var children []Element

	MapChildren(n, func(e Element) Element {
		children = append(children, e)

		return e
	})

	return children
}

// ChildNodes returns the direct child nodes of n in source order.
func ChildNodes(n Node) []Node {
	var nodes []Node

	for _, e := range Children(n) {
		if c, ok := e.(Node); ok {
			nodes = append(nodes, c)
		}
	}

	return nodes
}

// Tokens iterates over the tokens of n in source order.
func Tokens(n Node) iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		walkTokens(n, yield)
	}
}

func walkTokens(e Element, yield func(*Token) bool) bool {
	switch e := e.(type) {
	case *Token:
		return yield(e)

	case Node:
		for _, c := range Children(e) {
			if !walkTokens(c, yield) {
				return false
			}
		}
	}

	return true
}

// FirstToken returns the first token of n, or nil for an empty node.
func FirstToken(n Node) *Token {
	for t := range Tokens(n) {
		return t
	}

	return nil
}

// LastToken returns the last token of n, or nil for an empty node.
func LastToken(n Node) *Token {
	var last *Token
	for t := range Tokens(n) {
		last = t
	}

	return last
}

// Text renders n including all trivia.
func Text(n Node) string {
	var b strings.Builder
	for t := range Tokens(n) {
		t.writeTo(&b)
	}

	return b.String()
}

// TrimmedText renders n without the leading trivia of its first and the trailing trivia of its last token.
func TrimmedText(n Node) string {
	return Text(WithoutTrivia(n))
}

// Replace returns root with every occurrence of old replaced by replacement.
// Unchanged subtrees are shared with root.
func Replace[N Node](root N, old, replacement Node) N {
	return replaceNode(root, old, replacement).(N) //nolint:forcetypeassert
}

func replaceNode(n, old, replacement Node) Node {
	if n == old {
		return replacement
	}

	return MapChildren(n, func(e Element) Element {
		if c, ok := e.(Node); ok {
			return replaceNode(c, old, replacement)
		}

		return e
	})
}

// ReplaceToken returns root with every occurrence of old replaced by replacement.
func ReplaceToken[N Node](root N, old, replacement *Token) N {
	return replaceToken(root, old, replacement).(N) //nolint:forcetypeassert
}

func replaceToken(n Node, old, replacement *Token) Node {
	return MapChildren(n, func(e Element) Element {
		switch e := e.(type) {
		case *Token:
			if e == old {
				return replacement
			}

		case Node:
			return replaceToken(e, old, replacement)
		}

		return e
	})
}

// MapTokens returns root with every token replaced by fn(token), visiting tokens in source order.
func MapTokens[N Node](root N, fn func(*Token) *Token) N {
	return mapTokens(root, fn).(N) //nolint:forcetypeassert
}

func mapTokens(n Node, fn func(*Token) *Token) Node {
	return MapChildren(n, func(e Element) Element {
		switch e := e.(type) {
		case *Token:
			return fn(e)

		case Node:
			return mapTokens(e, fn)
		}

		return e
	})
}

// WithLeading returns n with the leading trivia of its first token replaced.
func WithLeading[N Node](n N, leading TriviaList) N {
	first := FirstToken(n)
	if first == nil {
		return n
	}

	return ReplaceToken(n, first, first.WithLeading(leading))
}

// WithTrailing returns n with the trailing trivia of its last token replaced.
func WithTrailing[N Node](n N, trailing TriviaList) N {
	last := LastToken(n)
	if last == nil {
		return n
	}

	return ReplaceToken(n, last, last.WithTrailing(trailing))
}

// WithoutTrivia returns n without edge trivia.
func WithoutTrivia[N Node](n N) N {
	return WithTrailing(WithLeading(n, nil), nil)
}

// Leading returns the leading trivia of the first token of n.
func Leading(n Node) TriviaList {
	if first := FirstToken(n); first != nil {
		return first.Leading
	}

	return nil
}

// Trailing returns the trailing trivia of the last token of n.
func Trailing(n Node) TriviaList {
	if last := LastToken(n); last != nil {
		return last.Trailing
	}

	return nil
}

// Clone returns a deep copy of n that shares no tokens with the original.
func Clone[N Node](n N) N {
	return cloneNode(n).(N) //nolint:forcetypeassert
}

func cloneNode(n Node) Node {
	return MapChildren(n, func(e Element) Element {
		switch e := e.(type) {
		case *Token:
			return e.Clone()

		case Node:
			return cloneNode(e)
		}

		return e
	})
}

// Contains reports whether n is root or one of its descendants.
func Contains(root, n Node) bool {
	if root == n {
		return true
	}

	for _, c := range ChildNodes(root) {
		if Contains(c, n) {
			return true
		}
	}

	return false
}
