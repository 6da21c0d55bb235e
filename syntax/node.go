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

import "slices"

// Element is either a [*Token] or a [Node].
type Element interface {
	isElement()
}

// Node is an immutable syntax tree node.
//
// Nodes are never mutated after construction; edits create new nodes that share
// unchanged subtrees with the original (see [Replace] and [ReplaceToken]).
type Node interface {
	Element
	Kind() Kind

	// mapChildren calls m.fn for every direct child element in source order and
	// returns a copy holding the results, or the receiver when nothing changed.
	mapChildren(m *mapper) Node
}

// Expr is an expression or a type.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a statement.
type Stmt interface {
	Node
	stmtNode()
}

// Member is a declaration inside a compilation unit, namespace or type.
type Member interface {
	Node
	memberNode()
}

// Pattern is a pattern in an is-pattern expression.
type Pattern interface {
	Node
	patternNode()
}

type isNode struct{}

func (isNode) isElement() {}

type isExpr struct{ isNode }

func (isExpr) exprNode() {}

type isStmt struct{ isNode }

func (isStmt) stmtNode() {}

type isMember struct{ isNode }

func (isMember) memberNode() {}

type isPattern struct{ isNode }

func (isPattern) patternNode() {}

// List is a separated list, like arguments or parameters.
// Separators[i] follows Items[i]; a list may carry more separators than items for omitted entries.
type List[T Node] struct {
	Items      []T
	Separators []*Token
}

// Len returns the number of items.
func (l List[T]) Len() int { return len(l.Items) }

// NewList builds a list with the given separator text between items.
func NewList[T Node](sep string, items ...T) List[T] {
	l := List[T]{Items: items}
	for range max(len(items)-1, 0) {
		l.Separators = append(l.Separators, SpaceAfter(Punct(sep)))
	}

	return l
}

// MapChildren returns n with every direct child element replaced by fn(child).
// fn must return an element of a type that fits the child's position.
func MapChildren(n Node, fn func(Element) Element) Node {
	m := mapper{fn: fn}

	return n.mapChildren(&m)
}

type mapper struct {
	fn      func(Element) Element
	changed bool
}

func (m *mapper) result(orig, updated Node) Node {
	if m.changed {
		return updated
	}

	return orig
}

func (m *mapper) tok(p **Token) {
	if *p == nil {
		return
	}

	if r, _ := m.fn(*p).(*Token); r != *p {
		*p = r
		m.changed = true
	}
}

func (m *mapper) toks(p *[]*Token) {
	var out []*Token

	for i, t := range *p {
		r := t
		m.tok(&r)

		if r != t {
			if out == nil {
				out = slices.Clone(*p)
			}

			out[i] = r
		}
	}

	if out != nil {
		*p = out
	}
}

func visit[T Node](m *mapper, p *T) {
	var zero T
	if any(*p) == any(zero) {
		return
	}

	if r := m.fn(*p).(T); any(r) != any(*p) {
		*p = r
		m.changed = true
	}
}

func visitSlice[T Node](m *mapper, p *[]T) {
	var out []T

	for i, n := range *p {
		r := n
		visit(m, &r)

		if any(r) != any(n) {
			if out == nil {
				out = slices.Clone(*p)
			}

			out[i] = r
		}
	}

	if out != nil {
		*p = out
	}
}

func visitList[T Node](m *mapper, l *List[T]) {
	var (
		items []T
		seps  []*Token
	)

	for i := range max(len(l.Items), len(l.Separators)) {
		if i < len(l.Items) {
			n := l.Items[i]
			r := n
			visit(m, &r)

			if any(r) != any(n) {
				if items == nil {
					items = slices.Clone(l.Items)
				}

				items[i] = r
			}
		}

		if i < len(l.Separators) {
			t := l.Separators[i]
			r := t
			m.tok(&r)

			if r != t {
				if seps == nil {
					seps = slices.Clone(l.Separators)
				}

				seps[i] = r
			}
		}
	}

	if items != nil {
		l.Items = items
	}

	if seps != nil {
		l.Separators = seps
	}
}
