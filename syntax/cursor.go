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
	"context"
	"iter"
)

// Cursor is a node together with the path from the root of its tree.
//
// Cursors are immutable values and stay valid after the walk that produced them.
type Cursor struct {
	path []Node
}

// Root returns a cursor positioned at root.
func Root(root Node) Cursor { return Cursor{path: []Node{root}} }

// Valid reports whether the cursor points at a node.
func (c Cursor) Valid() bool { return len(c.path) > 0 }

// Node returns the current node.
func (c Cursor) Node() Node { return c.path[len(c.path)-1] }

// Depth returns the number of ancestors of the current node.
func (c Cursor) Depth() int { return len(c.path) - 1 }

// Parent returns a cursor at the parent node.
func (c Cursor) Parent() (Cursor, bool) {
	if len(c.path) < 2 {
		return Cursor{}, false
	}

	return Cursor{path: c.path[:len(c.path)-1 : len(c.path)-1]}, true
}

// ParentNode returns the parent node, or nil at the root.
func (c Cursor) ParentNode() Node {
	if len(c.path) < 2 {
		return nil
	}

	return c.path[len(c.path)-2]
}

// Child returns a cursor at n, which must be a child of the current node.
func (c Cursor) Child(n Node) Cursor {
	return Cursor{path: append(c.path[:len(c.path):len(c.path)], n)}
}

// Ancestors iterates innermost-first over the current node and its ancestors.
func (c Cursor) Ancestors() iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		for i := len(c.path); i > 0; i-- {
			if !yield(Cursor{path: c.path[:i:i]}) {
				return
			}
		}
	}
}

// Inspect traverses the tree rooted at root in depth-first order, calling f for every node.
// When f returns false, the children of that node are skipped.
func Inspect(root Node, f func(Cursor) bool) {
	inspect(Root(root), f)
}

func inspect(c Cursor, f func(Cursor) bool) {
	if !f(c) {
		return
	}

	for _, n := range ChildNodes(c.Node()) {
		inspect(c.Child(n), f)
	}
}

// FindToken returns the first token ending after pos, with a cursor at its parent node.
func FindToken(root Node, pos int) (Cursor, *Token, bool) {
	return findToken(Root(root), pos)
}

func findToken(c Cursor, pos int) (Cursor, *Token, bool) {
	for _, e := range Children(c.Node()) {
		switch e := e.(type) {
		case *Token:
			if e.Pos != NoPos && e.End() > pos {
				return c, e, true
			}

		case Node:
			if last := LastToken(e); last == nil || last.Pos == NoPos || last.End() <= pos {
				continue
			}

			if cc, t, ok := findToken(c.Child(e), pos); ok {
				return cc, t, true
			}
		}
	}

	return Cursor{}, nil, false
}

// Locate finds the node of the given kind that a span reported against root points at.
//
// Starting from the token at span.Start, it walks the ancestors innermost-first and returns
// the first node of kind whose span contains span and ends at span.End.
func Locate(ctx context.Context, root Node, span Span, kind Kind) (Cursor, bool, error) {
	if !span.Valid() {
		return Cursor{}, false, nil
	}

	c, tok, ok := FindToken(root, span.Start)
	if !ok || tok.Pos > span.Start {
		return Cursor{}, false, nil
	}

	for a := range c.Ancestors() {
		if err := ctx.Err(); err != nil {
			return Cursor{}, false, err
		}

		n := a.Node()
		if n.Kind() != kind {
			continue
		}

		if s := SpanOf(n); s.Contains(span) && s.End == span.End {
			return a, true, nil
		}
	}

	return Cursor{}, false, nil
}
