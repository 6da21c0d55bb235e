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

package syntax_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"fillmore-labs.com/linqguard/internal/testsource"
	. "fillmore-labs.com/linqguard/syntax"
)

func TestLocate(t *testing.T) {
	t.Parallel()

	src := testsource.Wrap("        var n = numbers.Count() > 0;")
	doc := testsource.Parse(t, src)

	start := strings.Index(src, "numbers.Count()")
	call := Span{Start: start, End: start + len("numbers.Count()")}

	tests := []struct {
		name string
		span Span
		kind Kind
		want string
		ok   bool
	}{
		{"invocation", call, InvocationExpression, "numbers.Count()", true},
		{"binary", Span{Start: start, End: start + len("numbers.Count() > 0")}, BinaryExpression, "numbers.Count() > 0", true},
		{"identifier", Span{Start: start, End: start + len("numbers")}, IdentifierName, "numbers", true},
		{"wrong kind", call, MemberAccessExpression, "", false},
		{"wrong end", Span{Start: start, End: call.End - 1}, InvocationExpression, "", false},
		{"invalid", Span{Start: NoPos, End: NoPos}, InvocationExpression, "", false},
		{"out of range", Span{Start: len(src) + 10, End: len(src) + 12}, InvocationExpression, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, ok, err := Locate(t.Context(), doc.Root, tt.span, tt.kind)
			if err != nil {
				t.Fatalf("Locate failed: %v", err)
			}

			if ok != tt.ok {
				t.Fatalf("Got found %t, want %t", ok, tt.ok)
			}

			if !ok {
				return
			}

			if got := TrimmedText(c.Node()); got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}

			if got := SpanOf(c.Node()); got != tt.span {
				t.Errorf("Got span %v, want %v", got, tt.span)
			}
		})
	}
}

func TestLocateCanceled(t *testing.T) {
	t.Parallel()

	src := testsource.Wrap("        var n = numbers.Count();")
	doc := testsource.Parse(t, src)

	start := strings.Index(src, "numbers.Count()")

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, _, err := Locate(ctx, doc.Root, Span{Start: start, End: start + len("numbers.Count()")}, InvocationExpression)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Got error %v, want %v", err, context.Canceled)
	}
}

func TestCursor(t *testing.T) {
	t.Parallel()

	src := testsource.Wrap("        var n = numbers.Count();")
	doc := testsource.Parse(t, src)

	start := strings.Index(src, "Count")

	c, tok, ok := FindToken(doc.Root, start+2)
	if !ok {
		t.Fatal("Can't find token")
	}

	if tok.Text != "Count" || tok.Pos != start {
		t.Errorf("Got token %q at %d, want %q at %d", tok.Text, tok.Pos, "Count", start)
	}

	if got := c.Node().Kind(); got != IdentifierName {
		t.Errorf("Got kind %v, want %v", got, IdentifierName)
	}

	p, ok := c.Parent()
	if !ok {
		t.Fatal("Expected parent")
	}

	if p.Node() != c.ParentNode() {
		t.Error("Parent and ParentNode disagree")
	}

	if p.Depth() != c.Depth()-1 {
		t.Errorf("Got parent depth %d, want %d", p.Depth(), c.Depth()-1)
	}

	var last Cursor
	for a := range c.Ancestors() {
		last = a
	}

	if last.Node() != Node(doc.Root) || last.Depth() != 0 {
		t.Errorf("Got outermost ancestor %v at depth %d, want root", last.Node().Kind(), last.Depth())
	}

	if _, ok := last.Parent(); ok {
		t.Error("Root has a parent")
	}

	if last.ParentNode() != nil {
		t.Error("Root has a parent node")
	}
}

func TestInspect(t *testing.T) {
	t.Parallel()

	doc := testsource.Parse(t, testsource.Wrap("        if (numbers.Any()) { numbers.Clear(); }"))

	var calls []string

	Inspect(doc.Root, func(c Cursor) bool {
		if inv, ok := c.Node().(*InvocationExpressionSyntax); ok {
			calls = append(calls, TrimmedText(inv))
		}

		return true
	})

	if got, want := strings.Join(calls, " "), "numbers.Any() numbers.Clear()"; got != want {
		t.Errorf("Got calls %q, want %q", got, want)
	}

	visited := 0

	Inspect(doc.Root, func(c Cursor) bool {
		visited++

		return c.Depth() == 0
	})

	if visited != 5 {
		t.Errorf("Got %d visited nodes, want 5 (root, three usings and the class)", visited)
	}
}
