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
	"strings"
	"testing"

	"fillmore-labs.com/linqguard/internal/testsource"
	. "fillmore-labs.com/linqguard/syntax"
)

func TestTextRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{"statement", testsource.Wrap("        var n = numbers.Count() > 0;")},
		{"comments", testsource.Wrap("        // leading\n        var n = numbers /* a */ .Count(); // trailing")},
		{"crlf", "using System;\r\n\r\nclass C\r\n{\r\n    int F => 1;\r\n}\r\n"},
		{"no final newline", "class C { }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := testsource.Parse(t, tt.src)

			if got := Text(doc.Root); got != tt.src {
				t.Errorf("Got %q, want %q", got, tt.src)
			}
		})
	}
}

func TestReplace(t *testing.T) {
	t.Parallel()

	src := testsource.Wrap("        var n = numbers.Count() > 0;")
	doc := testsource.Parse(t, src)

	old := testsource.Find[*BinaryExpressionSyntax](t, doc.Root, "numbers.Count() > 0")
	replacement := WithTrailing(WithLeading(NewIdentifierName("ok"), Leading(old)), Trailing(old))

	root := Replace(doc.Root, old, replacement)

	if got, want := Text(root), strings.Replace(src, "numbers.Count() > 0", "ok", 1); got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if got := Text(doc.Root); got != src {
		t.Errorf("Original tree modified: %q", got)
	}

	if !Contains(root, replacement) || Contains(root, old) {
		t.Error("Replacement not in the new tree")
	}

	for i, u := range doc.Root.Usings {
		if root.Usings[i] != u {
			t.Errorf("Using %d not shared", i)
		}
	}
}

func TestMapTokens(t *testing.T) {
	t.Parallel()

	src := testsource.Wrap("        var n = numbers.Count();")
	doc := testsource.Parse(t, src)

	if same := MapTokens(doc.Root, func(t *Token) *Token { return t }); same != doc.Root {
		t.Error("Identity mapping copied the tree")
	}

	renamed := MapTokens(doc.Root, func(t *Token) *Token {
		if t.Kind != Identifier || t.Text != "numbers" {
			return t
		}

		c := *t
		c.Text = "values"

		return &c
	})

	if got, want := Text(renamed), strings.ReplaceAll(src, "numbers", "values"); got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestTrivia(t *testing.T) {
	t.Parallel()

	doc := testsource.Parse(t, testsource.Wrap("        var n =\n            /* a */ numbers.Count() /* b */;"))
	inv := testsource.Find[*InvocationExpressionSyntax](t, doc.Root, "numbers.Count()")

	if !Leading(inv).HasComment() || !Trailing(inv).HasComment() {
		t.Fatalf("Expected comments around %q", Text(inv))
	}

	bare := WithoutTrivia(inv)

	if got, want := Text(bare), "numbers.Count()"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if Text(inv) == Text(bare) {
		t.Error("Original node lost its trivia")
	}

	spaced := WithLeading(bare, TriviaList{Space})
	if got, want := Text(spaced), " numbers.Count()"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestTriviaList(t *testing.T) {
	t.Parallel()

	l := TriviaList{
		{Kind: SingleLineComment, Text: "// a"},
		Newline,
		{Kind: Whitespace, Text: "    "},
	}

	if !l.HasComment() || !l.HasEndOfLine() || l.EndsWithEndOfLine() {
		t.Errorf("Wrong classification of %q", l.String())
	}

	if got, want := l.LastLine().String(), "    "; got != want {
		t.Errorf("Got last line %q, want %q", got, want)
	}

	if got := len(l.Comments()); got != 1 {
		t.Errorf("Got %d comments, want 1", got)
	}

	if Spaces("") != nil {
		t.Error("Expected nil trivia for empty spaces")
	}
}

func TestClone(t *testing.T) {
	t.Parallel()

	doc := testsource.Parse(t, testsource.Wrap("        var n = numbers.Count();"))
	inv := testsource.Find[*InvocationExpressionSyntax](t, doc.Root, "numbers.Count()")

	c := Clone(inv)

	if c == inv || FirstToken(c) == FirstToken(inv) {
		t.Error("Clone shares nodes with the original")
	}

	if Text(c) != Text(inv) {
		t.Errorf("Got %q, want %q", Text(c), Text(inv))
	}
}

func TestFactory(t *testing.T) {
	t.Parallel()

	a, b := NewIdentifierName("a"), NewIdentifierName("b")

	tests := []struct {
		name string
		node Node
		want string
	}{
		{"member access", MemberAccess(a, "Count"), "a.Count"},
		{"invocation", Invocation(MemberAccess(a, "Any")), "a.Any()"},
		{"arguments", Invocation(NewIdentifierName("f"), a, b), "f(a, b)"},
		{"binary", Binary(a, "==", Null()), "a == null"},
		{"not", Not(Parenthesize(b)), "!(b)"},
		{"lambda", SimpleLambda("x", NewIdentifierName("x")), "x => x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Text(tt.node); got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}

			if s := SpanOf(tt.node); s.Valid() {
				t.Errorf("Synthesized node has position %v", s)
			}
		})
	}
}

func TestNames(t *testing.T) {
	t.Parallel()

	doc := testsource.Parse(t, testsource.Wrap("        var n = ((numbers)).Where(x => x > 0).Count();"))
	inv := testsource.Find[*InvocationExpressionSyntax](t, doc.Root, "((numbers)).Where(x => x > 0).Count()")

	if !IsMemberCall(inv, "Count", 0) || IsMemberCall(inv, "Count", 1) {
		t.Errorf("Wrong member call classification of %q", TrimmedText(inv))
	}

	_, ma, ok := MemberCall(inv)
	if !ok {
		t.Fatal("Expected member call")
	}

	if got := NameOf(ma); got != "Count" {
		t.Errorf("Got name %q, want %q", got, "Count")
	}

	where, _, ok := MemberCall(ma.Expr)
	if !ok {
		t.Fatal("Expected Where call")
	}

	lambda := where.Args.Args.Items[0].Expr
	if params := LambdaParams(lambda); len(params) != 1 || params[0].Name.Text != "x" {
		t.Errorf("Got lambda parameters %v", params)
	}

	if body, ok := LambdaBody(lambda); !ok || TrimmedText(body) != "x > 0" {
		t.Errorf("Got lambda body %v", body)
	}

	_, recv, _ := MemberCall(where)
	if got := IdentifierText(Unparen(recv.Expr)); got != "numbers" {
		t.Errorf("Got receiver %q, want %q", got, "numbers")
	}
}
