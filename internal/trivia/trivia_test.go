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

package trivia_test

import (
	"strings"
	"testing"

	. "fillmore-labs.com/linqguard/internal/trivia"
	"fillmore-labs.com/linqguard/internal/testsource"
	"fillmore-labs.com/linqguard/syntax"
)

func TestPreserve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		expr string
		want string
	}{
		{
			name: "inline comment",
			body: "        var n = numbers.Count() /* a */ > 0;",
			expr: "numbers.Count() /* a */ > 0",
			want: "numbers /* a */",
		},
		{
			name: "line comment",
			body: "        var n = numbers.Count() // c\n            > 0;",
			expr: "numbers.Count() // c\n            > 0",
			want: "numbers // c\n",
		},
		{
			name: "no comments",
			body: "        var n = numbers.Count() > 0;",
			expr: "numbers.Count() > 0",
			want: "numbers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := testsource.Parse(t, testsource.Wrap(tt.body))
			old := testsource.Find[*syntax.BinaryExpressionSyntax](t, doc.Root, tt.expr)
			replacement := syntax.NewIdentifierName("numbers")

			got := Preserve(old, replacement)

			if text := syntax.Text(got); text != tt.want {
				t.Errorf("Got %q, want %q", text, tt.want)
			}

			if missing := Missing(old, got); len(missing) > 0 {
				t.Errorf("Got missing comments %v", missing)
			}
		})
	}
}

func TestAttach(t *testing.T) {
	t.Parallel()

	n := syntax.NewIdentifierName("x")

	got := Attach(n,
		syntax.Trivia{Kind: syntax.MultiLineComment, Text: "/* a */"},
		syntax.Trivia{Kind: syntax.SingleLineComment, Text: "// b"},
	)

	if text, want := syntax.Text(got), "x /* a */ // b\n"; text != want {
		t.Errorf("Got %q, want %q", text, want)
	}

	if syntax.Text(n) != "x" {
		t.Error("Attach modified its input")
	}
}

func TestAttachAfterLineComment(t *testing.T) {
	t.Parallel()

	tok := syntax.Ident("x")
	tok.Trailing = syntax.TriviaList{syntax.Space, {Kind: syntax.SingleLineComment, Text: "// c"}, syntax.Newline}

	got := Attach(&syntax.IdentifierNameSyntax{Name: tok},
		syntax.Trivia{Kind: syntax.MultiLineComment, Text: "/* a */"},
		syntax.Trivia{Kind: syntax.SingleLineComment, Text: "// b"},
	)

	if text, want := syntax.Text(got), "x /* a */ // c\n// b\n"; text != want {
		t.Errorf("Got %q, want %q", text, want)
	}
}

func TestStrip(t *testing.T) {
	t.Parallel()

	tok := syntax.Ident("x")
	tok.Leading = syntax.TriviaList{
		{Kind: syntax.Whitespace, Text: "  "},
		{Kind: syntax.MultiLineComment, Text: "/* a */"},
		syntax.Space,
	}
	tok.Trailing = syntax.TriviaList{syntax.Space, syntax.Newline}

	got := Strip(&syntax.IdentifierNameSyntax{Name: tok})

	if text, want := syntax.Text(got), "/* a */ x"; text != want {
		t.Errorf("Got %q, want %q", text, want)
	}
}

func TestReindent(t *testing.T) {
	t.Parallel()

	const body = "        foreach (var x in names)\n        {\n            // c\n\n            Use(x);\n        }"

	doc := testsource.Parse(t, testsource.Wrap(body))
	stmt := testsource.Find[*syntax.ForEachStatementSyntax](t, doc.Root, strings.TrimSpace(body))

	got := syntax.Text(Reindent(stmt, "    "))

	var want strings.Builder

	for line := range strings.Lines(body + "\n") {
		if line != "\n" {
			want.WriteString("    ")
		}

		want.WriteString(line)
	}

	if got != want.String() {
		t.Errorf("Got %q, want %q", got, want.String())
	}
}

func TestIndentation(t *testing.T) {
	t.Parallel()

	doc := testsource.Parse(t, testsource.Wrap("        numbers\n            .ToList();"))
	ma := testsource.Find[*syntax.MemberAccessExpressionSyntax](t, doc.Root, "numbers\n            .ToList")

	if got, want := Indentation(ma.Dot), "            "; got != want {
		t.Errorf("Got indentation %q, want %q", got, want)
	}

	if !StartsLine(syntax.LastToken(ma.Expr), ma.Dot) {
		t.Error("Expected the dot to start a line")
	}

	dot := WithIndentation(ma.Dot, "\t")
	if got, want := dot.Leading.String(), "\t"; got != want {
		t.Errorf("Got leading %q, want %q", got, want)
	}

	if got, want := IndentUnit("\t\t"), "\t"; got != want {
		t.Errorf("Got unit %q, want %q", got, want)
	}
}
