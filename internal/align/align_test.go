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

package align_test

import (
	"testing"

	. "fillmore-labs.com/linqguard/internal/align"
	"fillmore-labs.com/linqguard/internal/testsource"
	"fillmore-labs.com/linqguard/syntax"
)

func TestAlign(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "misaligned",
			body: "        var r = names\n            .Where(n => n.Length > 1)\n                .Select(n => n)\n          .ToList();",
			want: "        var r = names\n            .Where(n => n.Length > 1)\n            .Select(n => n)\n            .ToList();",
		},
		{
			name: "aligned",
			body: "        var r = names\n            .Where(n => n.Length > 1)\n            .ToList();",
			want: "        var r = names\n            .Where(n => n.Length > 1)\n            .ToList();",
		},
		{
			name: "single wrapped link",
			body: "        var r = names.Where(n => n.Length > 1)\n                .ToList();",
			want: "        var r = names.Where(n => n.Length > 1)\n                .ToList();",
		},
		{
			name: "comment line",
			body: "        var r = names\n            .Where(n => n.Length > 1)\n        // keep\n        .ToList();",
			want: "        var r = names\n            .Where(n => n.Length > 1)\n        // keep\n            .ToList();",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := testsource.Parse(t, testsource.Wrap(tt.body))

			id := testsource.Find[*syntax.IdentifierNameSyntax](t, doc.Root, "names")

			once, err := Around(t.Context(), doc.Root, id)
			if err != nil {
				t.Fatalf("Around failed: %v", err)
			}

			if got, want := syntax.Text(once), testsource.Wrap(tt.want); got != want {
				t.Errorf("Got %q, want %q", got, want)
			}

			id = testsource.Find[*syntax.IdentifierNameSyntax](t, once, "names")

			twice, err := Around(t.Context(), once, id)
			if err != nil {
				t.Fatalf("Around failed: %v", err)
			}

			if syntax.Text(twice) != syntax.Text(once) {
				t.Error("Alignment is not idempotent")
			}
		})
	}
}

func TestAround(t *testing.T) {
	t.Parallel()

	const body = "        var r = names\n            .Where(n => n.Length > 1)\n              .ToList();\n" +
		"        var s = names\n            .Where(n => n.Length > 1)\n              .ToList();"

	doc := testsource.Parse(t, testsource.Wrap(body))
	id := testsource.Find[*syntax.IdentifierNameSyntax](t, doc.Root, "names")

	got, err := Around(t.Context(), doc.Root, id)
	if err != nil {
		t.Fatalf("Around failed: %v", err)
	}

	const want = "        var r = names\n            .Where(n => n.Length > 1)\n            .ToList();\n" +
		"        var s = names\n            .Where(n => n.Length > 1)\n              .ToList();"

	if text := syntax.Text(got); text != testsource.Wrap(want) {
		t.Errorf("Got %q, want %q", text, testsource.Wrap(want))
	}
}

func TestAroundNegation(t *testing.T) {
	t.Parallel()

	const body = "        var b = !names\n            .Where(n => n.Length > 1)\n              .Any();"

	doc := testsource.Parse(t, testsource.Wrap(body))
	not := testsource.Find[*syntax.PrefixUnaryExpressionSyntax](t, doc.Root,
		"!names\n            .Where(n => n.Length > 1)\n              .Any()")

	got, err := Around(t.Context(), doc.Root, not)
	if err != nil {
		t.Fatalf("Around failed: %v", err)
	}

	const want = "        var b = !names\n            .Where(n => n.Length > 1)\n            .Any();"

	if text := syntax.Text(got); text != testsource.Wrap(want) {
		t.Errorf("Got %q, want %q", text, testsource.Wrap(want))
	}
}

func TestAroundStatement(t *testing.T) {
	t.Parallel()

	const (
		loop = "foreach (var x in names) {\n" +
			"            var r = names\n                .Where(n => n.Length > 1)\n                  .ToList();\n" +
			"        }"
		body = "        " + loop
	)

	doc := testsource.Parse(t, testsource.Wrap(body))
	stmt := testsource.Find[*syntax.ForEachStatementSyntax](t, doc.Root, loop)

	got, err := Around(t.Context(), doc.Root, stmt)
	if err != nil {
		t.Fatalf("Around failed: %v", err)
	}

	if got != doc.Root {
		t.Errorf("Got %q, want chains in the loop body unchanged", syntax.Text(got))
	}
}
