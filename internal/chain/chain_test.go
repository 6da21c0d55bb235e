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

package chain_test

import (
	"context"
	"slices"
	"testing"

	. "fillmore-labs.com/linqguard/internal/chain"
	"fillmore-labs.com/linqguard/internal/testsource"
	"fillmore-labs.com/linqguard/syntax"
)

func TestOf(t *testing.T) {
	t.Parallel()

	const expr = "names\n            .Where(n => n.Length > 1).Select(n => n)\n            .ToList().Count"

	doc := testsource.Parse(t, testsource.Wrap("        var c = "+expr+";"))
	e := testsource.Find[*syntax.MemberAccessExpressionSyntax](t, doc.Root, expr)

	c, err := Of(t.Context(), e)
	if err != nil {
		t.Fatalf("Of failed: %v", err)
	}

	if got, want := syntax.TrimmedText(c.Root), "names"; got != want {
		t.Errorf("Got root %q, want %q", got, want)
	}

	names := make([]string, 0, c.Len())
	for _, l := range c.Links {
		names = append(names, l.Name())
	}

	if want := []string{"Where", "Select", "ToList", "Count"}; !slices.Equal(names, want) {
		t.Errorf("Got links %v, want %v", names, want)
	}

	if got, want := c.Links[3].Args(), -1; got != want {
		t.Errorf("Got args %d, want %d", got, want)
	}

	if got, want := c.Wrapped(), []int{0, 2}; !slices.Equal(got, want) {
		t.Errorf("Got wrapped %v, want %v", got, want)
	}

	if c.Outermost() != syntax.Expr(e) {
		t.Error("Expected the chain to end with the inspected expression")
	}

	if got := c.Index(c.Links[1].Expr); got != 1 {
		t.Errorf("Got index %d, want 1", got)
	}

	if got, want := syntax.TrimmedText(c.Receiver(1)), "names\n            .Where(n => n.Length > 1)"; got != want {
		t.Errorf("Got receiver %q, want %q", got, want)
	}
}

func TestOfCanceled(t *testing.T) {
	t.Parallel()

	doc := testsource.Parse(t, testsource.Wrap("        var c = names.ToList();"))
	e := testsource.Find[*syntax.InvocationExpressionSyntax](t, doc.Root, "names.ToList()")

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if _, err := Of(ctx, e); err == nil {
		t.Error("Expected an error for a canceled context")
	}
}

func TestOutermost(t *testing.T) {
	t.Parallel()

	doc := testsource.Parse(t, testsource.Wrap("        var c = names.Where(n => n.Length > 1).Count();"))

	var outermost []string

	syntax.Inspect(doc.Root, func(c syntax.Cursor) bool {
		if IsOutermost(c) {
			outermost = append(outermost, syntax.TrimmedText(c.Node()))
		}

		if syntax.TrimmedText(c.Node()) == "names" && c.Depth() > 0 {
			if got, want := syntax.TrimmedText(Outermost(c).Node()), "names.Where(n => n.Length > 1).Count()"; got != want {
				t.Errorf("Got outermost %q, want %q", got, want)
			}
		}

		return true
	})

	if want := []string{"names.Where(n => n.Length > 1).Count()", "n.Length"}; !slices.Equal(outermost, want) {
		t.Errorf("Got %v, want %v", outermost, want)
	}
}
