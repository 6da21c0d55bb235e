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

// Package align re-indents wrapped fluent chains.
//
// A chain like
//
//	xs
//	    .Where(p)
//	    .Select(f)
//
// is aligned when every link starting a line is indented like the first wrapped link.
// Rewrites that add or remove a link can break this, so fixes align the chain they edit.
package align

import (
	"context"

	"fillmore-labs.com/linqguard/internal/chain"
	"fillmore-labs.com/linqguard/internal/trivia"
	"fillmore-labs.com/linqguard/syntax"
)

// Around aligns the chain the edited node n belongs to. When n is not a link of a chain, a
// chain n negates or parenthesizes is aligned. Other chains, including those nested in n,
// keep their layout. n must be a node of root.
//
// Aligning an aligned chain returns root unchanged.
func Around[N syntax.Node](ctx context.Context, root N, n syntax.Node) (N, error) {
	e, ok := edited(root, n)
	if !ok {
		return root, nil
	}

	ch, err := chain.Of(ctx, e)
	if err != nil {
		return root, err
	}

	dots := make(map[*syntax.Token]*syntax.Token)
	collect(ch, dots)

	if len(dots) == 0 {
		return root, nil
	}

	return syntax.MapTokens(root, func(tok *syntax.Token) *syntax.Token {
		if r, ok := dots[tok]; ok {
			return r
		}

		return tok
	}), nil
}

// edited returns the outermost expression of the chain containing n.
func edited(root, n syntax.Node) (syntax.Expr, bool) {
	var (
		c     syntax.Cursor
		found bool
	)

	syntax.Inspect(root, func(cur syntax.Cursor) bool {
		if found {
			return false
		}

		if cur.Node() == n {
			c, found = cur, true
		}

		return !found
	})

	if !found {
		return nil, false
	}

	c = chain.Outermost(c)

	for unwrapped := false; !unwrapped; {
		switch e := c.Node().(type) {
		case *syntax.PrefixUnaryExpressionSyntax:
			c = c.Child(e.Operand)

		case *syntax.ParenthesizedExpressionSyntax:
			c = c.Child(e.Expr)

		default:
			unwrapped = true
		}
	}

	if !chain.IsOutermost(c) {
		return nil, false
	}

	return c.Node().(syntax.Expr), true //nolint:forcetypeassert
}

func collect(ch chain.Chain, dots map[*syntax.Token]*syntax.Token) {
	wrapped := ch.Wrapped()
	if len(wrapped) < 2 {
		return
	}

	indent := trivia.Indentation(ch.Links[wrapped[0]].Access.Dot)

	for _, i := range wrapped[1:] {
		dot := ch.Links[i].Access.Dot
		if trivia.Indentation(dot) != indent {
			dots[dot] = trivia.WithIndentation(dot, indent)
		}
	}
}
