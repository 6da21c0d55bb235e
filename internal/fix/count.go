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

package fix

import (
	"context"

	"fillmore-labs.com/linqguard/host"
	"fillmore-labs.com/linqguard/internal/match"
	"fillmore-labs.com/linqguard/internal/trivia"
	"fillmore-labs.com/linqguard/syntax"
)

func rewriteCountAny(_ context.Context, model host.Model, c syntax.Cursor) (old, replacement syntax.Node, ok bool, err error) {
	b := c.Node().(*syntax.BinaryExpressionSyntax) //nolint:forcetypeassert

	shape, ok := match.MatchCountAny(model, b)
	if !ok {
		return nil, nil, false, nil
	}

	_, ma, _ := syntax.MemberCall(shape.Count)

	return b, anyCall(b, shape.Existence, shape.Receiver, ma.Dot), true, nil
}

func rewriteMaterializedCountProperty(_ context.Context, model host.Model, c syntax.Cursor) (old, replacement syntax.Node, ok bool, err error) {
	b := c.Node().(*syntax.BinaryExpressionSyntax) //nolint:forcetypeassert

	shape, ok := match.MatchMaterializedCountProperty(model, b)
	if !ok {
		return nil, nil, false, nil
	}

	ma := shape.Count.(*syntax.MemberAccessExpressionSyntax) //nolint:forcetypeassert
	mat, _ := match.Materializer(model, ma.Expr)

	return b, anyCall(b, shape.Existence, shape.Receiver, mat.Access.Dot), true, nil
}

func rewriteMaterializedCountCall(_ context.Context, model host.Model, c syntax.Cursor) (old, replacement syntax.Node, ok bool, err error) {
	b := c.Node().(*syntax.BinaryExpressionSyntax) //nolint:forcetypeassert

	shape, ok := match.MatchMaterializedCountCall(model, b)
	if !ok {
		return nil, nil, false, nil
	}

	_, ma, _ := syntax.MemberCall(shape.Count)
	mat, _ := match.Materializer(model, ma.Expr)

	return b, anyCall(b, shape.Existence, shape.Receiver, mat.Access.Dot), true, nil
}

// anyCall builds "recv.Any()" or "!recv.Any()" replacing the comparison b.
// The dot of the first removed link is reused, so a wrapped chain stays wrapped.
func anyCall(b *syntax.BinaryExpressionSyntax, e match.Existence, recv syntax.Expr, dot *syntax.Token) syntax.Expr {
	recv = syntax.WithLeading(recv, nil)

	var call syntax.Expr = syntax.Invocation(&syntax.MemberAccessExpressionSyntax{
		Expr: recv,
		Dot:  dot,
		Name: syntax.NewIdentifierName("Any"),
	})

	if e == match.NotExists {
		call = syntax.Not(call)
	}

	return trivia.Preserve(b, call)
}
