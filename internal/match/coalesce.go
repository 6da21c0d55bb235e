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

package match

import (
	"context"

	"fillmore-labs.com/linqguard/host"
	"fillmore-labs.com/linqguard/internal/report"
	"fillmore-labs.com/linqguard/syntax"
)

// CoalesceShape is "foreach (... in a ?? b)" with b denoting an empty collection.
type CoalesceShape struct {
	ForEach  *syntax.ForEachStatementSyntax
	Coalesce *syntax.BinaryExpressionSyntax
	Receiver syntax.Expr
}

// MatchCoalesceForEach matches a foreach over "a ?? empty".
//
// Emptiness is judged syntactically, see [DenotesEmpty].
func MatchCoalesceForEach(f *syntax.ForEachStatementSyntax) (CoalesceShape, bool) {
	b, ok := f.Expr.(*syntax.BinaryExpressionSyntax)
	if !ok || !b.Op.Is("??") || !DenotesEmpty(b.Right) {
		return CoalesceShape{}, false
	}

	return CoalesceShape{ForEach: f, Coalesce: b, Receiver: b.Left}, true
}

// DenotesEmpty reports whether e is an empty collection by shape: a parameterless
// constructor call without elements, a call of a member named Empty, an access of a member
// named Empty, or an array creation of size zero or with an empty initializer.
//
// The Empty checks match any declaring type.
func DenotesEmpty(e syntax.Expr) bool {
	switch e := e.(type) {
	case *syntax.ObjectCreationExpressionSyntax:
		if e.Args == nil && e.Initializer == nil {
			return false
		}

		return (e.Args == nil || e.Args.Args.Len() == 0) && emptyInitializer(e.Initializer)

	case *syntax.ImplicitObjectCreationExpressionSyntax:
		return e.Args.Args.Len() == 0 && emptyInitializer(e.Initializer)

	case *syntax.InvocationExpressionSyntax:
		ma, ok := e.Expr.(*syntax.MemberAccessExpressionSyntax)

		return ok && syntax.NameOf(ma.Name) == "Empty"

	case *syntax.MemberAccessExpressionSyntax:
		return syntax.NameOf(e.Name) == "Empty"

	case *syntax.ArrayCreationExpressionSyntax:
		if e.Initializer != nil {
			return e.Initializer.Exprs.Len() == 0
		}

		if len(e.Type.Ranks) != 1 {
			return false
		}

		sizes := e.Type.Ranks[0].Sizes

		return sizes.Len() == 1 && syntax.IsLiteral(sizes.Items[0], "0")

	default:
		return false
	}
}

func emptyInitializer(i *syntax.InitializerExpressionSyntax) bool {
	return i == nil || i.Exprs.Len() == 0
}

func matchCoalesceForEach(_ context.Context, _ host.Model, c syntax.Cursor) (report.Finding, bool, error) {
	shape, ok := MatchCoalesceForEach(c.Node().(*syntax.ForEachStatementSyntax)) //nolint:forcetypeassert
	if !ok {
		return report.Finding{}, false, nil
	}

	return report.New(CoalesceForEach, shape.ForEach, syntax.TrimmedText(shape.Receiver)).
		WithRelated(syntax.SpanOf(shape.Coalesce.Right)), true, nil
}
