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
	"fillmore-labs.com/linqguard/internal/chain"
	"fillmore-labs.com/linqguard/internal/report"
	"fillmore-labs.com/linqguard/syntax"
)

// IsPredicate reports whether e is a predicate argument: a lambda with one parameter, a
// method group or an anonymous method.
func IsPredicate(e syntax.Expr) bool {
	switch e := e.(type) {
	case *syntax.SimpleLambdaExpressionSyntax:
		return true

	case *syntax.ParenthesizedLambdaExpressionSyntax:
		return e.Params.Params.Len() == 1

	case *syntax.IdentifierNameSyntax, *syntax.MemberAccessExpressionSyntax:
		return true

	case *syntax.AnonymousMethodExpressionSyntax:
		return e.Params == nil || e.Params.Params.Len() == 1

	default:
		return false
	}
}

// whereCall returns the predicate of recv.Where(predicate) resolving to System.Linq.Enumerable.
func whereCall(model host.Model, l chain.Link) (syntax.Expr, bool) {
	if l.Name() != "Where" || l.Args() != 1 || !l.Access.Dot.Is(".") {
		return nil, false
	}

	arg := l.Call.Args.Args.Items[0]
	if arg.RefKind != nil || !IsPredicate(arg.Expr) {
		return nil, false
	}

	if !IsEnumerableCall(model, l.Call, "Where") {
		return nil, false
	}

	return arg.Expr, true
}

// WhereCountShape is "recv.Where(p1)...Where(pn).Count()".
type WhereCountShape struct {
	Count      *syntax.InvocationExpressionSyntax
	Receiver   syntax.Expr   // the expression before the first Where
	Predicates []syntax.Expr // in source order
}

// MatchWhereCount matches a zero-argument Count() whose receiver is Where(predicate), both
// resolving to System.Linq.Enumerable, and collects all directly chained Where calls.
func MatchWhereCount(ctx context.Context, model host.Model, e syntax.Expr) (WhereCountShape, bool, error) {
	inv, ma, ok := syntax.MemberCall(e)
	if !ok || syntax.NameOf(ma.Name) != "Count" || inv.Args.Args.Len() != 0 {
		return WhereCountShape{}, false, nil
	}

	ch, err := chain.Of(ctx, inv)
	if err != nil {
		return WhereCountShape{}, false, err
	}

	first := ch.Len() - 1
	for first > 0 {
		if err := ctx.Err(); err != nil {
			return WhereCountShape{}, false, err
		}

		if _, ok := whereCall(model, ch.Links[first-1]); !ok {
			break
		}

		first--
	}

	if first == ch.Len()-1 || !IsEnumerableCall(model, inv, "Count") {
		return WhereCountShape{}, false, nil
	}

	shape := WhereCountShape{Count: inv, Receiver: ch.Receiver(first)}

	for _, l := range ch.Links[first : ch.Len()-1] {
		pred, _ := whereCall(model, l)
		shape.Predicates = append(shape.Predicates, pred)
	}

	return shape, true, nil
}

func matchWhereCount(ctx context.Context, model host.Model, c syntax.Cursor) (report.Finding, bool, error) {
	shape, ok, err := MatchWhereCount(ctx, model, c.Node().(syntax.Expr)) //nolint:forcetypeassert
	if !ok || err != nil {
		return report.Finding{}, false, err
	}

	return report.New(WhereCount, shape.Count), true, nil
}
