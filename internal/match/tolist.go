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

// ToListForEachShape is "source.ToList().ForEach(action)".
type ToListForEachShape struct {
	ForEach *syntax.InvocationExpressionSyntax
	ToList  *syntax.InvocationExpressionSyntax
	Source  syntax.Expr
	Action  syntax.Expr
}

// MatchToListForEach decomposes source.ToList().ForEach(action), with ForEach resolving to
// List<T> and ToList to System.Linq.Enumerable.
func MatchToListForEach(model host.Model, e syntax.Expr) (ToListForEachShape, bool) {
	inv, ma, ok := syntax.MemberCall(e)
	if !ok || syntax.NameOf(ma.Name) != "ForEach" || inv.Args.Args.Len() != 1 {
		return ToListForEachShape{}, false
	}

	toList, toListAccess, ok := syntax.MemberCall(ma.Expr)
	if !ok || syntax.NameOf(toListAccess.Name) != "ToList" || toList.Args.Args.Len() != 0 {
		return ToListForEachShape{}, false
	}

	arg := inv.Args.Args.Items[0]
	if arg.RefKind != nil {
		return ToListForEachShape{}, false
	}

	if !resolves(model, inv, func(s host.Symbol) bool { return s.Kind == host.Method && host.IsList(s, "ForEach") }) ||
		!IsEnumerableCall(model, toList, "ToList") {
		return ToListForEachShape{}, false
	}

	return ToListForEachShape{ForEach: inv, ToList: toList, Source: toListAccess.Expr, Action: arg.Expr}, true
}

func matchToListForEach(_ context.Context, model host.Model, c syntax.Cursor) (report.Finding, bool, error) {
	shape, ok := MatchToListForEach(model, c.Node().(syntax.Expr)) //nolint:forcetypeassert
	if !ok {
		return report.Finding{}, false, nil
	}

	return report.New(ToListForEach, shape.ForEach, syntax.TrimmedText(shape.Source)), true, nil
}
