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

// RedundantMaterializationShape is "xs.ToList().Next(...)" with Next a System.Linq.Enumerable method.
type RedundantMaterializationShape struct {
	Materialization
	Next *syntax.InvocationExpressionSyntax
}

// MatchRedundantMaterialization matches a ToList() or ToArray() call whose result is
// immediately consumed by another System.Linq.Enumerable call.
//
// Comparisons of ToList().Count() are left to [MaterializedCountCall].
func MatchRedundantMaterialization(model host.Model, c syntax.Cursor) (RedundantMaterializationShape, bool) {
	mat, ok := Materializer(model, c.Node().(syntax.Expr)) //nolint:forcetypeassert
	if !ok {
		return RedundantMaterializationShape{}, false
	}

	pc, ok := c.Parent()
	if !ok {
		return RedundantMaterializationShape{}, false
	}

	ma, ok := pc.Node().(*syntax.MemberAccessExpressionSyntax)
	if !ok || ma.Expr != syntax.Expr(mat.Call) || !ma.Dot.Is(".") {
		return RedundantMaterializationShape{}, false
	}

	gc, ok := pc.Parent()
	if !ok {
		return RedundantMaterializationShape{}, false
	}

	next, ok := gc.Node().(*syntax.InvocationExpressionSyntax)
	if !ok || next.Expr != syntax.Expr(ma) {
		return RedundantMaterializationShape{}, false
	}

	if !resolves(model, next, func(s host.Symbol) bool {
		return s.Kind == host.Method && s.DeclaredBy(host.LinqNamespace, host.Enumerable)
	}) {
		return RedundantMaterializationShape{}, false
	}

	if syntax.NameOf(ma.Name) == "Count" && next.Args.Args.Len() == 0 {
		if b, ok := gc.ParentNode().(*syntax.BinaryExpressionSyntax); ok {
			if _, ok := MatchMaterializedCountCall(model, b); ok {
				return RedundantMaterializationShape{}, false
			}
		}
	}

	return RedundantMaterializationShape{Materialization: mat, Next: next}, true
}

func matchRedundantMaterialization(_ context.Context, model host.Model, c syntax.Cursor) (report.Finding, bool, error) {
	shape, ok := MatchRedundantMaterialization(model, c)
	if !ok {
		return report.Finding{}, false, nil
	}

	f := report.New(RedundantMaterialization, shape.Call, shape.Name, syntax.NameOf(shape.Next.Expr))
	f.Span = linkSpan(shape.Call, shape.Access)

	return f, true, nil
}
