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

// CountShape is a comparison of a count with 0 or 1 that can be expressed with Any().
type CountShape struct {
	Comparison
	Receiver     syntax.Expr // the sequence Any() is called on
	Materializer string      // ToList or ToArray, empty for a plain Count()
	Member       string      // Count or Length
}

// MatchCountAny matches "xs.Count() > 0" and its equivalents, excluding materialized receivers.
func MatchCountAny(model host.Model, b *syntax.BinaryExpressionSyntax) (CountShape, bool) {
	cmp, ok := CountComparison(b)
	if !ok {
		return CountShape{}, false
	}

	inv, ma, ok := syntax.MemberCall(cmp.Count)
	if !ok || syntax.NameOf(ma.Name) != "Count" || inv.Args.Args.Len() != 0 {
		return CountShape{}, false
	}

	if !IsEnumerableCall(model, inv, "Count") {
		return CountShape{}, false
	}

	if _, ok := Materializer(model, ma.Expr); ok {
		return CountShape{}, false
	}

	return CountShape{Comparison: cmp, Receiver: ma.Expr, Member: "Count"}, true
}

// MatchMaterializedCountProperty matches "xs.ToList().Count > 0" and "xs.ToArray().Length > 0".
func MatchMaterializedCountProperty(model host.Model, b *syntax.BinaryExpressionSyntax) (CountShape, bool) {
	cmp, ok := CountComparison(b)
	if !ok {
		return CountShape{}, false
	}

	ma, ok := cmp.Count.(*syntax.MemberAccessExpressionSyntax)
	if !ok || !ma.Dot.Is(".") {
		return CountShape{}, false
	}

	member := syntax.NameOf(ma.Name)

	var want string

	switch member {
	case "Count":
		want = "ToList"

	case "Length":
		want = "ToArray"

	default:
		return CountShape{}, false
	}

	mat, ok := Materializer(model, ma.Expr)
	if !ok || mat.Name != want {
		return CountShape{}, false
	}

	if !resolves(model, ma, func(s host.Symbol) bool {
		return s.Kind == host.Property && (host.IsList(s, "Count") || host.IsArray(s, "Length"))
	}) {
		return CountShape{}, false
	}

	return CountShape{Comparison: cmp, Receiver: mat.Source(), Materializer: mat.Name, Member: member}, true
}

// MatchMaterializedCountCall matches "xs.ToList().Count() > 0" and "xs.ToArray().Count() > 0".
func MatchMaterializedCountCall(model host.Model, b *syntax.BinaryExpressionSyntax) (CountShape, bool) {
	cmp, ok := CountComparison(b)
	if !ok {
		return CountShape{}, false
	}

	inv, ma, ok := syntax.MemberCall(cmp.Count)
	if !ok || syntax.NameOf(ma.Name) != "Count" || inv.Args.Args.Len() != 0 {
		return CountShape{}, false
	}

	mat, ok := Materializer(model, ma.Expr)
	if !ok || !IsEnumerableCall(model, inv, "Count") {
		return CountShape{}, false
	}

	return CountShape{Comparison: cmp, Receiver: mat.Source(), Materializer: mat.Name, Member: "Count"}, true
}

func matchCountAny(_ context.Context, model host.Model, c syntax.Cursor) (report.Finding, bool, error) {
	b := c.Node().(*syntax.BinaryExpressionSyntax) //nolint:forcetypeassert

	shape, ok := MatchCountAny(model, b)
	if !ok {
		return report.Finding{}, false, nil
	}

	return report.New(CountAny, b, shape.Existence.Replacement(), shape.Literal), true, nil
}

func matchMaterializedCountProperty(_ context.Context, model host.Model, c syntax.Cursor) (report.Finding, bool, error) {
	b := c.Node().(*syntax.BinaryExpressionSyntax) //nolint:forcetypeassert

	shape, ok := MatchMaterializedCountProperty(model, b)
	if !ok {
		return report.Finding{}, false, nil
	}

	return report.New(MaterializedCountProperty, b,
		shape.Existence.Replacement(), shape.Materializer, shape.Member, shape.Literal), true, nil
}

func matchMaterializedCountCall(_ context.Context, model host.Model, c syntax.Cursor) (report.Finding, bool, error) {
	b := c.Node().(*syntax.BinaryExpressionSyntax) //nolint:forcetypeassert

	shape, ok := MatchMaterializedCountCall(model, b)
	if !ok {
		return report.Finding{}, false, nil
	}

	return report.New(MaterializedCountCall, b,
		shape.Existence.Replacement(), shape.Materializer, shape.Literal), true, nil
}
