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

// Package match holds the structural matchers of the linqguard rules.
//
// Every matcher first applies cheap syntactic guards to a node of a kind it subscribes to
// and only then confirms the shape through the semantic model. Queries the model cannot
// answer make the matcher fail: a missed finding is preferred over a wrong one.
//
// Matchers are stateless and safe for concurrent use.
package match

import (
	"context"

	"fillmore-labs.com/linqguard/host"
	"fillmore-labs.com/linqguard/internal/report"
	"fillmore-labs.com/linqguard/syntax"
)

// Func inspects the node at c and returns a finding when it matches.
type Func func(ctx context.Context, model host.Model, c syntax.Cursor) (report.Finding, bool, error)

// Matcher detects one rule.
type Matcher struct {
	Rule  string        // rule id
	Kinds []syntax.Kind // node kinds the matcher inspects
	Match Func
}

// All returns the matchers of all rules in rule order.
func All() []Matcher {
	return []Matcher{
		{Rule: ToListForEach, Kinds: []syntax.Kind{syntax.InvocationExpression}, Match: matchToListForEach},
		{Rule: IdentitySelect, Kinds: []syntax.Kind{syntax.InvocationExpression}, Match: matchIdentitySelect},
		{Rule: CountAny, Kinds: []syntax.Kind{syntax.BinaryExpression}, Match: matchCountAny},
		{Rule: MaterializedCountProperty, Kinds: []syntax.Kind{syntax.BinaryExpression}, Match: matchMaterializedCountProperty},
		{Rule: MaterializedCountCall, Kinds: []syntax.Kind{syntax.BinaryExpression}, Match: matchMaterializedCountCall},
		{Rule: CoalesceForEach, Kinds: []syntax.Kind{syntax.ForEachStatement}, Match: matchCoalesceForEach},
		{Rule: WhereCount, Kinds: []syntax.Kind{syntax.InvocationExpression}, Match: matchWhereCount},
		{Rule: StaticPropertyAllocation, Kinds: []syntax.Kind{syntax.PropertyDeclaration}, Match: matchStaticPropertyAllocation},
		{Rule: RedundantMaterialization, Kinds: []syntax.Kind{syntax.InvocationExpression}, Match: matchRedundantMaterialization},
	}
}

// Rule ids.
const (
	ToListForEach             = "LG0001"
	IdentitySelect            = "LG0002"
	CountAny                  = "LG0003"
	MaterializedCountProperty = "LG0004"
	MaterializedCountCall     = "LG0005"
	CoalesceForEach           = "LG0006"
	WhereCount                = "LG0007"
	StaticPropertyAllocation  = "LG0008"
	RedundantMaterialization  = "LG0009"
)

// resolves reports whether the model resolves n to a symbol satisfying pred.
func resolves(model host.Model, n syntax.Node, pred func(host.Symbol) bool) bool {
	sym, ok := model.Symbol(n)

	return ok && pred(sym)
}

// IsEnumerableCall reports whether inv is a call of the System.Linq.Enumerable method name.
func IsEnumerableCall(model host.Model, inv *syntax.InvocationExpressionSyntax, name string) bool {
	return resolves(model, inv, func(s host.Symbol) bool { return host.IsEnumerable(s, name) })
}

// Materialization is a zero-argument ToList() or ToArray() call.
type Materialization struct {
	Name   string
	Call   *syntax.InvocationExpressionSyntax
	Access *syntax.MemberAccessExpressionSyntax
}

// Source returns the materialized sequence.
func (m Materialization) Source() syntax.Expr { return m.Access.Expr }

// Materializer decomposes e as a zero-argument ToList() or ToArray() call resolving to
// System.Linq.Enumerable.
func Materializer(model host.Model, e syntax.Expr) (Materialization, bool) {
	inv, ma, ok := syntax.MemberCall(e)
	if !ok || inv.Args.Args.Len() != 0 {
		return Materialization{}, false
	}

	name := syntax.NameOf(ma.Name)
	if name != "ToList" && name != "ToArray" {
		return Materialization{}, false
	}

	if !IsEnumerableCall(model, inv, name) {
		return Materialization{}, false
	}

	return Materialization{Name: name, Call: inv, Access: ma}, true
}

// linkSpan returns the span from the member name of a chained call through the end of the call.
func linkSpan(inv *syntax.InvocationExpressionSyntax, ma *syntax.MemberAccessExpressionSyntax) syntax.Span {
	return syntax.Span{Start: syntax.SpanOf(ma.Name).Start, End: syntax.SpanOf(inv).End}
}

// isChained reports whether the expression at c is the receiver of a further member access.
func isChained(c syntax.Cursor) bool {
	ma, ok := c.ParentNode().(*syntax.MemberAccessExpressionSyntax)

	return ok && ma.Expr == c.Node()
}
