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

// Methods allocating a new string.
var stringMutators = map[string]bool{
	"Concat": true, "Format": true, "Join": true, "Insert": true, "Remove": true, "Replace": true,
	"Substring": true, "ToLower": true, "ToUpper": true, "ToLowerInvariant": true, "ToUpperInvariant": true,
	"Trim": true, "TrimStart": true, "TrimEnd": true, "PadLeft": true, "PadRight": true, "Split": true,
	"Normalize": true,
}

// Methods allocating a new collection, whatever type declares them.
var materializers = map[string]bool{
	"ToList": true, "ToArray": true, "ToDictionary": true, "ToHashSet": true, "ToLookup": true,
}

// StaticPropertyShape is a static expression-bodied property whose expression allocates.
type StaticPropertyShape struct {
	Property *syntax.PropertyDeclarationSyntax
	Expr     syntax.Expr
}

// MatchStaticPropertyAllocation matches "static T P => expr;" where expr potentially allocates.
func MatchStaticPropertyAllocation(model host.Model, p *syntax.PropertyDeclarationSyntax) (StaticPropertyShape, bool) {
	if p.ExprBody == nil || p.Accessors != nil || !syntax.HasModifier(p.Modifiers, "static") {
		return StaticPropertyShape{}, false
	}

	if !Allocates(model, p.ExprBody.Expr) {
		return StaticPropertyShape{}, false
	}

	return StaticPropertyShape{Property: p, Expr: p.ExprBody.Expr}, true
}

// Allocates reports whether evaluating e potentially allocates a new object.
func Allocates(model host.Model, e syntax.Expr) bool {
	switch e := e.(type) {
	case *syntax.ObjectCreationExpressionSyntax,
		*syntax.ImplicitObjectCreationExpressionSyntax,
		*syntax.ArrayCreationExpressionSyntax,
		*syntax.ImplicitArrayCreationExpressionSyntax,
		*syntax.InitializerExpressionSyntax:
		return true

	case *syntax.CollectionExpressionSyntax:
		ti, ok := model.TypeInfo(e)

		return !ok || !host.IsSpan(ti.ConvertedType)

	case *syntax.InvocationExpressionSyntax:
		return callAllocates(model, e) || Allocates(model, e.Expr)

	case *syntax.AssignmentExpressionSyntax:
		if e.Op.Is("??=") {
			return false
		}

		return Allocates(model, e.Right)

	case *syntax.MemberAccessExpressionSyntax:
		return Allocates(model, e.Expr)

	case *syntax.ConditionalExpressionSyntax:
		if IsLazyInit(e) {
			return false
		}

		return Allocates(model, e.WhenTrue) || Allocates(model, e.WhenFalse)

	case *syntax.BinaryExpressionSyntax:
		if Allocates(model, e.Left) || Allocates(model, e.Right) {
			return true
		}

		return e.Op.Is("+") && (isString(model, e.Left) || isString(model, e.Right))

	case *syntax.ParenthesizedExpressionSyntax:
		return Allocates(model, e.Expr)

	case *syntax.CastExpressionSyntax:
		return Allocates(model, e.Expr)

	default: // literals, names and everything else
		return false
	}
}

func callAllocates(model host.Model, inv *syntax.InvocationExpressionSyntax) bool {
	sym, ok := model.Symbol(inv)
	if !ok || sym.Kind != host.Method {
		return false
	}

	switch {
	case sym.DeclaredBy(host.SystemNamespace, host.Environment):
		return sym.Name == "GetEnvironmentVariable" || sym.Name == "GetEnvironmentVariables"

	case sym.DeclaredBy(host.SystemNamespace, host.String):
		return stringMutators[sym.Name]

	case sym.ContainingNamespace == host.LinqNamespace:
		return true

	default:
		return materializers[sym.Name]
	}
}

func isString(model host.Model, e syntax.Expr) bool {
	ti, ok := model.TypeInfo(e)

	return ok && host.IsString(ti.Type)
}

// IsLazyInit reports whether c is "x == null ? x = v : x" or one of its variants: the
// condition tests x against null with ==, !=, "is null" or "is not null", one branch assigns
// x and the other reads x, in either order.
func IsLazyInit(c *syntax.ConditionalExpressionSyntax) bool {
	x, ok := nullTested(syntax.Unparen(c.Cond))
	if !ok {
		return false
	}

	return lazyBranches(x, c.WhenTrue, c.WhenFalse) || lazyBranches(x, c.WhenFalse, c.WhenTrue)
}

func lazyBranches(x string, assign, read syntax.Expr) bool {
	a, ok := syntax.Unparen(assign).(*syntax.AssignmentExpressionSyntax)
	if !ok || !a.Op.Is("=") || syntax.TrimmedText(a.Left) != x {
		return false
	}

	return isName(syntax.Unparen(read)) && syntax.TrimmedText(syntax.Unparen(read)) == x
}

// nullTested returns the text of x for "x == null", "null == x", "x != null", "x is null"
// and "x is not null".
func nullTested(cond syntax.Expr) (string, bool) {
	switch cond := cond.(type) {
	case *syntax.BinaryExpressionSyntax:
		if !cond.Op.Is("==") && !cond.Op.Is("!=") {
			return "", false
		}

		switch {
		case syntax.IsNull(cond.Right) && isName(cond.Left):
			return syntax.TrimmedText(cond.Left), true

		case syntax.IsNull(cond.Left) && isName(cond.Right):
			return syntax.TrimmedText(cond.Right), true
		}

	case *syntax.IsPatternExpressionSyntax:
		if !isName(cond.Expr) || !isNullPattern(cond.Pattern) {
			return "", false
		}

		return syntax.TrimmedText(cond.Expr), true
	}

	return "", false
}

func isNullPattern(p syntax.Pattern) bool {
	switch p := p.(type) {
	case *syntax.ConstantPatternSyntax:
		return syntax.IsNull(p.Expr)

	case *syntax.NotPatternSyntax:
		c, ok := p.Pattern.(*syntax.ConstantPatternSyntax)

		return ok && syntax.IsNull(c.Expr)

	default:
		return false
	}
}

// isName reports whether e is a plain name or a member access chain of names.
func isName(e syntax.Expr) bool {
	switch e := e.(type) {
	case *syntax.IdentifierNameSyntax, *syntax.ThisExpressionSyntax:
		return true

	case *syntax.MemberAccessExpressionSyntax:
		return isName(e.Expr)

	default:
		return false
	}
}

func matchStaticPropertyAllocation(_ context.Context, model host.Model, c syntax.Cursor) (report.Finding, bool, error) {
	shape, ok := MatchStaticPropertyAllocation(model, c.Node().(*syntax.PropertyDeclarationSyntax)) //nolint:forcetypeassert
	if !ok {
		return report.Finding{}, false, nil
	}

	return report.AtToken(StaticPropertyAllocation, shape.Property.Name, shape.Property.Name.Text), true, nil
}
