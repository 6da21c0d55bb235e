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

package syntax

// NameOf returns the simple name of an identifier, a generic name or the accessed member of
// a member access, or "" for other expressions.
func NameOf(e Expr) string {
	switch e := e.(type) {
	case *IdentifierNameSyntax:
		return e.Name.Text

	case *GenericNameSyntax:
		return e.Name.Text

	case *MemberAccessExpressionSyntax:
		return NameOf(e.Name)

	case *QualifiedNameSyntax:
		return NameOf(e.Right)

	default:
		return ""
	}
}

// NameToken returns the identifier token of a simple or generic name.
func NameToken(e Expr) *Token {
	switch e := e.(type) {
	case *IdentifierNameSyntax:
		return e.Name

	case *GenericNameSyntax:
		return e.Name

	case *MemberAccessExpressionSyntax:
		return NameToken(e.Name)

	default:
		return nil
	}
}

// Unparen strips enclosing parentheses.
func Unparen(e Expr) Expr {
	for {
		p, ok := e.(*ParenthesizedExpressionSyntax)
		if !ok {
			return e
		}

		e = p.Expr
	}
}

// MemberCall decomposes an invocation of the form recv.Name(args).
// It returns false for conditional access and for calls not made through a member access.
func MemberCall(e Expr) (inv *InvocationExpressionSyntax, ma *MemberAccessExpressionSyntax, ok bool) {
	inv, ok = e.(*InvocationExpressionSyntax)
	if !ok {
		return nil, nil, false
	}

	ma, ok = inv.Expr.(*MemberAccessExpressionSyntax)
	if !ok || !ma.Dot.Is(".") {
		return nil, nil, false
	}

	return inv, ma, true
}

// IsMemberCall reports whether e is recv.name(...) with the given number of arguments.
func IsMemberCall(e Expr, name string, args int) bool {
	inv, ma, ok := MemberCall(e)

	return ok && NameOf(ma.Name) == name && inv.Args.Args.Len() == args
}

// LambdaParams returns the parameters of a lambda or anonymous method.
func LambdaParams(e Expr) []*ParameterSyntax {
	switch e := e.(type) {
	case *SimpleLambdaExpressionSyntax:
		return []*ParameterSyntax{e.Param}

	case *ParenthesizedLambdaExpressionSyntax:
		return e.Params.Params.Items

	case *AnonymousMethodExpressionSyntax:
		if e.Params == nil {
			return nil
		}

		return e.Params.Params.Items

	default:
		return nil
	}
}

// LambdaBody returns the body of a lambda or anonymous method.
func LambdaBody(e Expr) (Node, bool) {
	switch e := e.(type) {
	case *SimpleLambdaExpressionSyntax:
		return e.Body, true

	case *ParenthesizedLambdaExpressionSyntax:
		return e.Body, true

	case *AnonymousMethodExpressionSyntax:
		return e.Body, true

	default:
		return nil, false
	}
}

// IsLiteral reports whether e is a literal with the given text.
func IsLiteral(e Expr, text string) bool {
	l, ok := e.(*LiteralExpressionSyntax)

	return ok && l.Token.Text == text
}

// IsNull reports whether e is the null literal.
func IsNull(e Expr) bool { return IsLiteral(Unparen(e), "null") }

// IdentifierText returns the name of a bare identifier, or "" for other expressions.
func IdentifierText(e Expr) string {
	if id, ok := e.(*IdentifierNameSyntax); ok {
		return id.Name.Text
	}

	return ""
}
