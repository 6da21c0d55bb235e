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

// Constructors for synthesized nodes. Synthesized tokens carry no position and only the
// minimal trivia needed to render valid source.

// NewIdentifierName returns a simple name.
func NewIdentifierName(name string) *IdentifierNameSyntax {
	return &IdentifierNameSyntax{Name: Ident(name)}
}

// MemberAccess returns "expr.name".
func MemberAccess(expr Expr, name string) *MemberAccessExpressionSyntax {
	return &MemberAccessExpressionSyntax{Expr: expr, Dot: Punct("."), Name: NewIdentifierName(name)}
}

// NewArgumentList returns "(args)" with comma separated arguments.
func NewArgumentList(args ...Expr) *ArgumentListSyntax {
	items := make([]*ArgumentSyntax, 0, len(args))
	for _, a := range args {
		items = append(items, &ArgumentSyntax{Expr: a})
	}

	return &ArgumentListSyntax{Open: Punct("("), Args: NewList(",", items...), Close: Punct(")")}
}

// Invocation returns "expr(args)".
func Invocation(expr Expr, args ...Expr) *InvocationExpressionSyntax {
	return &InvocationExpressionSyntax{Expr: expr, Args: NewArgumentList(args...)}
}

// Not returns "!operand".
func Not(operand Expr) *PrefixUnaryExpressionSyntax {
	return &PrefixUnaryExpressionSyntax{Op: Punct("!"), Operand: operand}
}

// Binary returns "left op right" with single spaces around op.
func Binary(left Expr, op string, right Expr) *BinaryExpressionSyntax {
	return &BinaryExpressionSyntax{Left: left, Op: Spaced(Punct(op)), Right: right}
}

// Parenthesize returns "(e)".
func Parenthesize(e Expr) *ParenthesizedExpressionSyntax {
	return &ParenthesizedExpressionSyntax{Open: Punct("("), Expr: e, Close: Punct(")")}
}

// Null returns the null literal.
func Null() *LiteralExpressionSyntax {
	return &LiteralExpressionSyntax{Token: Kw("null")}
}

// SimpleLambda returns "param => body".
func SimpleLambda(param string, body Node) *SimpleLambdaExpressionSyntax {
	return &SimpleLambdaExpressionSyntax{
		Param: &ParameterSyntax{Name: Ident(param)},
		Arrow: Spaced(Punct("=>")),
		Body:  body,
	}
}
