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

// IdentityLambda returns the parameter name of a lambda of the form "p => p" or "(p) => p".
func IdentityLambda(e syntax.Expr) (string, bool) {
	var (
		param *syntax.ParameterSyntax
		body  syntax.Node
	)

	switch l := e.(type) {
	case *syntax.SimpleLambdaExpressionSyntax:
		param, body = l.Param, l.Body

	case *syntax.ParenthesizedLambdaExpressionSyntax:
		if l.Params.Params.Len() != 1 {
			return "", false
		}

		param, body = l.Params.Params.Items[0], l.Body

	default:
		return "", false
	}

	id, ok := body.(*syntax.IdentifierNameSyntax)
	if !ok || id.Name.Text != param.Name.Text {
		return "", false
	}

	return param.Name.Text, true
}

// MatchIdentitySelect decomposes recv.Select(p => p) resolving to System.Linq.Enumerable.
func MatchIdentitySelect(model host.Model, e syntax.Expr) (*syntax.InvocationExpressionSyntax, *syntax.MemberAccessExpressionSyntax, string, bool) {
	inv, ma, ok := syntax.MemberCall(e)
	if !ok || syntax.NameOf(ma.Name) != "Select" || inv.Args.Args.Len() != 1 {
		return nil, nil, "", false
	}

	param, ok := IdentityLambda(inv.Args.Args.Items[0].Expr)
	if !ok || !IsEnumerableCall(model, inv, "Select") {
		return nil, nil, "", false
	}

	return inv, ma, param, true
}

func matchIdentitySelect(_ context.Context, model host.Model, c syntax.Cursor) (report.Finding, bool, error) {
	inv, ma, param, ok := MatchIdentitySelect(model, c.Node().(syntax.Expr)) //nolint:forcetypeassert
	if !ok {
		return report.Finding{}, false, nil
	}

	f := report.New(IdentitySelect, inv, param)
	if isChained(c) {
		f.Span = linkSpan(inv, ma)
	}

	return f, true, nil
}
