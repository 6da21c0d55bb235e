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

package fix

import (
	"context"

	"fillmore-labs.com/linqguard/host"
	"fillmore-labs.com/linqguard/internal/chain"
	"fillmore-labs.com/linqguard/internal/match"
	"fillmore-labs.com/linqguard/internal/trivia"
	"fillmore-labs.com/linqguard/syntax"
)

// rewriteWhereCount turns "recv.Where(p1)...Where(pn).Count()" into "recv.Count(p1 && ... && pn)".
func rewriteWhereCount(ctx context.Context, model host.Model, c syntax.Cursor) (old, replacement syntax.Node, ok bool, err error) {
	shape, ok, err := match.MatchWhereCount(ctx, model, c.Node().(syntax.Expr)) //nolint:forcetypeassert
	if !ok || err != nil {
		return nil, nil, false, err
	}

	ch, err := chain.Of(ctx, shape.Count)
	if err != nil {
		return nil, nil, false, err
	}

	first := ch.Len() - 1 - len(shape.Predicates)

	pred, ok := combine(shape.Predicates)
	if !ok {
		return nil, nil, false, nil
	}

	count := syntax.Invocation(&syntax.MemberAccessExpressionSyntax{
		Expr: shape.Receiver,
		Dot:  ch.Links[first].Access.Dot,
		Name: syntax.NewIdentifierName("Count"),
	}, pred)

	return shape.Count, trivia.Preserve(shape.Count, count), true, nil
}

// combine merges predicates into one. A single predicate is passed as is.
func combine(preds []syntax.Expr) (syntax.Expr, bool) {
	if len(preds) == 1 {
		return trivia.Strip(preds[0]), true
	}

	param := parameterName(preds)

	var body syntax.Expr

	for _, p := range preds {
		b, ok := predicateBody(p, param)
		if !ok {
			return nil, false
		}

		if needsParens(b) {
			b = syntax.Parenthesize(b)
		}

		if body == nil {
			body = b

			continue
		}

		body = syntax.Binary(body, "&&", b)
	}

	// Keep the spelling of the first lambda.
	switch l := preds[0].(type) {
	case *syntax.SimpleLambdaExpressionSyntax:
		return &syntax.SimpleLambdaExpressionSyntax{Param: l.Param, Arrow: l.Arrow, Body: body}, true

	case *syntax.ParenthesizedLambdaExpressionSyntax:
		return &syntax.ParenthesizedLambdaExpressionSyntax{Params: l.Params, Arrow: l.Arrow, Body: body}, true

	default:
		return syntax.SimpleLambda(param, body), true
	}
}

// parameterName returns the parameter name of the first lambda.
func parameterName(preds []syntax.Expr) string {
	for _, p := range preds {
		if _, ok := syntax.LambdaBody(p); !ok {
			continue
		}

		if params := syntax.LambdaParams(p); len(params) == 1 {
			return params[0].Name.Text
		}
	}

	return itemName
}

// predicateBody returns the condition of a predicate in terms of param.
func predicateBody(pred syntax.Expr, param string) (syntax.Expr, bool) {
	lambdaBody, ok := syntax.LambdaBody(pred)
	if !ok { // method group
		return syntax.Invocation(syntax.WithoutTrivia(pred), syntax.NewIdentifierName(param)), true
	}

	var e syntax.Expr

	switch b := lambdaBody.(type) {
	case syntax.Expr:
		e = b

	case *syntax.BlockSyntax:
		if len(b.Stmts) != 1 {
			return nil, false
		}

		ret, ok := b.Stmts[0].(*syntax.ReturnStatementSyntax)
		if !ok || ret.Expr == nil {
			return nil, false
		}

		e = ret.Expr

	default:
		return nil, false
	}

	e = syntax.WithoutTrivia(e)

	params := syntax.LambdaParams(pred)

	switch len(params) {
	case 0:
		// "delegate { ... }" ignores its argument.
		_, anonymous := pred.(*syntax.AnonymousMethodExpressionSyntax)

		return e, anonymous

	case 1:
		return rename(e, params[0].Name.Text, param), true

	default:
		return nil, false
	}
}

// rename returns e with every simple name old replaced by name.
// Member names after a dot are not renamed.
func rename(e syntax.Expr, old, name string) syntax.Expr {
	if old == name {
		return e
	}

	toks := make(map[*syntax.Token]bool)

	syntax.Inspect(e, func(c syntax.Cursor) bool {
		id, ok := c.Node().(*syntax.IdentifierNameSyntax)
		if !ok || id.Name.Text != old {
			return true
		}

		if ma, ok := c.ParentNode().(*syntax.MemberAccessExpressionSyntax); ok && ma.Name == syntax.Expr(id) {
			return true
		}

		toks[id.Name] = true

		return true
	})

	return syntax.MapTokens(e, func(tok *syntax.Token) *syntax.Token {
		if !toks[tok] {
			return tok
		}

		r := *tok
		r.Text = name

		return &r
	})
}

// needsParens reports whether e binds weaker than &&.
func needsParens(e syntax.Expr) bool {
	switch e := e.(type) {
	case *syntax.BinaryExpressionSyntax:
		return e.Op.Is("||") || e.Op.Is("??")

	case *syntax.ConditionalExpressionSyntax,
		*syntax.AssignmentExpressionSyntax,
		*syntax.SimpleLambdaExpressionSyntax,
		*syntax.ParenthesizedLambdaExpressionSyntax:
		return true

	default:
		return false
	}
}
