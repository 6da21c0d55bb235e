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
	"fillmore-labs.com/linqguard/internal/match"
	"fillmore-labs.com/linqguard/internal/trivia"
	"fillmore-labs.com/linqguard/syntax"
)

// itemName is the loop variable used when the action is a method group.
const itemName = "item"

// rewriteToListForEach turns the statement "source.ToList().ForEach(action);" into a foreach
// loop over source.
func rewriteToListForEach(_ context.Context, model host.Model, c syntax.Cursor) (old, replacement syntax.Node, ok bool, err error) {
	shape, ok := match.MatchToListForEach(model, c.Node().(syntax.Expr)) //nolint:forcetypeassert
	if !ok {
		return nil, nil, false, nil
	}

	stmt, ok := c.ParentNode().(*syntax.ExpressionStatementSyntax)
	if !ok || stmt.Expr != syntax.Expr(shape.ForEach) {
		return nil, nil, false, nil
	}

	loopVar, body, ok := loopBody(shape.Action)
	if !ok {
		return nil, nil, false, nil
	}

	indent := trivia.Indentation(syntax.FirstToken(stmt))
	trailing := stmt.Semi.Trailing

	// The trailing comment of the statement ends the loop header.
	header := trailing
	if !header.EndsWithEndOfLine() {
		header = append(header[:len(header):len(header)], syntax.Newline)
	}

	var after syntax.TriviaList
	if trailing.EndsWithEndOfLine() {
		after = syntax.TriviaList{syntax.Newline}
	}

	loop := &syntax.ForEachStatementSyntax{
		ForEach: syntax.SpaceAfter(syntax.Kw("foreach")).WithLeading(syntax.Leading(stmt)),
		Open:    syntax.Punct("("),
		Type:    loopVar.typ,
		Name:    syntax.SpaceAfter(syntax.Ident(loopVar.name)),
		In:      syntax.SpaceAfter(syntax.Kw("in")),
		Expr:    trivia.Strip(syntax.WithLeading(shape.Source, nil)),
		Close:   syntax.Punct(")").WithTrailing(header),
		Body:    block(body, indent, after),
	}

	return stmt, trivia.Attach(loop, trivia.Missing(stmt, loop)...), true, nil
}

type loopVariable struct {
	typ  syntax.Expr
	name string
}

func implicitVar() syntax.Expr {
	return &syntax.IdentifierNameSyntax{Name: syntax.SpaceAfter(syntax.Ident("var"))}
}

// loopBody derives the loop variable and the body of the loop from the action passed to ForEach.
func loopBody(action syntax.Expr) (loopVariable, syntax.Node, bool) {
	switch a := action.(type) {
	case *syntax.SimpleLambdaExpressionSyntax:
		return loopVariable{typ: implicitVar(), name: a.Param.Name.Text}, a.Body, true

	case *syntax.ParenthesizedLambdaExpressionSyntax:
		if a.Params.Params.Len() != 1 {
			return loopVariable{}, nil, false
		}

		return loopVariable{typ: paramType(a.Params.Params.Items[0]), name: a.Params.Params.Items[0].Name.Text}, a.Body, true

	case *syntax.AnonymousMethodExpressionSyntax:
		if a.Params == nil {
			return loopVariable{typ: implicitVar(), name: itemName}, a.Body, true
		}

		if a.Params.Params.Len() != 1 {
			return loopVariable{}, nil, false
		}

		return loopVariable{typ: paramType(a.Params.Params.Items[0]), name: a.Params.Params.Items[0].Name.Text}, a.Body, true

	default: // method group or delegate value
		call := syntax.Invocation(trivia.Strip(syntax.WithLeading(action, nil)), syntax.NewIdentifierName(itemName))

		return loopVariable{typ: implicitVar(), name: itemName}, call, true
	}
}

func paramType(p *syntax.ParameterSyntax) syntax.Expr {
	if p.Type == nil {
		return implicitVar()
	}

	return syntax.WithTrailing(syntax.WithLeading(p.Type, nil), syntax.TriviaList{syntax.Space})
}

// block builds the loop body on the lines following the header.
// Expression bodies become a statement, block bodies are reused.
func block(body syntax.Node, indent string, after syntax.TriviaList) *syntax.BlockSyntax {
	open := syntax.Punct("{").WithLeading(syntax.Spaces(indent)).WithTrailing(syntax.TriviaList{syntax.Newline})
	closing := syntax.Punct("}").WithLeading(syntax.Spaces(indent)).WithTrailing(after)

	if b, ok := body.(*syntax.BlockSyntax); ok {
		b2 := *b
		b2.Open = b.Open.WithLeading(syntax.Spaces(indent))
		b2.Close = b.Close.WithTrailing(after)

		if !b.Open.Trailing.EndsWithEndOfLine() && len(b.Stmts) == 0 {
			b2.Open = b2.Open.WithTrailing(syntax.TriviaList{syntax.Newline})
			b2.Close = b2.Close.WithLeading(syntax.Spaces(indent))
		}

		return &b2
	}

	e := trivia.Strip(body.(syntax.Expr)) //nolint:forcetypeassert

	stmt := &syntax.ExpressionStatementSyntax{
		Expr: syntax.WithLeading(e, append(syntax.Spaces(indent+trivia.IndentUnit(indent)), syntax.Leading(e)...)),
		Semi: syntax.Punct(";").WithTrailing(syntax.TriviaList{syntax.Newline}),
	}

	if syntax.Trailing(e).EndsWithEndOfLine() {
		stmt.Semi = stmt.Semi.WithLeading(syntax.Spaces(indent + trivia.IndentUnit(indent)))
	}

	return &syntax.BlockSyntax{Open: open, Stmts: []syntax.Stmt{stmt}, Close: closing}
}
