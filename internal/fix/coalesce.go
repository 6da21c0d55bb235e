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
	"strings"

	"fillmore-labs.com/linqguard/host"
	"fillmore-labs.com/linqguard/internal/match"
	"fillmore-labs.com/linqguard/internal/trivia"
	"fillmore-labs.com/linqguard/syntax"
)

// rewriteCoalesceForEach turns "foreach (x in a ?? empty) S" into
// "if (a != null) { foreach (x in a) S }".
//
// The leading trivia of the foreach keyword moves to the if keyword. A one-line loop stays on
// one line, otherwise the loop moves into a block one indentation unit deeper.
func rewriteCoalesceForEach(_ context.Context, _ host.Model, c syntax.Cursor) (old, replacement syntax.Node, ok bool, err error) {
	f := c.Node().(*syntax.ForEachStatementSyntax) //nolint:forcetypeassert

	shape, ok := match.MatchCoalesceForEach(f)
	if !ok {
		return nil, nil, false, nil
	}

	recv := syntax.WithoutTrivia(shape.Receiver)
	multiline := strings.Contains(syntax.TrimmedText(f), "\n")
	indent := trivia.Indentation(f.ForEach)
	trailing := syntax.Trailing(f)

	inner := *f
	inner.Expr = trivia.Strip(shape.Receiver)
	inner.ForEach = f.ForEach.WithLeading(nil)

	stmt := &syntax.IfStatementSyntax{
		If:    syntax.SpaceAfter(syntax.Kw("if")).WithLeading(f.ForEach.Leading),
		Open:  syntax.Punct("("),
		Cond:  syntax.Binary(syntax.Clone(recv), "!=", syntax.Null()),
		Close: syntax.Punct(")"),
	}

	body := &syntax.BlockSyntax{Open: syntax.Punct("{"), Close: syntax.Punct("}").WithTrailing(trailing)}

	if multiline {
		eol := syntax.TriviaList{syntax.Newline}

		stmt.Close = stmt.Close.WithTrailing(eol)
		body.Open = body.Open.WithLeading(syntax.Spaces(indent)).WithTrailing(eol)
		body.Close = body.Close.WithLeading(syntax.Spaces(indent))

		inner.ForEach = inner.ForEach.WithLeading(syntax.Spaces(indent))
		body.Stmts = []syntax.Stmt{syntax.WithTrailing(trivia.Reindent(&inner, trivia.IndentUnit(indent)), eol)}
	} else {
		space := syntax.TriviaList{syntax.Space}

		stmt.Close = stmt.Close.WithTrailing(space)
		body.Open = body.Open.WithTrailing(space)
		body.Stmts = []syntax.Stmt{syntax.WithTrailing(&inner, space)}
	}

	stmt.Then = body

	return f, trivia.Attach(stmt, trivia.Missing(f, stmt)...), true, nil
}
