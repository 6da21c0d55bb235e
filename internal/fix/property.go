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
	"fillmore-labs.com/linqguard/syntax"
)

// rewriteStaticProperty turns "static T P => expr;" into "static T P { get; } = expr;".
func rewriteStaticProperty(_ context.Context, model host.Model, c syntax.Cursor) (old, replacement syntax.Node, ok bool, err error) {
	p := c.Node().(*syntax.PropertyDeclarationSyntax) //nolint:forcetypeassert

	shape, ok := match.MatchStaticPropertyAllocation(model, p)
	if !ok {
		return nil, nil, false, nil
	}

	arrow := p.ExprBody.Arrow

	equals := *arrow
	equals.Text = "="
	equals.Pos = syntax.NoPos

	space := syntax.TriviaList{syntax.Space}

	r := *p
	r.ExprBody = nil
	r.Accessors = &syntax.AccessorListSyntax{
		Open: syntax.SpaceAfter(syntax.Punct("{")),
		Accessors: []*syntax.AccessorDeclarationSyntax{{
			Keyword: syntax.Ident("get"),
			Semi:    syntax.SpaceAfter(syntax.Punct(";")),
		}},
		Close: syntax.Punct("}"),
	}
	r.Initializer = &syntax.EqualsValueClauseSyntax{Equals: &equals, Value: shape.Expr}

	// The accessor list follows the name, the trivia after the name moves behind it.
	r.Name = p.Name.WithTrailing(space)

	switch {
	case len(p.Name.Trailing) > 0:
		r.Accessors.Close = r.Accessors.Close.WithTrailing(p.Name.Trailing)

	case len(arrow.Leading) == 0:
		r.Accessors.Close = r.Accessors.Close.WithTrailing(space)
	}

	return p, &r, true, nil
}
