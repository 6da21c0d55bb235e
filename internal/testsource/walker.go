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

package testsource

import (
	"fillmore-labs.com/linqguard/host"
	"fillmore-labs.com/linqguard/syntax"
)

type scope struct {
	parent *scope
	names  map[string]*decl
}

func newScope(parent *scope) *scope {
	return &scope{parent: parent, names: make(map[string]*decl)}
}

func (s *scope) lookup(name string) *decl {
	for ; s != nil; s = s.parent {
		if d := s.names[name]; d != nil {
			return d
		}
	}

	return nil
}

// walker resolves simple names in source order, so that types of locals and lambda
// parameters are known when later expressions refer to them.
type walker struct {
	m *Model
}

func (w *walker) walk(n syntax.Node, s *scope) {
	switch n := n.(type) {
	case *syntax.ClassDeclarationSyntax:
		s = &scope{parent: s, names: w.m.classes[n.Name.Text].members}

	case *syntax.MethodDeclarationSyntax:
		inner := newScope(s)
		w.declareParams(inner, n.Params.Params.Items, nil)

		if n.Body != nil {
			w.walk(n.Body, inner)
		}

		if n.ExprBody != nil {
			w.walk(n.ExprBody, inner)
		}

		return

	case *syntax.BlockSyntax:
		inner := newScope(s)
		for _, stmt := range n.Stmts {
			w.walk(stmt, inner)
		}

		return

	case *syntax.LocalDeclarationStatementSyntax:
		w.declareLocals(s, n.Declaration)

		return

	case *syntax.ForEachStatementSyntax:
		w.walk(n.Expr, s)

		typ := w.m.typeOfSyntax(n.Type)
		if typ == nil {
			typ = elementType(w.m.typeOf(n.Expr))
		}

		inner := newScope(s)
		inner.names[n.Name.Text] = &decl{name: n.Name.Text, kind: host.Local, typ: typ}
		w.walk(n.Body, inner)

		return

	case *syntax.SimpleLambdaExpressionSyntax, *syntax.ParenthesizedLambdaExpressionSyntax,
		*syntax.AnonymousMethodExpressionSyntax:
		e := n.(syntax.Expr) //nolint:forcetypeassert
		inner := newScope(s)
		w.declareParams(inner, syntax.LambdaParams(e), e)

		body, _ := syntax.LambdaBody(e)
		w.walk(body, inner)

		return

	case *syntax.MemberAccessExpressionSyntax:
		w.walk(n.Expr, s)

		return

	case *syntax.IdentifierNameSyntax:
		if d := s.lookup(n.Name.Text); d != nil {
			w.m.refs[n] = d
		}

		return
	}

	for _, c := range syntax.ChildNodes(n) {
		w.walk(c, s)
	}
}

func (w *walker) declareParams(s *scope, params []*syntax.ParameterSyntax, lambda syntax.Expr) {
	for i, p := range params {
		var typ *host.Type
		if p.Type != nil {
			typ = w.m.typeOfSyntax(p.Type)
		} else if lambda != nil {
			typ = w.m.lambdaParamType(lambda, i)
		}

		s.names[p.Name.Text] = &decl{name: p.Name.Text, kind: host.Parameter, typ: typ}
	}
}

func (w *walker) declareLocals(s *scope, d *syntax.VariableDeclarationSyntax) {
	declared := w.m.typeOfSyntax(d.Type)

	for _, v := range d.Variables.Items {
		typ := declared

		if v.Initializer != nil {
			w.walk(v.Initializer.Value, s)

			if typ == nil {
				typ = w.m.typeOf(v.Initializer.Value)
			}
		}

		s.names[v.Name.Text] = &decl{name: v.Name.Text, kind: host.Local, typ: typ}
	}
}
