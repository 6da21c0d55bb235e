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
	"strings"

	"fillmore-labs.com/linqguard/host"
	"fillmore-labs.com/linqguard/syntax"
)

// Model is a small semantic model over one parsed file.
//
// It knows the declarations in the file, a handful of library types, and the System.Linq
// extension methods when the file imports System.Linq. Anything else is unresolved.
type Model struct {
	linq      bool
	namespace string
	classes   map[string]*classInfo
	parents   map[syntax.Node]syntax.Node
	refs      map[*syntax.IdentifierNameSyntax]*decl
}

var _ host.Model = (*Model)(nil)

type classInfo struct {
	name    string
	members map[string]*decl
}

type decl struct {
	name      string
	kind      host.SymbolKind
	typ       *host.Type // variable type or method return type
	class     *classInfo // nil for locals and parameters
	static    bool
	extension bool
}

func (d *decl) symbol(ns string) host.Symbol {
	s := host.Symbol{Name: d.name, Kind: d.kind, IsStatic: d.static, IsExtension: d.extension}
	if d.class != nil {
		s.ContainingType, s.ContainingNamespace = d.class.name, ns
	}

	return s
}

// resolved is a member lookup result.
type resolved struct {
	sym host.Symbol
	typ *host.Type // value type, or return type for invoked methods
}

// NewModel builds the semantic model of a compilation unit.
func NewModel(root *syntax.CompilationUnitSyntax) *Model {
	m := &Model{
		classes: make(map[string]*classInfo),
		parents: make(map[syntax.Node]syntax.Node),
		refs:    make(map[*syntax.IdentifierNameSyntax]*decl),
	}

	syntax.Inspect(root, func(c syntax.Cursor) bool {
		n := c.Node()
		if p := c.ParentNode(); p != nil {
			m.parents[n] = p
		}

		switch n := n.(type) {
		case *syntax.UsingDirectiveSyntax:
			if n.Static == nil && syntax.TrimmedText(n.Name) == host.LinqNamespace {
				m.linq = true
			}

		case *syntax.NamespaceDeclarationSyntax:
			if m.namespace == "" {
				m.namespace = syntax.TrimmedText(n.Name)
			}

		case *syntax.ClassDeclarationSyntax:
			m.classes[n.Name.Text] = &classInfo{name: n.Name.Text, members: make(map[string]*decl)}
		}

		return true
	})

	syntax.Inspect(root, func(c syntax.Cursor) bool {
		if n, ok := c.Node().(*syntax.ClassDeclarationSyntax); ok {
			m.collectMembers(n)
		}

		return true
	})

	w := walker{m: m}
	w.walk(root, nil)

	return m
}

func (m *Model) collectMembers(n *syntax.ClassDeclarationSyntax) {
	ci := m.classes[n.Name.Text]
	static := syntax.HasModifier(n.Modifiers, "static")

	add := func(d *decl) {
		d.class = ci
		if _, dup := ci.members[d.name]; !dup {
			ci.members[d.name] = d
		}
	}

	for _, member := range n.Members {
		switch member := member.(type) {
		case *syntax.FieldDeclarationSyntax:
			typ := m.typeOfSyntax(member.Declaration.Type)
			for _, v := range member.Declaration.Variables.Items {
				add(&decl{
					name: v.Name.Text, kind: host.Field, typ: typ,
					static: static || syntax.HasModifier(member.Modifiers, "static") ||
						syntax.HasModifier(member.Modifiers, "const"),
				})
			}

		case *syntax.PropertyDeclarationSyntax:
			add(&decl{
				name: member.Name.Text, kind: host.Property, typ: m.typeOfSyntax(member.Type),
				static: static || syntax.HasModifier(member.Modifiers, "static"),
			})

		case *syntax.MethodDeclarationSyntax:
			if member.ReturnType == nil {
				continue
			}

			d := &decl{
				name: member.Name.Text, kind: host.Method, typ: m.typeOfSyntax(member.ReturnType),
				static: static || syntax.HasModifier(member.Modifiers, "static"),
			}
			if ps := member.Params.Params.Items; d.static && len(ps) > 0 && syntax.HasModifier(ps[0].Modifiers, "this") {
				d.extension = true
			}

			add(d)
		}
	}
}

// Symbol implements [host.Model].
func (m *Model) Symbol(n syntax.Node) (host.Symbol, bool) {
	switch n := n.(type) {
	case *syntax.InvocationExpressionSyntax:
		return m.Symbol(n.Expr)

	case *syntax.MemberAccessExpressionSyntax:
		r, ok := m.member(n)

		return r.sym, ok

	case *syntax.IdentifierNameSyntax:
		if ma, ok := m.parents[n].(*syntax.MemberAccessExpressionSyntax); ok && ma.Name == syntax.Expr(n) {
			return m.Symbol(ma)
		}

		if d := m.refs[n]; d != nil {
			return d.symbol(m.namespace), true
		}

		return host.Symbol{}, false

	case *syntax.GenericNameSyntax:
		if ma, ok := m.parents[n].(*syntax.MemberAccessExpressionSyntax); ok && ma.Name == syntax.Expr(n) {
			return m.Symbol(ma)
		}

		return host.Symbol{}, false

	default:
		return host.Symbol{}, false
	}
}

// TypeInfo implements [host.Model].
func (m *Model) TypeInfo(e syntax.Expr) (host.TypeInfo, bool) {
	t := m.typeOf(e)

	converted := t
	switch e.(type) {
	case *syntax.CollectionExpressionSyntax, *syntax.ImplicitObjectCreationExpressionSyntax:
		converted = m.targetType(e)
	}

	if t == nil && converted == nil {
		return host.TypeInfo{}, false
	}

	return host.TypeInfo{Type: t, ConvertedType: converted}, true
}

func (m *Model) typeOf(e syntax.Expr) *host.Type {
	switch e := e.(type) {
	case *syntax.LiteralExpressionSyntax:
		return literalType(e.Token)

	case *syntax.IdentifierNameSyntax:
		if d := m.refs[e]; d != nil && d.kind != host.Method {
			return d.typ
		}

		return nil

	case *syntax.MemberAccessExpressionSyntax:
		if r, ok := m.member(e); ok && r.sym.Kind != host.Method {
			return r.typ
		}

		return nil

	case *syntax.InvocationExpressionSyntax:
		switch callee := e.Expr.(type) {
		case *syntax.MemberAccessExpressionSyntax:
			if r, ok := m.member(callee); ok && r.sym.Kind == host.Method {
				return r.typ
			}

		case *syntax.IdentifierNameSyntax:
			if d := m.refs[callee]; d != nil && d.kind == host.Method {
				return d.typ
			}
		}

		return nil

	case *syntax.ObjectCreationExpressionSyntax:
		return m.typeOfSyntax(e.Type)

	case *syntax.ImplicitObjectCreationExpressionSyntax:
		return m.targetType(e)

	case *syntax.ArrayCreationExpressionSyntax:
		return m.typeOfSyntax(e.Type)

	case *syntax.ImplicitArrayCreationExpressionSyntax:
		if e.Initializer.Exprs.Len() == 0 {
			return nil
		}

		return arrayOf(m.typeOf(e.Initializer.Exprs.Items[0]))

	case *syntax.BinaryExpressionSyntax:
		return m.binaryType(e)

	case *syntax.IsPatternExpressionSyntax:
		return boolType

	case *syntax.PrefixUnaryExpressionSyntax:
		if e.Op.Is("!") {
			return boolType
		}

		return m.typeOf(e.Operand)

	case *syntax.PostfixUnaryExpressionSyntax:
		return m.typeOf(e.Operand)

	case *syntax.ParenthesizedExpressionSyntax:
		return m.typeOf(e.Expr)

	case *syntax.CastExpressionSyntax:
		return m.typeOfSyntax(e.Type)

	case *syntax.ConditionalExpressionSyntax:
		if t := m.typeOf(e.WhenTrue); t != nil {
			return t
		}

		return m.typeOf(e.WhenFalse)

	case *syntax.AssignmentExpressionSyntax:
		return m.typeOf(e.Left)

	case *syntax.ElementAccessExpressionSyntax:
		return elementType(m.typeOf(e.Expr))

	default:
		return nil
	}
}

func literalType(t *syntax.Token) *host.Type {
	switch t.Kind {
	case syntax.NumericLiteral:
		if strings.ContainsAny(t.Text, ".dDfFmM") && !strings.HasPrefix(t.Text, "0x") {
			return doubleType
		}

		if strings.HasSuffix(t.Text, "L") || strings.HasSuffix(t.Text, "l") {
			return longType
		}

		return intType

	case syntax.StringLiteral, syntax.InterpolatedString:
		return stringType

	case syntax.CharLiteral:
		return charType

	case syntax.Keyword:
		if t.Text == "true" || t.Text == "false" {
			return boolType
		}
	}

	return nil
}

func (m *Model) binaryType(e *syntax.BinaryExpressionSyntax) *host.Type {
	switch e.Op.Text {
	case "&&", "||", "==", "!=", "<", ">", "<=", ">=":
		return boolType

	case "as":
		return m.typeOfSyntax(e.Right)

	case "??":
		if t := m.typeOf(e.Left); t != nil {
			return t
		}

		return m.typeOf(e.Right)

	case "+":
		l, r := m.typeOf(e.Left), m.typeOf(e.Right)
		if host.IsString(l) || host.IsString(r) {
			return stringType
		}

		return l

	default:
		return m.typeOf(e.Left)
	}
}

// targetType returns the type an expression is converted to by its context.
func (m *Model) targetType(e syntax.Expr) *host.Type {
	switch p := m.parents[e].(type) {
	case *syntax.ArrowExpressionClauseSyntax:
		switch owner := m.parents[p].(type) {
		case *syntax.PropertyDeclarationSyntax:
			return m.typeOfSyntax(owner.Type)

		case *syntax.MethodDeclarationSyntax:
			return m.typeOfSyntax(owner.ReturnType)
		}

	case *syntax.EqualsValueClauseSyntax:
		switch owner := m.parents[p].(type) {
		case *syntax.PropertyDeclarationSyntax:
			return m.typeOfSyntax(owner.Type)

		case *syntax.VariableDeclaratorSyntax:
			if vd, ok := m.parents[owner].(*syntax.VariableDeclarationSyntax); ok {
				return m.typeOfSyntax(vd.Type)
			}
		}

	case *syntax.ReturnStatementSyntax:
		for n := m.parents[p]; n != nil; n = m.parents[n] {
			if md, ok := n.(*syntax.MethodDeclarationSyntax); ok {
				return m.typeOfSyntax(md.ReturnType)
			}
		}

	case *syntax.ParenthesizedExpressionSyntax:
		return m.targetType(p)

	case *syntax.BinaryExpressionSyntax:
		if p.Op.Is("??") {
			return m.typeOf(p.Left)
		}
	}

	return nil
}
