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

import "slices"

type (
	// CompilationUnitSyntax is the root of a document.
	CompilationUnitSyntax struct {
		isNode
		Usings  []*UsingDirectiveSyntax
		Members []Member
		EOF     *Token
	}

	// UsingDirectiveSyntax is a using directive, optionally static.
	UsingDirectiveSyntax struct {
		isNode
		Using  *Token
		Static *Token // optional
		Name   Expr
		Semi   *Token
	}

	// NamespaceDeclarationSyntax is a block or file scoped namespace.
	NamespaceDeclarationSyntax struct {
		isMember
		Namespace *Token
		Name      Expr
		Semi      *Token // file scoped only
		Open      *Token // block scoped only
		Usings    []*UsingDirectiveSyntax
		Members   []Member
		Close     *Token // block scoped only
	}

	// ClassDeclarationSyntax is a class, struct, interface or record declaration.
	ClassDeclarationSyntax struct {
		isMember
		Attributes []*AttributeListSyntax
		Modifiers  []*Token
		Keyword    *Token
		Name       *Token
		TypeParams *TypeParameterListSyntax // optional
		Bases      *BaseListSyntax          // optional
		Open       *Token
		Members    []Member
		Close      *Token
	}

	// MethodDeclarationSyntax is a method or constructor declaration.
	MethodDeclarationSyntax struct {
		isMember
		Attributes []*AttributeListSyntax
		Modifiers  []*Token
		ReturnType Expr // nil for constructors
		Name       *Token
		TypeParams *TypeParameterListSyntax // optional
		Params     *ParameterListSyntax
		Body       *BlockSyntax                 // optional
		ExprBody   *ArrowExpressionClauseSyntax // optional
		Semi       *Token                       // optional
	}

	// PropertyDeclarationSyntax is a property with accessors, an expression body or both
	// an accessor list and an initializer.
	PropertyDeclarationSyntax struct {
		isMember
		Attributes  []*AttributeListSyntax
		Modifiers   []*Token
		Type        Expr
		Name        *Token
		Accessors   *AccessorListSyntax          // optional
		ExprBody    *ArrowExpressionClauseSyntax // optional
		Initializer *EqualsValueClauseSyntax     // optional
		Semi        *Token                       // optional
	}

	// FieldDeclarationSyntax is a field declaration.
	FieldDeclarationSyntax struct {
		isMember
		Attributes  []*AttributeListSyntax
		Modifiers   []*Token
		Declaration *VariableDeclarationSyntax
		Semi        *Token
	}

	// AccessorListSyntax is the braced accessor list of a property.
	AccessorListSyntax struct {
		isNode
		Open      *Token
		Accessors []*AccessorDeclarationSyntax
		Close     *Token
	}

	// AccessorDeclarationSyntax is a get, set or init accessor.
	AccessorDeclarationSyntax struct {
		isNode
		Modifiers []*Token
		Keyword   *Token
		Body      *BlockSyntax                 // optional
		ExprBody  *ArrowExpressionClauseSyntax // optional
		Semi      *Token                       // optional
	}

	// ArrowExpressionClauseSyntax is an expression body "=> expr".
	ArrowExpressionClauseSyntax struct {
		isNode
		Arrow *Token
		Expr  Expr
	}

	// EqualsValueClauseSyntax is an initializer "= value".
	EqualsValueClauseSyntax struct {
		isNode
		Equals *Token
		Value  Expr
	}

	// AttributeListSyntax is a bracketed attribute list.
	AttributeListSyntax struct {
		isNode
		Open       *Token
		Attributes List[*AttributeSyntax]
		Close      *Token
	}

	// AttributeSyntax is a single attribute.
	AttributeSyntax struct {
		isNode
		Name Expr
		Args *ArgumentListSyntax // optional
	}

	// ParameterListSyntax is a parenthesized parameter list.
	ParameterListSyntax struct {
		isNode
		Open   *Token
		Params List[*ParameterSyntax]
		Close  *Token
	}

	// ParameterSyntax is a parameter; Type is nil for implicitly typed lambda parameters.
	ParameterSyntax struct {
		isNode
		Modifiers []*Token
		Type      Expr
		Name      *Token
		Default   *EqualsValueClauseSyntax // optional
	}

	// TypeParameterListSyntax is a type parameter list "<T, U>".
	TypeParameterListSyntax struct {
		isNode
		Less    *Token
		Params  List[*TypeParameterSyntax]
		Greater *Token
	}

	// TypeParameterSyntax is a type parameter.
	TypeParameterSyntax struct {
		isNode
		Name *Token
	}

	// BaseListSyntax is a base type list ": A, B".
	BaseListSyntax struct {
		isNode
		Colon *Token
		Types List[Expr]
	}
)

func (*CompilationUnitSyntax) Kind() Kind      { return CompilationUnit }
func (*UsingDirectiveSyntax) Kind() Kind       { return UsingDirective }
func (*NamespaceDeclarationSyntax) Kind() Kind { return NamespaceDeclaration }
func (*ClassDeclarationSyntax) Kind() Kind     { return ClassDeclaration }
func (*MethodDeclarationSyntax) Kind() Kind    { return MethodDeclaration }
func (*PropertyDeclarationSyntax) Kind() Kind  { return PropertyDeclaration }
func (*FieldDeclarationSyntax) Kind() Kind     { return FieldDeclaration }
func (*AccessorListSyntax) Kind() Kind         { return AccessorList }
func (*AccessorDeclarationSyntax) Kind() Kind  { return AccessorDeclaration }
func (*ArrowExpressionClauseSyntax) Kind() Kind {
	return ArrowExpressionClause
}
func (*EqualsValueClauseSyntax) Kind() Kind { return EqualsValueClause }
func (*AttributeListSyntax) Kind() Kind     { return AttributeList }
func (*AttributeSyntax) Kind() Kind         { return Attribute }
func (*ParameterListSyntax) Kind() Kind     { return ParameterList }
func (*ParameterSyntax) Kind() Kind         { return Parameter }
func (*TypeParameterListSyntax) Kind() Kind { return TypeParameterList }
func (*TypeParameterSyntax) Kind() Kind     { return TypeParameter }
func (*BaseListSyntax) Kind() Kind          { return BaseList }

func (n *CompilationUnitSyntax) mapChildren(m *mapper) Node {
	c := *n
	visitSlice(m, &c.Usings)
	visitSlice(m, &c.Members)
	m.tok(&c.EOF)

	return m.result(n, &c)
}

func (n *UsingDirectiveSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Using)
	m.tok(&c.Static)
	visit(m, &c.Name)
	m.tok(&c.Semi)

	return m.result(n, &c)
}

func (n *NamespaceDeclarationSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Namespace)
	visit(m, &c.Name)
	m.tok(&c.Semi)
	m.tok(&c.Open)
	visitSlice(m, &c.Usings)
	visitSlice(m, &c.Members)
	m.tok(&c.Close)

	return m.result(n, &c)
}

func (n *ClassDeclarationSyntax) mapChildren(m *mapper) Node {
	c := *n
	visitSlice(m, &c.Attributes)
	m.toks(&c.Modifiers)
	m.tok(&c.Keyword)
	m.tok(&c.Name)
	visit(m, &c.TypeParams)
	visit(m, &c.Bases)
	m.tok(&c.Open)
	visitSlice(m, &c.Members)
	m.tok(&c.Close)

	return m.result(n, &c)
}

func (n *MethodDeclarationSyntax) mapChildren(m *mapper) Node {
	c := *n
	visitSlice(m, &c.Attributes)
	m.toks(&c.Modifiers)
	visit(m, &c.ReturnType)
	m.tok(&c.Name)
	visit(m, &c.TypeParams)
	visit(m, &c.Params)
	visit(m, &c.Body)
	visit(m, &c.ExprBody)
	m.tok(&c.Semi)

	return m.result(n, &c)
}

func (n *PropertyDeclarationSyntax) mapChildren(m *mapper) Node {
	c := *n
	visitSlice(m, &c.Attributes)
	m.toks(&c.Modifiers)
	visit(m, &c.Type)
	m.tok(&c.Name)
	visit(m, &c.Accessors)
	visit(m, &c.ExprBody)
	visit(m, &c.Initializer)
	m.tok(&c.Semi)

	return m.result(n, &c)
}

func (n *FieldDeclarationSyntax) mapChildren(m *mapper) Node {
	c := *n
	visitSlice(m, &c.Attributes)
	m.toks(&c.Modifiers)
	visit(m, &c.Declaration)
	m.tok(&c.Semi)

	return m.result(n, &c)
}

func (n *AccessorListSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Open)
	visitSlice(m, &c.Accessors)
	m.tok(&c.Close)

	return m.result(n, &c)
}

func (n *AccessorDeclarationSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.toks(&c.Modifiers)
	m.tok(&c.Keyword)
	visit(m, &c.Body)
	visit(m, &c.ExprBody)
	m.tok(&c.Semi)

	return m.result(n, &c)
}

func (n *ArrowExpressionClauseSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Arrow)
	visit(m, &c.Expr)

	return m.result(n, &c)
}

func (n *EqualsValueClauseSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Equals)
	visit(m, &c.Value)

	return m.result(n, &c)
}

func (n *AttributeListSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Open)
	visitList(m, &c.Attributes)
	m.tok(&c.Close)

	return m.result(n, &c)
}

func (n *AttributeSyntax) mapChildren(m *mapper) Node {
	c := *n
	visit(m, &c.Name)
	visit(m, &c.Args)

	return m.result(n, &c)
}

func (n *ParameterListSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Open)
	visitList(m, &c.Params)
	m.tok(&c.Close)

	return m.result(n, &c)
}

func (n *ParameterSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.toks(&c.Modifiers)
	visit(m, &c.Type)
	m.tok(&c.Name)
	visit(m, &c.Default)

	return m.result(n, &c)
}

func (n *TypeParameterListSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Less)
	visitList(m, &c.Params)
	m.tok(&c.Greater)

	return m.result(n, &c)
}

func (n *TypeParameterSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Name)

	return m.result(n, &c)
}

func (n *BaseListSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Colon)
	visitList(m, &c.Types)

	return m.result(n, &c)
}

// HasModifier reports whether the modifier list contains the given keyword.
func HasModifier(modifiers []*Token, text string) bool {
	return slices.ContainsFunc(modifiers, func(t *Token) bool { return t.Text == text })
}
