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

// Names and types.
type (
	// IdentifierNameSyntax is a simple name.
	IdentifierNameSyntax struct {
		isExpr
		Name *Token
	}

	// GenericNameSyntax is a name with type arguments.
	GenericNameSyntax struct {
		isExpr
		Name     *Token
		TypeArgs *TypeArgumentListSyntax
	}

	// TypeArgumentListSyntax is a type argument list "<A, B>".
	TypeArgumentListSyntax struct {
		isNode
		Less    *Token
		Args    List[Expr]
		Greater *Token
	}

	// QualifiedNameSyntax is a dotted name in a type or namespace context.
	QualifiedNameSyntax struct {
		isExpr
		Left  Expr
		Dot   *Token
		Right Expr
	}

	// PredefinedTypeSyntax is a keyword type like int or string.
	PredefinedTypeSyntax struct {
		isExpr
		Keyword *Token
	}

	// ArrayTypeSyntax is an element type followed by rank specifiers.
	ArrayTypeSyntax struct {
		isExpr
		Elem  Expr
		Ranks []*ArrayRankSpecifierSyntax
	}

	// ArrayRankSpecifierSyntax is "[]", "[,]" or "[n]".
	ArrayRankSpecifierSyntax struct {
		isNode
		Open  *Token
		Sizes List[Expr]
		Close *Token
	}

	// NullableTypeSyntax is "T?".
	NullableTypeSyntax struct {
		isExpr
		Elem     Expr
		Question *Token
	}
)

// Expressions.
type (
	// LiteralExpressionSyntax is a literal, including true, false, null and default.
	LiteralExpressionSyntax struct {
		isExpr
		Token *Token
	}

	// ThisExpressionSyntax is this or base.
	ThisExpressionSyntax struct {
		isExpr
		Token *Token
	}

	// MemberAccessExpressionSyntax is "expr.Name" or "expr?.Name".
	MemberAccessExpressionSyntax struct {
		isExpr
		Expr Expr
		Dot  *Token
		Name Expr // *IdentifierNameSyntax or *GenericNameSyntax
	}

	// InvocationExpressionSyntax is a call.
	InvocationExpressionSyntax struct {
		isExpr
		Expr Expr
		Args *ArgumentListSyntax
	}

	// ArgumentListSyntax is a parenthesized argument list.
	ArgumentListSyntax struct {
		isNode
		Open  *Token
		Args  List[*ArgumentSyntax]
		Close *Token
	}

	// ArgumentSyntax is an argument with an optional ref, out or in keyword.
	ArgumentSyntax struct {
		isNode
		RefKind *Token // optional
		Expr    Expr
	}

	// ElementAccessExpressionSyntax is an indexer access "expr[args]".
	ElementAccessExpressionSyntax struct {
		isExpr
		Expr  Expr
		Open  *Token
		Args  List[*ArgumentSyntax]
		Close *Token
	}

	// BinaryExpressionSyntax is a binary operator application.
	BinaryExpressionSyntax struct {
		isExpr
		Left  Expr
		Op    *Token
		Right Expr
	}

	// PrefixUnaryExpressionSyntax is a prefix operator application.
	PrefixUnaryExpressionSyntax struct {
		isExpr
		Op      *Token
		Operand Expr
	}

	// PostfixUnaryExpressionSyntax is a postfix operator application.
	PostfixUnaryExpressionSyntax struct {
		isExpr
		Operand Expr
		Op      *Token
	}

	// ParenthesizedExpressionSyntax is "(expr)".
	ParenthesizedExpressionSyntax struct {
		isExpr
		Open  *Token
		Expr  Expr
		Close *Token
	}

	// CastExpressionSyntax is "(T)expr".
	CastExpressionSyntax struct {
		isExpr
		Open  *Token
		Type  Expr
		Close *Token
		Expr  Expr
	}

	// ConditionalExpressionSyntax is "cond ? a : b".
	ConditionalExpressionSyntax struct {
		isExpr
		Cond      Expr
		Question  *Token
		WhenTrue  Expr
		Colon     *Token
		WhenFalse Expr
	}

	// AssignmentExpressionSyntax is a simple or compound assignment.
	AssignmentExpressionSyntax struct {
		isExpr
		Left  Expr
		Op    *Token
		Right Expr
	}

	// IsPatternExpressionSyntax is "expr is pattern".
	IsPatternExpressionSyntax struct {
		isExpr
		Expr    Expr
		Is      *Token
		Pattern Pattern
	}

	// ConstantPatternSyntax matches a constant, like null.
	ConstantPatternSyntax struct {
		isPattern
		Expr Expr
	}

	// NotPatternSyntax negates a pattern.
	NotPatternSyntax struct {
		isPattern
		Not     *Token
		Pattern Pattern
	}

	// SimpleLambdaExpressionSyntax is "p => body".
	SimpleLambdaExpressionSyntax struct {
		isExpr
		Param *ParameterSyntax
		Arrow *Token
		Body  Node // Expr or *BlockSyntax
	}

	// ParenthesizedLambdaExpressionSyntax is "(p, q) => body".
	ParenthesizedLambdaExpressionSyntax struct {
		isExpr
		Params *ParameterListSyntax
		Arrow  *Token
		Body   Node // Expr or *BlockSyntax
	}

	// AnonymousMethodExpressionSyntax is "delegate (p) { ... }".
	AnonymousMethodExpressionSyntax struct {
		isExpr
		Delegate *Token
		Params   *ParameterListSyntax // optional
		Body     *BlockSyntax
	}

	// ObjectCreationExpressionSyntax is "new T(args) { ... }".
	ObjectCreationExpressionSyntax struct {
		isExpr
		New         *Token
		Type        Expr
		Args        *ArgumentListSyntax          // optional
		Initializer *InitializerExpressionSyntax // optional
	}

	// ImplicitObjectCreationExpressionSyntax is a target-typed "new(args)".
	ImplicitObjectCreationExpressionSyntax struct {
		isExpr
		New         *Token
		Args        *ArgumentListSyntax
		Initializer *InitializerExpressionSyntax // optional
	}

	// ArrayCreationExpressionSyntax is "new T[n]" or "new T[] { ... }".
	ArrayCreationExpressionSyntax struct {
		isExpr
		New         *Token
		Type        *ArrayTypeSyntax
		Initializer *InitializerExpressionSyntax // optional
	}

	// ImplicitArrayCreationExpressionSyntax is "new[] { ... }".
	ImplicitArrayCreationExpressionSyntax struct {
		isExpr
		New         *Token
		Open        *Token
		Commas      []*Token
		Close       *Token
		Initializer *InitializerExpressionSyntax
	}

	// InitializerExpressionSyntax is a braced initializer list.
	InitializerExpressionSyntax struct {
		isExpr
		Open  *Token
		Exprs List[Expr]
		Close *Token
	}

	// CollectionExpressionSyntax is "[a, b]".
	CollectionExpressionSyntax struct {
		isExpr
		Open     *Token
		Elements List[Expr]
		Close    *Token
	}
)

func (*IdentifierNameSyntax) Kind() Kind          { return IdentifierName }
func (*GenericNameSyntax) Kind() Kind             { return GenericName }
func (*TypeArgumentListSyntax) Kind() Kind        { return TypeArgumentList }
func (*QualifiedNameSyntax) Kind() Kind           { return QualifiedName }
func (*PredefinedTypeSyntax) Kind() Kind          { return PredefinedType }
func (*ArrayTypeSyntax) Kind() Kind               { return ArrayType }
func (*ArrayRankSpecifierSyntax) Kind() Kind      { return ArrayRankSpecifier }
func (*NullableTypeSyntax) Kind() Kind            { return NullableType }
func (*LiteralExpressionSyntax) Kind() Kind       { return LiteralExpression }
func (*ThisExpressionSyntax) Kind() Kind          { return ThisExpression }
func (*MemberAccessExpressionSyntax) Kind() Kind  { return MemberAccessExpression }
func (*InvocationExpressionSyntax) Kind() Kind    { return InvocationExpression }
func (*ArgumentListSyntax) Kind() Kind            { return ArgumentList }
func (*ArgumentSyntax) Kind() Kind                { return Argument }
func (*ElementAccessExpressionSyntax) Kind() Kind { return ElementAccessExpression }
func (*BinaryExpressionSyntax) Kind() Kind        { return BinaryExpression }
func (*PrefixUnaryExpressionSyntax) Kind() Kind   { return PrefixUnaryExpression }
func (*PostfixUnaryExpressionSyntax) Kind() Kind  { return PostfixUnaryExpression }
func (*ParenthesizedExpressionSyntax) Kind() Kind { return ParenthesizedExpression }
func (*CastExpressionSyntax) Kind() Kind          { return CastExpression }
func (*ConditionalExpressionSyntax) Kind() Kind   { return ConditionalExpression }
func (*AssignmentExpressionSyntax) Kind() Kind    { return AssignmentExpression }
func (*IsPatternExpressionSyntax) Kind() Kind     { return IsPatternExpression }
func (*ConstantPatternSyntax) Kind() Kind         { return ConstantPattern }
func (*NotPatternSyntax) Kind() Kind              { return NotPattern }
func (*SimpleLambdaExpressionSyntax) Kind() Kind  { return SimpleLambdaExpression }
func (*ParenthesizedLambdaExpressionSyntax) Kind() Kind {
	return ParenthesizedLambdaExpression
}
func (*AnonymousMethodExpressionSyntax) Kind() Kind { return AnonymousMethodExpression }
func (*ObjectCreationExpressionSyntax) Kind() Kind  { return ObjectCreationExpression }
func (*ImplicitObjectCreationExpressionSyntax) Kind() Kind {
	return ImplicitObjectCreationExpression
}
func (*ArrayCreationExpressionSyntax) Kind() Kind { return ArrayCreationExpression }
func (*ImplicitArrayCreationExpressionSyntax) Kind() Kind {
	return ImplicitArrayCreationExpression
}
func (*InitializerExpressionSyntax) Kind() Kind { return InitializerExpression }
func (*CollectionExpressionSyntax) Kind() Kind  { return CollectionExpression }

func (n *IdentifierNameSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Name)

	return m.result(n, &c)
}

func (n *GenericNameSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Name)
	visit(m, &c.TypeArgs)

	return m.result(n, &c)
}

func (n *TypeArgumentListSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Less)
	visitList(m, &c.Args)
	m.tok(&c.Greater)

	return m.result(n, &c)
}

func (n *QualifiedNameSyntax) mapChildren(m *mapper) Node {
	c := *n
	visit(m, &c.Left)
	m.tok(&c.Dot)
	visit(m, &c.Right)

	return m.result(n, &c)
}

func (n *PredefinedTypeSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Keyword)

	return m.result(n, &c)
}

func (n *ArrayTypeSyntax) mapChildren(m *mapper) Node {
	c := *n
	visit(m, &c.Elem)
	visitSlice(m, &c.Ranks)

	return m.result(n, &c)
}

func (n *ArrayRankSpecifierSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Open)
	visitList(m, &c.Sizes)
	m.tok(&c.Close)

	return m.result(n, &c)
}

func (n *NullableTypeSyntax) mapChildren(m *mapper) Node {
	c := *n
	visit(m, &c.Elem)
	m.tok(&c.Question)

	return m.result(n, &c)
}

func (n *LiteralExpressionSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Token)

	return m.result(n, &c)
}

func (n *ThisExpressionSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Token)

	return m.result(n, &c)
}

func (n *MemberAccessExpressionSyntax) mapChildren(m *mapper) Node {
	c := *n
	visit(m, &c.Expr)
	m.tok(&c.Dot)
	visit(m, &c.Name)

	return m.result(n, &c)
}

func (n *InvocationExpressionSyntax) mapChildren(m *mapper) Node {
	c := *n
	visit(m, &c.Expr)
	visit(m, &c.Args)

	return m.result(n, &c)
}

func (n *ArgumentListSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Open)
	visitList(m, &c.Args)
	m.tok(&c.Close)

	return m.result(n, &c)
}

func (n *ArgumentSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.RefKind)
	visit(m, &c.Expr)

	return m.result(n, &c)
}

func (n *ElementAccessExpressionSyntax) mapChildren(m *mapper) Node {
	c := *n
	visit(m, &c.Expr)
	m.tok(&c.Open)
	visitList(m, &c.Args)
	m.tok(&c.Close)

	return m.result(n, &c)
}

func (n *BinaryExpressionSyntax) mapChildren(m *mapper) Node {
	c := *n
	visit(m, &c.Left)
	m.tok(&c.Op)
	visit(m, &c.Right)

	return m.result(n, &c)
}

func (n *PrefixUnaryExpressionSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Op)
	visit(m, &c.Operand)

	return m.result(n, &c)
}

func (n *PostfixUnaryExpressionSyntax) mapChildren(m *mapper) Node {
	c := *n
	visit(m, &c.Operand)
	m.tok(&c.Op)

	return m.result(n, &c)
}

func (n *ParenthesizedExpressionSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Open)
	visit(m, &c.Expr)
	m.tok(&c.Close)

	return m.result(n, &c)
}

func (n *CastExpressionSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Open)
	visit(m, &c.Type)
	m.tok(&c.Close)
	visit(m, &c.Expr)

	return m.result(n, &c)
}

func (n *ConditionalExpressionSyntax) mapChildren(m *mapper) Node {
	c := *n
	visit(m, &c.Cond)
	m.tok(&c.Question)
	visit(m, &c.WhenTrue)
	m.tok(&c.Colon)
	visit(m, &c.WhenFalse)

	return m.result(n, &c)
}

func (n *AssignmentExpressionSyntax) mapChildren(m *mapper) Node {
	c := *n
	visit(m, &c.Left)
	m.tok(&c.Op)
	visit(m, &c.Right)

	return m.result(n, &c)
}

func (n *IsPatternExpressionSyntax) mapChildren(m *mapper) Node {
	c := *n
	visit(m, &c.Expr)
	m.tok(&c.Is)
	visit(m, &c.Pattern)

	return m.result(n, &c)
}

func (n *ConstantPatternSyntax) mapChildren(m *mapper) Node {
	c := *n
	visit(m, &c.Expr)

	return m.result(n, &c)
}

func (n *NotPatternSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Not)
	visit(m, &c.Pattern)

	return m.result(n, &c)
}

func (n *SimpleLambdaExpressionSyntax) mapChildren(m *mapper) Node {
	c := *n
	visit(m, &c.Param)
	m.tok(&c.Arrow)
	visit(m, &c.Body)

	return m.result(n, &c)
}

func (n *ParenthesizedLambdaExpressionSyntax) mapChildren(m *mapper) Node {
	c := *n
	visit(m, &c.Params)
	m.tok(&c.Arrow)
	visit(m, &c.Body)

	return m.result(n, &c)
}

func (n *AnonymousMethodExpressionSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Delegate)
	visit(m, &c.Params)
	visit(m, &c.Body)

	return m.result(n, &c)
}

func (n *ObjectCreationExpressionSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.New)
	visit(m, &c.Type)
	visit(m, &c.Args)
	visit(m, &c.Initializer)

	return m.result(n, &c)
}

func (n *ImplicitObjectCreationExpressionSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.New)
	visit(m, &c.Args)
	visit(m, &c.Initializer)

	return m.result(n, &c)
}

func (n *ArrayCreationExpressionSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.New)
	visit(m, &c.Type)
	visit(m, &c.Initializer)

	return m.result(n, &c)
}

func (n *ImplicitArrayCreationExpressionSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.New)
	m.tok(&c.Open)
	m.toks(&c.Commas)
	m.tok(&c.Close)
	visit(m, &c.Initializer)

	return m.result(n, &c)
}

func (n *InitializerExpressionSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Open)
	visitList(m, &c.Exprs)
	m.tok(&c.Close)

	return m.result(n, &c)
}

func (n *CollectionExpressionSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Open)
	visitList(m, &c.Elements)
	m.tok(&c.Close)

	return m.result(n, &c)
}
