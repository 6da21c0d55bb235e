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

//go:generate go tool stringer -type Kind

// Kind tags the shape of a [Node].
type Kind uint8

const (
	InvalidKind Kind = iota

	// Declarations.
	CompilationUnit
	UsingDirective
	NamespaceDeclaration
	ClassDeclaration
	MethodDeclaration
	PropertyDeclaration
	FieldDeclaration
	AccessorList
	AccessorDeclaration
	ArrowExpressionClause
	EqualsValueClause
	AttributeList
	Attribute
	ParameterList
	Parameter
	TypeParameterList
	TypeParameter
	BaseList

	// Statements.
	Block
	LocalDeclarationStatement
	VariableDeclaration
	VariableDeclarator
	ExpressionStatement
	ReturnStatement
	ThrowStatement
	IfStatement
	ElseClause
	ForEachStatement
	WhileStatement
	EmptyStatement

	// Names and types.
	IdentifierName
	GenericName
	TypeArgumentList
	QualifiedName
	PredefinedType
	ArrayType
	ArrayRankSpecifier
	NullableType

	// Expressions.
	LiteralExpression
	ThisExpression
	MemberAccessExpression
	InvocationExpression
	ArgumentList
	Argument
	ElementAccessExpression
	BinaryExpression
	PrefixUnaryExpression
	PostfixUnaryExpression
	ParenthesizedExpression
	CastExpression
	ConditionalExpression
	AssignmentExpression
	IsPatternExpression
	ConstantPattern
	NotPattern
	SimpleLambdaExpression
	ParenthesizedLambdaExpression
	AnonymousMethodExpression
	ObjectCreationExpression
	ImplicitObjectCreationExpression
	ArrayCreationExpression
	ImplicitArrayCreationExpression
	InitializerExpression
	CollectionExpression
)
