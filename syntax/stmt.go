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

type (
	// BlockSyntax is a braced statement list.
	BlockSyntax struct {
		isStmt
		Open  *Token
		Stmts []Stmt
		Close *Token
	}

	// LocalDeclarationStatementSyntax declares local variables.
	LocalDeclarationStatementSyntax struct {
		isStmt
		Modifiers   []*Token // const
		Declaration *VariableDeclarationSyntax
		Semi        *Token
	}

	// VariableDeclarationSyntax is a type followed by declarators.
	VariableDeclarationSyntax struct {
		isNode
		Type      Expr
		Variables List[*VariableDeclaratorSyntax]
	}

	// VariableDeclaratorSyntax is a declared name with an optional initializer.
	VariableDeclaratorSyntax struct {
		isNode
		Name        *Token
		Initializer *EqualsValueClauseSyntax // optional
	}

	// ExpressionStatementSyntax is an expression followed by a semicolon.
	ExpressionStatementSyntax struct {
		isStmt
		Expr Expr
		Semi *Token
	}

	// ReturnStatementSyntax is a return statement.
	ReturnStatementSyntax struct {
		isStmt
		Return *Token
		Expr   Expr // optional
		Semi   *Token
	}

	// ThrowStatementSyntax is a throw statement.
	ThrowStatementSyntax struct {
		isStmt
		Throw *Token
		Expr  Expr // optional
		Semi  *Token
	}

	// IfStatementSyntax is an if statement with an optional else clause.
	IfStatementSyntax struct {
		isStmt
		If    *Token
		Open  *Token
		Cond  Expr
		Close *Token
		Then  Stmt
		Else  *ElseClauseSyntax // optional
	}

	// ElseClauseSyntax is the else branch of an if statement.
	ElseClauseSyntax struct {
		isNode
		Else *Token
		Stmt Stmt
	}

	// ForEachStatementSyntax is a foreach loop.
	ForEachStatementSyntax struct {
		isStmt
		ForEach *Token
		Open    *Token
		Type    Expr
		Name    *Token
		In      *Token
		Expr    Expr
		Close   *Token
		Body    Stmt
	}

	// WhileStatementSyntax is a while loop.
	WhileStatementSyntax struct {
		isStmt
		While *Token
		Open  *Token
		Cond  Expr
		Close *Token
		Body  Stmt
	}

	// EmptyStatementSyntax is a lone semicolon.
	EmptyStatementSyntax struct {
		isStmt
		Semi *Token
	}
)

func (*BlockSyntax) Kind() Kind                     { return Block }
func (*LocalDeclarationStatementSyntax) Kind() Kind { return LocalDeclarationStatement }
func (*VariableDeclarationSyntax) Kind() Kind       { return VariableDeclaration }
func (*VariableDeclaratorSyntax) Kind() Kind        { return VariableDeclarator }
func (*ExpressionStatementSyntax) Kind() Kind       { return ExpressionStatement }
func (*ReturnStatementSyntax) Kind() Kind           { return ReturnStatement }
func (*ThrowStatementSyntax) Kind() Kind            { return ThrowStatement }
func (*IfStatementSyntax) Kind() Kind               { return IfStatement }
func (*ElseClauseSyntax) Kind() Kind                { return ElseClause }
func (*ForEachStatementSyntax) Kind() Kind          { return ForEachStatement }
func (*WhileStatementSyntax) Kind() Kind            { return WhileStatement }
func (*EmptyStatementSyntax) Kind() Kind            { return EmptyStatement }

func (n *BlockSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Open)
	visitSlice(m, &c.Stmts)
	m.tok(&c.Close)

	return m.result(n, &c)
}

func (n *LocalDeclarationStatementSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.toks(&c.Modifiers)
	visit(m, &c.Declaration)
	m.tok(&c.Semi)

	return m.result(n, &c)
}

func (n *VariableDeclarationSyntax) mapChildren(m *mapper) Node {
	c := *n
	visit(m, &c.Type)
	visitList(m, &c.Variables)

	return m.result(n, &c)
}

func (n *VariableDeclaratorSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Name)
	visit(m, &c.Initializer)

	return m.result(n, &c)
}

func (n *ExpressionStatementSyntax) mapChildren(m *mapper) Node {
	c := *n
	visit(m, &c.Expr)
	m.tok(&c.Semi)

	return m.result(n, &c)
}

func (n *ReturnStatementSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Return)
	visit(m, &c.Expr)
	m.tok(&c.Semi)

	return m.result(n, &c)
}

func (n *ThrowStatementSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Throw)
	visit(m, &c.Expr)
	m.tok(&c.Semi)

	return m.result(n, &c)
}

func (n *IfStatementSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.If)
	m.tok(&c.Open)
	visit(m, &c.Cond)
	m.tok(&c.Close)
	visit(m, &c.Then)
	visit(m, &c.Else)

	return m.result(n, &c)
}

func (n *ElseClauseSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Else)
	visit(m, &c.Stmt)

	return m.result(n, &c)
}

func (n *ForEachStatementSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.ForEach)
	m.tok(&c.Open)
	visit(m, &c.Type)
	m.tok(&c.Name)
	m.tok(&c.In)
	visit(m, &c.Expr)
	m.tok(&c.Close)
	visit(m, &c.Body)

	return m.result(n, &c)
}

func (n *WhileStatementSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.While)
	m.tok(&c.Open)
	visit(m, &c.Cond)
	m.tok(&c.Close)
	visit(m, &c.Body)

	return m.result(n, &c)
}

func (n *EmptyStatementSyntax) mapChildren(m *mapper) Node {
	c := *n
	m.tok(&c.Semi)

	return m.result(n, &c)
}
