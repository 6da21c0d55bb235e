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
	"errors"
	"fmt"
	"slices"

	"fillmore-labs.com/linqguard/syntax"
)

var (
	// ErrSyntax is returned for source outside of the supported language subset.
	ErrSyntax = errors.New("syntax error")

	// ErrUnexpectedCharacter is returned for characters that start no token.
	ErrUnexpectedCharacter = errors.New("unexpected character")

	// ErrUnterminatedLiteral is returned for string and character literals missing their closing quote.
	ErrUnterminatedLiteral = errors.New("unterminated literal")
)

// bailout unwinds the parser on the first error.
type bailout struct{ err error }

type parser struct {
	toks  []*syntax.Token
	pos   int
	types []string // enclosing type names, innermost last
}

// parse parses a compilation unit.
func parse(src string) (*syntax.CompilationUnitSyntax, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}

	p := parser{toks: toks}

	return p.parseUnit()
}

func (p *parser) parseUnit() (cu *syntax.CompilationUnitSyntax, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}

			cu, err = nil, b.err
		}
	}()

	return p.compilationUnit(), nil
}

// speculate runs f and rewinds the parser when f fails.
func speculate[T any](p *parser, f func() T) (result T, ok bool) {
	save := p.pos

	defer func() {
		if r := recover(); r != nil {
			if _, isBailout := r.(bailout); !isBailout {
				panic(r)
			}

			var zero T

			p.pos, result, ok = save, zero, false
		}
	}()

	return f(), true
}

func (p *parser) fail(what string) {
	t := p.cur()
	panic(bailout{fmt.Errorf("offset %d near %q: %w: expected %s", t.Pos, t.Text, ErrSyntax, what)})
}

func (p *parser) cur() *syntax.Token { return p.peek(0) }

func (p *parser) peek(n int) *syntax.Token {
	if i := p.pos + n; i < len(p.toks) {
		return p.toks[i]
	}

	return p.toks[len(p.toks)-1]
}

func (p *parser) atEOF() bool { return p.cur().Kind == syntax.EndOfFile }

// at reports whether the current token is the keyword, identifier or punctuation text.
func (p *parser) at(text string) bool { return isText(p.cur(), text) }

func isText(t *syntax.Token, text string) bool {
	switch t.Kind {
	case syntax.Identifier, syntax.Keyword, syntax.Punctuation:
		return t.Text == text

	default:
		return false
	}
}

func (p *parser) next() *syntax.Token {
	t := p.cur()
	if t.Kind != syntax.EndOfFile {
		p.pos++
	}

	return t
}

func (p *parser) expect(text string) *syntax.Token {
	if !p.at(text) {
		p.fail(fmt.Sprintf("%q", text))
	}

	return p.next()
}

func (p *parser) ident() *syntax.Token {
	if p.cur().Kind != syntax.Identifier {
		p.fail("identifier")
	}

	return p.next()
}

func sepList[T syntax.Node](p *parser, closing string, item func() T) syntax.List[T] {
	var l syntax.List[T]

	if p.at(closing) {
		return l
	}

	for {
		l.Items = append(l.Items, item())
		if !p.at(",") {
			return l
		}

		l.Separators = append(l.Separators, p.next())
		if p.at(closing) {
			return l
		}
	}
}

// Declarations.

func (p *parser) compilationUnit() *syntax.CompilationUnitSyntax {
	cu := &syntax.CompilationUnitSyntax{Usings: p.usings()}

	for !p.atEOF() {
		cu.Members = append(cu.Members, p.member())
	}

	cu.EOF = p.next()

	return cu
}

func (p *parser) usings() []*syntax.UsingDirectiveSyntax {
	var usings []*syntax.UsingDirectiveSyntax

	for p.at("using") {
		u := &syntax.UsingDirectiveSyntax{Using: p.next()}
		if p.at("static") {
			u.Static = p.next()
		}

		u.Name = p.name()
		u.Semi = p.expect(";")
		usings = append(usings, u)
	}

	return usings
}

func (p *parser) name() syntax.Expr {
	var n syntax.Expr = p.simpleName(true)

	for p.at(".") {
		n = &syntax.QualifiedNameSyntax{Left: n, Dot: p.next(), Right: p.simpleName(true)}
	}

	return n
}

func (p *parser) member() syntax.Member {
	if p.at("namespace") {
		return p.namespace()
	}

	attrs := p.attributeLists()
	mods := p.modifiers()

	if p.atTypeKeyword() {
		return p.typeDeclaration(attrs, mods)
	}

	if len(p.types) == 0 {
		p.fail("type declaration")
	}

	return p.typeMember(attrs, mods)
}

func (p *parser) namespace() *syntax.NamespaceDeclarationSyntax {
	ns := &syntax.NamespaceDeclarationSyntax{Namespace: p.next(), Name: p.name()}

	if p.at(";") {
		ns.Semi = p.next()
		ns.Usings = p.usings()

		for !p.atEOF() {
			ns.Members = append(ns.Members, p.member())
		}

		return ns
	}

	ns.Open = p.expect("{")
	ns.Usings = p.usings()

	for !p.at("}") {
		ns.Members = append(ns.Members, p.member())
	}

	ns.Close = p.next()

	return ns
}

func (p *parser) atTypeKeyword() bool {
	switch {
	case p.at("class"), p.at("struct"), p.at("interface"):
		return true

	case p.at("record"):
		return p.peek(1).Kind == syntax.Identifier

	default:
		return false
	}
}

func (p *parser) typeDeclaration(attrs []*syntax.AttributeListSyntax, mods []*syntax.Token) *syntax.ClassDeclarationSyntax {
	c := &syntax.ClassDeclarationSyntax{Attributes: attrs, Modifiers: mods, Keyword: p.next(), Name: p.ident()}

	if p.at("<") {
		c.TypeParams = &syntax.TypeParameterListSyntax{Less: p.next()}
		c.TypeParams.Params = sepList(p, ">", func() *syntax.TypeParameterSyntax {
			return &syntax.TypeParameterSyntax{Name: p.ident()}
		})
		c.TypeParams.Greater = p.expect(">")
	}

	if p.at(":") {
		c.Bases = &syntax.BaseListSyntax{Colon: p.next()}
		c.Bases.Types = sepList(p, "{", p.typ)
	}

	c.Open = p.expect("{")

	p.types = append(p.types, c.Name.Text)
	for !p.at("}") {
		if p.atEOF() {
			p.fail(`"}"`)
		}

		c.Members = append(c.Members, p.member())
	}

	p.types = p.types[:len(p.types)-1]

	c.Close = p.next()

	return c
}

var modifierKeywords = map[string]bool{
	"public": true, "private": true, "protected": true, "internal": true, "static": true,
	"readonly": true, "const": true, "abstract": true, "virtual": true, "override": true,
	"sealed": true, "extern": true, "new": true, "unsafe": true, "volatile": true,
}

var contextualModifiers = map[string]bool{"partial": true, "async": true, "required": true, "file": true}

func (p *parser) modifiers() []*syntax.Token {
	var mods []*syntax.Token

	for {
		t := p.cur()

		switch {
		case t.Kind == syntax.Keyword && modifierKeywords[t.Text]:
		case t.Kind == syntax.Identifier && contextualModifiers[t.Text] &&
			(p.peek(1).Kind == syntax.Identifier || p.peek(1).Kind == syntax.Keyword):
		default:
			return mods
		}

		mods = append(mods, p.next())
	}
}

func (p *parser) attributeLists() []*syntax.AttributeListSyntax {
	var lists []*syntax.AttributeListSyntax

	for p.at("[") {
		l := &syntax.AttributeListSyntax{Open: p.next()}
		l.Attributes = sepList(p, "]", func() *syntax.AttributeSyntax {
			a := &syntax.AttributeSyntax{Name: p.name()}
			if p.at("(") {
				a.Args = p.argumentList()
			}

			return a
		})
		l.Close = p.expect("]")
		lists = append(lists, l)
	}

	return lists
}

func (p *parser) typeMember(attrs []*syntax.AttributeListSyntax, mods []*syntax.Token) syntax.Member {
	if t := p.cur(); t.Kind == syntax.Identifier && t.Text == p.types[len(p.types)-1] && p.peek(1).Is("(") {
		m := &syntax.MethodDeclarationSyntax{Attributes: attrs, Modifiers: mods, Name: p.next()}
		p.methodRest(m)

		return m
	}

	typ := p.typ()
	name := p.ident()

	switch {
	case p.at("(") || p.at("<"):
		m := &syntax.MethodDeclarationSyntax{Attributes: attrs, Modifiers: mods, ReturnType: typ, Name: name}
		p.methodRest(m)

		return m

	case p.at("{"):
		prop := &syntax.PropertyDeclarationSyntax{
			Attributes: attrs, Modifiers: mods, Type: typ, Name: name, Accessors: p.accessorList(),
		}
		if p.at("=") {
			prop.Initializer = p.equalsValue()
			prop.Semi = p.expect(";")
		}

		return prop

	case p.at("=>"):
		return &syntax.PropertyDeclarationSyntax{
			Attributes: attrs, Modifiers: mods, Type: typ, Name: name,
			ExprBody: p.arrowClause(), Semi: p.expect(";"),
		}

	default:
		decl := &syntax.VariableDeclarationSyntax{Type: typ}
		decl.Variables = p.declarators(name)

		return &syntax.FieldDeclarationSyntax{Attributes: attrs, Modifiers: mods, Declaration: decl, Semi: p.expect(";")}
	}
}

func (p *parser) methodRest(m *syntax.MethodDeclarationSyntax) {
	if p.at("<") {
		m.TypeParams = &syntax.TypeParameterListSyntax{Less: p.next()}
		m.TypeParams.Params = sepList(p, ">", func() *syntax.TypeParameterSyntax {
			return &syntax.TypeParameterSyntax{Name: p.ident()}
		})
		m.TypeParams.Greater = p.expect(">")
	}

	m.Params = p.parameterList()

	switch {
	case p.at("{"):
		m.Body = p.block()

	case p.at("=>"):
		m.ExprBody = p.arrowClause()
		m.Semi = p.expect(";")

	default:
		m.Semi = p.expect(";")
	}
}

func (p *parser) arrowClause() *syntax.ArrowExpressionClauseSyntax {
	return &syntax.ArrowExpressionClauseSyntax{Arrow: p.expect("=>"), Expr: p.expression()}
}

func (p *parser) equalsValue() *syntax.EqualsValueClauseSyntax {
	e := &syntax.EqualsValueClauseSyntax{Equals: p.expect("=")}
	if p.at("{") {
		e.Value = p.initializer()
	} else {
		e.Value = p.expression()
	}

	return e
}

func (p *parser) accessorList() *syntax.AccessorListSyntax {
	l := &syntax.AccessorListSyntax{Open: p.expect("{")}

	for !p.at("}") {
		a := &syntax.AccessorDeclarationSyntax{Modifiers: p.modifiers()}
		if !p.at("get") && !p.at("set") && !p.at("init") {
			p.fail("accessor")
		}

		a.Keyword = p.next()

		switch {
		case p.at("{"):
			a.Body = p.block()

		case p.at("=>"):
			a.ExprBody = p.arrowClause()
			a.Semi = p.expect(";")

		default:
			a.Semi = p.expect(";")
		}

		l.Accessors = append(l.Accessors, a)
	}

	l.Close = p.next()

	return l
}

var parameterModifiers = map[string]bool{"this": true, "ref": true, "out": true, "in": true, "params": true}

func (p *parser) parameterList() *syntax.ParameterListSyntax {
	l := &syntax.ParameterListSyntax{Open: p.expect("(")}
	l.Params = sepList(p, ")", p.parameter)
	l.Close = p.expect(")")

	return l
}

func (p *parser) parameter() *syntax.ParameterSyntax {
	param := &syntax.ParameterSyntax{}
	for p.cur().Kind == syntax.Keyword && parameterModifiers[p.cur().Text] {
		param.Modifiers = append(param.Modifiers, p.next())
	}

	param.Type = p.typ()
	param.Name = p.ident()

	if p.at("=") {
		param.Default = p.equalsValue()
	}

	return param
}

func (p *parser) declarators(first *syntax.Token) syntax.List[*syntax.VariableDeclaratorSyntax] {
	var l syntax.List[*syntax.VariableDeclaratorSyntax]

	name := first
	for {
		d := &syntax.VariableDeclaratorSyntax{Name: name}
		if p.at("=") {
			d.Initializer = p.equalsValue()
		}

		l.Items = append(l.Items, d)
		if !p.at(",") {
			return l
		}

		l.Separators = append(l.Separators, p.next())
		name = p.ident()
	}
}

// Types.

var predefinedTypes = map[string]bool{
	"bool": true, "byte": true, "char": true, "decimal": true, "double": true, "float": true,
	"int": true, "long": true, "object": true, "sbyte": true, "short": true, "string": true,
	"uint": true, "ulong": true, "ushort": true, "void": true,
}

func (p *parser) typ() syntax.Expr {
	t := p.nonArrayType()

	if p.at("?") {
		t = &syntax.NullableTypeSyntax{Elem: t, Question: p.next()}
	}

	var ranks []*syntax.ArrayRankSpecifierSyntax
	for p.at("[") && (p.peek(1).Is("]") || p.peek(1).Is(",")) {
		ranks = append(ranks, p.rankSpecifier(false))
	}

	if len(ranks) > 0 {
		t = &syntax.ArrayTypeSyntax{Elem: t, Ranks: ranks}
	}

	return t
}

func (p *parser) nonArrayType() syntax.Expr {
	if t := p.cur(); t.Kind == syntax.Keyword && predefinedTypes[t.Text] {
		return &syntax.PredefinedTypeSyntax{Keyword: p.next()}
	}

	return p.name()
}

func (p *parser) rankSpecifier(sizes bool) *syntax.ArrayRankSpecifierSyntax {
	r := &syntax.ArrayRankSpecifierSyntax{Open: p.expect("[")}

	if sizes && !p.at("]") && !p.at(",") {
		r.Sizes = sepList(p, "]", p.expression)
	} else {
		for p.at(",") {
			r.Sizes.Separators = append(r.Sizes.Separators, p.next())
		}
	}

	r.Close = p.expect("]")

	return r
}

func (p *parser) typeArgs() *syntax.TypeArgumentListSyntax {
	l := &syntax.TypeArgumentListSyntax{Less: p.expect("<")}
	l.Args = sepList(p, ">", p.typ)
	l.Greater = p.expect(">")

	return l
}

// tokens that may follow a generic name in an expression.
var genericFollow = []string{
	"(", ")", "]", "}", ":", ";", ",", ".", "?", "?.", "==", "!=", "|", "^", "&&", "||", "&", "[",
}

func (p *parser) simpleName(inType bool) syntax.Expr {
	name := p.ident()

	if !p.at("<") {
		return &syntax.IdentifierNameSyntax{Name: name}
	}

	if inType {
		return &syntax.GenericNameSyntax{Name: name, TypeArgs: p.typeArgs()}
	}

	args, ok := speculate(p, func() *syntax.TypeArgumentListSyntax {
		args := p.typeArgs()
		if !p.atEOF() && !slices.ContainsFunc(genericFollow, p.at) {
			p.fail("expression after type arguments")
		}

		return args
	})
	if !ok {
		return &syntax.IdentifierNameSyntax{Name: name}
	}

	return &syntax.GenericNameSyntax{Name: name, TypeArgs: args}
}

// Statements.

func (p *parser) block() *syntax.BlockSyntax {
	b := &syntax.BlockSyntax{Open: p.expect("{")}

	for !p.at("}") {
		if p.atEOF() {
			p.fail(`"}"`)
		}

		b.Stmts = append(b.Stmts, p.statement())
	}

	b.Close = p.next()

	return b
}

func (p *parser) statement() syntax.Stmt {
	switch {
	case p.at("{"):
		return p.block()

	case p.at(";"):
		return &syntax.EmptyStatementSyntax{Semi: p.next()}

	case p.at("return"):
		s := &syntax.ReturnStatementSyntax{Return: p.next()}
		if !p.at(";") {
			s.Expr = p.expression()
		}

		s.Semi = p.expect(";")

		return s

	case p.at("throw"):
		s := &syntax.ThrowStatementSyntax{Throw: p.next()}
		if !p.at(";") {
			s.Expr = p.expression()
		}

		s.Semi = p.expect(";")

		return s

	case p.at("if"):
		s := &syntax.IfStatementSyntax{If: p.next(), Open: p.expect("("), Cond: p.expression(), Close: p.expect(")")}
		s.Then = p.statement()

		if p.at("else") {
			s.Else = &syntax.ElseClauseSyntax{Else: p.next(), Stmt: p.statement()}
		}

		return s

	case p.at("foreach"):
		s := &syntax.ForEachStatementSyntax{ForEach: p.next(), Open: p.expect("("), Type: p.typ(), Name: p.ident()}
		s.In = p.expect("in")
		s.Expr = p.expression()
		s.Close = p.expect(")")
		s.Body = p.statement()

		return s

	case p.at("while"):
		s := &syntax.WhileStatementSyntax{While: p.next(), Open: p.expect("("), Cond: p.expression(), Close: p.expect(")")}
		s.Body = p.statement()

		return s

	case p.at("const"):
		mods := []*syntax.Token{p.next()}
		s := p.localDeclaration()
		s.Modifiers = mods

		return s
	}

	if s, ok := speculate(p, p.localDeclaration); ok {
		return s
	}

	return &syntax.ExpressionStatementSyntax{Expr: p.expression(), Semi: p.expect(";")}
}

func (p *parser) localDeclaration() *syntax.LocalDeclarationStatementSyntax {
	decl := &syntax.VariableDeclarationSyntax{Type: p.typ()}
	decl.Variables = p.declarators(p.ident())

	return &syntax.LocalDeclarationStatementSyntax{Declaration: decl, Semi: p.expect(";")}
}

// Expressions.

func (p *parser) expression() syntax.Expr {
	if l, ok := p.lambda(); ok {
		return l
	}

	left := p.conditional()

	if t := p.cur(); t.Kind == syntax.Punctuation && assignmentOperators[t.Text] {
		return &syntax.AssignmentExpressionSyntax{Left: left, Op: p.next(), Right: p.expression()}
	}

	return left
}

var assignmentOperators = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"&=": true, "|=": true, "^=": true, "??=": true, "<<=": true,
}

func (p *parser) lambda() (syntax.Expr, bool) {
	switch {
	case p.cur().Kind == syntax.Identifier && p.peek(1).Is("=>"):
		l := &syntax.SimpleLambdaExpressionSyntax{Param: &syntax.ParameterSyntax{Name: p.next()}, Arrow: p.next()}
		l.Body = p.lambdaBody()

		return l, true

	case p.at("(") && p.peek(p.matchingParen()+1).Is("=>"):
		l := &syntax.ParenthesizedLambdaExpressionSyntax{Params: p.lambdaParams(), Arrow: p.next()}
		l.Body = p.lambdaBody()

		return l, true

	case p.at("delegate"):
		a := &syntax.AnonymousMethodExpressionSyntax{Delegate: p.next()}
		if p.at("(") {
			a.Params = p.parameterList()
		}

		a.Body = p.block()

		return a, true

	default:
		return nil, false
	}
}

// matchingParen returns the offset of the parenthesis closing the current one.
func (p *parser) matchingParen() int {
	depth := 0

	for i := 0; ; i++ {
		t := p.peek(i)

		switch {
		case t.Kind == syntax.EndOfFile:
			return i

		case t.Is("("):
			depth++

		case t.Is(")"):
			depth--
			if depth == 0 {
				return i
			}
		}
	}
}

func (p *parser) lambdaParams() *syntax.ParameterListSyntax {
	l := &syntax.ParameterListSyntax{Open: p.expect("(")}
	l.Params = sepList(p, ")", func() *syntax.ParameterSyntax {
		if p.cur().Kind == syntax.Identifier && (p.peek(1).Is(",") || p.peek(1).Is(")")) {
			return &syntax.ParameterSyntax{Name: p.next()}
		}

		return p.parameter()
	})
	l.Close = p.expect(")")

	return l
}

func (p *parser) lambdaBody() syntax.Node {
	if p.at("{") {
		return p.block()
	}

	return p.expression()
}

func (p *parser) conditional() syntax.Expr {
	cond := p.coalesce()
	if !p.at("?") {
		return cond
	}

	c := &syntax.ConditionalExpressionSyntax{Cond: cond, Question: p.next(), WhenTrue: p.expression()}
	c.Colon = p.expect(":")
	c.WhenFalse = p.expression()

	return c
}

func (p *parser) coalesce() syntax.Expr {
	left := p.binary(1)
	if !p.at("??") {
		return left
	}

	return &syntax.BinaryExpressionSyntax{Left: left, Op: p.next(), Right: p.coalesce()}
}

const relationalPrecedence = 7

var binaryPrecedence = map[string]int{
	"||": 1, "&&": 2, "|": 3, "^": 4, "&": 5, "==": 6, "!=": 6,
	"<": relationalPrecedence, ">": relationalPrecedence, "<=": relationalPrecedence,
	">=": relationalPrecedence, "is": relationalPrecedence, "as": relationalPrecedence,
	"<<": 8, "+": 9, "-": 9, "*": 10, "/": 10, "%": 10,
}

func (p *parser) binary(minPrec int) syntax.Expr {
	left := p.unary()

	for {
		t := p.cur()
		if t.Kind != syntax.Punctuation && t.Kind != syntax.Keyword {
			return left
		}

		prec, ok := binaryPrecedence[t.Text]
		if !ok || prec < minPrec {
			return left
		}

		op := p.next()

		switch op.Text {
		case "is":
			left = &syntax.IsPatternExpressionSyntax{Expr: left, Is: op, Pattern: p.pattern()}

		case "as":
			left = &syntax.BinaryExpressionSyntax{Left: left, Op: op, Right: p.typ()}

		default:
			left = &syntax.BinaryExpressionSyntax{Left: left, Op: op, Right: p.binary(prec + 1)}
		}
	}
}

func (p *parser) pattern() syntax.Pattern {
	if p.cur().Kind == syntax.Identifier && p.at("not") {
		return &syntax.NotPatternSyntax{Not: p.next(), Pattern: p.pattern()}
	}

	return &syntax.ConstantPatternSyntax{Expr: p.binary(relationalPrecedence + 1)}
}

var prefixOperators = map[string]bool{"!": true, "-": true, "+": true, "~": true, "++": true, "--": true}

func (p *parser) unary() syntax.Expr {
	if t := p.cur(); t.Kind == syntax.Punctuation && prefixOperators[t.Text] {
		return &syntax.PrefixUnaryExpressionSyntax{Op: p.next(), Operand: p.unary()}
	}

	if p.at("(") {
		if c, ok := speculate(p, p.cast); ok {
			return c
		}
	}

	return p.postfix(p.primary())
}

func (p *parser) cast() *syntax.CastExpressionSyntax {
	c := &syntax.CastExpressionSyntax{Open: p.next(), Type: p.typ(), Close: p.expect(")")}

	t := p.cur()
	_, predefined := c.Type.(*syntax.PredefinedTypeSyntax)

	switch {
	case t.Kind == syntax.Identifier, t.Kind == syntax.NumericLiteral, t.Kind == syntax.StringLiteral,
		t.Kind == syntax.CharLiteral, t.Kind == syntax.InterpolatedString:
	case t.Kind == syntax.Keyword && (predefinedTypes[t.Text] || slices.Contains(castKeywords, t.Text)):
	case t.Is("(") || t.Is("!") || t.Is("~"):
	case predefined && (t.Is("-") || t.Is("+")):
	default:
		p.fail("cast operand")
	}

	c.Expr = p.unary()

	return c
}

var castKeywords = []string{"this", "base", "new", "true", "false", "null", "default"}

func (p *parser) primary() syntax.Expr {
	t := p.cur()

	switch t.Kind {
	case syntax.NumericLiteral, syntax.StringLiteral, syntax.CharLiteral, syntax.InterpolatedString:
		return &syntax.LiteralExpressionSyntax{Token: p.next()}

	case syntax.Identifier:
		return p.simpleName(false)

	case syntax.Keyword:
		switch {
		case t.Text == "true", t.Text == "false", t.Text == "null", t.Text == "default":
			return &syntax.LiteralExpressionSyntax{Token: p.next()}

		case t.Text == "this", t.Text == "base":
			return &syntax.ThisExpressionSyntax{Token: p.next()}

		case t.Text == "new":
			return p.creation()

		case predefinedTypes[t.Text]:
			return &syntax.PredefinedTypeSyntax{Keyword: p.next()}
		}

	case syntax.Punctuation:
		switch t.Text {
		case "(":
			return &syntax.ParenthesizedExpressionSyntax{Open: p.next(), Expr: p.expression(), Close: p.expect(")")}

		case "[":
			c := &syntax.CollectionExpressionSyntax{Open: p.next()}
			c.Elements = sepList(p, "]", p.expression)
			c.Close = p.expect("]")

			return c
		}
	}

	p.fail("expression")

	return nil
}

func (p *parser) postfix(e syntax.Expr) syntax.Expr {
	for {
		switch {
		case p.at(".") || p.at("?."):
			e = &syntax.MemberAccessExpressionSyntax{Expr: e, Dot: p.next(), Name: p.simpleName(false)}

		case p.at("("):
			e = &syntax.InvocationExpressionSyntax{Expr: e, Args: p.argumentList()}

		case p.at("["):
			a := &syntax.ElementAccessExpressionSyntax{Expr: e, Open: p.next()}
			a.Args = sepList(p, "]", p.argument)
			a.Close = p.expect("]")
			e = a

		case p.at("++") || p.at("--"):
			e = &syntax.PostfixUnaryExpressionSyntax{Operand: e, Op: p.next()}

		default:
			return e
		}
	}
}

func (p *parser) argumentList() *syntax.ArgumentListSyntax {
	l := &syntax.ArgumentListSyntax{Open: p.expect("(")}
	l.Args = sepList(p, ")", p.argument)
	l.Close = p.expect(")")

	return l
}

func (p *parser) argument() *syntax.ArgumentSyntax {
	a := &syntax.ArgumentSyntax{}
	if p.at("ref") || p.at("out") || p.at("in") {
		a.RefKind = p.next()
	}

	a.Expr = p.expression()

	return a
}

func (p *parser) creation() syntax.Expr {
	newTok := p.next()

	switch {
	case p.at("("):
		c := &syntax.ImplicitObjectCreationExpressionSyntax{New: newTok, Args: p.argumentList()}
		if p.at("{") {
			c.Initializer = p.initializer()
		}

		return c

	case p.at("["):
		c := &syntax.ImplicitArrayCreationExpressionSyntax{New: newTok, Open: p.next()}
		for p.at(",") {
			c.Commas = append(c.Commas, p.next())
		}

		c.Close = p.expect("]")
		c.Initializer = p.initializer()

		return c
	}

	elem := p.nonArrayType()

	if p.at("[") {
		arr := &syntax.ArrayTypeSyntax{Elem: elem, Ranks: []*syntax.ArrayRankSpecifierSyntax{p.rankSpecifier(true)}}
		for p.at("[") && (p.peek(1).Is("]") || p.peek(1).Is(",")) {
			arr.Ranks = append(arr.Ranks, p.rankSpecifier(false))
		}

		c := &syntax.ArrayCreationExpressionSyntax{New: newTok, Type: arr}
		if p.at("{") {
			c.Initializer = p.initializer()
		}

		return c
	}

	c := &syntax.ObjectCreationExpressionSyntax{New: newTok, Type: elem}
	if p.at("(") {
		c.Args = p.argumentList()
	}

	if p.at("{") {
		c.Initializer = p.initializer()
	}

	if c.Args == nil && c.Initializer == nil {
		p.fail(`"(" or "{"`)
	}

	return c
}

func (p *parser) initializer() *syntax.InitializerExpressionSyntax {
	i := &syntax.InitializerExpressionSyntax{Open: p.expect("{")}
	i.Exprs = sepList(p, "}", func() syntax.Expr {
		if p.at("{") {
			return p.initializer()
		}

		return p.expression()
	})
	i.Close = p.expect("}")

	return i
}
