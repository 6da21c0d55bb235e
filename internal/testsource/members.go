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
	"maps"
	"slices"
	"strings"

	"fillmore-labs.com/linqguard/host"
	"fillmore-labs.com/linqguard/syntax"
)

var enumerableMethods = map[string]bool{}

func init() {
	for _, name := range strings.Fields(`Aggregate All Any Append AsEnumerable Average Cast Chunk Concat
		Contains Count DefaultIfEmpty Distinct ElementAt ElementAtOrDefault Empty Except First
		FirstOrDefault GroupBy GroupJoin Intersect Join Last LastOrDefault LongCount Max Min OfType
		OrderBy OrderByDescending Prepend Range Repeat Reverse Select SelectMany SequenceEqual Single
		SingleOrDefault Skip SkipWhile Sum Take TakeWhile ThenBy ThenByDescending ToArray ToDictionary
		ToHashSet ToList ToLookup Union Where Zip`) {
		enumerableMethods[name] = true
	}
}

var listMethods = map[string]*host.Type{
	"ForEach": voidType, "Add": voidType, "AddRange": voidType, "Clear": voidType, "Contains": boolType,
	"Remove": boolType, "RemoveAt": voidType, "Insert": voidType, "IndexOf": intType, "Sort": voidType,
	"Reverse": voidType, "Find": objectType,
}

var stringMethods = map[string]*host.Type{
	"Contains": boolType, "StartsWith": boolType, "EndsWith": boolType, "Equals": boolType,
	"IndexOf": intType, "LastIndexOf": intType, "CompareTo": intType, "Split": arrayOf(stringType),
	"ToCharArray": arrayOf(charType), "Substring": stringType, "Replace": stringType,
	"ToLower": stringType, "ToUpper": stringType, "ToLowerInvariant": stringType,
	"ToUpperInvariant": stringType, "Trim": stringType, "TrimStart": stringType, "TrimEnd": stringType,
	"PadLeft": stringType, "PadRight": stringType, "Insert": stringType, "Remove": stringType,
	"ToString": stringType,
}

// invocationOf returns the invocation calling ma, or nil.
func (m *Model) invocationOf(ma *syntax.MemberAccessExpressionSyntax) *syntax.InvocationExpressionSyntax {
	if inv, ok := m.parents[ma].(*syntax.InvocationExpressionSyntax); ok && inv.Expr == syntax.Expr(ma) {
		return inv
	}

	return nil
}

func (m *Model) member(ma *syntax.MemberAccessExpressionSyntax) (resolved, bool) {
	name := syntax.NameOf(ma.Name)
	inv := m.invocationOf(ma)

	if t, ok := m.typeRef(ma.Expr); ok {
		return m.staticMember(t, name, ma, inv)
	}

	recv := m.typeOf(ma.Expr)
	if recv == nil {
		return resolved{}, false
	}

	return m.instanceMember(recv, name, ma, inv)
}

// typeRef resolves expressions naming a type, like string or System.Environment.
func (m *Model) typeRef(e syntax.Expr) (*host.Type, bool) {
	switch e := e.(type) {
	case *syntax.PredefinedTypeSyntax:
		t := predefined[e.Keyword.Text]

		return t, t != nil

	case *syntax.IdentifierNameSyntax:
		if m.refs[e] != nil {
			return nil, false
		}

		name := e.Name.Text
		if _, ok := m.classes[name]; ok {
			return m.namedType(name, nil), true
		}

		ns, ok := knownTypes[name]
		if !ok || ns == host.LinqNamespace && !m.linq {
			return nil, false
		}

		return &host.Type{Namespace: ns, Name: name}, true

	case *syntax.MemberAccessExpressionSyntax:
		text := syntax.TrimmedText(e)

		i := strings.LastIndexByte(text, '.')
		if i < 0 {
			return nil, false
		}

		ns, name := text[:i], text[i+1:]
		if known, ok := knownTypes[name]; !ok || known != ns {
			return nil, false
		}

		return &host.Type{Namespace: ns, Name: name}, true

	default:
		return nil, false
	}
}

func (m *Model) staticMember(t *host.Type, name string, ma *syntax.MemberAccessExpressionSyntax,
	inv *syntax.InvocationExpressionSyntax,
) (resolved, bool) {
	if ci, ok := m.userClass(t); ok {
		d := ci.members[name]
		if d == nil || !d.static {
			return resolved{}, false
		}

		return resolved{sym: d.symbol(m.namespace), typ: d.typ}, true
	}

	if t.Namespace == "" {
		return resolved{}, false
	}

	sym := host.Symbol{
		Name: name, Kind: host.Property, ContainingType: t.Name, ContainingNamespace: t.Namespace, IsStatic: true,
	}
	if inv != nil {
		sym.Kind = host.Method
	}

	var typ *host.Type

	switch {
	case host.IsString(t):
		switch name {
		case "Empty":
			sym.Kind, typ = host.Field, stringType

		case "IsNullOrEmpty", "IsNullOrWhiteSpace":
			typ = boolType

		default:
			typ = stringType
		}

	case t.Is(host.SystemNamespace, host.Environment, 0):
		switch name {
		case "GetEnvironmentVariables":
			typ = dictionaryT

		default:
			typ = stringType
		}

	case t.Is(host.SystemNamespace, host.Array, 0) && name == "Empty":
		typ = arrayOf(m.typeArg(ma.Name))

	case t.Is(host.LinqNamespace, host.Enumerable, 0):
		if inv == nil || !enumerableMethods[name] {
			return resolved{}, false
		}

		typ = m.linqReturn(name, nil, ma.Name, inv)
	}

	return resolved{sym: sym, typ: typ}, true
}

func (m *Model) userClass(t *host.Type) (*classInfo, bool) {
	if t.Namespace != m.namespace || t.IsArray() {
		return nil, false
	}

	ci, ok := m.classes[t.Name]

	return ci, ok
}

func (m *Model) instanceMember(recv *host.Type, name string, ma *syntax.MemberAccessExpressionSyntax,
	inv *syntax.InvocationExpressionSyntax,
) (resolved, bool) {
	if ci, ok := m.userClass(recv); ok {
		if d := ci.members[name]; d != nil && !d.static {
			return resolved{sym: d.symbol(m.namespace), typ: d.typ}, true
		}
	}

	if r, ok := libraryMember(recv, name, inv != nil); ok {
		return r, true
	}

	if inv == nil {
		return resolved{}, false
	}

	for _, cn := range slices.Sorted(maps.Keys(m.classes)) {
		if d := m.classes[cn].members[name]; d != nil && d.extension {
			sym := d.symbol(m.namespace)

			return resolved{sym: sym, typ: d.typ}, true
		}
	}

	if !m.linq || !isSequence(recv) || !enumerableMethods[name] {
		return resolved{}, false
	}

	sym := host.Symbol{
		Name: name, Kind: host.Method, ContainingType: host.Enumerable, ContainingNamespace: host.LinqNamespace,
		IsStatic: true, IsExtension: true,
	}

	return resolved{sym: sym, typ: m.linqReturn(name, elementType(recv), ma.Name, inv)}, true
}

// libraryMember resolves instance members of the known library types.
func libraryMember(recv *host.Type, name string, invoked bool) (resolved, bool) {
	member := func(owner, ns string, kind host.SymbolKind, typ *host.Type) (resolved, bool) {
		return resolved{
			sym: host.Symbol{Name: name, Kind: kind, ContainingType: owner, ContainingNamespace: ns},
			typ: typ,
		}, true
	}

	switch {
	case recv.IsArray():
		if name == "Length" && !invoked {
			return member(host.Array, host.SystemNamespace, host.Property, intType)
		}

	case host.IsString(recv):
		if name == "Length" && !invoked {
			return member(host.String, host.SystemNamespace, host.Property, intType)
		}

		if t, ok := stringMethods[name]; ok && invoked {
			return member(host.String, host.SystemNamespace, host.Method, t)
		}

	case recv.Namespace == host.CollectionsNamespace:
		if name == "Count" && !invoked && recv.Name != "IEnumerable" {
			return member(recv.Name, recv.Namespace, host.Property, intType)
		}

		if recv.Name != host.List || !invoked {
			break
		}

		if t, ok := listMethods[name]; ok {
			if name == "Find" {
				t = elementType(recv)
			}

			return member(host.List, host.CollectionsNamespace, host.Method, t)
		}
	}

	return resolved{}, false
}

func (m *Model) typeArg(name syntax.Expr) *host.Type {
	g, ok := name.(*syntax.GenericNameSyntax)
	if !ok || g.TypeArgs.Args.Len() == 0 {
		return nil
	}

	return m.typeOfSyntax(g.TypeArgs.Args.Items[0])
}

// linqReturn computes the return type of an Enumerable method.
func (m *Model) linqReturn(name string, elem *host.Type, nameExpr syntax.Expr,
	inv *syntax.InvocationExpressionSyntax,
) *host.Type {
	switch name {
	case "ToList":
		return listOf(elem)

	case "ToArray":
		return arrayOf(elem)

	case "ToHashSet":
		return &host.Type{Namespace: host.CollectionsNamespace, Name: "HashSet", Args: []host.Type{*orObject(elem)}}

	case "Count":
		return intType

	case "LongCount":
		return longType

	case "Any", "All", "Contains", "SequenceEqual":
		return boolType

	case "Average":
		return doubleType

	case "First", "FirstOrDefault", "Last", "LastOrDefault", "Single", "SingleOrDefault",
		"ElementAt", "ElementAtOrDefault", "Min", "Max", "Sum", "Aggregate":
		return elem

	case "Select":
		return enumerableOf(m.lambdaResult(inv))

	case "SelectMany":
		return enumerableOf(elementType(m.lambdaResult(inv)))

	case "Cast", "OfType", "Empty":
		return enumerableOf(m.typeArg(nameExpr))

	case "Range":
		return enumerableOf(intType)

	case "Repeat":
		if args := inv.Args.Args.Items; len(args) > 0 {
			return enumerableOf(m.typeOf(args[0].Expr))
		}

		return enumerableOf(nil)

	case "ToDictionary", "ToLookup", "GroupBy":
		return nil

	default:
		return enumerableOf(elem)
	}
}

func (m *Model) lambdaResult(inv *syntax.InvocationExpressionSyntax) *host.Type {
	args := inv.Args.Args.Items
	if len(args) == 0 {
		return nil
	}

	body, ok := syntax.LambdaBody(args[0].Expr)
	if !ok {
		return nil
	}

	if e, ok := body.(syntax.Expr); ok {
		return m.typeOf(e)
	}

	return nil
}

// lambdaParamType infers the type of a lambda parameter passed to a method on a sequence.
func (m *Model) lambdaParamType(lambda syntax.Expr, index int) *host.Type {
	arg, ok := m.parents[lambda].(*syntax.ArgumentSyntax)
	if !ok {
		return nil
	}

	inv, ok := m.parents[m.parents[arg]].(*syntax.InvocationExpressionSyntax)
	if !ok {
		return nil
	}

	ma, ok := inv.Expr.(*syntax.MemberAccessExpressionSyntax)
	if !ok {
		return nil
	}

	if _, isType := m.typeRef(ma.Expr); isType {
		return nil
	}

	switch index {
	case 0:
		return elementType(m.typeOf(ma.Expr))

	case 1:
		return intType

	default:
		return nil
	}
}
