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

var (
	objectType  = &host.Type{Namespace: host.SystemNamespace, Name: "Object"}
	stringType  = &host.Type{Namespace: host.SystemNamespace, Name: host.String}
	intType     = &host.Type{Namespace: host.SystemNamespace, Name: "Int32"}
	longType    = &host.Type{Namespace: host.SystemNamespace, Name: "Int64"}
	doubleType  = &host.Type{Namespace: host.SystemNamespace, Name: "Double"}
	boolType    = &host.Type{Namespace: host.SystemNamespace, Name: "Boolean"}
	charType    = &host.Type{Namespace: host.SystemNamespace, Name: "Char"}
	voidType    = &host.Type{Namespace: host.SystemNamespace, Name: "Void"}
	dictionaryT = &host.Type{Namespace: host.CollectionsNamespace, Name: "IDictionary"}
)

var predefined = map[string]*host.Type{
	"bool": boolType, "byte": {Namespace: host.SystemNamespace, Name: "Byte"}, "char": charType,
	"decimal": {Namespace: host.SystemNamespace, Name: "Decimal"}, "double": doubleType,
	"float": {Namespace: host.SystemNamespace, Name: "Single"}, "int": intType, "long": longType,
	"object": objectType, "short": {Namespace: host.SystemNamespace, Name: "Int16"}, "string": stringType,
	"uint": {Namespace: host.SystemNamespace, Name: "UInt32"}, "ulong": {Namespace: host.SystemNamespace, Name: "UInt64"},
	"void": voidType,
}

// namespaces of the library types the model knows about.
var knownTypes = map[string]string{
	"List": host.CollectionsNamespace, "IEnumerable": host.CollectionsNamespace,
	"IList": host.CollectionsNamespace, "ICollection": host.CollectionsNamespace,
	"IReadOnlyList": host.CollectionsNamespace, "IReadOnlyCollection": host.CollectionsNamespace,
	"HashSet": host.CollectionsNamespace, "ISet": host.CollectionsNamespace,
	"Dictionary": host.CollectionsNamespace, "IDictionary": host.CollectionsNamespace,
	"Queue": host.CollectionsNamespace, "Stack": host.CollectionsNamespace,
	"KeyValuePair": host.CollectionsNamespace,
	"String": host.SystemNamespace, "Int32": host.SystemNamespace, "Object": host.SystemNamespace,
	"Boolean": host.SystemNamespace, "Span": host.SystemNamespace, "ReadOnlySpan": host.SystemNamespace,
	"Array": host.SystemNamespace, "Environment": host.SystemNamespace, "Func": host.SystemNamespace,
	"Action": host.SystemNamespace, "Predicate": host.SystemNamespace,
	"Enumerable": host.LinqNamespace, "IQueryable": host.LinqNamespace,
}

// sequence types usable as receivers of Enumerable methods.
var sequenceTypes = map[string]bool{
	"List": true, "IEnumerable": true, "IList": true, "ICollection": true, "IReadOnlyList": true,
	"IReadOnlyCollection": true, "HashSet": true, "ISet": true, "Dictionary": true, "IDictionary": true,
	"Queue": true, "Stack": true, "IQueryable": true,
}

func enumerableOf(elem *host.Type) *host.Type {
	return &host.Type{Namespace: host.CollectionsNamespace, Name: "IEnumerable", Args: []host.Type{*orObject(elem)}}
}

func listOf(elem *host.Type) *host.Type {
	return &host.Type{Namespace: host.CollectionsNamespace, Name: host.List, Args: []host.Type{*orObject(elem)}}
}

func arrayOf(elem *host.Type) *host.Type { return &host.Type{Elem: orObject(elem)} }

func orObject(t *host.Type) *host.Type {
	if t == nil {
		return objectType
	}

	return t
}

func isSequence(t *host.Type) bool {
	switch {
	case t == nil:
		return false

	case t.IsArray(), host.IsString(t):
		return true

	default:
		_, known := knownTypes[t.Name]

		return known && sequenceTypes[t.Name]
	}
}

// elementType returns the element type of a sequence type, or nil.
func elementType(t *host.Type) *host.Type {
	switch {
	case t == nil:
		return nil

	case t.IsArray():
		return t.Elem

	case host.IsString(t):
		return charType

	case t.Name == "Dictionary" || t.Name == "IDictionary":
		if len(t.Args) == 2 {
			return &host.Type{Namespace: host.CollectionsNamespace, Name: "KeyValuePair", Args: t.Args}
		}

		return nil

	case sequenceTypes[t.Name] && len(t.Args) == 1:
		return &t.Args[0]

	default:
		return nil
	}
}

// typeOfSyntax resolves a type expression.
func (m *Model) typeOfSyntax(e syntax.Expr) *host.Type {
	switch e := e.(type) {
	case *syntax.PredefinedTypeSyntax:
		return predefined[e.Keyword.Text]

	case *syntax.IdentifierNameSyntax:
		if e.Name.Text == "var" {
			return nil
		}

		return m.namedType(e.Name.Text, nil)

	case *syntax.GenericNameSyntax:
		args := make([]host.Type, 0, e.TypeArgs.Args.Len())
		for _, a := range e.TypeArgs.Args.Items {
			args = append(args, *orObject(m.typeOfSyntax(a)))
		}

		return m.namedType(e.Name.Text, args)

	case *syntax.QualifiedNameSyntax:
		t := m.typeOfSyntax(e.Right)
		if t == nil {
			return nil
		}

		q := *t
		q.Namespace = strings.TrimSpace(syntax.TrimmedText(e.Left))

		return &q

	case *syntax.NullableTypeSyntax:
		return m.typeOfSyntax(e.Elem)

	case *syntax.ArrayTypeSyntax:
		t := m.typeOfSyntax(e.Elem)
		for range e.Ranks {
			t = arrayOf(t)
		}

		return t

	default:
		return nil
	}
}

func (m *Model) namedType(name string, args []host.Type) *host.Type {
	if _, ok := m.classes[name]; ok {
		return &host.Type{Namespace: m.namespace, Name: name, Args: args}
	}

	return &host.Type{Namespace: knownTypes[name], Name: name, Args: args}
}
