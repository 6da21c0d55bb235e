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

package host

import "strings"

// SymbolKind classifies a [Symbol].
type SymbolKind uint8

const (
	UnknownSymbol SymbolKind = iota
	Method
	Property
	Field
	Local
	Parameter
	NamedType
	Namespace
)

// Symbol is the resolved identity of a name.
type Symbol struct {
	Name                string
	Kind                SymbolKind
	ContainingType      string // simple name of the declaring type, without type arguments
	ContainingNamespace string // namespace of the declaring type
	IsStatic            bool
	IsExtension         bool // reduced extension method called with instance syntax
}

// DeclaredBy reports whether the symbol is declared by the type namespace.name.
func (s Symbol) DeclaredBy(namespace, name string) bool {
	return s.ContainingNamespace == namespace && s.ContainingType == name
}

// Type is a resolved type.
type Type struct {
	Namespace string
	Name      string // simple name without type arguments, "" for arrays
	Args      []Type
	Elem      *Type // element type of arrays
}

// IsArray reports whether t is an array type.
func (t Type) IsArray() bool { return t.Elem != nil }

// Is reports whether t is namespace.name with the given number of type arguments.
func (t Type) Is(namespace, name string, arity int) bool {
	return t.Namespace == namespace && t.Name == name && len(t.Args) == arity
}

func (t Type) String() string {
	var b strings.Builder
	t.writeTo(&b)

	return b.String()
}

func (t Type) writeTo(b *strings.Builder) {
	if t.Elem != nil {
		t.Elem.writeTo(b)
		b.WriteString("[]")

		return
	}

	if t.Namespace != "" {
		b.WriteString(t.Namespace)
		b.WriteByte('.')
	}

	b.WriteString(t.Name)

	if len(t.Args) == 0 {
		return
	}

	b.WriteByte('<')

	for i, a := range t.Args {
		if i > 0 {
			b.WriteString(", ")
		}

		a.writeTo(b)
	}

	b.WriteByte('>')
}

// TypeInfo holds the static type of an expression and the type it is converted to in its context.
type TypeInfo struct {
	Type          *Type // nil when unknown
	ConvertedType *Type // nil when unknown
}
