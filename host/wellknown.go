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

// Well-known namespaces and types.
const (
	SystemNamespace      = "System"
	LinqNamespace        = "System.Linq"
	CollectionsNamespace = "System.Collections.Generic"

	Enumerable   = "Enumerable"
	List         = "List"
	Array        = "Array"
	String       = "String"
	Environment  = "Environment"
	Span         = "Span"
	ReadOnlySpan = "ReadOnlySpan"
)

// IsEnumerable reports whether s is the System.Linq.Enumerable method name.
func IsEnumerable(s Symbol, name string) bool {
	return s.Kind == Method && s.Name == name && s.DeclaredBy(LinqNamespace, Enumerable)
}

// IsList reports whether s is a member of System.Collections.Generic.List<T> with the given name.
func IsList(s Symbol, name string) bool {
	return s.Name == name && s.DeclaredBy(CollectionsNamespace, List)
}

// IsArray reports whether s is a member of System.Array with the given name.
func IsArray(s Symbol, name string) bool {
	return s.Name == name && s.DeclaredBy(SystemNamespace, Array)
}

// IsString reports whether t is System.String.
func IsString(t *Type) bool {
	return t != nil && t.Is(SystemNamespace, String, 0)
}

// IsSpan reports whether t is one of the non-owning view types Span<T> or ReadOnlySpan<T>.
func IsSpan(t *Type) bool {
	return t != nil && (t.Is(SystemNamespace, Span, 1) || t.Is(SystemNamespace, ReadOnlySpan, 1))
}
