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

// Package testsource provides a parser and semantic model for C# source fragments in tests.
//
// It stands in for the host compiler front end: it handles a subset of the language large
// enough for the analyzer test suites and resolves a handful of library types, including the
// System.Linq extension methods.
package testsource

import (
	"strings"
	"testing"

	"fillmore-labs.com/linqguard/host"
	"fillmore-labs.com/linqguard/syntax"
)

const filename = "Test.cs"

// Parser implements [host.Parser].
type Parser struct{}

var _ host.Parser = Parser{}

// Parse implements [host.Parser].
func (Parser) Parse(_, text string) (*syntax.CompilationUnitSyntax, error) {
	return parse(text)
}

// NewDocument parses text into a document with a semantic model.
func NewDocument(name, text string) (*host.Document, error) {
	root, err := parse(text)
	if err != nil {
		return nil, err
	}

	return &host.Document{Name: name, Root: root, Model: NewModel(root)}, nil
}

// Parse parses a complete C# source file.
//
// Use [Wrap] to test statement-level code fragments.
func Parse(tb testing.TB, src string) *host.Document {
	tb.Helper()

	doc, err := NewDocument(filename, src)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return doc
}

// Wrap wraps statements into a method of a class in a file importing System,
// System.Collections.Generic and System.Linq.
func Wrap(body string) string {
	const (
		header = "using System;\nusing System.Collections.Generic;\nusing System.Linq;\n\n" +
			"class C\n{\n    void M(List<int> numbers, IEnumerable<string> names, int[] array)\n    {\n"
		suffix = "\n    }\n}\n"
	)

	var b strings.Builder
	b.Grow(len(header) + len(body) + len(suffix))

	b.WriteString(header) // ignore error
	b.WriteString(body)   // ignore error
	b.WriteString(suffix) // ignore error

	return b.String()
}

// Find returns the first node of type T whose text without edge trivia is text.
func Find[T syntax.Node](tb testing.TB, root syntax.Node, text string) T {
	tb.Helper()

	var (
		found T
		ok    bool
	)

	syntax.Inspect(root, func(c syntax.Cursor) bool {
		if ok {
			return false
		}

		if n, isT := c.Node().(T); isT && syntax.TrimmedText(n) == text {
			found, ok = n, true
		}

		return !ok
	})

	if !ok {
		tb.Fatalf("Can't find %T %q", found, text)
	}

	return found
}
