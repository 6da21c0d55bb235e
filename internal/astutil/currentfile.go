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

package astutil

import (
	"fmt"
	"go/token"
	"path"
	"strings"

	"github.com/gobwas/glob"

	"fillmore-labs.com/linqguard/host"
	"fillmore-labs.com/linqguard/syntax"
)

// DefaultGeneratedPatterns are the file name patterns of generated sources.
var DefaultGeneratedPatterns = []string{"*.designer.cs", "*.generated.cs", "*.g.cs", "*.g.i.cs"}

// GeneratedMatcher recognizes generated files by name.
type GeneratedMatcher struct {
	globs []glob.Glob
}

// NewGeneratedMatcher compiles case-insensitive file name patterns.
func NewGeneratedMatcher(patterns ...string) (GeneratedMatcher, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, p := range patterns {
		g, err := glob.Compile(strings.ToLower(p))
		if err != nil {
			return GeneratedMatcher{}, fmt.Errorf("invalid generated file pattern %q: %w", p, err)
		}

		globs = append(globs, g)
	}

	return GeneratedMatcher{globs: globs}, nil
}

// MatchName reports whether the base name of name matches one of the patterns.
func (m GeneratedMatcher) MatchName(name string) bool {
	base := strings.ToLower(path.Base(strings.ReplaceAll(name, `\`, "/")))

	for _, g := range m.globs {
		if g.Match(base) {
			return true
		}
	}

	return false
}

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	doc       *host.Document
	handle    *token.File
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] for a document, adding it to fset.
func NewCurrentFile(fset *token.FileSet, doc *host.Document, generated GeneratedMatcher) CurrentFile {
	if doc == nil || doc.Root == nil {
		return CurrentFile{}
	}

	text := doc.Text()

	handle := fset.AddFile(doc.Name, -1, len(text))
	handle.SetLinesForContent([]byte(text))

	return CurrentFile{doc, handle, generated.MatchName(doc.Name) || HasGeneratedHeader(doc.Root)}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid document.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Handle returns the file handle positions are reported against.
func (c CurrentFile) Handle() *token.File {
	return c.handle
}

// HasGeneratedHeader reports whether a comment before the first declaration marks the
// file as generated, like "// <auto-generated/>".
func HasGeneratedHeader(root syntax.Node) bool {
	first := syntax.FirstToken(root)
	if first == nil {
		return false
	}

	for _, t := range first.Leading.Comments() {
		text := strings.ToLower(t.Text)
		if strings.Contains(text, "<auto-generated") || strings.Contains(text, "<autogenerated") {
			return true
		}
	}

	return false
}
