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

package astutil_test

import (
	"go/token"
	"testing"

	. "fillmore-labs.com/linqguard/internal/astutil"
	"fillmore-labs.com/linqguard/internal/testsource"
)

func TestGeneratedMatcher(t *testing.T) {
	t.Parallel()

	m, err := NewGeneratedMatcher(DefaultGeneratedPatterns...)
	if err != nil {
		t.Fatalf("Can't compile patterns: %v", err)
	}

	tests := []struct {
		name string
		want bool
	}{
		{"Program.cs", false},
		{"Form1.Designer.cs", true},
		{`src\Api\Client.g.cs`, true},
		{"obj/Debug/App.g.i.cs", true},
		{"Model.generated.cs", true},
		{"generated.cs", false},
	}

	for _, tt := range tests {
		if got := m.MatchName(tt.name); got != tt.want {
			t.Errorf("Got MatchName(%q) = %t, want %t", tt.name, got, tt.want)
		}
	}
}

func TestGeneratedMatcherInvalid(t *testing.T) {
	t.Parallel()

	if _, err := NewGeneratedMatcher("[a-"); err == nil {
		t.Error("Expected error for invalid pattern")
	}
}

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	m, err := NewGeneratedMatcher(DefaultGeneratedPatterns...)
	if err != nil {
		t.Fatalf("Can't compile patterns: %v", err)
	}

	tests := []struct {
		name, doc, header string
		generated         bool
	}{
		{"plain", "C.cs", "", false},
		{"by name", "C.Designer.cs", "", true},
		{"auto-generated", "C.cs", "// <auto-generated/>\n", true},
		{"autogenerated", "C.cs", "//------\n// <autogenerated>\n//------\n", true},
		{"other comment", "C.cs", "// Copyright\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := tt.header + testsource.Wrap("        Use(numbers);")
			doc := testsource.Parse(t, src)
			doc.Name = tt.doc

			fset := token.NewFileSet()

			cf := NewCurrentFile(fset, doc, m)
			if !cf.Valid() {
				t.Fatal("Expected valid file")
			}

			if got := cf.Generated(); got != tt.generated {
				t.Errorf("Got generated %t, want %t", got, tt.generated)
			}

			if got, want := cf.Handle().Size(), len(src); got != want {
				t.Errorf("Got file size %d, want %d", got, want)
			}
		})
	}
}

func TestCurrentFileInvalid(t *testing.T) {
	t.Parallel()

	if cf := NewCurrentFile(token.NewFileSet(), nil, GeneratedMatcher{}); cf.Valid() {
		t.Error("Expected invalid file")
	}
}
