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

package analyzer_test

import (
	"fmt"
	"go/token"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	. "fillmore-labs.com/linqguard/analyzer"
	"fillmore-labs.com/linqguard/internal/testsource"
)

const document = "C.cs"

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txtar"), func(t *testing.T) {
			t.Parallel()

			ar, err := txtar.ParseFile(file)
			require.NoError(t, err)

			a := New(WithLogger(slog.New(slog.DiscardHandler)))
			require.NoError(t, a.Flags.Parse(flagArgs(ar.Comment)))

			input, fixed, want := sections(t, ar)

			doc, err := testsource.NewDocument(document, input)
			require.NoError(t, err)

			fset := token.NewFileSet()

			diagnostics, err := a.Diagnostics(t.Context(), fset, doc)
			require.NoError(t, err)

			got := make([]string, 0, len(diagnostics))
			for _, d := range diagnostics {
				got = append(got, fmt.Sprintf("%d: %s", fset.Position(d.Pos).Line, d.Message))
				assert.Len(t, d.SuggestedFixes, 1, "suggested fixes for %q", d.Message)
			}

			assert.Equal(t, want, got)

			findings, err := a.Analyze(t.Context(), doc)
			require.NoError(t, err)

			result, err := a.FixAll(t.Context(), doc, findings)
			require.NoError(t, err)

			assert.Equal(t, fixed, result.Text)
			assert.Empty(t, result.Skipped)
		})
	}
}

// flagArgs returns the archive comment lines starting with a dash.
func flagArgs(comment []byte) []string {
	var args []string

	for line := range strings.Lines(string(comment)) {
		if line = strings.TrimSpace(line); strings.HasPrefix(line, "-") {
			args = append(args, strings.Fields(line)...)
		}
	}

	return args
}

func sections(t *testing.T, ar *txtar.Archive) (input, fixed string, findings []string) {
	t.Helper()

	files := make(map[string]string, len(ar.Files))
	for _, f := range ar.Files {
		files[f.Name] = string(f.Data)
	}

	input, ok := files[document]
	require.True(t, ok, "missing %s", document)

	fixed, ok = files[document+".fixed"]
	require.True(t, ok, "missing %s.fixed", document)

	findings = []string{}

	for line := range strings.Lines(files["findings"]) {
		if line = strings.TrimSpace(line); line != "" {
			findings = append(findings, line)
		}
	}

	return input, fixed, findings
}
