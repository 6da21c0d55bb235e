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
	"bytes"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/linqguard/analyzer"
	"fillmore-labs.com/linqguard/internal/testsource"
)

func TestActions(t *testing.T) {
	t.Parallel()

	a := New()
	doc := testsource.Parse(t, testsource.Wrap("        var a = numbers.Count() > 0;\n        var b = names.Select(x => x);"))

	findings, err := a.Analyze(t.Context(), doc)
	require.NoError(t, err)
	require.Len(t, findings, 2)

	actions, err := a.Actions(t.Context(), doc, findings[0])
	require.NoError(t, err)
	require.Len(t, actions, 1)

	action := actions[0]
	assert.Equal(t, "Use Any()", action.Title)
	assert.Equal(t, "LG0003", action.Rule)

	again, err := a.Actions(t.Context(), doc, findings[0])
	require.NoError(t, err)
	assert.Equal(t, action.Key, again[0].Key, "keys are deterministic")

	other, err := a.Actions(t.Context(), doc, findings[1])
	require.NoError(t, err)
	assert.NotEqual(t, action.Key, other[0].Key)

	fixed, err := action.Apply(t.Context())
	require.NoError(t, err)
	assert.Equal(t, testsource.Wrap("        var a = numbers.Any();\n        var b = names.Select(x => x);"), fixed.Text())
}

func TestActionsFor(t *testing.T) {
	t.Parallel()

	a := New()
	doc := testsource.Parse(t, testsource.Wrap("        var b = names.Select(x => x);"))

	findings, err := a.Analyze(t.Context(), doc)
	require.NoError(t, err)
	require.Len(t, findings, 1)

	actions, err := a.Actions(t.Context(), doc, findings[0])
	require.NoError(t, err)
	require.Len(t, actions, 1)

	payload, err := actions[0].Payload()
	require.NoError(t, err)

	decoded, err := a.ActionsFor(t.Context(), doc, payload)
	require.NoError(t, err)
	require.Len(t, decoded, 1)

	assert.Equal(t, actions[0].Key, decoded[0].Key)

	_, err = a.ActionsFor(t.Context(), doc, []byte{0xc1})
	require.Error(t, err)
}

func TestActionsWithoutDocument(t *testing.T) {
	t.Parallel()

	_, err := New().Actions(t.Context(), nil, Finding{Rule: "LG0003"})
	require.ErrorIs(t, err, ErrNoDocument)
}

func TestDiagnostic(t *testing.T) {
	t.Parallel()

	a := New()
	src := testsource.Wrap("        var a = numbers.Count() > 0;")
	doc := testsource.Parse(t, src)

	findings, err := a.Analyze(t.Context(), doc)
	require.NoError(t, err)
	require.Len(t, findings, 1)

	fset := token.NewFileSet()
	file := fset.AddFile(doc.Name, -1, len(src))

	d, err := a.Diagnostic(t.Context(), file, doc, findings[0])
	require.NoError(t, err)

	assert.Equal(t, "count-any", d.Category)
	assert.Equal(t, findings[0].Span.Start, file.Offset(d.Pos))
	assert.Equal(t, findings[0].Span.End, file.Offset(d.End))

	require.Len(t, d.SuggestedFixes, 1)
	assert.Equal(t, "Use Any()", d.SuggestedFixes[0].Message)

	require.Len(t, d.SuggestedFixes[0].TextEdits, 1)
	edit := d.SuggestedFixes[0].TextEdits[0]

	fixed := src[:file.Offset(edit.Pos)] + string(edit.NewText) + src[file.Offset(edit.End):]
	assert.Equal(t, testsource.Wrap("        var a = numbers.Any();"), fixed)
}

func TestEncodeFindings(t *testing.T) {
	t.Parallel()

	a := New()
	doc := testsource.Parse(t, testsource.Wrap("        var a = numbers.Count() > 0;\n        var b = names.Select(x => x);"))

	findings, err := a.Analyze(t.Context(), doc)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeFindings(&buf, findings))

	decoded, err := DecodeFindings(&buf)
	require.NoError(t, err)

	assert.Equal(t, findings, decoded)
}
