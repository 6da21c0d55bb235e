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

package run_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"fillmore-labs.com/linqguard/host"
	"fillmore-labs.com/linqguard/internal/config"
	"fillmore-labs.com/linqguard/internal/report"
	. "fillmore-labs.com/linqguard/internal/run"
	"fillmore-labs.com/linqguard/internal/testsource"
	"fillmore-labs.com/linqguard/syntax"
)

const body = "        var a = numbers.Count() > 0;\n" +
	"        var b = names.Select(x => x);\n" +
	"        var c = names.ToList().Where(n => n.Length > 1);"

func rulesOf(findings []report.Finding) []string {
	ids := make([]string, 0, len(findings))
	for _, f := range findings {
		ids = append(ids, f.Rule)
	}

	return ids
}

func document(t *testing.T, name, src string) *host.Document {
	t.Helper()

	doc, err := testsource.NewDocument(name, src)
	require.NoError(t, err)

	return doc
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
		src      string
		rules    config.Rule
		behavior config.Config
		want     []string
	}{
		{"default", "C.cs", testsource.Wrap(body), config.DefaultRules, 0, []string{"LG0003", "LG0002"}},
		{"all rules", "C.cs", testsource.Wrap(body), config.AllRules, 0, []string{"LG0003", "LG0002", "LG0009"}},
		{"single rule", "C.cs", testsource.Wrap(body), config.IdentitySelect, 0, []string{"LG0002"}},
		{"generated name", "Form.Designer.cs", testsource.Wrap(body), config.DefaultRules, 0, []string{}},
		{"generated header", "C.cs", "// <auto-generated/>\n" + testsource.Wrap(body), config.DefaultRules, 0, []string{}},
		{
			"include generated", "Form.Designer.cs", testsource.Wrap(body), config.DefaultRules, config.IncludeGenerated,
			[]string{"LG0003", "LG0002"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o := DefaultOptions()
			o.Rules = config.NewBitMask(tt.rules)
			o.Behavior = config.NewBitMask(tt.behavior)

			findings, err := o.Analyze(t.Context(), document(t, tt.document, tt.src))
			require.NoError(t, err)

			assert.Equal(t, tt.want, rulesOf(findings))
		})
	}
}

func TestAnalyzeSourceOrder(t *testing.T) {
	t.Parallel()

	const src = "        var b = names.Select(x => x).Select(x => x);"

	doc := document(t, "C.cs", testsource.Wrap(src))

	findings, err := DefaultOptions().Analyze(t.Context(), doc)
	require.NoError(t, err)
	require.Len(t, findings, 2)

	first := strings.Index(doc.Text(), "Select")
	assert.Equal(t, first, findings[0].Span.Start)
	assert.Less(t, findings[0].Span.End, findings[1].Span.Start)
}

func TestAnalyzeWithoutModel(t *testing.T) {
	t.Parallel()

	doc := document(t, "C.cs", testsource.Wrap(body))
	doc.Model = nil

	findings, err := DefaultOptions().Analyze(t.Context(), doc)
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestAnalyzeErrors(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()

	_, err := o.Analyze(t.Context(), nil)
	require.ErrorIs(t, err, ErrNoDocument)

	_, err = o.Analyze(t.Context(), &host.Document{Name: "empty.cs"})
	require.ErrorIs(t, err, ErrNoDocument)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err = o.Analyze(ctx, document(t, "C.cs", testsource.Wrap(body)))
	require.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzeAll(t *testing.T) {
	t.Parallel()

	docs := []*host.Document{
		document(t, "A.cs", testsource.Wrap(body)),
		document(t, "B.cs", testsource.Wrap("        Use(numbers);")),
		document(t, "C.cs", testsource.Wrap("        var n = names.Where(s => s.Length > 1).Count();")),
	}

	results, err := DefaultOptions().AnalyzeAll(t.Context(), docs)
	require.NoError(t, err)
	require.Len(t, results, len(docs))

	assert.Equal(t, []string{"LG0003", "LG0002"}, rulesOf(results[0]))
	assert.Empty(t, results[1])
	assert.Equal(t, []string{"LG0007"}, rulesOf(results[2]))

	_, err = DefaultOptions().AnalyzeAll(t.Context(), append(docs, nil))
	require.ErrorIs(t, err, ErrNoDocument)
}

func TestAnalyzeTrace(t *testing.T) {
	t.Parallel()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	o := DefaultOptions()
	o.TracerProvider = tp

	_, err := o.Analyze(t.Context(), document(t, "C.cs", testsource.Wrap(body)))
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 1)

	assert.Equal(t, "linqguard.Analyze", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.String("document", "C.cs"))
	assert.Contains(t, spans[0].Attributes(), attribute.Int("findings", 2))
}

func TestFix(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()
	doc := document(t, "C.cs", testsource.Wrap(body))

	findings, err := o.Analyze(t.Context(), doc)
	require.NoError(t, err)
	require.NotEmpty(t, findings)

	fixed, ok, err := o.Fix(t.Context(), doc, findings[0])
	require.NoError(t, err)
	require.True(t, ok)

	assert.Contains(t, fixed.Text(), "var a = numbers.Any();")

	stale := findings[0]
	stale.Span.Start++

	unchanged, ok, err := o.Fix(t.Context(), doc, stale)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Same(t, doc, unchanged)
}

type failingParser struct{}

var errParse = errors.New("parse failed")

func (failingParser) Parse(string, string) (*syntax.CompilationUnitSyntax, error) {
	return nil, errParse
}

func TestFixValidation(t *testing.T) {
	t.Parallel()

	var buf strings.Builder

	o := DefaultOptions()
	o.Behavior = config.NewBitMask(config.ValidateFixes)
	o.Parser = failingParser{}
	o.Logger = slog.New(slog.NewTextHandler(&buf, nil))

	doc := document(t, "C.cs", testsource.Wrap(body))

	findings, err := o.Analyze(t.Context(), doc)
	require.NoError(t, err)
	require.NotEmpty(t, findings)

	fixed, ok, err := o.Fix(t.Context(), doc, findings[0])
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Same(t, doc, fixed)

	assert.Contains(t, buf.String(), "Internal Error")
}

func TestFixAll(t *testing.T) {
	t.Parallel()

	const src = "        var a = numbers.Count() > 0;\n" +
		"        var b = names.Select(x => x);\n" +
		"        var d = names.Where(s => s.Length > 1).Count();"

	const want = "        var a = numbers.Any();\n" +
		"        var b = names;\n" +
		"        var d = names.Count(s => s.Length > 1);"

	o := DefaultOptions()
	doc := document(t, "C.cs", testsource.Wrap(src))

	findings, err := o.Analyze(t.Context(), doc)
	require.NoError(t, err)
	require.Len(t, findings, 3)

	result, err := o.FixAll(t.Context(), doc, findings)
	require.NoError(t, err)

	assert.Equal(t, testsource.Wrap(want), result.Text)
	assert.Len(t, result.Applied, 3)
	assert.Empty(t, result.Skipped)

	// One fix after another, reanalyzing in between.
	for {
		fs, err := o.Analyze(t.Context(), doc)
		require.NoError(t, err)

		if len(fs) == 0 {
			break
		}

		fixed, ok, err := o.Fix(t.Context(), doc, fs[0])
		require.NoError(t, err)
		require.True(t, ok)

		doc = document(t, "C.cs", fixed.Text())
	}

	assert.Equal(t, result.Text, doc.Text())
}

func TestFixAllRepeatedText(t *testing.T) {
	t.Parallel()

	const (
		src  = "        var b = names.Select(x => x).Select(x => x).ToList();"
		want = "        var b = names.ToList();"
	)

	o := DefaultOptions()
	doc := document(t, "C.cs", testsource.Wrap(src))

	findings, err := o.Analyze(t.Context(), doc)
	require.NoError(t, err)
	require.Equal(t, []string{"LG0002", "LG0002"}, rulesOf(findings))

	result, err := o.FixAll(t.Context(), doc, findings)
	require.NoError(t, err)

	assert.Equal(t, testsource.Wrap(want), result.Text)
	assert.Len(t, result.Applied, 2)
	assert.Empty(t, result.Skipped)
	assert.Len(t, result.Edits, 2)
}

func TestFixAllOverlap(t *testing.T) {
	t.Parallel()

	const src = "        foreach (var x in names ?? new List<string>()) { names.ToList().ForEach(n => Use(n)); }"

	const want = "        if (names != null) { foreach (var x in names) { names.ToList().ForEach(n => Use(n)); } }"

	o := DefaultOptions()
	doc := document(t, "C.cs", testsource.Wrap(src))

	findings, err := o.Analyze(t.Context(), doc)
	require.NoError(t, err)
	require.Equal(t, []string{"LG0006", "LG0001"}, rulesOf(findings))

	result, err := o.FixAll(t.Context(), doc, findings)
	require.NoError(t, err)

	assert.Equal(t, testsource.Wrap(want), result.Text)
	assert.Equal(t, []string{"LG0006"}, rulesOf(result.Applied))
	assert.Equal(t, []string{"LG0001"}, rulesOf(result.Skipped))
	assert.Len(t, result.Edits, 1)
}

func TestFixAllWithoutDocument(t *testing.T) {
	t.Parallel()

	_, err := DefaultOptions().FixAll(t.Context(), nil, nil)
	require.ErrorIs(t, err, ErrNoDocument)
}
