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
	"go/token"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/linqguard/analyzer"
	"fillmore-labs.com/linqguard/internal/testsource"
)

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{
		WithRule("LG0009", true),
		nil,
		Options{WithGenerated(true), WithValidate(false)},
		WithSeverity("count-any", Error),
	}

	var buf strings.Builder

	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("Configured", opts.LogAttr())

	for _, want := range []string{"options.LG0009=true", "options.nil=<nil>", "options.generated=true", "options.validate=false", "options.severity.count-any=error"} {
		assert.Contains(t, buf.String(), want)
	}
}

func TestWithRules(t *testing.T) {
	t.Parallel()

	a := New(WithRules("LG0003", "identity-select"), WithRule("LG0003", false), WithRule("LG0009", true))

	assert.Equal(t, []string{"LG0002", "LG0009"}, a.Enabled())
}

func TestInvalidOptions(t *testing.T) {
	t.Parallel()

	var buf strings.Builder

	a := New(
		WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		WithRule("LG0042", true),
		WithSeverity("no-such-rule", Info),
		WithGeneratedPatterns("[a-"),
	)

	for _, want := range []string{"Ignoring invalid options", "rule=LG0042", "severity=no-such-rule", "generated-patterns="} {
		assert.Contains(t, buf.String(), want)
	}

	assert.Len(t, a.Enabled(), 8)
}

func TestWithSeverity(t *testing.T) {
	t.Parallel()

	a := New(WithSeverity("where-count", Error), WithSeverity("LG0009", Hidden))

	for _, d := range a.Rules() {
		switch d.ID {
		case "LG0007":
			assert.Equal(t, Error, d.Severity)

		case "LG0009":
			assert.Equal(t, Hidden, d.Severity)

		default:
			assert.Equal(t, Warning, d.Severity, d.ID)
		}
	}
}

func TestWithGeneratedPatterns(t *testing.T) {
	t.Parallel()

	src := testsource.Wrap("        var a = numbers.Count() > 0;")

	tests := []struct {
		name     string
		document string
		options  Option
		want     int
	}{
		{"default pattern", "C.g.cs", nil, 0},
		{"replaced patterns", "C.g.cs", WithGeneratedPatterns("*.gen.cs"), 1},
		{"custom pattern", "C.gen.cs", WithGeneratedPatterns("*.gen.cs"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := testsource.NewDocument(tt.document, src)
			require.NoError(t, err)

			findings, err := New(tt.options).Analyze(t.Context(), doc)
			require.NoError(t, err)

			assert.Len(t, findings, tt.want)
		})
	}
}

func TestWithMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewPedanticRegistry()
	a := New(WithMetrics(reg))

	doc := testsource.Parse(t, testsource.Wrap("        var a = numbers.Count() > 0;\n        var b = names.Count() == 0;"))

	findings, err := a.Analyze(t.Context(), doc)
	require.NoError(t, err)
	require.Len(t, findings, 2)

	_, err = a.FixAll(t.Context(), doc, findings)
	require.NoError(t, err)

	const want = `
# HELP linqguard_findings_total Total number of findings reported, by rule.
# TYPE linqguard_findings_total counter
linqguard_findings_total{rule="LG0003"} 2
# HELP linqguard_fixes_total Total number of fix requests, by rule and outcome.
# TYPE linqguard_fixes_total counter
linqguard_fixes_total{outcome="applied",rule="LG0003"} 2
`

	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want),
		"linqguard_findings_total", "linqguard_fixes_total"))
}

func TestDiagnosticWithMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewPedanticRegistry()
	a := New(WithMetrics(reg))

	src := testsource.Wrap("        var a = numbers.Count() > 0;")
	doc := testsource.Parse(t, src)

	findings, err := a.Analyze(t.Context(), doc)
	require.NoError(t, err)
	require.Len(t, findings, 1)

	fset := token.NewFileSet()
	file := fset.AddFile(doc.Name, -1, len(src))

	d, err := a.Diagnostic(t.Context(), file, doc, findings[0])
	require.NoError(t, err)
	require.Len(t, d.SuggestedFixes, 1)

	fixes, err := testutil.GatherAndCount(reg, "linqguard_fixes_total")
	require.NoError(t, err)
	assert.Zero(t, fixes, "offered fixes are not applied fixes")
}
