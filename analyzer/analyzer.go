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

package analyzer

import (
	"context"
	"flag"
	"log/slog"

	"fillmore-labs.com/linqguard/host"
	"fillmore-labs.com/linqguard/internal/report"
	"fillmore-labs.com/linqguard/internal/rules"
	"fillmore-labs.com/linqguard/internal/run"
)

// Public API constants for the linqguard analyzer.
const (
	name = "linqguard"
	doc  = `linqguard detects inefficient or redundant LINQ and collection usage`
	url  = "https://pkg.go.dev/fillmore-labs.com/linqguard"
)

type (
	// Descriptor describes a rule for diagnostic registration.
	Descriptor = rules.Descriptor

	// Severity is the default severity of a rule.
	Severity = rules.Severity

	// Finding is a rule match at a span of a document.
	Finding = report.Finding

	// Edit replaces a span of a document with new text.
	Edit = report.Edit

	// FixAllResult is the outcome of [Analyzer.FixAll].
	FixAllResult = run.FixAllResult
)

// Rule severities.
const (
	Hidden  = rules.Hidden
	Info    = rules.Info
	Warning = rules.Warning
	Error   = rules.Error
)

// Analyzer runs the linqguard rules on documents supplied by a host.
//
// Flags are bound to the analyzer's configuration and must be parsed before the first
// analysis. After that, an Analyzer is safe for concurrent use.
type Analyzer struct {
	// Name is the name of the analyzer, "linqguard".
	Name string

	// Doc is a one-line description of the analyzer.
	Doc string

	// URL holds the documentation location.
	URL string

	// Flags defines the analyzer's command line flags.
	Flags flag.FlagSet

	r *runOptions
}

// New creates a new instance of the linqguard analyzer.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into hosts.
func New(opts ...Option) *Analyzer {
	r := makeRunOptions(opts)

	a := &Analyzer{
		Name: name,
		Doc:  doc,
		URL:  url,
		r:    r,
	}

	a.Flags.Init(name, flag.ContinueOnError)
	registerFlags(&a.Flags, r)

	if len(r.invalid) > 0 {
		r.run.Logger.LogAttrs(context.Background(), slog.LevelWarn, "Ignoring invalid options", r.invalid...)
	}

	return a
}

// Rules returns the descriptors of all rules, with severity overrides applied.
func (a *Analyzer) Rules() []Descriptor {
	return a.r.descriptors()
}

// Enabled returns the ids of the enabled rules.
func (a *Analyzer) Enabled() []string {
	return rules.Enabled(a.r.run.Rules)
}

// Analyze returns the findings of the enabled rules in doc, in source order.
func (a *Analyzer) Analyze(ctx context.Context, doc *host.Document) ([]Finding, error) {
	return a.r.run.Analyze(ctx, doc)
}

// AnalyzeAll analyzes documents concurrently. The findings of docs[i] are at index i.
func (a *Analyzer) AnalyzeAll(ctx context.Context, docs []*host.Document) ([][]Finding, error) {
	return a.r.run.AnalyzeAll(ctx, docs)
}

// Fix applies the fix for f and returns the edited document.
//
// When the finding does not apply to doc any more, doc is returned unmodified with false.
func (a *Analyzer) Fix(ctx context.Context, doc *host.Document, f Finding) (*host.Document, bool, error) {
	return a.r.run.Fix(ctx, doc, f)
}

// FixAll applies all findings to doc independently and merges the non-overlapping edits.
func (a *Analyzer) FixAll(ctx context.Context, doc *host.Document, findings []Finding) (FixAllResult, error) {
	return a.r.run.FixAll(ctx, doc, findings)
}

// ErrNoDocument is returned for missing documents or documents without a syntax tree.
var ErrNoDocument = run.ErrNoDocument
