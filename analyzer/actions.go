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
	"fmt"
	"go/token"
	"io"

	"github.com/google/uuid"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/linqguard/host"
	"fillmore-labs.com/linqguard/internal/astutil"
	"fillmore-labs.com/linqguard/internal/config"
	"fillmore-labs.com/linqguard/internal/fix"
	"fillmore-labs.com/linqguard/internal/report"
)

// Action is a code fix offered for one finding.
type Action struct {
	// Key identifies the action. It is stable across runs for the same document, rule and span.
	Key uuid.UUID

	// Title is the user-visible action title.
	Title string

	// Rule is the id of the fixed rule.
	Rule string

	a       *Analyzer
	doc     *host.Document
	finding Finding
}

// Apply returns the edited document. It returns the original document when the fix no
// longer applies.
func (x Action) Apply(ctx context.Context) (*host.Document, error) {
	fixed, _, err := x.a.Fix(ctx, x.doc, x.finding)

	return fixed, err
}

// Payload returns the finding of the action in wire format, for hosts that keep findings
// between the diagnostic and fix phases.
func (x Action) Payload() ([]byte, error) {
	return report.Marshal(x.finding)
}

// Actions returns the fix actions for finding f in doc. Rules without a fix have none.
func (a *Analyzer) Actions(_ context.Context, doc *host.Document, f Finding) ([]Action, error) {
	if doc == nil {
		return nil, fmt.Errorf("actions for %s: %w", f.Rule, ErrNoDocument)
	}

	d, ok := a.lookup(f.Rule)
	if !ok || !d.Fixable {
		return nil, nil
	}

	title, ok := fix.Title(f.Rule)
	if !ok {
		return nil, nil
	}

	return []Action{{
		Key:     report.Key(doc.Name, f),
		Title:   title,
		Rule:    f.Rule,
		a:       a,
		doc:     doc,
		finding: f,
	}}, nil
}

// ActionsFor returns the fix actions for a finding in wire format, see [Action.Payload].
func (a *Analyzer) ActionsFor(ctx context.Context, doc *host.Document, payload []byte) ([]Action, error) {
	f, err := report.Unmarshal(payload)
	if err != nil {
		return nil, err
	}

	return a.Actions(ctx, doc, f)
}

func (a *Analyzer) lookup(id string) (Descriptor, bool) {
	for _, d := range a.Rules() {
		if d.ID == id {
			return d, true
		}
	}

	return Descriptor{}, false
}

// Diagnostic converts finding f in doc to an [analysis.Diagnostic] located in file.
// When the rule is fixable and the fix applies, the diagnostic carries it as a suggested fix.
// Offering a fix does not count as applying it.
//
// file must have been added to a [token.FileSet] with the size of the document text.
func (a *Analyzer) Diagnostic(ctx context.Context, file *token.File, doc *host.Document, f Finding) (analysis.Diagnostic, error) {
	var fixes []report.Fix

	actions, err := a.Actions(ctx, doc, f)
	if err != nil {
		return analysis.Diagnostic{}, err
	}

	for _, action := range actions {
		e, ok, err := a.r.run.Preview(ctx, doc, f)
		if err != nil {
			return analysis.Diagnostic{}, err
		}

		if ok {
			fixes = append(fixes, report.Fix{Message: action.Title, Edits: []Edit{e}})
		}
	}

	return report.Diagnostic(file, f, fixes...)
}

// Diagnostics analyzes doc and returns its diagnostics, adding the document to fset.
func (a *Analyzer) Diagnostics(ctx context.Context, fset *token.FileSet, doc *host.Document) ([]analysis.Diagnostic, error) {
	cf := astutil.NewCurrentFile(fset, doc, a.r.run.Generated)
	if !cf.Valid() {
		return nil, ErrNoDocument
	}

	if cf.Generated() && !a.r.run.Behavior.Enabled(config.IncludeGenerated) {
		return nil, nil
	}

	findings, err := a.Analyze(ctx, doc)
	if err != nil {
		return nil, err
	}

	diagnostics := make([]analysis.Diagnostic, 0, len(findings))

	for _, f := range findings {
		d, err := a.Diagnostic(ctx, cf.Handle(), doc, f)
		if err != nil {
			return nil, err
		}

		diagnostics = append(diagnostics, d)
	}

	return diagnostics, nil
}

// EncodeFindings writes findings in wire format.
func EncodeFindings(w io.Writer, findings []Finding) error {
	return report.Encode(w, findings)
}

// DecodeFindings reads findings written by [EncodeFindings].
func DecodeFindings(r io.Reader) ([]Finding, error) {
	return report.Decode(r)
}
