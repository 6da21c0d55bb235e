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

package run

import (
	"context"
	"errors"
	"runtime"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/linqguard/host"
	"fillmore-labs.com/linqguard/internal/astutil"
	"fillmore-labs.com/linqguard/internal/config"
	"fillmore-labs.com/linqguard/internal/fix"
	"fillmore-labs.com/linqguard/internal/metrics"
	"fillmore-labs.com/linqguard/internal/report"
)

func (o *Options) engine() fix.Engine {
	if !o.Behavior.Enabled(config.ValidateFixes) {
		return fix.Engine{}
	}

	return fix.Engine{Parser: o.Parser}
}

// Fix applies the fix for one finding and returns the edited document.
//
// When the fix does not apply any more, doc is returned unmodified with false.
func (o *Options) Fix(ctx context.Context, doc *host.Document, f report.Finding) (*host.Document, bool, error) {
	return o.apply(ctx, "linqguard.Fix", doc, f, o.Metrics)
}

// Preview returns the edit the fix for one finding would make to doc. Unlike [Options.Fix]
// it records no fix outcome.
func (o *Options) Preview(ctx context.Context, doc *host.Document, f report.Finding) (report.Edit, bool, error) {
	fixed, ok, err := o.apply(ctx, "linqguard.Preview", doc, f, nil)
	if err != nil || !ok {
		return report.Edit{}, false, err
	}

	e, changed := report.Diff(doc.Text(), fixed.Text(), f.Span)

	return e, changed, nil
}

func (o *Options) apply(ctx context.Context, name string, doc *host.Document, f report.Finding,
	rec *metrics.Recorder,
) (*host.Document, bool, error) {
	if doc == nil || doc.Root == nil {
		return nil, false, ErrNoDocument
	}

	ctx, span := o.tracer().Start(ctx, name, trace.WithAttributes(
		attribute.String("document", doc.Name),
		attribute.String("rule", f.Rule),
		attribute.Int("start", f.Span.Start),
		attribute.Int("end", f.Span.End),
	))
	defer span.End()

	fixed, ok, err := o.engine().Apply(ctx, doc, f)

	switch {
	case errors.Is(err, fix.ErrRoundTrip):
		// A rewrite producing unparsable text is a bug, not a problem of the document.
		astutil.InternalError(ctx, o.logger(), doc.Name, f.Span, "Fix for %s discarded: %v", f.Rule, err)
		rec.Fix(f.Rule, metrics.Failed)

		return doc, false, nil

	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		rec.Fix(f.Rule, metrics.Failed)

		return doc, false, err

	case !ok:
		o.logger().DebugContext(ctx, "Fix skipped",
			"document", doc.Name, "rule", f.Rule, "span", f.Span.String())
		rec.Fix(f.Rule, metrics.Skipped)

		return doc, false, nil
	}

	rec.Fix(f.Rule, metrics.Applied)
	span.SetAttributes(attribute.Bool("applied", true))

	return fixed, true, nil
}

// FixAllResult is the outcome of [Options.FixAll].
type FixAllResult struct {
	// Text is the document text with all accepted edits applied.
	Text string

	// Edits are the accepted edits in ascending order.
	Edits []report.Edit

	// Applied holds the findings whose edits were accepted.
	Applied []report.Finding

	// Skipped holds the findings without a fix or with an edit overlapping an accepted one.
	Skipped []report.Finding
}

// FixAll fixes every finding independently against the same snapshot of doc and merges the
// resulting edits. Edits overlapping an earlier accepted edit are skipped.
func (o *Options) FixAll(ctx context.Context, doc *host.Document, findings []report.Finding) (FixAllResult, error) {
	if doc == nil || doc.Root == nil {
		return FixAllResult{}, ErrNoDocument
	}

	ctx, span := o.tracer().Start(ctx, "linqguard.FixAll", trace.WithAttributes(
		attribute.String("document", doc.Name),
		attribute.Int("findings", len(findings)),
	))
	defer span.End()

	text := doc.Text()

	edits := make([]report.Edit, len(findings))
	changed := make([]bool, len(findings))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, f := range findings {
		g.Go(func() error {
			fixed, ok, err := o.Fix(gctx, doc, f)
			if err != nil || !ok {
				return err
			}

			edits[i], changed[i] = report.Diff(text, fixed.Text(), f.Span)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return FixAllResult{}, err
	}

	result, err := o.merge(ctx, doc.Name, text, findings, edits, changed)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return FixAllResult{}, err
	}

	span.SetAttributes(
		attribute.Int("applied", len(result.Applied)),
		attribute.Int("skipped", len(result.Skipped)),
	)

	return result, nil
}

func (o *Options) merge(ctx context.Context, name, text string,
	findings []report.Finding, edits []report.Edit, changed []bool,
) (FixAllResult, error) {
	var (
		result  FixAllResult
		pending []report.Edit
		owners  []report.Finding
	)

	for i, f := range findings {
		if !changed[i] {
			result.Skipped = append(result.Skipped, f)

			continue
		}

		pending = append(pending, edits[i])
		owners = append(owners, f)
	}

	merged, _ := report.Merge(pending)

	for i := range pending {
		if !accepted(merged, pending, i) {
			o.logger().DebugContext(ctx, "Overlapping fix skipped",
				"document", name, "rule", owners[i].Rule, "span", owners[i].Span.String())
			o.Metrics.Fix(owners[i].Rule, metrics.Conflict)
			result.Skipped = append(result.Skipped, owners[i])

			continue
		}

		result.Applied = append(result.Applied, owners[i])
	}

	fixed, err := report.Apply(text, merged)
	if err != nil {
		return FixAllResult{}, err
	}

	result.Text, result.Edits = fixed, merged

	return result, nil
}

// accepted reports whether pending[i] was merged. Merged edits are distinct and equal
// pending edits keep their input order, so only the first of equal edits can be merged.
func accepted(merged, pending []report.Edit, i int) bool {
	e := pending[i]

	if slices.Contains(pending[:i], e) {
		return false
	}

	return slices.Contains(merged, e)
}
