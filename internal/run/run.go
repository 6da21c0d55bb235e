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

// Package run drives linqguard over documents: it walks syntax trees, dispatches nodes to
// the matchers of the enabled rules and applies fixes, single or in batches.
package run

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/linqguard/host"
	"fillmore-labs.com/linqguard/internal/astutil"
	"fillmore-labs.com/linqguard/internal/config"
	"fillmore-labs.com/linqguard/internal/report"
	"fillmore-labs.com/linqguard/syntax"
)

// ErrNoDocument is returned for missing documents or documents without a syntax tree.
var ErrNoDocument = errors.New("no document")

const instrumentation = "fillmore-labs.com/linqguard"

func (o *Options) tracer() trace.Tracer {
	tp := o.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return tp.Tracer(instrumentation)
}

// Analyze returns the findings of the enabled rules in doc, in source order.
//
// Documents without a semantic model and skipped generated documents have no findings.
func (o *Options) Analyze(ctx context.Context, doc *host.Document) ([]report.Finding, error) {
	if doc == nil || doc.Root == nil {
		return nil, ErrNoDocument
	}

	ctx, span := o.tracer().Start(ctx, "linqguard.Analyze", trace.WithAttributes(
		attribute.String("document", doc.Name),
	))
	defer span.End()

	defer o.Metrics.Observe(time.Now())

	if doc.Model == nil {
		o.logger().DebugContext(ctx, "Skipping document without semantic model", "document", doc.Name)

		return nil, nil
	}

	if !o.Behavior.Enabled(config.IncludeGenerated) && o.generated(doc) {
		span.SetAttributes(attribute.Bool("generated", true))

		return nil, nil
	}

	findings, err := o.walk(ctx, doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	span.SetAttributes(attribute.Int("findings", len(findings)))

	return findings, nil
}

func (o *Options) generated(doc *host.Document) bool {
	return o.Generated.MatchName(doc.Name) || astutil.HasGeneratedHeader(doc.Root)
}

func (o *Options) walk(ctx context.Context, doc *host.Document) ([]report.Finding, error) {
	dispatch := o.dispatch()

	var (
		findings []report.Finding
		err      error
	)

	syntax.Inspect(doc.Root, func(c syntax.Cursor) bool {
		if err = ctx.Err(); err != nil {
			return false
		}

		for _, m := range dispatch[c.Node().Kind()] {
			f, ok, merr := m.Match(ctx, doc.Model, c)
			if merr != nil {
				err = fmt.Errorf("rule %s: %w", m.Rule, merr)

				return false
			}

			if !ok {
				continue
			}

			if !f.Span.Valid() {
				astutil.InternalError(ctx, o.logger(), doc.Name, f.Span, "Rule %s reported invalid span", m.Rule)

				continue
			}

			o.Metrics.Finding(f.Rule)
			findings = append(findings, f)
		}

		return true
	})

	if err != nil {
		return nil, err
	}

	// Findings of chained calls start at the member name, after those of their receivers.
	slices.SortStableFunc(findings, func(a, b report.Finding) int {
		return cmp.Compare(a.Span.Start, b.Span.Start)
	})

	return findings, nil
}

// AnalyzeAll analyzes documents concurrently. The findings of docs[i] are at index i.
func (o *Options) AnalyzeAll(ctx context.Context, docs []*host.Document) ([][]report.Finding, error) {
	ctx, span := o.tracer().Start(ctx, "linqguard.AnalyzeAll", trace.WithAttributes(
		attribute.Int("documents", len(docs)),
	))
	defer span.End()

	results := make([][]report.Finding, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, doc := range docs {
		g.Go(func() error {
			findings, err := o.Analyze(ctx, doc)
			if err != nil {
				if doc != nil {
					return fmt.Errorf("%s: %w", doc.Name, err)
				}

				return fmt.Errorf("document %d: %w", i, err)
			}

			results[i] = findings

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	return results, nil
}
