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

// Package fix rewrites documents for linqguard findings.
//
// A fix only trusts the span of its finding. It locates the node the span points at, checks
// that the node still has the reported shape and replaces it in a copy of the tree. Fixes for
// different findings never depend on each other.
package fix

import (
	"context"
	"errors"
	"fmt"

	"fillmore-labs.com/linqguard/host"
	"fillmore-labs.com/linqguard/internal/align"
	"fillmore-labs.com/linqguard/internal/match"
	"fillmore-labs.com/linqguard/internal/report"
	"fillmore-labs.com/linqguard/syntax"
)

var (
	// ErrNotLocated is returned by [Locate] when no node of the expected kind matches the span.
	ErrNotLocated = errors.New("finding not located")

	// ErrRoundTrip is returned when a fixed document does not reparse to the same text.
	ErrRoundTrip = errors.New("fixed document does not round-trip")

	// ErrUnknownRule is returned for findings of rules without a fix.
	ErrUnknownRule = errors.New("no fix for rule")
)

// rewriteFunc synthesizes the replacement for the located node.
// It returns false when the shape does not allow a fix.
type rewriteFunc func(ctx context.Context, model host.Model, c syntax.Cursor) (old, replacement syntax.Node, ok bool, err error)

type synthesizer struct {
	title   string
	kind    syntax.Kind
	locate  func(ctx context.Context, root syntax.Node, span syntax.Span) (syntax.Cursor, bool, error)
	rewrite rewriteFunc
	matcher match.Func
}

var synthesizers = func() map[string]synthesizer {
	s := map[string]synthesizer{
		match.ToListForEach:             {title: "Replace with foreach loop", kind: syntax.InvocationExpression, rewrite: rewriteToListForEach},
		match.IdentitySelect:            {title: "Remove Select", kind: syntax.InvocationExpression, rewrite: rewriteIdentitySelect},
		match.CountAny:                  {title: "Use Any()", kind: syntax.BinaryExpression, rewrite: rewriteCountAny},
		match.MaterializedCountProperty: {title: "Use Any()", kind: syntax.BinaryExpression, rewrite: rewriteMaterializedCountProperty},
		match.MaterializedCountCall:     {title: "Use Any()", kind: syntax.BinaryExpression, rewrite: rewriteMaterializedCountCall},
		match.CoalesceForEach:           {title: "Check for null", kind: syntax.ForEachStatement, rewrite: rewriteCoalesceForEach},
		match.WhereCount:                {title: "Combine into Count(predicate)", kind: syntax.InvocationExpression, rewrite: rewriteWhereCount},
		match.StaticPropertyAllocation:  {title: "Use property initializer", kind: syntax.PropertyDeclaration, locate: locateProperty, rewrite: rewriteStaticProperty},
		match.RedundantMaterialization:  {title: "Remove materialization", kind: syntax.InvocationExpression, rewrite: rewriteRedundantMaterialization},
	}

	for _, m := range match.All() {
		syn := s[m.Rule]
		syn.matcher = m.Match
		s[m.Rule] = syn
	}

	return s
}()

// Title returns the action title of the fix for rule, or false when the rule has no fix.
func Title(rule string) (string, bool) {
	s, ok := synthesizers[rule]

	return s.title, ok
}

// Engine applies fixes.
//
// The zero value applies fixes without validation. An Engine is safe for concurrent use.
type Engine struct {
	// Parser, when set, reparses every fixed document and rejects fixes that do not round-trip.
	Parser host.Parser
}

// Locate finds the node f was reported at.
func Locate(ctx context.Context, root syntax.Node, f report.Finding) (syntax.Cursor, error) {
	s, ok := synthesizers[f.Rule]
	if !ok {
		return syntax.Cursor{}, fmt.Errorf("%w %s", ErrUnknownRule, f.Rule)
	}

	return s.find(ctx, root, f.Span)
}

func (s synthesizer) find(ctx context.Context, root syntax.Node, span syntax.Span) (syntax.Cursor, error) {
	locate := s.locate
	if locate == nil {
		locate = func(ctx context.Context, root syntax.Node, span syntax.Span) (syntax.Cursor, bool, error) {
			return syntax.Locate(ctx, root, span, s.kind)
		}
	}

	c, ok, err := locate(ctx, root, span)
	if err != nil {
		return syntax.Cursor{}, err
	}

	if !ok {
		return syntax.Cursor{}, fmt.Errorf("%w at %v", ErrNotLocated, span)
	}

	return c, nil
}

// Apply returns doc rewritten for f and whether a fix was made.
//
// When the node can not be located or no longer has the reported shape, doc is returned
// unmodified without an error.
func (e Engine) Apply(ctx context.Context, doc *host.Document, f report.Finding) (*host.Document, bool, error) {
	s, ok := synthesizers[f.Rule]
	if !ok {
		return doc, false, fmt.Errorf("%w %s", ErrUnknownRule, f.Rule)
	}

	if doc.Model == nil {
		return doc, false, nil
	}

	c, err := s.find(ctx, doc.Root, f.Span)
	if errors.Is(err, ErrNotLocated) {
		return doc, false, nil
	}

	if err != nil {
		return doc, false, err
	}

	// The span alone could point at a different node of the same kind.
	current, ok, err := s.matcher(ctx, doc.Model, c)
	if err != nil || !ok || current.Span != f.Span {
		return doc, false, err
	}

	old, replacement, ok, err := s.rewrite(ctx, doc.Model, c)
	if err != nil || !ok {
		return doc, false, err
	}

	root := syntax.Replace(doc.Root, old, replacement)

	if root, err = align.Around(ctx, root, replacement); err != nil {
		return doc, false, err
	}

	fixed := doc.WithRoot(root)

	if err := e.validate(fixed); err != nil {
		return doc, false, err
	}

	return fixed, true, nil
}

func (e Engine) validate(doc *host.Document) error {
	if e.Parser == nil {
		return nil
	}

	text := doc.Text()

	root, err := e.Parser.Parse(doc.Name, text)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRoundTrip, err)
	}

	if syntax.Text(root) != text {
		return fmt.Errorf("%w: %s", ErrRoundTrip, doc.Name)
	}

	return nil
}
