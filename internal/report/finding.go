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

// Package report holds findings and their conversion into diagnostics and text edits.
package report

import (
	"errors"

	"fillmore-labs.com/linqguard/syntax"
)

// ErrSpanRange is returned when a span does not fit into the document it is applied to.
var ErrSpanRange = errors.New("span out of range")

// Finding is one reported instance of a rule.
//
// The span is the only handle that connects a finding to its document, so findings survive
// reparsing and can be serialized between the analysis and the fix phase.
type Finding struct {
	Rule    string        // rule id
	Span    syntax.Span   // reported location
	Args    []string      // message arguments
	Related []syntax.Span // optional secondary locations
}

// New creates a finding for the rule with the given id at the span of n.
func New(rule string, n syntax.Node, args ...string) Finding {
	return Finding{Rule: rule, Span: syntax.SpanOf(n), Args: args}
}

// AtToken creates a finding for the rule with the given id at the span of tok.
func AtToken(rule string, tok *syntax.Token, args ...string) Finding {
	return Finding{Rule: rule, Span: tok.Span(), Args: args}
}

// WithRelated returns f with an additional related span.
func (f Finding) WithRelated(span syntax.Span) Finding {
	f.Related = append(f.Related[:len(f.Related):len(f.Related)], span)

	return f
}
