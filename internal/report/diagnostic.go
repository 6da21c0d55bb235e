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

package report

import (
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/linqguard/internal/rules"
	"fillmore-labs.com/linqguard/syntax"
)

// Fix is a named set of edits resolving one finding.
type Fix struct {
	Message string
	Edits   []Edit
}

// Diagnostic converts a finding into an analysis diagnostic located in file.
//
// file must have been added to a [token.FileSet] with the size of the analyzed document.
func Diagnostic(file *token.File, f Finding, fixes ...Fix) (analysis.Diagnostic, error) {
	d, ok := rules.Lookup(f.Rule)
	if !ok {
		return analysis.Diagnostic{}, fmt.Errorf("unknown rule %q", f.Rule)
	}

	pos, end, err := positions(file, f.Span)
	if err != nil {
		return analysis.Diagnostic{}, err
	}

	diagnostic := analysis.Diagnostic{
		Pos:      pos,
		End:      end,
		Category: d.Name,
		Message:  d.Format(f.Args),
	}

	for _, r := range f.Related {
		rpos, rend, err := positions(file, r)
		if err != nil {
			return analysis.Diagnostic{}, err
		}

		diagnostic.Related = append(diagnostic.Related, analysis.RelatedInformation{Pos: rpos, End: rend, Message: d.Title})
	}

	for _, fix := range fixes {
		sf := analysis.SuggestedFix{Message: fix.Message}

		for _, e := range fix.Edits {
			epos, eend, err := positions(file, e.Span)
			if err != nil {
				return analysis.Diagnostic{}, err
			}

			sf.TextEdits = append(sf.TextEdits, analysis.TextEdit{Pos: epos, End: eend, NewText: []byte(e.NewText)})
		}

		diagnostic.SuggestedFixes = append(diagnostic.SuggestedFixes, sf)
	}

	return diagnostic, nil
}

func positions(file *token.File, s syntax.Span) (pos, end token.Pos, err error) {
	if !s.Valid() || s.End > file.Size() {
		return token.NoPos, token.NoPos, fmt.Errorf("%w: %v in %s", ErrSpanRange, s, file.Name())
	}

	return file.Pos(s.Start), file.Pos(s.End), nil
}
