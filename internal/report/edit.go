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
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"fillmore-labs.com/linqguard/syntax"
)

// Edit replaces the text at Span with NewText.
type Edit struct {
	Span    syntax.Span
	NewText string
}

// Diff returns the edit transforming before into after. It covers span of before, so where
// the changed text repeats the edit stays at span. With an invalid span the edit is minimal.
// Diff returns false when both texts are equal.
func Diff(before, after string, span syntax.Span) (Edit, bool) {
	if before == after {
		return Edit{}, false
	}

	if !span.Valid() || span.End > len(before) {
		return diff(before, after, len(before), len(before)), true
	}

	return diff(before, after, span.Start, len(before)-span.End), true
}

// diff trims at most maxPrefix common leading and maxSuffix common trailing bytes.
func diff(before, after string, maxPrefix, maxSuffix int) Edit {
	prefix := 0
	for prefix < maxPrefix && prefix < len(before) && prefix < len(after) && before[prefix] == after[prefix] {
		prefix++
	}

	for prefix > 0 && prefix < len(before) && !utf8.RuneStart(before[prefix]) {
		prefix--
	}

	suffix := 0
	for suffix < maxSuffix && suffix < len(before)-prefix && suffix < len(after)-prefix &&
		before[len(before)-1-suffix] == after[len(after)-1-suffix] {
		suffix++
	}

	for suffix > 0 && !utf8.RuneStart(before[len(before)-suffix]) {
		suffix--
	}

	return Edit{
		Span:    syntax.Span{Start: prefix, End: len(before) - suffix},
		NewText: after[prefix : len(after)-suffix],
	}
}

func (e Edit) conflicts(o Edit) bool {
	if e.Span.Overlaps(o.Span) {
		return true
	}

	// Two insertions at the same offset have no defined order.
	return e.Span.Start == o.Span.Start && (e.Span.Len() == 0 || o.Span.Len() == 0)
}

// Merge orders edits by position and drops every edit that conflicts with an earlier one.
// It returns the accepted edits in ascending order and the skipped edits in input order.
func Merge(edits []Edit) (merged, skipped []Edit) {
	order := make([]int, len(edits))
	for i := range order {
		order[i] = i
	}

	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Or(
			cmp.Compare(edits[a].Span.Start, edits[b].Span.Start),
			cmp.Compare(edits[a].Span.End, edits[b].Span.End),
		)
	})

	skip := make([]bool, len(edits))

	for _, i := range order {
		if len(merged) > 0 && merged[len(merged)-1].conflicts(edits[i]) {
			skip[i] = true

			continue
		}

		merged = append(merged, edits[i])
	}

	for i, e := range edits {
		if skip[i] {
			skipped = append(skipped, e)
		}
	}

	return merged, skipped
}

// Apply applies ordered, non-overlapping edits to text.
func Apply(text string, edits []Edit) (string, error) {
	var b strings.Builder

	b.Grow(len(text))

	last := 0

	for _, e := range edits {
		if !e.Span.Valid() || e.Span.Start < last || e.Span.End > len(text) {
			return "", fmt.Errorf("%w: edit at %v in text of length %d", ErrSpanRange, e.Span, len(text))
		}

		b.WriteString(text[last:e.Span.Start]) // ignore error
		b.WriteString(e.NewText)               // ignore error
		last = e.Span.End
	}

	b.WriteString(text[last:]) // ignore error

	return b.String(), nil
}
