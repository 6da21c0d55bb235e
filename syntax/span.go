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

package syntax

import "fmt"

// Span is a half-open range [Start, End) of document offsets.
type Span struct {
	Start int `msgpack:"s"`
	End   int `msgpack:"e"`
}

// Len returns the length of the span.
func (s Span) Len() int { return s.End - s.Start }

// Valid reports whether both ends are known.
func (s Span) Valid() bool { return s.Start != NoPos && s.End != NoPos && s.Start <= s.End }

// Contains reports whether o lies within s.
func (s Span) Contains(o Span) bool { return s.Start <= o.Start && o.End <= s.End }

// Overlaps reports whether s and o share at least one offset.
func (s Span) Overlaps(o Span) bool { return s.Start < o.End && o.Start < s.End }

func (s Span) String() string { return fmt.Sprintf("[%d,%d)", s.Start, s.End) }

// SpanOf returns the text span of a node, excluding its edge trivia.
// The result is invalid for nodes containing synthesized edge tokens.
func SpanOf(n Node) Span {
	first, last := FirstToken(n), LastToken(n)
	if first == nil || last == nil {
		return Span{Start: NoPos, End: NoPos}
	}

	return Span{Start: first.Pos, End: last.End()}
}
