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

package syntax_test

import (
	"testing"

	. "fillmore-labs.com/linqguard/syntax"
)

func TestSpan(t *testing.T) {
	t.Parallel()

	s := Span{Start: 2, End: 6}

	tests := []struct {
		name     string
		other    Span
		contains bool
		overlaps bool
	}{
		{"same", s, true, true},
		{"inner", Span{Start: 3, End: 5}, true, true},
		{"left", Span{Start: 0, End: 3}, false, true},
		{"adjacent", Span{Start: 6, End: 8}, false, false},
		{"empty inside", Span{Start: 4, End: 4}, true, false},
		{"disjoint", Span{Start: 10, End: 12}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := s.Contains(tt.other); got != tt.contains {
				t.Errorf("Got contains %t, want %t", got, tt.contains)
			}

			if got := s.Overlaps(tt.other); got != tt.overlaps {
				t.Errorf("Got overlaps %t, want %t", got, tt.overlaps)
			}
		})
	}

	if got, want := s.String(), "[2,6)"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if s.Len() != 4 {
		t.Errorf("Got length %d, want 4", s.Len())
	}

	if (Span{Start: NoPos, End: 3}).Valid() || (Span{Start: 5, End: 3}).Valid() {
		t.Error("Expected invalid spans")
	}
}

func TestToken(t *testing.T) {
	t.Parallel()

	tok := SpaceAfter(Punct(","))

	if tok.Pos != NoPos || tok.End() != NoPos {
		t.Errorf("Synthesized token has position %d", tok.Pos)
	}

	if got, want := tok.FullText(), ", "; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	moved := tok.WithLeading(TriviaList{Newline})
	if got, want := moved.FullText(), "\n, "; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if tok.Leading != nil {
		t.Error("WithLeading modified the original token")
	}

	if !tok.Is(",") || (*Token)(nil).Is(",") {
		t.Error("Wrong Is result")
	}

	if got, want := InvocationExpression.String(), "InvocationExpression"; got != want {
		t.Errorf("Got kind %q, want %q", got, want)
	}
}
