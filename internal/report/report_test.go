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

package report_test

import (
	"bytes"
	"errors"
	"go/token"
	"reflect"
	"testing"

	. "fillmore-labs.com/linqguard/internal/report"
	"fillmore-labs.com/linqguard/syntax"
)

func TestCodec(t *testing.T) {
	t.Parallel()

	f := Finding{
		Rule:    "LG0003",
		Span:    syntax.Span{Start: 12, End: 34},
		Args:    []string{"numbers.Any()", "0"},
		Related: []syntax.Span{{Start: 12, End: 19}},
	}

	data, err := Marshal(f)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(got, f) {
		t.Errorf("Got %+v, want %+v", got, f)
	}
}

func TestCodecBatch(t *testing.T) {
	t.Parallel()

	findings := []Finding{
		{Rule: "LG0001", Span: syntax.Span{Start: 0, End: 10}},
		{Rule: "LG0008", Span: syntax.Span{Start: 40, End: 45}, Args: []string{"Items"}},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, findings); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if !reflect.DeepEqual(got, findings) {
		t.Errorf("Got %+v, want %+v", got, findings)
	}
}

func TestCodecInvalidSpan(t *testing.T) {
	t.Parallel()

	_, err := Marshal(Finding{Rule: "LG0001", Span: syntax.Span{Start: syntax.NoPos, End: 3}})
	if !errors.Is(err, ErrSpanRange) {
		t.Errorf("Got error %v, want %v", err, ErrSpanRange)
	}
}

var anywhere = syntax.Span{Start: syntax.NoPos, End: syntax.NoPos}

func TestDiff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		before, after string
		want          Edit
	}{
		{"replace", "a.Count() > 0;", "a.Any();", Edit{Span: syntax.Span{Start: 2, End: 13}, NewText: "Any()"}},
		{"insert", "ab", "axb", Edit{Span: syntax.Span{Start: 1, End: 1}, NewText: "x"}},
		{"delete", "axxb", "ab", Edit{Span: syntax.Span{Start: 1, End: 3}}},
		{"repeated", "aaa", "aa", Edit{Span: syntax.Span{Start: 2, End: 3}}},
		{"rune", "xä", "xö", Edit{Span: syntax.Span{Start: 1, End: 3}, NewText: "ö"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Diff(tt.before, tt.after, anywhere)
			if !ok {
				t.Fatal("Expected an edit")
			}

			if got != tt.want {
				t.Errorf("Got %+v, want %+v", got, tt.want)
			}

			if applied, err := Apply(tt.before, []Edit{got}); err != nil || applied != tt.after {
				t.Errorf("Got %q (%v), want %q", applied, err, tt.after)
			}
		})
	}

	if _, ok := Diff("same", "same", anywhere); ok {
		t.Error("Expected no edit for equal texts")
	}
}

func TestDiffSpan(t *testing.T) {
	t.Parallel()

	const (
		before = "n.Sel.Sel.To"
		after  = "n.Sel.To"
	)

	first, ok := Diff(before, after, syntax.Span{Start: 2, End: 5})
	if !ok {
		t.Fatal("Expected an edit")
	}

	second, ok := Diff(before, after, syntax.Span{Start: 6, End: 9})
	if !ok {
		t.Fatal("Expected an edit")
	}

	if want := (Edit{Span: syntax.Span{Start: 2, End: 6}}); first != want {
		t.Errorf("Got first %+v, want %+v", first, want)
	}

	if want := (Edit{Span: syntax.Span{Start: 6, End: 10}}); second != want {
		t.Errorf("Got second %+v, want %+v", second, want)
	}

	merged, skipped := Merge([]Edit{first, second})
	if len(skipped) > 0 {
		t.Fatalf("Got skipped edits %+v", skipped)
	}

	if got, err := Apply(before, merged); err != nil || got != "n.To" {
		t.Errorf("Got %q (%v), want %q", got, err, "n.To")
	}

	if got, _ := Diff(before, after, anywhere); got.Span.Start != 6 {
		t.Errorf("Got %+v for an invalid span, want the minimal edit", got)
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	edits := []Edit{
		{Span: syntax.Span{Start: 10, End: 20}, NewText: "b"},
		{Span: syntax.Span{Start: 0, End: 5}, NewText: "a"},
		{Span: syntax.Span{Start: 15, End: 25}, NewText: "c"},
		{Span: syntax.Span{Start: 20, End: 20}, NewText: "d"},
	}

	merged, skipped := Merge(edits)

	wantMerged := []Edit{edits[1], edits[0], edits[3]}
	if !reflect.DeepEqual(merged, wantMerged) {
		t.Errorf("Got merged %+v, want %+v", merged, wantMerged)
	}

	wantSkipped := []Edit{edits[2]}
	if !reflect.DeepEqual(skipped, wantSkipped) {
		t.Errorf("Got skipped %+v, want %+v", skipped, wantSkipped)
	}
}

func TestApplyOutOfRange(t *testing.T) {
	t.Parallel()

	_, err := Apply("short", []Edit{{Span: syntax.Span{Start: 3, End: 9}}})
	if !errors.Is(err, ErrSpanRange) {
		t.Errorf("Got error %v, want %v", err, ErrSpanRange)
	}
}

func TestDiagnostic(t *testing.T) {
	t.Parallel()

	const text = "if (numbers.Count() > 0) {}"

	fset := token.NewFileSet()
	file := fset.AddFile("a.cs", -1, len(text))

	f := Finding{Rule: "LG0003", Span: syntax.Span{Start: 4, End: 23}, Args: []string{"Any()", "0"}}
	fix := Fix{Message: "Use Any()", Edits: []Edit{{Span: f.Span, NewText: "numbers.Any()"}}}

	d, err := Diagnostic(file, f, fix)
	if err != nil {
		t.Fatalf("Diagnostic failed: %v", err)
	}

	if got, want := d.Message, "Use Any() instead of comparing Count() with 0 (LG0003)"; got != want {
		t.Errorf("Got message %q, want %q", got, want)
	}

	if got, want := d.Category, "count-any"; got != want {
		t.Errorf("Got category %q, want %q", got, want)
	}

	if got, want := file.Offset(d.Pos), 4; got != want {
		t.Errorf("Got offset %d, want %d", got, want)
	}

	if len(d.SuggestedFixes) != 1 || len(d.SuggestedFixes[0].TextEdits) != 1 {
		t.Fatalf("Got fixes %+v, want one edit", d.SuggestedFixes)
	}

	if got, want := string(d.SuggestedFixes[0].TextEdits[0].NewText), "numbers.Any()"; got != want {
		t.Errorf("Got new text %q, want %q", got, want)
	}

	f.Span.End = len(text) + 1
	if _, err := Diagnostic(file, f); !errors.Is(err, ErrSpanRange) {
		t.Errorf("Got error %v, want %v", err, ErrSpanRange)
	}
}

func TestKey(t *testing.T) {
	t.Parallel()

	f := Finding{Rule: "LG0002", Span: syntax.Span{Start: 1, End: 2}}
	g := f
	g.Span.End = 3

	if Key("a.cs", f) != Key("a.cs", f) {
		t.Error("Expected stable keys")
	}

	if Key("a.cs", f) == Key("a.cs", g) || Key("a.cs", f) == Key("b.cs", f) {
		t.Error("Expected distinct keys")
	}

	if got := Key("a.cs", f).Version(); got != 5 {
		t.Errorf("Got version %d, want 5", got)
	}
}
