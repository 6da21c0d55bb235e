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

package astutil_test

import (
	"log/slog"
	"strings"
	"testing"

	. "fillmore-labs.com/linqguard/internal/astutil"
	"fillmore-labs.com/linqguard/syntax"
)

func TestInternalError(t *testing.T) {
	t.Parallel()

	var buf strings.Builder

	logger := slog.New(slog.NewTextHandler(&buf, nil))

	InternalError(t.Context(), logger, "C.cs", syntax.Span{Start: 3, End: 7}, "Unexpected node %s", "x")

	for _, want := range []string{"level=WARN", `msg="Internal Error: Unexpected node x"`, "document=C.cs", "start=3", "end=7"} {
		if got := buf.String(); !strings.Contains(got, want) {
			t.Errorf("Got %q, want %q", got, want)
		}
	}
}
