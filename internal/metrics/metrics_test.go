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

package metrics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	. "fillmore-labs.com/linqguard/internal/metrics"
)

func TestRecorder(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewPedanticRegistry()
	r := New(reg)

	r.Finding("LG0003")
	r.Finding("LG0003")
	r.Fix("LG0003", Applied)
	r.Fix("LG0007", Conflict)
	r.Observe(time.Now())

	const want = `
# HELP linqguard_findings_total Total number of findings reported, by rule.
# TYPE linqguard_findings_total counter
linqguard_findings_total{rule="LG0003"} 2
# HELP linqguard_fixes_total Total number of fix requests, by rule and outcome.
# TYPE linqguard_fixes_total counter
linqguard_fixes_total{outcome="applied",rule="LG0003"} 1
linqguard_fixes_total{outcome="conflict",rule="LG0007"} 1
`

	if err := testutil.GatherAndCompare(reg, strings.NewReader(want),
		"linqguard_findings_total", "linqguard_fixes_total"); err != nil {
		t.Error(err)
	}

	got, err := testutil.GatherAndCount(reg, "linqguard_analysis_seconds")
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}

	if got != 1 {
		t.Errorf("Got %d histograms, want 1", got)
	}
}

func TestNilRecorder(t *testing.T) {
	t.Parallel()

	var r *Recorder

	r.Finding("LG0001")
	r.Fix("LG0001", Failed)
	r.Observe(time.Now())
}
