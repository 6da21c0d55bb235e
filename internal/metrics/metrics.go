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

// Package metrics records analysis and fix counters on a Prometheus registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fix outcomes.
const (
	Applied  = "applied"
	Skipped  = "skipped"
	Conflict = "conflict"
	Failed   = "failed"
)

// Recorder holds the collectors. A nil *Recorder records nothing.
type Recorder struct {
	findings *prometheus.CounterVec
	fixes    *prometheus.CounterVec
	duration prometheus.Histogram
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		findings: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "linqguard_findings_total",
			Help: "Total number of findings reported, by rule.",
		}, []string{"rule"}),

		fixes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "linqguard_fixes_total",
			Help: "Total number of fix requests, by rule and outcome.",
		}, []string{"rule", "outcome"}),

		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "linqguard_analysis_seconds",
			Help:    "Time spent analyzing a document.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Finding counts a finding of rule.
func (r *Recorder) Finding(rule string) {
	if r == nil {
		return
	}

	r.findings.WithLabelValues(rule).Inc()
}

// Fix counts a fix request of rule with the given outcome.
func (r *Recorder) Fix(rule, outcome string) {
	if r == nil {
		return
	}

	r.fixes.WithLabelValues(rule, outcome).Inc()
}

// Observe records the duration of one document analysis started at start.
func (r *Recorder) Observe(start time.Time) {
	if r == nil {
		return
	}

	r.duration.Observe(time.Since(start).Seconds())
}
