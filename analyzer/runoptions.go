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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/linqguard/internal/astutil"
	"fillmore-labs.com/linqguard/internal/rules"
	"fillmore-labs.com/linqguard/internal/run"
)

// runOptions represent configuration options for a linqguard [Analyzer].
type runOptions struct {
	// run holds the options of the analysis and fix passes.
	run *run.Options

	// patterns are the file name patterns of generated documents, nil for the defaults.
	patterns []string

	// severities override the default severity of rules by id.
	severities map[string]rules.Severity

	// invalid collects rejected option values, logged when the analyzer is created.
	invalid []slog.Attr
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	if r.patterns != nil {
		generated, err := astutil.NewGeneratedMatcher(r.patterns...)
		if err != nil {
			r.invalid = append(r.invalid, slog.String("generated-patterns", err.Error()))
		} else {
			r.run.Generated = generated
		}
	}

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		run:        run.DefaultOptions(),
		severities: make(map[string]rules.Severity),
	}
}

// descriptors returns the rule descriptors with severity overrides applied.
func (r *runOptions) descriptors() []Descriptor {
	all := rules.All()

	ds := make([]Descriptor, 0, len(all))
	for _, d := range all {
		if s, ok := r.severities[d.ID]; ok {
			d.Severity = s
		}

		ds = append(ds, d)
	}

	return ds
}
