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

package run

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"fillmore-labs.com/linqguard/host"
	"fillmore-labs.com/linqguard/internal/astutil"
	"fillmore-labs.com/linqguard/internal/config"
	"fillmore-labs.com/linqguard/internal/match"
	"fillmore-labs.com/linqguard/internal/metrics"
	"fillmore-labs.com/linqguard/internal/rules"
	"fillmore-labs.com/linqguard/syntax"
)

// Options represent configuration options for a linqguard run.
type Options struct {
	// Rules represents the rules to be enabled.
	Rules config.BitMask[config.Rule]

	// Behavior holds behavioral options.
	Behavior config.BitMask[config.Config]

	// Generated recognizes generated documents by name.
	Generated astutil.GeneratedMatcher

	// Parser reparses fixed documents when [config.ValidateFixes] is enabled.
	Parser host.Parser

	// Logger receives internal errors and skipped fixes.
	Logger *slog.Logger

	// Metrics records findings and fixes. May be nil.
	Metrics *metrics.Recorder

	// TracerProvider creates the spans of a run. Nil uses the global provider.
	TracerProvider trace.TracerProvider
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	generated, _ := astutil.NewGeneratedMatcher(astutil.DefaultGeneratedPatterns...)

	return &Options{
		Rules:     config.NewBitMask(config.DefaultRules),
		Generated: generated,
		Logger:    slog.Default(),
	}
}

// dispatch returns the matchers of the enabled rules by the node kinds they inspect.
func (o *Options) dispatch() map[syntax.Kind][]match.Matcher {
	byKind := make(map[syntax.Kind][]match.Matcher)

	for _, m := range match.All() {
		if d, ok := rules.Lookup(m.Rule); !ok || !o.Rules.Enabled(d.Rule) {
			continue
		}

		for _, k := range m.Kinds {
			byKind[k] = append(byKind[k], m)
		}
	}

	return byKind
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}

	return o.Logger
}
