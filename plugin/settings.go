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

package plugin

import (
	"fmt"
	"maps"
	"slices"

	"github.com/BurntSushi/toml"

	"fillmore-labs.com/linqguard/analyzer"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Rules selects the enabled rules by id or name; "all" and "default" name the rule sets.
	Rules []string `json:"rules,omitzero" toml:"rules"`
	// Enable enables additional rules.
	Enable []string `json:"enable,omitzero" toml:"enable"`
	// Disable disables rules.
	Disable []string `json:"disable,omitzero" toml:"disable"`
	// Severity overrides the default severity of rules.
	Severity map[string]analyzer.Severity `json:"severity,omitzero" toml:"severity"`
	// Generated enables diagnostics in generated files.
	Generated *bool `json:"generated,omitzero" toml:"generated"`
	// GeneratedPatterns replaces the file name patterns of generated files.
	GeneratedPatterns []string `json:"generated-patterns,omitzero" toml:"generated-patterns"`
	// Validate reparses fixed documents and discards fixes that do not round-trip.
	Validate *bool `json:"validate,omitzero" toml:"validate"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the linqguard analyzer.
// It processes settings and applies them only when explicitly set.
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	if len(s.Rules) > 0 {
		opts = append(opts, analyzer.WithRules(s.Rules...))
	}

	for _, rule := range s.Enable {
		opts = append(opts, analyzer.WithRule(rule, true))
	}

	for _, rule := range s.Disable {
		opts = append(opts, analyzer.WithRule(rule, false))
	}

	for _, rule := range slices.Sorted(maps.Keys(s.Severity)) {
		opts = append(opts, analyzer.WithSeverity(rule, s.Severity[rule]))
	}

	opts = appendOption(opts, s.Generated, analyzer.WithGenerated)

	if s.GeneratedPatterns != nil {
		opts = append(opts, analyzer.WithGeneratedPatterns(s.GeneratedPatterns...))
	}

	opts = appendOption(opts, s.Validate, analyzer.WithValidate)

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

// LoadSettings reads [Settings] from a TOML file. Unknown keys are an error.
func LoadSettings(path string) (Settings, error) {
	var s Settings

	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Settings{}, fmt.Errorf("can't load settings: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Settings{}, fmt.Errorf("unknown settings in %s: %v", path, undecoded)
	}

	return s, nil
}
