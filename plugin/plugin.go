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
	"context"
	"log/slog"

	"github.com/golangci/plugin-module-register/register"

	"fillmore-labs.com/linqguard/analyzer"
	"fillmore-labs.com/linqguard/host"
)

// New creates a new [Plugin] instance from raw host settings.
func New(rawSettings any, opts ...analyzer.Option) (*Plugin, error) {
	settings, err := register.DecodeSettings[Settings](rawSettings)
	if err != nil {
		return nil, err
	}

	return NewWithSettings(settings, opts...), nil
}

// NewWithSettings creates a new [Plugin] instance with the given [Settings].
// Explicit options are applied after the settings.
func NewWithSettings(settings Settings, opts ...analyzer.Option) *Plugin {
	all := analyzer.Options(settings.Options())
	all = append(all, opts...)

	return &Plugin{settings: settings, analyzer: analyzer.New(all...)}
}

// Plugin is the linqguard analyzer as registered with a host.
type Plugin struct {
	settings Settings
	analyzer *analyzer.Analyzer
}

// Analyzer returns the configured analyzer.
func (p *Plugin) Analyzer() *analyzer.Analyzer {
	return p.analyzer
}

// Descriptors returns the diagnostic descriptors to register with the host.
func (p *Plugin) Descriptors() []analyzer.Descriptor {
	return p.analyzer.Rules()
}

// FixableRules returns the ids of the rules the host should register fix actions for.
func (p *Plugin) FixableRules() []string {
	var ids []string

	for _, d := range p.analyzer.Rules() {
		if d.Fixable {
			ids = append(ids, d.ID)
		}
	}

	return ids
}

// Actions returns the fix actions for a finding reported by this plugin.
func (p *Plugin) Actions(ctx context.Context, doc *host.Document, f analyzer.Finding) ([]analyzer.Action, error) {
	return p.analyzer.Actions(ctx, doc, f)
}

// LogValue implements [slog.LogValuer].
func (p *Plugin) LogValue() slog.Value {
	return analyzer.Options(p.settings.Options()).LogValue()
}
