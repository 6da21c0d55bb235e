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
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"fillmore-labs.com/linqguard/host"
	"fillmore-labs.com/linqguard/internal/config"
	"fillmore-labs.com/linqguard/internal/metrics"
	"fillmore-labs.com/linqguard/internal/rules"
)

// Option configures specific behavior of a [New] linqguard analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithRule is an [Option] to enable or disable a rule by id or name.
func WithRule(idOrName string, enabled bool) Option {
	return ruleOption{rule: idOrName, enabled: enabled}
}

type ruleOption struct {
	rule    string
	enabled bool
}

func (o ruleOption) apply(r *runOptions) {
	d, ok := rules.Lookup(o.rule)
	if !ok {
		r.invalid = append(r.invalid, slog.String("rule", o.rule))

		return
	}

	r.run.Rules.Set(d.Rule, o.enabled)
}

func (o ruleOption) LogAttr() slog.Attr {
	return slog.Bool(o.rule, o.enabled)
}

// WithRules is an [Option] to enable exactly the given rules, by id or name.
// "all" and "default" name the rule sets.
func WithRules(idsOrNames ...string) Option { return rulesOption{rules: idsOrNames} }

type rulesOption struct{ rules []string }

func (o rulesOption) apply(r *runOptions) {
	r.run.Rules = config.NewBitMask[config.Rule]()

	for _, rule := range o.rules {
		switch strings.ToLower(rule) {
		case "all":
			r.run.Rules.Enable(config.AllRules)

		case "default":
			r.run.Rules.Enable(config.DefaultRules)

		default:
			ruleOption{rule: rule, enabled: true}.apply(r)
		}
	}
}

func (o rulesOption) LogAttr() slog.Attr {
	return slog.String("rules", strings.Join(o.rules, ","))
}

// WithSeverity is an [Option] to override the default severity of a rule.
func WithSeverity(idOrName string, severity Severity) Option {
	return severityOption{rule: idOrName, severity: severity}
}

type severityOption struct {
	rule     string
	severity Severity
}

func (o severityOption) apply(r *runOptions) {
	d, ok := rules.Lookup(o.rule)
	if !ok {
		r.invalid = append(r.invalid, slog.String("severity", o.rule))

		return
	}

	r.severities[d.ID] = o.severity
}

func (o severityOption) LogAttr() slog.Attr {
	return slog.String("severity."+o.rule, o.severity.String())
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.run.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithGeneratedPatterns is an [Option] to replace the file name patterns recognizing
// generated documents, like "*.g.cs".
func WithGeneratedPatterns(patterns ...string) Option {
	return generatedPatternsOption{patterns: patterns}
}

type generatedPatternsOption struct{ patterns []string }

func (o generatedPatternsOption) apply(r *runOptions) {
	r.patterns = append(make([]string, 0, len(o.patterns)), o.patterns...)
}

func (o generatedPatternsOption) LogAttr() slog.Attr {
	return slog.String("generated-patterns", strings.Join(o.patterns, ","))
}

// WithValidate is an [Option] to reparse every fixed document and discard fixes that do
// not round-trip. It needs a parser, see [WithParser].
func WithValidate(validate bool) Option { return validateOption{validate: validate} }

type validateOption struct{ validate bool }

func (o validateOption) apply(r *runOptions) {
	r.run.Behavior.Set(config.ValidateFixes, o.validate)
}

func (o validateOption) LogAttr() slog.Attr {
	return slog.Bool("validate", o.validate)
}

// WithParser is an [Option] to set the host parser used to validate fixes.
// Setting a parser enables validation.
func WithParser(parser host.Parser) Option { return parserOption{parser: parser} }

type parserOption struct{ parser host.Parser }

func (o parserOption) apply(r *runOptions) {
	r.run.Parser = o.parser
	r.run.Behavior.Set(config.ValidateFixes, o.parser != nil)
}

func (o parserOption) LogAttr() slog.Attr {
	return slog.Bool("parser", o.parser != nil)
}

// WithLogger is an [Option] to set the logger receiving internal errors and skipped fixes.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *runOptions) {
	if o.logger == nil {
		r.run.Logger = slog.Default()

		return
	}

	r.run.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}

// WithMetrics is an [Option] to register finding and fix counters on reg.
// Collectors can only be registered once per registry.
func WithMetrics(reg prometheus.Registerer) Option { return metricsOption{reg: reg} }

type metricsOption struct{ reg prometheus.Registerer }

func (o metricsOption) apply(r *runOptions) {
	if o.reg == nil {
		r.run.Metrics = nil

		return
	}

	r.run.Metrics = metrics.New(o.reg)
}

func (o metricsOption) LogAttr() slog.Attr {
	return slog.Bool("metrics", o.reg != nil)
}

// WithTracerProvider is an [Option] to set the OpenTelemetry tracer provider.
// The global provider is used by default.
func WithTracerProvider(tp trace.TracerProvider) Option { return tracerOption{tp: tp} }

type tracerOption struct{ tp trace.TracerProvider }

func (o tracerOption) apply(r *runOptions) {
	r.run.TracerProvider = o.tp
}

func (o tracerOption) LogAttr() slog.Attr {
	return slog.Bool("tracer", o.tp != nil)
}
