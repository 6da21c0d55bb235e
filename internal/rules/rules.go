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

// Package rules holds the descriptors of the linqguard rules.
package rules

import (
	"fmt"
	"strings"

	"fillmore-labs.com/linqguard/internal/config"
)

// Severity is the default severity of a rule.
type Severity uint8

const (
	Hidden Severity = iota
	Info
	Warning
	Error
)

func (s Severity) String() string {
	text, err := s.MarshalText()
	if err != nil {
		return fmt.Sprintf("Severity(%d)", uint8(s))
	}

	return string(text)
}

// MarshalText implements [encoding.TextMarshaler].
func (s Severity) MarshalText() ([]byte, error) {
	switch s {
	case Hidden:
		return []byte("hidden"), nil

	case Info:
		return []byte("info"), nil

	case Warning:
		return []byte("warning"), nil

	case Error:
		return []byte("error"), nil

	default:
		return nil, fmt.Errorf("unknown severity %d", s)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Severity) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "hidden", "silent":
		*s = Hidden

	case "info", "suggestion":
		*s = Info

	case "warning", "warn":
		*s = Warning

	case "error":
		*s = Error

	default:
		return fmt.Errorf("unknown severity %q", string(text))
	}

	return nil
}

// Descriptor describes a rule.
type Descriptor struct {
	ID       string // stable identifier, like "LG0003"
	Name     string
	Rule     config.Rule
	Title    string
	Message  string // fmt format, filled with the finding arguments
	Severity Severity
	Default  bool // enabled by default
	Fixable  bool
}

// Format returns the diagnostic message for the given arguments.
func (d Descriptor) Format(args []string) string {
	a := make([]any, len(args))
	for i, arg := range args {
		a[i] = arg
	}

	return fmt.Sprintf(d.Message, a...) + " (" + d.ID + ")"
}

var descriptors = [...]Descriptor{
	{
		ID: "LG0001", Name: "tolist-foreach", Rule: config.ToListForEach,
		Title:    "Iterate the source instead of materializing it for ForEach",
		Message:  "ToList().ForEach() copies the sequence only to iterate it; use a foreach loop over %s",
		Severity: Warning, Default: true, Fixable: true,
	},
	{
		ID: "LG0002", Name: "identity-select", Rule: config.IdentitySelect,
		Title:    "Remove identity projection",
		Message:  "Select(%[1]s => %[1]s) returns its input unchanged; remove it",
		Severity: Warning, Default: true, Fixable: true,
	},
	{
		ID: "LG0003", Name: "count-any", Rule: config.CountAny,
		Title:    "Use Any() for existence checks",
		Message:  "Use %s instead of comparing Count() with %s",
		Severity: Warning, Default: true, Fixable: true,
	},
	{
		ID: "LG0004", Name: "materialized-count-property", Rule: config.MaterializedCountProperty,
		Title:    "Use Any() instead of materializing for a length check",
		Message:  "Use %s instead of comparing %s().%s with %s",
		Severity: Warning, Default: true, Fixable: true,
	},
	{
		ID: "LG0005", Name: "materialized-count-call", Rule: config.MaterializedCountCall,
		Title:    "Use Any() instead of materializing for a count check",
		Message:  "Use %s instead of comparing %s().Count() with %s",
		Severity: Warning, Default: true, Fixable: true,
	},
	{
		ID: "LG0006", Name: "coalesce-foreach", Rule: config.CoalesceForEach,
		Title:    "Check for null instead of iterating an empty fallback",
		Message:  "Iterating %[1]s ?? <empty> allocates an empty fallback; check %[1]s for null instead",
		Severity: Warning, Default: true, Fixable: true,
	},
	{
		ID: "LG0007", Name: "where-count", Rule: config.WhereCount,
		Title:    "Pass the predicate to Count()",
		Message:  "Where(...).Count() can be written as Count(predicate)",
		Severity: Warning, Default: true, Fixable: true,
	},
	{
		ID: "LG0008", Name: "static-property-allocation", Rule: config.StaticPropertyAllocation,
		Title:    "Static property allocates on every access",
		Message:  "Static property '%s' allocates on every access; use a getter-only property with an initializer",
		Severity: Warning, Default: true, Fixable: true,
	},
	{
		ID: "LG0009", Name: "redundant-materialization", Rule: config.RedundantMaterialization,
		Title:    "Remove intermediate materialization",
		Message:  "%s() before %s() materializes the sequence needlessly",
		Severity: Info, Default: false, Fixable: true,
	},
}

// All returns the descriptors of all rules in id order.
func All() []Descriptor {
	all := descriptors

	return all[:]
}

// Lookup finds a descriptor by id or name, ignoring case.
func Lookup(idOrName string) (Descriptor, bool) {
	for _, d := range descriptors {
		if strings.EqualFold(d.ID, idOrName) || strings.EqualFold(d.Name, idOrName) {
			return d, true
		}
	}

	return Descriptor{}, false
}

// ByRule returns the descriptor of a rule flag.
func ByRule(rule config.Rule) (Descriptor, bool) {
	for _, d := range descriptors {
		if d.Rule == rule {
			return d, true
		}
	}

	return Descriptor{}, false
}

// MustLookup returns the descriptor with the given id and panics for unknown ids.
func MustLookup(id string) Descriptor {
	d, ok := Lookup(id)
	if !ok {
		panic("unknown rule " + id)
	}

	return d
}

// Enabled returns the ids of the enabled rules.
func Enabled(enabled config.BitMask[config.Rule]) []string {
	var ids []string

	for _, d := range descriptors {
		if enabled.Enabled(d.Rule) {
			ids = append(ids, d.ID)
		}
	}

	return ids
}
