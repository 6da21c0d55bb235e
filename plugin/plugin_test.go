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

package plugin_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/linqguard/analyzer"
	. "fillmore-labs.com/linqguard/plugin"
)

const allSettings = `{
	"rules": ["default"],
	"enable": ["redundant-materialization"],
	"disable": ["LG0008"],
	"severity": {"LG0003": "error", "where-count": "info"},
	"generated": true,
	"generated-patterns": ["*.gen.cs"],
	"validate": false
}`

func TestSettings(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		want     int
	}{
		{"all", allSettings, 8},
		{"none", `{}`, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dec := json.NewDecoder(strings.NewReader(tc.settings))
			dec.DisallowUnknownFields()

			var s Settings
			if err := dec.Decode(&s); err != nil {
				t.Fatalf("Can't decode settings: %v", err)
			}

			if got := s.Options(); len(got) != tc.want {
				t.Errorf("Got %d options: %s, want %d", len(got), analyzer.Options(got).LogValue(), tc.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(allSettings), &raw))

	p, err := New(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"LG0001", "LG0002", "LG0003", "LG0004", "LG0005", "LG0006", "LG0007", "LG0009"},
		p.Analyzer().Enabled())

	for _, d := range p.Descriptors() {
		switch d.ID {
		case "LG0003":
			assert.Equal(t, analyzer.Error, d.Severity)

		case "LG0007":
			assert.Equal(t, analyzer.Info, d.Severity)
		}
	}

	assert.Len(t, p.FixableRules(), len(p.Descriptors()))
}

func TestNewInvalid(t *testing.T) {
	t.Parallel()

	_, err := New(map[string]any{"generated": "sometimes"})
	require.Error(t, err)
}

func TestLoadSettings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	valid := filepath.Join(dir, "linqguard.toml")
	require.NoError(t, os.WriteFile(valid, []byte(`
rules = ["count-any", "LG0002"]
generated = true

[severity]
count-any = "error"
`), 0o600))

	s, err := LoadSettings(valid)
	require.NoError(t, err)

	assert.Equal(t, []string{"count-any", "LG0002"}, s.Rules)
	require.NotNil(t, s.Generated)
	assert.True(t, *s.Generated)
	assert.Equal(t, analyzer.Error, s.Severity["count-any"])

	p := NewWithSettings(s)
	assert.Equal(t, []string{"LG0002", "LG0003"}, p.Analyzer().Enabled())

	unknown := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknown, []byte("max-lines = 3\n"), 0o600))

	_, err = LoadSettings(unknown)
	require.Error(t, err)

	invalid := filepath.Join(dir, "invalid.toml")
	require.NoError(t, os.WriteFile(invalid, []byte("[severity]\ncount-any = \"loud\"\n"), 0o600))

	_, err = LoadSettings(invalid)
	require.Error(t, err)

	_, err = LoadSettings(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
}
