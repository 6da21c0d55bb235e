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

package config_test

import (
	"testing"

	. "fillmore-labs.com/linqguard/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(CountAny, WhereCount)

	if !b.Enabled(CountAny) || !b.Enabled(WhereCount) {
		t.Errorf("Expected CountAny and WhereCount in %b", b.Value())
	}

	if b.Enabled(CountAny | IdentitySelect) {
		t.Errorf("Got CountAny|IdentitySelect enabled in %b", b.Value())
	}

	if !b.Any(CountAny | IdentitySelect) {
		t.Errorf("Expected any of CountAny|IdentitySelect in %b", b.Value())
	}

	b.Set(CountAny, false)
	b.Set(IdentitySelect, true)

	if b.Enabled(CountAny) || !b.Enabled(IdentitySelect) {
		t.Errorf("Got %b after Set", b.Value())
	}
}

func TestRuleSets(t *testing.T) {
	t.Parallel()

	const count = 9

	if got, want := AllRules, Rule(1<<count-1); got != want {
		t.Errorf("Got AllRules %b, want %b", got, want)
	}

	if DefaultRules&RedundantMaterialization != 0 {
		t.Error("Expected RedundantMaterialization to be disabled by default")
	}

	if DefaultRules|RedundantMaterialization != AllRules {
		t.Errorf("Got default rules %b", DefaultRules)
	}
}
