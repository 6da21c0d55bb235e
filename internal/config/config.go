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

package config

// Rule selects individual rules.
type Rule uint16

const (
	// ToListForEach reports ToList().ForEach(...) chains.
	ToListForEach Rule = 1 << iota

	// IdentitySelect reports Select(x => x).
	IdentitySelect

	// CountAny reports Count() compared with 0 or 1.
	CountAny

	// MaterializedCountProperty reports ToList().Count and ToArray().Length compared with 0 or 1.
	MaterializedCountProperty

	// MaterializedCountCall reports ToList().Count() and ToArray().Count() compared with 0 or 1.
	MaterializedCountCall

	// CoalesceForEach reports foreach over a null-coalescing empty fallback.
	CoalesceForEach

	// WhereCount reports Where(...).Count().
	WhereCount

	// StaticPropertyAllocation reports static expression-bodied properties that allocate on every access.
	StaticPropertyAllocation

	// RedundantMaterialization reports ToList() or ToArray() followed by another query operator.
	RedundantMaterialization

	// AllRules is the set of all rules.
	AllRules Rule = 1<<iota - 1

	// DefaultRules are the rules enabled by default.
	DefaultRules = AllRules &^ RedundantMaterialization
)

// Config represents behavior options.
type Config uint8

const (
	// IncludeGenerated specifies whether to analyze generated files.
	IncludeGenerated Config = 1 << iota

	// ValidateFixes reparses every fixed document and discards fixes that do not round-trip.
	ValidateFixes
)
