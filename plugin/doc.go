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

/*
Package plugin provides host integration for the [linqguard] analyzer.

# Usage

The host passes its raw linter settings, as decoded from its own configuration file, to [New]:

	p, err := plugin.New(rawSettings)
	if err != nil {
		return err
	}

	for _, d := range p.Descriptors() {
		// register diagnostic d
	}

Settings can also be read from a TOML file with [LoadSettings]:

	rules = ["default", "redundant-materialization"]
	disable = ["LG0008"]
	generated = false
	validate = true

	[severity]
	count-any = "error"

[linqguard]: https://pkg.go.dev/fillmore-labs.com/linqguard/analyzer
*/
package plugin
