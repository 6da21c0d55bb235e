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
	"fmt"
	"strconv"
	"strings"

	"fillmore-labs.com/linqguard/internal/config"
	"fillmore-labs.com/linqguard/internal/rules"
)

// maskValue is a boolean [flag.Value] toggling one flag of a bit mask.
type maskValue[F any, B maskFlags[F]] struct {
	flags B
	value F
}

type maskFlags[F any] interface {
	comparable
	Set(flag F, value bool)
	Enabled(flag F) bool
}

func newMaskValue[F any, B maskFlags[F]](flags B, value F) maskValue[F, B] {
	return maskValue[F, B]{flags: flags, value: value}
}

// Set implements [flag.Value].
func (f maskValue[_, B]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [flag.Value].
func (f maskValue[_, B]) String() string {
	var null B
	if f.flags == null {
		return "false"
	}

	return strconv.FormatBool(f.flags.Enabled(f.value))
}

// Get implements [flag.Getter].
func (f maskValue[_, B]) Get() any {
	var null B
	if f.flags == null {
		return false
	}

	return f.flags.Enabled(f.value)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f maskValue[_, _]) IsBoolFlag() bool { return true }

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

// rulesValue is a [flag.Value] selecting the enabled rules as a comma-separated list of
// ids or names. "all" and "default" name the rule sets.
type rulesValue struct {
	rules *config.BitMask[config.Rule]
}

// Set implements [flag.Value].
func (f rulesValue) Set(s string) error {
	selected := config.NewBitMask[config.Rule]()

	for _, name := range strings.Split(s, ",") {
		switch name = strings.TrimSpace(name); strings.ToLower(name) {
		case "":
			continue

		case "all":
			selected.Enable(config.AllRules)

		case "default":
			selected.Enable(config.DefaultRules)

		default:
			d, ok := rules.Lookup(name)
			if !ok {
				return fmt.Errorf("unknown rule %q", name)
			}

			selected.Enable(d.Rule)
		}
	}

	*f.rules = selected

	return nil
}

// String implements [flag.Value].
func (f rulesValue) String() string {
	if f.rules == nil {
		return ""
	}

	return strings.Join(rules.Enabled(*f.rules), ",")
}

// Get implements [flag.Getter].
func (f rulesValue) Get() any {
	if f.rules == nil {
		return []string(nil)
	}

	return rules.Enabled(*f.rules)
}
