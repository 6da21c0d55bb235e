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

package report

import (
	"strconv"

	"github.com/google/uuid"
)

var keySpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://fillmore-labs.com/linqguard/actions"))

// Key returns a deterministic key for the fix action of finding f in the named document.
func Key(document string, f Finding) uuid.UUID {
	name := make([]byte, 0, len(document)+len(f.Rule)+24)
	name = append(name, document...)
	name = append(name, 0)
	name = append(name, f.Rule...)
	name = append(name, 0)
	name = strconv.AppendInt(name, int64(f.Span.Start), 10)
	name = append(name, ':')
	name = strconv.AppendInt(name, int64(f.Span.End), 10)

	return uuid.NewSHA1(keySpace, name)
}
