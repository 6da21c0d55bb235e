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

package astutil

import (
	"context"
	"fmt"
	"log/slog"

	"fillmore-labs.com/linqguard/syntax"
)

// InternalError logs an internal error.
// These errors indicate bugs in the analyzer logic rather than issues in the user's code.
func InternalError(ctx context.Context, logger *slog.Logger, document string, span syntax.Span, format string, args ...any) {
	logger.LogAttrs(ctx, slog.LevelWarn, "Internal Error: "+fmt.Sprintf(format, args...),
		slog.String("document", document),
		slog.Int("start", span.Start),
		slog.Int("end", span.End),
	)
}
