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

package fix

import (
	"context"

	"fillmore-labs.com/linqguard/syntax"
)

// locateProperty finds the property declaration whose name token has the given span.
func locateProperty(ctx context.Context, root syntax.Node, span syntax.Span) (syntax.Cursor, bool, error) {
	if !span.Valid() {
		return syntax.Cursor{}, false, nil
	}

	c, tok, ok := syntax.FindToken(root, span.Start)
	if !ok || tok.Span() != span {
		return syntax.Cursor{}, false, nil
	}

	if err := ctx.Err(); err != nil {
		return syntax.Cursor{}, false, err
	}

	p, ok := c.Node().(*syntax.PropertyDeclarationSyntax)
	if !ok || p.Name != tok {
		return syntax.Cursor{}, false, nil
	}

	return c, true, nil
}
