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

	"fillmore-labs.com/linqguard/host"
	"fillmore-labs.com/linqguard/internal/match"
	"fillmore-labs.com/linqguard/internal/trivia"
	"fillmore-labs.com/linqguard/syntax"
)

// rewriteIdentitySelect replaces "recv.Select(x => x)" with recv.
func rewriteIdentitySelect(_ context.Context, model host.Model, c syntax.Cursor) (old, replacement syntax.Node, ok bool, err error) {
	inv, ma, _, ok := match.MatchIdentitySelect(model, c.Node().(syntax.Expr)) //nolint:forcetypeassert
	if !ok {
		return nil, nil, false, nil
	}

	return inv, splice(inv, ma.Expr), true, nil
}

// rewriteRedundantMaterialization replaces "recv.ToList()" with recv.
func rewriteRedundantMaterialization(_ context.Context, model host.Model, c syntax.Cursor) (old, replacement syntax.Node, ok bool, err error) {
	shape, ok := match.MatchRedundantMaterialization(model, c)
	if !ok {
		return nil, nil, false, nil
	}

	return shape.Call, splice(shape.Call, shape.Source()), true, nil
}

// splice returns the receiver taking the place of a removed chain link.
func splice(link, recv syntax.Expr) syntax.Expr {
	return trivia.Preserve(link, recv)
}
