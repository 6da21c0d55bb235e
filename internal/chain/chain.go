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

// Package chain reconstructs fluent call chains like "xs.Where(p).Select(f).ToList()".
package chain

import (
	"context"

	"fillmore-labs.com/linqguard/internal/trivia"
	"fillmore-labs.com/linqguard/syntax"
)

// Link is one member access in a chain, optionally invoked.
type Link struct {
	Expr   syntax.Expr                          // the expression ending with this link
	Access *syntax.MemberAccessExpressionSyntax // the member access of this link
	Call   *syntax.InvocationExpressionSyntax   // the invocation, or nil for a property access
}

// Name returns the accessed member name.
func (l Link) Name() string { return syntax.NameOf(l.Access.Name) }

// Args returns the number of arguments of an invoked link, or -1 for a property access.
func (l Link) Args() int {
	if l.Call == nil {
		return -1
	}

	return l.Call.Args.Args.Len()
}

// Chain is a root expression followed by links in source order.
type Chain struct {
	Root  syntax.Expr
	Links []Link
}

// Of walks back from e through member accesses and invocations and returns the chain
// ending at e. The context is checked once per link.
func Of(ctx context.Context, e syntax.Expr) (Chain, error) {
	var links []Link

	for {
		if err := ctx.Err(); err != nil {
			return Chain{}, err
		}

		link, ok := linkOf(e)
		if !ok {
			break
		}

		links = append(links, link)
		e = link.Access.Expr
	}

	for i, j := 0, len(links)-1; i < j; i, j = i+1, j-1 {
		links[i], links[j] = links[j], links[i]
	}

	return Chain{Root: e, Links: links}, nil
}

func linkOf(e syntax.Expr) (Link, bool) {
	switch e := e.(type) {
	case *syntax.InvocationExpressionSyntax:
		if ma, ok := e.Expr.(*syntax.MemberAccessExpressionSyntax); ok {
			return Link{Expr: e, Access: ma, Call: e}, true
		}

	case *syntax.MemberAccessExpressionSyntax:
		return Link{Expr: e, Access: e}, true
	}

	return Link{}, false
}

// Len returns the number of links.
func (c Chain) Len() int { return len(c.Links) }

// Outermost returns the expression the chain ends with.
func (c Chain) Outermost() syntax.Expr {
	if len(c.Links) == 0 {
		return c.Root
	}

	return c.Links[len(c.Links)-1].Expr
}

// Index returns the index of the link ending with e, or -1.
func (c Chain) Index(e syntax.Expr) int {
	for i, l := range c.Links {
		if l.Expr == e {
			return i
		}
	}

	return -1
}

// Receiver returns the expression link i is applied to.
func (c Chain) Receiver(i int) syntax.Expr {
	if i == 0 {
		return c.Root
	}

	return c.Links[i-1].Expr
}

// Wrapped returns the indices of the links whose dot starts a new line.
func (c Chain) Wrapped() []int {
	var wrapped []int

	for i, l := range c.Links {
		if trivia.StartsLine(syntax.LastToken(l.Access.Expr), l.Access.Dot) {
			wrapped = append(wrapped, i)
		}
	}

	return wrapped
}

// Continues reports whether parent extends the chain ending at child.
func Continues(parent, child syntax.Node) bool {
	switch p := parent.(type) {
	case *syntax.MemberAccessExpressionSyntax:
		return p.Expr == child

	case *syntax.InvocationExpressionSyntax:
		ma, ok := child.(*syntax.MemberAccessExpressionSyntax)

		return ok && p.Expr == ma

	default:
		return false
	}
}

// Outermost moves c up to the outermost expression of the chain containing it.
func Outermost(c syntax.Cursor) syntax.Cursor {
	for {
		p, ok := c.Parent()
		if !ok || !Continues(p.Node(), c.Node()) {
			return c
		}

		c = p
	}
}

// IsOutermost reports whether c is a chain expression that is not extended by its parent.
func IsOutermost(c syntax.Cursor) bool {
	e, ok := c.Node().(syntax.Expr)
	if !ok {
		return false
	}

	if _, ok := linkOf(e); !ok {
		return false
	}

	return !Continues(c.ParentNode(), e)
}
