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

// Package analyzer implements the linqguard rules and code fixes.
//
// # Overview
//
// LinqGuard detects inefficient or redundant LINQ and collection usage in C# source and
// rewrites it to equivalent, cheaper forms. The host compiler front end supplies each
// document as a syntax tree with a semantic model, see [host.Document].
//
// # Example
//
// Before:
//
//	if (orders.Count() > 0)
//	{
//	    Ship(orders);
//	}
//
// After applying linqguard's suggested fix:
//
//	if (orders.Any())
//	{
//	    Ship(orders);
//	}
//
// # Rules
//
//   - LG0001 tolist-foreach: ToList().ForEach(...) becomes a foreach loop
//   - LG0002 identity-select: Select(x => x) is removed
//   - LG0003 count-any: Count() compared with 0 or 1 becomes Any()
//   - LG0004 materialized-count-property: ToList().Count or ToArray().Length checks become Any()
//   - LG0005 materialized-count-call: ToList().Count() checks become Any()
//   - LG0006 coalesce-foreach: foreach over "a ?? empty" becomes a null check
//   - LG0007 where-count: Where(p).Count() becomes Count(p)
//   - LG0008 static-property-allocation: allocating static "=>" properties get an initializer
//   - LG0009 redundant-materialization: ToList() before another query operator is removed (off by default)
package analyzer
