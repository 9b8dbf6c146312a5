// Copyright 2020-2021 Dolthub, Inc.
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

package expr

// Visitor is called once per id reached while walking an Expression,
// pre-order. Returning nil stops descent into that id's children; any
// other Visitor continues the walk with it.
type Visitor interface {
	Visit(id string) Visitor
}

// Walk visits e's root id, then recursively every child id reachable
// through e.Adj, pre-order and depth-first, the same shape as the
// teacher's sql.Walk over sql.Expression trees. Scalar children (ids with
// no corresponding Adj entry, awaiting lift) are still visited, but the
// walk cannot descend further into them.
func Walk(v Visitor, e Expression) {
	walk(v, e.Adj, e.ID)
}

func walk(v Visitor, adj map[string]RawEntry, id string) {
	if v == nil {
		return
	}
	next := v.Visit(id)
	if next == nil {
		return
	}
	entry, ok := adj[id]
	if !ok {
		return
	}
	for _, child := range entry.Children {
		walk(next, adj, child)
	}
}

// Inspect is a convenience wrapper over Walk for a plain predicate
// function, mirroring sql.Inspect.
func Inspect(e Expression, f func(id string) bool) {
	Walk(inspector(f), e)
}

type inspector func(id string) bool

func (f inspector) Visit(id string) Visitor {
	if f(id) {
		return f
	}
	return nil
}
