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

package dagql

import "github.com/mikesol/dagql/graph"

// SpliceWhere removes every id matching pred and inlines its children into
// the child-lists of its parents at the position it occupied: a spliced
// node with k children expands to those k children, in order, wherever it
// was referenced. The expansion is resolved in a single pass against the
// Program's original (pre-splice) structure, so a chain of simultaneously
// matched ids collapses entirely rather than requiring repeated calls.
//
// If the root itself matches pred, the new root is the root's first
// (possibly further expanded) child; if the root has no children,
// SpliceWhere refuses with ErrSpliceRootLeaf rather than guess — see
// spec.md's open question on splicing a leaf root.
func SpliceWhere(p graph.Program, pred Predicate) (graph.Program, error) {
	matched := SelectWhere(p, pred)
	if len(matched) == 0 {
		return p, nil
	}

	memo := make(map[string][]string, len(p.Adj))
	var expand func(id string) []string
	expand = func(id string) []string {
		if out, ok := memo[id]; ok {
			return out
		}
		// Guard against cycles in malformed input by seeding the memo
		// before recursing; a Program respecting spec.md's invariants is
		// acyclic, so this only protects against misuse.
		memo[id] = nil
		if !matched.Has(id) {
			out := []string{id}
			memo[id] = out
			return out
		}
		e := p.Adj[id]
		var out []string
		for _, c := range e.Children {
			out = append(out, expand(c)...)
		}
		memo[id] = out
		return out
	}

	newAdj := make(graph.Adjacency, len(p.Adj))
	for id, e := range p.Adj {
		if matched.Has(id) {
			continue
		}
		var children []string
		for _, c := range e.Children {
			children = append(children, expand(c)...)
		}
		newAdj[id] = graph.Entry{Kind: e.Kind, Children: children, Out: e.Out}
	}

	root := p.Root
	if matched.Has(root) {
		expanded := expand(root)
		if len(expanded) == 0 {
			return graph.Program{}, ErrSpliceRootLeaf.New(root)
		}
		root = expanded[0]
	}

	return graph.Program{Root: root, Adj: newAdj, Counter: p.Counter}, nil
}
