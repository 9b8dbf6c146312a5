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

// Gc removes every id not reachable from p.Root via Children edges. Alias
// entries are always dropped, reachable or not.
func Gc(p graph.Program) graph.Program {
	return gc(p, false)
}

// GcPreservingAliases behaves like Gc but keeps alias entries whose target
// is reachable from p.Root.
func GcPreservingAliases(p graph.Program) graph.Program {
	return gc(p, true)
}

func gc(p graph.Program, preserveAliases bool) graph.Program {
	reachable := reachableFrom(p, p.Root)

	newAdj := make(graph.Adjacency, len(p.Adj))
	for id, e := range p.Adj {
		if e.IsAlias() {
			if preserveAliases && len(e.Children) == 1 && reachable[e.Children[0]] {
				newAdj[id] = e
			}
			continue
		}
		if reachable[id] {
			newAdj[id] = e
		}
	}

	return graph.Program{Root: p.Root, Adj: newAdj, Counter: p.Counter}
}

func reachableFrom(p graph.Program, root string) map[string]bool {
	reachable := make(map[string]bool, len(p.Adj))
	var visit func(id string)
	visit = func(id string) {
		if reachable[id] {
			return
		}
		reachable[id] = true
		e, ok := p.Adj[id]
		if !ok {
			return
		}
		for _, c := range e.Children {
			visit(c)
		}
	}
	visit(root)
	return reachable
}
