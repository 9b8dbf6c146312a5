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

package graph

// AliasPrefix marks an id as an alias pseudo-entry rather than an
// evaluatable node.
const AliasPrefix = "@"

// AliasKind is the kind string carried by alias entries.
const AliasKind = "@alias"

// Entry is a single node in a Program's adjacency map. Out is nil for
// compound nodes pending evaluation; it holds the literal scalar (or, for
// specialized nodes, an auxiliary constant such as an extractor key) once
// known.
type Entry struct {
	Kind     string
	Children []string
	Out      interface{}
}

// IsAlias reports whether e is an "@alias" pseudo-entry.
func (e Entry) IsAlias() bool {
	return e.Kind == AliasKind
}

// Clone returns a shallow copy of e with its own backing Children slice, so
// callers may mutate the copy's Children without aliasing the original.
func (e Entry) Clone() Entry {
	children := make([]string, len(e.Children))
	copy(children, e.Children)
	return Entry{Kind: e.Kind, Children: children, Out: e.Out}
}

// Adjacency maps an id to its Entry.
type Adjacency map[string]Entry

// Clone returns a shallow copy of the map with each Entry's Children slice
// copied, so mutating the clone never affects the receiver.
func (a Adjacency) Clone() Adjacency {
	out := make(Adjacency, len(a))
	for id, e := range a {
		out[id] = e.Clone()
	}
	return out
}

// Program is an immutable, normalized DAG: a root id, an adjacency map keyed
// by sequential ids, and the next id a further edit should mint.
type Program struct {
	Root    string
	Adj     Adjacency
	Counter string
}

// Entry looks up id in p.Adj.
func (p Program) Entry(id string) (Entry, bool) {
	e, ok := p.Adj[id]
	return e, ok
}

// Ids returns every id present in p.Adj. Order is unspecified.
func (p Program) Ids() []string {
	ids := make([]string, 0, len(p.Adj))
	for id := range p.Adj {
		ids = append(ids, id)
	}
	return ids
}
