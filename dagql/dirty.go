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

// Staging is a mutable editing surface produced by Dirty and consumed by
// Commit. It is exclusively owned by its caller between the two calls;
// nothing else in this package retains a reference to it.
type Staging struct {
	Root    string
	Adj     graph.Adjacency
	Counter string
}

// Dirty returns a mutable Staging with the same contents as p, ready for
// local edits.
func Dirty(p graph.Program) *Staging {
	return &Staging{
		Root:    p.Root,
		Adj:     p.Adj.Clone(),
		Counter: p.Counter,
	}
}

// AddEntry inserts id unconditionally; it does not check that its
// children reference existing ids, nor that id is not already present
// (an existing entry at id is silently overwritten).
func (s *Staging) AddEntry(id string, e graph.Entry) {
	s.Adj[id] = e
}

// RemoveEntry deletes id. It does not rewire any parent that references
// id as a child.
func (s *Staging) RemoveEntry(id string) {
	delete(s.Adj, id)
}

// SwapEntry replaces the entry at id with e; e's children may differ from
// the previous entry's.
func (s *Staging) SwapEntry(id string, e graph.Entry) {
	s.Adj[id] = e
}

// RewireChildren replaces every occurrence of fromChildID in every entry's
// Children with toChildID. Duplicates may result; that is legal (children
// lists are treated as multisets).
func (s *Staging) RewireChildren(fromChildID, toChildID string) {
	for id, e := range s.Adj {
		changed := false
		children := make([]string, len(e.Children))
		for i, c := range e.Children {
			if c == fromChildID {
				children[i] = toChildID
				changed = true
			} else {
				children[i] = c
			}
		}
		if changed {
			e.Children = children
			s.Adj[id] = e
		}
	}
}

// SetRoot changes the staged root.
func (s *Staging) SetRoot(id string) {
	s.Root = id
}

// MintID returns the next sequential id from the staged counter and
// advances it, for edits (wrapByName) that must mint a fresh node.
func (s *Staging) MintID() string {
	if s.Counter == "" {
		s.Counter = "a"
	}
	id := s.Counter
	s.Counter = graph.Increment(id)
	return id
}

// Commit validates that s.Root is present and every child reference
// resolves, and returns the resulting immutable Program. It does not
// detect or reject duplicate ids created by AddEntry overwrites, nor
// duplicate entries within a single Children list.
func Commit(s *Staging) (graph.Program, error) {
	if _, ok := s.Adj[s.Root]; !ok {
		return graph.Program{}, graph.ErrMissingRoot.New(s.Root)
	}
	for id, e := range s.Adj {
		for _, c := range e.Children {
			if _, ok := s.Adj[c]; !ok {
				return graph.Program{}, graph.ErrDanglingChild.New(id, c)
			}
		}
	}
	return graph.Program{
		Root:    s.Root,
		Adj:     s.Adj.Clone(),
		Counter: s.Counter,
	}, nil
}
