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

// WrapByName mints a fresh id for a new entry of kind wrapperKind whose
// sole child is targetID, and rewires every existing parent of targetID to
// reference the wrapper instead. If targetID was the root, the wrapper
// becomes the new root. The target entry itself is left unchanged. The
// Program's counter advances by one.
func WrapByName(p graph.Program, targetID, wrapperKind string) (graph.Program, error) {
	if _, ok := p.Entry(targetID); !ok {
		return graph.Program{}, ErrTargetNotFound.New(targetID)
	}

	s := Dirty(p)
	wrapperID := s.MintID()

	// Rewire parents before inserting the wrapper entry itself, so the
	// wrapper's own reference to targetID (added next) is not also
	// rewritten into a self-loop.
	s.RewireChildren(targetID, wrapperID)
	s.AddEntry(wrapperID, graph.Entry{Kind: wrapperKind, Children: []string{targetID}})

	if p.Root == targetID {
		s.SetRoot(wrapperID)
	}

	return Commit(s)
}
