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

// IDSet is an unordered set of Program ids.
type IDSet map[string]struct{}

// Has reports whether id is a member of the set.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Union returns a new set containing every id in s or other.
func (s IDSet) Union(other IDSet) IDSet {
	out := make(IDSet, len(s)+len(other))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range other {
		out[id] = struct{}{}
	}
	return out
}

// SelectWhere returns the set of ids in p satisfying pred.
func SelectWhere(p graph.Program, pred Predicate) IDSet {
	result := make(IDSet)
	for id := range p.Adj {
		if pred(p, id) {
			result[id] = struct{}{}
		}
	}
	return result
}
