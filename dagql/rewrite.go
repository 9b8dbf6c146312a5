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

// MapWhere returns a new Program in which every id matching pred has its
// entry replaced by f(oldEntry). Non-matching entries are preserved
// bit-identically (the same Entry value, sharing its Children backing
// array with p).
func MapWhere(p graph.Program, pred Predicate, f func(graph.Entry) graph.Entry) graph.Program {
	newAdj := make(graph.Adjacency, len(p.Adj))
	for id, e := range p.Adj {
		if pred(p, id) {
			newAdj[id] = f(e)
		} else {
			newAdj[id] = e
		}
	}
	return graph.Program{Root: p.Root, Adj: newAdj, Counter: p.Counter}
}

// ReplaceWhere is MapWhere specialized to changing only the Kind of every
// matching entry.
func ReplaceWhere(p graph.Program, pred Predicate, newKind string) graph.Program {
	return MapWhere(p, pred, func(e graph.Entry) graph.Entry {
		e.Kind = newKind
		return e
	})
}
