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

// Package dagql implements the pure predicate/selector/transform layer and
// the dirty/commit structural-edit protocol over graph.Program values.
package dagql

import (
	"strings"

	"github.com/mikesol/dagql/graph"
)

// Predicate is a pure test over an id in a Program.
type Predicate func(p graph.Program, id string) bool

// ByKind matches an entry whose Kind is exactly kind.
func ByKind(kind string) Predicate {
	return func(p graph.Program, id string) bool {
		e, ok := p.Entry(id)
		return ok && e.Kind == kind
	}
}

// ByKindGlob matches any entry whose Kind starts with prefix. A trailing
// "/" on prefix is permitted and matched literally, so "num/" selects only
// kinds in the num namespace while "num" also matches e.g. "numeric/x".
func ByKindGlob(prefix string) Predicate {
	return func(p graph.Program, id string) bool {
		e, ok := p.Entry(id)
		return ok && strings.HasPrefix(e.Kind, prefix)
	}
}

// IsLeaf matches an entry with no children.
func IsLeaf() Predicate {
	return func(p graph.Program, id string) bool {
		e, ok := p.Entry(id)
		return ok && len(e.Children) == 0
	}
}

// HasChildCount matches an entry with exactly n children.
func HasChildCount(n int) Predicate {
	return func(p graph.Program, id string) bool {
		e, ok := p.Entry(id)
		return ok && len(e.Children) == n
	}
}

// ByName matches the id bound to alias by a prior Name call: the single
// child of the "@<alias>" entry.
func ByName(alias string) Predicate {
	aliasID := graph.AliasPrefix + alias
	return func(p graph.Program, id string) bool {
		a, ok := p.Entry(aliasID)
		if !ok || !a.IsAlias() || len(a.Children) != 1 {
			return false
		}
		return a.Children[0] == id
	}
}

// Not negates a predicate.
func Not(p Predicate) Predicate {
	return func(prog graph.Program, id string) bool { return !p(prog, id) }
}

// And is true only when every predicate is true.
func And(ps ...Predicate) Predicate {
	return func(prog graph.Program, id string) bool {
		for _, p := range ps {
			if !p(prog, id) {
				return false
			}
		}
		return true
	}
}

// Or is true when any predicate is true.
func Or(ps ...Predicate) Predicate {
	return func(prog graph.Program, id string) bool {
		for _, p := range ps {
			if p(prog, id) {
				return true
			}
		}
		return false
	}
}
