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

// Package expr implements the expression-value layer: the permissive,
// content-addressed constructors that user programs and plugins call to
// build up an in-memory graph before it is handed to normalize.App.
package expr

import (
	"fmt"
	"strings"

	"github.com/mitchellh/hashstructure"

	"github.com/mikesol/dagql/graph"
)

// RawEntry is a pre-normalization adjacency entry: a node's kind, the
// content-addressed ids of its children (which may or may not yet have a
// corresponding RawEntry of their own, if they are raw scalars awaiting
// lift), and an optional precomputed scalar.
type RawEntry struct {
	Kind     string
	Children []string
	Out      interface{}
}

// Expression is the pre-normalization value returned by every constructor.
// Id is deterministic in the ids of its children, so two structurally
// identical constructions collide onto the same id and share one entry in
// Adj (automatic DAG sharing).
type Expression struct {
	ID  string
	Adj map[string]RawEntry

	// Scalars carries the original Go value behind every raw-scalar
	// descendant, keyed by that scalar's content-addressed id. Adj
	// deliberately has no entry for a raw scalar (spec.md section 3), so
	// this side table is how normalize.App recovers the value to lift
	// when it reaches that id.
	Scalars map[string]interface{}

	// OutputType is the output type-key this node's own constructor
	// declares. It is informational: the normalizer always re-derives a
	// child's authoritative output type-key from the registry after that
	// child has itself been normalized, rather than trusting this field,
	// because a child may be a raw scalar (no Expression, no field to
	// read) or, transitively, a trait whose own resolution only becomes
	// known during normalization.
	OutputType graph.TypeKey
}

// Child is anything a constructor accepts as a child: a nested Expression,
// or a raw scalar (int, int64, float64, string, bool) that normalize.App
// lifts to a literal node.
type Child = interface{}

// NewConcrete builds an Expression for a concrete (non-trait) kind. prefix
// is a short, human-legible tag folded into the content-addressed id
// alongside a structural hash of the children — collisions only occur
// between structurally identical (prefix, children) constructions, per
// spec.md's content-addressing design notes.
func NewConcrete(kind, prefix string, outputType graph.TypeKey, children ...Child) Expression {
	childIDs, adj, scalars := mergeChildren(children)
	id := compoundID(prefix, childIDs)
	adj[id] = RawEntry{Kind: kind, Children: childIDs}
	return Expression{
		ID:         id,
		Adj:        adj,
		Scalars:    scalars,
		OutputType: outputType,
	}
}

// NewTrait builds an Expression for a trait kind (e.g. "eq"), whose
// concrete resolution is deferred to normalize.App. Trait nodes carry no
// declared OutputType: it is only knowable after dispatch.
func NewTrait(kind, prefix string, children ...Child) Expression {
	childIDs, adj, scalars := mergeChildren(children)
	id := compoundID(prefix, childIDs)
	adj[id] = RawEntry{Kind: kind, Children: childIDs}
	return Expression{
		ID:      id,
		Adj:     adj,
		Scalars: scalars,
	}
}

// mergeChildren computes the content-addressed id of every child (lifting
// raw scalars to their literal id form without yet inserting an entry for
// them) and unions the Adj/Scalars maps of every Expression-valued child.
func mergeChildren(children []Child) ([]string, map[string]RawEntry, map[string]interface{}) {
	childIDs := make([]string, len(children))
	adj := make(map[string]RawEntry)
	scalars := make(map[string]interface{})

	for i, c := range children {
		switch v := c.(type) {
		case Expression:
			childIDs[i] = v.ID
			for id, e := range v.Adj {
				adj[id] = e
			}
			for id, s := range v.Scalars {
				scalars[id] = s
			}
		default:
			id := LiteralID(v)
			childIDs[i] = id
			scalars[id] = v
		}
	}

	return childIDs, adj, scalars
}

// compoundID derives a deterministic id for a compound node from a short
// kind tag and the content-addressed ids of its children.
func compoundID(prefix string, childIDs []string) string {
	sum, err := hashstructure.Hash(struct {
		Prefix   string
		Children []string
	}{prefix, childIDs}, nil)
	if err != nil {
		// hashstructure only fails on unsupported field types; our input
		// is always a string slice, so this path is unreachable in
		// practice. Fall back to plain concatenation rather than panic.
		return fmt.Sprintf("%s(%s)", prefix, strings.Join(childIDs, ","))
	}
	return fmt.Sprintf("%s#%x", prefix, sum)
}

// IsRawScalar reports whether v is a value normalize.App will lift to a
// literal node, rather than an already-constructed Expression.
func IsRawScalar(v Child) bool {
	_, isExpr := v.(Expression)
	return !isExpr
}

// Resolve normalizes any Child — an Expression or a bare raw scalar — into
// the (id, adj, scalars) triple normalize.App needs to start traversing,
// so the normalizer does not need a special case for a scalar root.
func Resolve(v Child) (id string, adj map[string]RawEntry, scalars map[string]interface{}) {
	if e, ok := v.(Expression); ok {
		return e.ID, e.Adj, e.Scalars
	}
	id = LiteralID(v)
	return id, map[string]RawEntry{}, map[string]interface{}{id: v}
}
