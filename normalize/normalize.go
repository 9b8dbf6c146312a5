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

// Package normalize implements App, the depth-first normalizer that turns
// a content-addressed expr.Expression into an immutable graph.Program with
// short sequential ids, resolved trait dispatch, and validated arities and
// types.
package normalize

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mikesol/dagql/expr"
	"github.com/mikesol/dagql/graph"
)

// App normalizes root (an expr.Expression, or a raw scalar which is lifted
// first) against reg, the registry that drives trait resolution and
// signature validation. ctx may be nil, in which case a background
// context with the default logger is used.
func App(ctx *graph.Context, root expr.Child, reg *graph.Registry) (graph.Program, error) {
	if ctx == nil {
		ctx = graph.NewContext(context.Background(), nil, "normalize")
	}
	rootID, rawAdj, scalars := expr.Resolve(root)

	n := &normalizer{
		reg:      reg,
		minter:   graph.NewMinter(),
		adj:      graph.Adjacency{},
		memoID:   map[string]string{},
		memoType: map[string]graph.TypeKey{},
		rawAdj:   rawAdj,
		scalars:  scalars,
		log:      ctx.Log(),
	}

	if err := n.validateReachable(rootID); err != nil {
		return graph.Program{}, err
	}

	seqID, _, err := n.normalize(rootID)
	if err != nil {
		return graph.Program{}, err
	}

	return graph.Program{
		Root:    seqID,
		Adj:     n.adj,
		Counter: n.minter.Peek(),
	}, nil
}

// normalizer holds the traversal state for a single App call.
type normalizer struct {
	reg    *graph.Registry
	minter *graph.Minter
	adj    graph.Adjacency

	// memoID/memoType record, per content-addressed id, the sequential id
	// and resolved output type-key already minted for it — this is what
	// makes automatic DAG sharing survive normalization: every reference
	// to the same content id resolves to the same sequential id.
	memoID   map[string]string
	memoType map[string]graph.TypeKey

	rawAdj  map[string]expr.RawEntry
	scalars map[string]interface{}

	log *logrus.Entry
}

// normalize visits contentID, recursing into its children first, and
// returns the sequential id minted for it along with its resolved output
// type-key.
func (n *normalizer) normalize(contentID string) (string, graph.TypeKey, error) {
	if id, ok := n.memoID[contentID]; ok {
		return id, n.memoType[contentID], nil
	}

	if val, ok := n.scalars[contentID]; ok {
		return n.liftScalar(contentID, val)
	}

	raw, ok := n.rawAdj[contentID]
	if !ok {
		return "", "", graph.ErrMissingNode.New(contentID)
	}

	childIDs := make([]string, len(raw.Children))
	childTypes := make([]graph.TypeKey, len(raw.Children))
	for i, c := range raw.Children {
		id, typeKey, err := n.normalize(c)
		if err != nil {
			return "", "", err
		}
		childIDs[i] = id
		childTypes[i] = typeKey
	}

	kind, err := n.resolveKind(raw.Kind, childTypes)
	if err != nil {
		return "", "", err
	}

	sig, ok := n.reg.Signature(kind)
	if !ok {
		return "", "", graph.ErrUnknownKind.New(kind)
	}
	if len(sig.Inputs) != len(childIDs) {
		return "", "", graph.ErrArityMismatch.New(kind, len(sig.Inputs), len(childIDs))
	}
	for i, want := range sig.Inputs {
		if !graph.TypeMatches(want, childTypes[i]) {
			return "", "", graph.ErrTypeMismatch.New(kind, i, string(want), string(childTypes[i]))
		}
	}

	seqID := n.minter.Mint()
	n.adj[seqID] = graph.Entry{Kind: kind, Children: childIDs, Out: raw.Out}
	n.memoID[contentID] = seqID
	n.memoType[contentID] = sig.Output

	n.log.WithFields(logrus.Fields{"id": seqID, "kind": kind, "children": childIDs}).Debug("normalized node")

	return seqID, sig.Output, nil
}

// validateReachable walks the raw graph from rootID using expr.Inspect, the
// same pre-order traversal sql.Inspect-style callers use elsewhere in this
// module, to catch a dangling child reference before normalize's recursive
// descent gets anywhere near it. Each id is inspected at most once: the
// Visitor stops descending as soon as it revisits an id, which keeps the
// walk cheap even when a subtree is referenced from many parents.
func (n *normalizer) validateReachable(rootID string) error {
	visited := map[string]bool{}
	var badID string

	expr.Inspect(expr.Expression{ID: rootID, Adj: n.rawAdj}, func(id string) bool {
		if visited[id] {
			return false
		}
		visited[id] = true

		if _, isScalar := n.scalars[id]; isScalar {
			return false
		}
		if _, ok := n.rawAdj[id]; !ok {
			if badID == "" {
				badID = id
			}
			return false
		}
		return true
	})

	if badID != "" {
		return graph.ErrMissingNode.New(badID)
	}
	return nil
}

// resolveKind substitutes a trait's concrete kind by dispatching on the
// type-key of its first (already-normalized) child. Concrete kinds pass
// through unchanged.
func (n *normalizer) resolveKind(kind string, childTypes []graph.TypeKey) (string, error) {
	trait, ok := n.reg.TraitDescriptor(kind)
	if !ok {
		return kind, nil
	}
	if len(childTypes) == 0 {
		return "", graph.ErrUnknownTraitDispatch.New(kind, "<no children>")
	}
	concrete, ok := trait.Dispatch[childTypes[0]]
	if !ok {
		return "", graph.ErrUnknownTraitDispatch.New(kind, string(childTypes[0]))
	}
	return concrete, nil
}

// liftScalar synthesizes a literal entry for a raw scalar child and mints
// an id for it, per spec.md section 4.2 step 3a.
func (n *normalizer) liftScalar(contentID string, val interface{}) (string, graph.TypeKey, error) {
	kind, typeKey, scalar, ok := expr.LiftScalar(val)
	if !ok {
		return "", "", graph.ErrUnknownKind.New("<unsupported scalar>")
	}

	seqID := n.minter.Mint()
	n.adj[seqID] = graph.Entry{Kind: kind, Out: scalar}
	n.memoID[contentID] = seqID
	n.memoType[contentID] = typeKey

	n.log.WithFields(logrus.Fields{"id": seqID, "kind": kind, "value": scalar}).Debug("lifted literal")

	return seqID, typeKey, nil
}
