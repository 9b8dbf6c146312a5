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

// Package graph holds the core data model shared by every other package in
// this module: the Program/Entry types, the kind Registry, the sequential id
// minter, and the evaluation Context threaded through the normalizer and the
// fold evaluator.
package graph

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrUnknownKind is raised when the registry has no entry for a kind.
	ErrUnknownKind = errors.NewKind("unknown node kind: %s")
	// ErrUnknownTraitDispatch is raised when a trait cannot resolve its
	// first child's type-key to a concrete kind.
	ErrUnknownTraitDispatch = errors.NewKind("trait %s has no dispatch for type %s")
	// ErrArityMismatch is raised when a node's child count disagrees with
	// its registry signature.
	ErrArityMismatch = errors.NewKind("kind %s expects %d children, got %d")
	// ErrTypeMismatch is raised when a child's output type-key disagrees
	// with the declared input type-key.
	ErrTypeMismatch = errors.NewKind("kind %s: child %d expects type %s, got %s")
	// ErrMissingRoot is raised by commit when the root id is absent from adj.
	ErrMissingRoot = errors.NewKind("root id %s is not present in adj")
	// ErrDanglingChild is raised by commit when an entry references an
	// id absent from adj.
	ErrDanglingChild = errors.NewKind("entry %s references missing child %s")
	// ErrMissingNode is raised by fold when a referenced id is absent from adj.
	ErrMissingNode = errors.NewKind("node %s not found in adj")
	// ErrNoHandler is raised by fold when a kind has no interpreter entry.
	ErrNoHandler = errors.NewKind("no handler registered for kind %s")
	// ErrNoInterpreter is raised by defaults when a plugin declares kinds
	// but supplies neither an override nor a default interpreter.
	ErrNoInterpreter = errors.NewKind("plugin %s declares node kinds but has no interpreter")
	// ErrChildIndexOutOfRange is raised by fold when a handler yields an
	// index past its entry's children.
	ErrChildIndexOutOfRange = errors.NewKind("kind %s: child index %d out of range (%d children)")
)
