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

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrTargetNotFound is returned by WrapByName when targetId is absent
	// from the Program.
	ErrTargetNotFound = errors.NewKind("target id %s not found")
	// ErrSpliceRootLeaf is returned by SpliceWhere when the root itself
	// matches the predicate and has no children to promote in its place —
	// the open question noted in spec.md's design notes; this
	// implementation refuses rather than guessing.
	ErrSpliceRootLeaf = errors.NewKind("cannot splice root %s: it is a leaf with no child to promote")
)
