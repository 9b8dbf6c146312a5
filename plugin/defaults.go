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

package plugin

import (
	"github.com/mikesol/dagql/fold"
	"github.com/mikesol/dagql/graph"
)

// Defaults walks plugins in order and, for each, merges into the
// composite interpreter: its entry in overrides if present, else its
// DefaultInterpreter() if it declares one, else — if it declares no node
// kinds at all — nothing. A plugin that declares node kinds but supplies
// neither fails the whole call with ErrNoInterpreter. Merging is
// last-writer-wins over kind keys, so caller-supplied plugin order
// determines override precedence.
func Defaults(plugins []Descriptor, overrides map[string]fold.Interpreter) (fold.Interpreter, error) {
	composite := make(fold.Interpreter)

	for _, p := range plugins {
		handlers, ok := overrides[p.Name]
		switch {
		case ok && handlers != nil:
			// use the override as-is
		case p.DefaultInterpreter != nil:
			handlers = p.DefaultInterpreter()
		case len(p.NodeKinds) == 0:
			continue
		default:
			return nil, graph.ErrNoInterpreter.New(p.Name)
		}

		for kind, h := range handlers {
			composite[kind] = h
		}
	}

	return composite, nil
}
