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

// Package plugin composes the interpreters contributed by individual
// plugins into the single flat dispatch table Fold requires.
package plugin

import "github.com/mikesol/dagql/fold"

// Descriptor is what a plugin contributes to the engine: the node kinds it
// declares and, optionally, a factory for its default interpreter. A
// plugin with no default interpreter must be given an override in every
// Defaults call that includes it, or Defaults fails with ErrNoInterpreter.
type Descriptor struct {
	Name               string
	NodeKinds          []string
	DefaultInterpreter func() fold.Interpreter
}
