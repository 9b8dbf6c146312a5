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

// Package plugins wires together the reference plugins (numeric, stringx,
// boolean) that ship alongside the engine, and hosts the one trait that
// spans all three: "eq", dispatched by the type-key of its first operand.
package plugins

import (
	"github.com/mikesol/dagql/expr"
	"github.com/mikesol/dagql/graph"
	"github.com/mikesol/dagql/plugin"
	"github.com/mikesol/dagql/plugins/boolean"
	"github.com/mikesol/dagql/plugins/numeric"
	"github.com/mikesol/dagql/plugins/stringx"
)

// EqKind is the trait kind name, matching spec.md's worked example:
// "the trait eq dispatches to {number: num/eq, string: str/eq,
// boolean: bool/eq}".
const EqKind = "eq"

// Eq constructs a trait node; normalize.App resolves it to the concrete
// *.eq kind matching its first child's output type.
func Eq(a, b expr.Child) expr.Expression {
	return expr.NewTrait(EqKind, "EQ", a, b)
}

// RegisterEqTrait adds the eq trait's dispatch table to reg. It assumes
// numeric.Register, stringx.Register, and boolean.Register have already
// registered their concrete num/eq, str/eq, and bool/eq kinds.
func RegisterEqTrait(reg *graph.Registry) {
	reg.RegisterTrait(EqKind, graph.Trait{
		Output: expr.TypeBoolean,
		Dispatch: map[graph.TypeKey]string{
			expr.TypeNumber:  numeric.KindEq,
			expr.TypeString:  stringx.KindEq,
			expr.TypeBoolean: boolean.KindEq,
		},
	})
}

// RegisterAll registers the numeric, stringx, and boolean plugins'
// concrete kinds together with the shared eq trait.
func RegisterAll(reg *graph.Registry) {
	numeric.Register(reg)
	stringx.Register(reg)
	boolean.Register(reg)
	RegisterEqTrait(reg)
}

// Descriptors returns the plugin.Descriptor for every reference plugin, in
// the order plugin.Defaults should merge them.
func Descriptors() []plugin.Descriptor {
	return []plugin.Descriptor{
		numeric.Descriptor(),
		stringx.Descriptor(),
		boolean.Descriptor(),
	}
}
