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

package expr

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/mikesol/dagql/graph"
)

// Kind strings minted for lifted raw scalars, per spec.md section 3.
const (
	KindNumLiteral  = "num/literal"
	KindStrLiteral  = "str/literal"
	KindBoolLiteral = "bool/literal"
)

// Output type-keys produced by the lifted literal kinds.
const (
	TypeNumber  graph.TypeKey = "number"
	TypeString  graph.TypeKey = "string"
	TypeBoolean graph.TypeKey = "boolean"
)

// LiteralID returns the deterministic content-addressed id for a raw
// scalar: "L<value>" for numbers, "S<value>" for strings, "B<value>" for
// booleans, matching spec.md's literal id examples exactly.
func LiteralID(v interface{}) string {
	switch t := v.(type) {
	case bool:
		return fmt.Sprintf("B%t", t)
	case string:
		return fmt.Sprintf("S%s", t)
	default:
		if n, err := cast.ToFloat64E(v); err == nil {
			return fmt.Sprintf("L%s", formatNumber(n))
		}
		// Not a recognized scalar kind; callers that reach here are
		// constructing with an unsupported child type. Keep the id
		// distinguishable rather than silently colliding two unrelated
		// values.
		return fmt.Sprintf("?%v", v)
	}
}

// LiftScalar classifies a raw scalar into the kind string and type-key of
// the literal node normalize.App should synthesize for it, and returns the
// scalar coerced to its canonical Go representation (float64, string, or
// bool). ok is false if v is not a recognized scalar.
func LiftScalar(v interface{}) (kind string, typeKey graph.TypeKey, scalar interface{}, ok bool) {
	switch t := v.(type) {
	case bool:
		return KindBoolLiteral, TypeBoolean, t, true
	case string:
		return KindStrLiteral, TypeString, t, true
	default:
		if n, err := cast.ToFloat64E(v); err == nil {
			return KindNumLiteral, TypeNumber, n, true
		}
		return "", "", nil, false
	}
}

// NewLiteral builds an Expression for an explicitly-constructed literal
// node of the given kind and type-key, carrying scalar as its precomputed
// value. Plugins use this for their literal constructors (e.g.
// numeric.Literal), rather than relying on automatic raw-scalar lifting,
// when the caller wants an explicit node in hand (to wrap, name, or
// otherwise reference before normalization).
func NewLiteral(kind string, typeKey graph.TypeKey, scalar interface{}) Expression {
	id := LiteralID(scalar)
	return Expression{
		ID:         id,
		Adj:        map[string]RawEntry{id: {Kind: kind, Out: scalar}},
		Scalars:    map[string]interface{}{},
		OutputType: typeKey,
	}
}

// formatNumber renders n without a trailing ".0" for integral values, so
// literal ids for 3 and 3.0 coincide (both lift to the same num/literal
// node), matching "L3" from spec.md's worked examples.
func formatNumber(n float64) string {
	if n == float64(int64(n)) {
		return fmt.Sprintf("%d", int64(n))
	}
	return fmt.Sprintf("%g", n)
}
