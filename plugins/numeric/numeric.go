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

// Package numeric is a reference plugin contributing arithmetic node
// kinds: num/literal, num/add, num/mul, num/sub, and the concrete num/eq
// kind the top-level "eq" trait dispatches to for numeric operands.
package numeric

import (
	"context"
	"fmt"

	"github.com/spf13/cast"

	"github.com/mikesol/dagql/expr"
	"github.com/mikesol/dagql/fold"
	"github.com/mikesol/dagql/graph"
	"github.com/mikesol/dagql/plugin"
)

// Node kinds contributed by this plugin.
const (
	KindLiteral = "num/literal"
	KindAdd     = "num/add"
	KindMul     = "num/mul"
	KindSub     = "num/sub"
	KindEq      = "num/eq"
)

// Name identifies this plugin to plugin.Defaults.
const Name = "numeric"

// Literal constructs an explicit num/literal node for v.
func Literal(v float64) expr.Expression {
	return expr.NewLiteral(KindLiteral, expr.TypeNumber, v)
}

// Add constructs a num/add node.
func Add(a, b expr.Child) expr.Expression {
	return expr.NewConcrete(KindAdd, "ADD", expr.TypeNumber, a, b)
}

// Mul constructs a num/mul node.
func Mul(a, b expr.Child) expr.Expression {
	return expr.NewConcrete(KindMul, "MUL", expr.TypeNumber, a, b)
}

// Sub constructs a num/sub node.
func Sub(a, b expr.Child) expr.Expression {
	return expr.NewConcrete(KindSub, "SUB", expr.TypeNumber, a, b)
}

// Eq constructs a concrete num/eq node directly, bypassing the "eq" trait.
func Eq(a, b expr.Child) expr.Expression {
	return expr.NewConcrete(KindEq, "NEQ", expr.TypeBoolean, a, b)
}

// Register adds this plugin's kinds to reg.
func Register(reg *graph.Registry) {
	number := []graph.TypeKey{expr.TypeNumber, expr.TypeNumber}
	reg.RegisterSignature(KindLiteral, graph.Signature{Output: expr.TypeNumber})
	reg.RegisterSignature(KindAdd, graph.Signature{Inputs: number, Output: expr.TypeNumber})
	reg.RegisterSignature(KindMul, graph.Signature{Inputs: number, Output: expr.TypeNumber})
	reg.RegisterSignature(KindSub, graph.Signature{Inputs: number, Output: expr.TypeNumber})
	reg.RegisterSignature(KindEq, graph.Signature{Inputs: number, Output: expr.TypeBoolean})
}

// Descriptor returns this plugin's plugin.Descriptor, wired with its
// default interpreter.
func Descriptor() plugin.Descriptor {
	return plugin.Descriptor{
		Name:               Name,
		NodeKinds:          []string{KindLiteral, KindAdd, KindMul, KindSub, KindEq},
		DefaultInterpreter: DefaultInterpreter,
	}
}

// DefaultInterpreter returns the handlers for this plugin's kinds.
func DefaultInterpreter() fold.Interpreter {
	return fold.Interpreter{
		KindLiteral: literalHandler,
		KindAdd:     binaryHandler(func(a, b float64) interface{} { return a + b }),
		KindMul:     binaryHandler(func(a, b float64) interface{} { return a * b }),
		KindSub:     binaryHandler(func(a, b float64) interface{} { return a - b }),
		KindEq:      binaryHandler(func(a, b float64) interface{} { return a == b }),
	}
}

func literalHandler(entry graph.Entry) fold.Coroutine {
	return fold.CoroutineFunc(func(_ context.Context, _ interface{}) (fold.Step, error) {
		return fold.Done(entry.Out), nil
	})
}

// binaryHandler builds a Coroutine that yields its two children in order
// and combines their values with combine.
func binaryHandler(combine func(a, b float64) interface{}) fold.Handler {
	return func(entry graph.Entry) fold.Coroutine {
		var left float64
		step := 0
		return fold.CoroutineFunc(func(_ context.Context, resume interface{}) (fold.Step, error) {
			switch step {
			case 0:
				step = 1
				return fold.Yield(0), nil
			case 1:
				v, err := cast.ToFloat64E(resume)
				if err != nil {
					return fold.Step{}, fmt.Errorf("%s: left operand: %w", entry.Kind, err)
				}
				left = v
				step = 2
				return fold.Yield(1), nil
			default:
				right, err := cast.ToFloat64E(resume)
				if err != nil {
					return fold.Step{}, fmt.Errorf("%s: right operand: %w", entry.Kind, err)
				}
				return fold.Done(combine(left, right)), nil
			}
		})
	}
}
