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

// Package boolean is a reference plugin contributing boolean node kinds:
// bool/literal, bool/not, and the concrete bool/eq kind the top-level
// "eq" trait dispatches to for boolean operands.
package boolean

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
	KindLiteral = "bool/literal"
	KindNot     = "bool/not"
	KindEq      = "bool/eq"
)

// Name identifies this plugin to plugin.Defaults.
const Name = "boolean"

// Literal constructs an explicit bool/literal node for v.
func Literal(v bool) expr.Expression {
	return expr.NewLiteral(KindLiteral, expr.TypeBoolean, v)
}

// Not constructs a bool/not node.
func Not(a expr.Child) expr.Expression {
	return expr.NewConcrete(KindNot, "NOT", expr.TypeBoolean, a)
}

// Eq constructs a concrete bool/eq node directly, bypassing the "eq" trait.
func Eq(a, b expr.Child) expr.Expression {
	return expr.NewConcrete(KindEq, "BEQ", expr.TypeBoolean, a, b)
}

// Register adds this plugin's kinds to reg.
func Register(reg *graph.Registry) {
	one := []graph.TypeKey{expr.TypeBoolean}
	two := []graph.TypeKey{expr.TypeBoolean, expr.TypeBoolean}
	reg.RegisterSignature(KindLiteral, graph.Signature{Output: expr.TypeBoolean})
	reg.RegisterSignature(KindNot, graph.Signature{Inputs: one, Output: expr.TypeBoolean})
	reg.RegisterSignature(KindEq, graph.Signature{Inputs: two, Output: expr.TypeBoolean})
}

// Descriptor returns this plugin's plugin.Descriptor, wired with its
// default interpreter.
func Descriptor() plugin.Descriptor {
	return plugin.Descriptor{
		Name:               Name,
		NodeKinds:          []string{KindLiteral, KindNot, KindEq},
		DefaultInterpreter: DefaultInterpreter,
	}
}

// DefaultInterpreter returns the handlers for this plugin's kinds.
func DefaultInterpreter() fold.Interpreter {
	return fold.Interpreter{
		KindLiteral: literalHandler,
		KindNot:     notHandler,
		KindEq:      eqHandler,
	}
}

func literalHandler(entry graph.Entry) fold.Coroutine {
	return fold.CoroutineFunc(func(_ context.Context, _ interface{}) (fold.Step, error) {
		return fold.Done(entry.Out), nil
	})
}

func notHandler(entry graph.Entry) fold.Coroutine {
	yielded := false
	return fold.CoroutineFunc(func(_ context.Context, resume interface{}) (fold.Step, error) {
		if !yielded {
			yielded = true
			return fold.Yield(0), nil
		}
		v, err := cast.ToBoolE(resume)
		if err != nil {
			return fold.Step{}, fmt.Errorf("bool/not: operand: %w", err)
		}
		return fold.Done(!v), nil
	})
}

func eqHandler(entry graph.Entry) fold.Coroutine {
	var left bool
	step := 0
	return fold.CoroutineFunc(func(_ context.Context, resume interface{}) (fold.Step, error) {
		switch step {
		case 0:
			step = 1
			return fold.Yield(0), nil
		case 1:
			v, err := cast.ToBoolE(resume)
			if err != nil {
				return fold.Step{}, fmt.Errorf("bool/eq: left operand: %w", err)
			}
			left = v
			step = 2
			return fold.Yield(1), nil
		default:
			right, err := cast.ToBoolE(resume)
			if err != nil {
				return fold.Step{}, fmt.Errorf("bool/eq: right operand: %w", err)
			}
			return fold.Done(left == right), nil
		}
	})
}
