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

// Package stringx is a reference plugin contributing string node kinds:
// str/literal, str/concat, and the concrete str/eq kind the top-level
// "eq" trait dispatches to for string operands.
package stringx

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
	KindLiteral = "str/literal"
	KindConcat  = "str/concat"
	KindEq      = "str/eq"
)

// Name identifies this plugin to plugin.Defaults.
const Name = "stringx"

// Literal constructs an explicit str/literal node for v.
func Literal(v string) expr.Expression {
	return expr.NewLiteral(KindLiteral, expr.TypeString, v)
}

// Concat constructs a str/concat node joining two or more children, left
// associatively folding any additional children into nested binary
// str/concat nodes so the registry's fixed-arity signature applies
// uniformly.
func Concat(first, second expr.Child, rest ...expr.Child) expr.Expression {
	acc := expr.NewConcrete(KindConcat, "CAT", expr.TypeString, first, second)
	for _, c := range rest {
		acc = expr.NewConcrete(KindConcat, "CAT", expr.TypeString, acc, c)
	}
	return acc
}

// Eq constructs a concrete str/eq node directly, bypassing the "eq" trait.
func Eq(a, b expr.Child) expr.Expression {
	return expr.NewConcrete(KindEq, "SEQ", expr.TypeBoolean, a, b)
}

// Register adds this plugin's kinds to reg.
func Register(reg *graph.Registry) {
	strings2 := []graph.TypeKey{expr.TypeString, expr.TypeString}
	reg.RegisterSignature(KindLiteral, graph.Signature{Output: expr.TypeString})
	reg.RegisterSignature(KindEq, graph.Signature{Inputs: strings2, Output: expr.TypeBoolean})
	reg.RegisterSignature(KindConcat, graph.Signature{Inputs: strings2, Output: expr.TypeString})
}

// Descriptor returns this plugin's plugin.Descriptor, wired with its
// default interpreter.
func Descriptor() plugin.Descriptor {
	return plugin.Descriptor{
		Name:               Name,
		NodeKinds:          []string{KindLiteral, KindConcat, KindEq},
		DefaultInterpreter: DefaultInterpreter,
	}
}

// DefaultInterpreter returns the handlers for this plugin's kinds.
func DefaultInterpreter() fold.Interpreter {
	return fold.Interpreter{
		KindLiteral: literalHandler,
		KindConcat:  concatHandler,
		KindEq:      eqHandler,
	}
}

func literalHandler(entry graph.Entry) fold.Coroutine {
	return fold.CoroutineFunc(func(_ context.Context, _ interface{}) (fold.Step, error) {
		return fold.Done(entry.Out), nil
	})
}

func concatHandler(entry graph.Entry) fold.Coroutine {
	var left string
	step := 0
	return fold.CoroutineFunc(func(_ context.Context, resume interface{}) (fold.Step, error) {
		switch step {
		case 0:
			step = 1
			return fold.Yield(0), nil
		case 1:
			s, err := cast.ToStringE(resume)
			if err != nil {
				return fold.Step{}, fmt.Errorf("str/concat: left operand: %w", err)
			}
			left = s
			step = 2
			return fold.Yield(1), nil
		default:
			right, err := cast.ToStringE(resume)
			if err != nil {
				return fold.Step{}, fmt.Errorf("str/concat: right operand: %w", err)
			}
			return fold.Done(left + right), nil
		}
	})
}

func eqHandler(entry graph.Entry) fold.Coroutine {
	var left string
	step := 0
	return fold.CoroutineFunc(func(_ context.Context, resume interface{}) (fold.Step, error) {
		switch step {
		case 0:
			step = 1
			return fold.Yield(0), nil
		case 1:
			s, err := cast.ToStringE(resume)
			if err != nil {
				return fold.Step{}, fmt.Errorf("str/eq: left operand: %w", err)
			}
			left = s
			step = 2
			return fold.Yield(1), nil
		default:
			right, err := cast.ToStringE(resume)
			if err != nil {
				return fold.Step{}, fmt.Errorf("str/eq: right operand: %w", err)
			}
			return fold.Done(left == right), nil
		}
	})
}
