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

// Package fold implements the async, memoizing, stack-safe trampoline that
// drives a graph.Program to a value via a pluggable Interpreter.
//
// Go has no native coroutines, so a Handler's "yield child index, resume
// with its value, eventually return" shape is expressed as an explicit
// state machine: Coroutine.Step is called repeatedly, each call returning
// either a Step that asks for a child's value (Yield) or one carrying the
// node's final result (Done). This is the same step(resume) -> Yield|Done
// shape the teacher's pull-based sql.RowIter.Next(ctx) exposes for query
// execution, generalized to a tree of dependent values instead of a flat
// row stream.
package fold

import (
	"context"

	"github.com/mikesol/dagql/graph"
)

// stepKind distinguishes a Step that requests a child's value from one
// carrying the node's final result.
type stepKind int

const (
	stepYield stepKind = iota
	stepDone
)

// Step is the result of advancing a Coroutine one tick.
type Step struct {
	kind       stepKind
	childIndex int
	value      interface{}
}

// Yield asks the trampoline for the value of the child at position i in
// the current node's Children list.
func Yield(i int) Step {
	return Step{kind: stepYield, childIndex: i}
}

// Done carries a node's final evaluated value.
func Done(v interface{}) Step {
	return Step{kind: stepDone, value: v}
}

// IsDone reports whether this Step carries a final value rather than a
// child request.
func (s Step) IsDone() bool {
	return s.kind == stepDone
}

// ChildIndex returns the requested child's position. Only meaningful when
// !IsDone().
func (s Step) ChildIndex() int {
	return s.childIndex
}

// Value returns the node's final value. Only meaningful when IsDone().
func (s Step) Value() interface{} {
	return s.value
}

// Coroutine is one in-flight handler invocation for a single node. The
// trampoline calls Step repeatedly: the first call passes resume == nil
// (the described "unit" value); every subsequent call passes the value
// produced for the child most recently requested via Yield. A Coroutine
// must not be shared across nodes or reused after it returns a Done Step.
type Coroutine interface {
	Step(ctx context.Context, resume interface{}) (Step, error)
}

// CoroutineFunc adapts a plain step function to the Coroutine interface
// for handlers with no internal state beyond a closure variable.
type CoroutineFunc func(ctx context.Context, resume interface{}) (Step, error)

// Step implements Coroutine.
func (f CoroutineFunc) Step(ctx context.Context, resume interface{}) (Step, error) {
	return f(ctx, resume)
}

// Handler constructs a fresh Coroutine for one evaluation of a node with
// the given runtime entry. It is called at most once per node per Fold
// invocation.
type Handler func(entry graph.Entry) Coroutine

// Interpreter maps a node kind to the Handler that evaluates it.
type Interpreter map[string]Handler
