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

package fold

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mikesol/dagql/graph"
	"github.com/mikesol/dagql/internal/telemetry"
)

// frame is one in-flight node on the explicit trampoline stack.
type frame struct {
	id      string
	kind    string
	co      Coroutine
	pending interface{}
}

// Fold evaluates the Program rooted at root within adj, dispatching each
// node's kind through interp, and returns its value. Evaluation runs on a
// single logical task: exactly one Coroutine is created and driven to
// completion per id, regardless of how many parents share it (diamond
// sharing), and auxiliary stack depth is O(1) — the explicit frame stack
// is the only structure that grows with graph depth, so arbitrarily deep
// chains fold without native stack overflow.
func Fold(ctx *graph.Context, root string, adj graph.Adjacency, interp Interpreter) (interface{}, error) {
	if ctx == nil {
		ctx = telemetry.NewInvocation(context.Background(), nil, "fold")
	}

	memo := make(map[string]interface{})
	var stack []*frame

	push := func(id string) error {
		entry, ok := adj[id]
		if !ok {
			return graph.ErrMissingNode.New(id)
		}
		handler, ok := interp[entry.Kind]
		if !ok {
			return graph.ErrNoHandler.New(entry.Kind)
		}
		stack = append(stack, &frame{id: id, kind: entry.Kind, co: handler(entry)})
		return nil
	}

	if err := push(root); err != nil {
		return nil, err
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		// A shared node may already have completed via another path by
		// the time its frame reaches the top of the stack.
		if v, ok := memo[top.id]; ok {
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return v, nil
			}
			stack[len(stack)-1].pending = v
			continue
		}

		span, frameCtx := telemetry.StartFrameSpan(ctx, "fold.step", top.kind, top.id)
		step, err := top.co.Step(frameCtx, top.pending)
		span.Finish()
		if err != nil {
			ctx.Log().WithFields(logrus.Fields{"id": top.id, "kind": top.kind, "err": err}).
				Error("fold handler raised")
			return nil, err
		}
		top.pending = nil

		if step.IsDone() {
			memo[top.id] = step.Value()
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return step.Value(), nil
			}
			stack[len(stack)-1].pending = step.Value()
			continue
		}

		entry := adj[top.id]
		idx := step.ChildIndex()
		if idx < 0 || idx >= len(entry.Children) {
			return nil, graph.ErrChildIndexOutOfRange.New(top.kind, idx, len(entry.Children))
		}

		childID := entry.Children[idx]
		if v, ok := memo[childID]; ok {
			top.pending = v
			continue
		}
		if err := push(childID); err != nil {
			return nil, err
		}
	}

	// Unreachable: push(root) above either fails (returning early) or
	// leaves the stack non-empty, and every completion path inside the
	// loop returns directly once the stack drains.
	return nil, graph.ErrMissingNode.New(root)
}

// FoldProgram is a convenience wrapper for Fold(ctx, p.Root, p.Adj, interp).
func FoldProgram(ctx *graph.Context, p graph.Program, interp Interpreter) (interface{}, error) {
	return Fold(ctx, p.Root, p.Adj, interp)
}
