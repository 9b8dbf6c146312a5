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

package telemetry

import (
	opentracing "github.com/opentracing/opentracing-go"

	"github.com/mikesol/dagql/graph"
)

// StartFrameSpan opens a span named operation, tagged with the node's kind
// and id, as a child of any span already carried on ctx. It must be paired
// with a call to span.Finish(); Fold opens one per coroutine step and
// finishes it as soon as that step returns.
// Tracing is opt-in: with no tracer registered, opentracing.GlobalTracer()
// returns a no-op tracer and this call is nearly free.
func StartFrameSpan(ctx *graph.Context, operation, kind, id string) (opentracing.Span, *graph.Context) {
	span, spanCtx := opentracing.StartSpanFromContextWithTracer(
		ctx.Context,
		opentracing.GlobalTracer(),
		operation,
	)
	span.SetTag("dagql.kind", kind)
	span.SetTag("dagql.id", id)

	return span, ctx.WithContext(spanCtx)
}
