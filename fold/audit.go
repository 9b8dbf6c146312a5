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
	"time"

	uuid "github.com/satori/go.uuid"

	"github.com/mikesol/dagql/graph"
	"github.com/mikesol/dagql/internal/telemetry"
)

// FoldAudited wraps FoldProgram with a start/complete audit trail emitted
// through auditor, correlated by a fresh invocation id. Callers that don't
// need an audit trail should call FoldProgram directly.
func FoldAudited(ctx *graph.Context, p graph.Program, interp Interpreter, auditor telemetry.Auditor) (interface{}, error) {
	invocationID := uuid.Must(uuid.NewV4()).String()
	auditor.FoldStart(invocationID, p.Root)

	start := time.Now()
	v, err := FoldProgram(ctx, p, interp)
	auditor.FoldComplete(invocationID, p.Root, time.Since(start), err)

	return v, err
}
