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

// Package telemetry centralizes the ambient logging/tracing wiring used by
// the fold evaluator and the cmd/dagql demo, the way the teacher centralizes
// audit logging in its auth package rather than inlining it at every call
// site.
package telemetry

import (
	"context"

	"github.com/sirupsen/logrus"
	uuid "github.com/satori/go.uuid"

	"github.com/mikesol/dagql/graph"
)

// NewInvocation wraps parent with a logger stamped with a fresh
// correlation id, so that concurrent or successive Fold calls are
// distinguishable in logs, mirroring request/connection ids elsewhere in
// the teacher codebase.
func NewInvocation(parent context.Context, log *logrus.Entry, subsystem string) *graph.Context {
	if parent == nil {
		parent = context.Background()
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	invocationID := uuid.Must(uuid.NewV4()).String()
	return graph.NewContext(parent, log.WithField("invocation_id", invocationID), subsystem)
}
