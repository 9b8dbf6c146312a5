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
	"time"

	"github.com/sirupsen/logrus"
)

// Auditor logs a single trail of fold invocations, the way the teacher's
// auth.AuditMethod logs a trail of authentication/authorization/query
// events: one structured line per event, never a side channel a caller has
// to poll.
type Auditor interface {
	// FoldStart logs that a fold over root has begun.
	FoldStart(invocationID, root string)
	// FoldComplete logs that a fold over root finished, successfully or not,
	// after duration d.
	FoldComplete(invocationID, root string, d time.Duration, err error)
}

const auditLogMessage = "fold audit trail"

// NewAuditor returns an Auditor that logs to l under the "audit" subsystem
// field.
func NewAuditor(l *logrus.Logger) Auditor {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &logAuditor{log: l.WithField("system", "audit")}
}

type logAuditor struct {
	log *logrus.Entry
}

func (a *logAuditor) FoldStart(invocationID, root string) {
	a.log.WithFields(logrus.Fields{
		"action":        "fold_start",
		"invocation_id": invocationID,
		"root":          root,
	}).Info(auditLogMessage)
}

func (a *logAuditor) FoldComplete(invocationID, root string, d time.Duration, err error) {
	fields := logrus.Fields{
		"action":        "fold_complete",
		"invocation_id": invocationID,
		"root":          root,
		"duration":      d,
		"success":       true,
	}
	if err != nil {
		fields["success"] = false
		fields["err"] = err
	}
	a.log.WithFields(fields).Info(auditLogMessage)
}
