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

package graph

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Context wraps a standard context.Context with the structured logger
// carried through normalization and folding, the way sql.Context carries a
// session and client info through query execution in the teacher codebase.
type Context struct {
	context.Context
	log *logrus.Entry
}

// NewContext wraps parent with a logger scoped to subsystem, in the style
// of auth.NewAuditLog's `l.WithField("system", "audit")`.
func NewContext(parent context.Context, log *logrus.Entry, subsystem string) *Context {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Context{Context: parent, log: log.WithField("system", subsystem)}
}

// Log returns the logger scoped to this Context.
func (c *Context) Log() *logrus.Entry {
	return c.log
}

// WithFields returns a derived Context whose logger carries the given
// fields in addition to any already attached.
func (c *Context) WithFields(fields logrus.Fields) *Context {
	return &Context{Context: c.Context, log: c.log.WithFields(fields)}
}

// WithContext returns a derived Context that keeps this Context's logger
// but replaces the embedded standard context.Context, e.g. after deriving
// a child span context from it.
func (c *Context) WithContext(parent context.Context) *Context {
	return &Context{Context: parent, log: c.log}
}
