// Copyright 2020-2022 Dolthub, Inc.
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

// This is an example of how to build, normalize, and fold an expression
// graph using the reference plugins.
//
// > go run ./cmd/dagql
// mul(add(3, 4), 5) = 35
// (3 numeric literal node(s) in the normalized program)
//
// An optional TOML manifest may be passed as the first argument to pick a
// subset of the reference plugins; a sibling .yaml file, if present, lists
// node kinds to drop from the composed interpreter after defaults merges
// it (see config.go).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mikesol/dagql/dagql"
	"github.com/mikesol/dagql/expr"
	"github.com/mikesol/dagql/fold"
	"github.com/mikesol/dagql/graph"
	"github.com/mikesol/dagql/internal/telemetry"
	"github.com/mikesol/dagql/normalize"
	"github.com/mikesol/dagql/plugin"
	"github.com/mikesol/dagql/plugins"
	"github.com/mikesol/dagql/plugins/boolean"
	"github.com/mikesol/dagql/plugins/numeric"
	"github.com/mikesol/dagql/plugins/stringx"
)

var allDescriptors = map[string]plugin.Descriptor{
	"numeric": numeric.Descriptor(),
	"stringx": stringx.Descriptor(),
	"boolean": boolean.Descriptor(),
}

func main() {
	log := logrus.StandardLogger()
	log.SetLevel(logrus.InfoLevel)

	cfg := defaultConfig()
	if len(os.Args) > 1 {
		loaded, ok, err := loadConfig(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "dagql: loading config: %v\n", err)
			os.Exit(1)
		}
		if ok {
			cfg = loaded
		}
	}

	reg := graph.NewRegistry()
	plugins.RegisterAll(reg)

	descs := make([]plugin.Descriptor, 0, len(cfg.Plugins))
	for _, name := range cfg.Plugins {
		d, ok := allDescriptors[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "dagql: unknown plugin %q\n", name)
			os.Exit(1)
		}
		descs = append(descs, d)
	}

	interp, err := plugin.Defaults(descs, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dagql: composing interpreters: %v\n", err)
		os.Exit(1)
	}

	if disabled, err := loadDisabledKinds(siblingPath(manifestPath(), ".yaml")); err != nil {
		fmt.Fprintf(os.Stderr, "dagql: loading overrides: %v\n", err)
		os.Exit(1)
	} else {
		for _, kind := range disabled {
			delete(interp, kind)
		}
	}

	// mul(add(3, 4), 5), the scenario-1 expression from spec.md section 8.
	program := numeric.Mul(numeric.Add(3, 4), numeric.Literal(5))

	ctx := graph.NewContext(context.Background(), log.WithField("component", "cmd/dagql"), "demo")

	prog, err := normalize.App(ctx, program, reg)
	if err != nil {
		// Wrapping at this caller boundary attaches a stack trace to the
		// typed go-errors.v1 cause without inventing a second taxonomy;
		// errors.Cause(err) recovers the original *errors.Error if a
		// caller needs to inspect its Kind.
		err = errors.Wrap(err, "normalizing demo program")
		fmt.Fprintf(os.Stderr, "dagql: %+v\n", err)
		os.Exit(1)
	}

	// Exercise the dagql query layer: count how many nodes in the
	// normalized program are numeric literals.
	literals := dagql.SelectWhere(prog, dagql.ByKind(numeric.KindLiteral))

	invocationCtx := telemetry.NewInvocation(context.Background(), log.WithField("component", "cmd/dagql"), "fold")
	auditor := telemetry.NewAuditor(log)

	result, err := fold.FoldAudited(invocationCtx, prog, interp, auditor)
	if err != nil {
		err = errors.Wrap(err, "folding demo program")
		fmt.Fprintf(os.Stderr, "dagql: %+v\n", err)
		os.Exit(1)
	}

	fmt.Printf("mul(add(3, 4), 5) = %v\n", result)
	fmt.Printf("(%d numeric literal node(s) in the normalized program)\n", len(literals))
}

func manifestPath() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return "dagql.toml"
}
