package fold_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/mikesol/dagql/fold"
	"github.com/mikesol/dagql/graph"
	"github.com/mikesol/dagql/internal/telemetry"
)

func TestFoldAuditedLogsStartAndComplete(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.Out = &buf
	logger.SetFormatter(&logrus.JSONFormatter{})

	p := graph.Program{
		Root:    "a",
		Adj:     graph.Adjacency{"a": {Kind: "lit", Out: 1}},
		Counter: "b",
	}

	auditor := telemetry.NewAuditor(logger)
	ctx := telemetry.NewInvocation(context.Background(), nil, "fold")

	v, err := fold.FoldAudited(ctx, p, literalInterp(nil), auditor)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	out := buf.String()
	require.Contains(t, out, "fold_start")
	require.Contains(t, out, "fold_complete")
}

func TestFoldAuditedLogsErrorOnFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.Out = &buf
	logger.SetFormatter(&logrus.JSONFormatter{})

	p := graph.Program{Root: "ghost", Adj: graph.Adjacency{}, Counter: "a"}

	auditor := telemetry.NewAuditor(logger)
	_, err := fold.FoldAudited(nil, p, literalInterp(nil), auditor)
	require.Error(t, err)
	require.Contains(t, buf.String(), `"success":false`)
}
