package dagql_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikesol/dagql/dagql"
	"github.com/mikesol/dagql/graph"
)

func programWithOrphan() graph.Program {
	p := sampleProgram()
	p.Adj["orphan"] = graph.Entry{Kind: "num/literal", Out: 123.0}
	return p
}

func TestGcRemovesUnreachable(t *testing.T) {
	p := programWithOrphan()
	out := dagql.Gc(p)

	_, ok := out.Entry("orphan")
	require.False(t, ok)
	_, ok = out.Entry("c")
	require.True(t, ok)
}

func TestGcDropsAliases(t *testing.T) {
	p := sampleProgram()
	named, err := dagql.Name(p, "sum", "c")
	require.NoError(t, err)

	out := dagql.Gc(named)
	_, ok := out.Entry("@sum")
	require.False(t, ok)
}

func TestGcPreservingAliasesKeepsReachableAlias(t *testing.T) {
	p := sampleProgram()
	named, err := dagql.Name(p, "sum", "c")
	require.NoError(t, err)

	out := dagql.GcPreservingAliases(named)
	_, ok := out.Entry("@sum")
	require.True(t, ok)
}

func TestGcPreservingAliasesDropsAliasToUnreachableTarget(t *testing.T) {
	p := programWithOrphan()
	named, err := dagql.Name(p, "ghost", "orphan")
	require.NoError(t, err)

	out := dagql.GcPreservingAliases(named)
	_, ok := out.Entry("@ghost")
	require.False(t, ok, "an alias whose target is unreachable is still dropped")
}
