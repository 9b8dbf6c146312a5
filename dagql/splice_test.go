package dagql_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikesol/dagql/dagql"
	"github.com/mikesol/dagql/graph"
)

func TestSpliceWhereCollapsesChain(t *testing.T) {
	// e = marker(c, d) (matched); f = marker(e) (matched); root = f.
	// spec.md's worked scenario 4: splicing a chain collapses in one pass.
	p := graph.Program{
		Root: "f",
		Adj: graph.Adjacency{
			"c": {Kind: "num/literal", Out: 1.0},
			"d": {Kind: "num/literal", Out: 2.0},
			"e": {Kind: "marker", Children: []string{"c", "d"}},
			"f": {Kind: "marker", Children: []string{"e"}},
		},
		Counter: "g",
	}

	out, err := dagql.SpliceWhere(p, dagql.ByKind("marker"))
	require.NoError(t, err)

	_, hasE := out.Entry("e")
	require.False(t, hasE)
	_, hasF := out.Entry("f")
	require.False(t, hasF)

	require.Equal(t, "c", out.Root, "f expands to [c d]; the first, c, is promoted to root")
}

func TestSpliceWhereInlinesAtParentPosition(t *testing.T) {
	p := graph.Program{
		Root: "root",
		Adj: graph.Adjacency{
			"a":    {Kind: "num/literal", Out: 1.0},
			"b":    {Kind: "num/literal", Out: 2.0},
			"mid":  {Kind: "marker", Children: []string{"a", "b"}},
			"root": {Kind: "num/add", Children: []string{"mid", "a"}},
		},
		Counter: "z",
	}

	out, err := dagql.SpliceWhere(p, dagql.ByKind("marker"))
	require.NoError(t, err)

	root, ok := out.Entry("root")
	require.True(t, ok)
	require.Equal(t, []string{"a", "b", "a"}, root.Children)
}

func TestSpliceWhereNoMatchesIsIdentity(t *testing.T) {
	p := sampleProgram()
	out, err := dagql.SpliceWhere(p, dagql.ByKind("nonexistent"))
	require.NoError(t, err)
	require.Equal(t, p, out)
}

func TestSpliceWhereRootLeafFails(t *testing.T) {
	p := graph.Program{
		Root:    "only",
		Adj:     graph.Adjacency{"only": {Kind: "marker"}},
		Counter: "b",
	}

	_, err := dagql.SpliceWhere(p, dagql.ByKind("marker"))
	require.True(t, dagql.ErrSpliceRootLeaf.Is(err))
}
