package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikesol/dagql/graph"
)

func TestEntryIsAlias(t *testing.T) {
	require.True(t, graph.Entry{Kind: graph.AliasKind}.IsAlias())
	require.False(t, graph.Entry{Kind: "num/add"}.IsAlias())
}

func TestEntryCloneIsIndependent(t *testing.T) {
	e := graph.Entry{Kind: "num/add", Children: []string{"a", "b"}}
	clone := e.Clone()
	clone.Children[0] = "z"
	require.Equal(t, "a", e.Children[0], "mutating the clone must not affect the original")
}

func TestAdjacencyCloneIsIndependent(t *testing.T) {
	adj := graph.Adjacency{"a": {Kind: "num/literal", Out: 3.0}}
	clone := adj.Clone()
	clone["a"] = graph.Entry{Kind: "num/literal", Out: 9.0}
	require.Equal(t, 3.0, adj["a"].Out)
}

func TestProgramEntryAndIds(t *testing.T) {
	p := graph.Program{
		Root: "b",
		Adj: graph.Adjacency{
			"a": {Kind: "num/literal", Out: 3.0},
			"b": {Kind: "num/add", Children: []string{"a", "a"}},
		},
		Counter: "c",
	}

	e, ok := p.Entry("b")
	require.True(t, ok)
	require.Equal(t, "num/add", e.Kind)

	_, ok = p.Entry("missing")
	require.False(t, ok)

	require.ElementsMatch(t, []string{"a", "b"}, p.Ids())
}
