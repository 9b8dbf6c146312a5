package dagql_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikesol/dagql/dagql"
	"github.com/mikesol/dagql/graph"
)

func sampleProgram() graph.Program {
	return graph.Program{
		Root: "c",
		Adj: graph.Adjacency{
			"a": {Kind: "num/literal", Out: 3.0},
			"b": {Kind: "num/literal", Out: 4.0},
			"c": {Kind: "num/add", Children: []string{"a", "b"}},
		},
		Counter: "d",
	}
}

func TestByKind(t *testing.T) {
	p := sampleProgram()
	pred := dagql.ByKind("num/literal")
	require.True(t, pred(p, "a"))
	require.False(t, pred(p, "c"))
}

func TestByKindGlob(t *testing.T) {
	p := sampleProgram()
	pred := dagql.ByKindGlob("num/")
	require.True(t, pred(p, "a"))
	require.True(t, pred(p, "c"))

	pred = dagql.ByKindGlob("str")
	require.False(t, pred(p, "a"))
}

func TestIsLeaf(t *testing.T) {
	p := sampleProgram()
	require.True(t, dagql.IsLeaf()(p, "a"))
	require.False(t, dagql.IsLeaf()(p, "c"))
}

func TestHasChildCount(t *testing.T) {
	p := sampleProgram()
	require.True(t, dagql.HasChildCount(2)(p, "c"))
	require.True(t, dagql.HasChildCount(0)(p, "a"))
	require.False(t, dagql.HasChildCount(1)(p, "c"))
}

func TestByName(t *testing.T) {
	p := sampleProgram()
	named, err := dagql.Name(p, "sum", "c")
	require.NoError(t, err)

	require.True(t, dagql.ByName("sum")(named, "c"))
	require.False(t, dagql.ByName("sum")(named, "a"))
	require.False(t, dagql.ByName("missing")(named, "c"))
}

func TestNotAndOr(t *testing.T) {
	p := sampleProgram()
	isLiteral := dagql.ByKind("num/literal")
	isAdd := dagql.ByKind("num/add")

	require.True(t, dagql.Not(isLiteral)(p, "c"))
	require.True(t, dagql.And(isLiteral, dagql.IsLeaf())(p, "a"))
	require.False(t, dagql.And(isLiteral, isAdd)(p, "a"))
	require.True(t, dagql.Or(isLiteral, isAdd)(p, "c"))
	require.False(t, dagql.Or(isLiteral, isAdd)(p, "nonexistent"))
}
