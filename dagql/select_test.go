package dagql_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikesol/dagql/dagql"
)

func TestSelectWhere(t *testing.T) {
	p := sampleProgram()
	set := dagql.SelectWhere(p, dagql.ByKind("num/literal"))

	require.True(t, set.Has("a"))
	require.True(t, set.Has("b"))
	require.False(t, set.Has("c"))
	require.Len(t, set, 2)
}

func TestSelectWhereEmptyResult(t *testing.T) {
	p := sampleProgram()
	set := dagql.SelectWhere(p, dagql.ByKind("str/literal"))
	require.Empty(t, set)
}

func TestIDSetUnion(t *testing.T) {
	a := dagql.IDSet{"x": struct{}{}}
	b := dagql.IDSet{"y": struct{}{}}
	union := a.Union(b)

	require.True(t, union.Has("x"))
	require.True(t, union.Has("y"))
	require.Len(t, union, 2)
}
