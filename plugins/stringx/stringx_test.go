package stringx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikesol/dagql/fold"
	"github.com/mikesol/dagql/graph"
	"github.com/mikesol/dagql/normalize"
	"github.com/mikesol/dagql/plugins/stringx"
)

func newRegistry() *graph.Registry {
	reg := graph.NewRegistry()
	stringx.Register(reg)
	return reg
}

func evalString(t *testing.T, e interface{}) interface{} {
	t.Helper()
	p, err := normalize.App(nil, e, newRegistry())
	require.NoError(t, err)
	v, err := fold.FoldProgram(nil, p, stringx.DefaultInterpreter())
	require.NoError(t, err)
	return v
}

func TestStringConcatTwo(t *testing.T) {
	require.Equal(t, "foobar", evalString(t, stringx.Concat("foo", "bar")))
}

func TestStringConcatVariadicFoldsLeftAssociatively(t *testing.T) {
	require.Equal(t, "abc", evalString(t, stringx.Concat("a", "b", "c")))
}

func TestStringEq(t *testing.T) {
	require.Equal(t, true, evalString(t, stringx.Eq("a", "a")))
	require.Equal(t, false, evalString(t, stringx.Eq("a", "b")))
}

func TestStringLiteral(t *testing.T) {
	p, err := normalize.App(nil, stringx.Literal("hi"), newRegistry())
	require.NoError(t, err)
	root, _ := p.Entry(p.Root)
	require.Equal(t, stringx.KindLiteral, root.Kind)
	require.Equal(t, "hi", root.Out)
}
