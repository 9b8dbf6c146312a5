package plugins_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikesol/dagql/fold"
	"github.com/mikesol/dagql/graph"
	"github.com/mikesol/dagql/normalize"
	"github.com/mikesol/dagql/plugin"
	"github.com/mikesol/dagql/plugins"
	"github.com/mikesol/dagql/plugins/boolean"
	"github.com/mikesol/dagql/plugins/numeric"
	"github.com/mikesol/dagql/plugins/stringx"
)

func TestEqTraitDispatchesByFirstChildType(t *testing.T) {
	reg := graph.NewRegistry()
	plugins.RegisterAll(reg)

	interp, err := plugin.Defaults(plugins.Descriptors(), nil)
	require.NoError(t, err)

	numProg, err := normalize.App(nil, plugins.Eq(3.0, 3.0), reg)
	require.NoError(t, err)
	root, _ := numProg.Entry(numProg.Root)
	require.Equal(t, numeric.KindEq, root.Kind)

	v, err := fold.FoldProgram(nil, numProg, interp)
	require.NoError(t, err)
	require.Equal(t, true, v)

	strProg, err := normalize.App(nil, plugins.Eq("a", "b"), reg)
	require.NoError(t, err)
	root, _ = strProg.Entry(strProg.Root)
	require.Equal(t, stringx.KindEq, root.Kind)

	v, err = fold.FoldProgram(nil, strProg, interp)
	require.NoError(t, err)
	require.Equal(t, false, v)

	boolProg, err := normalize.App(nil, plugins.Eq(boolean.Literal(true), boolean.Literal(true)), reg)
	require.NoError(t, err)
	root, _ = boolProg.Entry(boolProg.Root)
	require.Equal(t, boolean.KindEq, root.Kind)
}

func TestDescriptorsComposeWithoutOverrides(t *testing.T) {
	interp, err := plugin.Defaults(plugins.Descriptors(), nil)
	require.NoError(t, err)
	require.Contains(t, interp, numeric.KindAdd)
	require.Contains(t, interp, stringx.KindConcat)
	require.Contains(t, interp, boolean.KindNot)
}
