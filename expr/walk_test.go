package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikesol/dagql/expr"
)

func TestInspectVisitsEveryReachableID(t *testing.T) {
	inner := expr.NewConcrete("num/add", "ADD", "number", 1.0, 2.0)
	outer := expr.NewConcrete("num/mul", "MUL", "number", inner, 5.0)

	var visited []string
	expr.Inspect(outer, func(id string) bool {
		visited = append(visited, id)
		return true
	})

	require.Contains(t, visited, outer.ID)
	require.Contains(t, visited, inner.ID)
	require.Contains(t, visited, expr.LiteralID(5.0))
}

func TestInspectStopsDescentWhenFalseReturned(t *testing.T) {
	inner := expr.NewConcrete("num/add", "ADD", "number", 1.0, 2.0)
	outer := expr.NewConcrete("num/mul", "MUL", "number", inner, 5.0)

	var visited []string
	expr.Inspect(outer, func(id string) bool {
		visited = append(visited, id)
		return id != inner.ID
	})

	require.Contains(t, visited, outer.ID)
	require.Contains(t, visited, inner.ID)
	require.NotContains(t, visited, expr.LiteralID(1.0))
}

func TestWalkNilVisitorIsNoop(t *testing.T) {
	outer := expr.NewConcrete("num/add", "ADD", "number", 1.0, 2.0)
	require.NotPanics(t, func() {
		expr.Walk(nil, outer)
	})
}
