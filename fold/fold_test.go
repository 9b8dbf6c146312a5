package fold_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikesol/dagql/fold"
	"github.com/mikesol/dagql/graph"
)

// literalInterp folds a Program whose "lit" entries carry their value in
// Out and whose "add"/"neg" entries combine their children.
func literalInterp(callCount map[string]int) fold.Interpreter {
	return fold.Interpreter{
		"lit": func(entry graph.Entry) fold.Coroutine {
			if callCount != nil {
				callCount["lit"]++
			}
			return fold.CoroutineFunc(func(_ context.Context, _ interface{}) (fold.Step, error) {
				return fold.Done(entry.Out), nil
			})
		},
		"add": func(entry graph.Entry) fold.Coroutine {
			if callCount != nil {
				callCount["add"]++
			}
			var left int
			step := 0
			return fold.CoroutineFunc(func(_ context.Context, resume interface{}) (fold.Step, error) {
				switch step {
				case 0:
					step = 1
					return fold.Yield(0), nil
				case 1:
					left = resume.(int)
					step = 2
					return fold.Yield(1), nil
				default:
					return fold.Done(left + resume.(int)), nil
				}
			})
		},
		"neg": func(entry graph.Entry) fold.Coroutine {
			yielded := false
			return fold.CoroutineFunc(func(_ context.Context, resume interface{}) (fold.Step, error) {
				if !yielded {
					yielded = true
					return fold.Yield(0), nil
				}
				return fold.Done(-resume.(int)), nil
			})
		},
	}
}

func TestFoldSimpleTree(t *testing.T) {
	adj := graph.Adjacency{
		"a": {Kind: "lit", Out: 3},
		"b": {Kind: "lit", Out: 4},
		"c": {Kind: "add", Children: []string{"a", "b"}},
	}

	v, err := fold.Fold(nil, "c", adj, literalInterp(nil))
	require.NoError(t, err)
	require.Equal(t, 7, v)
}

func TestFoldEvaluatesSharedNodeOnlyOnce(t *testing.T) {
	adj := graph.Adjacency{
		"a": {Kind: "lit", Out: 5},
		"d": {Kind: "add", Children: []string{"a", "a"}},
	}

	calls := make(map[string]int)
	v, err := fold.Fold(nil, "d", adj, literalInterp(calls))
	require.NoError(t, err)
	require.Equal(t, 10, v)
	require.Equal(t, 1, calls["add"])
	require.Equal(t, 1, calls["lit"], "the shared literal must be evaluated exactly once despite two references")
}

func TestFoldDiamondSharing(t *testing.T) {
	// root = add(left, right); left = neg(shared); right = neg(shared);
	// shared is a single "lit" node referenced by both branches.
	adj := graph.Adjacency{
		"shared": {Kind: "lit", Out: 2},
		"left":   {Kind: "neg", Children: []string{"shared"}},
		"right":  {Kind: "neg", Children: []string{"shared"}},
		"root":   {Kind: "add", Children: []string{"left", "right"}},
	}

	v, err := fold.Fold(nil, "root", adj, literalInterp(nil))
	require.NoError(t, err)
	require.Equal(t, -4, v)
}

func TestFoldDeepChainDoesNotOverflowNativeStack(t *testing.T) {
	const depth = 10000
	adj := make(graph.Adjacency, depth+1)
	adj["n0"] = graph.Entry{Kind: "lit", Out: 0}
	for i := 1; i <= depth; i++ {
		adj[fmt.Sprintf("n%d", i)] = graph.Entry{
			Kind:     "add",
			Children: []string{fmt.Sprintf("n%d", i-1), "one"},
		}
	}
	adj["one"] = graph.Entry{Kind: "lit", Out: 1}

	v, err := fold.Fold(nil, fmt.Sprintf("n%d", depth), adj, literalInterp(nil))
	require.NoError(t, err)
	require.Equal(t, depth, v)
}

func TestFoldMissingNodeFails(t *testing.T) {
	adj := graph.Adjacency{"a": {Kind: "lit", Out: 1}}
	_, err := fold.Fold(nil, "ghost", adj, literalInterp(nil))
	require.True(t, graph.ErrMissingNode.Is(err))
}

func TestFoldNoHandlerFails(t *testing.T) {
	adj := graph.Adjacency{"a": {Kind: "mystery"}}
	_, err := fold.Fold(nil, "a", adj, literalInterp(nil))
	require.True(t, graph.ErrNoHandler.Is(err))
}

func TestFoldChildIndexOutOfRangeFails(t *testing.T) {
	adj := graph.Adjacency{"a": {Kind: "lit", Out: 1}}
	interp := fold.Interpreter{
		"lit": func(entry graph.Entry) fold.Coroutine {
			return fold.CoroutineFunc(func(_ context.Context, _ interface{}) (fold.Step, error) {
				return fold.Yield(5), nil
			})
		},
	}

	_, err := fold.Fold(nil, "a", adj, interp)
	require.True(t, graph.ErrChildIndexOutOfRange.Is(err))
}

func TestFoldProgramWrapsFold(t *testing.T) {
	p := graph.Program{
		Root: "c",
		Adj: graph.Adjacency{
			"a": {Kind: "lit", Out: 1},
			"b": {Kind: "lit", Out: 2},
			"c": {Kind: "add", Children: []string{"a", "b"}},
		},
		Counter: "d",
	}

	v, err := fold.FoldProgram(nil, p, literalInterp(nil))
	require.NoError(t, err)
	require.Equal(t, 3, v)
}
