package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikesol/dagql/graph"
)

func TestIncrement(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"a", "b"},
		{"y", "z"},
		{"z", "aa"},
		{"az", "ba"},
		{"zz", "aaa"},
		{"ay", "az"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, graph.Increment(c.in), "increment(%s)", c.in)
	}
}

func TestMinterSequence(t *testing.T) {
	m := graph.NewMinter()
	require.Equal(t, "a", m.Peek())

	got := make([]string, 0, 30)
	for i := 0; i < 30; i++ {
		got = append(got, m.Mint())
	}

	want := []string{
		"a", "b", "c", "d", "e", "f", "g", "h", "i", "j",
		"k", "l", "m", "n", "o", "p", "q", "r", "s", "t",
		"u", "v", "w", "x", "y", "z", "aa", "ab", "ac", "ad",
	}
	require.Equal(t, want, got)
}

func TestMinterPeekDoesNotAdvance(t *testing.T) {
	m := graph.NewMinter()
	first := m.Peek()
	second := m.Peek()
	require.Equal(t, first, second)
	require.Equal(t, first, m.Mint())
	require.NotEqual(t, first, m.Peek())
}
