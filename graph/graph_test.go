package graph_test

import (
	"testing"

	"github.com/pkaski/reduce/graph"
	"github.com/stretchr/testify/require"
)

func pathGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder(n)
	for v := 0; v < n; v++ {
		require.NoError(t, b.SetColor(v, 0))
	}
	for i := 1; i < n; i++ {
		require.NoError(t, b.AddEdge(i-1, i))
	}
	g, err := b.Finish()
	require.NoError(t, err)
	return g
}

func TestBuilderBasics(t *testing.T) {
	g := pathGraph(t, 4)
	require.Equal(t, 4, g.N())
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(1, 0))
	require.False(t, g.HasEdge(0, 2))
	require.Equal(t, []int{1}, g.Neighbors(0))
	require.Equal(t, []int{0, 2}, g.Neighbors(1))
}

func TestBuilderMissingColorFails(t *testing.T) {
	b := graph.NewBuilder(2)
	require.NoError(t, b.SetColor(0, 0))
	_, err := b.Finish()
	require.ErrorIs(t, err, graph.ErrMissingColor)
}

func TestBuilderDuplicateColorFails(t *testing.T) {
	b := graph.NewBuilder(2)
	require.NoError(t, b.SetColor(0, 0))
	require.ErrorIs(t, b.SetColor(0, 1), graph.ErrDuplicateColor)
}

func TestBuilderSelfLoopAndDuplicateEdge(t *testing.T) {
	b := graph.NewBuilder(2)
	require.ErrorIs(t, b.AddEdge(0, 0), graph.ErrSelfLoop)
	require.NoError(t, b.AddEdge(0, 1))
	require.ErrorIs(t, b.AddEdge(1, 0), graph.ErrDuplicateEdge)
}

func TestWithEdgesDoesNotMutateOriginal(t *testing.T) {
	g := pathGraph(t, 3)
	g2, err := g.WithEdges([][2]int{{0, 2}})
	require.NoError(t, err)
	require.False(t, g.HasEdge(0, 2))
	require.True(t, g2.HasEdge(0, 2))
}

func TestRelabel(t *testing.T) {
	g := pathGraph(t, 3) // edges 0-1, 1-2
	p := graph.Permutation{2, 1, 0}
	g2, err := g.Relabel(p)
	require.NoError(t, err)
	require.True(t, g2.HasEdge(2, 1))
	require.True(t, g2.HasEdge(1, 0))
	require.False(t, g2.HasEdge(2, 0))
}

func TestEdgeList(t *testing.T) {
	g := pathGraph(t, 3)
	require.Equal(t, [][2]int{{0, 1}, {1, 2}}, g.EdgeList())
}
