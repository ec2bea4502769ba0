package prefix_test

import (
	"testing"

	"github.com/pkaski/reduce/graph"
	"github.com/pkaski/reduce/labeler"
	"github.com/pkaski/reduce/prefix"
	"github.com/stretchr/testify/require"
)

// path4WithValues builds a 4-vertex path 0-1-2-3 with variable vertices {0,1,2,3}
// (colors all equal) and value vertices {4,5} colored distinctly and
// disconnected, matching spec.md §3's invariant that each value vertex
// is a fixed point of Aut(G0).
func path4WithValues(t *testing.T) (*graph.Graph, []int, []int) {
	t.Helper()
	b := graph.NewBuilder(6)
	for v := 0; v < 4; v++ {
		require.NoError(t, b.SetColor(v, 0))
	}
	require.NoError(t, b.SetColor(4, 1))
	require.NoError(t, b.SetColor(5, 2))
	require.NoError(t, b.AddEdge(0, 1))
	require.NoError(t, b.AddEdge(1, 2))
	require.NoError(t, b.AddEdge(2, 3))
	g, err := b.Finish()
	require.NoError(t, err)
	return g, []int{0, 1, 2, 3}, []int{4, 5}
}

func TestNewManagerValidatesInvariants(t *testing.T) {
	g, vars, values := path4WithValues(t)
	var lab labeler.Refiner

	m, err := prefix.NewManager(g, vars, values, lab)
	require.NoError(t, err)
	require.NotNil(t, m)
}

func TestNewManagerRejectsNonOrbitVariables(t *testing.T) {
	g, _, values := path4WithValues(t)
	var lab labeler.Refiner

	// {0,1} splits the orbit {0,3} (path endpoints) from {1,2} (path
	// interior vertices) — not a union of orbits.
	_, err := prefix.NewManager(g, []int{0, 1}, values, lab)
	require.ErrorIs(t, err, prefix.ErrVariablesNotOrbitUnion)
}

func TestExpandBuildsLevelState(t *testing.T) {
	g, vars, values := path4WithValues(t)
	var lab labeler.Refiner
	m, err := prefix.NewManager(g, vars, values, lab)
	require.NoError(t, err)

	level, err := m.Expand(0)
	require.NoError(t, err)
	require.Equal(t, 0, level)
	require.Equal(t, []int{0}, m.Prefix)
	require.Len(t, m.Levels, 1)
	require.True(t, m.Levels[0].Graph.HasEdge(0, values[0]))
	require.NotEmpty(t, m.Levels[0].Trav)

	_, err = m.Expand(0)
	require.ErrorIs(t, err, prefix.ErrVertexAlreadyInPrefix)

	_, err = m.Expand(values[0])
	require.ErrorIs(t, err, prefix.ErrVertexNotVariable)
}
