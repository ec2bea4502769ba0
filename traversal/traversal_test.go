package traversal_test

import (
	"testing"

	"github.com/pkaski/reduce/graph"
	"github.com/pkaski/reduce/labeler"
	"github.com/pkaski/reduce/traversal"
	"github.com/stretchr/testify/require"
)

func triangle(t *testing.T) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder(3)
	for v := 0; v < 3; v++ {
		require.NoError(t, b.SetColor(v, 0))
	}
	require.NoError(t, b.AddEdge(0, 1))
	require.NoError(t, b.AddEdge(1, 2))
	require.NoError(t, b.AddEdge(0, 2))
	g, err := b.Finish()
	require.NoError(t, err)
	return g
}

func TestBuildTraversalCoversFullOrbit(t *testing.T) {
	g := triangle(t)
	var l labeler.Refiner
	gens, err := l.Generators(g)
	require.NoError(t, err)
	orbits, err := l.Orbits(g)
	require.NoError(t, err)

	size, taus, err := traversal.Build(0, gens, orbits)
	require.NoError(t, err)
	require.Equal(t, 3, size)
	require.Len(t, taus, 3)

	for i, tau := range taus {
		require.NoError(t, tau.Validate(g.N()))
		_ = i

		// spec.md §8's traversal law: τ_j is an automorphism of g, not
		// merely a valid permutation.
		for v := 0; v < g.N(); v++ {
			require.Equal(t, g.Color(v), g.Color(tau.Apply(v)))
			for _, u := range g.Neighbors(v) {
				require.True(t, g.HasEdge(tau.Apply(v), tau.Apply(u)))
			}
		}
	}
	// τ for the root element must be the identity.
	require.Equal(t, graph.Identity(3), taus[0])

	// Each orbit element must actually be hit by some taus[j].Apply(0).
	seen := make(map[int]bool)
	for _, tau := range taus {
		seen[tau.Apply(0)] = true
	}
	require.Len(t, seen, 3)
}

func TestBuildTraversalIncompleteOrbitIsRejected(t *testing.T) {
	orbit := graph.Partition{0, 0, 0}
	size, taus, err := traversal.Build(0, nil, orbit)
	require.ErrorIs(t, err, traversal.ErrIncompleteOrbit)
	require.Equal(t, 0, size)
	require.Nil(t, taus)
}
