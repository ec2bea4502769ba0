package graph_test

import (
	"testing"

	"github.com/pkaski/reduce/graph"
	"github.com/stretchr/testify/require"
)

func TestPermutationComposeInverse(t *testing.T) {
	p := graph.Permutation{1, 2, 0} // 0->1, 1->2, 2->0
	q := graph.Permutation{2, 0, 1} // inverse of p

	require.NoError(t, p.Validate(3))
	require.Equal(t, q, p.Inverse())

	id := p.Compose(q)
	require.Equal(t, graph.Identity(3), id)
}

func TestPermutationValidateRejectsNonBijection(t *testing.T) {
	bad := graph.Permutation{0, 0, 2}
	require.ErrorIs(t, bad.Validate(3), graph.ErrBadPermutation)

	short := graph.Permutation{0, 1}
	require.ErrorIs(t, short.Validate(3), graph.ErrBadPermutation)
}

func TestPartitionIndicator(t *testing.T) {
	p := graph.Partition{0, 0, 1, 1, 0}
	ind := p.Indicator(4)
	require.Equal(t, []bool{true, true, false, false, true}, ind)
	require.ElementsMatch(t, []int{0, 1, 4}, p.Restrict(4, []int{0, 1, 2, 3, 4}))
}
