package selector_test

import (
	"testing"

	"github.com/pkaski/reduce/graph"
	"github.com/pkaski/reduce/selector"
	"github.com/stretchr/testify/require"
)

func TestSelectPrefersPreviousTraversalHit(t *testing.T) {
	vars := []int{0, 1, 2, 3}
	used := map[int]bool{0: true}
	orbits := graph.Partition{0, 0, 0, 0}
	prevTrav := []bool{false, false, true, true}

	got := selector.Select(vars, used, orbits, nil, prevTrav)
	require.Equal(t, 2, got)
}

func TestSelectLongestGoodOrbit(t *testing.T) {
	// Two orbits among variable vertices: {0,1,2} (size 3) and {3} (size 1).
	// A generator swaps 0 and 1, fixes 2 -> orbit {0,1,2} qualifies as "good".
	vars := []int{0, 1, 2, 3}
	used := map[int]bool{}
	orbits := graph.Partition{0, 0, 0, 1}
	gens := []graph.Permutation{{1, 0, 2, 3}}

	got := selector.Select(vars, used, orbits, gens, nil)
	require.Equal(t, 0, got)
}

func TestSelectFallsBackToLowestUnused(t *testing.T) {
	vars := []int{0, 1, 2}
	used := map[int]bool{0: true}
	orbits := graph.Partition{0, 1, 2} // all singleton orbits, no good generator possible
	got := selector.Select(vars, used, orbits, nil, nil)
	require.Equal(t, 1, got)
}

// TestSelectTieBreaksByVertexIndexNotDeclarationOrder covers spec.md
// §4.4's "smallest such index" tie-break: a "p variable" declaration
// may list vertices out of ascending order, and every step must still
// break ties by vertex index, not by vars' declaration order.
func TestSelectTieBreaksByVertexIndexNotDeclarationOrder(t *testing.T) {
	vars := []int{3, 2, 1, 0} // declared descending

	t.Run("previous traversal hit", func(t *testing.T) {
		used := map[int]bool{}
		orbits := graph.Partition{0, 0, 0, 0}
		prevTrav := []bool{false, true, true, false}
		got := selector.Select(vars, used, orbits, nil, prevTrav)
		require.Equal(t, 1, got)
	})

	t.Run("fallback to lowest unused", func(t *testing.T) {
		used := map[int]bool{0: true}
		orbits := graph.Partition{0, 1, 2, 3} // all singleton orbits
		got := selector.Select(vars, used, orbits, nil, nil)
		require.Equal(t, 1, got)
	})
}
