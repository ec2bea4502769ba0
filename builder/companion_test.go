package builder_test

import (
	"context"
	"testing"

	"github.com/pkaski/reduce/builder"
	"github.com/pkaski/reduce/engine"
	"github.com/pkaski/reduce/labeler"
	"github.com/pkaski/reduce/prefix"
	"github.com/stretchr/testify/require"
)

// enumerate drives the engine to exhaustion over the Companion(n)
// pair-incidence gadget with K equal to the full pair count, one true
// bit per Aut(G0)-orbit of complete pair-value assignments — exactly
// the unlabeled simple graphs on n vertices (OEIS A000088).
func enumerate(t *testing.T, n int) []*engine.Assignment {
	t.Helper()
	g, vars, values, err := builder.Companion(n)
	require.NoError(t, err)

	var lab labeler.Refiner
	mgr, err := prefix.NewManager(g, vars, values, lab)
	require.NoError(t, err)

	eng, err := engine.New(mgr, lab, len(vars), 0, nil)
	require.NoError(t, err)

	var out []*engine.Assignment
	ctx := context.Background()
	for {
		a, err := eng.Next(ctx)
		require.NoError(t, err)
		if a == nil {
			break
		}
		out = append(out, a)
	}
	return out
}

func TestCompanionN4EnumeratesA000088(t *testing.T) {
	got := enumerate(t, 4)
	require.Len(t, got, 11)
	for _, a := range got {
		require.Equal(t, 6, a.Size)
	}
}

func TestCompanionN5EnumeratesA000088(t *testing.T) {
	got := enumerate(t, 5)
	require.Len(t, got, 34)
	for _, a := range got {
		require.Equal(t, 10, a.Size)
	}
}
