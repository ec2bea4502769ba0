package traversal

import "github.com/pkaski/reduce/graph"

// Build implements spec.md §4.2: given root and a generating set gens
// for Aut(G), it returns the orbit size and, for each orbit element (in
// a deterministic discovery order, root first), a permutation carrying
// root to that element.
//
// orbit is the caller-supplied Aut(G) orbit partition (from
// labeler.Orbits), used only to validate that the generator sweep
// reached every orbit element — a contract violation otherwise
// (ErrIncompleteOrbit), per spec.md §7(ii).
func Build(root int, gens []graph.Permutation, orbit graph.Partition) (int, []graph.Permutation, error) {
	n := len(orbit)

	tau := make(map[int]graph.Permutation)
	tau[root] = graph.Identity(n)
	order := []int{root}

	for {
		changed := false
		frontier := append([]int(nil), order...)
		for _, u := range frontier {
			tu := tau[u]
			for _, pi := range gens {
				v := pi.Apply(u)
				if _, done := tau[v]; done {
					continue
				}
				// τ_v = π ∘ τ_u, i.e. apply τ_u then π.
				tau[v] = tu.Compose(pi)
				order = append(order, v)
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	want := 0
	for v := 0; v < n; v++ {
		if orbit.SameGroup(root, v) {
			want++
		}
	}
	if len(order) != want {
		return 0, nil, ErrIncompleteOrbit
	}

	taus := make([]graph.Permutation, len(order))
	for i, v := range order {
		taus[i] = tau[v]
	}
	return len(order), taus, nil
}
