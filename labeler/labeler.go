package labeler

import "github.com/pkaski/reduce/graph"

// Labeler is the external canonical-labeler contract of spec.md §4.1.
// The search engine never assumes a particular algorithm behind it; it
// only requires determinism and these four properties.
type Labeler interface {
	// CanonicalLabeling returns a bijection λ such that two graphs are
	// isomorphic iff their images under their respective λ produce
	// identical sorted edge sets.
	CanonicalLabeling(g *graph.Graph) (graph.Permutation, error)

	// Orbits returns the Aut(g) orbit of each vertex.
	Orbits(g *graph.Graph) (graph.Partition, error)

	// Generators returns a deterministic, restartable, ordered sequence
	// of permutations generating Aut(g).
	Generators(g *graph.Graph) ([]graph.Permutation, error)

	// StabilizerIndices returns a sequence of positive integers whose
	// product is |Aut(g)|.
	StabilizerIndices(g *graph.Graph) ([]int, error)
}

// Refiner is the reference Labeler implementation: see doc.go for its
// algorithm and provenance.
type Refiner struct{}

var _ Labeler = Refiner{}

// CanonicalLabeling implements Labeler.
func (Refiner) CanonicalLabeling(g *graph.Graph) (graph.Permutation, error) {
	r, err := compute(g)
	if err != nil {
		return nil, err
	}
	return r.canonical, nil
}

// Generators implements Labeler. The identity is never included (an
// empty slice is a valid generator set for a trivial automorphism
// group), matching the contract's "generate the full group" — the
// trivial group is generated by the empty set.
func (Refiner) Generators(g *graph.Graph) ([]graph.Permutation, error) {
	r, err := compute(g)
	if err != nil {
		return nil, err
	}
	return r.automorphism, nil
}

// StabilizerIndices implements Labeler. The reference implementation
// returns the single-element sequence [|Aut(g)|]: a degenerate but
// fully valid factorization (the contract only requires that the
// product of the sequence equal |Aut(g)|, not that it refine a
// particular stabilizer chain).
func (Refiner) StabilizerIndices(g *graph.Graph) ([]int, error) {
	r, err := compute(g)
	if err != nil {
		return nil, err
	}
	return []int{r.order}, nil
}

// Orbits implements Labeler by closing the vertex set under the
// generator set found during CanonicalLabeling's search (union-find).
func (Refiner) Orbits(g *graph.Graph) (graph.Partition, error) {
	r, err := compute(g)
	if err != nil {
		return nil, err
	}
	return orbitsFromGenerators(g.N(), r.automorphism), nil
}

// orbitsFromGenerators computes the orbit partition induced by a
// generator set via union-find: for every generator p and every vertex
// v, v and p(v) are unioned.
func orbitsFromGenerators(n int, gens []graph.Permutation) graph.Partition {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			if ra < rb {
				parent[rb] = ra
			} else {
				parent[ra] = rb
			}
		}
	}
	for _, p := range gens {
		for v := 0; v < n; v++ {
			union(v, p[v])
		}
	}
	out := make(graph.Partition, n)
	for v := 0; v < n; v++ {
		out[v] = find(v)
	}
	return out
}
