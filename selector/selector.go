package selector

import "github.com/pkaski/reduce/graph"

// Select implements spec.md §4.4. vars is the variable-vertex set V,
// in whatever order the caller declared it — ties are always broken by
// ascending vertex index, not by vars' order, so every scan below
// walks vertex ids directly rather than iterating vars. used marks
// vertices already in the prefix. orbits and gens are
// Aut(currentGraph)'s orbit partition and generator set. prevTrav is
// the previous level's traversal image indicator (trav_ind_{k-1});
// pass nil at level 0 (k == 0).
//
// Returns -1 if every variable vertex is already used (the caller
// should never reach this: it means K exceeds |V|).
func Select(vars []int, used map[int]bool, orbits graph.Partition, gens []graph.Permutation, prevTrav []bool) int {
	isVar := make(map[int]bool, len(vars))
	for _, v := range vars {
		isVar[v] = true
	}

	n := len(orbits)

	if prevTrav != nil {
		for v := 0; v < n; v++ {
			if isVar[v] && !used[v] && prevTrav[v] {
				return v
			}
		}
	}

	seenOrbit := make(map[int]bool)
	bestLen := -1
	bestVertex := -1

	for v := 0; v < n; v++ {
		oid := orbits[v]
		if seenOrbit[oid] {
			continue
		}
		seenOrbit[oid] = true

		var memberVars []int
		orbitLen := 0
		for u := 0; u < n; u++ {
			if orbits[u] != oid {
				continue
			}
			orbitLen++
			if isVar[u] {
				memberVars = append(memberVars, u)
			}
		}

		hasUnused := false
		for _, u := range memberVars {
			if !used[u] {
				hasUnused = true
				break
			}
		}
		if !hasUnused || orbitLen <= bestLen {
			continue
		}
		if !hasGoodGenerator(gens, memberVars) {
			continue
		}

		bestLen = orbitLen
		bestVertex = lowestUnused(memberVars, used)
	}
	if bestVertex != -1 {
		return bestVertex
	}

	for v := 0; v < n; v++ {
		if isVar[v] && !used[v] {
			return v
		}
	}
	return -1
}

// hasGoodGenerator reports whether some generator has both a fixed
// point and a moved point among members.
func hasGoodGenerator(gens []graph.Permutation, members []int) bool {
	for _, g := range gens {
		fixed, moved := false, false
		for _, u := range members {
			if g[u] == u {
				fixed = true
			} else {
				moved = true
			}
		}
		if fixed && moved {
			return true
		}
	}
	return false
}

func lowestUnused(members []int, used map[int]bool) int {
	best := -1
	for _, u := range members {
		if used[u] {
			continue
		}
		if best == -1 || u < best {
			best = u
		}
	}
	return best
}
