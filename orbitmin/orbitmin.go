package orbitmin

import "github.com/pkaski/reduce/graph"

// Compute implements spec.md §4.3. orbits is the Aut(G) orbit partition
// of G (from a Labeler). If nu is non-nil, the minimality bit computed
// for vertex u of G is written to position nu[u] in the output rather
// than to u itself; if nu is nil the identity relabeling is used.
//
// Invariant upheld: exactly one bit is set per orbit.
func Compute(orbits graph.Partition, nu graph.Permutation) []bool {
	n := len(orbits)
	out := make([]bool, n)

	groups := orbits.Groups()
	for _, members := range groups {
		min := members[0]
		for _, v := range members[1:] {
			if v < min {
				min = v
			}
		}
		pos := min
		if nu != nil {
			pos = nu[min]
		}
		out[pos] = true
	}
	return out
}
