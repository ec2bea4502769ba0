package labeler

import (
	"sort"

	"github.com/pkaski/reduce/graph"
)

// leaf is one discrete ordered partition reached by the search: its
// labeling (position per vertex) and the sorted edge list G takes on
// under that labeling.
type leaf struct {
	labeling graph.Permutation
	image    [][2]int
}

// search enumerates every leaf of the individualization-refinement
// backtracking tree rooted at the color partition of g. Grounded on
// tsp/bb.go's bbEngine: an explicit engine struct owning the recursion
// state, branching in a fixed deterministic order (ascending vertex
// id within the target cell), generalized here from numeric
// branch-and-bound to combinatorial search over vertex orderings.
type search struct {
	g     *graph.Graph
	edges [][2]int
	leaves []leaf
}

func newSearch(g *graph.Graph) *search {
	return &search{g: g, edges: g.EdgeList()}
}

func (s *search) run() {
	root := refine(s.g, initialPartition(s.g))
	s.descend(root)
}

func (s *search) descend(p ordPartition) {
	if p.discrete() {
		lab := p.positions()
		img := lab.ApplyEdges(s.edges)
		sort.Slice(img, func(i, j int) bool {
			if img[i][0] != img[j][0] {
				return img[i][0] < img[j][0]
			}
			return img[i][1] < img[j][1]
		})
		s.leaves = append(s.leaves, leaf{labeling: lab, image: img})
		return
	}

	t := p.firstNonSingleton()
	cell := append([]int(nil), p[t]...)
	sort.Ints(cell)
	for _, w := range cell {
		child := refine(s.g, individualize(p, t, w))
		s.descend(child)
	}
}

// compareEdgeLists returns -1, 0, or 1 comparing two sorted edge lists
// lexicographically by (u, v) pairs, then by length.
func compareEdgeLists(a, b [][2]int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i][0] != b[i][0] {
			if a[i][0] < b[i][0] {
				return -1
			}
			return 1
		}
		if a[i][1] != b[i][1] {
			if a[i][1] < b[i][1] {
				return -1
			}
			return 1
		}
	}
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return 0
}

// result bundles everything the four Labeler operations need, computed
// once from a single exhaustive search.
type result struct {
	canonical    graph.Permutation
	automorphism []graph.Permutation // deduplicated, excludes identity
	order        int
}

func compute(g *graph.Graph) (*result, error) {
	if g.N() == 0 {
		return nil, ErrEmptyGraph
	}

	s := newSearch(g)
	s.run()
	if len(s.leaves) == 0 {
		return nil, ErrSearchExhausted
	}

	best := s.leaves[0]
	for _, l := range s.leaves[1:] {
		if compareEdgeLists(l.image, best.image) < 0 {
			best = l
		}
	}

	bestInv := best.labeling.Inverse()
	seen := make(map[string]bool)
	var gens []graph.Permutation
	count := 0
	id := graph.Identity(g.N())
	for _, l := range s.leaves {
		if compareEdgeLists(l.image, best.image) != 0 {
			continue
		}
		count++
		phi := l.labeling.Compose(bestInv)
		key := permKey(phi)
		if seen[key] {
			continue
		}
		seen[key] = true
		if !permEqual(phi, id) {
			gens = append(gens, phi)
		}
	}

	return &result{canonical: best.labeling, automorphism: gens, order: count}, nil
}

func permKey(p graph.Permutation) string {
	b := make([]byte, 0, len(p)*4)
	for _, v := range p {
		b = append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	}
	return string(b)
}

func permEqual(a, b graph.Permutation) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
