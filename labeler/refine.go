package labeler

import (
	"sort"

	"github.com/pkaski/reduce/graph"
)

// ordPartition is an ordered partition of {0..n-1}: the order of cells
// is significant, since the final discrete ordered partition (every
// cell a singleton) is read off left-to-right as the candidate
// canonical vertex ordering.
type ordPartition [][]int

// initialPartition groups vertices by color, cells ordered by
// ascending color id.
func initialPartition(g *graph.Graph) ordPartition {
	byColor := make(map[int][]int)
	for v := 0; v < g.N(); v++ {
		c := g.Color(v)
		byColor[c] = append(byColor[c], v)
	}
	colors := make([]int, 0, len(byColor))
	for c := range byColor {
		colors = append(colors, c)
	}
	sort.Ints(colors)

	p := make(ordPartition, 0, len(colors))
	for _, c := range colors {
		cell := append([]int(nil), byColor[c]...)
		sort.Ints(cell)
		p = append(p, cell)
	}
	return p
}

// discrete reports whether every cell of p is a singleton.
func (p ordPartition) discrete() bool {
	for _, c := range p {
		if len(c) != 1 {
			return false
		}
	}
	return true
}

// firstNonSingleton returns the index of the first cell with more than
// one member, or -1 if p is discrete.
func (p ordPartition) firstNonSingleton() int {
	for i, c := range p {
		if len(c) > 1 {
			return i
		}
	}
	return -1
}

// ordering returns the discrete partition read off as a vertex
// ordering: ordering[i] is the vertex occupying position i.
func (p ordPartition) ordering() []int {
	out := make([]int, 0, len(p))
	for _, c := range p {
		out = append(out, c...)
	}
	return out
}

// positions returns the inverse of ordering: positions[v] is the
// position occupied by vertex v. This is exactly the canonical
// labeling permutation λ of spec.md §4.1.
func (p ordPartition) positions() graph.Permutation {
	ord := p.ordering()
	pos := make(graph.Permutation, len(ord))
	for i, v := range ord {
		pos[v] = i
	}
	return pos
}

// refine applies equitable (1-dimensional Weisfeiler-Leman) refinement
// to p with respect to g: repeatedly splits each cell by each member's
// vector of neighbor-counts into every current cell, until a fixpoint.
// Split order within a cell is by ascending signature, so the result is
// fully determined by (g, p) alone — no map-iteration nondeterminism.
func refine(g *graph.Graph, p ordPartition) ordPartition {
	for {
		next, changed := refineOnce(g, p)
		p = next
		if !changed {
			return p
		}
	}
}

func refineOnce(g *graph.Graph, p ordPartition) (ordPartition, bool) {
	changed := false
	next := make(ordPartition, 0, len(p))

	for _, cell := range p {
		if len(cell) == 1 {
			next = append(next, cell)
			continue
		}

		type keyed struct {
			v   int
			sig []int
		}
		sigs := make([]keyed, len(cell))
		for i, v := range cell {
			sig := make([]int, len(p))
			for j, other := range p {
				count := 0
				for _, u := range other {
					if g.HasEdge(v, u) {
						count++
					}
				}
				sig[j] = count
			}
			sigs[i] = keyed{v: v, sig: sig}
		}
		sort.Slice(sigs, func(i, j int) bool {
			if c := compareIntSlices(sigs[i].sig, sigs[j].sig); c != 0 {
				return c < 0
			}
			return sigs[i].v < sigs[j].v
		})

		var groups ordPartition
		for i := 0; i < len(sigs); {
			j := i + 1
			for j < len(sigs) && compareIntSlices(sigs[j].sig, sigs[i].sig) == 0 {
				j++
			}
			group := make([]int, 0, j-i)
			for k := i; k < j; k++ {
				group = append(group, sigs[k].v)
			}
			groups = append(groups, group)
			i = j
		}
		if len(groups) > 1 {
			changed = true
		}
		next = append(next, groups...)
	}
	return next, changed
}

func compareIntSlices(a, b []int) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// individualize returns a copy of p with cell index t split into a
// singleton {w} followed by the rest of the cell (order preserved),
// ready for a further refine() call. w must be a member of p[t].
func individualize(p ordPartition, t, w int) ordPartition {
	out := make(ordPartition, 0, len(p)+1)
	out = append(out, p[:t]...)
	out = append(out, []int{w})
	var rest []int
	for _, v := range p[t] {
		if v != w {
			rest = append(rest, v)
		}
	}
	if len(rest) > 0 {
		out = append(out, rest)
	}
	out = append(out, p[t+1:]...)
	return out
}
