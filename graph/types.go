package graph

import "sort"

// Graph is an immutable vertex-colored undirected simple graph on
// vertices {0, 1, ..., N-1}. It is the Go realization of G₀ from
// SPEC_FULL.md §5 / spec.md §3.
//
// Internally it keeps both a sorted adjacency-list view (for
// deterministic iteration) and a dense bitset-per-row view (for O(1)
// HasEdge queries), mirroring the teacher's dual
// adjacency-list/adjacency-matrix representations collapsed into one
// type since Graph never mutates after construction.
type Graph struct {
	n         int
	colors    []int    // colors[v] = color class id of vertex v
	neighbors [][]int  // neighbors[v] = sorted neighbor list of v
	bits      []uint64 // row-major bitset, ceil(n/64) words per row
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// Colors returns the color class id of each vertex. The returned slice
// must not be mutated by the caller.
func (g *Graph) Colors() []int { return g.colors }

// Color returns the color class id of vertex v.
func (g *Graph) Color(v int) int { return g.colors[v] }

// Neighbors returns the sorted neighbor list of v. The returned slice
// must not be mutated by the caller.
func (g *Graph) Neighbors(v int) []int { return g.neighbors[v] }

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) int { return len(g.neighbors[v]) }

func (g *Graph) wordsPerRow() int { return (g.n + 63) / 64 }

// HasEdge reports whether (u, v) is an edge. O(1).
func (g *Graph) HasEdge(u, v int) bool {
	wpr := g.wordsPerRow()
	word := g.bits[u*wpr+v/64]
	return word&(uint64(1)<<uint(v%64)) != 0
}

// Builder accumulates vertices, colors, and edges before producing an
// immutable Graph. It is the only way to construct a Graph outside of
// WithEdges.
type Builder struct {
	n      int
	colors []int
	colSet []bool
	edges  map[[2]int]struct{}
}

// NewBuilder starts a builder for a graph on n vertices, all initially
// uncolored (color -1, which Finish rejects unless every vertex is
// explicitly colored via SetColor).
func NewBuilder(n int) *Builder {
	colors := make([]int, n)
	for i := range colors {
		colors[i] = -1
	}
	return &Builder{n: n, colors: colors, colSet: make([]bool, n), edges: make(map[[2]int]struct{})}
}

// SetColor assigns color c to vertex v. Calling it twice for the same
// vertex is an error (ErrDuplicateColor), matching spec.md §6:
// "Missing or duplicate colors are fatal."
func (b *Builder) SetColor(v, c int) error {
	if v < 0 || v >= b.n {
		return ErrVertexRange
	}
	if b.colSet[v] {
		return ErrDuplicateColor
	}
	b.colors[v] = c
	b.colSet[v] = true
	return nil
}

// AddEdge records an undirected edge (u, v), u != v. Duplicate edges
// and self-loops are rejected.
func (b *Builder) AddEdge(u, v int) error {
	if u < 0 || u >= b.n || v < 0 || v >= b.n {
		return ErrVertexRange
	}
	if u == v {
		return ErrSelfLoop
	}
	key := edgeKey(u, v)
	if _, dup := b.edges[key]; dup {
		return ErrDuplicateEdge
	}
	b.edges[key] = struct{}{}
	return nil
}

func edgeKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}

// Finish validates that every vertex has a color and produces an
// immutable Graph.
func (b *Builder) Finish() (*Graph, error) {
	for v := 0; v < b.n; v++ {
		if !b.colSet[v] {
			return nil, ErrMissingColor
		}
	}

	g := &Graph{n: b.n, colors: append([]int(nil), b.colors...)}
	g.neighbors = make([][]int, b.n)
	wpr := g.wordsPerRow()
	g.bits = make([]uint64, b.n*wpr)
	for key := range b.edges {
		u, v := key[0], key[1]
		g.neighbors[u] = append(g.neighbors[u], v)
		g.neighbors[v] = append(g.neighbors[v], u)
		g.bits[u*wpr+v/64] |= uint64(1) << uint(v%64)
		g.bits[v*wpr+u/64] |= uint64(1) << uint(u%64)
	}
	for v := range g.neighbors {
		sort.Ints(g.neighbors[v])
	}
	return g, nil
}

// WithEdges returns a new Graph equal to g plus the given extra edges.
// g itself is never mutated; this realizes "G_ℓ obtained from G₀ by
// adding edges" (SPEC_FULL.md §5).
func (g *Graph) WithEdges(extra [][2]int) (*Graph, error) {
	b := NewBuilder(g.n)
	for v, c := range g.colors {
		if err := b.SetColor(v, c); err != nil {
			return nil, err
		}
	}
	for u := 0; u < g.n; u++ {
		for _, v := range g.neighbors[u] {
			if v > u {
				if err := b.AddEdge(u, v); err != nil {
					return nil, err
				}
			}
		}
	}
	for _, e := range extra {
		if err := b.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	return b.Finish()
}

// Relabel returns a new Graph obtained by applying permutation p to
// every vertex: vertex v in g becomes vertex p[v] in the result. Used
// by the canonical labeler and by §4.6's ν-relabeling.
func (g *Graph) Relabel(p Permutation) (*Graph, error) {
	if err := p.Validate(g.n); err != nil {
		return nil, err
	}
	b := NewBuilder(g.n)
	for v, c := range g.colors {
		if err := b.SetColor(p[v], c); err != nil {
			return nil, err
		}
	}
	for u := 0; u < g.n; u++ {
		for _, v := range g.neighbors[u] {
			if v > u {
				if err := b.AddEdge(p[u], p[v]); err != nil {
					return nil, err
				}
			}
		}
	}
	return b.Finish()
}

// EdgeList returns all edges (u, v) with u < v, in ascending
// lexicographic order. Used by the canonical labeler to compare
// labeled graphs by their sorted edge set (spec.md §4.1).
func (g *Graph) EdgeList() [][2]int {
	var out [][2]int
	for u := 0; u < g.n; u++ {
		for _, v := range g.neighbors[u] {
			if v > u {
				out = append(out, [2]int{u, v})
			}
		}
	}
	return out
}
