package builder

import "github.com/pkaski/reduce/graph"

// File-local colors. Companion's point, pair and value colors are
// pairwise distinct; colorUniform (Path, Complete) shares id 0 with
// colorPoint.
const (
	colorUniform = 0
	colorPoint   = 0
	colorPair    = 1
	colorFalse   = 2
	colorTrue    = 3

	minPathNodes     = 2
	minCompleteNodes = 2
	minCompanionPts  = 3
)

// Path returns a simple path 0-1-...-(n-1), every vertex the same
// color, Aut = the dihedral reflection {identity, reverse}. Returns
// the graph and its variable vertex set (all of {0..n-1}).
func Path(n int) (*graph.Graph, []int, error) {
	if n < minPathNodes {
		return nil, nil, ErrTooFewVertices
	}
	b := graph.NewBuilder(n)
	for v := 0; v < n; v++ {
		if err := b.SetColor(v, colorUniform); err != nil {
			return nil, nil, err
		}
	}
	for v := 1; v < n; v++ {
		if err := b.AddEdge(v-1, v); err != nil {
			return nil, nil, err
		}
	}
	g, err := b.Finish()
	if err != nil {
		return nil, nil, err
	}
	return g, identityVars(n), nil
}

// Complete returns the complete graph K_n, every vertex the same
// color, Aut = S_n.
func Complete(n int) (*graph.Graph, []int, error) {
	if n < minCompleteNodes {
		return nil, nil, ErrTooFewVertices
	}
	b := graph.NewBuilder(n)
	for v := 0; v < n; v++ {
		if err := b.SetColor(v, colorUniform); err != nil {
			return nil, nil, err
		}
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if err := b.AddEdge(u, v); err != nil {
				return nil, nil, err
			}
		}
	}
	g, err := b.Finish()
	if err != nil {
		return nil, nil, err
	}
	return g, identityVars(n), nil
}

// Companion builds the point/pair incidence gadget realizing Aut(G0)
// = S_n acting on the unordered pairs of an n-element point set: n
// point vertices, one vertex per unordered pair connected only to its
// two defining points (degree 2, versus a point's degree n-1; for n = 3
// both degrees are 2, so only the explicit coloring tells the two roles
// apart), plus two isolated, distinctly colored value vertices (false,
// true).
//
// The pair vertices are V; assigning each a value amounts to deciding
// whether that edge is present in a candidate graph on the n points,
// so enumerating canonical partial assignments up to K = C(n,2) is
// exactly enumerating unlabeled simple graphs on n vertices
// (spec.md §8 scenarios 2 and 4, OEIS A000088).
func Companion(n int) (*graph.Graph, []int, []int, error) {
	if n < minCompanionPts {
		return nil, nil, nil, ErrTooFewPoints
	}

	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}

	total := n + len(pairs) + 2
	b := graph.NewBuilder(total)
	for v := 0; v < n; v++ {
		if err := b.SetColor(v, colorPoint); err != nil {
			return nil, nil, nil, err
		}
	}

	vars := make([]int, len(pairs))
	for k, pr := range pairs {
		pv := n + k
		if err := b.SetColor(pv, colorPair); err != nil {
			return nil, nil, nil, err
		}
		if err := b.AddEdge(pr[0], pv); err != nil {
			return nil, nil, nil, err
		}
		if err := b.AddEdge(pr[1], pv); err != nil {
			return nil, nil, nil, err
		}
		vars[k] = pv
	}

	falseV, trueV := n+len(pairs), n+len(pairs)+1
	if err := b.SetColor(falseV, colorFalse); err != nil {
		return nil, nil, nil, err
	}
	if err := b.SetColor(trueV, colorTrue); err != nil {
		return nil, nil, nil, err
	}

	g, err := b.Finish()
	if err != nil {
		return nil, nil, nil, err
	}
	return g, vars, []int{falseV, trueV}, nil
}

// AppendBooleanValues returns a graph equal to g plus two new
// isolated, distinctly colored vertices representing {false, true},
// for fixtures (like Path and Complete) that describe only the
// variable structure. Colors are chosen one past g's existing colors
// to avoid collision with any variable coloring.
func AppendBooleanValues(g *graph.Graph) (*graph.Graph, []int, error) {
	n := g.N()
	nextColor := 0
	for _, c := range g.Colors() {
		if c >= nextColor {
			nextColor = c + 1
		}
	}

	b := graph.NewBuilder(n + 2)
	for v := 0; v < n; v++ {
		if err := b.SetColor(v, g.Color(v)); err != nil {
			return nil, nil, err
		}
	}
	for _, e := range g.EdgeList() {
		if err := b.AddEdge(e[0], e[1]); err != nil {
			return nil, nil, err
		}
	}
	falseV, trueV := n, n+1
	if err := b.SetColor(falseV, nextColor); err != nil {
		return nil, nil, err
	}
	if err := b.SetColor(trueV, nextColor+1); err != nil {
		return nil, nil, err
	}

	ng, err := b.Finish()
	if err != nil {
		return nil, nil, err
	}
	return ng, []int{falseV, trueV}, nil
}

func identityVars(n int) []int {
	vars := make([]int, n)
	for i := range vars {
		vars[i] = i
	}
	return vars
}
