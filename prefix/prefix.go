package prefix

import (
	"github.com/pkaski/reduce/graph"
	"github.com/pkaski/reduce/labeler"
	"github.com/pkaski/reduce/traversal"
)

// Level is the per-level state of spec.md §3: the graph G_{ℓ+1}, the
// traversal of p_ℓ's Aut(G_ℓ)-orbit, the orbit indicator of p_ℓ in
// G_{ℓ+1}, and the three counters. SeedMin is filled in by the search
// engine (Case A/initialization of spec.md §4.5), not by Expand.
type Level struct {
	Vertex  int                 // P[ℓ]
	Graph   *graph.Graph        // G_{ℓ+1}
	Trav    []graph.Permutation // trav_ℓ
	TravInd []bool              // trav_ind_ℓ: image set of Trav
	Orbit   []bool              // orbit_ℓ: Aut(G_{ℓ+1})-orbit of p_ℓ
	SeedMin []bool              // seed_min_ℓ

	StatGen int
	StatCan int
	StatOut int
}

// Manager owns the prefix P and its per-level state for the lifetime
// of a search. It is constructed once over (G₀, V, R) and then
// extended append-only by Expand.
type Manager struct {
	Base   *graph.Graph
	Vars   []int
	Values []int
	Prefix []int
	Levels []Level

	lab labeler.Labeler
}

// NewManager validates spec.md §3's invariants on V and R against
// Aut(G₀) and returns a Manager ready to Expand.
func NewManager(base *graph.Graph, vars, values []int, lab labeler.Labeler) (*Manager, error) {
	orbits, err := lab.Orbits(base)
	if err != nil {
		return nil, err
	}

	varSet := make(map[int]bool, len(vars))
	for _, v := range vars {
		varSet[v] = true
	}
	groups := orbits.Groups()
	for _, members := range groups {
		inV, outV := 0, 0
		for _, m := range members {
			if varSet[m] {
				inV++
			} else {
				outV++
			}
		}
		if inV > 0 && outV > 0 {
			return nil, ErrVariablesNotOrbitUnion
		}
	}
	for _, r := range values {
		if len(groups[orbits[r]]) != 1 {
			return nil, ErrValueNotFixedPoint
		}
	}

	return &Manager{Base: base, Vars: vars, Values: values, lab: lab}, nil
}

// lastGraph returns the "last prefix graph" G_ℓ feeding the next
// Expand call: G₀ if the prefix is still empty, else the previous
// level's G_{ℓ}.
func (m *Manager) lastGraph() *graph.Graph {
	if len(m.Levels) == 0 {
		return m.Base
	}
	return m.Levels[len(m.Levels)-1].Graph
}

// Expand implements spec.md §4.6: append p to the prefix and build
// trav_ℓ, trav_ind_ℓ, orbit_ℓ and the new G_{ℓ+1}. Returns the new
// level's index.
func (m *Manager) Expand(p int) (int, error) {
	ell := len(m.Prefix)
	for _, used := range m.Prefix {
		if used == p {
			return 0, ErrVertexAlreadyInPrefix
		}
	}
	isVar := false
	for _, v := range m.Vars {
		if v == p {
			isVar = true
			break
		}
	}
	if !isVar {
		return 0, ErrVertexNotVariable
	}

	prevGraph := m.lastGraph()

	gens, err := m.lab.Generators(prevGraph)
	if err != nil {
		return 0, err
	}
	orbits, err := m.lab.Orbits(prevGraph)
	if err != nil {
		return 0, err
	}
	_, taus, err := traversal.Build(p, gens, orbits)
	if err != nil {
		return 0, err
	}
	travInd := orbits.Indicator(p)

	newGraph, err := prevGraph.WithEdges([][2]int{{p, m.Values[0]}})
	if err != nil {
		return 0, err
	}
	newOrbits, err := m.lab.Orbits(newGraph)
	if err != nil {
		return 0, err
	}
	orbitInd := newOrbits.Indicator(p)

	m.Prefix = append(m.Prefix, p)
	m.Levels = append(m.Levels, Level{
		Vertex:  p,
		Graph:   newGraph,
		Trav:    taus,
		TravInd: travInd,
		Orbit:   orbitInd,
	})
	return ell, nil
}

// SetSeedMin stores seed_min_ℓ for an already-expanded level.
func (m *Manager) SetSeedMin(level int, seedMin []bool) {
	m.Levels[level].SeedMin = seedMin
}
