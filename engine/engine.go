package engine

import (
	"context"

	"github.com/pkaski/reduce/graph"
	"github.com/pkaski/reduce/labeler"
	"github.com/pkaski/reduce/orbitmin"
	"github.com/pkaski/reduce/prefix"
	"github.com/pkaski/reduce/selector"
)

// autCap is the emission's truncation ceiling for |Aut(H)|, spec.md
// §4.5's "2^31 - 1".
const autCap = 1<<31 - 1

// Engine is the search engine of spec.md §4.5. Construct one with New
// and pull assignments with Next until it returns (nil, nil).
type Engine struct {
	mgr *prefix.Manager
	lab labeler.Labeler

	k int // prefix length bound, K
	t int // threshold

	stack []frame

	initialPrefix []int
	started       bool
}

// New builds an Engine over mgr's (G₀, V, R). initialPrefix, if
// non-empty, names the vertex for each of its first len(initialPrefix)
// prefix positions (the CLI's -p flag, or a "p prefix" section's
// forced "f" vertices) instead of letting the selector choose it; each
// named vertex still goes through the ordinary Case A/B value search
// and canonical accept/reject test — only the choice of *which*
// vertex occupies the position is overridden, not its value.
func New(mgr *prefix.Manager, lab labeler.Labeler, k, t int, initialPrefix []int) (*Engine, error) {
	if len(mgr.Vars) == 0 {
		return nil, ErrNoVariables
	}
	if k < 1 {
		return nil, ErrInvalidLength
	}
	if t < 0 {
		return nil, ErrInvalidThreshold
	}
	return &Engine{mgr: mgr, lab: lab, k: k, t: t, initialPrefix: initialPrefix}, nil
}

// Next implements next_assignment(): it returns the next normalized
// assignment, or (nil, nil) once the work stack underflows, or an
// error from the labeler or from ctx cancellation.
func (e *Engine) Next(ctx context.Context) (*Assignment, error) {
	if !e.started {
		if err := e.init(); err != nil {
			return nil, err
		}
		e.started = true
	}

	for len(e.stack) > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		out, err := e.step()
		if err != nil {
			return nil, err
		}
		if out != nil {
			return out, nil
		}
	}
	return nil, nil
}

// init performs spec.md §4.5's "initialization at first call": pick
// p0 (the forced first vertex if one was supplied, else the
// selector's choice), build level 0, and push the single starting
// frame. Any further preloaded positions are handled by expand, which
// substitutes the next forced vertex for its own selector call — they
// still pass through the ordinary Case A/B value search rather than
// being injected as a ready-made multi-level frame.
func (e *Engine) init() error {
	var p0 int
	if len(e.initialPrefix) > 0 {
		p0 = e.initialPrefix[0]
	} else {
		picked, err := e.pickSelectorVertex(0)
		if err != nil {
			return err
		}
		p0 = picked
	}

	orbits, err := e.lab.Orbits(e.mgr.Base)
	if err != nil {
		return err
	}
	if _, err := e.mgr.Expand(p0); err != nil {
		return err
	}
	seedMin := orbitmin.Compute(orbits, graph.Identity(e.mgr.Base.N()))
	e.mgr.SetSeedMin(0, seedMin)

	level := e.mgr.Levels[0]
	vertex, idx, ok := firstSeedMinMatch(level.Trav, p0, seedMin, 0)
	if !ok {
		return ErrNoVariables
	}

	e.stack = append(e.stack, frame{vars: []int{vertex}, vals: []int{0}, travIdx: idx})
	return nil
}

// pickSelectorVertex invokes the selector on the last-prefix graph for
// a brand new level (no preloaded prefix was supplied for it).
func (e *Engine) pickSelectorVertex(ell int) (int, error) {
	prevGraph := e.mgr.Base
	var prevTrav []bool
	if ell > 0 {
		prevGraph = e.mgr.Levels[ell-1].Graph
		prevTrav = e.mgr.Levels[ell-1].TravInd
	}
	orbits, err := e.lab.Orbits(prevGraph)
	if err != nil {
		return 0, err
	}
	gens, err := e.lab.Generators(prevGraph)
	if err != nil {
		return 0, err
	}
	used := make(map[int]bool, len(e.mgr.Prefix))
	for _, v := range e.mgr.Prefix {
		used[v] = true
	}
	return selector.Select(e.mgr.Vars, used, orbits, gens, prevTrav), nil
}

// firstSeedMinMatch scans trav[start:] in increasing index order for
// the first element whose image satisfies seedMin, returning the
// image vertex and its traversal index.
func firstSeedMinMatch(trav []graph.Permutation, root int, seedMin []bool, start int) (vertex, idx int, ok bool) {
	for j := start; j < len(trav); j++ {
		img := trav[j].Apply(root)
		if seedMin[img] {
			return img, j, true
		}
	}
	return 0, 0, false
}

// step executes one pop-advance-push cycle of the main step. It
// returns a non-nil Assignment on emission, or (nil, nil) if the
// engine should loop again (candidate rejected, or frame replaced).
func (e *Engine) step() (*Assignment, error) {
	top := &e.stack[len(e.stack)-1]
	ell := len(top.vars) - 1
	level := e.mgr.Levels[ell]
	r := len(e.mgr.Values)
	cv := top.vals[ell]

	if cv >= r {
		return e.advanceVariable(top, ell, level)
	}
	return e.advanceValue(top, ell, level, cv)
}

// advanceValue realizes Case A of spec.md §4.5.
func (e *Engine) advanceValue(top *frame, ell int, level prefix.Level, cv int) (*Assignment, error) {
	top.vals[ell] = cv + 1 // re-push: next value explored on a future call

	nu := level.Trav[top.travIdx].Inverse()

	extra := make([][2]int, ell+1)
	for i := 0; i <= ell; i++ {
		vi := top.vals[i]
		if i == ell {
			vi = cv
		}
		extra[i] = [2]int{top.vars[i], e.mgr.Values[vi]}
	}
	h, err := e.mgr.Base.WithEdges(extra)
	if err != nil {
		return nil, err
	}

	lambda, err := e.lab.CanonicalLabeling(h)
	if err != nil {
		return nil, err
	}
	order := lambda.Inverse() // order[t] = vertex placed at canonical position t

	var q int
	found := false
	for t := 0; t < h.N(); t++ {
		v := order.Apply(t)
		if level.Orbit[nu.Apply(v)] {
			q = v
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNoVariables
	}

	level.StatGen++
	e.mgr.Levels[ell] = level

	orbitsH, err := e.lab.Orbits(h)
	if err != nil {
		return nil, err
	}
	if !orbitsH.SameGroup(top.vars[ell], q) {
		return nil, nil // discard, not canonical
	}

	level = e.mgr.Levels[ell]
	level.StatCan++
	e.mgr.Levels[ell] = level

	nvars := make([]int, ell+1)
	nvals := make([]int, ell+1)
	for i := 0; i <= ell; i++ {
		nvars[i] = nu.Apply(top.vars[i])
		nvals[i] = top.vals[i]
	}
	nvals[ell] = cv

	stabIdx, err := e.lab.StabilizerIndices(h)
	if err != nil {
		return nil, err
	}
	aut := clippedProduct(stabIdx)

	if ell+1 == e.k || aut <= e.t {
		vals := make([]int, ell+1)
		for i, vi := range nvals {
			vals[i] = e.mgr.Values[vi]
		}
		level = e.mgr.Levels[ell]
		level.StatOut++
		e.mgr.Levels[ell] = level
		return &Assignment{Size: ell + 1, Vars: nvars, Vals: vals, Aut: aut}, nil
	}

	return nil, e.expand(ell, h, nu, nvars, nvals)
}

// expand grows the work stack by one level after an accepted,
// non-emitted candidate: it may first adopt a new prefix position
// (the next forced vertex, if the caller preloaded one, else the
// selector's choice), it always computes the finer seed_min_{ℓ+1}
// from H and ν, and it pushes the child frame.
func (e *Engine) expand(ell int, h *graph.Graph, nu graph.Permutation, nvars, nvals []int) error {
	if ell+1 >= len(e.mgr.Prefix) {
		var p int
		if ell+1 < len(e.initialPrefix) {
			p = e.initialPrefix[ell+1]
		} else {
			picked, err := e.pickSelectorVertex(ell + 1)
			if err != nil {
				return err
			}
			p = picked
		}
		if _, err := e.mgr.Expand(p); err != nil {
			return err
		}
	}

	orbitsH, err := e.lab.Orbits(h)
	if err != nil {
		return err
	}
	seedMin := orbitmin.Compute(orbitsH, nu)
	e.mgr.SetSeedMin(ell+1, seedMin)

	childLevel := e.mgr.Levels[ell+1]
	vertex, idx, ok := firstSeedMinMatch(childLevel.Trav, childLevel.Vertex, seedMin, 0)
	if !ok {
		return ErrNoVariables
	}

	vars := append(append([]int{}, nvars...), vertex)
	vals := append(append([]int{}, nvals...), 0)
	e.stack = append(e.stack, frame{vars: vars, vals: vals, travIdx: idx})
	return nil
}

// advanceVariable realizes Case B of spec.md §4.5.
func (e *Engine) advanceVariable(top *frame, ell int, level prefix.Level) (*Assignment, error) {
	e.stack = e.stack[:len(e.stack)-1] // pop; not re-pushed as-is

	vertex, idx, ok := firstSeedMinMatch(level.Trav, level.Vertex, level.SeedMin, top.travIdx+1)
	if !ok {
		return nil, nil // level exhausted, implicit pop already done
	}

	vars := append([]int{}, top.vars...)
	vals := append([]int{}, top.vals...)
	vars[ell] = vertex
	vals[ell] = 0
	e.stack = append(e.stack, frame{vars: vars, vals: vals, travIdx: idx})
	return nil, nil
}

// clippedProduct multiplies stabilizer indices, saturating at autCap.
func clippedProduct(indices []int) int {
	product := int64(1)
	for _, idx := range indices {
		product *= int64(idx)
		if product > autCap {
			return autCap
		}
	}
	return int(product)
}
