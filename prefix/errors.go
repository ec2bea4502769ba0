package prefix

import "errors"

// Sentinel errors for the prefix package. The first two are input
// errors (spec.md §7(i)): fatal, reported with a human-readable
// message, checked once at level 0.
var (
	// ErrVariablesNotOrbitUnion indicates V is not a union of
	// Aut(G₀)-orbits (spec.md §3 invariant on V).
	ErrVariablesNotOrbitUnion = errors.New("prefix: variable vertex set is not a union of Aut(G0) orbits")

	// ErrValueNotFixedPoint indicates a value vertex is not a singleton
	// Aut(G₀)-orbit (spec.md §3 invariant on R).
	ErrValueNotFixedPoint = errors.New("prefix: value vertex is not a fixed point of Aut(G0)")

	// ErrVertexAlreadyInPrefix indicates a repeated prefix element
	// (spec.md §7(i)).
	ErrVertexAlreadyInPrefix = errors.New("prefix: vertex already in prefix")

	// ErrVertexNotVariable indicates a prefix element outside V
	// (spec.md §7(i): "out-of-range prefix vertex").
	ErrVertexNotVariable = errors.New("prefix: vertex is not a variable vertex")
)
