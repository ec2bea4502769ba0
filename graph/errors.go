package graph

import "errors"

// Sentinel errors for the graph package. Callers branch with errors.Is;
// these are never stringified at the definition site, matching the
// teacher's errors.go convention.
var (
	// ErrVertexRange indicates a vertex index outside [0, n).
	ErrVertexRange = errors.New("graph: vertex index out of range")

	// ErrDuplicateEdge indicates the same unordered pair was added twice.
	ErrDuplicateEdge = errors.New("graph: duplicate edge")

	// ErrSelfLoop indicates an edge (u, u) was requested; the data model
	// forbids self-loops (spec.md §6: "u≠v").
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrMissingColor indicates a vertex was never assigned a color.
	ErrMissingColor = errors.New("graph: vertex missing a color")

	// ErrDuplicateColor indicates a vertex was assigned a color twice.
	ErrDuplicateColor = errors.New("graph: duplicate color assignment")

	// ErrBadPermutation indicates a permutation slice is not a bijection
	// on {0..n-1}.
	ErrBadPermutation = errors.New("graph: not a valid permutation")
)
