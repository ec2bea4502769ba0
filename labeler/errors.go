package labeler

import "errors"

// Sentinel errors for the labeler package.
var (
	// ErrEmptyGraph indicates a graph with zero vertices was passed to an
	// operation that requires at least one.
	ErrEmptyGraph = errors.New("labeler: graph has no vertices")

	// ErrSearchExhausted is a programmer-error guard: the backtracking
	// search terminated without ever reaching a discrete partition. This
	// should be unreachable for a well-formed equitable refinement and
	// indicates a contract violation in the refinement step itself.
	ErrSearchExhausted = errors.New("labeler: search produced no leaf")
)
