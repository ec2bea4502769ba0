package engine

import "errors"

var (
	// ErrNoVariables is returned by New when V is empty: there is no
	// vertex the selector could ever pick.
	ErrNoVariables = errors.New("engine: variable vertex set is empty")

	// ErrInvalidThreshold is returned by New when t < 0. t = 0 is valid
	// and means "never emit early": |Aut(H)| is always at least 1.
	ErrInvalidThreshold = errors.New("engine: threshold must be non-negative")

	// ErrInvalidLength is returned by New when K < 1.
	ErrInvalidLength = errors.New("engine: prefix length bound must be at least 1")
)
