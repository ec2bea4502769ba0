package builder

import "errors"

var (
	// ErrTooFewVertices is returned by Path and Complete when n < 2.
	ErrTooFewVertices = errors.New("builder: n must be at least 2")

	// ErrTooFewPoints is returned by Companion when n < 3: below that,
	// the pair-incidence gadget has at most one pair vertex (n=2 has a
	// single pair, n=1 has none).
	ErrTooFewPoints = errors.New("builder: companion construction needs at least 3 points")
)
