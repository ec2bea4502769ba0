package ioformat

import "errors"

// Sentinel errors for malformed input (spec.md §7(i)): fatal, reported
// with a human-readable message, checked once at parse time.
var (
	ErrMalformedHeader   = errors.New("ioformat: malformed header line")
	ErrUnexpectedEOF     = errors.New("ioformat: unexpected end of input")
	ErrClauseCountMismatch = errors.New("ioformat: clause count does not match header")
	ErrEdgeCountMismatch   = errors.New("ioformat: edge count does not match header")
	ErrBadValueCount       = errors.New("ioformat: value set is not {false, true}")
	ErrMissingValueTag     = errors.New("ioformat: CNF mode requires both \"false\" and \"true\" value tags")
	ErrPrefixLengthRange   = errors.New("ioformat: prefix assigned count out of [0, k] range")
	ErrBadVariableTag      = errors.New("ioformat: variable tag is not a valid CNF literal number")
)
