package cli

import "errors"

// Sentinel errors for the CLI's own input validation (spec.md §7(i)
// kinds not already covered by ioformat/prefix/engine's own sentinel
// errors): flag combinations and prefix well-formedness that can only
// be checked once the input document has been assembled.
var (
	ErrNoInputSections     = errors.New("cli: input supplies neither a CNF nor a symmetry graph section")
	ErrMissingGraphSection = errors.New("cli: --graph set but input has no \"p edge\" section")
	ErrMissingLength       = errors.New("cli: --length/-l is required unless --symmetry-only is set")
	ErrPrefixTooLong       = errors.New("cli: prefix length exceeds target length K")
	ErrPrefixOutOfRange    = errors.New("cli: prefix vertex is outside the variable vertex set")
	ErrDuplicatePrefix     = errors.New("cli: prefix lists the same vertex twice")
)
