package traversal

import "errors"

// ErrIncompleteOrbit indicates the supplied generator stream did not
// cover the full orbit of root — a contract violation of the external
// labeler (spec.md §7(ii)): "traversal cannot reach every orbit
// element". This is a programmer error, not a recoverable one.
var ErrIncompleteOrbit = errors.New("traversal: generators do not cover the orbit of root")
