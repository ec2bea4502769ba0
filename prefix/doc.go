// Package prefix owns the ordered prefix of variable vertices and the
// per-level state derived from it (spec.md §3 "Per-level state", §4.6
// expand_prefix). It does not itself decide which vertex extends the
// prefix — that is selector's job — it only builds and stores the
// structures that follow from a chosen vertex.
//
// Grounded on core/methods_clone.go's "own a growable slice of
// per-instance records, extend on demand" pattern, applied here to
// per-level rather than per-clone state.
package prefix
