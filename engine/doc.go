// Package engine implements the search engine of spec.md §4.5: a
// pull-based iterator, driven by a LIFO work stack of partial
// assignments, that emits one canonical representative per orbit of
// partial assignments up to length K.
//
// Grounded on tsp/bb.go's bbEngine: a dedicated engine struct owning
// all search state explicitly (no closures, no global state), a
// deterministic branching order, and a sparse cancellation-check idiom
// (here applied to cooperative ctx.Done() checks rather than a wall
// clock deadline).
package engine
