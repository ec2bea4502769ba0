// Package labeler implements the "canonical labeler" external contract
// of spec.md §4.1: canonical labeling, orbit partition, a generator
// stream for Aut(G), and the stabilizer-index sequence whose product
// is |Aut(G)|.
//
// No repository in the retrieval pack binds a reusable canonical-form
// library (no nauty/bliss/saucy); Refiner is therefore a self-contained
// individualization-refinement + backtracking engine, structured as an
// explicit engine struct driving a depth-first search — the shape of
// tsp/bb.go's bbEngine, generalized from numeric branch-and-bound over
// tours to a search over vertex orderings of a colored graph. The
// search is exhaustive: after equitable refinement at each node it
// visits every leaf of the tree, with no automorphism or invariant
// pruning. It trades asymptotic sophistication for the one property
// the engine actually requires: deterministic, reproducible output for
// small-to-medium fixtures.
package labeler
