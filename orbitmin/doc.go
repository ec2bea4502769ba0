// Package orbitmin implements the orbit-minimum indicator of spec.md
// §4.3: for a graph G (optionally viewed through a relabeling ν), the
// boolean vector that is true exactly at the lowest-indexed member of
// each Aut(G) orbit.
//
// Grounded on matrix/impl_statistics.go's group-by-key-then-reduce
// shape, adapted here from a numeric column reduction to an
// extremal-element-per-orbit selection.
package orbitmin
