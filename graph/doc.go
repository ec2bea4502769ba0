// Package graph provides the immutable, vertex-colored undirected graph
// that the symmetry-reduction engine operates over, along with the
// permutation and partition types used throughout the rest of the
// module.
//
// A Graph is built once (via a Builder) and never mutated afterwards;
// level-local variants (G_ℓ, built from G₀ by adding edges) are
// produced by WithEdges, which builds a new, independent Graph holding
// the original's colors and edges plus the extra edges — the original
// is never touched.
package graph
