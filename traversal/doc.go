// Package traversal builds an orbit transversal (spec.md §4.2): given a
// graph G and a root vertex, it produces one Aut(G) element per orbit
// element of root, each carrying root to that element.
//
// Grounded on core/methods_adjacent.go's BFS-style frontier expansion
// (a visited/done set plus a worklist processed to closure), adapted
// here from expanding along graph edges to expanding along group
// generators.
package traversal
