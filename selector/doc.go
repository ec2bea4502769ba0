// Package selector implements the orbit-selector heuristic of spec.md
// §4.4: given the current graph, the ordered variable-vertex set, the
// prefix built so far, and (optionally) the previous level's traversal
// indicator, it picks the next prefix vertex.
//
// Grounded on builder/helpers.go's deterministic-scan idiom: always
// walk candidates in ascending index order and take the first that
// satisfies the criterion, so the tie-break rule is a direct
// consequence of iteration order rather than a separate comparator.
package selector
