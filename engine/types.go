package engine

// Assignment is a normalized emission of spec.md §4.5: a canonical
// representative of an orbit of partial assignments, together with a
// truncated automorphism-group order of the graph that produced it.
type Assignment struct {
	Size int   // number of assigned variable vertices
	Vars []int // variable vertex ids, length Size
	Vals []int // value vertex ids (not R-indices), length Size
	Aut  int   // min(|Aut(H)|, 2^31-1)
}

// frame is one entry of the work stack: a partial assignment in
// progress at level ℓ = len(vars)-1, together with the traversal index
// currently producing vars[ℓ].
type frame struct {
	vars    []int // vars[0..ℓ]
	vals    []int // vals[0..ℓ], R-index space
	travIdx int   // j such that trav_ℓ[j](p_ℓ) == vars[ℓ]
}
