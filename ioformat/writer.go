package ioformat

import (
	"fmt"
	"io"

	"github.com/pkaski/reduce/engine"
)

// Legend maps the internal vertex-id space back to the external
// labels a writer needs: a short display tag per variable vertex, and
// which value vertex is "false" versus "true" for CNF-shaped output.
type Legend struct {
	VarTag      map[int]string
	VarCNFIndex map[int]int // variable vertex -> CNF variable number
	FalseValue  int
	TrueValue   int
}

// WriteText writes one line per emission: the |Aut| cap bracketed,
// followed by comma-separated "<var_legend> -> <val_legend>" pairs
// (spec.md §6).
func WriteText(w io.Writer, legend Legend, a *engine.Assignment) error {
	pairs := make([]string, a.Size)
	for i := 0; i < a.Size; i++ {
		valTag := "false"
		if a.Vals[i] == legend.TrueValue {
			valTag = "true"
		}
		pairs[i] = fmt.Sprintf("%s -> %s", legend.VarTag[a.Vars[i]], valTag)
	}
	_, err := fmt.Fprintf(w, "[%d] ", a.Aut)
	if err != nil {
		return err
	}
	for i, p := range pairs {
		if i > 0 {
			if _, err := io.WriteString(w, ", "); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// literal returns the signed CNF literal for assignment position i:
// positive the variable's CNF index if the value is true, negative
// otherwise.
func literal(legend Legend, varVertex, valVertex int) int {
	n := legend.VarCNFIndex[varVertex]
	if valVertex == legend.TrueValue {
		return n
	}
	return -n
}

// WriteCNF re-emits base with its variable count grown by one branch
// variable per emission and its clause count grown by one implication
// clause per assigned literal plus a single shared closing clause
// (spec.md §6, §8 scenario 3): branch literal b_e is Tseitin-encoded
// as implied by the conjunction of e's literals — clauses (¬b_e, lit)
// for each assigned literal — and exactly one closing clause (b_1 ∨
// b_2 ∨ ... ∨ b_count) forces at least one orbit representative true,
// making the result the disjunctive split over representatives rather
// than a set of unconstrained biconditionals.
func WriteCNF(w io.Writer, base *CNF, legend Legend, assignments []*engine.Assignment) error {
	newClauses := 1
	for _, a := range assignments {
		newClauses += a.Size
	}
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", base.NumVars+len(assignments), base.NumClauses+newClauses); err != nil {
		return err
	}
	for _, clause := range base.Clauses {
		if err := writeClause(w, clause); err != nil {
			return err
		}
	}
	closing := make([]int, len(assignments))
	for e, a := range assignments {
		branch := base.NumVars + e + 1
		closing[e] = branch
		for i := 0; i < a.Size; i++ {
			lit := literal(legend, a.Vars[i], a.Vals[i])
			if err := writeClause(w, []int{-branch, lit}); err != nil {
				return err
			}
		}
	}
	return writeClause(w, closing)
}

func writeClause(w io.Writer, lits []int) error {
	for _, lit := range lits {
		if _, err := fmt.Fprintf(w, "%d ", lit); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "0\n")
	return err
}

// WriteIncrementalCube writes the "p inccnf" header (no counts) then,
// for each emission, one "a <lits...> 0" line (spec.md §6).
func WriteIncrementalCube(w io.Writer, legend Legend, assignments []*engine.Assignment) error {
	if _, err := io.WriteString(w, "p inccnf\n"); err != nil {
		return err
	}
	for _, a := range assignments {
		if _, err := io.WriteString(w, "a "); err != nil {
			return err
		}
		for i := 0; i < a.Size; i++ {
			lit := literal(legend, a.Vars[i], a.Vals[i])
			if _, err := fmt.Fprintf(w, "%d ", lit); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "0\n"); err != nil {
			return err
		}
	}
	return nil
}
