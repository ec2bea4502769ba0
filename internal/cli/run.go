package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/pkaski/reduce/builder"
	"github.com/pkaski/reduce/engine"
	"github.com/pkaski/reduce/graph"
	"github.com/pkaski/reduce/ioformat"
	"github.com/pkaski/reduce/labeler"
	"github.com/pkaski/reduce/prefix"
)

// document is the assembled, classified content of one input: the
// optional CNF, the optional explicit symmetry graph, and the
// optional variable/value/prefix declarations, each still in its raw
// section text form.
type document struct {
	cnf      string
	edge     string
	variable string
	value    string
	prefix   string
}

// Run implements spec.md §6 end to end: read the input document,
// build G0/V/R, run the search engine to completion, and write the
// requested output format. An input error, a labeler contract
// violation, or a resource-exhaustion failure is returned to the
// caller rather than logged here (spec.md §7); cmd/reduce's main
// prints a non-nil return to stderr and exits with os.Exit(1).
func Run(ctx context.Context, opts *options) error {
	logger := loggerFromContext(ctx)

	raw, err := readInput(opts.inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	doc := classify(raw)
	logger.Debug("assembled input document", "hasCNF", doc.cnf != "", "hasGraph", doc.edge != "")

	base, cnf, err := buildGraph(doc, opts)
	if err != nil {
		return err
	}
	logger.Debug("built base graph", "n", base.N())

	vars, values, legend, err := buildVariablesAndValues(doc, base, cnf)
	if err != nil {
		return err
	}
	logger.Debug("resolved variable/value vertices", "vars", len(vars), "values", len(values))

	lab := labeler.Refiner{}
	mgr, err := prefix.NewManager(base, vars, values, lab)
	if err != nil {
		return fmt.Errorf("building prefix manager: %w", err)
	}

	if opts.symmetryOnly {
		return reportSymmetryOnly(logger, lab, base)
	}
	if opts.length <= 0 {
		return ErrMissingLength
	}

	initialPrefix, err := resolveInitialPrefix(doc, opts, vars)
	if err != nil {
		return err
	}

	eng, err := engine.New(mgr, lab, opts.length, opts.threshold, initialPrefix)
	if err != nil {
		return fmt.Errorf("constructing engine: %w", err)
	}

	var assignments []*engine.Assignment
	for {
		a, err := eng.Next(ctx)
		if err != nil {
			return fmt.Errorf("engine.Next: %w", err)
		}
		if a == nil {
			break
		}
		assignments = append(assignments, a)
	}
	logger.Info("search complete", "emissions", len(assignments))

	out, closeFn, err := openOutput(opts.outputPath)
	if err != nil {
		return fmt.Errorf("opening output: %w", err)
	}
	defer closeFn()

	return writeOutput(out, opts, cnf, legend, assignments)
}

// readInput returns the full contents of path, or stdin if path is
// empty.
func readInput(path string) (string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// classify dispatches each of ioformat.SplitSections' pieces to its
// document field by the second field of its header line.
func classify(raw string) document {
	var doc document
	for _, section := range ioformat.SplitSections(raw) {
		var fields []string
		for _, line := range strings.Split(section, "\n") {
			if f := strings.Fields(line); len(f) > 0 && f[0] == "p" {
				fields = f
				break
			}
		}
		if len(fields) < 2 {
			continue
		}
		switch fields[1] {
		case "cnf":
			doc.cnf = section
		case "edge":
			doc.edge = section
		case "variable":
			doc.variable = section
		case "value":
			doc.value = section
		case "prefix":
			doc.prefix = section
		}
	}
	return doc
}

// buildGraph assembles G0 per spec.md §6: an explicit symmetry graph
// when --graph is set (or one is supplied anyway), else a trivial
// uniformly-colored, edgeless graph over the CNF's variables with two
// appended boolean value vertices (spec.md §8 scenario 1's "no
// symmetry beyond identity").
func buildGraph(doc document, opts *options) (*graph.Graph, *ioformat.CNF, error) {
	var cnf *ioformat.CNF
	if doc.cnf != "" {
		parsed, err := ioformat.ParseCNF(strings.NewReader(doc.cnf))
		if err != nil {
			return nil, nil, fmt.Errorf("parsing CNF section: %w", err)
		}
		cnf = parsed
	}

	if doc.edge != "" {
		g, err := ioformat.ParseSymmetryGraph(strings.NewReader(doc.edge))
		if err != nil {
			return nil, nil, fmt.Errorf("parsing symmetry graph section: %w", err)
		}
		return g, cnf, nil
	}
	if opts.graph {
		return nil, nil, ErrMissingGraphSection
	}
	if cnf == nil {
		return nil, nil, ErrNoInputSections
	}

	b := graph.NewBuilder(cnf.NumVars)
	for v := 0; v < cnf.NumVars; v++ {
		if err := b.SetColor(v, 0); err != nil {
			return nil, nil, err
		}
	}
	plain, err := b.Finish()
	if err != nil {
		return nil, nil, err
	}
	g, _, err := builder.AppendBooleanValues(plain)
	if err != nil {
		return nil, nil, err
	}
	return g, cnf, nil
}

// buildVariablesAndValues resolves V, R, and the display/CNF legend
// either from explicit "p variable"/"p value" declarations, or, when
// absent, from the identity mapping CNF variable i <-> vertex i-1 used
// by buildGraph's trivial fallback.
func buildVariablesAndValues(doc document, base *graph.Graph, cnf *ioformat.CNF) ([]int, []int, ioformat.Legend, error) {
	legend := ioformat.Legend{VarTag: map[int]string{}, VarCNFIndex: map[int]int{}}

	if doc.variable != "" && doc.value != "" {
		cnfVars := 0
		if cnf != nil {
			cnfVars = cnf.NumVars
		}
		decls, err := ioformat.ParseVariables(strings.NewReader(doc.variable), cnfVars)
		if err != nil {
			return nil, nil, legend, fmt.Errorf("parsing variable section: %w", err)
		}
		vars := make([]int, len(decls))
		for i, d := range decls {
			vars[i] = d.Vertex
			legend.VarTag[d.Vertex] = d.Tag
			if n, err := strconv.Atoi(d.Tag); err == nil {
				legend.VarCNFIndex[d.Vertex] = n
			}
		}
		values, err := ioformat.ParseValues(strings.NewReader(doc.value), cnf != nil)
		if err != nil {
			return nil, nil, legend, fmt.Errorf("parsing value section: %w", err)
		}
		if len(values) != 2 {
			return nil, nil, legend, ioformat.ErrBadValueCount
		}
		legend.FalseValue, legend.TrueValue = values[0], values[1]
		return vars, values, legend, nil
	}

	if cnf == nil {
		return nil, nil, legend, ErrNoInputSections
	}
	vars := make([]int, cnf.NumVars)
	for i := range vars {
		vars[i] = i
		legend.VarTag[i] = fmt.Sprintf("x%d", i+1)
		legend.VarCNFIndex[i] = i + 1
	}
	falseV, trueV := base.N()-2, base.N()-1
	legend.FalseValue, legend.TrueValue = falseV, trueV
	return vars, []int{falseV, trueV}, legend, nil
}

// resolveInitialPrefix combines the --prefix flag (1-indexed vertex
// ids, highest priority) with a "p prefix" section's forced vertices,
// validating the result against vars and the target length.
func resolveInitialPrefix(doc document, opts *options, vars []int) ([]int, error) {
	var picks []int
	switch {
	case len(opts.prefix) > 0:
		picks = make([]int, len(opts.prefix))
		for i, p := range opts.prefix {
			picks[i] = p - 1
		}
	case doc.prefix != "":
		parsed, err := ioformat.ParsePrefix(strings.NewReader(doc.prefix))
		if err != nil {
			return nil, fmt.Errorf("parsing prefix section: %w", err)
		}
		picks = parsed.Forced
	default:
		return nil, nil
	}

	if len(picks) > opts.length {
		return nil, ErrPrefixTooLong
	}
	inVars := make(map[int]bool, len(vars))
	for _, v := range vars {
		inVars[v] = true
	}
	seen := make(map[int]bool, len(picks))
	for _, p := range picks {
		if !inVars[p] {
			return nil, ErrPrefixOutOfRange
		}
		if seen[p] {
			return nil, ErrDuplicatePrefix
		}
		seen[p] = true
	}
	return picks, nil
}

// reportSymmetryOnly implements --symmetry-only: initialize the
// labeler over G0 and log its orbit/automorphism summary without
// running the search.
func reportSymmetryOnly(logger *charmlog.Logger, lab labeler.Labeler, base *graph.Graph) error {
	orbits, err := lab.Orbits(base)
	if err != nil {
		return fmt.Errorf("computing orbits: %w", err)
	}
	stab, err := lab.StabilizerIndices(base)
	if err != nil {
		return fmt.Errorf("computing stabilizer indices: %w", err)
	}
	const autCap = 1<<31 - 1
	aut := 1
	for _, s := range stab {
		aut *= s
		if aut > autCap {
			aut = autCap
			break
		}
	}
	logger.Info("symmetry-only report", "n", base.N(), "orbits", len(orbits.Groups()), "autOrder", aut)
	return nil
}

// openOutput opens path for writing, or wraps stdout if path is
// empty. The returned close function is always safe to call.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func writeOutput(w io.Writer, opts *options, cnf *ioformat.CNF, legend ioformat.Legend, assignments []*engine.Assignment) error {
	switch {
	case opts.incremental:
		return ioformat.WriteIncrementalCube(w, legend, assignments)
	case cnf != nil && !opts.noCNF:
		return ioformat.WriteCNF(w, cnf, legend, assignments)
	default:
		for _, a := range assignments {
			if err := ioformat.WriteText(w, legend, a); err != nil {
				return err
			}
		}
		return nil
	}
}
