package ioformat_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkaski/reduce/engine"
	"github.com/pkaski/reduce/ioformat"
	"github.com/stretchr/testify/require"
)

func TestParseCNF(t *testing.T) {
	src := "c a comment\np cnf 6 3\n1 2 0\n1 3 5 0\n2 4 6 0\n"
	cnf, err := ioformat.ParseCNF(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 6, cnf.NumVars)
	require.Equal(t, 3, cnf.NumClauses)
	require.Equal(t, [][]int{{1, 2}, {1, 3, 5}, {2, 4, 6}}, cnf.Clauses)
}

func TestParseCNFRejectsBadHeader(t *testing.T) {
	_, err := ioformat.ParseCNF(strings.NewReader("p sat 1 1\n"))
	require.ErrorIs(t, err, ioformat.ErrMalformedHeader)
}

func TestParseSymmetryGraph(t *testing.T) {
	src := "p edge 3 2\ne 1 2\ne 2 3\nc 1 0\nc 2 0\nc 3 1\n"
	g, err := ioformat.ParseSymmetryGraph(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, g.N())
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(1, 2))
	require.Equal(t, 1, g.Color(2))
}

func TestParseSymmetryGraphRejectsEdgeMismatch(t *testing.T) {
	src := "p edge 3 2\ne 1 2\nc 1 0\nc 2 0\nc 3 0\n"
	_, err := ioformat.ParseSymmetryGraph(strings.NewReader(src))
	require.ErrorIs(t, err, ioformat.ErrEdgeCountMismatch)
}

func TestParseVariables(t *testing.T) {
	src := "p variable 2\nv 1 1\nv 2 2\n"
	decls, err := ioformat.ParseVariables(strings.NewReader(src), 6)
	require.NoError(t, err)
	require.Equal(t, []ioformat.VariableDecl{{Vertex: 0, Tag: "1"}, {Vertex: 1, Tag: "2"}}, decls)
}

func TestParseVariablesRejectsOutOfRangeTag(t *testing.T) {
	src := "p variable 1\nv 1 9\n"
	_, err := ioformat.ParseVariables(strings.NewReader(src), 6)
	require.ErrorIs(t, err, ioformat.ErrBadVariableTag)
}

func TestParseValuesNormalizesOrder(t *testing.T) {
	src := "p value 2\nr 1 true\nr 2 false\n"
	vals, err := ioformat.ParseValues(strings.NewReader(src), true)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, vals) // false first, then true
}

func TestParsePrefix(t *testing.T) {
	src := "p prefix 3 1 0\na 1 2\nf 2\nf 3\n"
	p, err := ioformat.ParsePrefix(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, p.Forced)
}

func TestSplitSections(t *testing.T) {
	doc := "c comment\np cnf 1 1\n1 0\np variable 1\nv 1 1\n"
	sections := ioformat.SplitSections(doc)
	require.Len(t, sections, 2)
	require.Contains(t, sections[0], "p cnf 1 1")
	require.Contains(t, sections[1], "p variable 1")
}

func TestWriteText(t *testing.T) {
	legend := ioformat.Legend{VarTag: map[int]string{0: "x0"}, TrueValue: 2, FalseValue: 1}
	a := &engine.Assignment{Size: 1, Vars: []int{0}, Vals: []int{2}, Aut: 4}
	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteText(&buf, legend, a))
	require.Equal(t, "[4] x0 -> true\n", buf.String())
}

func TestWriteCNF(t *testing.T) {
	base := &ioformat.CNF{NumVars: 6, NumClauses: 3, Clauses: [][]int{{1, 2}, {1, 3, 5}, {2, 4, 6}}}
	legend := ioformat.Legend{VarCNFIndex: map[int]int{10: 3, 11: 4}, TrueValue: 1, FalseValue: 0}
	assignments := []*engine.Assignment{
		{Size: 2, Vars: []int{10, 11}, Vals: []int{0, 0}, Aut: 1},
	}
	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteCNF(&buf, base, legend, assignments))
	out := buf.String()
	require.Contains(t, out, "p cnf 7 6\n")
	require.Contains(t, out, "-7 -3 0\n")
	require.Contains(t, out, "-7 -4 0\n")
	require.Contains(t, out, "7 0\n")
}

// TestWriteCNFMultipleEmissions covers spec.md §8 scenario 3's literal
// numbers: 3 emissions of size 2 over a 6-variable, 3-clause base must
// grow the count to 9 variables and 10 clauses — base.NumClauses plus
// one 2-clause implication per literal (6 total) plus exactly one
// shared closing clause, not a per-emission closing clause.
func TestWriteCNFMultipleEmissions(t *testing.T) {
	base := &ioformat.CNF{NumVars: 6, NumClauses: 3, Clauses: [][]int{{1, 2}, {1, 3, 5}, {2, 4, 6}}}
	legend := ioformat.Legend{VarCNFIndex: map[int]int{10: 3, 11: 4}, TrueValue: 1, FalseValue: 0}
	assignments := []*engine.Assignment{
		{Size: 2, Vars: []int{10, 11}, Vals: []int{0, 0}, Aut: 1}, // (F,F)
		{Size: 2, Vars: []int{10, 11}, Vals: []int{0, 1}, Aut: 1}, // (F,T)
		{Size: 2, Vars: []int{10, 11}, Vals: []int{1, 1}, Aut: 1}, // (T,T)
	}
	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteCNF(&buf, base, legend, assignments))
	out := buf.String()
	require.Contains(t, out, "p cnf 9 10\n")
	require.Contains(t, out, "-7 -3 0\n")
	require.Contains(t, out, "-7 -4 0\n")
	require.Contains(t, out, "-8 -3 0\n")
	require.Contains(t, out, "-8 4 0\n")
	require.Contains(t, out, "-9 3 0\n")
	require.Contains(t, out, "-9 4 0\n")
	require.Contains(t, out, "7 8 9 0\n")
	require.Equal(t, 10, strings.Count(out, " 0\n"))
}

func TestWriteIncrementalCube(t *testing.T) {
	legend := ioformat.Legend{VarCNFIndex: map[int]int{10: 3}, TrueValue: 1, FalseValue: 0}
	assignments := []*engine.Assignment{{Size: 1, Vars: []int{10}, Vals: []int{1}, Aut: 1}}
	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteIncrementalCube(&buf, legend, assignments))
	require.Equal(t, "p inccnf\na 3 0\n", buf.String())
}
