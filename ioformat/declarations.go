package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// VariableDecl is one "v <i> <tag>" record: graph vertex i (converted
// to 0-indexed) tagged with a CNF variable number (in CNF+symmetry
// mode) or an opaque label otherwise.
type VariableDecl struct {
	Vertex int
	Tag    string
}

// ParseVariables reads "p variable <v>" then v "v <i> <tag>" lines. If
// cnfVars > 0, every tag must parse as a decimal CNF variable number
// in [1, cnfVars] (spec.md §6).
func ParseVariables(r io.Reader, cnfVars int) ([]VariableDecl, error) {
	header, lines, err := readRecordHeader(r, "variable")
	if err != nil {
		return nil, err
	}
	count, err := strconv.Atoi(header[2])
	if err != nil {
		return nil, fmt.Errorf("%w: v: %v", ErrMalformedHeader, err)
	}
	if len(lines) != count {
		return nil, ErrMalformedHeader
	}

	out := make([]VariableDecl, count)
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 3 || fields[0] != "v" {
			return nil, ErrMalformedHeader
		}
		vertex, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, err
		}
		if cnfVars > 0 {
			n, err := strconv.Atoi(fields[2])
			if err != nil || n < 1 || n > cnfVars {
				return nil, ErrBadVariableTag
			}
		}
		out[i] = VariableDecl{Vertex: vertex - 1, Tag: fields[2]}
	}
	return out, nil
}

// ParseValues reads "p value <r>" then r "r <i> <tag>" lines. In CNF
// mode (cnf true) r must equal 2 and the tags "false" and "true" must
// both appear; the returned slice is normalized to (false, true)
// order regardless of declaration order.
func ParseValues(r io.Reader, cnf bool) ([]int, error) {
	header, lines, err := readRecordHeader(r, "value")
	if err != nil {
		return nil, err
	}
	count, err := strconv.Atoi(header[2])
	if err != nil {
		return nil, fmt.Errorf("%w: r: %v", ErrMalformedHeader, err)
	}
	if len(lines) != count {
		return nil, ErrMalformedHeader
	}

	vertices := make([]int, count)
	tags := make([]string, count)
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 3 || fields[0] != "r" {
			return nil, ErrMalformedHeader
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, err
		}
		vertices[i] = v - 1
		tags[i] = fields[2]
	}

	if !cnf {
		return vertices, nil
	}
	if count != 2 {
		return nil, ErrBadValueCount
	}
	falseIdx, trueIdx := -1, -1
	for i, tag := range tags {
		switch tag {
		case "false":
			falseIdx = i
		case "true":
			trueIdx = i
		}
	}
	if falseIdx == -1 || trueIdx == -1 {
		return nil, ErrMissingValueTag
	}
	return []int{vertices[falseIdx], vertices[trueIdx]}, nil
}

// Prefix is the parsed "p prefix" record: Forced holds the k-a "f <u>"
// vertices (0-indexed) in declared order; the a "a <u> <w>" lines are
// read and discarded (spec.md §6: "not otherwise used by the core").
type Prefix struct {
	Forced []int
}

// ParsePrefix reads "p prefix <k> <a> <t>", then a "a <u> <w>" lines
// (parsed, not consulted), then k-a "f <u>" lines.
func ParsePrefix(r io.Reader) (*Prefix, error) {
	header, lines, err := readRecordHeader(r, "prefix")
	if err != nil {
		return nil, err
	}
	if len(header) != 5 {
		return nil, ErrMalformedHeader
	}
	k, err := strconv.Atoi(header[2])
	if err != nil {
		return nil, fmt.Errorf("%w: k: %v", ErrMalformedHeader, err)
	}
	a, err := strconv.Atoi(header[3])
	if err != nil {
		return nil, fmt.Errorf("%w: a: %v", ErrMalformedHeader, err)
	}
	if a < 0 || a > k {
		return nil, ErrPrefixLengthRange
	}
	if len(lines) != k {
		return nil, ErrMalformedHeader
	}

	forced := make([]int, 0, k-a)
	for i, line := range lines {
		fields := strings.Fields(line)
		if i < a {
			if len(fields) != 3 || fields[0] != "a" {
				return nil, ErrMalformedHeader
			}
			continue
		}
		if len(fields) != 2 || fields[0] != "f" {
			return nil, ErrMalformedHeader
		}
		u, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, err
		}
		forced = append(forced, u-1)
	}
	return &Prefix{Forced: forced}, nil
}

// readRecordHeader locates the "p <kind> ..." header line (skipping
// blank lines) and returns its fields plus every subsequent non-blank
// line. Each Parse* function expects a Reader scoped to just its own
// section; the caller (cmd/reduce) splits a combined document by its
// "p " header lines before dispatching each section here.
func readRecordHeader(r io.Reader, kind string) (header []string, lines []string, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4<<20)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if header == nil {
			if len(fields) < 2 || fields[0] != "p" || fields[1] != kind {
				return nil, nil, ErrMalformedHeader
			}
			header = fields
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	if header == nil {
		return nil, nil, ErrUnexpectedEOF
	}
	return header, lines, nil
}
