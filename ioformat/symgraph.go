package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkaski/reduce/graph"
)

// ParseSymmetryGraph reads spec.md §6's symmetry-graph format:
// "p edge <n> <m>", then m lines "e u v" (1-indexed, undirected, no
// duplicates), then exactly n lines "c u k" assigning a color to each
// vertex. All vertex ids are converted to 0-indexed.
func ParseSymmetryGraph(r io.Reader) (*graph.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4<<20)

	var n, m int
	haveHeader := false
	b := (*graph.Builder)(nil)
	edgesSeen, colorsSeen := 0, 0

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if !haveHeader {
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "edge" {
				return nil, ErrMalformedHeader
			}
			var err error
			if n, err = strconv.Atoi(fields[2]); err != nil {
				return nil, fmt.Errorf("%w: n: %v", ErrMalformedHeader, err)
			}
			if m, err = strconv.Atoi(fields[3]); err != nil {
				return nil, fmt.Errorf("%w: m: %v", ErrMalformedHeader, err)
			}
			b = graph.NewBuilder(n)
			haveHeader = true
			continue
		}
		if len(fields) != 3 {
			return nil, ErrMalformedHeader
		}
		switch fields[0] {
		case "e":
			u, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, err
			}
			v, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, err
			}
			if err := b.AddEdge(u-1, v-1); err != nil {
				return nil, err
			}
			edgesSeen++
		case "c":
			v, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, err
			}
			k, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, err
			}
			if err := b.SetColor(v-1, k); err != nil {
				return nil, err
			}
			colorsSeen++
		default:
			return nil, ErrMalformedHeader
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !haveHeader {
		return nil, ErrUnexpectedEOF
	}
	if edgesSeen != m {
		return nil, ErrEdgeCountMismatch
	}
	if colorsSeen != n {
		return nil, graph.ErrMissingColor
	}
	return b.Finish()
}
