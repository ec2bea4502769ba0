package ioformat

import "strings"

// SplitSections splits a combined DIMACS-style document into the text
// of each "p <kind> ..." section, in order, for dispatch to the
// matching Parse* function. A line is a section boundary iff its
// first field is exactly "p"; everything from one boundary up to (but
// excluding) the next belongs to that section.
func SplitSections(doc string) []string {
	var sections []string
	var cur strings.Builder
	started := false

	for _, line := range strings.Split(doc, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		fields := strings.Fields(trimmed)
		if fields[0] == "p" {
			if started {
				sections = append(sections, cur.String())
				cur.Reset()
			}
			started = true
		}
		cur.WriteString(line)
		cur.WriteByte('\n')
	}
	if started {
		sections = append(sections, cur.String())
	}
	return sections
}
