package extract

import (
	"regexp"
	"strings"
)

var (
	// A table-of-contents entry starts with bare or dotted numbering:
	// "3 ", "3. ", "3.1.2\t".
	reOutlinePrefix = regexp.MustCompile(`^\d+(\.\d+)*[.\s\t]+`)

	// Entry shape: dotted number, separator, title, optional trailing
	// page number.
	reOutlineEntry = regexp.MustCompile(`^(\d+(?:\.\d+)*)[.\s\t]+(.+?)(?:\s+\d+)?$`)
)

// Outline parses the table-of-contents block out of the paragraph
// stream. The block opens at the first line containing OutlineHeading
// and is assumed contiguous: the first non-matching line after entry
// ends the scan entirely.
//
// A node's parent is the earliest prior node whose section number is
// this node's number with the last dot segment removed. When no such
// node exists the parent stays 0, even for a dotted number.
func Outline(paragraphs []string) []OutlineNode {
	var toc []OutlineNode
	inside := false

	for _, p := range paragraphs {
		text := strings.TrimSpace(p)

		if strings.Contains(text, OutlineHeading) {
			inside = true
			continue
		}
		if !inside {
			continue
		}
		if !reOutlinePrefix.MatchString(text) {
			break
		}

		m := reOutlineEntry.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		section := m[1]

		parent := 0
		if i := strings.LastIndex(section, "."); i >= 0 {
			prefix := section[:i]
			for _, n := range toc {
				if n.section == prefix {
					parent = n.ID
					break
				}
			}
		}

		toc = append(toc, OutlineNode{
			ID:      len(toc) + 1,
			Name:    strings.TrimSpace(m[2]),
			Parent:  parent,
			section: section,
		})
	}

	return toc
}
