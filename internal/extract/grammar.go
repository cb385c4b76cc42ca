// Package extract turns textbook paragraph text into task, answer, and
// table-of-contents records. The grammar is locale-specific: sub-variant
// letters are lowercase Cyrillic, and the section sentinels are the
// literal headings used by the source taskbooks.
package extract

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

// Sentinel headings. AnswersHeading flips the task scan into answers
// mode; OutlineHeading opens the table-of-contents block.
const (
	AnswersHeading = "Ответы и советы"
	OutlineHeading = "Оглавление"
)

// Anchored line-shape patterns, tried in a fixed order because they are
// not mutually exclusive in what they could match.
var (
	// "12.3." — three-level dotted numbering belongs to a deeper
	// outline level the task engine does not address.
	reDeepSection = regexp.MustCompile(`^\d+\.\d+\.`)

	// "12. rest" — a bare main task, or a section title when the next
	// line continues with "12.<n>." numbering.
	reMain         = regexp.MustCompile(`^(\d+)\.\s*(.*)`)
	reSectionChild = regexp.MustCompile(`^(\d+)\.\d+\.`)

	// "12. а) text" / "12. 3) text" — main id and first sub-variant
	// packed onto one line.
	reInlineLetter   = regexp.MustCompile(`(?i)^(\d+)\.\s*([а-яё])\)\s*(.+)`)
	reInlineNumbered = regexp.MustCompile(`^(\d+)\.\s*(\d+)\)\s*(.+)`)

	// "а) text" / "3) text" — a sub-variant of the most recent main task.
	reNewLineLetter   = regexp.MustCompile(`(?i)^\s*([а-яё])\)\s*(.+)`)
	reNewLineNumbered = regexp.MustCompile(`^\s*(\d+)\)\s+(.+)`)

	// Answers-section shapes.
	reAnswerGroup  = regexp.MustCompile(`^(\d+)\.(.+)`)
	reVariantStart = regexp.MustCompile(`(?i)^\s*[а-яё0-9]\)`)
)

// Answer lines pack several answers together; pulling them apart needs
// lookaround (zero-width split points, lazy captures bounded by the next
// marker), which the standard regexp engine does not support.
var (
	// Split point between answers for consecutive main tasks:
	// "…график. 13. а) …" splits between the period and "13.".
	reAnswerSplit = regexp2.MustCompile(`(?<=\.)\s+(?=\d+\.)`, regexp2.None)

	// "3) answer" repeated within one answer group.
	reNumberedAnswer = regexp2.MustCompile(
		`(?:^|\s+)(\d+)\)\s*([^;.]+?)(?=(?:\s+\d+\)|$|\.|;))`, regexp2.IgnoreCase)

	// "а) answer" repeated within one answer group.
	reLetterAnswer = regexp2.MustCompile(
		`(?:^|\s+)([а-яё])\)\s*([^;]*?)(?=(?:\s+[а-яё]\)|$|\.|;))`, regexp2.IgnoreCase)
)

// normalizeLine collapses runs of whitespace to single spaces and trims.
func normalizeLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// normalize applies normalizeLine to every paragraph and drops lines
// that end up empty.
func normalize(paragraphs []string) []string {
	lines := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if n := normalizeLine(p); n != "" {
			lines = append(lines, n)
		}
	}
	return lines
}

func isDeepSection(line string) bool {
	return reDeepSection.MatchString(line)
}

// matchMain recognizes "<digits>. rest". The rest may be empty.
func matchMain(line string) (id, rest string, ok bool) {
	m := reMain.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], strings.TrimSpace(m[2]), true
}

// isSectionHeader reports whether next continues mainID with deeper
// "mainID.<n>." numbering, which marks the current line as a section
// title rather than a task.
func isSectionHeader(next, mainID string) bool {
	m := reSectionChild.FindStringSubmatch(strings.TrimSpace(next))
	return m != nil && m[1] == mainID
}

// matchInlineVariant recognizes a main line that carries its first
// sub-variant inline. Letter shape wins over numeric.
func matchInlineVariant(line string) (variant, text string, ok bool) {
	if m := reInlineLetter.FindStringSubmatch(line); m != nil {
		return m[2], strings.TrimSpace(m[3]), true
	}
	if m := reInlineNumbered.FindStringSubmatch(line); m != nil {
		return m[2], strings.TrimSpace(m[3]), true
	}
	return "", "", false
}

// matchNewLineVariant recognizes a line that is just a sub-variant
// marker plus prose. Letter shape wins over numeric.
func matchNewLineVariant(line string) (variant, text string, ok bool) {
	if m := reNewLineLetter.FindStringSubmatch(line); m != nil {
		return m[1], strings.TrimSpace(m[2]), true
	}
	if m := reNewLineNumbered.FindStringSubmatch(line); m != nil {
		return m[1], strings.TrimSpace(m[2]), true
	}
	return "", "", false
}

// splitAnswerGroups cuts an answers line at each boundary between
// consecutive main-task answer groups. regexp2 reports match positions
// in runes, so slicing happens on the rune view of the line.
func splitAnswerGroups(line string) []string {
	runes := []rune(line)
	var parts []string
	start := 0
	m, err := reAnswerSplit.FindStringMatch(line)
	for err == nil && m != nil {
		parts = append(parts, string(runes[start:m.Index]))
		start = m.Index + m.Length
		m, err = reAnswerSplit.FindNextMatch(m)
	}
	return append(parts, string(runes[start:]))
}

type variantAnswer struct {
	variant string
	answer  string
}

// findVariantAnswers pulls "<marker>) answer" pairs out of one answer
// group. Numbered markers are tried first; the first family that
// matches anything wins and the other is not consulted.
func findVariantAnswers(text string) []variantAnswer {
	for _, re := range []*regexp2.Regexp{reNumberedAnswer, reLetterAnswer} {
		var found []variantAnswer
		m, err := re.FindStringMatch(text)
		for err == nil && m != nil {
			groups := m.Groups()
			found = append(found, variantAnswer{
				variant: groups[1].String(),
				answer:  strings.TrimSpace(groups[2].String()),
			})
			m, err = re.FindNextMatch(m)
		}
		if len(found) > 0 {
			return found
		}
	}
	return nil
}

// startsWithVariantMarker reports whether text begins with a variant
// marker the answer patterns did not consume, e.g. a stray "в)".
func startsWithVariantMarker(text string) bool {
	return reVariantStart.MatchString(text)
}
