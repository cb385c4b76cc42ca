package extract

import "strings"

// ParseAnswerLine extracts answers from one answers-section line. A
// line may pack answer groups for several consecutive main tasks
// ("12. а) 5 б) 7. 13. нет."); each group starts with "<digits>." and
// holds either variant answers or a single bare answer for the main
// task itself. Later lines overwrite earlier ones on id collision.
func ParseAnswerLine(line string) map[string]string {
	answers := map[string]string{}

	for _, part := range splitAnswerGroups(line) {
		m := reAnswerGroup.FindStringSubmatch(part)
		if m == nil {
			continue
		}
		taskNum := m[1]
		text := strings.TrimSpace(m[2])

		if found := findVariantAnswers(text); found != nil {
			for _, va := range found {
				answers[taskNum+"."+va.variant] = va.answer
			}
			continue
		}

		// No variant markers matched: the whole remainder is the
		// answer for the bare task number, unless it opens with a
		// marker the variant patterns failed to consume.
		if text != "" && !startsWithVariantMarker(text) {
			answers[taskNum] = strings.TrimSpace(strings.TrimSuffix(text, "."))
		}
	}

	return answers
}
