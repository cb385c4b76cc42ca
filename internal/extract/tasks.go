package extract

// scanState is the phase of the forward pass over the document. The
// single transition, on AnswersHeading, is irreversible.
type scanState int

const (
	scanningTasks scanState = iota
	scanningAnswers
)

// Tasks runs the full task pass over the raw paragraph stream:
// normalize, classify every line, collect the answers section, and
// merge answers into the task list. Lines that match no shape are
// dropped silently; free-form prose between tasks is expected.
func Tasks(paragraphs []string) []TaskRecord {
	lines := normalize(paragraphs)

	var tasks []TaskRecord
	answers := map[string]string{}
	currentMainID := ""
	state := scanningTasks

	for i, line := range lines {
		if state == scanningTasks && line == AnswersHeading {
			state = scanningAnswers
			continue
		}

		if state == scanningAnswers {
			for id, answer := range ParseAnswerLine(line) {
				answers[id] = answer
			}
			continue
		}

		// Three-level dotted numbering addresses a deeper outline
		// level than the task id scheme; never a task.
		if isDeepSection(line) {
			continue
		}

		if mainID, rest, ok := matchMain(line); ok {
			currentMainID = mainID

			// A main line whose successor continues with
			// "<mainID>.<n>." numbering is a section title, not a task.
			if i+1 < len(lines) && isSectionHeader(lines[i+1], mainID) {
				continue
			}

			if variant, text, ok := matchInlineVariant(line); ok {
				tasks = append(tasks, newTask(mainID, variant, text, true))
			} else if rest != "" {
				tasks = append(tasks, newTask(mainID, "", rest, false))
			}
			continue
		}

		if variant, text, ok := matchNewLineVariant(line); ok && currentMainID != "" {
			tasks = append(tasks, newTask(currentMainID, variant, text, true))
		}
	}

	MergeAnswers(tasks, answers)
	return tasks
}

// MergeAnswers attaches answers to the tasks whose id appears in the
// mapping, leaving the rest at NoAnswer. Idempotent: re-applying the
// same mapping changes nothing.
func MergeAnswers(tasks []TaskRecord, answers map[string]string) {
	for i := range tasks {
		if answer, ok := answers[tasks[i].ID]; ok {
			tasks[i].Answer = answer
		}
	}
}
