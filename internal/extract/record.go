package extract

// NoAnswer is the answer value a task carries until the answers
// section supplies one.
const NoAnswer = "Отсутствует"

// Default metadata for every extracted task. Not derived from the
// document; downstream tooling fills these in properly later.
const (
	DefaultClasses = "5;6"
	DefaultTopicID = 1
	DefaultLevel   = 1
)

// TaskRecord is one extracted exercise: a main task or a sub-variant.
// Sub-variant text carries a single leading tab to mark nesting.
type TaskRecord struct {
	ID      string `json:"id_tasks_book"`
	Task    string `json:"task"`
	Answer  string `json:"answer"`
	Classes string `json:"classes"`
	TopicID int    `json:"topic_id"`
	Level   int    `json:"level"`
}

// newTask builds a TaskRecord with default metadata. A non-empty
// variant yields id "<mainID>.<variant>"; subtask text is indented.
func newTask(mainID, variant, text string, subtask bool) TaskRecord {
	id := mainID
	if variant != "" {
		id = mainID + "." + variant
	}
	if subtask {
		text = "\t" + text
	}
	return TaskRecord{
		ID:      id,
		Task:    text,
		Answer:  NoAnswer,
		Classes: DefaultClasses,
		TopicID: DefaultTopicID,
		Level:   DefaultLevel,
	}
}

// OutlineNode is one table-of-contents entry. Parent is the ID of the
// node one dot-level up, or 0 for top-level sections (and for dotted
// sections whose parent was never seen — parents are resolved only
// against nodes already discovered).
type OutlineNode struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Parent int    `json:"parent"`

	// section is the dotted number used to resolve Parent; it is not
	// part of the exported record.
	section string
}
