package question

// Topic identifies the data-structure area a question belongs to.
type Topic string

const (
	TopicArrays      Topic = "arrays"
	TopicLinkedLists Topic = "linkedlists"
)

// Label returns the human-readable topic name.
func (t Topic) Label() string {
	switch t {
	case TopicArrays:
		return "Arrays"
	case TopicLinkedLists:
		return "Linked Lists"
	}
	return string(t)
}

// Difficulty grades a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is a single multiple-choice question. Immutable once loaded.
type Question struct {
	ID            string     `json:"id"`
	Topic         Topic      `json:"topic"`
	Difficulty    Difficulty `json:"difficulty"`
	Title         string     `json:"title"`
	Prompt        string     `json:"prompt"`
	Options       []string   `json:"options"`
	CorrectAnswer int        `json:"correctAnswer"`
	Explanation   string     `json:"explanation"`
}
