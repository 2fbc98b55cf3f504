package model

// Question is a single quiz question as stored by the quiz backend.
// Options are positionally indexed (0-based); the index meaning is stable
// for the lifetime of one quiz.
type Question struct {
	ID             ID       `json:"id,omitempty"`
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	CorrectAnswers []int    `json:"correct_answers,omitempty"`
	Explanation    string   `json:"explanation,omitempty"`
}

// Multi reports whether the question accepts more than one answer.
// Cardinality is fixed at load time by the size of the correct answer set.
func (q Question) Multi() bool {
	return len(q.CorrectAnswers) > 1
}

// Quiz is the full quiz payload returned by GET /quizzes/{quiz_id}.
type Quiz struct {
	QuizID      string     `json:"quiz_id,omitempty"`
	QuizTitle   string     `json:"quiz_title,omitempty"`
	Difficulty  string     `json:"difficulty,omitempty"`
	ChapterName string     `json:"chapter_name,omitempty"`
	SourceBook  string     `json:"source_book,omitempty"`
	Scope       string     `json:"scope,omitempty"`
	Questions   []Question `json:"questions"`
}

// QuizMeta is the summary block inside a quiz list entry.
type QuizMeta struct {
	QuizTitle    string `json:"quiz_title,omitempty"`
	NumQuestions int    `json:"num_questions,omitempty"`
	SourceBook   string `json:"source_book,omitempty"`
	Difficulty   string `json:"difficulty,omitempty"`
	Scope        string `json:"scope,omitempty"`
}

// QuizListEntry is one row of GET /quizzes/list.
type QuizListEntry struct {
	QuizID string   `json:"quiz_id"`
	Quiz   QuizMeta `json:"quiz"`
}
