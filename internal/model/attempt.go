package model

// ToggleRequest flips one option of one question in an active attempt.
// Indices are dataset-wide, not page-relative.
type ToggleRequest struct {
	QuestionIndex int `json:"question_index" binding:"min=0"`
	OptionIndex   int `json:"option_index" binding:"min=0"`
}

// SubmissionPayload is the body of POST /quizzes/{quiz_id}/submit.
// Answers are position-aligned with the quiz's question list: one entry per
// question, empty for questions the user never touched.
type SubmissionPayload struct {
	Answers [][]int `json:"answers"`
}

// SubmitResult is the grading backend's response to a submission.
type SubmitResult struct {
	ResultID ID             `json:"result_id"`
	Score    *float64       `json:"score,omitempty"`
	Total    int            `json:"total,omitempty"`
	Details  []GradedDetail `json:"details,omitempty"`
}
