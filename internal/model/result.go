package model

import "time"

// GradedDetail is one per-question grading record produced by the quiz
// backend. Records may be sparse: id and question text are both optional,
// and a question may have no record at all.
type GradedDetail struct {
	ID          ID     `json:"id,omitempty"`
	Question    string `json:"question,omitempty"`
	Given       []int  `json:"given"`
	Correct     []int  `json:"correct"`
	IsCorrect   *bool  `json:"is_correct,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}

// ResultSummary is a graded attempt as returned by the results endpoints.
// The single-result endpoint keys it as result_id; list endpoints use id.
// Immutable once loaded.
type ResultSummary struct {
	ResultID    ID             `json:"result_id,omitempty"`
	ListID      ID             `json:"id,omitempty"`
	QuizID      string         `json:"quiz_id"`
	QuizTitle   string         `json:"quiz_title,omitempty"`
	ChapterName string         `json:"chapter_name,omitempty"`
	Username    string         `json:"username,omitempty"`
	Score       *float64       `json:"score"`
	Total       int            `json:"total,omitempty"`
	SubmittedAt string         `json:"submitted_at,omitempty"`
	Questions   []Question     `json:"questions,omitempty"`
	Details     []GradedDetail `json:"details,omitempty"`
}

// Ref returns whichever identifier the backend populated.
func (r ResultSummary) Ref() ID {
	if !r.ResultID.IsZero() {
		return r.ResultID
	}
	return r.ListID
}

// ScoreOrZero clamps the score into [0,100], treating a missing score as 0.
func (r ResultSummary) ScoreOrZero() float64 {
	if r.Score == nil {
		return 0
	}
	s := *r.Score
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// submittedAtLayouts covers the timestamp shapes the backend emits:
// RFC3339 and Python isoformat with or without fractional seconds.
var submittedAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// SubmittedTime parses the submission timestamp. A missing or unparsable
// value yields the zero time so it sorts after every real timestamp.
func (r ResultSummary) SubmittedTime() time.Time {
	for _, layout := range submittedAtLayouts {
		if t, err := time.Parse(layout, r.SubmittedAt); err == nil {
			return t
		}
	}
	return time.Time{}
}
