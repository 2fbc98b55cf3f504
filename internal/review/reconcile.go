// Package review re-associates graded detail records with the questions of
// the originating quiz for the result view. The grading backend keys its
// details loosely — sometimes by question id, sometimes only by literal
// question text, sometimes not at all — so reconciliation works through a
// fallback identity match and degrades missing records to "ungraded" rather
// than failing.
package review

import "github.com/mcqlab/quiz-portal/internal/model"

// OptionView is one option of a reconciled question with its highlight
// flags. Both lookups are plain set membership over the detail's index
// sequences.
type OptionView struct {
	Text    string `json:"text"`
	Chosen  bool   `json:"chosen"`
	Correct bool   `json:"correct"`
}

// Row is the reconciled verdict for one question position.
type Row struct {
	// Index is the question's dataset-wide position, stable across pages.
	Index       int          `json:"index"`
	Question    string       `json:"question"`
	Options     []OptionView `json:"options"`
	Given       []int        `json:"given"`
	Correct     []int        `json:"correct"`
	Graded      bool         `json:"graded"`
	IsCorrect   *bool        `json:"is_correct,omitempty"`
	Explanation string       `json:"explanation,omitempty"`
}

// Reconcile pairs every question with its graded detail record.
//
// Matching order per question: equal id when both sides carry one, else
// equal question text. A question with no match is ungraded — empty given
// and correct sets, no verdict. When a matched detail lacks is_correct the
// verdict falls back to ordered-sequence equality of given and correct;
// see the package doc in DESIGN.md for the order-sensitivity caveat.
func Reconcile(questions []model.Question, details []model.GradedDetail) []Row {
	byID := make(map[model.ID]*model.GradedDetail)
	byText := make(map[string]*model.GradedDetail)
	for i := range details {
		d := &details[i]
		if !d.ID.IsZero() {
			if _, dup := byID[d.ID]; !dup {
				byID[d.ID] = d
			}
		}
		if d.Question != "" {
			if _, dup := byText[d.Question]; !dup {
				byText[d.Question] = d
			}
		}
	}

	rows := make([]Row, len(questions))
	for i, q := range questions {
		rows[i] = buildRow(i, q, match(q, byID, byText))
	}
	return rows
}

// match applies the fallback identity chain: id first, question text second.
func match(q model.Question, byID map[model.ID]*model.GradedDetail, byText map[string]*model.GradedDetail) *model.GradedDetail {
	if !q.ID.IsZero() {
		if d, ok := byID[q.ID]; ok {
			return d
		}
	}
	return byText[q.Question]
}

func buildRow(index int, q model.Question, d *model.GradedDetail) Row {
	row := Row{
		Index:       index,
		Question:    q.Question,
		Given:       []int{},
		Correct:     []int{},
		Explanation: q.Explanation,
	}

	if d != nil {
		row.Graded = true
		row.Given = append(row.Given, d.Given...)
		row.Correct = append(row.Correct, d.Correct...)
		row.IsCorrect = verdict(d)
		if d.Explanation != "" {
			row.Explanation = d.Explanation
		}
	}

	chosen := indexSet(row.Given)
	correct := indexSet(row.Correct)
	row.Options = make([]OptionView, len(q.Options))
	for i, text := range q.Options {
		row.Options[i] = OptionView{
			Text:    text,
			Chosen:  chosen[i],
			Correct: correct[i],
		}
	}

	return row
}

// verdict prefers the grader's own flag. Absent that, it compares given and
// correct as ordered sequences — equal length, equal order — matching the
// legacy dashboard behavior.
func verdict(d *model.GradedDetail) *bool {
	if d.IsCorrect != nil {
		v := *d.IsCorrect
		return &v
	}

	v := len(d.Given) == len(d.Correct)
	if v {
		for i := range d.Given {
			if d.Given[i] != d.Correct[i] {
				v = false
				break
			}
		}
	}
	return &v
}

func indexSet(indices []int) map[int]bool {
	set := make(map[int]bool, len(indices))
	for _, i := range indices {
		set[i] = true
	}
	return set
}
