package review

import (
	"reflect"
	"testing"

	"github.com/mcqlab/quiz-portal/internal/model"
)

func boolPtr(v bool) *bool { return &v }

func TestReconcileIDTakesPriorityOverText(t *testing.T) {
	questions := []model.Question{
		{ID: "q1", Question: "Shared text", Options: []string{"A", "B"}},
	}
	// A decoy detail matches by text; the real one matches by id.
	details := []model.GradedDetail{
		{Question: "Shared text", Given: []int{0}, Correct: []int{1}, IsCorrect: boolPtr(false)},
		{ID: "q1", Question: "other", Given: []int{1}, Correct: []int{1}, IsCorrect: boolPtr(true)},
	}

	rows := Reconcile(questions, details)
	if !rows[0].Graded {
		t.Fatal("question not graded")
	}
	if rows[0].IsCorrect == nil || !*rows[0].IsCorrect {
		t.Fatal("id match must win over text match")
	}
	if !reflect.DeepEqual(rows[0].Given, []int{1}) {
		t.Fatalf("Given = %v, want [1]", rows[0].Given)
	}
}

func TestReconcileTextFallback(t *testing.T) {
	questions := []model.Question{
		{Question: "What is 2+2?", Options: []string{"3", "4"}},
	}
	details := []model.GradedDetail{
		{Question: "What is 2+2?", Given: []int{1}, Correct: []int{1}, IsCorrect: boolPtr(true)},
	}

	rows := Reconcile(questions, details)
	if !rows[0].Graded || rows[0].IsCorrect == nil || !*rows[0].IsCorrect {
		t.Fatalf("text fallback failed: %+v", rows[0])
	}
}

func TestReconcileMissingDetailDegradesToUngraded(t *testing.T) {
	questions := []model.Question{
		{ID: "q1", Question: "First", Options: []string{"A", "B"}},
		{ID: "q2", Question: "Second", Options: []string{"A", "B"}},
	}
	details := []model.GradedDetail{
		{ID: "q1", Given: []int{0}, Correct: []int{0}, IsCorrect: boolPtr(true)},
	}

	rows := Reconcile(questions, details)

	if !rows[0].Graded {
		t.Fatal("matched question must be graded")
	}
	if rows[1].Graded {
		t.Fatal("unmatched question must be ungraded")
	}
	if rows[1].IsCorrect != nil {
		t.Fatal("ungraded question must not carry a verdict")
	}
	if len(rows[1].Given) != 0 || len(rows[1].Correct) != 0 {
		t.Fatalf("ungraded question must have empty sequences: %+v", rows[1])
	}
}

// When the grader omits is_correct the verdict is derived by comparing
// given and correct as ordered sequences. Same set, different order, counts
// as incorrect — legacy behavior kept on purpose.
func TestReconcileOrderSensitiveFallback(t *testing.T) {
	questions := []model.Question{
		{ID: "a", Question: "Qa", Options: []string{"A", "B", "C"}},
		{ID: "b", Question: "Qb", Options: []string{"A", "B", "C"}},
	}
	details := []model.GradedDetail{
		{ID: "a", Given: []int{0, 2}, Correct: []int{0, 2}},
		{ID: "b", Given: []int{2, 0}, Correct: []int{0, 2}},
	}

	rows := Reconcile(questions, details)

	if rows[0].IsCorrect == nil || !*rows[0].IsCorrect {
		t.Fatal("identical ordered sequences must be correct")
	}
	if rows[1].IsCorrect == nil || *rows[1].IsCorrect {
		t.Fatal("reordered sequences must be reported incorrect")
	}
}

// Per-option highlight flags are unordered set membership, independent of
// the ordered-sequence verdict above.
func TestReconcileOptionFlags(t *testing.T) {
	questions := []model.Question{
		{ID: "a", Question: "Qa", Options: []string{"A", "B", "C"}},
	}
	details := []model.GradedDetail{
		{ID: "a", Given: []int{2, 0}, Correct: []int{0, 1}},
	}

	rows := Reconcile(questions, details)
	want := []OptionView{
		{Text: "A", Chosen: true, Correct: true},
		{Text: "B", Chosen: false, Correct: true},
		{Text: "C", Chosen: true, Correct: false},
	}
	if !reflect.DeepEqual(rows[0].Options, want) {
		t.Fatalf("Options = %+v, want %+v", rows[0].Options, want)
	}
}

func TestReconcileDetailExplanationWins(t *testing.T) {
	questions := []model.Question{
		{ID: "a", Question: "Qa", Options: []string{"A"}, Explanation: "from quiz"},
	}
	details := []model.GradedDetail{
		{ID: "a", Given: []int{0}, Correct: []int{0}, Explanation: "from grader"},
	}

	rows := Reconcile(questions, details)
	if rows[0].Explanation != "from grader" {
		t.Fatalf("Explanation = %q", rows[0].Explanation)
	}
}
