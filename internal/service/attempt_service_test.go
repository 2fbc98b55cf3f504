package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mcqlab/quiz-portal/internal/attempt"
	"github.com/mcqlab/quiz-portal/internal/model"
	"github.com/mcqlab/quiz-portal/internal/upstream"
	"github.com/rs/zerolog"
)

// fakeBackend mimics the quiz backend endpoints the attempt flow touches.
type fakeBackend struct {
	quiz        model.Quiz
	submitted   [][]int
	failSubmits bool
}

func (f *fakeBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/quizzes/quiz-1":
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(f.quiz)
		case r.Method == http.MethodPost && r.URL.Path == "/quizzes/quiz-1/submit":
			if f.failSubmits {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			var payload model.SubmissionPayload
			json.NewDecoder(r.Body).Decode(&payload)
			f.submitted = payload.Answers
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{"result_id": "r-9"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func fiveQuestionQuiz() model.Quiz {
	questions := make([]model.Question, 5)
	for i := range questions {
		questions[i] = model.Question{
			Question:       "Q",
			Options:        []string{"A", "B", "C"},
			CorrectAnswers: []int{0},
		}
	}
	// Q2 is multi-select.
	questions[1].CorrectAnswers = []int{0, 2}
	return model.Quiz{QuizTitle: "Walkthrough", Questions: questions}
}

func newAttemptService(t *testing.T, backend *fakeBackend, pageSize int) *AttemptService {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	up := upstream.NewClient(srv.URL, 5*time.Second, zerolog.Nop())
	quizzes := NewQuizService(up, nil, time.Minute, zerolog.Nop())
	store := attempt.NewStore(time.Hour, zerolog.Nop())
	return NewAttemptService(quizzes, store, up, pageSize, zerolog.Nop())
}

func TestAttemptFlow(t *testing.T) {
	backend := &fakeBackend{quiz: fiveQuestionQuiz()}
	svc := newAttemptService(t, backend, 2)
	ctx := context.Background()

	view, err := svc.Start(ctx, "tok", "quiz-1")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if view.QuestionCount != 5 || view.TotalPages != 3 {
		t.Fatalf("view = %+v", view)
	}

	// Selections key by the dataset-wide index, so toggling question 3
	// (page 2) must not disturb page 1 state.
	if _, err := svc.Toggle(view.AttemptID, 0, 1); err != nil {
		t.Fatalf("Toggle q0: %v", err)
	}
	if _, err := svc.Toggle(view.AttemptID, 1, 0); err != nil {
		t.Fatalf("Toggle q1: %v", err)
	}
	if _, err := svc.Toggle(view.AttemptID, 1, 2); err != nil {
		t.Fatalf("Toggle q1: %v", err)
	}
	if _, err := svc.Toggle(view.AttemptID, 3, 2); err != nil {
		t.Fatalf("Toggle q3: %v", err)
	}

	page2, err := svc.QuestionsPage(view.AttemptID, 2)
	if err != nil {
		t.Fatalf("QuestionsPage: %v", err)
	}
	if page2.Questions[0].Index != 2 || page2.Questions[1].Index != 3 {
		t.Fatalf("global indices on page 2: %+v", page2.Questions)
	}
	if got := page2.Questions[1].Selected; !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("q3 selection = %v", got)
	}
	if page2.Questions[0].Multi {
		t.Fatal("q2 must be single-select")
	}

	result, err := svc.Submit(ctx, "tok", view.AttemptID)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.ResultID != "r-9" {
		t.Fatalf("ResultID = %q", result.ResultID)
	}

	want := [][]int{{1}, {0, 2}, {}, {2}, {}}
	if !reflect.DeepEqual(backend.submitted, want) {
		t.Fatalf("submitted = %v, want %v", backend.submitted, want)
	}

	// Successful submit discards the session.
	if _, err := svc.QuestionsPage(view.AttemptID, 1); err != ErrAttemptNotFound {
		t.Fatalf("session survived submit: %v", err)
	}
}

func TestSubmitFailurePreservesAttempt(t *testing.T) {
	backend := &fakeBackend{quiz: fiveQuestionQuiz(), failSubmits: true}
	svc := newAttemptService(t, backend, 5)
	ctx := context.Background()

	view, _ := svc.Start(ctx, "tok", "quiz-1")
	svc.Toggle(view.AttemptID, 0, 2)

	if _, err := svc.Submit(ctx, "tok", view.AttemptID); err == nil {
		t.Fatal("submit must fail")
	}

	// The selections survive for a user-initiated retry.
	page, err := svc.QuestionsPage(view.AttemptID, 1)
	if err != nil {
		t.Fatalf("attempt lost after failed submit: %v", err)
	}
	if got := page.Questions[0].Selected; !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("selection lost: %v", got)
	}
}

func TestToggleValidation(t *testing.T) {
	backend := &fakeBackend{quiz: fiveQuestionQuiz()}
	svc := newAttemptService(t, backend, 5)

	view, _ := svc.Start(context.Background(), "tok", "quiz-1")

	if _, err := svc.Toggle(view.AttemptID, 9, 0); err != ErrIndexOutOfRange {
		t.Fatalf("question index: %v", err)
	}
	if _, err := svc.Toggle(view.AttemptID, 0, 7); err != ErrIndexOutOfRange {
		t.Fatalf("option index: %v", err)
	}
	if _, err := svc.Toggle(uuid.New(), 0, 0); err != ErrAttemptNotFound {
		t.Fatalf("unknown attempt: %v", err)
	}

	// Abandon drops the session outright.
	svc.Abandon(view.AttemptID)
	if _, err := svc.QuestionsPage(view.AttemptID, 1); err != ErrAttemptNotFound {
		t.Fatalf("session survived abandon: %v", err)
	}
}
