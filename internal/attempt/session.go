package attempt

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mcqlab/quiz-portal/internal/model"
)

// Session is the state of one active quiz attempt. It owns the selection
// map exclusively: it is created when the attempt view opens, mutated only
// through Toggle, and discarded on submit, abandon or expiry. It is never
// shared across attempts and never persisted.
type Session struct {
	ID     uuid.UUID
	QuizID string
	Quiz   *model.Quiz

	mu        sync.Mutex
	selection Selection
	// multi is the per-question cardinality, fixed at load time.
	multi     []bool
	createdAt time.Time
	touchedAt time.Time
}

func newSession(quizID string, quiz *model.Quiz) *Session {
	multi := make([]bool, len(quiz.Questions))
	for i, q := range quiz.Questions {
		multi[i] = q.Multi()
	}
	now := time.Now()
	return &Session{
		ID:        uuid.New(),
		QuizID:    quizID,
		Quiz:      quiz,
		selection: make(Selection),
		multi:     multi,
		createdAt: now,
		touchedAt: now,
	}
}

// QuestionCount returns the number of questions in the attempted quiz.
func (s *Session) QuestionCount() int {
	return len(s.Quiz.Questions)
}

// Multi reports the fixed cardinality of the question at questionIndex.
func (s *Session) Multi(questionIndex int) bool {
	return s.multi[questionIndex]
}

// Toggle applies one selection toggle and returns the question's resulting
// selection. Cardinality is resolved from the quiz snapshot, so callers
// cannot flip a question between single- and multi-select mid-attempt.
func (s *Session) Toggle(questionIndex, optionIndex int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Toggle(questionIndex, optionIndex, s.multi[questionIndex])
	s.touchedAt = time.Now()
	return s.selection.Picked(questionIndex)
}

// Picked returns a copy of the current selection for one question.
func (s *Session) Picked(questionIndex int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Picked(questionIndex)
}

// Answers serializes the attempt into the position-aligned submission
// payload: one entry per question even when the user never visited its
// page. Partial completion is allowed; the grading backend scores untouched
// questions as wrong rather than rejecting the submission.
func (s *Session) Answers() [][]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.AnswerSequence(len(s.Quiz.Questions))
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.touchedAt = now
	s.mu.Unlock()
}

func (s *Session) staleSince(deadline time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touchedAt.Before(deadline)
}
