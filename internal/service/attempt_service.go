package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcqlab/quiz-portal/internal/attempt"
	"github.com/mcqlab/quiz-portal/internal/model"
	"github.com/mcqlab/quiz-portal/internal/paging"
	"github.com/rs/zerolog"
)

var (
	// ErrAttemptNotFound means the attempt id is unknown or expired.
	ErrAttemptNotFound = errors.New("attempt not found")
	// ErrIndexOutOfRange means a toggle referenced a question or option the
	// quiz does not have.
	ErrIndexOutOfRange = errors.New("question or option index out of range")
)

// AttemptView is the header of an active attempt, returned on start.
type AttemptView struct {
	AttemptID     uuid.UUID `json:"attempt_id"`
	QuizID        string    `json:"quiz_id"`
	QuizTitle     string    `json:"quiz_title,omitempty"`
	QuestionCount int       `json:"question_count"`
	PageSize      int       `json:"page_size"`
	TotalPages    int       `json:"total_pages"`
}

// AttemptQuestion is one question of the attempt view. Correct answers and
// explanations are stripped — the taker only needs the option texts and the
// question's cardinality.
type AttemptQuestion struct {
	// Index is dataset-wide; selections are keyed by it across pages.
	Index    int      `json:"index"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Multi    bool     `json:"multi"`
	Selected []int    `json:"selected"`
}

// QuestionPage is one page of the attempt view.
type QuestionPage struct {
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
	Questions  []AttemptQuestion `json:"questions"`
}

// AttemptService drives the quiz-taking state machine: one session per
// active attempt, owned here, discarded on submit or abandon.
type AttemptService struct {
	quizzes  *QuizService
	store    *attempt.Store
	submit   submitter
	pageSize int
	log      zerolog.Logger
}

// submitter is the single terminal write the attempt flow performs.
type submitter interface {
	SubmitAnswers(ctx context.Context, token, quizID string, answers [][]int) (*model.SubmitResult, error)
}

// NewAttemptService creates an AttemptService.
func NewAttemptService(quizzes *QuizService, store *attempt.Store, submit submitter, pageSize int, log zerolog.Logger) *AttemptService {
	return &AttemptService{
		quizzes:  quizzes,
		store:    store,
		submit:   submit,
		pageSize: pageSize,
		log:      log.With().Str("component", "attempt_service").Logger(),
	}
}

// Start fetches the quiz and opens a fresh attempt session over it. Every
// start gets its own session; loading a different quiz never reuses state.
func (s *AttemptService) Start(ctx context.Context, token, quizID string) (*AttemptView, error) {
	quiz, err := s.quizzes.GetQuiz(ctx, token, quizID)
	if err != nil {
		return nil, fmt.Errorf("load quiz: %w", err)
	}

	sess := s.store.Start(quizID, quiz)
	window := paging.Page(quiz.Questions, 1, s.pageSize)

	return &AttemptView{
		AttemptID:     sess.ID,
		QuizID:        quizID,
		QuizTitle:     quiz.QuizTitle,
		QuestionCount: len(quiz.Questions),
		PageSize:      s.pageSize,
		TotalPages:    window.TotalPages,
	}, nil
}

// QuestionsPage returns one page of questions with the attempt's current
// selections overlaid.
func (s *AttemptService) QuestionsPage(attemptID uuid.UUID, page int) (*QuestionPage, error) {
	sess, ok := s.store.Get(attemptID)
	if !ok {
		return nil, ErrAttemptNotFound
	}

	window := paging.Page(sess.Quiz.Questions, page, s.pageSize)
	page = clampPage(page, window.TotalPages)

	questions := make([]AttemptQuestion, len(window.Items))
	for local, q := range window.Items {
		global := window.Start + local
		questions[local] = AttemptQuestion{
			Index:    global,
			Question: q.Question,
			Options:  q.Options,
			Multi:    sess.Multi(global),
			Selected: sess.Picked(global),
		}
	}

	return &QuestionPage{
		Page:       page,
		TotalPages: window.TotalPages,
		Questions:  questions,
	}, nil
}

// Toggle flips one option and returns the question's updated selection.
// Index validation happens here, at the boundary, so the selection map
// itself keeps its no-throw contract.
func (s *AttemptService) Toggle(attemptID uuid.UUID, questionIndex, optionIndex int) ([]int, error) {
	sess, ok := s.store.Get(attemptID)
	if !ok {
		return nil, ErrAttemptNotFound
	}

	if questionIndex < 0 || questionIndex >= sess.QuestionCount() {
		return nil, ErrIndexOutOfRange
	}
	if optionIndex < 0 || optionIndex >= len(sess.Quiz.Questions[questionIndex].Options) {
		return nil, ErrIndexOutOfRange
	}

	return sess.Toggle(questionIndex, optionIndex), nil
}

// Submit serializes the attempt and posts it for grading. The session is
// discarded only on success: a failed submission preserves every selection
// so the user can retry without re-answering.
func (s *AttemptService) Submit(ctx context.Context, token string, attemptID uuid.UUID) (*model.SubmitResult, error) {
	sess, ok := s.store.Get(attemptID)
	if !ok {
		return nil, ErrAttemptNotFound
	}

	result, err := s.submit.SubmitAnswers(ctx, token, sess.QuizID, sess.Answers())
	if err != nil {
		s.log.Warn().Err(err).
			Str("attempt_id", attemptID.String()).
			Str("quiz_id", sess.QuizID).
			Msg("Submission failed, attempt state preserved")
		return nil, err
	}

	s.store.Drop(attemptID)
	return result, nil
}

// Abandon discards an attempt without submitting it.
func (s *AttemptService) Abandon(attemptID uuid.UUID) {
	s.store.Drop(attemptID)
}
