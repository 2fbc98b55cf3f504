package service

import (
	"context"
	"fmt"

	"github.com/mcqlab/quiz-portal/internal/model"
	"github.com/mcqlab/quiz-portal/internal/paging"
	"github.com/mcqlab/quiz-portal/internal/review"
	"github.com/mcqlab/quiz-portal/internal/upstream"
	"github.com/rs/zerolog"
)

// ReviewPage is one page of a reconciled result view: the summary header
// plus the window of per-question verdict rows.
type ReviewPage struct {
	ResultID    model.ID     `json:"result_id"`
	QuizID      string       `json:"quiz_id"`
	QuizTitle   string       `json:"quiz_title,omitempty"`
	ChapterName string       `json:"chapter_name,omitempty"`
	Score       float64      `json:"score"`
	Total       int          `json:"total"`
	SubmittedAt string       `json:"submitted_at,omitempty"`
	Page        int          `json:"page"`
	TotalPages  int          `json:"total_pages"`
	Rows        []review.Row `json:"rows"`
}

// ResultService assembles the result review: it fetches the graded summary,
// reconciles the detail records against the original questions, and windows
// the rows for display. Results are never cached; every view fetches fresh.
type ResultService struct {
	upstream *upstream.Client
	pageSize int
	log      zerolog.Logger
}

// NewResultService creates a ResultService.
func NewResultService(up *upstream.Client, pageSize int, log zerolog.Logger) *ResultService {
	return &ResultService{
		upstream: up,
		pageSize: pageSize,
		log:      log.With().Str("component", "result_service").Logger(),
	}
}

// Review returns one page of the reconciled review for a result.
func (s *ResultService) Review(ctx context.Context, token, resultID string, page int) (*ReviewPage, error) {
	summary, err := s.upstream.FetchResult(ctx, token, resultID)
	if err != nil {
		return nil, fmt.Errorf("load result: %w", err)
	}

	rows := review.Reconcile(summary.Questions, summary.Details)
	window := paging.Page(rows, page, s.pageSize)
	page = clampPage(page, window.TotalPages)

	return &ReviewPage{
		ResultID:    summary.Ref(),
		QuizID:      summary.QuizID,
		QuizTitle:   summary.QuizTitle,
		ChapterName: summary.ChapterName,
		Score:       summary.ScoreOrZero(),
		Total:       summary.Total,
		SubmittedAt: summary.SubmittedAt,
		Page:        page,
		TotalPages:  window.TotalPages,
		Rows:        window.Items,
	}, nil
}
