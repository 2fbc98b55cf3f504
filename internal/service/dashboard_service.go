package service

import (
	"context"
	"fmt"

	"github.com/mcqlab/quiz-portal/internal/analytics"
	"github.com/mcqlab/quiz-portal/internal/model"
	"github.com/mcqlab/quiz-portal/internal/upstream"
	"github.com/rs/zerolog"
)

// RecentResult is the slim projection of a graded attempt shown in the
// dashboard's recent list.
type RecentResult struct {
	ResultID    model.ID `json:"result_id"`
	QuizID      string   `json:"quiz_id"`
	QuizTitle   string   `json:"quiz_title,omitempty"`
	Username    string   `json:"username,omitempty"`
	Score       float64  `json:"score"`
	Total       int      `json:"total,omitempty"`
	SubmittedAt string   `json:"submitted_at,omitempty"`
}

// DashboardData is the aggregate view over a snapshot of graded attempts.
type DashboardData struct {
	TotalAttempts int                `json:"total_attempts"`
	AverageScore  float64            `json:"average_score"`
	Buckets       []analytics.Bucket `json:"buckets"`
	Recent        []RecentResult     `json:"recent"`
}

// DashboardService folds result snapshots into dashboard aggregates. Each
// call fetches a fresh snapshot; a refresh fully replaces the previous one.
type DashboardService struct {
	upstream *upstream.Client
	recentN  int
	log      zerolog.Logger
}

// NewDashboardService creates a DashboardService.
func NewDashboardService(up *upstream.Client, recentN int, log zerolog.Logger) *DashboardService {
	return &DashboardService{
		upstream: up,
		recentN:  recentN,
		log:      log.With().Str("component", "dashboard_service").Logger(),
	}
}

// MyDashboard aggregates the caller's own results.
func (s *DashboardService) MyDashboard(ctx context.Context, token string) (*DashboardData, error) {
	results, err := s.upstream.FetchMyResults(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("load my results: %w", err)
	}
	return s.aggregate(results), nil
}

// AllDashboard aggregates every user's results. Role enforcement lives in
// the upstream backend; an unauthorized caller gets its rejection relayed.
func (s *DashboardService) AllDashboard(ctx context.Context, token string) (*DashboardData, error) {
	results, err := s.upstream.FetchAllResults(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("load all results: %w", err)
	}
	return s.aggregate(results), nil
}

func (s *DashboardService) aggregate(results []model.ResultSummary) *DashboardData {
	recent := make([]RecentResult, 0, s.recentN)
	for _, r := range analytics.Recent(results, s.recentN) {
		recent = append(recent, RecentResult{
			ResultID:    r.Ref(),
			QuizID:      r.QuizID,
			QuizTitle:   r.QuizTitle,
			Username:    r.Username,
			Score:       r.ScoreOrZero(),
			Total:       r.Total,
			SubmittedAt: r.SubmittedAt,
		})
	}

	return &DashboardData{
		TotalAttempts: len(results),
		AverageScore:  analytics.AverageScore(results),
		Buckets:       analytics.BucketScores(results),
		Recent:        recent,
	}
}
